package irdb

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/arloliu/tuyair/errs"
	"github.com/arloliu/tuyair/internal/options"
	"github.com/arloliu/tuyair/tuya"
)

// NamedCode is a Tuya code string labelled with its function name.
type NamedCode struct {
	Function string
	Code     string
}

// Result is the outcome of converting one item of a batch. Exactly one of Value and Err is
// meaningful.
type Result[T any] struct {
	Name  string
	Value T
	Err   error
}

// OK reports whether the item converted.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Report holds the results of a batch in input order.
type Report[T any] struct {
	Results []Result[T]
}

// Succeeded returns the number of items that converted.
func (r Report[T]) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}

	return n
}

// Failed returns the number of items that did not convert.
func (r Report[T]) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// Err combines every item error, or returns nil when the whole batch converted.
func (r Report[T]) Err() error {
	var err error
	for _, res := range r.Results {
		if res.Err != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", res.Name, res.Err))
		}
	}

	return err
}

// Values returns the values of the successful items in input order.
func (r Report[T]) Values() []T {
	values := make([]T, 0, len(r.Results))
	for _, res := range r.Results {
		if res.OK() {
			values = append(values, res.Value)
		}
	}

	return values
}

// Converter runs batches of IRDB conversions. It is safe for concurrent use once created.
type Converter struct {
	codec    *tuya.Codec
	registry *Registry
	override string
	logger   *zap.Logger
}

// ConverterOption configures a Converter.
type ConverterOption = options.Option[*Converter]

// WithLogger sets the logger. The default is the package Logger.
func WithLogger(logger *zap.Logger) ConverterOption {
	return options.NoError(func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithCodec sets the Tuya codec. The default is tuya.NewCodec().
func WithCodec(codec *tuya.Codec) ConverterOption {
	return options.NoError(func(c *Converter) {
		if codec != nil {
			c.codec = codec
		}
	})
}

// WithRegistry sets the protocols GenerateRows can use. Without it every row fails with
// errs.ErrUnknownProtocol.
func WithRegistry(registry *Registry) ConverterOption {
	return options.NoError(func(c *Converter) {
		if registry != nil {
			c.registry = registry
		}
	})
}

// WithProtocolOverride makes GenerateRows use the named protocol for every row instead of the
// row's protocol column. An empty name disables the override.
func WithProtocolOverride(name string) ConverterOption {
	return options.NoError(func(c *Converter) {
		c.override = SanitizeProtocolName(name)
	})
}

// NewConverter creates a Converter.
func NewConverter(opts ...ConverterOption) (*Converter, error) {
	c := &Converter{
		registry: NewRegistry(),
		logger:   Logger(),
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.codec == nil {
		codec, err := tuya.NewCodec()
		if err != nil {
			return nil, err
		}
		c.codec = codec
	}

	return c, nil
}

// EncodeEntries encodes the signal of every entry into a Tuya code.
func (c *Converter) EncodeEntries(entries []Entry) Report[string] {
	report := Report[string]{Results: make([]Result[string], 0, len(entries))}
	for _, e := range entries {
		code, err := c.codec.Encode(e.Signal)
		report.Results = append(report.Results, Result[string]{Name: e.Function, Value: code, Err: err})
		if err != nil {
			c.logger.Warn("encode failed", zap.String("function", e.Function), zap.Error(err))
		}
	}
	c.logSummary("encode", report.Succeeded(), report.Failed())

	return report
}

// DecodeCodes decodes every code into its timing signal.
func (c *Converter) DecodeCodes(codes []NamedCode) Report[[]int] {
	report := Report[[]int]{Results: make([]Result[[]int], 0, len(codes))}
	for _, nc := range codes {
		signal, err := c.codec.Decode(nc.Code)
		report.Results = append(report.Results, Result[[]int]{Name: nc.Function, Value: signal, Err: err})
		if err != nil {
			c.logger.Warn("decode failed", zap.String("function", nc.Function), zap.Error(err))
		}
	}
	c.logSummary("decode", report.Succeeded(), report.Failed())

	return report
}

// GenerateRows generates the raw timing signal of every row with the registered protocols.
//
// The protocol is the override when set, otherwise the row's protocol column with braces
// removed. The sub-device is only passed to protocols that declare ParamSubDevice; a row that
// sets one for a protocol without it fails with errs.ErrMissingParameter. Generated timings
// are made absolute.
func (c *Converter) GenerateRows(rows []Row) Report[Entry] {
	report := Report[Entry]{Results: make([]Result[Entry], 0, len(rows))}
	for _, row := range rows {
		entry, err := c.generate(row)
		report.Results = append(report.Results, Result[Entry]{Name: row.FunctionName, Value: entry, Err: err})
		if err != nil {
			c.logger.Warn("generate failed",
				zap.String("function", row.FunctionName),
				zap.String("protocol", row.Protocol),
				zap.String("path", row.Path),
				zap.Int("line", row.Line),
				zap.Error(err),
			)
		}
	}
	c.logSummary("generate", report.Succeeded(), report.Failed())

	return report
}

func (c *Converter) generate(row Row) (Entry, error) {
	name := c.override
	if name == "" {
		name = SanitizeProtocolName(row.Protocol)
	}

	protocol, err := c.registry.Lookup(name)
	if err != nil {
		return Entry{}, err
	}

	args, err := row.Args()
	if err != nil {
		return Entry{}, err
	}

	if !Supports(protocol, ParamSubDevice) {
		if args.HasSubDevice {
			return Entry{}, fmt.Errorf("%w: %s has no %s, row sets %d",
				errs.ErrMissingParameter, name, ParamSubDevice, args.SubDevice)
		}
		args.SubDevice = 0
	}

	signal, err := protocol.Encode(args)
	if err != nil {
		return Entry{}, fmt.Errorf("%s(device=%d, sub=%d, function=%d): %w",
			name, args.Device, args.SubDevice, args.Function, err)
	}

	return Entry{
		Function: row.FunctionName,
		Signal:   Absolute(signal),
		Path:     row.Path,
		Protocol: name,
	}, nil
}

func (c *Converter) logSummary(op string, succeeded, failed int) {
	c.logger.Info("batch finished",
		zap.String("op", op),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", failed),
	)
}
