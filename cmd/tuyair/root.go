package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/arloliu/tuyair/format"
	"github.com/arloliu/tuyair/irdb"
	"github.com/arloliu/tuyair/tuya"
)

// errBatchFailed is returned when some items of a batch did not convert. The items themselves
// are reported on stderr.
var errBatchFailed = errors.New("some items failed")

// app holds the state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	level      int

	cfg    Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "tuyair",
		Short:         "Convert IR timings to Tuya IR codes and back",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().IntVarP(&a.level, "level", "l", int(format.LevelDefault), "Tuya compression level (0..9)")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newInspectCmd(a),
		newConvertCmd(a),
		newPackCmd(a),
		newListCmd(a),
		newProtocolsCmd(),
	)

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = DefaultConfig()
	if a.configPath != "" {
		cfg, err := LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	if cmd.Flags().Changed("level") {
		a.cfg.Level = a.level
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := a.cfg.NewLogger(zapcore.AddSync(cmd.ErrOrStderr()), a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Int("level", a.cfg.Level),
		zap.String("library_compression", a.cfg.Library.Compression),
	)

	return nil
}

func (a *app) codec() (*tuya.Codec, error) {
	return tuya.NewCodec(tuya.WithCompressionLevel(format.CompressionLevel(a.cfg.Level)))
}

func (a *app) converter() (*irdb.Converter, error) {
	codec, err := a.codec()
	if err != nil {
		return nil, err
	}

	return irdb.NewConverter(
		irdb.WithCodec(codec),
		irdb.WithLogger(a.logger),
		irdb.WithProtocolOverride(a.cfg.IRDB.ProtocolOverride),
	)
}

// readEntries parses text entries from stdin.
//
// Entries with malformed timings are logged and skipped; no entry at all is an error.
func (a *app) readEntries(cmd *cobra.Command) ([]irdb.Entry, error) {
	text, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}

	entries, err := irdb.ParseEntries(string(text))
	if err != nil {
		a.logger.Warn("skipped malformed entries", zap.Error(err))
	}
	if len(entries) == 0 {
		return nil, errors.New("no valid IR data found")
	}

	return entries, nil
}

// reportFailures prints every failed item of a batch to stderr.
func reportFailures[T any](cmd *cobra.Command, report irdb.Report[T]) error {
	if report.Failed() == 0 {
		return nil
	}

	for _, res := range report.Results {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", res.Name, res.Err)
		}
	}

	return fmt.Errorf("%w: %d of %d", errBatchFailed, report.Failed(), len(report.Results))
}

// timingSeparators turns brackets and commas into spaces.
var timingSeparators = strings.NewReplacer(",", " ", "[", " ", "]", " ")

// joinTimings joins timing lists written with spaces, commas or brackets into the
// comma-separated form irdb.ParseTimings reads: "[9000, 4500]" and "9000 4500" both become
// "9000,4500".
func joinTimings(parts []string) string {
	return strings.Join(strings.Fields(timingSeparators.Replace(strings.Join(parts, " "))), ",")
}
