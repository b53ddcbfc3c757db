package irdb

import (
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/tuyair/errs"
)

// Param names an encoding parameter a Protocol accepts.
type Param uint8

const (
	ParamDevice    Param = iota + 1 // ParamDevice is the device (address) number.
	ParamSubDevice                  // ParamSubDevice is the optional sub-device number.
	ParamFunction                   // ParamFunction is the function (command) number.
)

func (p Param) String() string {
	switch p {
	case ParamDevice:
		return "device"
	case ParamSubDevice:
		return "sub_device"
	case ParamFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Args are the parameters of one protocol encoding.
type Args struct {
	Device    int
	SubDevice int
	Function  int
	// HasSubDevice is false when the source row left the sub-device unset.
	HasSubDevice bool
}

// Protocol generates the raw timing signal of a button press.
//
// Implementations return signed timings (marks positive, spaces negative, or any other sign
// convention); Converter takes magnitudes with Absolute.
type Protocol interface {
	// Name is the protocol name as listed by KnownProtocols, e.g. "NEC" or "Sharp1".
	Name() string
	// Params lists the parameters Encode reads.
	Params() []Param
	// Encode generates the signal for args.
	Encode(args Args) ([]int, error)
}

// Supports reports whether p declares param.
func Supports(p Protocol, param Param) bool {
	return slices.Contains(p.Params(), param)
}

// EncodeFunc generates the signal for args.
type EncodeFunc func(args Args) ([]int, error)

type funcProtocol struct {
	name   string
	params []Param
	encode EncodeFunc
}

// NewProtocol adapts a function to Protocol.
func NewProtocol(name string, params []Param, encode EncodeFunc) Protocol {
	return &funcProtocol{name: name, params: slices.Clone(params), encode: encode}
}

func (p *funcProtocol) Name() string                    { return p.name }
func (p *funcProtocol) Params() []Param                 { return slices.Clone(p.params) }
func (p *funcProtocol) Encode(args Args) ([]int, error) { return p.encode(args) }

// Registry maps protocol names to implementations. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	protocols map[string]Protocol
}

// NewRegistry creates a registry holding protocols.
func NewRegistry(protocols ...Protocol) *Registry {
	r := &Registry{protocols: make(map[string]Protocol, len(protocols))}
	for _, p := range protocols {
		r.Register(p)
	}

	return r
}

// Register adds p, replacing any protocol of the same name.
func (r *Registry) Register(p Protocol) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.protocols[p.Name()] = p
}

// Lookup returns the protocol registered under name. It fails with errs.ErrUnknownProtocol.
func (r *Registry) Lookup(name string) (Protocol, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.protocols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownProtocol, name)
	}

	return p, nil
}

// Names returns the registered protocol names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.protocols))
	for name := range r.protocols {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Absolute returns a copy of signal with every timing replaced by its magnitude.
func Absolute(signal []int) []int {
	out := make([]int, len(signal))
	for i, t := range signal {
		if t < 0 {
			t = -t
		}
		out[i] = t
	}

	return out
}
