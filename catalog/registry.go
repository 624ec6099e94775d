package catalog

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/hasbyte1/go-lowdash/arr"
	"github.com/hasbyte1/go-lowdash/text"
	"github.com/hasbyte1/go-lowdash/validate"
)

// Registry is a goroutine-safe set of validated functions keyed by name.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]*validate.Func

	rngMu sync.Mutex
	rng   *rand.Rand

	log logrus.FieldLogger
}

// Option configures a [Registry].
type Option func(*Registry)

// WithRand makes shuffle and scramble draw from r instead of the global
// source, so a seeded r gives reproducible results.
func WithRand(r *rand.Rand) Option {
	return func(reg *Registry) { reg.rng = r }
}

// WithLogger sets the logger that receives rejected calls.
func WithLogger(l logrus.FieldLogger) Option {
	return func(reg *Registry) { reg.log = l }
}

// New returns a Registry holding every builtin function.
func New(opts ...Option) *Registry {
	r := &Registry{
		funcs: make(map[string]*validate.Func),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, fn := range r.builtins() {
		r.Register(fn)
	}
	return r
}

// Register adds fn under fn.Name(), replacing any function of that name.
func (r *Registry) Register(fn *validate.Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[fn.Name()] = fn
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (*validate.Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call runs the named function with positional args and keyword kwargs.
// Validation failures are returned as *validate.Error; failures raised by
// the function itself are prefixed with its name.
func (r *Registry) Call(name string, args []any, kwargs map[string]any) (any, error) {
	fn, ok := r.Lookup(name)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrFunctionNotFound, name)
		r.log.WithField("function", name).WithError(err).Debug("rejected call")
		return nil, err
	}
	out, err := fn.Call(args, kwargs)
	if err != nil {
		var verr *validate.Error
		if !errors.As(err, &verr) {
			err = fmt.Errorf("lowdash.%s: %w", name, err)
		}
		r.log.WithField("function", name).WithError(err).Debug("rejected call")
		return nil, err
	}
	return out, nil
}

func (r *Registry) shuffle(items []any) []any {
	if r.rng == nil {
		return arr.Shuffle(items)
	}
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return arr.ShuffleWith(items, r.rng)
}

func (r *Registry) scramble(s string) string {
	if r.rng == nil {
		return text.Scramble(s)
	}
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return text.ScrambleWith(s, r.rng)
}

var std = New()

// Default returns the package-level registry used by [Call] and [Register].
func Default() *Registry { return std }

// Register adds fn to the package-level registry.
func Register(fn *validate.Func) { std.Register(fn) }

// Call runs a function from the package-level registry.
func Call(name string, args []any, kwargs map[string]any) (any, error) {
	return std.Call(name, args, kwargs)
}
