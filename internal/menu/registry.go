// Package menu implements the menukit core engine: option registration,
// token resolution, argument collection, and dispatch. The surrounding
// interactive host (display, line reading, run loop) lives in
// internal/shell and talks to this package through plain values.
package menu

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unicode"

	"menukit/pkg/menutypes"
)

// reservedTokens terminate the run loop instead of resolving to a user
// option. They can never be registered.
var reservedTokens = map[string]struct{}{
	"quit": {},
	"exit": {},
	"q":    {},
}

// Registry stores registered options, keyed by lower-cased name and alias,
// and preserves registration order for 1..N index selection. It is built
// incrementally by the host and read-only during a run; no locking is
// needed for the single-writer-then-readers lifecycle.
type Registry struct {
	order []*menutypes.Option
	index map[string]*menutypes.Option
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*menutypes.Option),
	}
}

// registration accumulates the per-call configuration of Register.
type registration struct {
	names  []string
	help   string
	params []menutypes.Param
}

// RegisterOption configures a single Register call.
type RegisterOption func(*registration)

// WithNames supplies an explicit primary name and any number of aliases.
// Without it, Register infers the primary name from the handler's own
// function identifier.
func WithNames(primary string, aliases ...string) RegisterOption {
	return func(r *registration) {
		r.names = append([]string{primary}, aliases...)
	}
}

// WithHelp attaches display-only help text to the option.
func WithHelp(help string) RegisterOption {
	return func(r *registration) {
		r.help = help
	}
}

// WithParams declares the handler's parameter descriptors in prompting
// order. Go offers no reflection over parameter names or defaults, so the
// descriptor list is explicit; it is copied and frozen on the Option.
func WithParams(params ...menutypes.Param) RegisterOption {
	return func(r *registration) {
		r.params = params
	}
}

// Register adds a handler to the registry. The two call shapes — bare
// (name inferred from the function identifier) and parametrized (explicit
// WithNames) — produce identical options. Registration is atomic: every
// name is validated against the registry, the reserved quit tokens, and
// the call's own names before anything is inserted, so a failed call
// leaves the registry unchanged.
func (r *Registry) Register(h menutypes.Handler, opts ...RegisterOption) (*menutypes.Option, error) {
	if h == nil {
		return nil, fmt.Errorf("cannot register a nil handler")
	}

	var reg registration
	for _, opt := range opts {
		opt(&reg)
	}

	names := reg.names
	if len(names) == 0 {
		inferred, err := inferName(h)
		if err != nil {
			return nil, err
		}
		names = []string{inferred}
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" || strings.ContainsFunc(name, unicode.IsSpace) {
			return nil, &menutypes.InvalidNameError{Name: name}
		}
		key := strings.ToLower(name)
		if _, ok := reservedTokens[key]; ok {
			return nil, &menutypes.DuplicateNameError{Name: name}
		}
		if _, ok := r.index[key]; ok {
			return nil, &menutypes.DuplicateNameError{Name: name}
		}
		if _, ok := seen[key]; ok {
			return nil, &menutypes.DuplicateNameError{Name: name}
		}
		seen[key] = struct{}{}
	}

	opt := &menutypes.Option{
		Name:    names[0],
		Aliases: append([]string(nil), names[1:]...),
		Help:    reg.help,
		Handler: h,
		Params:  append([]menutypes.Param(nil), reg.params...),
	}
	for _, name := range names {
		r.index[strings.ToLower(name)] = opt
	}
	r.order = append(r.order, opt)
	return opt, nil
}

// Options returns the registered options in registration order. The slice
// is a copy and safe for the caller to hold.
func (r *Registry) Options() []*menutypes.Option {
	return append([]*menutypes.Option(nil), r.order...)
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.order)
}

// Lookup returns the option registered under the given name or alias,
// case-insensitively.
func (r *Registry) Lookup(name string) (*menutypes.Option, bool) {
	opt, ok := r.index[strings.ToLower(strings.TrimSpace(name))]
	return opt, ok
}

// inferName derives an option name from the handler's function identifier,
// mirroring the bare registration shape. Anonymous functions have no usable
// identifier and must be registered with WithNames.
func inferName(h menutypes.Handler) (string, error) {
	fn := runtime.FuncForPC(reflect.ValueOf(h).Pointer())
	if fn == nil {
		return "", &menutypes.InvalidNameError{Name: ""}
	}
	name := fn.Name() // e.g. "menukit/cmd/menukit.greet" or "main.run.func2"
	name = name[strings.LastIndex(name, "/")+1:]
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm") // method values
	if name == "" || isAnonymous(name) {
		return "", &menutypes.InvalidNameError{Name: ""}
	}
	return name, nil
}

// isAnonymous reports whether a trailing identifier segment names a
// compiler-generated closure ("func1", "func2", ...).
func isAnonymous(name string) bool {
	rest, ok := strings.CutPrefix(name, "func")
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
