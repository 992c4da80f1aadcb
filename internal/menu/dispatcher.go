package menu

import (
	"menukit/pkg/menutypes"
)

// DispatchKind tags the outcome of one dispatch attempt.
type DispatchKind string

// Dispatch outcomes.
const (
	DispatchInvoked   DispatchKind = "invoked"   // option resolved and handler ran cleanly
	DispatchQuit      DispatchKind = "quit"      // terminal; the run loop should stop
	DispatchNotFound  DispatchKind = "not_found" // reportable; nothing was invoked
	DispatchAmbiguous DispatchKind = "ambiguous" // reportable; nothing was invoked
	DispatchFailed    DispatchKind = "failed"    // collection or handler error, see returned error
)

// DispatchResult reports what a dispatch attempt did, carrying the
// diagnostic data the host needs to render the outcome.
type DispatchResult struct {
	Kind        DispatchKind
	Option      *menutypes.Option // set once a token resolved to an option
	Candidates  []string          // sorted primary names for DispatchAmbiguous
	Token       string            // trimmed original token for DispatchNotFound
	Suggestions []string          // near-miss names for DispatchNotFound
}

// Dispatcher orchestrates resolution, argument collection, and invocation
// for one registry.
type Dispatcher struct {
	registry *Registry
	askArgs  bool
	prompt   PromptFunc
}

// NewDispatcher builds a dispatcher over the registry. prompt is only
// consulted when askArgs is enabled and the resolved option declares
// parameters.
func NewDispatcher(registry *Registry, askArgs bool, prompt PromptFunc) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		askArgs:  askArgs,
		prompt:   prompt,
	}
}

// Dispatch resolves a raw token and, on a match, invokes the option. Quit
// yields a terminal result; NotFound and Ambiguous yield reportable
// results with a nil error and nothing invoked. Collection failures return
// their typed error (MissingArgumentError, CastError); handler faults are
// returned wrapped in HandlerError, never swallowed. A failed dispatch
// never mutates the registry.
func (d *Dispatcher) Dispatch(token string) (DispatchResult, error) {
	res := d.registry.Resolve(token)
	switch res.Kind {
	case menutypes.ResolutionQuit:
		return DispatchResult{Kind: DispatchQuit}, nil
	case menutypes.ResolutionNotFound:
		return DispatchResult{
			Kind:        DispatchNotFound,
			Token:       res.Token,
			Suggestions: res.Suggestions,
		}, nil
	case menutypes.ResolutionAmbiguous:
		return DispatchResult{
			Kind:       DispatchAmbiguous,
			Candidates: res.Candidates,
		}, nil
	}

	opt := res.Option
	var args []any
	if d.askArgs && len(opt.Params) > 0 {
		collected, err := Collect(opt.Params, d.prompt)
		if err != nil {
			return DispatchResult{Kind: DispatchFailed, Option: opt}, err
		}
		args = collected
	}

	if err := opt.Handler(args); err != nil {
		return DispatchResult{Kind: DispatchFailed, Option: opt},
			&menutypes.HandlerError{Option: opt.Name, Err: err}
	}
	return DispatchResult{Kind: DispatchInvoked, Option: opt}, nil
}
