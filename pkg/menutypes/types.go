// Package menutypes provides the shared type definitions for the menukit
// engine: registered options, parameter descriptors, resolution outcomes,
// and the error taxonomy used across registration, resolution, and dispatch.
package menutypes

// Handler is the callable behind a menu option. Arguments arrive in the
// option's declared parameter order, already cast to each parameter's kind
// (or empty when argument prompting is disabled).
type Handler func(args []any) error

// ParamKind identifies how raw prompt text is cast into a handler argument.
type ParamKind string

// Supported parameter kinds.
const (
	ParamString ParamKind = "string" // raw text, passed through unmodified
	ParamInt    ParamKind = "int"    // base-10 integer
	ParamFloat  ParamKind = "float"  // float64
	ParamBool   ParamKind = "bool"   // truthy/falsy word sets
	ParamList   ParamKind = "list"   // comma-separated strings
	ParamRaw    ParamKind = "raw"    // no declared type, raw text passed through
)

// Param describes one input slot of a handler. Descriptors are supplied at
// registration time and frozen on the resulting Option.
type Param struct {
	Name       string    // identifier used when prompting
	Kind       ParamKind // how raw text is cast; zero value behaves like ParamRaw
	HasDefault bool      // whether omission is permitted
	Default    any       // fallback used when input is empty and HasDefault is set
}

// Option represents one registered command, reachable by name, alias, or
// 1-based index in registration order.
type Option struct {
	Name    string   // primary name, unique across the registry (case-insensitive)
	Aliases []string // additional identifiers, injective across the whole registry
	Help    string   // optional description, display only
	Handler Handler  // the owned callable
	Params  []Param  // ordered parameter descriptors, fixed at registration
}

// ResolutionKind tags the outcome of resolving a user token.
type ResolutionKind string

// Resolution outcomes.
const (
	ResolutionMatched   ResolutionKind = "matched"
	ResolutionAmbiguous ResolutionKind = "ambiguous"
	ResolutionNotFound  ResolutionKind = "not_found"
	ResolutionQuit      ResolutionKind = "quit"
)

// Resolution is the outcome of matching one user token against the registry.
// Exactly the fields relevant to Kind are populated; a Resolution is produced
// fresh per call and never stored.
type Resolution struct {
	Kind        ResolutionKind
	Option      *Option  // set when Kind is ResolutionMatched
	Candidates  []string // sorted primary names, set when Kind is ResolutionAmbiguous
	Token       string   // trimmed original token, set when Kind is ResolutionNotFound
	Suggestions []string // near-miss names for "did you mean", may be empty
}
