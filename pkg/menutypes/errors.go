package menutypes

import "fmt"

// InvalidNameError reports a registration attempt with an empty name, a name
// containing whitespace, or a handler whose name could not be inferred.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return "invalid option name: name must be non-empty"
	}
	return fmt.Sprintf("invalid option name %q: names must not contain whitespace", e.Name)
}

// DuplicateNameError reports a registration attempt that would shadow an
// existing primary name, alias, or reserved quit token.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("option name %q is already taken", e.Name)
}

// MissingArgumentError reports empty input for a required parameter.
type MissingArgumentError struct {
	Param string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Param)
}

// CastError reports input text that could not be cast to a parameter's
// declared kind.
type CastError struct {
	Param string
	Kind  ParamKind
	Raw   string
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cannot cast %q to %s for argument %s", e.Raw, e.Kind, e.Param)
}

// HandlerError wraps a fault raised by an invoked handler. The dispatcher
// never swallows handler faults; the run loop decides whether to continue.
type HandlerError struct {
	Option string
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("option %s failed: %v", e.Option, e.Err)
}

// Unwrap exposes the handler's original error to errors.Is and errors.As.
func (e *HandlerError) Unwrap() error {
	return e.Err
}
