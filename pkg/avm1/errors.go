package avm1

import "fmt"

// RuntimeError is the interface implemented by all errors this package
// can produce. Script-facing call sites never surface these to script
// code; operators fall back to Undefined/NaN/no-op instead (fail-soft).
// They exist for the embedder: a non-nil error from an exported entry
// point always means the *caller* misused the runtime, not the script.
type RuntimeError interface {
	error
	Kind() string // "Coercion", "Invocation" or "Construction"
	// Message returns the specific error message without the kind prefix.
	Message() string
}

// CoercionError reports a strict accessor being applied to a Value of
// the wrong type (e.g. AsF64 on a string).
type CoercionError struct {
	Expected string
	Got      string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("Coercion Error: expected %s, found %s", e.Expected, e.Got)
}
func (e *CoercionError) Kind() string    { return "Coercion" }
func (e *CoercionError) Message() string { return fmt.Sprintf("expected %s, found %s", e.Expected, e.Got) }

// InvocationError reports an attempt to call a value that is not
// callable.
type InvocationError struct {
	Target string
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("Invocation Error: expected function, found %s", e.Target)
}
func (e *InvocationError) Kind() string    { return "Invocation" }
func (e *InvocationError) Message() string { return fmt.Sprintf("expected function, found %s", e.Target) }

// ConstructionError reports a malformed constructor or super binding
// setup during activation construction.
type ConstructionError struct {
	Msg string
}

func (e *ConstructionError) Error() string {
	return "Construction Error: " + e.Msg
}
func (e *ConstructionError) Kind() string    { return "Construction" }
func (e *ConstructionError) Message() string { return e.Msg }
