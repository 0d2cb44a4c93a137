package avm1

// ReturnValue is the result of invoking something that may or may not
// have produced its value yet: native calls yield an immediate value,
// bytecode calls yield the activation frame whose execution will
// produce it. Callers that need the value now call Resolve.
type ReturnValue struct {
	value Value
	frame *Activation
}

// Immediate wraps an already-computed value.
func Immediate(value Value) ReturnValue {
	return ReturnValue{value: value}
}

// FrameResult wraps a pushed-but-not-yet-run activation frame.
func FrameResult(frame *Activation) ReturnValue {
	return ReturnValue{frame: frame}
}

func (rv ReturnValue) IsImmediate() bool { return rv.frame == nil }

// Frame returns the pending activation, or nil for immediate results.
func (rv ReturnValue) Frame() *Activation { return rv.frame }

// Resolve produces the concrete value. Frame-backed results are run
// through the installed FrameRunner; without one they resolve to
// Undefined, so a host that never executes bytecode still gets sane
// fail-soft behavior from valueOf/toString dispatch.
func (rv ReturnValue) Resolve(avm *Avm1, ctx *UpdateContext) (Value, error) {
	if rv.frame == nil {
		return rv.value, nil
	}
	if avm.runner == nil {
		log.Warning("no frame runner installed; resolving frame result as undefined")
		avm.PopStackFrame()
		return Undefined, nil
	}
	return avm.runner(avm, ctx, rv.frame)
}
