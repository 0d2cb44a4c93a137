package avm1

// functionConstructor is the `Function` constructor/function. Script
// cannot compile code at runtime in this language generation, so it
// yields nothing; `new Function()` still produces a callable-shaped
// object through FunctionObject.New.
func functionConstructor(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	return Immediate(Undefined), nil
}

func functionToString(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	return Immediate(NewString("[type Function]")), nil
}

// functionCall is `Function.prototype.call`: invoke with an explicit
// receiver. A missing or non-object receiver binds the global object.
func functionCall(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	exec := this.AsExecutable()
	if exec == nil {
		return Immediate(Undefined), nil
	}
	receiver := avm.Globals()
	var callArgs []Value
	if len(args) > 0 {
		if obj := args[0].ObjectRef(); obj != nil {
			receiver = obj
		}
		callArgs = args[1:]
	}
	return exec.Exec(avm, ctx, receiver, nil, callArgs)
}

// functionApply is `Function.prototype.apply`: like call, with the
// arguments taken from an array-like object.
func functionApply(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	exec := this.AsExecutable()
	if exec == nil {
		return Immediate(Undefined), nil
	}
	receiver := avm.Globals()
	if len(args) > 0 {
		if obj := args[0].ObjectRef(); obj != nil {
			receiver = obj
		}
	}
	var callArgs []Value
	if len(args) > 1 {
		if list := args[1].ObjectRef(); list != nil {
			callArgs = make([]Value, list.Length())
			for i := range callArgs {
				callArgs[i] = list.ArrayElement(i)
			}
		}
	}
	return exec.Exec(avm, ctx, receiver, nil, callArgs)
}

// createFunctionProto builds a half-finished `Function.prototype`:
// methods can only be attached once the prototype itself exists to
// serve as their proto.
func createFunctionProto(objectProto Object) *ScriptObject {
	functionProto := NewScriptObject(objectProto)
	functionProto.ForceSetFunction("toString", functionToString, functionProto, DontEnum)
	functionProto.ForceSetFunction("call", functionCall, functionProto, DontEnum)
	functionProto.ForceSetFunction("apply", functionApply, functionProto, DontEnum)
	return functionProto
}

// finishFunctionObject builds the `Function` constructor now that
// `Object` exists.
func finishFunctionObject(functionProto Object, objectConstr Object) Object {
	fn := NewFunctionObject(NativeExecutable(functionConstructor), functionProto, objectConstr, functionProto)
	return fn
}
