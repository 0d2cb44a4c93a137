package avm1

import "math"

// SystemPrototypes are the builtin prototypes the runtime keeps direct
// references to, regardless of what script later does to `_global`.
// These are, of course, user-modifiable.
type SystemPrototypes struct {
	Object   Object
	Function Object
	Boolean  Object
	Number   Object
	String   Object
	Array    Object
}

// SystemConstructors are the matching builtin constructor functions.
type SystemConstructors struct {
	Object   Object
	Function Object
	Boolean  Object
	Number   Object
	String   Object
	Array    Object
}

func globalIsNaN(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) == 0 {
		return Immediate(True), nil
	}
	n, err := args[0].AsNumber(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	return Immediate(BooleanValue(math.IsNaN(n))), nil
}

// globalRandom is the legacy `random(max)` builtin. A non-number
// argument yields Undefined.
func globalRandom(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) > 0 && args[0].IsNumber() {
		max := args[0].AsFloat()
		if max > 0 {
			return Immediate(NumberValue(math.Floor(ctx.randFloat() * max))), nil
		}
		return Immediate(NumberValue(0)), nil
	}
	return Immediate(Undefined), nil
}

// The NaN and Infinity globals did not exist before version 5, so they
// are virtual and version-gated rather than stored.
func getNaN(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if avm.CurrentSwfVersion() > 4 {
		return Immediate(NumberValue(math.NaN())), nil
	}
	return Immediate(Undefined), nil
}

func getInfinity(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if avm.CurrentSwfVersion() > 4 {
		return Immediate(NumberValue(math.Inf(1))), nil
	}
	return Immediate(Undefined), nil
}

// createGlobals builds the default global scope and builtins for one
// runtime instance.
func createGlobals(avm *Avm1) (SystemPrototypes, SystemConstructors, Object) {
	// `Object` and `Function` are tricky to create, because `Function`
	// is a subclass of `Object`, but `Object` is an instance of
	// `Function`. We dance around half-constructed objects until both
	// are initialized.
	objectProto := NewScriptObject(nil)
	functionProto := createFunctionProto(objectProto)

	fillObjectProto(objectProto, functionProto)
	objectConstr := createObjectObject(objectProto, functionProto)
	functionConstr := finishFunctionObject(functionProto, objectConstr)

	// Second-generation builtins, linked to the constructor `new`
	// would have called for them.
	booleanConstr, booleanProto := createBooleanProto(objectProto, objectConstr, functionProto, functionConstr)
	numberConstr, numberProto := createNumberProto(objectProto, objectConstr, functionProto, functionConstr)
	stringConstr, stringProto := createStringProto(objectProto, objectConstr, functionProto, functionConstr)
	arrayConstr, arrayProto := createArrayProto(objectProto, objectConstr, functionProto, functionConstr)

	globals := NewScriptObject(nil)
	globals.DefineValue("Object", ObjectValue(objectConstr), 0)
	globals.DefineValue("Function", ObjectValue(functionConstr), 0)
	globals.DefineValue("Boolean", ObjectValue(booleanConstr), 0)
	globals.DefineValue("Number", ObjectValue(numberConstr), 0)
	globals.DefineValue("String", ObjectValue(stringConstr), 0)
	globals.DefineValue("Array", ObjectValue(arrayConstr), 0)
	globals.DefineValue("Math", ObjectValue(createMathObject(objectProto, objectConstr, functionProto)), 0)

	globals.ForceSetFunction("isNaN", globalIsNaN, functionProto, 0)
	globals.ForceSetFunction("random", globalRandom, functionProto, 0)
	globals.ForceSetFunction("ASSetPropFlags", asSetPropFlags, functionProto, 0)

	globals.AddProperty("NaN", NativeExecutable(getNaN), nil, 0)
	globals.AddProperty("Infinity", NativeExecutable(getInfinity), nil, 0)

	protos := SystemPrototypes{
		Object:   objectProto,
		Function: functionProto,
		Boolean:  booleanProto,
		Number:   numberProto,
		String:   stringProto,
		Array:    arrayProto,
	}
	constrs := SystemConstructors{
		Object:   objectConstr,
		Function: functionConstr,
		Boolean:  booleanConstr,
		Number:   numberConstr,
		String:   stringConstr,
		Array:    arrayConstr,
	}
	return protos, constrs, globals
}
