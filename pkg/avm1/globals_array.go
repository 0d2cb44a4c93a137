package avm1

import "strings"

// arrayConstructor is the `Array` constructor/function. A single
// numeric argument sets the length; any other argument list becomes
// the elements.
func arrayConstructor(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) == 1 && args[0].IsNumber() {
		this.SetLength(int(args[0].AsFloat()))
		return Immediate(Undefined), nil
	}
	for i, arg := range args {
		this.SetArrayElement(i, arg)
	}
	return Immediate(Undefined), nil
}

func arrayPush(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	length := this.Length()
	for i, arg := range args {
		length = this.SetArrayElement(length+i, arg)
	}
	return Immediate(NumberValue(float64(length))), nil
}

func arrayPop(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	length := this.Length()
	if length == 0 {
		return Immediate(Undefined), nil
	}
	last := this.ArrayElement(length - 1)
	this.DeleteArrayElement(length - 1)
	this.SetLength(length - 1)
	return Immediate(last), nil
}

func arrayJoin(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	sep := ","
	if len(args) > 0 && !args[0].IsUndefined() {
		s, err := args[0].CoerceToString(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		sep = s
	}
	parts := make([]string, this.Length())
	for i := range parts {
		elem := this.ArrayElement(i)
		if elem.IsUndefined() || elem.IsNull() {
			continue
		}
		s, err := elem.CoerceToString(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		parts[i] = s
	}
	return Immediate(NewString(strings.Join(parts, sep))), nil
}

func arrayToString(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	return arrayJoin(avm, ctx, this, nil)
}

func arrayReverse(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	length := this.Length()
	for i, j := 0, length-1; i < j; i, j = i+1, j-1 {
		a, b := this.ArrayElement(i), this.ArrayElement(j)
		this.SetArrayElement(i, b)
		this.SetArrayElement(j, a)
	}
	return Immediate(ObjectValue(this)), nil
}

// createArrayProto builds `Array` and `Array.prototype`. The prototype
// itself carries dense storage so inherited methods see an array-like
// receiver.
func createArrayProto(proto Object, constr Object, fnProto Object, fnConstr Object) (Object, Object) {
	arrayProto := NewArrayObject(proto)
	arrayProto.SetConstr(constr)
	arrayProto.ForceSetFunction("push", arrayPush, fnProto, DontEnum)
	arrayProto.ForceSetFunction("pop", arrayPop, fnProto, DontEnum)
	arrayProto.ForceSetFunction("join", arrayJoin, fnProto, DontEnum)
	arrayProto.ForceSetFunction("toString", arrayToString, fnProto, DontEnum)
	arrayProto.ForceSetFunction("reverse", arrayReverse, fnProto, DontEnum)

	array := NewFunctionObject(NativeExecutable(arrayConstructor), fnProto, fnConstr, arrayProto)
	return array, arrayProto
}

// NewArray builds a dense array instance wired to this runtime's Array
// prototype and constructor.
func (avm *Avm1) NewArray(elements []Value) Object {
	arr := NewArrayObject(avm.Prototypes().Array)
	arr.SetConstr(avm.Constructors().Array)
	for i, elem := range elements {
		arr.SetArrayElement(i, elem)
	}
	return arr
}
