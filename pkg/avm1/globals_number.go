package avm1

import "math"

// numberConstructor is the `Number` constructor/function.
func numberConstructor(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	value := 0.0
	if len(args) > 0 {
		n, err := args[0].AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		value = n
	}

	if vbox := this.AsValueObject(); vbox != nil {
		vbox.ReplaceValue(NumberValue(value))
	}

	return Immediate(NumberValue(value)), nil
}

func numberToString(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if vbox := this.AsValueObject(); vbox != nil {
		if n := vbox.Unbox(); n.IsNumber() {
			return Immediate(NewString(f64ToString(n.AsFloat()))), nil
		}
	}
	return Immediate(Undefined), nil
}

func numberValueOf(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if vbox := this.AsValueObject(); vbox != nil {
		if n := vbox.Unbox(); n.IsNumber() {
			return Immediate(n), nil
		}
	}
	return Immediate(Undefined), nil
}

// createNumberProto builds `Number` and `Number.prototype`, with the
// class constants on the constructor.
func createNumberProto(proto Object, constr Object, fnProto Object, fnConstr Object) (Object, Object) {
	numberProto := EmptyBox(proto, constr)
	numberProto.ForceSetFunction("toString", numberToString, fnProto, DontEnum)
	numberProto.ForceSetFunction("valueOf", numberValueOf, fnProto, DontEnum)

	number := NewFunctionObject(NativeExecutable(numberConstructor), fnProto, fnConstr, numberProto)

	constAttrs := DontDelete | ReadOnly | DontEnum
	number.DefineValue("MAX_VALUE", NumberValue(math.MaxFloat64), constAttrs)
	number.DefineValue("MIN_VALUE", NumberValue(math.SmallestNonzeroFloat64), constAttrs)
	number.DefineValue("NaN", NumberValue(math.NaN()), constAttrs)
	number.DefineValue("POSITIVE_INFINITY", NumberValue(math.Inf(1)), constAttrs)
	number.DefineValue("NEGATIVE_INFINITY", NumberValue(math.Inf(-1)), constAttrs)

	return number, numberProto
}
