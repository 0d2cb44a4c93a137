package avm1

// booleanConstructor is the `Boolean` constructor/function. As a
// constructor it populates the box; as a function it returns the
// coerced value, or Undefined when called with no argument.
func booleanConstructor(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	retValue := Undefined
	consValue := False
	if len(args) > 0 {
		b := BooleanValue(args[0].AsBool(avm.CurrentSwfVersion()))
		retValue = b
		consValue = b
	}

	if vbox := this.AsValueObject(); vbox != nil {
		vbox.ReplaceValue(consValue)
	}

	return Immediate(retValue), nil
}

// Boolean.prototype.toString.call(x) yields Undefined for non-bools.
func booleanToString(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if vbox := this.AsValueObject(); vbox != nil {
		if b := vbox.Unbox(); b.IsBool() {
			if b.AsBoolean() {
				return Immediate(NewString("true")), nil
			}
			return Immediate(NewString("false")), nil
		}
	}
	return Immediate(Undefined), nil
}

func booleanValueOf(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if vbox := this.AsValueObject(); vbox != nil {
		if b := vbox.Unbox(); b.IsBool() {
			return Immediate(b), nil
		}
	}
	return Immediate(Undefined), nil
}

// createBooleanProto builds `Boolean` and `Boolean.prototype`. The
// prototype is itself an empty box so prototype method calls on bare
// bools behave.
func createBooleanProto(proto Object, constr Object, fnProto Object, fnConstr Object) (Object, Object) {
	booleanProto := EmptyBox(proto, constr)
	booleanProto.ForceSetFunction("toString", booleanToString, fnProto, DontEnum)
	booleanProto.ForceSetFunction("valueOf", booleanValueOf, fnProto, DontEnum)

	boolean := NewFunctionObject(NativeExecutable(booleanConstructor), fnProto, fnConstr, booleanProto)
	return boolean, booleanProto
}
