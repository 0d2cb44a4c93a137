package avm1

import (
	"math"
	"strings"
)

// stringConstructor is the `String` constructor/function. The box also
// carries an own `length` property.
func stringConstructor(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	value := ""
	if len(args) > 0 {
		s, err := args[0].CoerceToString(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		value = s
	}

	if vbox := this.AsValueObject(); vbox != nil {
		vbox.ReplaceValue(NewString(value))
		vbox.DefineValue("length", NumberValue(float64(len(value))), DontDelete|ReadOnly|DontEnum)
	}

	return Immediate(NewString(value)), nil
}

// unboxString fetches the receiver's string, whether it is a box or a
// bare object with a usable toString.
func unboxString(avm *Avm1, ctx *UpdateContext, this Object) (string, bool) {
	if vbox := this.AsValueObject(); vbox != nil {
		if s := vbox.Unbox(); s.IsString() {
			return s.AsStringRaw(), true
		}
	}
	return "", false
}

func stringToString(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if s, ok := unboxString(avm, ctx, this); ok {
		return Immediate(NewString(s)), nil
	}
	return Immediate(Undefined), nil
}

func stringValueOf(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if s, ok := unboxString(avm, ctx, this); ok {
		return Immediate(NewString(s)), nil
	}
	return Immediate(Undefined), nil
}

func stringCharAt(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	s, ok := unboxString(avm, ctx, this)
	if !ok {
		return Immediate(NewString("")), nil
	}
	i := 0
	if len(args) > 0 {
		n, err := args[0].AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		i = int(n)
	}
	if i < 0 || i >= len(s) {
		return Immediate(NewString("")), nil
	}
	return Immediate(NewString(s[i : i+1])), nil
}

func stringCharCodeAt(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	s, ok := unboxString(avm, ctx, this)
	if !ok {
		return Immediate(NumberValue(math.NaN())), nil
	}
	i := 0
	if len(args) > 0 {
		n, err := args[0].AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		i = int(n)
	}
	if i < 0 || i >= len(s) {
		return Immediate(NumberValue(math.NaN())), nil
	}
	return Immediate(NumberValue(float64(s[i]))), nil
}

func stringIndexOf(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	s, ok := unboxString(avm, ctx, this)
	if !ok || len(args) == 0 {
		return Immediate(NumberValue(-1)), nil
	}
	needle, err := args[0].CoerceToString(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	from := 0
	if len(args) > 1 {
		n, err := args[1].AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		from = int(n)
	}
	if from < 0 {
		from = 0
	}
	if from > len(s) {
		return Immediate(NumberValue(-1)), nil
	}
	idx := strings.Index(s[from:], needle)
	if idx < 0 {
		return Immediate(NumberValue(-1)), nil
	}
	return Immediate(NumberValue(float64(from + idx))), nil
}

func stringToUpperCase(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if s, ok := unboxString(avm, ctx, this); ok {
		return Immediate(NewString(strings.ToUpper(s))), nil
	}
	return Immediate(Undefined), nil
}

func stringToLowerCase(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if s, ok := unboxString(avm, ctx, this); ok {
		return Immediate(NewString(strings.ToLower(s))), nil
	}
	return Immediate(Undefined), nil
}

// stringFromCharCode is the `String.fromCharCode` class method.
func stringFromCharCode(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	var b strings.Builder
	for _, arg := range args {
		n, err := arg.AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		b.WriteRune(rune(uint16(n)))
	}
	return Immediate(NewString(b.String())), nil
}

// createStringProto builds `String` and `String.prototype`.
func createStringProto(proto Object, constr Object, fnProto Object, fnConstr Object) (Object, Object) {
	stringProto := EmptyBox(proto, constr)
	stringProto.ForceSetFunction("toString", stringToString, fnProto, DontEnum)
	stringProto.ForceSetFunction("valueOf", stringValueOf, fnProto, DontEnum)
	stringProto.ForceSetFunction("charAt", stringCharAt, fnProto, DontEnum)
	stringProto.ForceSetFunction("charCodeAt", stringCharCodeAt, fnProto, DontEnum)
	stringProto.ForceSetFunction("indexOf", stringIndexOf, fnProto, DontEnum)
	stringProto.ForceSetFunction("toUpperCase", stringToUpperCase, fnProto, DontEnum)
	stringProto.ForceSetFunction("toLowerCase", stringToLowerCase, fnProto, DontEnum)

	str := NewFunctionObject(NativeExecutable(stringConstructor), fnProto, fnConstr, stringProto)
	str.ForceSetFunction("fromCharCode", stringFromCharCode, fnProto, DontEnum)
	return str, stringProto
}
