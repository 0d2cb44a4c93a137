package avm1

import "math"

// wrapMath adapts a one-argument float function into a native method;
// a missing argument yields NaN.
func wrapMath(std func(float64) float64) NativeFunction {
	return func(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
		if len(args) == 0 {
			return Immediate(NumberValue(math.NaN())), nil
		}
		n, err := args[0].AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		return Immediate(NumberValue(std(n))), nil
	}
}

func mathAtan2(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) == 0 {
		return Immediate(NumberValue(math.NaN())), nil
	}
	y, err := args[0].AsNumber(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	x := 0.0
	if len(args) > 1 {
		x, err = args[1].AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
	}
	return Immediate(NumberValue(math.Atan2(y, x))), nil
}

func mathPow(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) < 2 {
		return Immediate(NumberValue(math.NaN())), nil
	}
	base, err := args[0].AsNumber(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	exp, err := args[1].AsNumber(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	return Immediate(NumberValue(math.Pow(base, exp))), nil
}

func mathMax(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	out := math.Inf(-1)
	for _, arg := range args {
		n, err := arg.AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		if math.IsNaN(n) {
			return Immediate(NumberValue(math.NaN())), nil
		}
		out = math.Max(out, n)
	}
	return Immediate(NumberValue(out)), nil
}

func mathMin(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	out := math.Inf(1)
	for _, arg := range args {
		n, err := arg.AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		if math.IsNaN(n) {
			return Immediate(NumberValue(math.NaN())), nil
		}
		out = math.Min(out, n)
	}
	return Immediate(NumberValue(out)), nil
}

func mathRandom(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	return Immediate(NumberValue(ctx.randFloat())), nil
}

// mathRound rounds half toward positive infinity, not away from zero.
func mathRound(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) == 0 {
		return Immediate(NumberValue(math.NaN())), nil
	}
	n, err := args[0].AsNumber(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	return Immediate(NumberValue(math.Floor(n + 0.5))), nil
}

// createMathObject builds the `Math` singleton.
func createMathObject(proto Object, constr Object, fnProto Object) Object {
	m := NewScriptObject(proto)
	m.SetConstr(constr)

	constAttrs := DontDelete | ReadOnly | DontEnum
	m.DefineValue("E", NumberValue(math.E), constAttrs)
	m.DefineValue("LN10", NumberValue(math.Ln10), constAttrs)
	m.DefineValue("LN2", NumberValue(math.Ln2), constAttrs)
	m.DefineValue("LOG10E", NumberValue(math.Log10E), constAttrs)
	m.DefineValue("LOG2E", NumberValue(math.Log2E), constAttrs)
	m.DefineValue("PI", NumberValue(math.Pi), constAttrs)
	m.DefineValue("SQRT1_2", NumberValue(math.Sqrt(0.5)), constAttrs)
	m.DefineValue("SQRT2", NumberValue(math.Sqrt2), constAttrs)

	m.ForceSetFunction("abs", wrapMath(math.Abs), fnProto, constAttrs)
	m.ForceSetFunction("acos", wrapMath(math.Acos), fnProto, constAttrs)
	m.ForceSetFunction("asin", wrapMath(math.Asin), fnProto, constAttrs)
	m.ForceSetFunction("atan", wrapMath(math.Atan), fnProto, constAttrs)
	m.ForceSetFunction("ceil", wrapMath(math.Ceil), fnProto, constAttrs)
	m.ForceSetFunction("cos", wrapMath(math.Cos), fnProto, constAttrs)
	m.ForceSetFunction("exp", wrapMath(math.Exp), fnProto, constAttrs)
	m.ForceSetFunction("floor", wrapMath(math.Floor), fnProto, constAttrs)
	m.ForceSetFunction("log", wrapMath(math.Log), fnProto, constAttrs)
	m.ForceSetFunction("sin", wrapMath(math.Sin), fnProto, constAttrs)
	m.ForceSetFunction("sqrt", wrapMath(math.Sqrt), fnProto, constAttrs)
	m.ForceSetFunction("tan", wrapMath(math.Tan), fnProto, constAttrs)
	m.ForceSetFunction("atan2", mathAtan2, fnProto, constAttrs)
	m.ForceSetFunction("pow", mathPow, fnProto, constAttrs)
	m.ForceSetFunction("max", mathMax, fnProto, constAttrs)
	m.ForceSetFunction("min", mathMin, fnProto, constAttrs)
	m.ForceSetFunction("random", mathRandom, fnProto, constAttrs)
	m.ForceSetFunction("round", mathRound, fnProto, constAttrs)

	return m
}
