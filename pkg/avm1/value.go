package avm1

import (
	"math"
	"strconv"
	"strings"
)

type ValueType uint8

const (
	TypeUndefined ValueType = iota
	TypeNull
	TypeBool
	TypeNumber
	TypeString
	TypeObject
)

// String returns a human-readable name for the ValueType.
func (vt ValueType) String() string {
	switch vt {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBool:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the tagged union of every value the runtime can manipulate.
// Primitives are stored inline; objects are shared handles whose
// lifetime belongs to the host collector.
type Value struct {
	typ ValueType
	num float64
	str string
	obj Object
}

var (
	Undefined = Value{typ: TypeUndefined}
	Null      = Value{typ: TypeNull}
	True      = Value{typ: TypeBool, num: 1}
	False     = Value{typ: TypeBool}
)

func BooleanValue(value bool) Value {
	if value {
		return True
	}
	return False
}

func NumberValue(value float64) Value {
	return Value{typ: TypeNumber, num: value}
}

func NewString(value string) Value {
	return Value{typ: TypeString, str: value}
}

// ObjectValue wraps an object handle. A nil handle becomes Undefined so
// lookup failures stay fail-soft for callers that don't check.
func ObjectValue(object Object) Value {
	if object == nil {
		return Undefined
	}
	return Value{typ: TypeObject, obj: object}
}

func (v Value) Type() ValueType { return v.typ }

func (v Value) IsUndefined() bool { return v.typ == TypeUndefined }
func (v Value) IsNull() bool      { return v.typ == TypeNull }
func (v Value) IsBool() bool      { return v.typ == TypeBool }
func (v Value) IsNumber() bool    { return v.typ == TypeNumber }
func (v Value) IsString() bool    { return v.typ == TypeString }
func (v Value) IsObject() bool    { return v.typ == TypeObject }

// AsBoolean returns the raw bool payload. Only meaningful for TypeBool.
func (v Value) AsBoolean() bool { return v.typ == TypeBool && v.num != 0 }

// AsFloat returns the raw number payload. Only meaningful for TypeNumber.
func (v Value) AsFloat() float64 { return v.num }

// AsStringRaw returns the raw string payload. Only meaningful for TypeString.
func (v Value) AsStringRaw() string { return v.str }

// ObjectRef returns the object handle, or nil for non-objects.
func (v Value) ObjectRef() Object {
	if v.typ != TypeObject {
		return nil
	}
	return v.obj
}

// AsF64 asserts that the value is a Number. CoercionError otherwise;
// this is for engine-internal call sites, never for script semantics.
func (v Value) AsF64() (float64, error) {
	if v.typ != TypeNumber {
		return 0, &CoercionError{Expected: "Number", Got: v.typ.String()}
	}
	return v.num, nil
}

// AsI32 asserts Number and truncates toward zero.
func (v Value) AsI32() (int32, error) {
	f, err := v.AsF64()
	return int32(f), err
}

// AsU32 asserts Number and truncates toward zero.
func (v Value) AsU32() (uint32, error) {
	f, err := v.AsF64()
	return uint32(f), err
}

// AsStringValue asserts that the value is a String.
func (v Value) AsStringValue() (string, error) {
	if v.typ != TypeString {
		return "", &CoercionError{Expected: "String", Got: v.typ.String()}
	}
	return v.str, nil
}

// AsObject asserts that the value is an Object.
func (v Value) AsObject() (Object, error) {
	if v.typ != TypeObject {
		return nil, &CoercionError{Expected: "Object", Got: v.typ.String()}
	}
	return v.obj, nil
}

// Equal is the engine's own equality: no coercion, NaN equals NaN,
// objects by identity, strings by content. This is what the `==` used
// on already-matching types inside the interpreter reduces to.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeUndefined, TypeNull:
		return true
	case TypeBool:
		return v.AsBoolean() == other.AsBoolean()
	case TypeNumber:
		return v.num == other.num || (math.IsNaN(v.num) && math.IsNaN(other.num))
	case TypeString:
		return v.str == other.str
	case TypeObject:
		return v.obj.AsPtr() == other.obj.AsPtr()
	default:
		return false
	}
}

// IntoNumberV1 is the SWF4-era ToNumber: anything unparseable becomes
// 0.0, not NaN. Legacy arithmetic opcodes use this.
func (v Value) IntoNumberV1() float64 {
	switch v.typ {
	case TypeBool:
		if v.AsBoolean() {
			return 1.0
		}
		return 0.0
	case TypeNumber:
		return v.num
	case TypeString:
		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return 0.0
		}
		return f
	default:
		return 0.0
	}
}

// primitiveAsNumber is ECMA-262 2nd edition s. 9.3 ToNumber, applied
// after ToPrimitive. String handling is version-dependent: content
// version 6 introduced hexadecimal literals, parsed by accumulating
// into a wrapping 32-bit value and sign-extending the result (the
// historical overflow quirk).
func (v Value) primitiveAsNumber(swfVersion uint8) float64 {
	switch v.typ {
	case TypeBool:
		if v.AsBoolean() {
			return 1.0
		}
		return 0.0
	case TypeNumber:
		return v.num
	case TypeString:
		s := v.str
		if swfVersion >= 6 && strings.HasPrefix(s, "0x") {
			var n uint32
			for i := 2; i < len(s); i++ {
				var digit uint32
				switch c := s[i]; {
				case c >= '0' && c <= '9':
					digit = uint32(c - '0')
				case c >= 'a' && c <= 'f':
					digit = uint32(c-'a') + 10
				case c >= 'A' && c <= 'F':
					digit = uint32(c-'A') + 10
				default:
					return math.NaN()
				}
				n = n<<4 | digit
			}
			return float64(int32(n))
		}
		if s == "" {
			return 0.0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		// Undefined, Null, Object (which should not reach here).
		return math.NaN()
	}
}

// AsNumber is ECMA-262 2nd edition s. 9.3 ToNumber.
func (v Value) AsNumber(avm *Avm1, ctx *UpdateContext) (float64, error) {
	if v.typ == TypeObject {
		prim, err := v.ToPrimitiveNum(avm, ctx)
		if err != nil {
			return 0, err
		}
		return prim.primitiveAsNumber(avm.CurrentSwfVersion()), nil
	}
	return v.primitiveAsNumber(avm.CurrentSwfVersion()), nil
}

// ToPrimitiveNum is ECMA-262 2nd edition s. 9.1 ToPrimitive with a
// Number hint.
//
// NOTE: This deliberately omits the part of the spec where you're
// supposed to fall back to `toString`, because the original player did
// the same thing.
func (v Value) ToPrimitiveNum(avm *Avm1, ctx *UpdateContext) (Value, error) {
	if v.typ != TypeObject {
		return v, nil
	}
	rv, err := v.obj.Get("valueOf", avm, ctx)
	if err != nil {
		return Undefined, err
	}
	valueOf, err := rv.Resolve(avm, ctx)
	if err != nil {
		return Undefined, err
	}
	if impl := valueOf.ObjectRef(); impl != nil {
		out, err := impl.Call(avm, ctx, v.obj, nil, nil)
		if err != nil {
			return Undefined, err
		}
		return out.Resolve(avm, ctx)
	}
	return v, nil
}

// AbstractLt is ECMA-262 2nd edition s. 11.8.5, the abstract relational
// comparison. It yields Undefined when either side coerces to NaN.
func (v Value) AbstractLt(other Value, avm *Avm1, ctx *UpdateContext) (Value, error) {
	primSelf, err := v.ToPrimitiveNum(avm, ctx)
	if err != nil {
		return Undefined, err
	}
	primOther, err := other.ToPrimitiveNum(avm, ctx)
	if err != nil {
		return Undefined, err
	}

	if primSelf.IsString() && primOther.IsString() {
		return BooleanValue(primSelf.str < primOther.str), nil
	}

	version := avm.CurrentSwfVersion()
	numSelf := primSelf.primitiveAsNumber(version)
	numOther := primOther.primitiveAsNumber(version)

	switch {
	case math.IsNaN(numSelf) || math.IsNaN(numOther):
		return Undefined, nil
	case numSelf == numOther,
		math.IsInf(numSelf, 1),
		math.IsInf(numOther, -1):
		return False, nil
	case math.IsInf(numSelf, -1), math.IsInf(numOther, 1):
		return True, nil
	default:
		return BooleanValue(numSelf < numOther), nil
	}
}

// AbstractEq is ECMA-262 2nd edition s. 11.9.3, the abstract equality
// comparison, with this engine's coercion ladder.
func (v Value) AbstractEq(other Value, avm *Avm1, ctx *UpdateContext) (Value, error) {
	switch {
	case v.typ == TypeUndefined && other.typ == TypeUndefined:
		return True, nil
	case v.typ == TypeNull && other.typ == TypeNull:
		return True, nil
	case v.typ == TypeNumber && other.typ == TypeNumber:
		a, b := v.num, other.num
		if math.IsNaN(a) || math.IsNaN(b) {
			return False, nil
		}
		// IEEE equality already treats 0.0 == -0.0 as true.
		return BooleanValue(a == b), nil
	case v.typ == TypeString && other.typ == TypeString:
		return BooleanValue(v.str == other.str), nil
	case v.typ == TypeBool && other.typ == TypeBool:
		return BooleanValue(v.AsBoolean() == other.AsBoolean()), nil
	case v.typ == TypeObject && other.typ == TypeObject:
		return BooleanValue(v.obj.AsPtr() == other.obj.AsPtr()), nil
	case v.typ == TypeUndefined && other.typ == TypeNull:
		return True, nil
	case v.typ == TypeNull && other.typ == TypeUndefined:
		return True, nil
	case v.typ == TypeNumber && other.typ == TypeString:
		n, err := other.AsNumber(avm, ctx)
		if err != nil {
			return Undefined, err
		}
		return v.AbstractEq(NumberValue(n), avm, ctx)
	case v.typ == TypeString && other.typ == TypeNumber:
		n, err := v.AsNumber(avm, ctx)
		if err != nil {
			return Undefined, err
		}
		return NumberValue(n).AbstractEq(other, avm, ctx)
	case v.typ == TypeBool:
		n, err := v.AsNumber(avm, ctx)
		if err != nil {
			return Undefined, err
		}
		return NumberValue(n).AbstractEq(other, avm, ctx)
	case other.typ == TypeBool:
		n, err := other.AsNumber(avm, ctx)
		if err != nil {
			return Undefined, err
		}
		return v.AbstractEq(NumberValue(n), avm, ctx)
	case (v.typ == TypeString || v.typ == TypeNumber) && other.typ == TypeObject:
		nonObjOther, err := other.ToPrimitiveNum(avm, ctx)
		if err != nil {
			return Undefined, err
		}
		if nonObjOther.IsObject() {
			return False, nil
		}
		return v.AbstractEq(nonObjOther, avm, ctx)
	case v.typ == TypeObject && (other.typ == TypeString || other.typ == TypeNumber):
		nonObjSelf, err := v.ToPrimitiveNum(avm, ctx)
		if err != nil {
			return Undefined, err
		}
		if nonObjSelf.IsObject() {
			return False, nil
		}
		return nonObjSelf.AbstractEq(other, avm, ctx)
	default:
		return False, nil
	}
}

// FromBool builds a boolean push value. SWF4 had no true bools and
// pushed 0 or 1 instead; version 5 introduced the real type.
func FromBool(value bool, swfVersion uint8) Value {
	if swfVersion >= 5 {
		return BooleanValue(value)
	}
	if value {
		return NumberValue(1.0)
	}
	return NumberValue(0.0)
}

// AsBool is the engine's truthiness rule. Strings changed behavior in
// version 7: before that a string is truthy iff it parses to a nonzero
// number; from 7 on, iff it is non-empty.
func (v Value) AsBool(swfVersion uint8) bool {
	switch v.typ {
	case TypeBool:
		return v.AsBoolean()
	case TypeNumber:
		return !math.IsNaN(v.num) && v.num != 0.0
	case TypeString:
		if swfVersion >= 7 {
			return v.str != ""
		}
		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			f = 0.0
		}
		return f != 0.0
	case TypeObject:
		return true
	default:
		return false
	}
}

// IntoString coerces to a string without calling object methods.
// Undefined stringifies differently starting with version 7.
func (v Value) IntoString(swfVersion uint8) string {
	switch v.typ {
	case TypeUndefined:
		if swfVersion >= 7 {
			return "undefined"
		}
		return ""
	case TypeNull:
		return "null"
	case TypeBool:
		if v.AsBoolean() {
			return "true"
		}
		return "false"
	case TypeNumber:
		return f64ToString(v.num)
	case TypeString:
		return v.str
	case TypeObject:
		return v.obj.AsString()
	default:
		return ""
	}
}

// CoerceToString coerces to a string, calling the object's `toString`
// when there is one. Objects whose toString yields a non-string
// stringify as "[type Object]".
func (v Value) CoerceToString(avm *Avm1, ctx *UpdateContext) (string, error) {
	if v.typ != TypeObject {
		return v.IntoString(avm.CurrentSwfVersion()), nil
	}
	rv, err := v.obj.Get("toString", avm, ctx)
	if err != nil {
		return "", err
	}
	toString, err := rv.Resolve(avm, ctx)
	if err != nil {
		return "", err
	}
	if impl := toString.ObjectRef(); impl != nil {
		out, err := impl.Call(avm, ctx, v.obj, nil, nil)
		if err != nil {
			return "", err
		}
		result, err := out.Resolve(avm, ctx)
		if err != nil {
			return "", err
		}
		if result.IsString() {
			return result.str, nil
		}
	}
	return "[type Object]", nil
}

// TypeOf implements the `typeof` operator.
func (v Value) TypeOf() string {
	switch v.typ {
	case TypeUndefined:
		return "undefined"
	case TypeNull:
		return "null"
	case TypeBool:
		return "boolean"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeObject:
		return v.obj.TypeOf()
	default:
		return "undefined"
	}
}

// Call invokes the value as a function. Calling a non-object is a
// programmer error at engine call sites, hence the typed error.
func (v Value) Call(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if v.typ != TypeObject {
		return Immediate(Undefined), &InvocationError{Target: v.typ.String()}
	}
	return v.obj.Call(avm, ctx, this, nil, args)
}

// f64ToString renders a number the way the legacy engine's default
// number-to-string did. Integral values print without a fraction.
func f64ToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return strconv.FormatInt(int64(f), 10)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
