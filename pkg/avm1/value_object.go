package avm1

import "unsafe"

// ValueObject is a box for a primitive value. It is a logic error for
// the boxed value to be another object; every constructor guards
// against that by returning the original object instead of boxing it.
type ValueObject struct {
	*ScriptObject

	value Value
}

// Boxed wraps a primitive in a ValueObject with the matching system
// prototype; objects pass through unchanged.
func Boxed(avm *Avm1, ctx *UpdateContext, value Value) Object {
	if obj := value.ObjectRef(); obj != nil {
		return obj
	}

	var proto, constr Object
	switch value.Type() {
	case TypeBool:
		proto, constr = avm.Prototypes().Boolean, avm.Constructors().Boolean
	case TypeNumber:
		proto, constr = avm.Prototypes().Number, avm.Constructors().Number
	case TypeString:
		proto, constr = avm.Prototypes().String, avm.Constructors().String
	}

	obj := EmptyBox(proto, constr)

	// Constructor populates the boxed object with the value.
	switch value.Type() {
	case TypeBool:
		_, _ = booleanConstructor(avm, ctx, obj, []Value{value})
	case TypeNumber:
		_, _ = numberConstructor(avm, ctx, obj, []Value{value})
	case TypeString:
		_, _ = stringConstructor(avm, ctx, obj, []Value{value})
	}

	return obj
}

// EmptyBox builds a box holding Undefined, to be filled by a
// constructor.
func EmptyBox(proto Object, constr Object) *ValueObject {
	base := NewScriptObject(proto)
	base.SetConstr(constr)
	return &ValueObject{ScriptObject: base}
}

// Unbox retrieves the boxed value.
func (o *ValueObject) Unbox() Value { return o.value }

// ReplaceValue changes the value in the box.
func (o *ValueObject) ReplaceValue(value Value) { o.value = value }

func (o *ValueObject) Get(name string, avm *Avm1, ctx *UpdateContext) (ReturnValue, error) {
	return getProperty(o, name, avm, ctx)
}

func (o *ValueObject) Set(name string, value Value, avm *Avm1, ctx *UpdateContext) error {
	return o.setWithReceiver(name, value, avm, ctx, o)
}

// New builds an empty box; the caller's constructor fills it.
func (o *ValueObject) New(avm *Avm1, ctx *UpdateContext, proto Object, args []Value, constructor Object) (Object, error) {
	return EmptyBox(proto, constructor), nil
}

func (o *ValueObject) AsValueObject() *ValueObject { return o }

func (o *ValueObject) AsScriptObject() *ScriptObject { return o.ScriptObject }

func (o *ValueObject) AsPtr() unsafe.Pointer { return unsafe.Pointer(o) }
