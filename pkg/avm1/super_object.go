package avm1

import "unsafe"

// SuperObject is the binding `super` resolves to inside a method:
// property reads delegate to the superclass prototype chain with the
// original receiver bound as `this`, writes vanish, and calling it
// invokes the superclass constructor.
type SuperObject struct {
	// The object `this` refers to in the method body.
	child Object

	// The prototype above the one the method was found on.
	superProto Object
}

// SuperFromThisAndBaseProto builds the super binding for a call.
// baseProto is the prototype the called method was resolved on.
func SuperFromThisAndBaseProto(this Object, baseProto Object, avm *Avm1, ctx *UpdateContext) (*SuperObject, error) {
	return &SuperObject{child: this, superProto: baseProto.Proto()}, nil
}

func (o *SuperObject) GetLocal(name string, avm *Avm1, ctx *UpdateContext, this Object) (ReturnValue, error) {
	if o.superProto == nil {
		return Immediate(Undefined), nil
	}
	return o.superProto.GetLocal(name, avm, ctx, this)
}

// Get reads from the superclass chain, binding the child as receiver.
func (o *SuperObject) Get(name string, avm *Avm1, ctx *UpdateContext) (ReturnValue, error) {
	depth := 0
	for obj := o.superProto; obj != nil; obj = obj.Proto() {
		if depth > protoChainLimit {
			break
		}
		if obj.HasOwnProperty(avm, ctx, name) {
			return obj.GetLocal(name, avm, ctx, o.child)
		}
		depth++
	}
	return Immediate(Undefined), nil
}

// Set through super is a no-op.
func (o *SuperObject) Set(name string, value Value, avm *Avm1, ctx *UpdateContext) error {
	return nil
}

func (o *SuperObject) CallSetter(name string, value Value, avm *Avm1, ctx *UpdateContext, this Object) error {
	return nil
}

// Call invokes the superclass constructor on the child.
func (o *SuperObject) Call(avm *Avm1, ctx *UpdateContext, this Object, baseProto Object, args []Value) (ReturnValue, error) {
	if o.superProto == nil {
		return Immediate(Undefined), &ConstructionError{Msg: "super called with no superclass prototype"}
	}
	rv, err := o.superProto.Get("constructor", avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	constr, err := rv.Resolve(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	fn := constr.ObjectRef()
	if fn == nil || fn.AsExecutable() == nil {
		return Immediate(Undefined), &ConstructionError{Msg: "superclass prototype has no constructor"}
	}
	// The superclass body's own super binding climbs one level up.
	return fn.AsExecutable().Exec(avm, ctx, o.child, o.superProto, args)
}

func (o *SuperObject) New(avm *Avm1, ctx *UpdateContext, proto Object, args []Value, constructor Object) (Object, error) {
	return nil, &ConstructionError{Msg: "super is not constructible"}
}

func (o *SuperObject) Delete(avm *Avm1, name string) bool { return false }

func (o *SuperObject) Proto() Object { return o.superProto }

func (o *SuperObject) SetProto(proto Object) { o.superProto = proto }

func (o *SuperObject) Constr() Object { return nil }

func (o *SuperObject) DefineValue(name string, value Value, attrs Attribute) {}

func (o *SuperObject) SetAttributes(name string, set Attribute, clear Attribute) {}

func (o *SuperObject) AddProperty(name string, get *Executable, set *Executable, attrs Attribute) {}

func (o *SuperObject) HasProperty(avm *Avm1, ctx *UpdateContext, name string) bool {
	depth := 0
	for obj := o.superProto; obj != nil; obj = obj.Proto() {
		if depth > protoChainLimit {
			return false
		}
		if obj.HasOwnProperty(avm, ctx, name) {
			return true
		}
		depth++
	}
	return false
}

func (o *SuperObject) HasOwnProperty(avm *Avm1, ctx *UpdateContext, name string) bool {
	return false
}

func (o *SuperObject) HasOwnVirtual(avm *Avm1, ctx *UpdateContext, name string) bool {
	return false
}

func (o *SuperObject) IsPropertyOverwritable(avm *Avm1, name string) bool { return false }

func (o *SuperObject) IsPropertyEnumerable(avm *Avm1, name string) bool { return false }

func (o *SuperObject) GetKeys(avm *Avm1) []string { return nil }

func (o *SuperObject) AsString() string { return o.child.AsString() }

func (o *SuperObject) TypeOf() string { return "object" }

func (o *SuperObject) AsScriptObject() *ScriptObject { return o.child.AsScriptObject() }

func (o *SuperObject) AsValueObject() *ValueObject { return nil }

func (o *SuperObject) AsExecutable() *Executable { return nil }

func (o *SuperObject) AsDisplayObject() DisplayObject { return o.child.AsDisplayObject() }

func (o *SuperObject) AsPtr() unsafe.Pointer { return unsafe.Pointer(o) }

func (o *SuperObject) Length() int { return 0 }

func (o *SuperObject) SetLength(length int) {}

func (o *SuperObject) ArrayElement(index int) Value { return Undefined }

func (o *SuperObject) SetArrayElement(index int, value Value) int { return 0 }

func (o *SuperObject) DeleteArrayElement(index int) {}
