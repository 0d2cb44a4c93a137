package avm1

import "strings"

// objectConstructor is the `Object` constructor/function. Called with
// an argument it boxes/passes through; called bare under `new` the
// fresh instance is already built, so there is nothing to do.
func objectConstructor(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) > 0 && !args[0].IsUndefined() && !args[0].IsNull() {
		return Immediate(ObjectValue(Boxed(avm, ctx, args[0]))), nil
	}
	return Immediate(Undefined), nil
}

func objectToString(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	return Immediate(NewString(this.AsString())), nil
}

func objectValueOf(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if vbox := this.AsValueObject(); vbox != nil {
		return Immediate(vbox.Unbox()), nil
	}
	return Immediate(ObjectValue(this)), nil
}

func objectHasOwnProperty(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) == 0 {
		return Immediate(False), nil
	}
	name, err := args[0].CoerceToString(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	return Immediate(BooleanValue(this.HasOwnProperty(avm, ctx, name))), nil
}

func objectIsPropertyEnumerable(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) == 0 {
		return Immediate(False), nil
	}
	name, err := args[0].CoerceToString(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	return Immediate(BooleanValue(this.IsPropertyEnumerable(avm, name))), nil
}

// objectAddProperty is `Object.prototype.addProperty`: installs a
// virtual getter/setter pair from script.
func objectAddProperty(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) < 2 {
		return Immediate(False), nil
	}
	name, err := args[0].CoerceToString(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	getter := args[1].ObjectRef()
	if name == "" || getter == nil || getter.AsExecutable() == nil {
		return Immediate(False), nil
	}
	var setter *Executable
	if len(args) > 2 {
		if so := args[2].ObjectRef(); so != nil && so.AsExecutable() != nil {
			setter = so.AsExecutable()
		}
	}
	this.AddProperty(name, getter.AsExecutable(), setter, 0)
	return Immediate(True), nil
}

// asSetPropFlags is the undocumented `ASSetPropFlags` global: rewires
// property attributes on an object. A null property list means every
// own property; otherwise a comma-separated name string or an array.
func asSetPropFlags(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
	if len(args) < 3 {
		return Immediate(Undefined), nil
	}
	obj := args[0].ObjectRef()
	if obj == nil {
		return Immediate(Undefined), nil
	}

	setF, err := args[2].AsNumber(avm, ctx)
	if err != nil {
		return Immediate(Undefined), err
	}
	var clearF float64
	if len(args) > 3 {
		clearF, err = args[3].AsNumber(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
	}
	set := Attribute(uint8(setF) & 7)
	clear := Attribute(uint8(clearF) & 7)

	props := args[1]
	switch {
	case props.IsNull() || props.IsUndefined():
		obj.SetAttributes("", set, clear)
	case props.ObjectRef() != nil:
		list := props.ObjectRef()
		for i := 0; i < list.Length(); i++ {
			name, err := list.ArrayElement(i).CoerceToString(avm, ctx)
			if err != nil {
				return Immediate(Undefined), err
			}
			obj.SetAttributes(name, set, clear)
		}
	default:
		joined, err := props.CoerceToString(avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		for _, name := range strings.Split(joined, ",") {
			if name != "" {
				obj.SetAttributes(name, set, clear)
			}
		}
	}
	return Immediate(Undefined), nil
}

// fillObjectProto populates `Object.prototype` once `Function.prototype`
// exists to hang methods off.
func fillObjectProto(objectProto *ScriptObject, functionProto Object) {
	objectProto.ForceSetFunction("toString", objectToString, functionProto, DontEnum)
	objectProto.ForceSetFunction("valueOf", objectValueOf, functionProto, DontEnum)
	objectProto.ForceSetFunction("hasOwnProperty", objectHasOwnProperty, functionProto, DontEnum)
	objectProto.ForceSetFunction("isPropertyEnumerable", objectIsPropertyEnumerable, functionProto, DontEnum)
	objectProto.ForceSetFunction("addProperty", objectAddProperty, functionProto, DontEnum)
}

// createObjectObject builds the `Object` constructor function.
func createObjectObject(objectProto Object, functionProto Object) Object {
	return NewFunctionObject(NativeExecutable(objectConstructor), functionProto, nil, objectProto)
}
