package avm1

import "testing"

func TestSuperGetBindsChild(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		superProto := NewScriptObject(avm.Prototypes().Object)
		superProto.ForceSetFunction("whoAmI", func(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
			return this.Get("name", avm, ctx)
		}, avm.Prototypes().Function, 0)

		subProto := NewScriptObject(superProto)
		child := NewScriptObject(subProto)
		child.DefineValue("name", NewString("child"), 0)

		sup, err := SuperFromThisAndBaseProto(child, subProto, avm, ctx)
		if err != nil {
			t.Fatalf("super: %v", err)
		}
		fn := resolve(t, avm, ctx)(sup.Get("whoAmI", avm, ctx)).ObjectRef()
		if fn == nil {
			t.Fatal("whoAmI not found through super")
		}
		got := resolve(t, avm, ctx)(fn.Call(avm, ctx, child, nil, nil))
		expectValue(t, got, NewString("child"))
	})
}

func TestSuperSetIsNoOp(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		superProto := NewScriptObject(avm.Prototypes().Object)
		subProto := NewScriptObject(superProto)
		child := NewScriptObject(subProto)

		sup, _ := SuperFromThisAndBaseProto(child, subProto, avm, ctx)
		if err := sup.Set("x", NumberValue(1), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		if superProto.HasOwnProperty(avm, ctx, "x") || child.HasOwnProperty(avm, ctx, "x") {
			t.Error("writes through super must vanish")
		}
	})
}

func TestSuperCallRunsSuperclassConstructor(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		superProto := NewScriptObject(avm.Prototypes().Object)
		constr := BareNativeFunction(func(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
			this.DefineValue("initialized", True, 0)
			return Immediate(Undefined), nil
		}, avm.Prototypes().Function)
		superProto.DefineValue("constructor", ObjectValue(constr), DontEnum)

		subProto := NewScriptObject(superProto)
		child := NewScriptObject(subProto)

		sup, _ := SuperFromThisAndBaseProto(child, subProto, avm, ctx)
		resolve(t, avm, ctx)(sup.Call(avm, ctx, child, nil, nil))
		expectValue(t, resolve(t, avm, ctx)(child.Get("initialized", avm, ctx)), True)
	})
}

func TestSuperCallErrors(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		// No superclass prototype at all.
		orphanProto := NewScriptObject(nil)
		child := NewScriptObject(orphanProto)
		sup, _ := SuperFromThisAndBaseProto(child, orphanProto, avm, ctx)
		if _, err := sup.Call(avm, ctx, child, nil, nil); err == nil {
			t.Error("expected an error with no superclass prototype")
		}

		// A superclass prototype whose constructor is not callable.
		superProto := NewScriptObject(avm.Prototypes().Object)
		superProto.DefineValue("constructor", NumberValue(1), DontEnum)
		subProto := NewScriptObject(superProto)
		child = NewScriptObject(subProto)
		sup, _ = SuperFromThisAndBaseProto(child, subProto, avm, ctx)
		if _, err := sup.Call(avm, ctx, child, nil, nil); err == nil {
			t.Error("expected an error with a non-callable constructor")
		}
	})
}

func TestSuperSurface(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		superProto := NewScriptObject(avm.Prototypes().Object)
		superProto.DefineValue("inherited", NumberValue(1), 0)
		subProto := NewScriptObject(superProto)
		child := NewScriptObject(subProto)
		child.DefineValue("own", NumberValue(2), 0)

		sup, _ := SuperFromThisAndBaseProto(child, subProto, avm, ctx)
		if !sup.HasProperty(avm, ctx, "inherited") {
			t.Error("super should see superclass chain properties")
		}
		if sup.HasOwnProperty(avm, ctx, "inherited") {
			t.Error("super owns nothing")
		}
		if sup.Delete(avm, "inherited") {
			t.Error("delete through super must fail")
		}
		if sup.TypeOf() != "object" {
			t.Errorf("typeof super = %q", sup.TypeOf())
		}
		if keys := sup.GetKeys(avm); len(keys) != 0 {
			t.Errorf("super keys = %v", keys)
		}
		if sup.Proto().AsPtr() != superProto.AsPtr() {
			t.Error("super proto should be the superclass prototype")
		}
	})
}
