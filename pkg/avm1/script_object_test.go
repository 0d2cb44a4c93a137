package avm1

import "testing"

func TestGetUndefined(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		obj := NewScriptObject(nil)
		got := resolve(t, avm, ctx)(obj.Get("nothing", avm, ctx))
		expectValue(t, got, Undefined)
	})
}

func TestSetGet(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		obj := NewScriptObject(nil)
		if err := obj.Set("answer", NumberValue(42), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		got := resolve(t, avm, ctx)(obj.Get("answer", avm, ctx))
		expectValue(t, got, NumberValue(42))
	})
}

func TestSetReadOnly(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		obj := NewScriptObject(nil)
		obj.DefineValue("locked", NewString("initial"), ReadOnly)
		if err := obj.Set("locked", NewString("replaced"), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		got := resolve(t, avm, ctx)(obj.Get("locked", avm, ctx))
		expectValue(t, got, NewString("initial"))
	})
}

func TestDefineValueIgnoresReadOnly(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		obj := NewScriptObject(nil)
		obj.DefineValue("locked", NewString("initial"), ReadOnly)
		obj.DefineValue("locked", NewString("replaced"), ReadOnly)
		got := resolve(t, avm, ctx)(obj.Get("locked", avm, ctx))
		expectValue(t, got, NewString("replaced"))
	})
}

func TestDeleteRespectsAttributes(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		obj := NewScriptObject(nil)
		obj.DefineValue("keep", NumberValue(1), DontDelete)
		obj.DefineValue("drop", NumberValue(2), 0)

		if obj.Delete(avm, "keep") {
			t.Error("DontDelete property should not delete")
		}
		if !obj.Delete(avm, "drop") {
			t.Error("plain property should delete")
		}
		if obj.Delete(avm, "missing") {
			t.Error("missing property should report false")
		}
		if !obj.HasOwnProperty(avm, ctx, "keep") {
			t.Error("keep should survive")
		}
		if obj.HasOwnProperty(avm, ctx, "drop") {
			t.Error("drop should be gone")
		}
	})
}

func TestProtoChainGet(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		proto := NewScriptObject(nil)
		proto.DefineValue("inherited", NumberValue(7), 0)
		child := NewScriptObject(proto)

		got := resolve(t, avm, ctx)(child.Get("inherited", avm, ctx))
		expectValue(t, got, NumberValue(7))

		if child.HasOwnProperty(avm, ctx, "inherited") {
			t.Error("inherited must not be an own property")
		}
		if !child.HasProperty(avm, ctx, "inherited") {
			t.Error("inherited should be visible through the chain")
		}
	})
}

func TestVirtualProperty(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		obj := NewScriptObject(nil)
		var stored Value = NumberValue(1)
		getter := NativeExecutable(func(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
			return Immediate(stored), nil
		})
		setter := NativeExecutable(func(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
			stored = args[0]
			return Immediate(Undefined), nil
		})
		obj.AddProperty("virt", getter, setter, 0)

		expectValue(t, resolve(t, avm, ctx)(obj.Get("virt", avm, ctx)), NumberValue(1))
		if err := obj.Set("virt", NumberValue(2), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		expectValue(t, resolve(t, avm, ctx)(obj.Get("virt", avm, ctx)), NumberValue(2))
		if !obj.HasOwnVirtual(avm, ctx, "virt") {
			t.Error("virt should report as virtual")
		}
	})
}

func TestGetterOnlySwallowsWrites(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		obj := NewScriptObject(nil)
		getter := NativeExecutable(func(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
			return Immediate(NewString("fixed")), nil
		})
		obj.AddProperty("ro", getter, nil, 0)

		if err := obj.Set("ro", NewString("other"), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		expectValue(t, resolve(t, avm, ctx)(obj.Get("ro", avm, ctx)), NewString("fixed"))
	})
}

func TestInheritedSetterBindsReceiver(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		proto := NewScriptObject(nil)
		setter := NativeExecutable(func(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
			this.DefineValue("witness", args[0], 0)
			return Immediate(Undefined), nil
		})
		getter := NativeExecutable(func(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error) {
			return Immediate(Undefined), nil
		})
		proto.AddProperty("hooked", getter, setter, 0)

		child := NewScriptObject(proto)
		if err := child.Set("hooked", NumberValue(9), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		expectValue(t, resolve(t, avm, ctx)(child.Get("witness", avm, ctx)), NumberValue(9))
		if proto.HasOwnProperty(avm, ctx, "witness") {
			t.Error("setter must run against the child, not the prototype")
		}
	})
}

func TestSetAttributesAll(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		obj := NewScriptObject(nil)
		obj.DefineValue("a", NumberValue(1), 0)
		obj.DefineValue("b", NumberValue(2), 0)

		obj.SetAttributes("", DontEnum, 0)
		if keys := obj.GetKeys(avm); len(keys) != 0 {
			t.Errorf("expected no enumerable keys, got %v", keys)
		}

		obj.SetAttributes("a", 0, DontEnum)
		keys := obj.GetKeys(avm)
		if len(keys) != 1 || keys[0] != "a" {
			t.Errorf("expected [a], got %v", keys)
		}
	})
}

func TestGetKeysOrder(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		obj := NewScriptObject(nil)
		obj.DefineValue("first", NumberValue(1), 0)
		obj.DefineValue("second", NumberValue(2), 0)
		obj.DefineValue("hidden", NumberValue(3), DontEnum)

		keys := obj.GetKeys(avm)
		if len(keys) != 2 || keys[0] != "first" || keys[1] != "second" {
			t.Errorf("expected [first second], got %v", keys)
		}
	})
}

func TestArrayStorage(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		arr := avm.NewArray([]Value{NumberValue(10), NumberValue(20)})
		if arr.Length() != 2 {
			t.Fatalf("length = %d", arr.Length())
		}
		expectValue(t, arr.ArrayElement(1), NumberValue(20))
		expectValue(t, arr.ArrayElement(5), Undefined)

		if got := arr.SetArrayElement(4, NumberValue(50)); got != 5 {
			t.Errorf("grow length = %d, want 5", got)
		}
		expectValue(t, arr.ArrayElement(3), Undefined)

		// Index and length reads go through the property surface too.
		expectValue(t, resolve(t, avm, ctx)(arr.Get("4", avm, ctx)), NumberValue(50))
		expectValue(t, resolve(t, avm, ctx)(arr.Get("length", avm, ctx)), NumberValue(5))

		if err := arr.Set("length", NumberValue(1), avm, ctx); err != nil {
			t.Fatalf("set length: %v", err)
		}
		if arr.Length() != 1 {
			t.Errorf("truncated length = %d", arr.Length())
		}
	})
}

func TestProtoSpecialProperty(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		proto := NewScriptObject(nil)
		obj := NewScriptObject(proto)
		got := resolve(t, avm, ctx)(obj.Get("__proto__", avm, ctx))
		if got.ObjectRef() == nil || got.ObjectRef().AsPtr() != proto.AsPtr() {
			t.Error("__proto__ should read the prototype link")
		}

		other := NewScriptObject(nil)
		if err := obj.Set("__proto__", ObjectValue(other), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		if obj.Proto().AsPtr() != other.AsPtr() {
			t.Error("__proto__ writes should rewire the prototype link")
		}
	})
}
