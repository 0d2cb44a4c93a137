package avm1

import "testing"

func TestScopeResolveWalksChain(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		avm.Globals().DefineValue("fromGlobal", NumberValue(1), 0)
		global := FromGlobalObject(avm.Globals())
		local := NewLocalScope(avm, global)
		local.Define("fromLocal", NumberValue(2), avm)

		expectValue(t, resolve(t, avm, ctx)(local.Resolve("fromLocal", avm, ctx)), NumberValue(2))
		expectValue(t, resolve(t, avm, ctx)(local.Resolve("fromGlobal", avm, ctx)), NumberValue(1))
		expectValue(t, resolve(t, avm, ctx)(local.Resolve("missing", avm, ctx)), Undefined)

		if !local.IsDefined(avm, ctx, "fromGlobal") {
			t.Error("fromGlobal should be defined through the chain")
		}
		if local.IsDefined(avm, ctx, "missing") {
			t.Error("missing should not be defined")
		}
	})
}

func TestScopeShadowing(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		global := FromGlobalObject(avm.Globals())
		avm.Globals().DefineValue("name", NewString("outer"), 0)
		local := NewLocalScope(avm, global)
		local.Define("name", NewString("inner"), avm)

		expectValue(t, resolve(t, avm, ctx)(local.Resolve("name", avm, ctx)), NewString("inner"))
	})
}

func TestScopeSetLandsOnTargetFrame(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		clip := NewScriptObject(avm.Prototypes().Object)
		global := FromGlobalObject(avm.Globals())
		target := NewScope(global, ScopeTarget, clip)
		local := NewLocalScope(avm, target)

		if err := local.Set("score", NumberValue(100), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		if !clip.HasOwnProperty(avm, ctx, "score") {
			t.Error("unqualified write should land on the Target frame's clip")
		}
		if avm.Globals().HasOwnProperty(avm, ctx, "score") {
			t.Error("write must not fall through to globals")
		}
	})
}

func TestScopeSetPrefersExistingBinding(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		global := FromGlobalObject(avm.Globals())
		local := NewLocalScope(avm, global)
		local.Define("counter", NumberValue(0), avm)

		if err := local.Set("counter", NumberValue(1), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		expectValue(t, resolve(t, avm, ctx)(local.Locals().Get("counter", avm, ctx)), NumberValue(1))
	})
}

func TestScopeSetFallbackWritesOutermost(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		// A chain with no Target frame and no existing binding should
		// still not lose the write.
		global := FromGlobalObject(avm.Globals())
		local := NewLocalScope(avm, global)
		if err := local.Set("orphan", NumberValue(5), avm, ctx); err != nil {
			t.Fatalf("set: %v", err)
		}
		expectValue(t, resolve(t, avm, ctx)(local.Resolve("orphan", avm, ctx)), NumberValue(5))
	})
}

func TestClosureScopeDropsWithFrames(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		global := FromGlobalObject(avm.Globals())
		local := NewLocalScope(avm, global)
		local.Define("captured", NumberValue(1), avm)
		withObj := NewScriptObject(avm.Prototypes().Object)
		withObj.DefineValue("transient", NumberValue(2), 0)
		with := NewWithScope(local, withObj)

		closure := NewClosureScope(with)

		// [With, Local, Global] becomes [Local', Global'].
		if closure.Class() != ScopeLocal {
			t.Fatalf("closure bottom frame class = %s", closure.Class())
		}
		if closure.Parent() == nil || closure.Parent().Class() != ScopeGlobal {
			t.Fatal("closure should end at a Global frame")
		}
		if closure.Parent().Parent() != nil {
			t.Fatal("closure chain should have two frames")
		}
		expectValue(t, resolve(t, avm, ctx)(closure.Resolve("captured", avm, ctx)), NumberValue(1))
		expectValue(t, resolve(t, avm, ctx)(closure.Resolve("transient", avm, ctx)), Undefined)
	})
}

func TestClosureScopeSharesValues(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		global := FromGlobalObject(avm.Globals())
		local := NewLocalScope(avm, global)
		local.Define("shared", NumberValue(1), avm)
		closure := NewClosureScope(local)

		// The frames are fresh, but their values objects are shared:
		// writes through either chain are visible to the other.
		local.Define("shared", NumberValue(2), avm)
		expectValue(t, resolve(t, avm, ctx)(closure.Resolve("shared", avm, ctx)), NumberValue(2))

		// New frame links mean later chain surgery on the original
		// does not touch the closure.
		if closure == local {
			t.Fatal("closure must be a distinct frame")
		}
	})
}

func TestClosureScopeAllWithSynthesizesGlobal(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		// A chain of nothing but With frames would collapse to nothing;
		// the closure must still end at a Global frame.
		withObj := NewScriptObject(avm.Prototypes().Object)
		onlyWith := NewScope(nil, ScopeWith, withObj)

		closure := NewClosureScope(onlyWith)
		if closure == nil {
			t.Fatal("closure over a With-only chain must not be nil")
		}
		if closure.Class() != ScopeGlobal || closure.Parent() != nil {
			t.Fatalf("expected a bare Global frame, got %s", closure.Class())
		}

		// The synthesized frame is usable: locals can chain over it and
		// resolution does not blow up.
		local := NewLocalScope(avm, closure)
		local.Define("x", NumberValue(1), avm)
		expectValue(t, resolve(t, avm, ctx)(local.Resolve("x", avm, ctx)), NumberValue(1))
	})
}

func TestTargetScopeEmptyChainSynthesizesGlobal(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		clip := NewScriptObject(avm.Prototypes().Object)
		retargeted := NewTargetScope(nil, clip)
		if retargeted == nil {
			t.Fatal("retargeting an empty chain must not be nil")
		}
		if retargeted.Class() != ScopeGlobal || retargeted.Parent() != nil {
			t.Fatalf("expected a bare Global frame, got %s", retargeted.Class())
		}
	})
}

func TestTargetScopeRebindsTargetFrames(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		oldClip := NewScriptObject(avm.Prototypes().Object)
		oldClip.DefineValue("who", NewString("old"), 0)
		newClip := NewScriptObject(avm.Prototypes().Object)
		newClip.DefineValue("who", NewString("new"), 0)

		global := FromGlobalObject(avm.Globals())
		target := NewScope(global, ScopeTarget, oldClip)
		local := NewLocalScope(avm, target)
		local.Define("localName", NumberValue(1), avm)

		retargeted := NewTargetScope(local, newClip)

		expectValue(t, resolve(t, avm, ctx)(retargeted.Resolve("who", avm, ctx)), NewString("new"))
		expectValue(t, resolve(t, avm, ctx)(retargeted.Resolve("localName", avm, ctx)), NumberValue(1))
		// The original chain still sees the old clip.
		expectValue(t, resolve(t, avm, ctx)(local.Resolve("who", avm, ctx)), NewString("old"))
	})
}

func TestScopeDelete(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		global := FromGlobalObject(avm.Globals())
		local := NewLocalScope(avm, global)
		local.Define("gone", NumberValue(1), avm)

		if !local.Delete(avm, ctx, "gone") {
			t.Error("delete should succeed on a plain local")
		}
		expectValue(t, resolve(t, avm, ctx)(local.Resolve("gone", avm, ctx)), Undefined)
		if local.Delete(avm, ctx, "never") {
			t.Error("delete of a missing name should report false")
		}
	})
}
