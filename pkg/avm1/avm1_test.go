package avm1

import (
	"math"
	"testing"

	"github.com/kmeisthax/ruffle-sub000/pkg/swfdata"
)

// withAvm runs a test body against a fresh runtime with one activation
// frame of the given content version on the stack, so version-gated
// behavior sees the version under test.
func withAvm(t *testing.T, swfVersion uint8, test func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object)) {
	t.Helper()
	avm := NewAvm1(swfVersion)
	ctx := NewUpdateContext(swfVersion)
	this := NewScriptObject(avm.Prototypes().Object)
	scope := FromGlobalObject(avm.Globals())
	frame := NewActivation(swfVersion, swfdata.NewSwfSlice(nil), scope, &ConstantPool{}, nil, this)
	avm.PushStackFrame(frame)
	test(t, avm, ctx, this)
}

// resolve returns an unwrapper for ReturnValue results that fails the
// test on runtime errors, so call sites can wrap a call directly:
// resolve(t, avm, ctx)(obj.Get(...)).
func resolve(t *testing.T, avm *Avm1, ctx *UpdateContext) func(ReturnValue, error) Value {
	return func(rv ReturnValue, err error) Value {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, err := rv.Resolve(avm, ctx)
		if err != nil {
			t.Fatalf("unexpected resolve error: %v", err)
		}
		return v
	}
}

func floatsEqual(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return a == b
}

func expectValue(t *testing.T, got, want Value) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("got %s %v, want %s %v", got.Type(), got, want.Type(), want)
	}
}
