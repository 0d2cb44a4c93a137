package avm1

import "testing"

func TestBoxedObjectPassesThrough(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		boxed := Boxed(avm, ctx, ObjectValue(this))
		if boxed.AsPtr() != this.AsPtr() {
			t.Error("boxing an object must return the same object")
		}
	})
}

func TestBoxedPrimitives(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		cases := []struct {
			value Value
			proto Object
		}{
			{True, avm.Prototypes().Boolean},
			{NumberValue(4.5), avm.Prototypes().Number},
			{NewString("hi"), avm.Prototypes().String},
		}
		for _, tc := range cases {
			box := Boxed(avm, ctx, tc.value)
			vbox := box.AsValueObject()
			if vbox == nil {
				t.Fatalf("boxing %v should produce a value object", tc.value)
			}
			expectValue(t, vbox.Unbox(), tc.value)
			if box.Proto().AsPtr() != tc.proto.AsPtr() {
				t.Errorf("%v box has wrong prototype", tc.value)
			}
		}
	})
}

func TestBoxedStringLength(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		box := Boxed(avm, ctx, NewString("four"))
		expectValue(t, resolve(t, avm, ctx)(box.Get("length", avm, ctx)), NumberValue(4))
	})
}

func TestBoxValueOfRoundTrip(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		box := Boxed(avm, ctx, NumberValue(7))
		// ToNumber on the box goes through valueOf and recovers the
		// primitive.
		n, err := ObjectValue(box).AsNumber(avm, ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 7 {
			t.Errorf("unboxed number = %v", n)
		}
	})
}

func TestBoxToString(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		box := Boxed(avm, ctx, True)
		s, err := ObjectValue(box).CoerceToString(avm, ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != "true" {
			t.Errorf("boxed bool toString = %q", s)
		}
	})
}

func TestReplaceValue(t *testing.T) {
	withAvm(t, 6, func(t *testing.T, avm *Avm1, ctx *UpdateContext, this Object) {
		box := EmptyBox(avm.Prototypes().Number, avm.Constructors().Number)
		expectValue(t, box.Unbox(), Undefined)
		box.ReplaceValue(NumberValue(3))
		expectValue(t, box.Unbox(), NumberValue(3))
	})
}
