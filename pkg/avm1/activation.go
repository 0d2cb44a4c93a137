package avm1

import (
	"github.com/kmeisthax/ruffle-sub000/pkg/swfdata"
)

// ConstantPool is the string pool a function executes with. It is
// shared by reference: functions defined under the same pool see later
// ConstantPool actions swap the contents.
type ConstantPool struct {
	Strings []string
}

// Activation is one stack frame: the code being run, where it is, what
// it can see, and its private registers. The opcode interpreter drives
// the program counter; this module only constructs and wires frames.
type Activation struct {
	swfVersion uint8

	data swfdata.SwfSlice
	pc   int

	scope        *Scope
	constantPool *ConstantPool
	baseClip     DisplayObject

	this      Object
	arguments Object

	// Slot 0 is reserved; a function with N declared registers gets
	// slots 0..N. Writes beyond the set fall through to the global
	// register file, which the interpreter owns.
	localRegisters []Value
}

// NewActivation builds a frame for top-level (non-function) code.
func NewActivation(swfVersion uint8, data swfdata.SwfSlice, scope *Scope, constantPool *ConstantPool, baseClip DisplayObject, this Object) *Activation {
	return &Activation{
		swfVersion:   swfVersion,
		data:         data,
		scope:        scope,
		constantPool: constantPool,
		baseClip:     baseClip,
		this:         this,
	}
}

// ActivationFromFunction builds a frame for a function call.
func ActivationFromFunction(swfVersion uint8, data swfdata.SwfSlice, scope *Scope, constantPool *ConstantPool, baseClip DisplayObject, this Object, arguments Object) *Activation {
	return &Activation{
		swfVersion:   swfVersion,
		data:         data,
		scope:        scope,
		constantPool: constantPool,
		baseClip:     baseClip,
		this:         this,
		arguments:    arguments,
	}
}

func (a *Activation) SwfVersion() uint8 { return a.swfVersion }

func (a *Activation) Data() swfdata.SwfSlice { return a.data }

func (a *Activation) PC() int { return a.pc }

func (a *Activation) SetPC(pc int) { a.pc = pc }

func (a *Activation) Scope() *Scope { return a.scope }

func (a *Activation) SetScope(scope *Scope) { a.scope = scope }

func (a *Activation) ConstantPool() *ConstantPool { return a.constantPool }

func (a *Activation) SetConstantPool(pool *ConstantPool) { a.constantPool = pool }

func (a *Activation) BaseClip() DisplayObject { return a.baseClip }

func (a *Activation) This() Object { return a.this }

// Arguments returns the frame's arguments object, or nil outside a
// function call.
func (a *Activation) Arguments() Object { return a.arguments }

// Define creates a local in the frame's scope, bypassing chain
// traversal.
func (a *Activation) Define(name string, value Value, avm *Avm1) {
	a.scope.Define(name, value, avm)
}

// Resolve reads a name through the frame's scope chain.
func (a *Activation) Resolve(name string, avm *Avm1, ctx *UpdateContext) (ReturnValue, error) {
	return a.scope.Resolve(name, avm, ctx)
}

// AllocateLocalRegisters provisions the private register set. Count is
// the declared register count; slot 0 exists but is never preloaded.
func (a *Activation) AllocateLocalRegisters(count uint8) {
	a.localRegisters = make([]Value, int(count)+1)
}

// HasLocalRegister reports whether the id lands in this frame's private
// set rather than the global file.
func (a *Activation) HasLocalRegister(id uint8) bool {
	return int(id) < len(a.localRegisters)
}

// LocalRegister reads a private register; out-of-set ids read
// Undefined.
func (a *Activation) LocalRegister(id uint8) Value {
	if !a.HasLocalRegister(id) {
		return Undefined
	}
	return a.localRegisters[id]
}

// SetLocalRegister writes a private register; out-of-set ids are
// ignored here and belong to the global file.
func (a *Activation) SetLocalRegister(id uint8, value Value) {
	if a.HasLocalRegister(id) {
		a.localRegisters[id] = value
	}
}
