package avm1

import "unsafe"

// Object is the capability every script object exposes. The canonical
// implementation is ScriptObject; ValueObject, FunctionObject and
// SuperObject layer behavior on top of an embedded ScriptObject and
// forward the rest.
type Object interface {
	// GetLocal retrieves an own property, running getters against the
	// original receiver `this` (which may differ from the object the
	// property was found on during a prototype walk).
	GetLocal(name string, avm *Avm1, ctx *UpdateContext, this Object) (ReturnValue, error)

	// Get retrieves a named property, walking the prototype chain.
	// Missing properties yield Undefined.
	Get(name string, avm *Avm1, ctx *UpdateContext) (ReturnValue, error)

	// Set stores a named property, honoring ReadOnly slots and
	// inherited virtual setters.
	Set(name string, value Value, avm *Avm1, ctx *UpdateContext) error

	// CallSetter runs this object's own setter for the property, if
	// any, binding the given receiver.
	CallSetter(name string, value Value, avm *Avm1, ctx *UpdateContext, this Object) error

	// Call invokes the object as a function. baseProto carries the
	// prototype the method was found on, for super resolution; nil
	// means no super binding is wanted.
	Call(avm *Avm1, ctx *UpdateContext, this Object, baseProto Object, args []Value) (ReturnValue, error)

	// New constructs a fresh instance with the given prototype, then
	// runs the object as its constructor.
	New(avm *Avm1, ctx *UpdateContext, proto Object, args []Value, constructor Object) (Object, error)

	// Delete removes an own property. Reports false for DontDelete
	// slots and for properties that do not exist.
	Delete(avm *Avm1, name string) bool

	Proto() Object
	SetProto(proto Object)

	// Constr returns the constructor recorded at instance creation,
	// or nil.
	Constr() Object

	// DefineValue creates or replaces an own stored property without
	// consulting setters or ReadOnly.
	DefineValue(name string, value Value, attrs Attribute)

	// SetAttributes rewires flags on an own property, or on every own
	// property when name is "".
	SetAttributes(name string, set Attribute, clear Attribute)

	// AddProperty installs a virtual getter/setter property.
	AddProperty(name string, get *Executable, set *Executable, attrs Attribute)

	HasProperty(avm *Avm1, ctx *UpdateContext, name string) bool
	HasOwnProperty(avm *Avm1, ctx *UpdateContext, name string) bool
	HasOwnVirtual(avm *Avm1, ctx *UpdateContext, name string) bool

	IsPropertyOverwritable(avm *Avm1, name string) bool
	IsPropertyEnumerable(avm *Avm1, name string) bool

	// GetKeys lists enumerable own property names in insertion order.
	GetKeys(avm *Avm1) []string

	AsString() string
	TypeOf() string

	AsScriptObject() *ScriptObject
	AsValueObject() *ValueObject
	AsExecutable() *Executable
	AsDisplayObject() DisplayObject

	// AsPtr is the object's identity for equality checks.
	AsPtr() unsafe.Pointer

	Length() int
	SetLength(length int)
	ArrayElement(index int) Value
	SetArrayElement(index int, value Value) int
	DeleteArrayElement(index int)
}

// getProperty implements Get for every Object flavor: check own
// properties (including array storage), then walk the prototype chain,
// always running getters against the original receiver.
func getProperty(o Object, name string, avm *Avm1, ctx *UpdateContext) (ReturnValue, error) {
	this := o
	depth := 0
	for obj := o; obj != nil; obj = obj.Proto() {
		if depth > protoChainLimit {
			log.Warningf("prototype chain too deep resolving %q", name)
			break
		}
		if obj.HasOwnProperty(avm, ctx, name) {
			return obj.GetLocal(name, avm, ctx, this)
		}
		depth++
	}
	return Immediate(Undefined), nil
}

// protoChainLimit guards against cyclic prototype chains, which script
// code can construct freely.
const protoChainLimit = 256
