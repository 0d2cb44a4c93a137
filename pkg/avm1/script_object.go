package avm1

import (
	"strconv"
	"unsafe"
)

// ScriptObject is the canonical dynamic object: an insertion-ordered
// property map plus an optional dense array storage, a prototype link
// and a constructor back-reference. Every other object flavor embeds
// one and layers behavior on top.
type ScriptObject struct {
	properties map[string]*Property
	keys       []string
	proto      Object
	constr     Object

	// Dense element storage for Array instances. Non-arrays emulate
	// a length through an ordinary stored counter instead.
	elements []Value
	isArray  bool
	length   int

	typeOfStr string
}

// NewScriptObject builds a plain object with the given prototype (nil
// for a bare object).
func NewScriptObject(proto Object) *ScriptObject {
	return &ScriptObject{
		properties: make(map[string]*Property),
		proto:      proto,
		typeOfStr:  "object",
	}
}

// NewArrayObject builds an object backed by dense element storage.
func NewArrayObject(proto Object) *ScriptObject {
	o := NewScriptObject(proto)
	o.isArray = true
	return o
}

func (o *ScriptObject) ownProperty(name string) *Property {
	return o.properties[name]
}

func parseArrayIndex(name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// GetLocal retrieves an own property, running getters against `this`.
func (o *ScriptObject) GetLocal(name string, avm *Avm1, ctx *UpdateContext, this Object) (ReturnValue, error) {
	if name == "__proto__" {
		return Immediate(ObjectValue(o.proto)), nil
	}
	if o.isArray {
		if name == "length" {
			return Immediate(NumberValue(float64(len(o.elements)))), nil
		}
		if index, ok := parseArrayIndex(name); ok {
			return Immediate(o.ArrayElement(index)), nil
		}
	}
	if prop := o.ownProperty(name); prop != nil {
		return prop.Get(avm, ctx, this)
	}
	return Immediate(Undefined), nil
}

// Get retrieves a property, walking the prototype chain.
func (o *ScriptObject) Get(name string, avm *Avm1, ctx *UpdateContext) (ReturnValue, error) {
	return getProperty(o, name, avm, ctx)
}

// setWithReceiver is the write path shared by every flavor that embeds
// a ScriptObject; `this` is the receiver virtual setters bind to.
func (o *ScriptObject) setWithReceiver(name string, value Value, avm *Avm1, ctx *UpdateContext, this Object) error {
	if name == "__proto__" {
		o.proto = value.ObjectRef()
		return nil
	}
	if o.isArray {
		if name == "length" {
			n, err := value.AsNumber(avm, ctx)
			if err != nil {
				return err
			}
			o.SetLength(int(n))
			return nil
		}
		if index, ok := parseArrayIndex(name); ok {
			o.SetArrayElement(index, value)
			return nil
		}
	}
	if prop := o.ownProperty(name); prop != nil {
		return prop.Set(avm, ctx, this, value)
	}
	// An inherited virtual setter intercepts the write; otherwise the
	// write creates an own property.
	depth := 0
	for proto := o.proto; proto != nil; proto = proto.Proto() {
		if depth > protoChainLimit {
			break
		}
		if proto.HasOwnVirtual(avm, ctx, name) {
			return proto.CallSetter(name, value, avm, ctx, this)
		}
		depth++
	}
	o.DefineValue(name, value, 0)
	return nil
}

// Set stores a property, honoring ReadOnly and inherited setters.
func (o *ScriptObject) Set(name string, value Value, avm *Avm1, ctx *UpdateContext) error {
	return o.setWithReceiver(name, value, avm, ctx, o)
}

// CallSetter runs this object's own setter for the property, if any.
func (o *ScriptObject) CallSetter(name string, value Value, avm *Avm1, ctx *UpdateContext, this Object) error {
	if prop := o.ownProperty(name); prop != nil && prop.IsVirtual() {
		return prop.Set(avm, ctx, this, value)
	}
	return nil
}

// Call on a plain object is a no-op yielding Undefined.
func (o *ScriptObject) Call(avm *Avm1, ctx *UpdateContext, this Object, baseProto Object, args []Value) (ReturnValue, error) {
	return Immediate(Undefined), nil
}

// New builds a bare instance with the given prototype.
func (o *ScriptObject) New(avm *Avm1, ctx *UpdateContext, proto Object, args []Value, constructor Object) (Object, error) {
	instance := NewScriptObject(proto)
	instance.constr = constructor
	return instance, nil
}

// Delete removes an own property unless it is DontDelete.
func (o *ScriptObject) Delete(avm *Avm1, name string) bool {
	prop := o.ownProperty(name)
	if prop == nil || !prop.CanDelete() {
		return false
	}
	delete(o.properties, name)
	for i, key := range o.keys {
		if key == name {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

func (o *ScriptObject) Proto() Object         { return o.proto }
func (o *ScriptObject) SetProto(proto Object) { o.proto = proto }
func (o *ScriptObject) Constr() Object        { return o.constr }

// SetConstr records the constructor an instance was built with.
func (o *ScriptObject) SetConstr(constr Object) { o.constr = constr }

// DefineValue creates or replaces an own stored property, ignoring
// ReadOnly and setters.
func (o *ScriptObject) DefineValue(name string, value Value, attrs Attribute) {
	if _, exists := o.properties[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.properties[name] = storedProperty(value, attrs)
}

// SetAttributes rewires flags on one own property, or all of them when
// name is empty.
func (o *ScriptObject) SetAttributes(name string, set Attribute, clear Attribute) {
	if name == "" {
		for _, prop := range o.properties {
			prop.attrs = (prop.attrs | set) &^ clear
		}
		return
	}
	if prop := o.ownProperty(name); prop != nil {
		prop.attrs = (prop.attrs | set) &^ clear
	}
}

// AddProperty installs a virtual getter/setter property.
func (o *ScriptObject) AddProperty(name string, get *Executable, set *Executable, attrs Attribute) {
	if _, exists := o.properties[name]; !exists {
		o.keys = append(o.keys, name)
	}
	o.properties[name] = virtualProperty(get, set, attrs)
}

// ForceSetFunction defines a native method as a stored property.
func (o *ScriptObject) ForceSetFunction(name string, fn NativeFunction, fnProto Object, attrs Attribute) {
	o.DefineValue(name, ObjectValue(BareNativeFunction(fn, fnProto)), attrs)
}

func (o *ScriptObject) HasProperty(avm *Avm1, ctx *UpdateContext, name string) bool {
	depth := 0
	for obj := Object(o); obj != nil; obj = obj.Proto() {
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

func (o *ScriptObject) HasOwnProperty(avm *Avm1, ctx *UpdateContext, name string) bool {
	if name == "__proto__" {
		return true
	}
	if o.isArray {
		if name == "length" {
			return true
		}
		if index, ok := parseArrayIndex(name); ok {
			return index < len(o.elements)
		}
	}
	return o.ownProperty(name) != nil
}

func (o *ScriptObject) HasOwnVirtual(avm *Avm1, ctx *UpdateContext, name string) bool {
	prop := o.ownProperty(name)
	return prop != nil && prop.IsVirtual()
}

func (o *ScriptObject) IsPropertyOverwritable(avm *Avm1, name string) bool {
	if prop := o.ownProperty(name); prop != nil {
		return prop.IsOverwritable()
	}
	return true
}

func (o *ScriptObject) IsPropertyEnumerable(avm *Avm1, name string) bool {
	if prop := o.ownProperty(name); prop != nil {
		return prop.IsEnumerable()
	}
	return false
}

// GetKeys lists enumerable own property names in insertion order,
// followed by array indices in ascending order.
func (o *ScriptObject) GetKeys(avm *Avm1) []string {
	out := make([]string, 0, len(o.keys)+len(o.elements))
	for _, key := range o.keys {
		if o.properties[key].IsEnumerable() {
			out = append(out, key)
		}
	}
	if o.isArray {
		for i := range o.elements {
			out = append(out, strconv.Itoa(i))
		}
	}
	return out
}

func (o *ScriptObject) AsString() string { return "[object Object]" }

func (o *ScriptObject) TypeOf() string { return o.typeOfStr }

func (o *ScriptObject) AsScriptObject() *ScriptObject  { return o }
func (o *ScriptObject) AsValueObject() *ValueObject    { return nil }
func (o *ScriptObject) AsExecutable() *Executable      { return nil }
func (o *ScriptObject) AsDisplayObject() DisplayObject { return nil }

func (o *ScriptObject) AsPtr() unsafe.Pointer { return unsafe.Pointer(o) }

// Length is the element count for arrays, or the emulated length
// counter otherwise.
func (o *ScriptObject) Length() int {
	if o.isArray {
		return len(o.elements)
	}
	return o.length
}

// SetLength grows or truncates the storage; new slots read Undefined.
func (o *ScriptObject) SetLength(length int) {
	if length < 0 {
		length = 0
	}
	if !o.isArray {
		o.length = length
		return
	}
	for len(o.elements) < length {
		o.elements = append(o.elements, Undefined)
	}
	o.elements = o.elements[:length]
}

func (o *ScriptObject) ArrayElement(index int) Value {
	if o.isArray {
		if index >= 0 && index < len(o.elements) {
			return o.elements[index]
		}
		return Undefined
	}
	if prop := o.ownProperty(strconv.Itoa(index)); prop != nil && !prop.IsVirtual() {
		return prop.value
	}
	return Undefined
}

// SetArrayElement stores an element, growing as needed, and returns the
// resulting length.
func (o *ScriptObject) SetArrayElement(index int, value Value) int {
	if index < 0 {
		return o.Length()
	}
	if o.isArray {
		for len(o.elements) <= index {
			o.elements = append(o.elements, Undefined)
		}
		o.elements[index] = value
		return len(o.elements)
	}
	o.DefineValue(strconv.Itoa(index), value, 0)
	if index >= o.length {
		o.length = index + 1
	}
	return o.length
}

func (o *ScriptObject) DeleteArrayElement(index int) {
	if o.isArray {
		if index >= 0 && index < len(o.elements) {
			o.elements[index] = Undefined
		}
		return
	}
	o.Delete(nil, strconv.Itoa(index))
}
