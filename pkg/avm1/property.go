package avm1

// Attribute is the bit-set of property flags. The three bits are
// independent and apply to both stored and virtual properties.
type Attribute uint8

const (
	DontEnum Attribute = 1 << iota
	DontDelete
	ReadOnly
)

func (a Attribute) Has(flag Attribute) bool { return a&flag != 0 }

func (a Attribute) String() string {
	s := ""
	if a.Has(DontEnum) {
		s += "DontEnum|"
	}
	if a.Has(DontDelete) {
		s += "DontDelete|"
	}
	if a.Has(ReadOnly) {
		s += "ReadOnly|"
	}
	if s == "" {
		return "None"
	}
	return s[:len(s)-1]
}

type propertyKind uint8

const (
	propStored propertyKind = iota
	propVirtual
)

// Property is a single named slot on an object: either a stored value
// or a virtual getter/setter pair, never both at once.
type Property struct {
	kind   propertyKind
	value  Value
	getter *Executable
	setter *Executable
	attrs  Attribute
}

func storedProperty(value Value, attrs Attribute) *Property {
	return &Property{kind: propStored, value: value, attrs: attrs}
}

func virtualProperty(get *Executable, set *Executable, attrs Attribute) *Property {
	return &Property{kind: propVirtual, getter: get, setter: set, attrs: attrs}
}

// Get reads the slot, invoking the getter on virtual properties with
// the given receiver.
func (p *Property) Get(avm *Avm1, ctx *UpdateContext, this Object) (ReturnValue, error) {
	if p.kind == propVirtual {
		return p.getter.Exec(avm, ctx, this, nil, nil)
	}
	return Immediate(p.value), nil
}

// Set writes the slot. Stored properties honor ReadOnly. Virtual
// properties invoke the setter only when one exists; a getter-only
// property swallows the write silently.
func (p *Property) Set(avm *Avm1, ctx *UpdateContext, this Object, value Value) error {
	if p.kind == propVirtual {
		if p.setter != nil {
			_, err := p.setter.Exec(avm, ctx, this, nil, []Value{value})
			return err
		}
		return nil
	}
	if !p.attrs.Has(ReadOnly) {
		p.value = value
	}
	return nil
}

func (p *Property) IsVirtual() bool { return p.kind == propVirtual }

func (p *Property) IsEnumerable() bool { return !p.attrs.Has(DontEnum) }

func (p *Property) IsOverwritable() bool { return !p.attrs.Has(ReadOnly) }

func (p *Property) CanDelete() bool { return !p.attrs.Has(DontDelete) }

func (p *Property) Attrs() Attribute { return p.attrs }
