package swfdata

// FunctionParam is one declared parameter. Register 0 means the
// parameter binds as a named local; 1..255 means it preloads into that
// local register.
type FunctionParam struct {
	Register uint8  `cbor:"register"`
	Name     string `cbor:"name"`
}

// Function is a parsed DefineFunction or DefineFunction2 descriptor.
// The nine preload/suppress flags are independent of one another; a
// DefineFunction (v1) descriptor simply has them all clear and no
// registers.
type Function struct {
	Name          string          `cbor:"name"`
	Params        []FunctionParam `cbor:"params"`
	RegisterCount uint8           `cbor:"register_count"`

	PreloadThis       bool `cbor:"preload_this"`
	SuppressThis      bool `cbor:"suppress_this"`
	PreloadArguments  bool `cbor:"preload_arguments"`
	SuppressArguments bool `cbor:"suppress_arguments"`
	PreloadSuper      bool `cbor:"preload_super"`
	SuppressSuper     bool `cbor:"suppress_super"`
	PreloadRoot       bool `cbor:"preload_root"`
	PreloadParent     bool `cbor:"preload_parent"`
	PreloadGlobal     bool `cbor:"preload_global"`
}

// NewFunction builds a DefineFunction (v1) descriptor: named parameters
// only, no registers, no preloading.
func NewFunction(name string, paramNames []string) Function {
	params := make([]FunctionParam, len(paramNames))
	for i, n := range paramNames {
		params[i] = FunctionParam{Name: n}
	}
	return Function{Name: name, Params: params}
}

// ParamNames lists the declared parameter names in order.
func (f *Function) ParamNames() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return names
}

// FunctionBlock is the unit the tag parser hands to the runtime: one
// function descriptor, its body bytecode, the constant pool in effect
// at the definition site, and the content version of the defining
// movie.
type FunctionBlock struct {
	SwfVersion   uint8    `cbor:"swf_version"`
	Function     Function `cbor:"function"`
	Actions      []byte   `cbor:"actions"`
	ConstantPool []string `cbor:"constant_pool,omitempty"`
}
