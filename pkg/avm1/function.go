package avm1

import (
	"strconv"
	"unsafe"

	"github.com/kmeisthax/ruffle-sub000/pkg/swfdata"
)

// NativeFunction is a function provided by the host runtime.
//
// Natives may return an immediate value, or a frame-backed result when
// they pushed an activation themselves; in the latter case the topmost
// frame must return with the function's value.
type NativeFunction func(avm *Avm1, ctx *UpdateContext, this Object, args []Value) (ReturnValue, error)

// Avm1Function is a function defined by bytecode, through a
// DefineFunction or DefineFunction2 action.
type Avm1Function struct {
	// The file format version of the SWF that generated this function.
	swfVersion uint8

	data swfdata.SwfSlice

	// Empty for anonymous functions.
	name string

	// Registers beyond this count are served from the global file.
	registerCount uint8

	preloadParent     bool
	preloadRoot       bool
	suppressSuper     bool
	preloadSuper      bool
	suppressArguments bool
	preloadArguments  bool
	suppressThis      bool
	preloadThis       bool
	preloadGlobal     bool

	// Register 0 means the parameter binds as a named local.
	params []swfdata.FunctionParam

	// The scope the function was born into.
	scope *Scope

	// The constant pool in effect at the definition site.
	constantPool *ConstantPool

	// The movie clip whose timeline contains the bytecode.
	baseClip DisplayObject
}

// FunctionFromDF1 builds a descriptor from a DefineFunction action.
// Fields DefineFunction cannot express are left at their defaults.
func FunctionFromDF1(swfVersion uint8, actions swfdata.SwfSlice, name string, params []string, scope *Scope, constantPool *ConstantPool, baseClip DisplayObject) *Avm1Function {
	swfFn := swfdata.NewFunction(name, params)
	return FunctionFromDF2(swfVersion, actions, &swfFn, scope, constantPool, baseClip)
}

// FunctionFromDF2 builds a descriptor from a DefineFunction2 action.
func FunctionFromDF2(swfVersion uint8, actions swfdata.SwfSlice, swfFn *swfdata.Function, scope *Scope, constantPool *ConstantPool, baseClip DisplayObject) *Avm1Function {
	return &Avm1Function{
		swfVersion:        swfVersion,
		data:              actions,
		name:              swfFn.Name,
		registerCount:     swfFn.RegisterCount,
		preloadParent:     swfFn.PreloadParent,
		preloadRoot:       swfFn.PreloadRoot,
		suppressSuper:     swfFn.SuppressSuper,
		preloadSuper:      swfFn.PreloadSuper,
		suppressArguments: swfFn.SuppressArguments,
		preloadArguments:  swfFn.PreloadArguments,
		suppressThis:      swfFn.SuppressThis,
		preloadThis:       swfFn.PreloadThis,
		preloadGlobal:     swfFn.PreloadGlobal,
		params:            swfFn.Params,
		scope:             scope,
		constantPool:      constantPool,
		baseClip:          baseClip,
	}
}

func (f *Avm1Function) SwfVersion() uint8 { return f.swfVersion }

func (f *Avm1Function) Data() swfdata.SwfSlice { return f.data }

func (f *Avm1Function) Name() string { return f.name }

func (f *Avm1Function) Scope() *Scope { return f.scope }

func (f *Avm1Function) RegisterCount() uint8 { return f.registerCount }

// Executable is code that can be invoked: either a native function or
// bytecode from a DefineFunction/DefineFunction2 action.
type Executable struct {
	native NativeFunction
	action *Avm1Function
}

func NativeExecutable(fn NativeFunction) *Executable {
	return &Executable{native: fn}
}

func ActionExecutable(fn *Avm1Function) *Executable {
	return &Executable{action: fn}
}

// Action returns the bytecode descriptor, or nil for natives.
func (e *Executable) Action() *Avm1Function { return e.action }

// Exec invokes the code. Native results are immediate. For bytecode,
// Exec constructs and pushes the activation frame and returns it as a
// frame-backed result; execution has not happened yet when Exec
// returns.
func (e *Executable) Exec(avm *Avm1, ctx *UpdateContext, this Object, baseProto Object, args []Value) (ReturnValue, error) {
	if e.native != nil {
		return e.native(avm, ctx, this, args)
	}
	af := e.action

	childScope := NewLocalScope(avm, af.scope)

	arguments := NewScriptObject(avm.Prototypes().Object)
	arguments.SetConstr(avm.Constructors().Object)
	if !af.suppressArguments {
		for i, arg := range args {
			arguments.DefineValue(strconv.Itoa(i), arg, DontDelete)
		}
		arguments.DefineValue("length", NumberValue(float64(len(args))), DontDelete|DontEnum)
		childScope.Locals().DefineValue("arguments", ObjectValue(arguments), DontDelete|DontEnum)
	}

	var superObject Object
	if !af.suppressSuper {
		if baseProto == nil {
			baseProto = this
		}
		so, err := SuperFromThisAndBaseProto(this, baseProto, avm, ctx)
		if err != nil {
			return Immediate(Undefined), err
		}
		superObject = so
	}

	effectiveVer := af.swfVersion
	if avm.CurrentSwfVersion() <= 5 {
		if dobj := this.AsDisplayObject(); dobj != nil {
			effectiveVer = dobj.SwfVersion()
		} else {
			effectiveVer = ctx.PlayerVersion
		}
	}

	frame := ActivationFromFunction(effectiveVer, af.data, childScope, af.constantPool, af.baseClip, this, arguments)
	frame.AllocateLocalRegisters(af.registerCount)

	preloadR := uint8(1)

	if af.preloadThis {
		frame.SetLocalRegister(preloadR, ObjectValue(this))
		preloadR++
	}

	if af.preloadArguments {
		frame.SetLocalRegister(preloadR, ObjectValue(arguments))
		preloadR++
	}

	if superObject != nil {
		if af.preloadSuper {
			frame.SetLocalRegister(preloadR, ObjectValue(superObject))
			preloadR++
		} else {
			frame.Define("super", ObjectValue(superObject), avm)
		}
	}

	if af.preloadRoot {
		var root Value
		if af.baseClip != nil {
			root = af.baseClip.Root().Object(ctx)
		}
		frame.SetLocalRegister(preloadR, root)
		preloadR++
	}

	if af.preloadParent {
		// If _parent is undefined (because this is a root timeline),
		// it actually does not get pushed, and _global ends up
		// incorrectly taking _parent's register. See test.
		if af.baseClip != nil {
			if parent := af.baseClip.Parent(); parent != nil {
				frame.SetLocalRegister(preloadR, parent.Object(ctx))
				preloadR++
			}
		}
	}

	if af.preloadGlobal {
		frame.SetLocalRegister(preloadR, ObjectValue(avm.Globals()))
	}

	// Parameter bindings land after the preloads, so a parameter
	// mapped onto a preloaded register wins.
	for i, arg := range args {
		if i >= len(af.params) {
			break
		}
		param := af.params[i]
		if param.Register != 0 {
			frame.SetLocalRegister(param.Register, arg)
		} else {
			frame.Define(param.Name, arg, avm)
		}
	}

	avm.PushStackFrame(frame)

	return FrameResult(frame), nil
}

// FunctionObject is an Object that holds executable code.
type FunctionObject struct {
	*ScriptObject

	// Nil for objects constructed by `new Function`, which hold no
	// code.
	function *Executable

	// The value toString and valueOf yield.
	primitive Value
}

// BareFunction constructs a function object without a `prototype`
// property. fnProto is the Function prototype object serving as the
// implicit proto.
func BareFunction(function *Executable, fnProto Object, fnConstr Object) *FunctionObject {
	base := NewScriptObject(fnProto)
	base.SetConstr(fnConstr)
	base.typeOfStr = "function"
	return &FunctionObject{
		ScriptObject: base,
		function:     function,
		primitive:    NewString("[type Function]"),
	}
}

// BareNativeFunction wraps a native in a bare function object.
func BareNativeFunction(fn NativeFunction, fnProto Object) *FunctionObject {
	return BareFunction(NativeExecutable(fn), fnProto, nil)
}

// NewFunctionObject constructs a function object and cross-links it
// with its explicit prototype: `prototype.constructor` points back at
// the function, `function.prototype` at the prototype.
func NewFunctionObject(function *Executable, fnProto Object, fnConstr Object, prototype Object) *FunctionObject {
	fnObj := BareFunction(function, fnProto, fnConstr)
	if prototype != nil {
		prototype.DefineValue("constructor", ObjectValue(fnObj), DontEnum)
		fnObj.DefineValue("prototype", ObjectValue(prototype), 0)
	}
	return fnObj
}

func (o *FunctionObject) Get(name string, avm *Avm1, ctx *UpdateContext) (ReturnValue, error) {
	return getProperty(o, name, avm, ctx)
}

func (o *FunctionObject) Set(name string, value Value, avm *Avm1, ctx *UpdateContext) error {
	return o.setWithReceiver(name, value, avm, ctx, o)
}

func (o *FunctionObject) Call(avm *Avm1, ctx *UpdateContext, this Object, baseProto Object, args []Value) (ReturnValue, error) {
	if o.function == nil {
		return Immediate(Undefined), nil
	}
	return o.function.Exec(avm, ctx, this, baseProto, args)
}

// New builds a codeless function object; `new Function` yields a
// callable-shaped object holding nothing.
func (o *FunctionObject) New(avm *Avm1, ctx *UpdateContext, proto Object, args []Value, constructor Object) (Object, error) {
	base := NewScriptObject(proto)
	base.SetConstr(constructor)
	base.typeOfStr = "function"
	return &FunctionObject{
		ScriptObject: base,
		primitive:    NewString("[type Function]"),
	}, nil
}

func (o *FunctionObject) AsString() string { return "[type Function]" }

func (o *FunctionObject) TypeOf() string { return "function" }

func (o *FunctionObject) AsExecutable() *Executable { return o.function }

func (o *FunctionObject) AsScriptObject() *ScriptObject { return o.ScriptObject }

func (o *FunctionObject) AsPtr() unsafe.Pointer { return unsafe.Pointer(o) }
