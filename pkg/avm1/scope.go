package avm1

// ScopeClass says how a scope frame behaves during reads and writes.
type ScopeClass uint8

const (
	// ScopeGlobal backs the bottom of every chain.
	ScopeGlobal ScopeClass = iota
	// ScopeTarget is the current clip; unqualified writes land here.
	ScopeTarget
	// ScopeLocal holds function locals.
	ScopeLocal
	// ScopeWith wraps an arbitrary object pushed by a `with` block.
	ScopeWith
)

func (c ScopeClass) String() string {
	switch c {
	case ScopeGlobal:
		return "Global"
	case ScopeTarget:
		return "Target"
	case ScopeLocal:
		return "Local"
	case ScopeWith:
		return "With"
	default:
		return "Unknown"
	}
}

// Scope is one frame of a name-resolution chain. The values object is
// shared: a clip's Target frame and the clip itself are the same
// object, so scope writes are clip writes.
type Scope struct {
	parent *Scope
	class  ScopeClass
	values Object
}

// FromGlobalObject starts a chain with a bare Global frame.
func FromGlobalObject(globals Object) *Scope {
	return &Scope{class: ScopeGlobal, values: globals}
}

// NewScope chains a frame of the given class over parent, backed by
// the given values object.
func NewScope(parent *Scope, class ScopeClass, values Object) *Scope {
	return &Scope{parent: parent, class: class, values: values}
}

// NewLocalScope chains a fresh Local frame for a function activation.
func NewLocalScope(avm *Avm1, parent *Scope) *Scope {
	return NewScope(parent, ScopeLocal, NewScriptObject(avm.Prototypes().Object))
}

// NewWithScope wraps an existing object as a With frame.
func NewWithScope(parent *Scope, withObject Object) *Scope {
	return NewScope(parent, ScopeWith, withObject)
}

// NewClosureScope captures the chain for a closure: every non-With
// frame is cloned (sharing its values object, with a fresh parent
// link); With frames are dropped entirely. The defining function's
// locals therefore stay visible and writable through the closure, while
// transient `with` blocks do not outlive their lexical extent.
func NewClosureScope(parent *Scope) *Scope {
	var bottom, top *Scope
	for src := parent; src != nil; src = src.parent {
		if src.class == ScopeWith {
			continue
		}
		frame := &Scope{class: src.class, values: src.values}
		if bottom == nil {
			bottom = frame
		} else {
			top.parent = frame
		}
		top = frame
	}
	if bottom == nil {
		// A chain of nothing but With frames collapses to nothing;
		// synthesize a bare Global frame so the invariant that every
		// chain ends at Global holds.
		bottom = &Scope{class: ScopeGlobal, values: NewScriptObject(nil)}
	}
	return bottom
}

// NewTargetScope clones the whole chain, rebinding every Target frame's
// values to the given clip. Used when a tab/targetPath change moves the
// current clip without disturbing locals or with-blocks.
func NewTargetScope(parent *Scope, clip Object) *Scope {
	var bottom, top *Scope
	for src := parent; src != nil; src = src.parent {
		values := src.values
		if src.class == ScopeTarget {
			values = clip
		}
		frame := &Scope{class: src.class, values: values}
		if bottom == nil {
			bottom = frame
		} else {
			top.parent = frame
		}
		top = frame
	}
	if bottom == nil {
		bottom = &Scope{class: ScopeGlobal, values: NewScriptObject(nil)}
	}
	return bottom
}

func (s *Scope) Parent() *Scope { return s.parent }

func (s *Scope) Class() ScopeClass { return s.class }

// Locals returns the frame's backing object.
func (s *Scope) Locals() Object { return s.values }

// Resolve reads a name, walking from this frame toward Global. Missing
// names yield Undefined.
func (s *Scope) Resolve(name string, avm *Avm1, ctx *UpdateContext) (ReturnValue, error) {
	for frame := s; frame != nil; frame = frame.parent {
		if frame.values.HasProperty(avm, ctx, name) {
			return frame.values.Get(name, avm, ctx)
		}
	}
	return Immediate(Undefined), nil
}

// IsDefined reports whether any frame in the chain carries the name.
func (s *Scope) IsDefined(avm *Avm1, ctx *UpdateContext, name string) bool {
	for frame := s; frame != nil; frame = frame.parent {
		if frame.values.HasProperty(avm, ctx, name) {
			return true
		}
	}
	return false
}

// Set performs an unqualified variable write: the first Target frame or
// own-overwritable property takes it; otherwise the write climbs the
// chain. A chain with no eligible frame should not exist, but script
// can arrange it, so the write lands on the final frame with a warning
// rather than being lost.
func (s *Scope) Set(name string, value Value, avm *Avm1, ctx *UpdateContext) error {
	if s.class == ScopeTarget || (s.values.HasProperty(avm, ctx, name) && s.values.IsPropertyOverwritable(avm, name)) {
		return s.values.Set(name, value, avm, ctx)
	}
	if s.parent != nil {
		return s.parent.Set(name, value, avm, ctx)
	}
	log.Warningf("scope chain exhausted setting %q; writing to outermost frame", name)
	return s.values.Set(name, value, avm, ctx)
}

// Define creates the name directly on this frame, bypassing chain
// traversal. This is `var` declaration semantics. The avm parameter is
// unused today but kept so Define matches the other mutators; frame
// values may need the runtime once watchpoints land here.
func (s *Scope) Define(name string, value Value, avm *Avm1) {
	s.values.DefineValue(name, value, 0)
}

// Delete removes the nearest binding of the name, if deletable.
func (s *Scope) Delete(avm *Avm1, ctx *UpdateContext, name string) bool {
	for frame := s; frame != nil; frame = frame.parent {
		if frame.values.HasProperty(avm, ctx, name) {
			return frame.values.Delete(avm, name)
		}
	}
	return false
}
