package avm1

import (
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("avm1")

// FrameRunner executes a pushed activation frame to completion and
// returns the frame's return value. The external opcode interpreter
// installs one via SetFrameRunner; this module never interprets
// bytecode itself.
type FrameRunner func(avm *Avm1, ctx *UpdateContext, frame *Activation) (Value, error)

// Avm1 is one script runtime instance: the frame stack, the global
// object and the per-instance system prototypes. Instances are
// independent; nothing in here is shared or synchronized. One instance
// serves one player, on one goroutine.
type Avm1 struct {
	playerVersion uint8

	prototypes   SystemPrototypes
	constructors SystemConstructors
	globals      Object

	stackFrames []*Activation
	runner      FrameRunner
}

// NewAvm1 bootstraps a runtime for the given player version: system
// prototypes, constructors and the global object, fully cross-wired.
func NewAvm1(playerVersion uint8) *Avm1 {
	avm := &Avm1{playerVersion: playerVersion}
	avm.prototypes, avm.constructors, avm.globals = createGlobals(avm)
	return avm
}

func (avm *Avm1) PlayerVersion() uint8 { return avm.playerVersion }

// CurrentSwfVersion is the content version of the code currently
// executing: the top activation frame's version, or the player version
// when the stack is empty.
func (avm *Avm1) CurrentSwfVersion() uint8 {
	if frame := avm.CurrentStackFrame(); frame != nil {
		return frame.SwfVersion()
	}
	return avm.playerVersion
}

func (avm *Avm1) Globals() Object { return avm.globals }

func (avm *Avm1) Prototypes() *SystemPrototypes { return &avm.prototypes }

func (avm *Avm1) Constructors() *SystemConstructors { return &avm.constructors }

// SetFrameRunner installs the bytecode interpreter hook used to resolve
// frame-backed return values.
func (avm *Avm1) SetFrameRunner(runner FrameRunner) { avm.runner = runner }

func (avm *Avm1) PushStackFrame(frame *Activation) {
	avm.stackFrames = append(avm.stackFrames, frame)
	log.Debugf("pushed stack frame (depth %d, swf v%d)", len(avm.stackFrames), frame.SwfVersion())
}

func (avm *Avm1) PopStackFrame() *Activation {
	if len(avm.stackFrames) == 0 {
		return nil
	}
	frame := avm.stackFrames[len(avm.stackFrames)-1]
	avm.stackFrames = avm.stackFrames[:len(avm.stackFrames)-1]
	return frame
}

func (avm *Avm1) CurrentStackFrame() *Activation {
	if len(avm.stackFrames) == 0 {
		return nil
	}
	return avm.stackFrames[len(avm.stackFrames)-1]
}

func (avm *Avm1) StackDepth() int { return len(avm.stackFrames) }
