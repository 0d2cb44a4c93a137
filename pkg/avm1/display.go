package avm1

// DisplayObject is the runtime's view of a node in the host's display
// hierarchy. The hierarchy itself lives outside this module; the
// runtime only needs version resolution, the _root/_parent walk, and
// the node's script-object face.
type DisplayObject interface {
	// SwfVersion is the content version of the movie this node came
	// from.
	SwfVersion() uint8

	// Root walks up to the hierarchy root (possibly the node itself).
	Root() DisplayObject

	// Parent returns the containing node, or nil at the root.
	Parent() DisplayObject

	// Object returns the node's script-facing object value.
	Object(ctx *UpdateContext) Value
}
