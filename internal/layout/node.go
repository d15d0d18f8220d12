package layout

// Size is a width/height pair returned by measure callbacks.
type Size struct {
	Width  float32
	Height float32
}

// MeasureFunc computes the content size of a leaf under the given
// constraints. Sizes are NaN when their mode is MeasureModeUndefined.
type MeasureFunc func(node *Node, width float32, widthMode MeasureMode, height float32, heightMode MeasureMode) Size

// BaselineFunc returns the distance from the top of the node to its
// alignment baseline.
type BaselineFunc func(node *Node, width, height float32) float32

// DirtiedFunc is called when a node transitions from clean to dirty.
type DirtiedFunc func(node *Node)

// Node represents an element in the layout tree.
type Node struct {
	// Configuration (user-set)
	style    Style
	config   *Config
	context  any
	measure  MeasureFunc
	baseline BaselineFunc
	dirtied  DirtiedFunc
	nodeType NodeType

	isReferenceBaseline        bool
	alwaysFormsContainingBlock bool

	// Tree
	owner    *Node
	children []*Node

	// Computed (set by layout engine)
	layout        LayoutResult
	processedDims [2]Value
	lineIndex     int
	dirty         bool
	hasNewLayout  bool
}

// NewNode creates a node using the default config.
func NewNode() *Node {
	return NewNodeWithConfig(defaultConfig)
}

// NewNodeWithConfig creates a node that reads its tunables from config.
// New nodes are dirty and have no owner.
func NewNodeWithConfig(config *Config) *Node {
	assertf(config != nil, "attempting to create a node with a nil config")
	config.adopt()

	n := &Node{
		config:       config,
		layout:       newLayoutResult(),
		dirty:        true,
		hasNewLayout: true,
	}
	n.style = n.initialStyle()
	n.processedDims = [2]Value{Auto(), Auto()}
	return n
}

func (n *Node) initialStyle() Style {
	if n.config.useWebDefaults {
		return webDefaultStyle()
	}
	return DefaultStyle()
}

// Reset restores a detached, childless node to its initial state, keeping
// its config.
func (n *Node) Reset() {
	assertf(len(n.children) == 0, "cannot reset a node which still has children attached")
	assertf(n.owner == nil, "cannot reset a node still attached to an owner")

	config := n.config
	*n = Node{
		config:       config,
		layout:       newLayoutResult(),
		dirty:        true,
		hasNewLayout: true,
	}
	n.style = n.initialStyle()
	n.processedDims = [2]Value{Auto(), Auto()}
}

// Config returns the config the node reads its tunables from.
func (n *Node) Config() *Config {
	return n.config
}

// SetConfig swaps the node's config. Configs that lay out identically keep
// cached results valid; any other config dirties the node. Changing
// UseWebDefaults this way panics, like Config.SetUseWebDefaults.
func (n *Node) SetConfig(config *Config) {
	assertf(config != nil, "attempting to set a nil config on a node")
	assertf(config.useWebDefaults == n.config.useWebDefaults,
		"UseWebDefaults may not be changed after constructing a node")

	config.adopt()
	if layoutEquivalent(n.config, config) {
		n.layout.configVersion = config.version
	} else {
		n.markDirtyAndPropagate()
		n.layout.configVersion = 0
	}
	n.config = config
}

// Context returns the caller data attached to the node.
func (n *Node) Context() any {
	return n.context
}

// SetContext attaches caller data to the node. It does not affect layout.
func (n *Node) SetContext(ctx any) {
	n.context = ctx
}

// Tree

// Owner returns the node's parent, or nil for a root.
func (n *Node) Owner() *Node {
	return n.owner
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index. It panics when index is out of range.
func (n *Node) Child(index int) *Node {
	assertf(index >= 0 && index < len(n.children), "child index %d out of range [0, %d)", index, len(n.children))
	return n.children[index]
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// InsertChild inserts child at index and marks this node dirty.
// The child must not have an owner and this node must not have a measure
// function.
func (n *Node) InsertChild(child *Node, index int) {
	assertf(child != nil, "cannot insert a nil child")
	assertf(child != n, "cannot insert a node into itself")
	assertf(child.owner == nil, "child already has an owner, it must be removed first")
	assertf(n.measure == nil, "cannot add child: nodes with measure functions cannot have children")
	assertf(index >= 0 && index <= len(n.children), "insert index %d out of range [0, %d]", index, len(n.children))

	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.owner = n
	n.markDirtyAndPropagate()
}

// AppendChild adds child after the existing children.
func (n *Node) AppendChild(child *Node) {
	n.InsertChild(child, len(n.children))
}

// RemoveChild detaches child and marks this node dirty.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.detach()
			n.markDirtyAndPropagate()
			return true
		}
	}
	return false
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	if len(n.children) == 0 {
		return
	}
	for _, c := range n.children {
		c.detach()
	}
	n.children = nil
	n.markDirtyAndPropagate()
}

// detach clears state that only made sense under the old owner.
func (n *Node) detach() {
	n.owner = nil
	n.layout = newLayoutResult()
	n.setDirty(true)
}

// Free detaches the node from its owner and releases its children, which
// become roots of their own.
func (n *Node) Free() {
	if n.owner != nil {
		n.owner.RemoveChild(n)
	}
	for _, c := range n.children {
		c.owner = nil
	}
	n.children = nil
}

// FreeRecursive detaches the node and releases the whole subtree.
func (n *Node) FreeRecursive() {
	for len(n.children) > 0 {
		child := n.children[0]
		n.RemoveChild(child)
		child.FreeRecursive()
	}
	n.Free()
}

// Callbacks

// SetMeasureFunc sets the leaf measurement callback; nil removes it.
// Nodes with a measure function are text nodes and cannot have children.
func (n *Node) SetMeasureFunc(fn MeasureFunc) {
	if fn == nil {
		n.measure = nil
		n.nodeType = NodeTypeDefault
		return
	}
	assertf(len(n.children) == 0, "cannot set measure function: nodes with measure functions cannot have children")
	n.measure = fn
	n.nodeType = NodeTypeText
}

// HasMeasureFunc reports whether a measure callback is set.
func (n *Node) HasMeasureFunc() bool {
	return n.measure != nil
}

// SetBaselineFunc sets the baseline callback; nil removes it.
func (n *Node) SetBaselineFunc(fn BaselineFunc) {
	n.baseline = fn
}

// HasBaselineFunc reports whether a baseline callback is set.
func (n *Node) HasBaselineFunc() bool {
	return n.baseline != nil
}

// SetDirtiedFunc sets a callback fired when the node becomes dirty.
func (n *Node) SetDirtiedFunc(fn DirtiedFunc) {
	n.dirtied = fn
}

// NodeType reports whether the node holds text.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// SetNodeType overrides the node type. Text nodes never round their size down.
func (n *Node) SetNodeType(t NodeType) {
	n.nodeType = t
}

func (n *Node) callMeasure(width float32, widthMode MeasureMode, height float32, heightMode MeasureMode) Size {
	assertf(n.measure != nil, "measure function called on a node without one")
	return n.measure(n, width, widthMode, height, heightMode)
}

func (n *Node) callBaseline(width, height float32) float32 {
	assertf(n.baseline != nil, "baseline function called on a node without one")
	return n.baseline(n, width, height)
}

// IsReferenceBaseline reports whether the node supplies its line's baseline.
func (n *Node) IsReferenceBaseline() bool {
	return n.isReferenceBaseline
}

// SetIsReferenceBaseline makes the node the baseline reference of its line.
func (n *Node) SetIsReferenceBaseline(v bool) {
	if n.isReferenceBaseline != v {
		n.isReferenceBaseline = v
		n.markDirtyAndPropagate()
	}
}

// AlwaysFormsContainingBlock reports whether absolute descendants are placed
// relative to this node even when it is statically positioned.
func (n *Node) AlwaysFormsContainingBlock() bool {
	return n.alwaysFormsContainingBlock
}

// SetAlwaysFormsContainingBlock forces the node to be a containing block.
func (n *Node) SetAlwaysFormsContainingBlock(v bool) {
	if n.alwaysFormsContainingBlock != v {
		n.alwaysFormsContainingBlock = v
		n.markDirtyAndPropagate()
	}
}

// Dirty state

// IsDirty returns whether this node needs recalculation.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// MarkDirty invalidates the node's measurement. Only nodes with a measure
// function may be marked dirty by hand; the engine tracks everything else.
func (n *Node) MarkDirty() {
	assertf(n.measure != nil, "only leaf nodes with custom measure functions should manually mark themselves as dirty")
	n.markDirtyAndPropagate()
}

func (n *Node) setDirty(dirty bool) {
	if dirty == n.dirty {
		return
	}
	n.dirty = dirty
	if dirty && n.dirtied != nil {
		n.dirtied(n)
	}
}

// markDirtyAndPropagate marks this node and all ancestors as needing
// recalculation, stopping at the first one already dirty.
func (n *Node) markDirtyAndPropagate() {
	for node := n; node != nil && !node.dirty; node = node.owner {
		node.setDirty(true)
		node.layout.computedFlexBasis = Undefined
	}
}

// markSubtreeDirty dirties every descendant, then propagates upward.
func (n *Node) markSubtreeDirty() {
	var walk func(*Node)
	walk = func(node *Node) {
		node.setDirty(true)
		node.layout.computedFlexBasis = Undefined
		for _, c := range node.children {
			walk(c)
		}
	}
	for _, c := range n.children {
		walk(c)
	}
	n.markDirtyAndPropagate()
}

// HasNewLayout reports whether layout wrote new results since the flag was
// last cleared.
func (n *Node) HasNewLayout() bool {
	return n.hasNewLayout
}

// SetHasNewLayout lets consumers clear the flag once they have read the
// results.
func (n *Node) SetHasNewLayout(v bool) {
	n.hasNewLayout = v
}

// Style copying

// CopyStyle replaces the node's style with src's, marking it dirty if the
// style changed.
func (n *Node) CopyStyle(src *Node) {
	if !n.style.Equal(&src.style) {
		n.style = src.style
		n.markDirtyAndPropagate()
	}
}
