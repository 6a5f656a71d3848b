package ntree

// Destructor is invoked exactly once per node during Destroy, after the
// node has been detached from the tree and invalidated but before its
// storage may be reused. It receives the node's address (so the caller
// can container-of back to its own wrapper type, recover any out-of-band
// state, or free the storage) and the tag that was live immediately
// before destruction.
//
// A destructor must not call any topology operation on any node,
// including the one being destroyed. The library cannot always detect a
// violation of this rule, but where it can it panics with a
// ContractViolation.
type Destructor[T any] func(n *Node[T], tag Tag)

// Node is a single vertex of a tree and, at the same time, the storage
// for the caller's payload of type T. It is never copied by this
// package; every topology operation rewires pointers between existing
// Node values. The zero value is not ready for use — construct nodes
// with NewNode.
type Node[T any] struct {
	data    T
	tag     Tag
	destroy Destructor[T]

	// parent doubles as the "is this a root" sentinel: it self-references
	// when the node is a root, and is nil only before construction or
	// after destruction. This mirrors the C original's
	// parent-equals-self trick so Valid() can distinguish "root" from
	// "destroyed" without a separate boolean.
	parent *Node[T]

	// next/prev form the sibling ring this node is threaded into. They
	// self-reference when the node is a root (detached from any ring).
	next, prev *Node[T]

	// firstChild is the front of this node's children ring, or nil for a
	// leaf. The back of the ring is firstChild.prev.
	firstChild *Node[T]
	numChild   int
}

// NewNode constructs a root node wrapping data, with an optional
// destructor (nil is fine — the node is then inert to Destroy's
// callback) and a tag, which must be TagUnused or >= TagUserBegin.
// Constructing an already-live node is undefined; destroy it first.
func NewNode[T any](data T, destroy Destructor[T], tag Tag) *Node[T] {
	require(validTag(tag), "tag must be TagUnused or >= TagUserBegin")
	n := &Node[T]{data: data, tag: tag, destroy: destroy}
	n.parent = n
	n.next = n
	n.prev = n
	return n
}

// Valid reports whether n passes the structural sanity checks the
// library relies on internally: a live sibling hook and a non-nil parent
// field (even roots carry a non-nil, self-referencing parent). A
// destroyed node fails Valid until reconstructed.
func (n *Node[T]) Valid() bool {
	if n == nil {
		return false
	}
	return n.parent != nil && n.next != nil && n.prev != nil
}

// Data returns the payload supplied to NewNode.
func (n *Node[T]) Data() T {
	return n.data
}

// SetData replaces the payload stored in n.
func (n *Node[T]) SetData(data T) {
	n.data = data
}

// Tag returns the node's tag, or tagReserved/TagUnused if it was never
// given a meaningful one, or has been destroyed.
func (n *Node[T]) Tag() Tag {
	return n.tag
}
