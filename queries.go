package ntree

// IsRoot reports whether n has no parent.
func (n *Node[T]) IsRoot() bool {
	require(n.Valid(), "IsRoot requires a valid node")
	return n.parent == n
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	require(n.Valid(), "IsLeaf requires a valid node")
	return n.numChild == 0
}

// IsDescendant reports whether n has a parent. It is the logical
// negation of IsRoot, spelled out for readability at call sites that
// care about "is this a descendant" rather than "is this a root".
func (n *Node[T]) IsDescendant() bool {
	return !n.IsRoot()
}

// InSubtree reports whether n is currently a non-root member of some
// parent's children list. This is the stricter of the two "is this node
// part of a tree" predicates spec section 9 calls out as ambiguous in
// the original headers; see InTree for the looser one.
func (n *Node[T]) InSubtree() bool {
	require(n.Valid(), "InSubtree requires a valid node")
	return !n.IsRoot()
}

// InTree reports whether n participates in any tree at all: it returns
// true both for non-root nodes and for roots that have at least one
// child. Only an empty, unattached root returns false. See InSubtree for
// the predicate that excludes non-empty roots.
func (n *Node[T]) InTree() bool {
	require(n.Valid(), "InTree requires a valid node")
	return !n.IsRoot() || !n.IsLeaf()
}

// Count returns the number of direct children of n.
func (n *Node[T]) Count() int {
	require(n.Valid(), "Count requires a valid node")
	return n.numChild
}

// FirstChild returns n's leftmost direct child, or nil if n is a leaf.
func (n *Node[T]) FirstChild() *Node[T] {
	require(n.Valid(), "FirstChild requires a valid node")
	return n.firstChild
}

// LastChild returns n's rightmost direct child, or nil if n is a leaf.
func (n *Node[T]) LastChild() *Node[T] {
	require(n.Valid(), "LastChild requires a valid node")
	if n.firstChild == nil {
		return nil
	}
	return n.firstChild.prev
}

// Parent returns n's immediate ancestor, or nil if n is a root.
func (n *Node[T]) Parent() *Node[T] {
	require(n.Valid(), "Parent requires a valid node")
	if n.parent == n {
		return nil
	}
	return n.parent
}

// Next returns n's immediate right sibling, or nil if n is a root or
// the rightmost child of its parent.
func (n *Node[T]) Next() *Node[T] {
	require(n.Valid(), "Next requires a valid node")
	if n.IsRoot() {
		return nil
	}
	if n.next == n.parent.firstChild {
		return nil
	}
	return n.next
}

// Prev returns n's immediate left sibling, or nil if n is a root or the
// leftmost child of its parent.
func (n *Node[T]) Prev() *Node[T] {
	require(n.Valid(), "Prev requires a valid node")
	if n.IsRoot() {
		return nil
	}
	if n == n.parent.firstChild {
		return nil
	}
	return n.prev
}

// Level returns n's depth from its root; a root is at level 0.
func (n *Node[T]) Level() int {
	require(n.Valid(), "Level requires a valid node")
	level := 0
	var it ParentIterator[T]
	for p := it.Begin(n); p != it.End(); p = it.Next() {
		level++
	}
	return level
}

// Size returns the number of descendants of n, not counting n itself.
func (n *Node[T]) Size() int {
	require(n.Valid(), "Size requires a valid node")
	size := 0
	var it PostorderIterator[T]
	for m := it.Begin(n); m != it.End(); m = it.Next() {
		size++
	}
	require(size > 0, "postorder traversal must visit at least n itself")
	return size - 1
}

// isAncestorOf reports whether ancestor is a parent, grandparent, or
// further ancestor of n (ancestor == n counts as true, matching the
// original C helper used by LCA).
func isAncestorOf[T any](ancestor, n *Node[T]) bool {
	var it ParentIterator[T]
	for m := it.At(n); m != it.End(); m = it.Next() {
		if m == ancestor {
			return true
		}
	}
	return false
}

// LCA returns the lowest common ancestor of a and b: a if a is an
// ancestor of (or equal to) b, b symmetrically, otherwise the deepest
// node on both paths to the root. It returns nil if a and b belong to
// different trees.
func LCA[T any](a, b *Node[T]) *Node[T] {
	require(a.Valid(), "LCA requires a to be a valid node")
	require(b.Valid(), "LCA requires b to be a valid node")
	var it ParentIterator[T]
	for cur := it.At(a); cur != it.End(); cur = it.Next() {
		if cur == b || isAncestorOf(cur, b) {
			return cur
		}
	}
	return nil
}
