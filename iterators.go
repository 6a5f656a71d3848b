package ntree

// This file implements the seven traversal families from spec section
// 4.5. Every iterator follows the same shape: Begin (or At) initializes
// state and returns the first element, End returns the sentinel that
// denotes one-past-the-last, and Next advances. Each one precomputes the
// *next* node the moment the current one is produced, which is what
// makes removing or destroying the current node mid-iteration safe:
// advancing never dereferences the current node, only the cached next
// pointer. Destroying the cached next node instead is asserted against
// wherever the library can detect it.
//
// Child, parent, next-sibling, and prev-sibling iterators use nil as
// their out-of-band "end" marker, since there is no natural delimiter
// for those families. The sibling ring iterator uses its own start node,
// which it never yields, as its end marker. Preorder and postorder instead carry an
// embedded, permanently-invalid Node as their sentinel, so a uniform
// `for n := it.Begin(root); n != it.End(); n = it.Next()` loop works
// without special-casing the first or last step — passing that sentinel
// into any other API trips a precondition panic because it never
// passes Valid().

// leaf returns the leftmost, deepest leaf of the subtree rooted at n.
// If n is already a leaf, n itself is returned.
func leaf[T any](n *Node[T]) *Node[T] {
	for {
		c := n.FirstChild()
		if c == nil {
			return n
		}
		n = c
	}
}

// ChildIterator visits the direct children of a parent, left to right,
// without descending. Removing the current node is safe.
type ChildIterator[T any] struct {
	current, next *Node[T]
}

// Begin initializes the iterator over parent's direct children and
// returns the first one, or End() if parent is a leaf.
func (it *ChildIterator[T]) Begin(parent *Node[T]) *Node[T] {
	require(parent.Valid(), "ChildIterator.Begin requires a valid parent")
	it.current = parent.FirstChild()
	it.next = nil
	if it.current != nil {
		it.next = it.current.Next()
	}
	return it.current
}

// End returns the sentinel denoting the end of a child iteration.
func (it *ChildIterator[T]) End() *Node[T] {
	return nil
}

// Next advances to and returns the next child.
func (it *ChildIterator[T]) Next() *Node[T] {
	require(it.current != nil, "Next called on an exhausted ChildIterator")
	require(it.next == nil || it.next.InSubtree(), "the lookahead child was removed mid-iteration")
	it.current = it.next
	if it.next != nil {
		it.next = it.next.Next()
	}
	return it.current
}

// ParentIterator walks ancestors upward from a start node. At includes
// the start node itself as the first element; Begin excludes it and
// yields the parent first. Removing the current node is safe — it does
// not disturb the already-cached next ancestor.
type ParentIterator[T any] struct {
	current, next *Node[T]
}

// At initializes the iterator including start itself, and returns it.
func (it *ParentIterator[T]) At(start *Node[T]) *Node[T] {
	require(start.Valid(), "ParentIterator.At requires a valid start")
	it.current = start
	it.next = start.Parent()
	return it.current
}

// Begin initializes the iterator excluding start, returning its parent
// (or End() if start is a root).
func (it *ParentIterator[T]) Begin(start *Node[T]) *Node[T] {
	require(start.Valid(), "ParentIterator.Begin requires a valid start")
	it.current = start.Parent()
	it.next = nil
	if it.current != nil {
		it.next = it.current.Parent()
	}
	return it.current
}

// End returns the sentinel denoting the end of a parent iteration.
func (it *ParentIterator[T]) End() *Node[T] {
	return nil
}

// Next advances to and returns the next ancestor.
func (it *ParentIterator[T]) Next() *Node[T] {
	require(it.current != nil, "Next called on an exhausted ParentIterator")
	require(it.next == nil || it.next.Valid(), "the lookahead ancestor was destroyed mid-iteration")
	it.current = it.next
	if it.next != nil {
		it.next = it.next.Parent()
	}
	return it.current
}

// NextSiblingIterator walks right siblings. At yields start first, then
// each successive right sibling; Begin excludes start. If start is a
// root, At yields only start and Begin yields nothing.
type NextSiblingIterator[T any] struct {
	current, next *Node[T]
}

// At initializes the iterator including start.
func (it *NextSiblingIterator[T]) At(start *Node[T]) *Node[T] {
	require(start.Valid(), "NextSiblingIterator.At requires a valid start")
	it.current = start
	it.next = start.Next()
	return it.current
}

// Begin initializes the iterator excluding start.
func (it *NextSiblingIterator[T]) Begin(start *Node[T]) *Node[T] {
	require(start.Valid(), "NextSiblingIterator.Begin requires a valid start")
	it.current = start.Next()
	it.next = nil
	if it.current != nil {
		it.next = it.current.Next()
	}
	return it.current
}

// End returns the sentinel denoting the end of a next-sibling iteration.
func (it *NextSiblingIterator[T]) End() *Node[T] {
	return nil
}

// Next advances to and returns the next right sibling.
func (it *NextSiblingIterator[T]) Next() *Node[T] {
	require(it.current != nil, "Next called on an exhausted NextSiblingIterator")
	require(it.next == nil || it.next.InSubtree(), "the lookahead sibling was removed mid-iteration")
	it.current = it.next
	if it.next != nil {
		it.next = it.next.Next()
	}
	return it.current
}

// PrevSiblingIterator walks left siblings, symmetric to
// NextSiblingIterator.
type PrevSiblingIterator[T any] struct {
	current, next *Node[T]
}

// At initializes the iterator including start.
func (it *PrevSiblingIterator[T]) At(start *Node[T]) *Node[T] {
	require(start.Valid(), "PrevSiblingIterator.At requires a valid start")
	it.current = start
	it.next = start.Prev()
	return it.current
}

// Begin initializes the iterator excluding start.
func (it *PrevSiblingIterator[T]) Begin(start *Node[T]) *Node[T] {
	require(start.Valid(), "PrevSiblingIterator.Begin requires a valid start")
	it.current = start.Prev()
	it.next = nil
	if it.current != nil {
		it.next = it.current.Prev()
	}
	return it.current
}

// End returns the sentinel denoting the end of a prev-sibling iteration.
func (it *PrevSiblingIterator[T]) End() *Node[T] {
	return nil
}

// Next advances to and returns the next left sibling.
func (it *PrevSiblingIterator[T]) Next() *Node[T] {
	require(it.current != nil, "Next called on an exhausted PrevSiblingIterator")
	require(it.next == nil || it.next.InSubtree(), "the lookahead sibling was removed mid-iteration")
	it.current = it.next
	if it.next != nil {
		it.next = it.next.Prev()
	}
	return it.current
}

// SiblingIterator yields every sibling of start except start itself,
// wrapping around the ring exactly once. If start is a root or has no
// siblings, it yields nothing. Unlike the other families there is no At
// variant: the specification deliberately leaves "include start and
// cycle once" undefined (section 9), so only Begin is exposed.
type SiblingIterator[T any] struct {
	start, current, next *Node[T]
}

// Begin initializes the iterator and returns the first sibling, or
// End() if start has none.
func (it *SiblingIterator[T]) Begin(start *Node[T]) *Node[T] {
	require(start.Valid(), "SiblingIterator.Begin requires a valid start")
	it.start = start

	if start.IsRoot() {
		it.current = start
		it.next = start
		return it.current
	}

	it.current = start.Next()
	if it.current == nil {
		it.current = start.Parent().FirstChild()
		require(it.current != nil, "a non-root's parent must have at least one child")
	}
	it.next = it.current.Next()
	if it.next == nil {
		it.next = it.current.Parent().FirstChild()
		require(it.next != nil, "a non-root's parent must have at least one child")
	}
	return it.current
}

// End returns the sentinel denoting the end of a sibling iteration: the
// start node itself, which is never otherwise yielded.
func (it *SiblingIterator[T]) End() *Node[T] {
	require(it.start.Valid(), "SiblingIterator.End called before Begin or after start was destroyed")
	return it.start
}

// Next advances to and returns the next sibling in the ring.
func (it *SiblingIterator[T]) Next() *Node[T] {
	require(it.current != it.start, "Next called on an exhausted SiblingIterator")
	require(it.current.Valid(), "the current sibling was destroyed mid-iteration")
	require(it.next.InSubtree() || it.next == it.start, "the lookahead sibling was removed mid-iteration")

	it.current = it.next
	if !it.current.IsRoot() {
		it.next = it.current.Next()
		if it.next == nil {
			it.next = it.current.Parent().FirstChild()
			require(it.next != nil, "a non-root's parent must have at least one child")
		}
	}
	return it.current
}

// PostorderIterator walks a subtree visiting every child (left to
// right, recursively) before the subtree's own root, which is yielded
// last. Removing or destroying the current node is safe and is the
// pattern Destroy itself uses: by the time a non-leaf is visited, every
// one of its children has already been visited and can already have
// been removed.
type PostorderIterator[T any] struct {
	root, current, next *Node[T]
	delimiter           Node[T]
}

// Begin initializes the iterator over the subtree rooted at root and
// returns the first (leftmost-deepest) leaf.
func (it *PostorderIterator[T]) Begin(root *Node[T]) *Node[T] {
	require(root.Valid(), "PostorderIterator.Begin requires a valid root")
	it.delimiter = Node[T]{}
	it.root = root
	it.current = leaf(root)

	switch sib := it.current.Next(); {
	case it.current == it.root:
		it.next = &it.delimiter
	case sib != nil:
		it.next = leaf(sib)
	default:
		it.next = it.current.Parent()
		require(it.next != nil, "a non-root postorder node must have a parent")
	}
	return it.current
}

// End returns the sentinel denoting the end of a postorder iteration.
// Passing it to any other API panics, since it never passes Valid().
func (it *PostorderIterator[T]) End() *Node[T] {
	return &it.delimiter
}

// Next advances to and returns the next node in postorder.
func (it *PostorderIterator[T]) Next() *Node[T] {
	require(it.current != nil && it.next != nil, "Next called before Begin")
	require(it.current != &it.delimiter, "Next called on an exhausted PostorderIterator")

	it.current = it.next
	if it.next != &it.delimiter {
		switch sib := it.next.Next(); {
		case it.next == it.root:
			it.next = &it.delimiter
		case sib != nil:
			it.next = leaf(sib)
		default:
			it.next = it.next.Parent()
			require(it.next != nil, "a non-root postorder node must have a parent")
		}
	}
	return it.current
}

// PreorderIterator walks a subtree visiting the subtree's own root
// first, then each child subtree left to right. Mutating the tree
// during a preorder walk is forbidden: removing or destroying any node
// while the iteration is live has undefined effects on traversal state,
// and is asserted against on the current node at every step.
type PreorderIterator[T any] struct {
	root, current *Node[T]
	delimiter      Node[T]
}

// Begin initializes the iterator over the subtree rooted at root and
// returns root itself.
func (it *PreorderIterator[T]) Begin(root *Node[T]) *Node[T] {
	require(root.Valid(), "PreorderIterator.Begin requires a valid root")
	it.delimiter = Node[T]{}
	it.root = root
	it.current = root
	return it.current
}

// End returns the sentinel denoting the end of a preorder iteration.
// As with every other family, calling Next after reaching it is a
// precondition violation rather than a restart.
func (it *PreorderIterator[T]) End() *Node[T] {
	return &it.delimiter
}

// Next advances to and returns the next node in preorder.
func (it *PreorderIterator[T]) Next() *Node[T] {
	require(it.current != nil, "Next called before Begin")
	require(it.current != &it.delimiter, "Next called on an exhausted PreorderIterator")
	require(it.current == it.root || !it.current.IsRoot(), "the current node was removed mid-iteration")

	if child := it.current.FirstChild(); child != nil {
		it.current = child
		return it.current
	}

	n := it.current
	for n != it.root {
		if sib := n.Next(); sib != nil {
			it.current = sib
			return it.current
		}
		n = n.Parent()
		require(n != nil, "a non-root preorder node must have a parent")
	}

	it.current = &it.delimiter
	return it.current
}
