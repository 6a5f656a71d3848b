package ntree

// Destroy tears down the subtree rooted at n in postorder: every
// descendant is destroyed before its parent, so a destructor never sees
// a node with live children. For each node, in order: its tag is
// cached, it is detached from its parent's ring (a no-op for n itself,
// which may already be a root), its parent and sibling links are
// cleared so it fails Valid afterward, and finally its destructor (if
// any) is invoked with the cached tag.
//
// Destroy is itself what the postorder family is built to tolerate:
// the iterator has already cached its lookahead before the current
// node is torn down, so destroying "current" mid-walk never disturbs
// the walk.
func Destroy[T any](n *Node[T]) {
	require(n.Valid(), "Destroy requires a valid node")

	var it PostorderIterator[T]
	for m := it.Begin(n); m != it.End(); m = it.Next() {
		tag := m.tag

		if !m.IsRoot() {
			ringRemove(m)
		}
		m.parent = nil
		m.next = nil
		m.prev = nil
		m.firstChild = nil
		m.numChild = 0
		m.tag = tagReserved

		if m.destroy != nil {
			m.destroy(m, tag)
		}
	}
}
