// Package ntree provides a generic, allocation-free n-ary (rose) tree.
//
// Nodes are plain Go values: [Node] is itself the storage record for a
// caller-supplied payload of type T, not a separate handle wrapping it.
// [NewNode] allocates each Node it returns; the caller cannot supply the
// storage for a Node itself. Building a tree only threads pointers that
// already exist — PushChildBack, InsertSiblingAfter, and the rest of the
// topology operations in this package never allocate and never copy a
// payload. Storage lifetime is entirely the caller's responsibility;
// [Destroy] invalidates nodes and invokes a caller-supplied callback, but
// never frees anything itself.
//
// A Node is at all times either a root (no parent) or a non-root
// descendant of exactly one parent; its children are kept in an ordered
// ring so siblings know their left/right neighbors in O(1). Seven
// iterator families (child, parent, next-sibling, prev-sibling, sibling
// ring, preorder, postorder) walk the tree with precise rules about
// which ones tolerate removing the node currently being visited — see
// the doc comment on each iterator type.
//
// The library is single-threaded: apart from NewNode, nothing here
// allocates, and nothing blocks, retains a context, or synchronizes
// access. Concurrent use of the same
// tree from multiple goroutines requires external locking.
//
// Precondition violations (a nil argument, inserting a node that is
// already attached, advancing a spent iterator, mutating during a
// preorder walk) are programming errors, not recoverable failures: they
// panic with an *ntree.ContractViolation rather than returning an error.
// Ordinary empty results — no parent, no next sibling, no common
// ancestor, end of iteration — are reported with a plain nil or ok=false,
// never an error.
package ntree
