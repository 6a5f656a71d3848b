package ntree

import (
	"testing"
)

func TestNewNode(t *testing.T) {
	n := NewNode("payload", nil, TagUnused)

	if !n.Valid() {
		t.Fatal("NewNode returned a node that fails Valid()")
	}
	if !n.IsRoot() {
		t.Error("a freshly constructed node must be a root")
	}
	if !n.IsLeaf() {
		t.Error("a freshly constructed node must be a leaf")
	}
	if got := n.Data(); got != "payload" {
		t.Errorf("Data() = %q, want %q", got, "payload")
	}
	if got := n.Tag(); got != TagUnused {
		t.Errorf("Tag() = %v, want %v", got, TagUnused)
	}
}

func TestNilNodeIsInvalid(t *testing.T) {
	var n *Node[int]
	if n.Valid() {
		t.Error("a nil *Node must fail Valid()")
	}
}

func TestSetData(t *testing.T) {
	n := NewNode(1, nil, TagUnused)
	n.SetData(2)
	if got := n.Data(); got != 2 {
		t.Errorf("Data() after SetData(2) = %d, want 2", got)
	}
}

func TestNewNodeRejectsReservedTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewNode with tagReserved should panic, it did not")
		}
	}()
	NewNode(1, nil, tagReserved)
}
