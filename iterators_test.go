package ntree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collectIDs[T any](start, end *Node[T], next func() *Node[T]) []T {
	var got []T
	for n := start; n != end; n = next() {
		got = append(got, n.Data())
	}
	return got
}

func TestChildIterator(t *testing.T) {
	root, _, a1, a2, _, _ := buildSample()
	var it ChildIterator[string]
	got := collectIDs(it.Begin(root), it.End(), it.Next)
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("ChildIterator over root (-want +got):\n%s", diff)
	}

	var leafIt ChildIterator[string]
	got = collectIDs(leafIt.Begin(a1), leafIt.End(), leafIt.Next)
	if got != nil {
		t.Errorf("ChildIterator over a leaf = %v, want nil", got)
	}
	_ = a2
}

func TestChildIteratorSurvivesRemovingCurrent(t *testing.T) {
	root, a, _, _, _, _ := buildSample()
	var it ChildIterator[string]
	var got []string
	for n := it.Begin(root); n != it.End(); n = it.Next() {
		got = append(got, n.Data())
		if n == a {
			Remove(a)
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("iteration result after removing current (-want +got):\n%s", diff)
	}
	if !a.IsRoot() {
		t.Error("a should have been removed")
	}
}

func TestParentIterator(t *testing.T) {
	root, _, a1, _, _, _ := buildSample()

	var atIt ParentIterator[string]
	got := collectIDs(atIt.At(a1), atIt.End(), atIt.Next)
	if diff := cmp.Diff([]string{"a1", "a", "root"}, got); diff != "" {
		t.Errorf("ParentIterator.At(a1) (-want +got):\n%s", diff)
	}

	var beginIt ParentIterator[string]
	got = collectIDs(beginIt.Begin(a1), beginIt.End(), beginIt.Next)
	if diff := cmp.Diff([]string{"a", "root"}, got); diff != "" {
		t.Errorf("ParentIterator.Begin(a1) (-want +got):\n%s", diff)
	}

	var rootIt ParentIterator[string]
	got = collectIDs(rootIt.Begin(root), rootIt.End(), rootIt.Next)
	if got != nil {
		t.Errorf("ParentIterator.Begin(root) = %v, want nil", got)
	}
}

func TestNextPrevSiblingIterators(t *testing.T) {
	root := NewNode("root", nil, TagUnused)
	a := NewNode("a", nil, TagUnused)
	b := NewNode("b", nil, TagUnused)
	c := NewNode("c", nil, TagUnused)
	PushChildBack(root, a)
	PushChildBack(root, b)
	PushChildBack(root, c)

	var nextAt NextSiblingIterator[string]
	got := collectIDs(nextAt.At(a), nextAt.End(), nextAt.Next)
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("NextSiblingIterator.At(a) (-want +got):\n%s", diff)
	}

	var nextBegin NextSiblingIterator[string]
	got = collectIDs(nextBegin.Begin(a), nextBegin.End(), nextBegin.Next)
	if diff := cmp.Diff([]string{"b", "c"}, got); diff != "" {
		t.Errorf("NextSiblingIterator.Begin(a) (-want +got):\n%s", diff)
	}

	var prevAt PrevSiblingIterator[string]
	got = collectIDs(prevAt.At(c), prevAt.End(), prevAt.Next)
	if diff := cmp.Diff([]string{"c", "b", "a"}, got); diff != "" {
		t.Errorf("PrevSiblingIterator.At(c) (-want +got):\n%s", diff)
	}

	var prevBegin PrevSiblingIterator[string]
	got = collectIDs(prevBegin.Begin(c), prevBegin.End(), prevBegin.Next)
	if diff := cmp.Diff([]string{"b", "a"}, got); diff != "" {
		t.Errorf("PrevSiblingIterator.Begin(c) (-want +got):\n%s", diff)
	}
}

func TestSiblingIteratorWrapsOnceExcludingStart(t *testing.T) {
	root := NewNode("root", nil, TagUnused)
	a := NewNode("a", nil, TagUnused)
	b := NewNode("b", nil, TagUnused)
	c := NewNode("c", nil, TagUnused)
	PushChildBack(root, a)
	PushChildBack(root, b)
	PushChildBack(root, c)

	var it SiblingIterator[string]
	got := collectIDs(it.Begin(b), it.End(), it.Next)
	if diff := cmp.Diff([]string{"c", "a"}, got); diff != "" {
		t.Errorf("SiblingIterator.Begin(b) (-want +got):\n%s", diff)
	}
}

func TestSiblingIteratorRootYieldsNothing(t *testing.T) {
	root := NewNode("root", nil, TagUnused)
	var it SiblingIterator[string]
	got := collectIDs(it.Begin(root), it.End(), it.Next)
	if got != nil {
		t.Errorf("SiblingIterator.Begin(root) = %v, want nil", got)
	}
}

func TestPostorderIterator(t *testing.T) {
	root, _, _, _, _, _ := buildSample()
	var it PostorderIterator[string]
	got := collectIDs(it.Begin(root), it.End(), it.Next)
	if diff := cmp.Diff([]string{"a1", "a2", "a", "b1", "b", "root"}, got); diff != "" {
		t.Errorf("PostorderIterator.Begin(root) (-want +got):\n%s", diff)
	}
}

func TestPostorderIteratorSurvivesDestroyingCurrent(t *testing.T) {
	root, a, a1, a2, b, b1 := buildSample()
	var destroyed []string
	var it PostorderIterator[string]
	for n := it.Begin(root); n != it.End(); n = it.Next() {
		destroyed = append(destroyed, n.Data())
		if n != root {
			Destroy(n)
		}
	}
	if diff := cmp.Diff([]string{"a1", "a2", "a", "b1", "b", "root"}, destroyed); diff != "" {
		t.Errorf("destroy order (-want +got):\n%s", diff)
	}
	for _, n := range []*Node[string]{a, a1, a2, b, b1} {
		if n.Valid() {
			t.Errorf("node %q should have been invalidated by Destroy", n.Data())
		}
	}
}

// TestPostorderRemovalLeavesEveryNodeAnEmptyRoot is scenario 5 from the
// specification's end-to-end list: running the postorder iterator over
// an arbitrary tree and calling Remove on every yielded node must, at
// termination, leave every node an empty root with no assertion having
// fired.
func TestPostorderRemovalLeavesEveryNodeAnEmptyRoot(t *testing.T) {
	root, a, a1, a2, b, b1 := buildSample()
	all := []*Node[string]{root, a, a1, a2, b, b1}

	var it PostorderIterator[string]
	for n := it.Begin(root); n != it.End(); n = it.Next() {
		Remove(n)
	}

	for _, n := range all {
		if !n.Valid() {
			t.Fatalf("node %q should still be Valid (Remove, unlike Destroy, never invalidates)", n.Data())
		}
		if !n.IsRoot() {
			t.Errorf("node %q should be a root after postorder removal", n.Data())
		}
		if !n.IsLeaf() {
			t.Errorf("node %q should be an empty root (leaf) after postorder removal", n.Data())
		}
	}
}

// TestIteratorsAssertOnNextAfterTermination covers spec section 4.5's
// common rule that Next panics if called again after reaching End(),
// for the six families other than preorder (preorder is not covered
// here).
func TestIteratorsAssertOnNextAfterTermination(t *testing.T) {
	assertPanics := func(t *testing.T, name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: Next after termination did not panic", name)
			}
		}()
		fn()
	}

	t.Run("child", func(t *testing.T) {
		root, _, _, _, _, _ := buildSample()
		var it ChildIterator[string]
		for n := it.Begin(root); n != it.End(); n = it.Next() {
		}
		assertPanics(t, "ChildIterator", func() { it.Next() })
	})

	t.Run("parent", func(t *testing.T) {
		root, _, a1, _, _, _ := buildSample()
		var it ParentIterator[string]
		for n := it.Begin(a1); n != it.End(); n = it.Next() {
		}
		_ = root
		assertPanics(t, "ParentIterator", func() { it.Next() })
	})

	t.Run("next_sibling", func(t *testing.T) {
		root := NewNode("root", nil, TagUnused)
		a := NewNode("a", nil, TagUnused)
		b := NewNode("b", nil, TagUnused)
		PushChildBack(root, a)
		PushChildBack(root, b)
		var it NextSiblingIterator[string]
		for n := it.Begin(a); n != it.End(); n = it.Next() {
		}
		assertPanics(t, "NextSiblingIterator", func() { it.Next() })
	})

	t.Run("prev_sibling", func(t *testing.T) {
		root := NewNode("root", nil, TagUnused)
		a := NewNode("a", nil, TagUnused)
		b := NewNode("b", nil, TagUnused)
		PushChildBack(root, a)
		PushChildBack(root, b)
		var it PrevSiblingIterator[string]
		for n := it.Begin(b); n != it.End(); n = it.Next() {
		}
		assertPanics(t, "PrevSiblingIterator", func() { it.Next() })
	})

	t.Run("sibling", func(t *testing.T) {
		root := NewNode("root", nil, TagUnused)
		a := NewNode("a", nil, TagUnused)
		b := NewNode("b", nil, TagUnused)
		PushChildBack(root, a)
		PushChildBack(root, b)
		var it SiblingIterator[string]
		for n := it.Begin(a); n != it.End(); n = it.Next() {
		}
		assertPanics(t, "SiblingIterator", func() { it.Next() })
	})

	t.Run("postorder", func(t *testing.T) {
		root, _, _, _, _, _ := buildSample()
		var it PostorderIterator[string]
		for n := it.Begin(root); n != it.End(); n = it.Next() {
		}
		assertPanics(t, "PostorderIterator", func() { it.Next() })
	})
}

func TestPreorderIterator(t *testing.T) {
	root, _, _, _, _, _ := buildSample()
	var it PreorderIterator[string]
	got := collectIDs(it.Begin(root), it.End(), it.Next)
	if diff := cmp.Diff([]string{"root", "a", "a1", "a2", "b", "b1"}, got); diff != "" {
		t.Errorf("PreorderIterator.Begin(root) (-want +got):\n%s", diff)
	}
}

func TestPreorderIteratorSingleNode(t *testing.T) {
	root := NewNode("root", nil, TagUnused)
	var it PreorderIterator[string]
	got := collectIDs(it.Begin(root), it.End(), it.Next)
	if diff := cmp.Diff([]string{"root"}, got); diff != "" {
		t.Errorf("PreorderIterator.Begin(leaf root) (-want +got):\n%s", diff)
	}
}

func TestPreorderIteratorRejectsMutationOfCurrent(t *testing.T) {
	root, a, _, _, _, _ := buildSample()
	var it PreorderIterator[string]
	n := it.Begin(root)
	for n != a {
		n = it.Next()
	}
	Remove(a)

	defer func() {
		if recover() == nil {
			t.Error("Next after removing the current node should panic, it did not")
		}
	}()
	it.Next()
}
