package main

import (
	"strings"
	"testing"

	"github.com/cagrimmett/ntree"
)

func sampleTree() *ntree.Node[string] {
	root := ntree.NewNode("root", nil, ntree.TagUnused)
	a := ntree.NewNode("a", nil, ntree.TagUnused)
	b := ntree.NewNode("b", nil, ntree.TagUnused)
	a1 := ntree.NewNode("a1", nil, ntree.TagUnused)
	ntree.PushChildBack(root, a)
	ntree.PushChildBack(root, b)
	ntree.PushChildBack(a, a1)
	return root
}

func TestRenderProducesOneLinePerNode(t *testing.T) {
	root := sampleTree()
	defer ntree.Destroy(root)

	p := NewDefaultProvider[string]()
	out := render(root, p, nil)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("render produced %d lines, want 4 (root, a, a1, b)", len(lines))
	}
}

func TestRenderUsesBranchConnectors(t *testing.T) {
	root := sampleTree()
	defer ntree.Destroy(root)

	p := NewDefaultProvider[string]()
	out := render(root, p, nil)

	if !strings.Contains(out, "└──") {
		t.Error("render output should contain at least one last-child connector")
	}
	if !strings.Contains(out, "├──") {
		t.Error("render output should contain at least one non-last-child connector")
	}
}

func TestRenderMarksFocusedNode(t *testing.T) {
	root := sampleTree()
	defer ntree.Destroy(root)

	a := root.FirstChild()
	p := NewDefaultProvider[string]()

	withFocus := render(root, p, a)
	withoutFocus := render(root, p, nil)

	if withFocus == withoutFocus {
		t.Error("rendering with a focused node should differ from rendering without one")
	}
}

func TestDefaultProviderFormatFallsBackToData(t *testing.T) {
	root := sampleTree()
	defer ntree.Destroy(root)

	p := NewDefaultProvider[string]()
	if got := p.Format(root); got != "root" {
		t.Errorf("Format(root) = %q, want %q", got, "root")
	}
}

func TestWithTagIconSelectsByTag(t *testing.T) {
	n := ntree.NewNode("x", nil, ntree.TagUserBegin)
	defer ntree.Destroy(n)

	p := NewDefaultProvider[string](WithTagIcon[string](ntree.TagUserBegin, "T"))
	if got := p.Icon(n); got != "T" {
		t.Errorf("Icon(tagged node) = %q, want %q", got, "T")
	}
}
