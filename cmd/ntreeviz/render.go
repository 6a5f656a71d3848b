package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/cagrimmett/ntree"
)

// defaultLabel is the fallback formatter used when a Provider has none
// of its own: the node's payload printed with %v.
func defaultLabel[T any](n *ntree.Node[T]) string {
	return fmt.Sprintf("%v", n.Data())
}

// line is one rendered row: the node it came from plus its styled
// text, kept paired so the viewer can map a cursor position back to a
// node.
type line[T any] struct {
	node *ntree.Node[T]
	text string
}

// renderNode renders a single line: prefix branch glyphs, a
// width-normalized icon, the label, and the provider's style for the
// node's focus state.
func renderNode[T any](p Provider[T], n *ntree.Node[T], prefix string, isFocused bool) string {
	icon := normalizeIconWidth(p.Icon(n))
	label := p.Format(n)
	style := p.Style(n, isFocused)
	return style.Render(prefix + icon + label)
}

// buildPrefix returns the box-drawing prefix for a node at a given
// depth, given whether each ancestor at that depth was its parent's
// last child and whether this node itself is the last child.
func buildPrefix(ancestorIsLast []bool, isLast bool) string {
	var b strings.Builder
	for _, last := range ancestorIsLast {
		if last {
			b.WriteString("    ")
		} else {
			b.WriteString("│   ")
		}
	}
	if isLast {
		b.WriteString("└── ")
	} else {
		b.WriteString("├── ")
	}
	return b.String()
}

// flatten walks root in preorder and returns one line per node, each
// carrying the branch-connector prefix appropriate to its depth and
// position among siblings. focused may be nil.
func flatten[T any](root *ntree.Node[T], p Provider[T], focused *ntree.Node[T]) []line[T] {
	var lines []line[T]
	var ancestorIsLast []bool

	var it ntree.PreorderIterator[T]
	for n := it.Begin(root); n != it.End(); n = it.Next() {
		depth := n.Level() - root.Level()

		// ancestorIsLast holds one entry per depth 1..depth-1: whether the
		// ancestor at that depth was the last child of its own parent.
		// Truncating to exactly depth-1 entries before use keeps it in
		// sync with the preorder walk without any separate depth bookkeeping.
		if len(ancestorIsLast) > depth-1 {
			ancestorIsLast = ancestorIsLast[:max(depth-1, 0)]
		}

		isLast := n.Next() == nil
		var prefix string
		if depth > 0 {
			prefix = buildPrefix(ancestorIsLast, isLast)
			ancestorIsLast = append(ancestorIsLast, isLast)
		}

		lines = append(lines, line[T]{
			node: n,
			text: renderNode(p, n, prefix, n == focused),
		})
	}
	return lines
}

// render returns the full tree as a single string, one node per line.
func render[T any](root *ntree.Node[T], p Provider[T], focused *ntree.Node[T]) string {
	lines := flatten(root, p, focused)
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.text
	}
	return strings.Join(texts, "\n")
}

// renderWithViewport renders the tree into vp and returns its
// viewport-clipped content.
func renderWithViewport[T any](root *ntree.Node[T], p Provider[T], focused *ntree.Node[T], vp *viewport.Model) string {
	vp.SetContent(render(root, p, focused))
	return vp.View()
}
