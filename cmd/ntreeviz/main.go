package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cagrimmett/ntree"
)

var (
	width  = flag.Int("width", 80, "initial viewport width")
	height = flag.Int("height", 24, "initial viewport height")
)

// demoTree builds a small process-tree-shaped sample so the viewer has
// something to show without any external input source. Real callers
// build their own ntree.Node[T] graph and pass its root to NewModel
// instead.
func demoTree() *ntree.Node[string] {
	root := ntree.NewNode("init", nil, ntree.TagUnused)

	sshd := ntree.NewNode("sshd", nil, ntree.TagUnused)
	cron := ntree.NewNode("cron", nil, ntree.TagUnused)
	ntree.PushChildBack(root, sshd)
	ntree.PushChildBack(root, cron)

	bash := ntree.NewNode("bash", nil, ntree.TagUnused)
	ntree.PushChildBack(sshd, bash)

	vim := ntree.NewNode("vim", nil, ntree.TagUnused)
	goBuild := ntree.NewNode("go build", nil, ntree.TagUnused)
	ntree.PushChildBack(bash, vim)
	ntree.PushChildBack(bash, goBuild)

	return root
}

func main() {
	flag.Parse()

	provider := NewDefaultProvider[string](
		WithIconRule(func(n *ntree.Node[string]) bool { return n.IsLeaf() }, "▫"),
		WithIconRule(func(n *ntree.Node[string]) bool { return !n.IsLeaf() }, "▸"),
		WithStyleRule(
			func(n *ntree.Node[string]) bool { return n.IsRoot() },
			lipgloss.NewStyle().Bold(true),
			lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("39")),
		),
	)

	root := demoTree()
	defer ntree.Destroy(root)

	model := NewModel[string](root, provider, WithSize[string](*width, *height))

	if _, err := tea.NewProgram(model).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "ntreeviz:", err)
		os.Exit(1)
	}
}
