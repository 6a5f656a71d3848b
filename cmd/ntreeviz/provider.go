// Command ntreeviz is a terminal viewer for ntree trees: a small
// Bubble Tea program that renders a tree with box-drawing connectors
// and lets you move a cursor up and down through its visible nodes. It
// exists to exercise the library against a real terminal UI, not as
// part of the container itself — the core ntree package never imports
// a rendering or I/O dependency.
package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/cagrimmett/ntree"
)

// Provider supplies the icon, label, and style used to render a single
// node. The generic parameter T is the caller's payload type, the same
// one stored in ntree.Node[T].
type Provider[T any] interface {
	Icon(n *ntree.Node[T]) string
	Format(n *ntree.Node[T]) string
	Style(n *ntree.Node[T], isFocused bool) lipgloss.Style
}

type iconRule[T any] struct {
	predicate func(*ntree.Node[T]) bool
	icon      string
}

type styleRule[T any] struct {
	predicate    func(*ntree.Node[T]) bool
	style        lipgloss.Style
	focusedStyle lipgloss.Style
}

// DefaultProvider is a batteries-included Provider: a flat icon, a
// %v-formatted label, and a single style pair, all overridable via
// ProviderOption. Per-tag rules let callers give different node kinds
// (see ntree.Tag) their own icon or style without writing a custom
// Provider from scratch.
type DefaultProvider[T any] struct {
	defaultStyle lipgloss.Style
	focusedStyle lipgloss.Style
	icon         string
	formatters   []func(*ntree.Node[T]) (string, bool)
	iconRules    []iconRule[T]
	styleRules   []styleRule[T]
}

// ProviderOption configures a DefaultProvider.
type ProviderOption[T any] func(*DefaultProvider[T])

// NewDefaultProvider returns a provider with a neutral default
// palette, readable on both dark and light terminal backgrounds.
func NewDefaultProvider[T any](opts ...ProviderOption[T]) *DefaultProvider[T] {
	p := &DefaultProvider[T]{
		icon: "•",
		defaultStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		focusedStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("39")).
			Bold(true),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithIconRule adds a rule that picks icon for nodes matching
// predicate. Rules are evaluated in the order added; the first match
// wins.
func WithIconRule[T any](predicate func(*ntree.Node[T]) bool, icon string) ProviderOption[T] {
	return func(p *DefaultProvider[T]) {
		p.iconRules = append(p.iconRules, iconRule[T]{predicate: predicate, icon: icon})
	}
}

// WithTagIcon is a convenience wrapper over WithIconRule that matches
// nodes by their ntree.Tag.
func WithTagIcon[T any](tag ntree.Tag, icon string) ProviderOption[T] {
	return WithIconRule[T](func(n *ntree.Node[T]) bool { return n.Tag() == tag }, icon)
}

// WithStyleRule adds a rule that picks style/focusedStyle for nodes
// matching predicate.
func WithStyleRule[T any](predicate func(*ntree.Node[T]) bool, style, focused lipgloss.Style) ProviderOption[T] {
	return func(p *DefaultProvider[T]) {
		p.styleRules = append(p.styleRules, styleRule[T]{predicate: predicate, style: style, focusedStyle: focused})
	}
}

// WithFormatter adds a custom label formatter. The first formatter
// that returns true wins; if none do, Format falls back to fmt's %v
// on the node's data.
func WithFormatter[T any](formatter func(*ntree.Node[T]) (string, bool)) ProviderOption[T] {
	return func(p *DefaultProvider[T]) {
		p.formatters = append(p.formatters, formatter)
	}
}

// Icon returns the first matching icon rule's glyph, or the provider's
// default icon if none match.
func (p *DefaultProvider[T]) Icon(n *ntree.Node[T]) string {
	for _, rule := range p.iconRules {
		if rule.predicate(n) {
			return rule.icon
		}
	}
	return p.icon
}

// Format returns the first matching formatter's label, or the node's
// data printed with %v.
func (p *DefaultProvider[T]) Format(n *ntree.Node[T]) string {
	for _, f := range p.formatters {
		if label, ok := f(n); ok {
			return label
		}
	}
	return defaultLabel(n)
}

// Style returns the first matching style rule, preferring the focused
// variant when isFocused is set, or the provider's default pair.
func (p *DefaultProvider[T]) Style(n *ntree.Node[T], isFocused bool) lipgloss.Style {
	for _, rule := range p.styleRules {
		if rule.predicate(n) {
			if isFocused {
				return rule.focusedStyle
			}
			return rule.style
		}
	}
	if isFocused {
		return p.focusedStyle
	}
	return p.defaultStyle
}

// normalizeIconWidth pads icon to two terminal cells so every rendered
// line lines up whether the glyph itself is one or two cells wide. An
// icon already two or more cells wide is returned unchanged.
func normalizeIconWidth(icon string) string {
	const want = 2
	w := runewidth.StringWidth(icon)
	if w >= want {
		return icon
	}
	return icon + strings.Repeat(" ", want-w)
}
