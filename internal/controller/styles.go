package controller

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	passSymbol = "✓"
	failSymbol = "✗"
)

type styles struct {
	title   lipgloss.Style
	pass    lipgloss.Style
	fail    lipgloss.Style
	hint    lipgloss.Style
	muted   lipgloss.Style
	err     lipgloss.Style
	command lipgloss.Style
}

// newStyles binds the palette to w so colors are dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)

	return styles{
		title:   r.NewStyle().Bold(true),
		pass:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		fail:    r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		hint:    r.NewStyle().Foreground(lipgloss.Color("3")),
		muted:   r.NewStyle().Faint(true),
		err:     r.NewStyle().Foreground(lipgloss.Color("9")),
		command: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	}
}
