package ui

import "github.com/charmbracelet/lipgloss"

// A small slice of Catppuccin Mocha, enough for a line-oriented shell.
var palette = struct {
	Green, Red, Overlay lipgloss.Color
}{
	Green:   "#a6e3a1",
	Red:     "#f38ba8",
	Overlay: "#7f849c",
}

// Semantic styles for the shell. Lipgloss degrades these to plain text when
// stdout is not a color terminal, so callers can use them unconditionally.
var (
	PromptStyle = lipgloss.NewStyle().Foreground(palette.Green).Bold(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(palette.Red)
	FaintStyle  = lipgloss.NewStyle().Foreground(palette.Overlay)
)
