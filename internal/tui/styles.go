// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the UI.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Section   lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Dim       lipgloss.Style
	Loading   lipgloss.Style
	Banner    lipgloss.Style
	Shortcut  lipgloss.Style
	Cursor    lipgloss.Style
	Dragged   lipgloss.Style
	DropOver  lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles creates a Styles instance with default values.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("99")),
		Section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")).MarginTop(1),
		Item:      lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Loading:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("214")).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1),
		Shortcut: lipgloss.NewStyle().Padding(0, 1),
		Cursor:   lipgloss.NewStyle().Padding(0, 1).Underline(true).Bold(true),
		Dragged:  lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),
		DropOver: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("51")),
		Help:     lipgloss.NewStyle().Faint(true).MarginTop(1),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// colorFor maps a shortcut color hint onto a terminal color.
func colorFor(hint string) lipgloss.Color {
	switch hint {
	case "violet":
		return lipgloss.Color("141")
	case "emerald":
		return lipgloss.Color("42")
	case "blue":
		return lipgloss.Color("33")
	case "red":
		return lipgloss.Color("196")
	case "pink":
		return lipgloss.Color("205")
	case "orange":
		return lipgloss.Color("208")
	case "cyan":
		return lipgloss.Color("51")
	case "sky":
		return lipgloss.Color("117")
	default:
		return lipgloss.Color("250")
	}
}
