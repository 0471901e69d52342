// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/omnisearch/internal/voice"
	"github.com/pdiddy/omnisearch/pkg/types"
)

// View implements tea.Model.
func (m *Model) View() string {
	b := &strings.Builder{}
	s := m.styles
	m.grid = gridLayout{}

	b.WriteString(s.Title.Render("omnisearch"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.banner != "" {
		b.WriteString(s.Banner.Render(m.banner + "\n\n[enter] dismiss"))
		b.WriteString("\n")
		return b.String()
	}

	if m.gridVisible() {
		grid, layout := m.renderGrid(strings.Count(b.String(), "\n"))
		m.grid = layout
		b.WriteString(grid)
		b.WriteString("\n")
	}
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.renderResults())

	if m.bridge.State() == voice.StateListening {
		b.WriteString("\n" + s.Loading.Render("Listening..."))
	}
	if m.status != "" {
		b.WriteString("\n" + s.Dim.Render(m.status))
	}
	b.WriteString(s.Help.Render(m.helpLine()))
	return b.String()
}

func (m *Model) renderTabs() string {
	s := m.styles
	var parts []string
	for i, c := range types.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c.Label())
		if c == m.state.ActiveCategory {
			parts = append(parts, s.ActiveTab.Render(label))
		} else {
			parts = append(parts, s.Tab.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if m.focus == focusTabs {
		row = "» " + row
	} else {
		row = "  " + row
	}
	return row
}

func (m *Model) renderResults() string {
	s := m.styles
	b := &strings.Builder{}

	if m.state.IsLoading {
		b.WriteString(s.Loading.Render("Searching..."))
		b.WriteString("\n")
		return b.String()
	}
	if m.state.LastSearchedTerm == "" {
		b.WriteString(s.Dim.Render("Type a query and press enter."))
		b.WriteString("\n")
		return b.String()
	}

	cat := m.state.ActiveCategory
	if cat.Fetches() && len(m.state.Results) == 0 {
		empty := "No music found."
		if cat == types.CategoryCode {
			empty = "No repositories found."
		}
		b.WriteString(s.Dim.Render(empty))
		b.WriteString("\n")
		return b.String()
	}

	for i, row := range m.rows() {
		line := m.resultLine(i)
		if line == "" {
			line = fmt.Sprintf("%-20s  %s", row.Name, s.Dim.Render(row.Description))
		}
		if m.focus == focusResults && i == m.row {
			b.WriteString(s.Selected.Render("› " + line))
		} else {
			b.WriteString(s.Item.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// resultLine renders fetched result i, or "" for deep-link rows.
func (m *Model) resultLine(i int) string {
	if !m.state.ActiveCategory.Fetches() || i >= len(m.state.Results) {
		return ""
	}
	it := m.state.Results[i]
	switch {
	case it.Track != nil:
		return fmt.Sprintf("%s · %s %s", it.Track.Title, it.Track.Artist, m.styles.Dim.Render(it.Track.Album))
	case it.Repository != nil:
		r := it.Repository
		desc := r.Description
		if desc == "" {
			desc = "No description available."
		}
		lang := ""
		if r.Language != "" {
			lang = " [" + r.Language + "]"
		}
		return fmt.Sprintf("%s ★%d ⑂%d%s %s", r.Name, r.Stars, r.Forks, lang, m.styles.Dim.Render(desc))
	}
	return ""
}

// renderGrid draws the quick access row starting at line top and returns
// where each shortcut landed.
func (m *Model) renderGrid(top int) (string, gridLayout) {
	s := m.styles
	dragged, over, dragging := m.gesture.Active()

	var (
		parts  []string
		layout gridLayout
		x      int
	)
	for i, d := range m.deps.Shortcuts.List() {
		st := s.Shortcut.Foreground(colorFor(d.ColorHint))
		switch {
		case dragging && d.ID == dragged:
			st = s.Dragged
		case dragging && d.ID == over:
			st = s.DropOver
		case m.focus == focusGrid && i == m.gridIndex:
			st = s.Cursor.Foreground(colorFor(d.ColorHint))
		}
		cell := st.Render(d.Label)
		w := lipgloss.Width(cell)
		layout.cells = append(layout.cells, gridCell{id: d.ID, x0: x, x1: x + w})
		x += w
		parts = append(parts, cell)
	}
	title := s.Section.Render("Quick Access")
	layout.row = top + lipgloss.Height(title)
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, parts...), layout
}

func (m *Model) helpLine() string {
	switch m.focus {
	case focusTabs:
		return "←/→ category · tab next · q quit"
	case focusResults:
		return "↑/↓ select · enter open · tab next · q quit"
	case focusGrid:
		if m.gesture.Dragging() {
			return "←/→ move · space/enter drop · esc cancel"
		}
		return "←/→ select · enter open · space pick up · r reset · tab next"
	}
	return "enter search · ctrl+l voice · tab next · esc quit"
}
