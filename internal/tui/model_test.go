// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/omnisearch/internal/controller"
	"github.com/pdiddy/omnisearch/internal/search"
	"github.com/pdiddy/omnisearch/internal/shortcuts"
	"github.com/pdiddy/omnisearch/internal/store"
	"github.com/pdiddy/omnisearch/internal/voice"
	"github.com/pdiddy/omnisearch/pkg/types"
)

type stubAdapter struct{}

func (stubAdapter) Name() string { return "code" }

func (stubAdapter) Search(_ context.Context, term string) []types.ResultItem {
	return []types.ResultItem{types.RepositoryItem(types.CodeRepository{Name: term + "-lib", Stars: 42, URL: "https://github.com/x/" + term})}
}

type recordingOpener struct{ urls []string }

func (r *recordingOpener) Open(_ context.Context, url string) error {
	r.urls = append(r.urls, url)
	return nil
}

type fixedRecognizer struct{ transcript string }

func (fixedRecognizer) Available() bool                            { return true }
func (f fixedRecognizer) Listen(context.Context) (string, error) { return f.transcript, nil }

func newModel(t *testing.T, rec voice.Recognizer) (*Model, *recordingOpener, store.KV) {
	t.Helper()
	kv := store.NewMemory()
	opener := &recordingOpener{}
	deps := Deps{
		Controller: controller.New(map[types.Category]search.Adapter{types.CategoryCode: stubAdapter{}}),
		Shortcuts:  shortcuts.Load(context.Background(), kv),
		Opener:     opener,
		Recognizer: rec,
	}
	return NewModel(context.Background(), deps), opener, kv
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText feeds text to the input without running the cursor blink
// command it returns.
func typeText(m *Model, s string) {
	m.Update(keys(s))
}

// send feeds msg to m and runs any resulting command once, feeding its
// message back in.
func send(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	if cmd == nil {
		return
	}
	if out := cmd(); out != nil {
		if _, isBatch := out.(tea.BatchMsg); !isBatch {
			m.Update(out)
		}
	}
}

func TestTypeAndSearch(t *testing.T) {
	m, _, _ := newModel(t, nil)

	typeText(m, "best pizza")
	assert.Equal(t, "best pizza", m.deps.Controller.Snapshot().Query)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "best pizza", m.state.LastSearchedTerm)
	assert.True(t, m.state.HasPlaceholder())

	view := m.View()
	assert.Contains(t, view, "Google Exact Match")
	assert.Contains(t, view, "Quick Access")
}

func TestEmptySubmitDoesNothing(t *testing.T) {
	m, _, _ := newModel(t, nil)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.state.LastSearchedTerm)
	assert.Empty(t, m.status)
	assert.Contains(t, m.View(), "Type a query")
	assert.NotContains(t, m.View(), "Quick Access")
}

func TestSwitchCategoryRefetches(t *testing.T) {
	m, opener, _ := newModel(t, nil)
	typeText(m, "gin")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	send(m, tea.KeyMsg{Type: tea.KeyTab}) // tabs
	send(m, keys("6"))
	assert.Equal(t, types.CategoryCode, m.state.ActiveCategory)
	require.Len(t, m.state.Results, 1)
	assert.Contains(t, m.View(), "gin-lib")

	send(m, tea.KeyMsg{Type: tea.KeyTab}) // results
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"https://github.com/x/gin"}, opener.urls)
}

func TestGridKeyboardReorder(t *testing.T) {
	m, _, kv := newModel(t, nil)
	typeText(m, "go")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	send(m, tea.KeyMsg{Type: tea.KeyShiftTab}) // grid (wraps from input)
	require.Equal(t, focusGrid, m.focus)

	send(m, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, m.gesture.Dragging())
	assert.Contains(t, m.View(), "esc cancel")

	send(m, tea.KeyMsg{Type: tea.KeyRight})
	send(m, tea.KeyMsg{Type: tea.KeyRight})
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.gesture.Dragging())

	list := m.deps.Shortcuts.List()
	assert.Equal(t, "chatgpt", list[0].ID)
	assert.Equal(t, "gemini", list[1].ID)
	assert.Equal(t, "google", list[2].ID)
	assert.Equal(t, 2, m.gridIndex, "cursor follows the dropped shortcut")

	reloaded := shortcuts.Load(context.Background(), kv)
	assert.Equal(t, "google", reloaded.List()[2].ID)
}

func TestGridActivateShortcut(t *testing.T) {
	m, opener, _ := newModel(t, nil)
	typeText(m, "go")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	send(m, tea.KeyMsg{Type: tea.KeyShiftTab})

	send(m, tea.KeyMsg{Type: tea.KeyRight}) // chatgpt
	send(m, tea.KeyMsg{Type: tea.KeyRight}) // gemini
	send(m, tea.KeyMsg{Type: tea.KeyRight}) // youtube
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"https://www.youtube.com/results?search_query=go"}, opener.urls)
	assert.Equal(t, "Opened YouTube", m.status)
}

func TestVoiceUnavailableShowsBanner(t *testing.T) {
	m, _, _ := newModel(t, nil)
	send(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, voice.UnavailableNotice, m.banner)
	assert.Contains(t, m.View(), "dismiss")

	typeText(m, "x")
	assert.Empty(t, m.input.Value(), "input blocked while the notice is shown")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.banner)
}

func TestVoiceTranscriptSearches(t *testing.T) {
	m, _, _ := newModel(t, fixedRecognizer{transcript: "weather oslo"})
	typeText(m, "typed")
	send(m, tea.KeyMsg{Type: tea.KeyCtrlL})

	assert.Equal(t, "weather oslo", m.input.Value())
	assert.Equal(t, "weather oslo", m.state.LastSearchedTerm)
}

func TestHelpLineFollowsFocus(t *testing.T) {
	m, _, _ := newModel(t, nil)
	assert.True(t, strings.Contains(m.helpLine(), "ctrl+l voice"))
	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.helpLine(), "category")
}

func TestAutoListenFillsInput(t *testing.T) {
	m, _, _ := newModel(t, fixedRecognizer{transcript: "weather oslo"})
	m.Update(m.autoListenCmd()())

	assert.Equal(t, "weather oslo", m.input.Value())
	assert.Equal(t, "weather oslo", m.state.LastSearchedTerm)

	typeText(m, "!")
	assert.Equal(t, "weather oslo!", m.deps.Controller.Snapshot().Query)
}

// cellOf returns the screen position of shortcut id in the last view.
func cellOf(t *testing.T, m *Model, id string) (x, y int) {
	t.Helper()
	for _, c := range m.grid.cells {
		if c.id == id {
			return c.x0 + 1, m.grid.row
		}
	}
	t.Fatalf("shortcut %s not drawn", id)
	return 0, 0
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestGridMouseDrag(t *testing.T) {
	m, opener, kv := newModel(t, nil)
	typeText(m, "go")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.View()

	gx, gy := cellOf(t, m, "google")
	tx, ty := cellOf(t, m, "gemini")
	assert.Equal(t, "", m.grid.at(gx, gy+1), "only the shortcut row is a target")

	send(m, mouse(tea.MouseActionPress, gx, gy))
	send(m, mouse(tea.MouseActionMotion, tx, ty))
	require.True(t, m.gesture.Dragging())
	send(m, mouse(tea.MouseActionRelease, tx, ty))

	list := m.deps.Shortcuts.List()
	assert.Equal(t, "chatgpt", list[0].ID)
	assert.Equal(t, "gemini", list[1].ID)
	assert.Equal(t, "google", list[2].ID)
	assert.Empty(t, opener.urls, "a drop does not open anything")
	assert.Equal(t, "google", shortcuts.Load(context.Background(), kv).List()[2].ID)

	// The next plain click opens normally.
	m.View()
	yx, yy := cellOf(t, m, "youtube")
	send(m, mouse(tea.MouseActionPress, yx, yy))
	send(m, mouse(tea.MouseActionRelease, yx, yy))
	assert.Equal(t, []string{"https://www.youtube.com/results?search_query=go"}, opener.urls)
}

func TestGridMouseSmallMoveIsClick(t *testing.T) {
	m, opener, _ := newModel(t, nil)
	typeText(m, "go")
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m.View()

	x, y := cellOf(t, m, "youtube")
	send(m, mouse(tea.MouseActionPress, x, y))
	send(m, mouse(tea.MouseActionMotion, x, y))
	assert.False(t, m.gesture.Dragging(), "no movement stays below the pointer distance")
	send(m, mouse(tea.MouseActionRelease, x, y))
	assert.Equal(t, []string{"https://www.youtube.com/results?search_query=go"}, opener.urls)
}

func TestRunTypingDoesNotBlock(t *testing.T) {
	kv := store.NewMemory()
	ctrl := controller.New(map[types.Category]search.Adapter{types.CategoryCode: stubAdapter{}})
	deps := Deps{
		Controller: ctrl,
		Shortcuts:  shortcuts.Load(context.Background(), kv),
		Opener:     &recordingOpener{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := run(ctx, deps, func(p *tea.Program) {
		go func() {
			p.Send(keys("a"))
			p.Send(keys("b"))
			p.Quit()
		}()
	}, tea.WithInput(strings.NewReader("")), tea.WithoutRenderer())

	require.NoError(t, err)
	require.NoError(t, ctx.Err(), "program stopped only at the deadline")
	assert.Equal(t, "ab", ctrl.Snapshot().Query)
}
