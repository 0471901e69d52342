// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive terminal front end: category tabs, the
// query input, results or deep links, and the reorderable quick access row.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/internal/controller"
	"github.com/pdiddy/omnisearch/internal/deeplink"
	"github.com/pdiddy/omnisearch/internal/gesture"
	"github.com/pdiddy/omnisearch/internal/launch"
	"github.com/pdiddy/omnisearch/internal/shortcuts"
	"github.com/pdiddy/omnisearch/internal/voice"
	"github.com/pdiddy/omnisearch/pkg/types"
)

// Deps are the collaborators the UI drives.
type Deps struct {
	Controller *controller.Controller
	Shortcuts  *shortcuts.Manager
	Opener     launch.Opener
	Copier     launch.Copier
	Recognizer voice.Recognizer
	Drag       types.DragConfig

	AutoListen      bool
	AutoListenDelay time.Duration
}

type focus int

const (
	focusInput focus = iota
	focusTabs
	focusResults
	focusGrid
	focusCount
)

type (
	stateMsg      types.SearchState
	searchDoneMsg struct{ err error }
	voiceDoneMsg  struct {
		transcript string
		err        error
	}
	openedMsg struct {
		name string
		err  error
	}
)

// Model is the bubbletea model.
type Model struct {
	ctx      context.Context
	deps     Deps
	styles   *Styles
	input    textinput.Model
	launcher *launch.Launcher
	gesture  *gesture.Recognizer
	bridge   *voice.Bridge
	notices  chan string

	state     types.SearchState
	focus     focus
	row       int
	gridIndex int
	banner    string
	status    string
	width     int

	// grid is where the last View drew the quick access row; pressed is
	// the shortcut under a held mouse button.
	grid    gridLayout
	pressed string
}

// NewModel builds the UI over deps.
func NewModel(ctx context.Context, deps Deps) *Model {
	ti := textinput.New()
	ti.Placeholder = "What are you looking for?"
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Focus()

	m := &Model{
		ctx:     ctx,
		deps:    deps,
		styles:  NewStyles(),
		input:   ti,
		notices: make(chan string, 4),
		state:   deps.Controller.Snapshot(),
	}
	m.gesture = gesture.New(deps.Drag, m.drop)
	m.launcher = &launch.Launcher{Opener: deps.Opener, Copier: deps.Copier, Gate: m.gesture}
	m.bridge = voice.NewBridge(deps.Recognizer, deps.Controller, voice.NotifierFunc(func(msg string) {
		select {
		case m.notices <- msg:
		default:
		}
	}))
	return m
}

// drop applies a completed drag to the shortcut order.
func (m *Model) drop(dragged, target string) {
	if err := m.deps.Shortcuts.Move(m.ctx, dragged, target); err != nil {
		m.status = "Could not save order: " + err.Error()
		pslog.Ctx(m.ctx).Warn("quick access move failed", "err", err)
	}
	for i, d := range m.deps.Shortcuts.List() {
		if d.ID == dragged {
			m.gridIndex = i
		}
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.deps.AutoListen {
		cmds = append(cmds, m.autoListenCmd())
	}
	return tea.Batch(cmds...)
}

func (m *Model) searchCmd() tea.Cmd {
	ctrl, ctx := m.deps.Controller, m.ctx
	return func() tea.Msg {
		return searchDoneMsg{err: ctrl.Submit(ctx)}
	}
}

func (m *Model) categoryCmd(cat types.Category) tea.Cmd {
	ctrl, ctx := m.deps.Controller, m.ctx
	return func() tea.Msg {
		return searchDoneMsg{err: ctrl.SetCategory(ctx, cat)}
	}
}

func (m *Model) listenCmd() tea.Cmd {
	bridge, ctx := m.bridge, m.ctx
	return func() tea.Msg {
		t, err := bridge.Listen(ctx)
		return voiceDoneMsg{transcript: t, err: err}
	}
}

func (m *Model) autoListenCmd() tea.Cmd {
	bridge, ctx, delay := m.bridge, m.ctx, m.deps.AutoListenDelay
	return func() tea.Msg {
		t, err := bridge.AutoListen(ctx, delay)
		return voiceDoneMsg{transcript: t, err: err}
	}
}

func (m *Model) activateCmd(def types.ShortcutDefinition) tea.Cmd {
	l, ctx, term := m.launcher, m.ctx, m.state.LastSearchedTerm
	return func() tea.Msg {
		link, err := l.ActivateShortcut(ctx, def, term)
		if errors.Is(err, launch.ErrSuppressed) {
			return nil
		}
		return openedMsg{name: link.Name, err: err}
	}
}

func (m *Model) openCmd(link deeplink.Link) tea.Cmd {
	l, ctx := m.launcher, m.ctx
	return func() tea.Msg {
		return openedMsg{name: link.Name, err: l.Activate(ctx, link)}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(20, msg.Width-8)
		return m, nil

	case stateMsg:
		m.state = types.SearchState(msg)
		m.clampRow()
		return m, nil

	case searchDoneMsg:
		m.state = m.deps.Controller.Snapshot()
		m.clampRow()
		if msg.err != nil && !errors.Is(msg.err, controller.ErrEmptyTerm) {
			m.status = msg.err.Error()
		}
		return m, nil

	case voiceDoneMsg:
		m.drainNotices()
		m.state = m.deps.Controller.Snapshot()
		if msg.transcript != "" {
			m.input.SetValue(msg.transcript)
			m.input.CursorEnd()
		}
		if msg.err != nil && !errors.Is(msg.err, voice.ErrUnavailable) && !errors.Is(msg.err, context.Canceled) {
			m.status = msg.err.Error()
		}
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = "Opened " + msg.name
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) drainNotices() {
	for {
		select {
		case n := <-m.notices:
			m.banner = n
		default:
			return
		}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}
	if m.banner != "" {
		// The notice blocks until dismissed.
		if key == "enter" || key == "esc" || key == " " || key == "space" {
			m.banner = ""
		}
		return m, nil
	}
	if key == "ctrl+l" {
		return m, m.listenCmd()
	}
	if !m.gesture.Dragging() {
		switch key {
		case "tab":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		}
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKey(msg)
	case focusTabs:
		return m.handleTabsKey(key)
	case focusResults:
		return m.handleResultsKey(key)
	case focusGrid:
		return m.handleGridKey(key)
	}
	return m, nil
}

func (m *Model) setFocus(f focus) {
	if f == focusGrid && !m.gridVisible() {
		f = (f + 1) % focusCount
	}
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		m.status = ""
		return m, m.searchCmd()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.deps.Controller.SetQuery(m.input.Value())
	return m, cmd
}

func (m *Model) handleTabsKey(key string) (tea.Model, tea.Cmd) {
	cats := types.Categories()
	cur := 0
	for i, c := range cats {
		if c == m.state.ActiveCategory {
			cur = i
		}
	}
	next := cur
	switch key {
	case "left", "h":
		next = (cur + len(cats) - 1) % len(cats)
	case "right", "l":
		next = (cur + 1) % len(cats)
	case "1", "2", "3", "4", "5", "6":
		next = int(key[0] - '1')
	case "q", "esc":
		return m, tea.Quit
	default:
		return m, nil
	}
	if next == cur {
		return m, nil
	}
	m.row = 0
	m.state.ActiveCategory = cats[next]
	return m, m.categoryCmd(cats[next])
}

// rows returns the openable entries of the results panel.
func (m *Model) rows() []deeplink.Link {
	if !m.state.ActiveCategory.Fetches() {
		if m.state.LastSearchedTerm == "" {
			return nil
		}
		return deeplink.ForCategory(m.state.ActiveCategory, m.state.LastSearchedTerm)
	}
	var out []deeplink.Link
	for _, it := range m.state.Results {
		switch {
		case it.Track != nil:
			out = append(out, deeplink.Link{TargetID: "track", Name: it.Track.Title, URL: it.Track.Link})
		case it.Repository != nil:
			out = append(out, deeplink.Link{TargetID: "repository", Name: it.Repository.Name, URL: it.Repository.URL})
		}
	}
	return out
}

func (m *Model) clampRow() {
	n := len(m.rows())
	if m.row >= n {
		m.row = max(0, n-1)
	}
}

func (m *Model) handleResultsKey(key string) (tea.Model, tea.Cmd) {
	rows := m.rows()
	switch key {
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		if m.row < len(rows)-1 {
			m.row++
		}
	case "enter":
		if m.row < len(rows) {
			return m, m.openCmd(rows[m.row])
		}
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// gridVisible mirrors when quick access is shown: after a search has
// completed.
func (m *Model) gridVisible() bool {
	return m.state.LastSearchedTerm != "" && !m.state.IsLoading
}

func gestureKey(key string) (gesture.Key, bool) {
	switch key {
	case " ", "space":
		return gesture.KeySpace, true
	case "enter":
		return gesture.KeyEnter, true
	case "left", "h":
		return gesture.KeyLeft, true
	case "right", "l":
		return gesture.KeyRight, true
	case "up", "k":
		return gesture.KeyUp, true
	case "down", "j":
		return gesture.KeyDown, true
	case "esc":
		return gesture.KeyEscape, true
	}
	return 0, false
}

func (m *Model) handleGridKey(key string) (tea.Model, tea.Cmd) {
	list := m.deps.Shortcuts.List()
	if len(list) == 0 {
		return m, nil
	}
	order := make([]string, len(list))
	for i, d := range list {
		order[i] = d.ID
	}
	focused := order[min(m.gridIndex, len(order)-1)]

	if m.gesture.Dragging() {
		if k, ok := gestureKey(key); ok {
			m.gesture.Key(k, focused, order)
		}
		return m, nil
	}

	switch key {
	case "left", "h":
		if m.gridIndex > 0 {
			m.gridIndex--
		}
	case "right", "l":
		if m.gridIndex < len(list)-1 {
			m.gridIndex++
		}
	case " ", "space":
		m.gesture.Key(gesture.KeySpace, focused, order)
	case "enter":
		return m, m.activateCmd(list[m.gridIndex])
	case "r":
		if err := m.deps.Shortcuts.Reset(m.ctx); err != nil {
			m.status = err.Error()
		}
		m.gridIndex = 0
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// Run starts the UI and blocks until it exits.
func Run(ctx context.Context, deps Deps) error {
	return run(ctx, deps, nil, tea.WithAltScreen(), tea.WithMouseCellMotion())
}

// run is Run with extra program options. started, when set, is called
// with the program before it starts.
func run(ctx context.Context, deps Deps, started func(*tea.Program), opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(ctx, deps)
	p := tea.NewProgram(m, append(opts, tea.WithContext(ctx))...)

	relay := newStateRelay()
	deps.Controller.SetOnChange(relay.push)
	defer deps.Controller.SetOnChange(nil)
	go relay.forward(ctx, p.Send)

	if started != nil {
		started(p)
	}
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
