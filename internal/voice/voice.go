// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package voice turns a one-shot speech-to-text session into a search.
package voice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"pkt.systems/pslog"

	"github.com/pdiddy/omnisearch/pkg/types"
)

var (
	// ErrAlreadyListening is returned when a session is already open.
	ErrAlreadyListening = errors.New("already listening")

	// ErrUnavailable is returned when no speech recognizer is available.
	ErrUnavailable = errors.New("voice input unavailable")
)

// UnavailableNotice is shown to the user when voice input cannot start.
const UnavailableNotice = "Voice search is not supported here. Set voice.command to a speech-to-text program."

// State is the bridge state.
type State string

const (
	StateIdle      State = "idle"
	StateListening State = "listening"
)

// Recognizer captures one utterance and returns its transcript.
type Recognizer interface {
	Available() bool
	Listen(ctx context.Context) (string, error)
}

// Notifier shows a blocking notice to the user.
type Notifier interface {
	Notice(msg string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(msg string)

// Notice calls f(msg).
func (f NotifierFunc) Notice(msg string) { f(msg) }

// WriterNotifier prints notices on a line of their own.
type WriterNotifier struct {
	Out io.Writer
}

// Notice implements Notifier.
func (w WriterNotifier) Notice(msg string) {
	fmt.Fprintln(w.Out, msg)
}

// Searcher is the part of the query controller the bridge drives.
type Searcher interface {
	SetQuery(text string)
	Search(ctx context.Context, term string) error
	Snapshot() types.SearchState
}

// Bridge runs at most one listening session at a time.
type Bridge struct {
	rec      Recognizer
	searcher Searcher
	notifier Notifier

	// OnState, when set, is called on every state change.
	OnState func(State)

	mu    sync.Mutex
	state State
}

// NewBridge returns an idle Bridge. rec may be nil, which makes every
// Listen report ErrUnavailable.
func NewBridge(rec Recognizer, searcher Searcher, notifier Notifier) *Bridge {
	return &Bridge{rec: rec, searcher: searcher, notifier: notifier, state: StateIdle}
}

// State returns the current state.
func (b *Bridge) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Bridge) setState(s State) {
	b.mu.Lock()
	b.state = s
	fn := b.OnState
	b.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}

// Listen opens a session and, on a non-empty transcript, writes it into
// the input and searches it. The transcript is returned; an empty one
// means the session ended without a result.
func (b *Bridge) Listen(ctx context.Context) (string, error) {
	b.mu.Lock()
	if b.state == StateListening {
		b.mu.Unlock()
		return "", ErrAlreadyListening
	}
	if b.rec == nil || !b.rec.Available() {
		b.mu.Unlock()
		if b.notifier != nil {
			b.notifier.Notice(UnavailableNotice)
		}
		return "", ErrUnavailable
	}
	b.state = StateListening
	onState := b.OnState
	b.mu.Unlock()
	if onState != nil {
		onState(StateListening)
	}
	defer b.setState(StateIdle)

	log := pslog.Ctx(ctx)
	log.Debug("voice session started")
	transcript, err := b.rec.Listen(ctx)
	if err != nil {
		log.Warn("voice session failed", "err", err)
		return "", fmt.Errorf("listening: %w", err)
	}
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		log.Debug("voice session ended without result")
		return "", nil
	}

	log.Info("voice transcript", "term", transcript)
	b.searcher.SetQuery(transcript)
	if err := b.searcher.Search(ctx, transcript); err != nil {
		return transcript, err
	}
	return transcript, nil
}

// AutoListen waits delay and then listens, provided nothing has been
// searched yet and no session is open. It returns the transcript like
// Listen, or "" when the session was skipped. It returns early when ctx
// ends.
func (b *Bridge) AutoListen(ctx context.Context, delay time.Duration) (string, error) {
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
	}

	if b.searcher.Snapshot().LastSearchedTerm != "" {
		pslog.Ctx(ctx).Debug("auto-listen skipped: a term was already searched")
		return "", nil
	}
	if b.State() == StateListening {
		return "", nil
	}
	transcript, err := b.Listen(ctx)
	if errors.Is(err, ErrAlreadyListening) {
		return "", nil
	}
	return transcript, err
}
