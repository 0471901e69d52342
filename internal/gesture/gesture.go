// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gesture recognizes drag-to-reorder gestures over the quick access
// grid from pointer, touch and keyboard input, and decides when a
// press-release must not count as activating a shortcut.
package gesture

import (
	"math"
	"sync"
	"time"

	"github.com/pdiddy/omnisearch/pkg/types"
)

// Default activation thresholds.
const (
	DefaultPointerDistance = 8
	DefaultTouchDelay      = 250 * time.Millisecond
	DefaultTouchTolerance  = 5
)

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

func (p Point) dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Sensor identifies the input device that started a drag.
type Sensor int

const (
	SensorNone Sensor = iota
	SensorPointer
	SensorTouch
	SensorKeyboard
)

// Key is a keyboard input relevant to the keyboard sensor.
type Key int

const (
	KeySpace Key = iota
	KeyEnter
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
)

// DropFunc receives a completed drag. dragged and target may be equal.
type DropFunc func(dragged, target string)

type phase int

const (
	idle phase = iota
	pending
	dragging
)

// Recognizer tracks at most one drag at a time. It is safe for concurrent
// use; DropFunc is called without the lock held.
type Recognizer struct {
	cfg    types.DragConfig
	onDrop DropFunc

	// Now is the clock used for the touch delay.
	Now func() time.Time

	mu        sync.Mutex
	phase     phase
	sensor    Sensor
	active    string
	over      string
	origin    Point
	pressedAt time.Time
	suppress  bool
}

// New returns a Recognizer. Zero thresholds in cfg take the defaults.
func New(cfg types.DragConfig, onDrop DropFunc) *Recognizer {
	if cfg.PointerDistance == 0 {
		cfg.PointerDistance = DefaultPointerDistance
	}
	if cfg.TouchDelay == 0 {
		cfg.TouchDelay = DefaultTouchDelay
	}
	if cfg.TouchTolerance == 0 {
		cfg.TouchTolerance = DefaultTouchTolerance
	}
	return &Recognizer{cfg: cfg, onDrop: onDrop, Now: time.Now}
}

// Dragging reports whether a drag is active.
func (r *Recognizer) Dragging() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase == dragging
}

// Active returns the dragged id and the current drop target of an active
// drag.
func (r *Recognizer) Active() (dragged, over string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != dragging {
		return "", "", false
	}
	return r.active, r.over, true
}

// AllowActivation reports whether a click on a shortcut should navigate.
// It is false during a drag and for the first call after a pointer or
// touch drop, which is the click the release itself produces.
func (r *Recognizer) AllowActivation() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase == dragging {
		return false
	}
	if r.suppress {
		r.suppress = false
		return false
	}
	return true
}

// Cancel abandons any pending or active drag without dropping.
func (r *Recognizer) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
}

func (r *Recognizer) resetLocked() {
	r.phase = idle
	r.sensor = SensorNone
	r.active = ""
	r.over = ""
}

func (r *Recognizer) startLocked(s Sensor, id string, p Point) {
	r.phase = pending
	r.sensor = s
	r.active = id
	r.over = id
	r.origin = p
	r.pressedAt = r.Now()
	r.suppress = false
}

// PointerDown records a press on shortcut id. The drag starts once the
// pointer has moved PointerDistance pixels.
func (r *Recognizer) PointerDown(id string, p Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != idle {
		return
	}
	r.startLocked(SensorPointer, id, p)
}

// PointerMove reports the pointer at p over shortcut over ("" for none).
func (r *Recognizer) PointerMove(p Point, over string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sensor != SensorPointer {
		return
	}
	if r.phase == pending && p.dist(r.origin) >= r.cfg.PointerDistance {
		r.phase = dragging
	}
	if r.phase == dragging {
		r.over = over
	}
}

// PointerUp ends a pointer press over shortcut over.
func (r *Recognizer) PointerUp(over string) {
	r.release(SensorPointer, over)
}

// TouchStart records a touch on shortcut id. The drag starts once the
// touch has been held for TouchDelay without moving more than
// TouchTolerance pixels.
func (r *Recognizer) TouchStart(id string, p Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.phase != idle {
		return
	}
	r.startLocked(SensorTouch, id, p)
}

// TouchMove reports the touch at p over shortcut over. Movement beyond the
// tolerance before the delay elapses is a scroll, not a drag.
func (r *Recognizer) TouchMove(p Point, over string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sensor != SensorTouch {
		return
	}
	if r.phase == pending {
		if r.Now().Sub(r.pressedAt) < r.cfg.TouchDelay {
			if p.dist(r.origin) > r.cfg.TouchTolerance {
				r.resetLocked()
			}
			return
		}
		r.phase = dragging
	}
	r.over = over
}

// TouchEnd ends a touch over shortcut over. A touch held past the delay
// counts as a drag even if it never moved.
func (r *Recognizer) TouchEnd(over string) {
	r.mu.Lock()
	if r.sensor == SensorTouch && r.phase == pending && r.Now().Sub(r.pressedAt) >= r.cfg.TouchDelay {
		r.phase = dragging
		r.over = over
	}
	r.mu.Unlock()
	r.release(SensorTouch, over)
}

func (r *Recognizer) release(s Sensor, over string) {
	r.mu.Lock()
	if r.sensor != s {
		r.mu.Unlock()
		return
	}
	if r.phase != dragging {
		// A press that never became a drag is a click.
		r.resetLocked()
		r.mu.Unlock()
		return
	}
	dragged := r.active
	r.resetLocked()
	r.suppress = true
	r.mu.Unlock()

	if over != "" && r.onDrop != nil {
		r.onDrop(dragged, over)
	}
}

// Key feeds a key press to the keyboard sensor. focused is the shortcut
// with keyboard focus and order is the current shortcut order, used by the
// arrow keys to move the drop target. It reports whether the key was
// consumed by the recognizer.
func (r *Recognizer) Key(k Key, focused string, order []string) bool {
	r.mu.Lock()

	if r.phase == idle {
		defer r.mu.Unlock()
		if (k == KeySpace || k == KeyEnter) && focused != "" {
			r.startLocked(SensorKeyboard, focused, Point{})
			r.phase = dragging
			return true
		}
		return false
	}
	if r.sensor != SensorKeyboard {
		r.mu.Unlock()
		return false
	}

	switch k {
	case KeyLeft, KeyUp, KeyRight, KeyDown:
		step := 1
		if k == KeyLeft || k == KeyUp {
			step = -1
		}
		if i := indexOf(order, r.over); i >= 0 {
			j := i + step
			if j >= 0 && j < len(order) {
				r.over = order[j]
			}
		}
		r.mu.Unlock()
		return true
	case KeyEscape:
		r.resetLocked()
		r.mu.Unlock()
		return true
	case KeySpace, KeyEnter:
		dragged, over := r.active, r.over
		r.resetLocked()
		r.mu.Unlock()
		if over != "" && r.onDrop != nil {
			r.onDrop(dragged, over)
		}
		return true
	}
	r.mu.Unlock()
	return false
}

func indexOf(order []string, id string) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}
