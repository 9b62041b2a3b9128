package core

import "time"

// Key identifies a logical key the game reacts to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeySpace
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	default:
		return "Unknown"
	}
}

// Input is the input collaborator polled once per frame.
type Input interface {
	// IsKeyDown reports whether the key is currently held.
	IsKeyDown(k Key) bool
	// IsKeyPressed reports whether the key went down this frame.
	IsKeyPressed(k Key) bool
}

// DefaultKeyHold is how long a key counts as held after its last press
// when the platform only reports presses.
const DefaultKeyHold = 150 * time.Millisecond

// KeyState builds an Input from press (and optional release) events.
//
// Terminals deliver key presses and auto-repeat but never releases, so a key
// is considered down until hold has elapsed since its last press. A press that
// arrives while the key is still held is auto-repeat and does not count as a
// new edge.
type KeyState struct {
	hold     time.Duration
	now      time.Time
	lastSeen map[Key]time.Time
	pressed  map[Key]bool
}

// NewKeyState creates a key state with the given hold window.
func NewKeyState(hold time.Duration) *KeyState {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &KeyState{
		hold:     hold,
		lastSeen: make(map[Key]time.Time),
		pressed:  make(map[Key]bool),
	}
}

// Press records a key press observed at the given time.
func (s *KeyState) Press(k Key, at time.Time) {
	last, ok := s.lastSeen[k]
	if !ok || at.Sub(last) >= s.hold {
		s.pressed[k] = true
	}
	s.lastSeen[k] = at
}

// Advance sets the frame time used by IsKeyDown.
func (s *KeyState) Advance(now time.Time) {
	s.now = now
}

// EndFrame clears the edge-triggered presses for the next frame.
func (s *KeyState) EndFrame() {
	for k := range s.pressed {
		delete(s.pressed, k)
	}
}

// IsKeyDown implements Input.
func (s *KeyState) IsKeyDown(k Key) bool {
	last, ok := s.lastSeen[k]
	if !ok {
		return false
	}
	return s.now.Sub(last) < s.hold
}

// IsKeyPressed implements Input.
func (s *KeyState) IsKeyPressed(k Key) bool {
	return s.pressed[k]
}
