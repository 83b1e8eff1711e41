// Package input turns window events into per-frame action state.
// Window backends translate their native key codes into Key values, so
// nothing here depends on SDL or GLFW.
package input

import "fmt"

// Event types produced by window backends.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool // key down generated by auto-repeat
	Width  int  // drawable size for EventWindowResize
	Height int
	MouseX float64 // cursor position for EventMouseMove
	MouseY float64
}

// Key is a backend-independent key code. Only keys the demo binds are
// listed.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	Key1
	Key2
	Key3
	KeyF1
	KeyF2
	KeyF12
	KeyEscape
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyW:       "W",
	KeyA:       "A",
	KeyS:       "S",
	KeyD:       "D",
	KeyUp:      "Up",
	KeyDown:    "Down",
	Key1:       "1",
	Key2:       "2",
	Key3:       "3",
	KeyF1:      "F1",
	KeyF2:      "F2",
	KeyF12:     "F12",
	KeyEscape:  "Escape",
}

func (k Key) String() string {
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// Action is a logical input the demo reacts to.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight
	RaiseArm
	LowerArm
	SelectScene1
	SelectScene2
	SelectScene3
	CameraFree
	CameraOrbit
	Screenshot
	Quit

	actionCount
)

// Bindings maps each action to the key that triggers it.
type Bindings map[Action]Key

// DefaultBindings returns W/S/A/D movement, Up/Down for the arm, 1/2/3 for
// scenes, F1/F2 for camera modes, F12 for screenshots and Escape to quit.
func DefaultBindings() Bindings {
	return Bindings{
		MoveForward:  KeyW,
		MoveBackward: KeyS,
		MoveLeft:     KeyA,
		MoveRight:    KeyD,
		RaiseArm:     KeyUp,
		LowerArm:     KeyDown,
		SelectScene1: Key1,
		SelectScene2: Key2,
		SelectScene3: Key3,
		CameraFree:   KeyF1,
		CameraOrbit:  KeyF2,
		Screenshot:   KeyF12,
		Quit:         KeyEscape,
	}
}

// State is the input snapshot for one frame.
type State struct {
	held    [actionCount]bool
	pressed [actionCount]bool

	// Mouse movement since the previous frame, y positive upwards.
	MouseDX float32
	MouseDY float32

	// Close requested by the window system.
	Closed bool

	// Set when the drawable size changed this frame.
	Resized bool
	Width   int
	Height  int
}

// Held reports whether a's key is down.
func (s *State) Held(a Action) bool {
	return a >= 0 && a < actionCount && s.held[a]
}

// Pressed reports whether a's key went down during this frame.
func (s *State) Pressed(a Action) bool {
	return a >= 0 && a < actionCount && s.pressed[a]
}

// Press marks a as held and pressed. Used by tests and scripted input.
func (s *State) Press(a Action) {
	s.held[a] = true
	s.pressed[a] = true
}

// Hold marks a as held without a new press.
func (s *State) Hold(a Action) {
	s.held[a] = true
}

// MouseTracker converts absolute cursor positions into deltas. The first
// position only primes the tracker so the view does not jump.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Move records a cursor position and returns the delta from the previous
// one. Screen y grows downwards, so dy is inverted.
func (m *MouseTracker) Move(x, y float64) (dx, dy float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0
	}
	dx = float32(x - m.lastX)
	dy = float32(m.lastY - y)
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset makes the next position prime the tracker again.
func (m *MouseTracker) Reset() {
	m.primed = false
}

// Input accumulates events into frame states.
type Input struct {
	actions map[Key][]Action
	held    [actionCount]bool
	mouse   MouseTracker
}

// New creates an input handler for b.
func New(b Bindings) *Input {
	i := &Input{actions: make(map[Key][]Action, len(b))}
	for a, k := range b {
		i.actions[k] = append(i.actions[k], a)
	}
	return i
}

// Update applies the events of one frame and returns the resulting state.
// Held keys stay held across frames until their key up arrives.
func (i *Input) Update(events []Event) State {
	var s State

	for _, e := range events {
		switch e.Type {
		case EventQuit:
			s.Closed = true

		case EventWindowResize:
			s.Resized = true
			s.Width, s.Height = e.Width, e.Height

		case EventKeyDown:
			for _, a := range i.actions[e.Key] {
				if !i.held[a] && !e.Repeat {
					s.pressed[a] = true
				}
				i.held[a] = true
			}

		case EventKeyUp:
			for _, a := range i.actions[e.Key] {
				i.held[a] = false
			}

		case EventMouseMove:
			dx, dy := i.mouse.Move(e.MouseX, e.MouseY)
			s.MouseDX += dx
			s.MouseDY += dy
		}
	}

	s.held = i.held
	// A key pressed and released within one frame still counts as held
	// for that frame.
	for a := range s.pressed {
		if s.pressed[a] {
			s.held[a] = true
		}
	}
	return s
}
