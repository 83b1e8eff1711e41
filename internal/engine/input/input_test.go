package input

import "testing"

func keyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }
func keyUp(k Key) Event   { return Event{Type: EventKeyUp, Key: k} }

func mouseAt(x, y float64) Event {
	return Event{Type: EventMouseMove, MouseX: x, MouseY: y}
}

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()
	if len(b) != int(actionCount) {
		t.Errorf("expected every action bound, got %d of %d", len(b), actionCount)
	}

	tests := []struct {
		action Action
		key    Key
	}{
		{MoveForward, KeyW},
		{MoveBackward, KeyS},
		{MoveLeft, KeyA},
		{MoveRight, KeyD},
		{RaiseArm, KeyUp},
		{LowerArm, KeyDown},
		{SelectScene2, Key2},
		{CameraOrbit, KeyF2},
		{Screenshot, KeyF12},
		{Quit, KeyEscape},
	}
	for _, tt := range tests {
		if b[tt.action] != tt.key {
			t.Errorf("action %d: expected %v, got %v", tt.action, tt.key, b[tt.action])
		}
	}
}

func TestPressedOnlyOnFirstFrame(t *testing.T) {
	in := New(DefaultBindings())

	s := in.Update([]Event{keyDown(KeyUp)})
	if !s.Pressed(RaiseArm) || !s.Held(RaiseArm) {
		t.Fatal("expected raise arm pressed and held on first frame")
	}

	s = in.Update(nil)
	if s.Pressed(RaiseArm) {
		t.Error("press must not repeat on later frames")
	}
	if !s.Held(RaiseArm) {
		t.Error("expected raise arm still held")
	}

	// Auto-repeat does not count as a new press.
	s = in.Update([]Event{{Type: EventKeyDown, Key: KeyUp, Repeat: true}})
	if s.Pressed(RaiseArm) {
		t.Error("auto-repeat reported as press")
	}

	s = in.Update([]Event{keyUp(KeyUp)})
	if s.Held(RaiseArm) {
		t.Error("expected raise arm released")
	}
}

func TestTapWithinOneFrame(t *testing.T) {
	in := New(DefaultBindings())
	s := in.Update([]Event{keyDown(Key3), keyUp(Key3)})
	if !s.Pressed(SelectScene3) || !s.Held(SelectScene3) {
		t.Error("a tap inside one frame must still be seen")
	}
	if s = in.Update(nil); s.Held(SelectScene3) {
		t.Error("tap must not stay held")
	}
}

func TestUnboundKeysIgnored(t *testing.T) {
	in := New(DefaultBindings())
	s := in.Update([]Event{keyDown(KeyUnknown)})
	for a := Action(0); a < actionCount; a++ {
		if s.Held(a) || s.Pressed(a) {
			t.Errorf("action %d triggered by unbound key", a)
		}
	}
}

func TestQuitAndResize(t *testing.T) {
	in := New(DefaultBindings())
	s := in.Update([]Event{
		{Type: EventWindowResize, Width: 800, Height: 600},
		{Type: EventQuit},
	})
	if !s.Closed {
		t.Error("expected close request")
	}
	if !s.Resized || s.Width != 800 || s.Height != 600 {
		t.Errorf("expected resize to 800x600, got %v %dx%d", s.Resized, s.Width, s.Height)
	}
}

func TestMouseTracker(t *testing.T) {
	var m MouseTracker

	if dx, dy := m.Move(400, 300); dx != 0 || dy != 0 {
		t.Errorf("first move must prime only, got (%v, %v)", dx, dy)
	}
	dx, dy := m.Move(410, 290)
	if dx != 10 || dy != 10 {
		t.Errorf("expected (10, 10), got (%v, %v)", dx, dy)
	}
	dx, dy = m.Move(405, 310)
	if dx != -5 || dy != -20 {
		t.Errorf("expected (-5, -20), got (%v, %v)", dx, dy)
	}

	m.Reset()
	if dx, dy := m.Move(0, 0); dx != 0 || dy != 0 {
		t.Errorf("move after reset must prime only, got (%v, %v)", dx, dy)
	}
}

func TestMouseDeltasAccumulate(t *testing.T) {
	in := New(DefaultBindings())
	s := in.Update([]Event{mouseAt(100, 100), mouseAt(103, 98), mouseAt(110, 90)})
	if s.MouseDX != 10 || s.MouseDY != 10 {
		t.Errorf("expected (10, 10), got (%v, %v)", s.MouseDX, s.MouseDY)
	}

	s = in.Update(nil)
	if s.MouseDX != 0 || s.MouseDY != 0 {
		t.Errorf("deltas must reset each frame, got (%v, %v)", s.MouseDX, s.MouseDY)
	}
}

func TestStateHelpers(t *testing.T) {
	var s State
	s.Hold(MoveForward)
	s.Press(CameraOrbit)
	if !s.Held(MoveForward) || s.Pressed(MoveForward) {
		t.Error("Hold must not press")
	}
	if !s.Pressed(CameraOrbit) || !s.Held(CameraOrbit) {
		t.Error("Press must hold and press")
	}
	if s.Held(Action(-1)) || s.Pressed(actionCount) {
		t.Error("out of range actions must report false")
	}
}

func TestKeyString(t *testing.T) {
	if KeyF12.String() != "F12" || Key(99).String() != "key(99)" {
		t.Errorf("unexpected key names %s %s", KeyF12, Key(99))
	}
}
