package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionCatch) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionCatch)
	f.Set(ActionLeft)
	if !f.Has(ActionCatch) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionCatch) || f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFramePointerSurvivesClear(t *testing.T) {
	f := NewInputFrame()
	f.MovePointer(12, 7)
	f.Pointer.Down = true
	f.Set(ActionPause)

	f.Clear()

	if !f.Pointer.Valid || f.Pointer.X != 12 || f.Pointer.Y != 7 {
		t.Errorf("Pointer position should persist, got %+v", f.Pointer)
	}
	if !f.Pointer.Down {
		t.Error("A held button should stay held across frames")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("Zero frame should report no actions")
	}
	f.Set(ActionConfirm) // must not panic on nil map
	if !f.Has(ActionConfirm) {
		t.Error("Set on zero frame should work")
	}
}

func TestActionString(t *testing.T) {
	if ActionCatch.String() != "Catch" {
		t.Errorf("ActionCatch.String() = %q", ActionCatch.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("Unknown actions should stringify as Unknown")
	}
}
