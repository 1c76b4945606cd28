package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionConfirm) {
		t.Error("New frame should have no actions")
	}
	if f.Cell != NoCell {
		t.Errorf("New frame Cell = %d, expected NoCell", f.Cell)
	}

	f.Set(ActionConfirm)
	f.SetCell(4)

	if !f.Has(ActionConfirm) {
		t.Error("Has(ActionConfirm) = false after Set")
	}
	if f.Cell != 4 {
		t.Errorf("Cell = %d after SetCell(4)", f.Cell)
	}

	f.Clear()
	if f.Has(ActionConfirm) {
		t.Error("Has(ActionConfirm) = true after Clear")
	}
	if f.Cell != NoCell {
		t.Errorf("Cell = %d after Clear, expected NoCell", f.Cell)
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.SetCell(7)

	clone := f.Clone()
	if !clone.Has(ActionUp) || clone.Cell != 7 {
		t.Error("Clone did not copy actions and cell selection")
	}

	// Mutating the clone must not affect the original.
	clone.Set(ActionDown)
	clone.SetCell(2)
	if f.Has(ActionDown) {
		t.Error("Clone shares action map with original")
	}
	if f.Cell != 7 {
		t.Errorf("Original Cell = %d after mutating clone, expected 7", f.Cell)
	}
}
