package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 3, 'O', ColorBrightCyan)

	cell := s.GetCell(3, 3)
	if cell.Rune != 'O' {
		t.Errorf("GetCell(3, 3).Rune = %q, expected 'O'", cell.Rune)
	}
	if cell.Color != ColorBrightCyan {
		t.Errorf("GetCell(3, 3).Color = %v, expected ColorBrightCyan", cell.Color)
	}

	// Out of bounds cell should be a default space
	oob := s.GetCell(-1, 0)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected default space", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected default space at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	row := s.Row(1)
	if !strings.Contains(row, expected) {
		t.Errorf("Row(1) = %q, expected to contain %q", row, expected)
	}
	if s.Get(2, 1) != 'H' {
		t.Errorf("Get(2, 1) = %q, expected 'H'", s.Get(2, 1))
	}
	if s.Get(6, 1) != 'o' {
		t.Errorf("Get(6, 1) = %q, expected 'o'", s.Get(6, 1))
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(3, 1, "Hello") // Only "He" fits

	if s.Get(3, 1) != 'H' {
		t.Errorf("Get(3, 1) = %q, expected 'H'", s.Get(3, 1))
	}
	if s.Get(4, 1) != 'e' {
		t.Errorf("Get(4, 1) = %q, expected 'e'", s.Get(4, 1))
	}
	// Rest is clipped, no panic
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	// (11-3)/2 = 4
	if s.Get(4, 1) != 'a' {
		t.Errorf("Get(4, 1) = %q, expected 'a'", s.Get(4, 1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' {
		t.Errorf("Expected top-left corner at (1,1), got %q", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("Expected top-right corner at (5,1), got %q", s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("Expected bottom-left corner at (1,4), got %q", s.Get(1, 4))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("Expected bottom-right corner at (5,4), got %q", s.Get(5, 4))
	}
	if s.Get(3, 1) != '─' {
		t.Errorf("Expected horizontal edge at (3,1), got %q", s.Get(3, 1))
	}
	if s.Get(1, 2) != '│' {
		t.Errorf("Expected vertical edge at (1,2), got %q", s.Get(1, 2))
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-')

	for x := 2; x < 7; x++ {
		if s.Get(x, 2) != '-' {
			t.Errorf("DrawHLine: expected '-' at (%d, 2), got %q", x, s.Get(x, 2))
		}
	}
}

func TestScreenDrawVLine(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawVLine(3, 2, 4, '|')

	for y := 2; y < 6; y++ {
		if s.Get(3, y) != '|' {
			t.Errorf("DrawVLine: expected '|' at (3, %d), got %q", y, s.Get(3, y))
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')
	s.Set(9, 9, 'Y')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("After Resize, size = %dx%d, expected 5x5", s.Width(), s.Height())
	}
	// Content inside the new bounds is preserved
	if s.Get(2, 2) != 'X' {
		t.Errorf("Get(2, 2) = %q, expected 'X' after resize", s.Get(2, 2))
	}
	// Content outside the new bounds is gone; access stays safe
	if s.Get(9, 9) != ' ' {
		t.Error("Out of bounds Get after shrink should return space")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	expected := "abc\ndef"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}
