package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	s.SetCell(4, 2, 'Y', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != 'Y' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected {Y Red}", cell)
	}

	// Out of bounds is silently ignored
	s.Set(-1, 0, 'Z')
	s.Set(10, 0, 'Z')
	s.Set(0, 5, 'Z')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, 'A', ColorGreen)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("DrawText should clip at screen edge")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, 'K')

	s.Resize(8, 6)
	if s.Width() != 8 || s.Height() != 6 {
		t.Errorf("Resize dims = %dx%d, expected 8x6", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'K' {
		t.Error("Resize should preserve existing content")
	}

	s.Resize(3, 3)
	if s.Get(2, 2) != 'K' {
		t.Error("Shrinking resize should keep in-range content")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", str)
	}
}
