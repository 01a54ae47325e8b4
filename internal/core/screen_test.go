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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorCar)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorCar {
		t.Errorf("GetCell(5, 5) = %+v, expected X/ColorCar", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(0, 0, 4, 3), '#', ColorWall)
	s.Clear()

	if s.String() != strings.Repeat("    \n", 2)+"    " {
		t.Errorf("Clear() left content: %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(8, 0, "abc", ColorHUD)

	if got := s.Row(0); got != "        ab" {
		t.Errorf("Row(0) = %q, expected clipped text", got)
	}

	s.DrawTextCentered(1, "go", ColorHUD)
	if got := s.Row(1); got != "    go    " {
		t.Errorf("Row(1) = %q, expected centered text", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorBanner)

	expected := "┌──┐\n│  │\n└──┘"
	if s.String() != expected {
		t.Errorf("DrawBox() =\n%s\nexpected\n%s", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X', ColorCar)
	s.Resize(3, 2)

	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("Resize() = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize should reset content")
	}

	s.Resize(-1, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Error("negative sizes should clamp to zero")
	}
}
