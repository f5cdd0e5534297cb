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

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '#', ColorOrange)

	cell := s.GetCell(3, 4)
	if cell.Rune != '#' {
		t.Errorf("GetCell rune = %q, expected '#'", cell.Rune)
	}
	if cell.Color != ColorOrange {
		t.Errorf("GetCell color = %d, expected ColorOrange", cell.Color)
	}

	// Plain Set writes the default color
	s.Set(3, 4, '*')
	if got := s.GetCell(3, 4).Color; got != ColorDefault {
		t.Errorf("Set should reset color to default, got %d", got)
	}

	// Out of bounds GetCell returns a blank default cell
	blank := s.GetCell(-1, -1)
	if blank.Rune != ' ' || blank.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank default cell", blank)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if row := s.Row(1); !strings.Contains(row, "hello") {
		t.Errorf("Row(1) = %q, expected to contain \"hello\"", row)
	}

	// Clipped at the right edge, no panic
	s.DrawText(18, 2, "clip")
	if s.Get(18, 2) != 'c' || s.Get(19, 2) != 'l' {
		t.Error("DrawText should write the visible prefix before clipping")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextColored(0, 0, "ab", ColorGreen)
	if s.GetCell(0, 0).Color != ColorGreen || s.GetCell(1, 0).Color != ColorGreen {
		t.Error("DrawTextColored should color every written cell")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")
	// (11-3)/2 = 4
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("Centered text misplaced, row = %q", s.Row(1))
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("After resize, dimensions = %dx%d, expected 5x5", s.Width(), s.Height())
	}
	// Content within the new bounds is preserved
	if s.Get(2, 2) != 'A' {
		t.Errorf("Resize should preserve content, got %q at (2, 2)", s.Get(2, 2))
	}

	// Growing back leaves the new area blank
	s.Resize(10, 10)
	if s.Get(9, 9) != ' ' {
		t.Error("Resize should not resurrect content outside the shrunk bounds")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Box top corners incorrect")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box bottom corners incorrect")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges incorrect")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected all spaces", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q, expected all spaces", got)
	}
}
