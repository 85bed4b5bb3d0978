package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.Repeat(strings.Repeat(" ", 12)+"\n", 3)+strings.Repeat(" ", 12) {
		t.Errorf("new screen not blank: %q", got)
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(5, 3)
	for _, p := range [][2]int{{-1, 0}, {5, 0}, {0, -1}, {0, 3}} {
		s.SetColor(p[0], p[1], 'X', ColorRed)
		if cell := s.GetCell(p[0], p[1]); cell != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v outside the screen", p[0], p[1], cell)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds writes leaked onto the screen")
	}

	s.SetColor(4, 2, 'X', ColorRed)
	if cell := s.GetCell(4, 2); cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v", cell)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		row  string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "abc") }, " abc      "},
		{"clipped", func(s *Screen) { s.DrawText(7, 0, "score") }, "       sco"},
		{"negative x", func(s *Screen) { s.DrawText(-2, 0, "score") }, "ore       "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "WIN") }, "   WIN    "},
		{"centered runes", func(s *Screen) { s.DrawTextCentered(0, "←→") }, "    ←→    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.row {
				t.Errorf("Row(0) = %q, expected %q", got, tc.row)
			}
		})
	}
}

func TestScreenTextColor(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCenteredColor(0, "GO", ColorBrightGreen)
	for x := 4; x < 6; x++ {
		if c := s.GetCell(x, 0).Color; c != ColorBrightGreen {
			t.Errorf("cell %d color = %v", x, c)
		}
	}
	if c := s.GetCell(0, 0).Color; c != ColorDefault {
		t.Errorf("untouched cell color = %v", c)
	}
}

func TestScreenBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawText(0, 1, "xxxxxx")
	box := NewRect(0, 0, 6, 4)
	s.DrawRect(box, ' ')
	s.DrawBox(box)

	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d after resize", s.Width(), s.Height())
	}
	if s.String() != "ab\nef\n  " {
		t.Errorf("after shrink = %q", s.String())
	}

	s.Resize(3, 1)
	if s.String() != "ab " {
		t.Errorf("after regrow = %q", s.String())
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColor(0, 0, "abc", ColorRed)
	s.Clear()
	for y := range 2 {
		for x := range 3 {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("cell (%d, %d) not cleared", x, y)
			}
		}
	}
	if s.Row(5) != "   " {
		t.Errorf("out-of-range Row = %q", s.Row(5))
	}
}
