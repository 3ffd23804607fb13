package core

import (
	"strings"
	"testing"
)

// rowText returns row y of s as a string.
func rowText(s *Screen, y int) string {
	runes := make([]rune, s.Width())
	for x := range runes {
		runes[x] = s.GetCell(x, y).Rune
	}
	return string(runes)
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("NewScreen(20, 10) = %dx%d", s.Width(), s.Height())
	}
	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Error("a new screen should be blank")
	}

	neg := NewScreen(-3, -1)
	if neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", neg.Width(), neg.Height())
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(3, 2, '#', ColorGreen)

	cell := s.GetCell(3, 2)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 2) = %q/%v, expected '#'/green", cell.Rune, cell.Color)
	}

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 10, 0},
		{"above", 0, -1},
		{"below", 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s.SetCell(tc.x, tc.y, 'X', ColorRed) // must not panic
			if got := s.GetCell(tc.x, tc.y); got != blankCell {
				t.Errorf("GetCell(%d, %d) = %+v, expected a blank cell", tc.x, tc.y, got)
			}
		})
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawColorText(0, 1, "abcd", ColorRed)

	s.Clear()

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.GetCell(x, y); got != blankCell {
				t.Errorf("after Clear, (%d, %d) = %+v", x, y, got)
			}
		}
	}
}

func TestScreenDrawColorText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawColorText(1, 1, "Hi", ColorYellow)

	if got := rowText(s, 1); got != " Hi       " {
		t.Errorf("row 1 = %q", got)
	}
	if s.GetCell(1, 1).Color != ColorYellow || s.GetCell(2, 1).Color != ColorYellow {
		t.Error("DrawColorText should color every character")
	}
	if s.GetCell(3, 1).Color != ColorDefault {
		t.Error("DrawColorText should not color past the text")
	}

	// Clipped at both edges
	s.DrawColorText(-2, 0, "abcdefghijklm", ColorWhite)
	if got := rowText(s, 0); got != "cdefghijkl" {
		t.Errorf("clipped row = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawColorText(0, 0, "AAAAA", ColorDefault)
	s.DrawColorText(0, 1, "BBBBB", ColorDefault)
	s.DrawColorText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawColorText(0, 0, "Hello", ColorGreen)
	s.DrawColorText(0, 5, "World", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after shrinking, size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if got := rowText(s, 0); got != "Hello   " {
		t.Errorf("top-left content should survive shrinking, row 0 = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("colors should survive a resize")
	}

	s.Resize(15, 8)
	if got := rowText(s, 0); !strings.HasPrefix(got, "Hello") {
		t.Errorf("content should survive enlarging, row 0 = %q", got)
	}
	if got := rowText(s, 5); strings.TrimSpace(got) != "" {
		t.Errorf("rows cut by the shrink should come back blank, row 5 = %q", got)
	}
}
