package core

import "strings"

// Cell is one character of the screen with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a fixed-size character canvas. Games draw into it with a pen
// color; frontends turn it into terminal output. Every drawing call clips to
// the canvas, so callers may pass coordinates outside it.
type Screen struct {
	w, h  int
	cells []Cell // Row-major, len w*h
	pen   Color
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.w }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.h }

// Resize changes the size and blanks the screen. Games redraw every frame,
// so old content is not kept.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.w && height == s.h && s.cells != nil {
		return
	}
	s.w, s.h = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear blanks the screen and resets the pen.
func (s *Screen) Clear() {
	s.pen = ColorDefault
	s.Fill(' ')
}

// Fill sets every cell to r in the pen color.
func (s *Screen) Fill(r rune) {
	c := Cell{Rune: r, Color: s.pen}
	for i := range s.cells {
		s.cells[i] = c
	}
}

// SetColor sets the pen color for subsequent drawing.
func (s *Screen) SetColor(c Color) {
	s.pen = c
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return 0, false
	}
	return y*s.w + x, true
}

// Set places r at (x, y) in the pen color.
func (s *Screen) Set(x, y int, r rune) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: s.pen}
	}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text left to right starting at (x, y).
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.Set(x, y, r)
		x++
	}
}

// DrawTextCentered writes text horizontally centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.w-len([]rune(text)))/2, y, text)
}

// clip returns the part of r inside the screen as column and row bounds.
func (s *Screen) clip(r Rect) (x0, y0, x1, y1 int) {
	return max(r.X, 0), max(r.Y, 0), min(r.Right(), s.w), min(r.Bottom(), s.h)
}

// DrawRect fills r with the given rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	x0, y0, x1, y1 := s.clip(r)
	c := Cell{Rune: fill, Color: s.pen}
	for y := y0; y < y1; y++ {
		row := s.cells[y*s.w : (y+1)*s.w]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// DrawHLine draws length copies of r rightwards from (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	s.DrawRect(NewRect(x, y, length, 1), r)
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1

	s.DrawHLine(r.X+1, r.Y, r.W-2, '─')
	s.DrawHLine(r.X+1, bottom, r.W-2, '─')
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}

	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// Row returns row y as plain text, or spaces outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
