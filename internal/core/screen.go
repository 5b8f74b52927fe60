package core

import (
	"strings"
)

// Cell is one character position on the screen.
// Styled cells carry a foreground colour and Backed cells a background
// colour; otherwise the terminal default is used.
type Cell struct {
	Rune   rune
	FG     RGB
	BG     RGB
	Styled bool
	Backed bool
}

// blank is the cleared cell value.
var blank = Cell{Rune: ' '}

// Plain returns an unstyled cell for r.
func Plain(r rune) Cell {
	return Cell{Rune: r}
}

// Colored returns a cell drawn with the given foreground colour.
func Colored(r rune, fg RGB) Cell {
	return Cell{Rune: r, FG: fg, Styled: true}
}

// OnBackground returns c drawn over the background colour bg.
func (c Cell) OnBackground(bg RGB) Cell {
	c.BG = bg
	c.Backed = true
	return c
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	s.FillCell(blank)
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	s.FillCell(Plain(r))
}

// FillCell fills the entire screen with the given cell.
func (s *Screen) FillCell(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places an unstyled rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Plain(r))
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// DrawTextColored writes a string in the given colour.
func (s *Screen) DrawTextColored(x, y int, text string, fg RGB) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Colored(r, fg))
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// FillRect fills a rectangular cell area.
func (s *Screen) FillRect(x, y, w, h int, c Cell) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetCell(col, row, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int) {
	right, bottom := x+w-1, y+h-1

	s.Set(x, y, '┌')
	s.Set(right, y, '┐')
	s.Set(x, bottom, '└')
	s.Set(right, bottom, '┘')

	for col := x + 1; col < right; col++ {
		s.Set(col, y, '─')
		s.Set(col, bottom, '─')
	}
	for row := y + 1; row < bottom; row++ {
		s.Set(x, row, '│')
		s.Set(right, row, '│')
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, c Cell) {
	for i := 0; i < length; i++ {
		s.SetCell(x+i, y, c)
	}
}

// String converts the screen buffer to a plain string without colour.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
