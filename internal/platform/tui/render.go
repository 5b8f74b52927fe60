package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dash/internal/core"
)

// cellStyle returns the lipgloss style for a cell's colours.
func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.Styled {
		style = style.Foreground(lipgloss.Color(c.FG.Hex()))
	}
	if c.Backed {
		style = style.Background(lipgloss.Color(c.BG.Hex()))
	}
	return style
}

// sameStyle reports whether two cells render with the same escape sequence.
func sameStyle(a, b core.Cell) bool {
	if a.Styled != b.Styled || a.Backed != b.Backed {
		return false
	}
	if a.Styled && a.FG != b.FG {
		return false
	}
	if a.Backed && a.BG != b.BG {
		return false
	}
	return true
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameStyle(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !start.Styled && !start.Backed {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
