package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var noiseGlyphs = []string{"▓▒", "░▓", "▒░"}

// distort corrupts block-font rows for the glitch frame. Row widths are kept.
func distort(rows []string, tick int) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		cells := strings.Split(row, "██")
		var b strings.Builder
		for j, c := range cells {
			if j > 0 {
				if (i+j+tick)%4 == 0 {
					b.WriteString(noiseGlyphs[(i+j)%len(noiseGlyphs)])
				} else {
					b.WriteString("██")
				}
			}
			b.WriteString(c)
		}
		// Alternate rows tear one column right.
		r := []rune(b.String())
		if (i+tick)%2 == 0 && len(r) > 0 {
			r = append([]rune{' '}, r[:len(r)-1]...)
		}
		out[i] = string(r)
	}
	return out
}

// shiftLines displaces every third line by one column, clipped to width.
func shiftLines(body string, tick, width int) string {
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		if (i+tick)%3 == 0 {
			lines[i] = ansi.Truncate(" "+l, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
