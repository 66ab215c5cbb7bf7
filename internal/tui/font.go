package tui

import (
	"strconv"
	"strings"
)

// digitGlyphs is a 3x5 block font; '#' cells are drawn two columns wide.
var digitGlyphs = [10][5]string{
	{"###", "# #", "# #", "# #", "###"},
	{" # ", "## ", " # ", " # ", "###"},
	{"###", "  #", "###", "#  ", "###"},
	{"###", "  #", " ##", "  #", "###"},
	{"# #", "# #", "###", "  #", "  #"},
	{"###", "#  ", "###", "  #", "###"},
	{"###", "#  ", "###", "# #", "###"},
	{"###", "  #", "  #", " # ", " # "},
	{"###", "# #", "###", "# #", "###"},
	{"###", "# #", "###", "  #", "###"},
}

const glyphRows = 5

// bigDigits renders a non-negative number in the block font, one string
// per row.
func bigDigits(n int) []string {
	if n < 0 {
		n = 0
	}
	digits := strconv.Itoa(n)
	rows := make([]string, glyphRows)
	for row := 0; row < glyphRows; row++ {
		var b strings.Builder
		for i := 0; i < len(digits); i++ {
			d := digits[i]
			if i > 0 {
				b.WriteString("  ")
			}
			for _, cell := range digitGlyphs[d-'0'][row] {
				if cell == '#' {
					b.WriteString("██")
				} else {
					b.WriteString("  ")
				}
			}
		}
		rows[row] = b.String()
	}
	return rows
}
