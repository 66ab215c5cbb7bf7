package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBigDigits_RowsAlign(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 7, 47, 100, 126} {
		rows := bigDigits(n)
		if len(rows) != glyphRows {
			t.Fatalf("bigDigits(%d) rows = %d, want %d", n, len(rows), glyphRows)
		}
		w := lipgloss.Width(rows[0])
		for i, r := range rows {
			if lipgloss.Width(r) != w {
				t.Fatalf("bigDigits(%d) row %d width %d, want %d", n, i, lipgloss.Width(r), w)
			}
		}
	}
}

func TestBigDigits_NegativeClampsToZero(t *testing.T) {
	t.Parallel()

	got, want := bigDigits(-5), bigDigits(0)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDistort_KeepsRowWidths(t *testing.T) {
	t.Parallel()

	rows := bigDigits(88)
	for tick := 0; tick < 4; tick++ {
		for i, r := range distort(rows, tick) {
			if lipgloss.Width(r) != lipgloss.Width(rows[i]) {
				t.Fatalf("tick %d row %d width changed: %d -> %d", tick, i, lipgloss.Width(rows[i]), lipgloss.Width(r))
			}
		}
	}
}

func TestAppendHistory_DedupesAndCaps(t *testing.T) {
	t.Parallel()

	var h []int
	h = appendHistory(h, 50)
	h = appendHistory(h, 50)
	if len(h) != 1 {
		t.Fatalf("repeated count appended: %v", h)
	}
	for i := 51; i < 51+historyCap*2; i++ {
		h = appendHistory(h, i)
	}
	if len(h) != historyCap {
		t.Fatalf("history length = %d, want %d", len(h), historyCap)
	}
	if h[len(h)-1] != 50+historyCap*2 {
		t.Fatalf("latest entry = %d", h[len(h)-1])
	}
}
