package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/xpostwatch/internal/verdict"
)

const (
	historyCap    = 32
	historyHeight = 5
)

// renderHistory draws one bar per observed count, colored by its verdict.
// Bars are offset from the lowest count so single increments stay visible.
func renderHistory(st styles, history []int, width int) string {
	if len(history) < 2 || width < 8 {
		return ""
	}

	maxBars := width / 2
	start := max(0, len(history)-maxBars)
	window := history[start:]

	lo, hi := window[0], window[0]
	for _, c := range window {
		lo = min(lo, c)
		hi = max(hi, c)
	}

	bc := barchart.New(width, historyHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	for _, c := range window {
		v := verdict.Classify(c)
		color := lipgloss.Color(v.Color)
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: v.Label, Value: float64(c - lo + 1), Style: lipgloss.NewStyle().Foreground(color).Background(color)},
			},
		})
	}
	bc.Draw()

	title := st.dim.Render(fmt.Sprintf("SIGNAL HISTORY  min %d | max %d", lo, hi))
	return lipgloss.JoinVertical(lipgloss.Left, title, bc.View())
}

// appendHistory records count when it differs from the last entry and
// keeps at most historyCap entries.
func appendHistory(history []int, count int) []int {
	if n := len(history); n > 0 && history[n-1] == count {
		return history
	}
	history = append(history, count)
	if len(history) > historyCap {
		history = append([]int(nil), history[len(history)-historyCap:]...)
	}
	return history
}
