package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/tinytelemetry/xpostwatch/internal/model"
	"github.com/tinytelemetry/xpostwatch/internal/verdict"
)

const (
	defaultWidth = 80
	minWidth     = 50
	minHeight    = 20
	// Below this height the history chart is left out.
	fullHeight = 36
	// Animation frames per half-period of the REC blink.
	blinkFrames = 4
)

// Attribution is a footer credit.
type Attribution struct {
	Prefix string
	Handle string
	URL    string
}

// Attributions are the fixed footer credits.
var Attributions = []Attribution{
	{Prefix: "Requested by", Handle: "@amk0x", URL: "https://x.com/amk0x"},
	{Prefix: "Built by", Handle: "@clonkbot", URL: "https://x.com/clonkbot"},
}

// Layout holds the static text options of the widget.
type Layout struct {
	Subject        string
	TickerMessages []string
	Clock24h       bool
}

func (l Layout) subject() string {
	if strings.TrimSpace(l.Subject) == "" {
		return model.DefaultSubject
	}
	return strings.ToUpper(l.Subject)
}

func (l Layout) tickerMessages() []string {
	if len(l.TickerMessages) == 0 {
		return model.DefaultTickerMessages
	}
	return l.TickerMessages
}

// Frame is everything one render reads.
type Frame struct {
	State   model.DisplayState
	Tick    int   // animation frame counter
	History []int // observed counts, oldest first
	Skin    Skin
	Layout  Layout
	Dots    string // loading animation; "..." when empty
	Help    string
	Width   int // 0 renders at defaultWidth without vertical placement
	Height  int
}

// Render draws a frame. It has no side effects.
func Render(f Frame) string {
	if f.Width > 0 && f.Height > 0 && (f.Width < minWidth || f.Height < minHeight) {
		return fmt.Sprintf("Terminal too small. Resize to at least %dx%d.", minWidth, minHeight)
	}
	width := f.Width
	if width <= 0 {
		width = defaultWidth
	}

	st := newStyles(f.Skin)
	glitch := f.State.GlitchActive
	center := func(s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}

	rows := []string{
		renderTicker(st, f.Layout.tickerMessages(), f.Tick, width, glitch),
		"",
		center(renderHeader(st, f.Layout.subject())),
		"",
	}

	if f.State.IsLoading {
		rows = append(rows, center(renderLoading(st, f.Dots)))
	} else {
		rows = append(rows,
			center(renderCounter(st, f.State.Count, glitch, f.Tick)),
			"",
			center(renderVerdict(st, verdict.Classify(f.State.Count))),
		)
		if f.Height == 0 || f.Height >= fullHeight {
			if chart := renderHistory(st, f.History, min(width-4, 64)); chart != "" {
				rows = append(rows, "", center(chart))
			}
		}
	}

	rows = append(rows,
		"",
		center(renderTimestamp(st, f.State.CurrentTime, f.Layout.Clock24h)),
		"",
		center(renderDecorations(st, f.Tick)),
		"",
		center(renderFooter(st)),
	)
	if f.Help != "" {
		rows = append(rows, "", center(f.Help))
	}

	body := strings.Join(rows, "\n")
	if glitch {
		body = shiftLines(body, f.Tick, width)
	}
	if f.Height > 0 {
		body = lipgloss.PlaceVertical(f.Height, lipgloss.Top, body)
	}
	return body
}

func renderTicker(st styles, messages []string, tick, width int, glitch bool) string {
	badge := st.badge.Render("LIVE")
	room := width - lipgloss.Width(badge) - 1
	if room <= 0 {
		return badge
	}

	var b strings.Builder
	for _, msg := range messages {
		b.WriteString(msg)
		b.WriteString("  ///  ")
	}
	scroll := marquee(b.String(), tick, room)

	bar := st.tickerBar
	if glitch {
		bar = bar.Foreground(st.glitch.GetForeground())
	}
	return badge + " " + bar.Render(scroll)
}

// marquee returns a width-rune window of text starting at offset, wrapping.
func marquee(text string, offset, width int) string {
	runes := []rune(text)
	if len(runes) == 0 || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	start := offset % len(runes)
	if start < 0 {
		start += len(runes)
	}
	out := make([]rune, width)
	for i := range out {
		out[i] = runes[(start+i)%len(runes)]
	}
	return string(out)
}

func renderHeader(st styles, subject string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		st.dim.Render("HOW MANY POSTS DID"),
		st.title.Render(subject),
		st.base.Render("SHARE ON ")+st.accent.Render("𝕏")+st.base.Render(" TODAY?"),
	)
}

func renderLoading(st styles, dots string) string {
	if dots == "" {
		dots = "..."
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		st.base.Render("INTERCEPTING"),
		st.base.Render("DATA FEED"),
		st.accent.Render(dots),
	)
}

func renderCounter(st styles, count int, glitch bool, tick int) string {
	rows := bigDigits(count)
	numStyle := st.number
	if glitch {
		rows = distort(rows, tick)
		numStyle = st.glitch.Bold(true)
	}
	for i, r := range rows {
		rows[i] = numStyle.Render(r)
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		strings.Join(rows, "\n"),
		"",
		st.label.Render("P O S T S"),
	)
}

func renderVerdict(st styles, v verdict.Verdict) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		st.dim.Render("STATUS:"),
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.Color)).Render(v.Label),
	)
}

// Date and time layouts matching the en-US long form.
const (
	dateLayout   = "Monday, January 2, 2006"
	time12Layout = "03:04:05 PM"
	time24Layout = "15:04:05"
)

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatClock(t time.Time, clock24h bool) string {
	if clock24h {
		return t.Format(time24Layout)
	}
	return t.Format(time12Layout)
}

func renderTimestamp(st styles, t time.Time, clock24h bool) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		st.dim.Render(formatDate(t)),
		st.accent.Bold(true).Render(formatClock(t, clock24h)),
	)
}

func renderDecorations(st styles, tick int) string {
	rec := "   "
	if (tick/blinkFrames)%2 == 0 {
		rec = "REC"
	}
	return strings.Join([]string{
		st.dim.Render("[CLASSIFIED]"),
		st.dim.Render("SYS://XPOST.MONITOR.v2.0"),
		lipgloss.NewStyle().Foreground(st.badge.GetBackground()).Bold(true).Render(rec) + st.dim.Render(" ● RECORDING"),
	}, "   ")
}

func renderFooter(st styles) string {
	parts := make([]string, 0, len(Attributions))
	for _, a := range Attributions {
		parts = append(parts, st.dim.Render(a.Prefix+" ")+hyperlink(st, a.Handle, a.URL))
	}
	return strings.Join(parts, st.dim.Render(" · "))
}

// hyperlink wraps text in an OSC 8 link; terminals without support show
// the text alone.
func hyperlink(st styles, text, url string) string {
	return ansi.SetHyperlink(url) + st.link.Render(text) + ansi.ResetHyperlink()
}
