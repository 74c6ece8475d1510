package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/homebound/internal/core"
)

// palette maps screen colors to ANSI 256-color codes. The default color
// keeps the terminal's own foreground.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "94",
	core.ColorPink:          "204",
	core.ColorNavy:          "17",
}

// styleSet builds and caches one lipgloss style per color for a backdrop.
type styleSet struct {
	bg     string
	styles map[core.Color]lipgloss.Style
}

func newStyleSet(bg string) *styleSet {
	return &styleSet{bg: bg, styles: make(map[core.Color]lipgloss.Style)}
}

func (ss *styleSet) get(c core.Color) lipgloss.Style {
	if st, ok := ss.styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if int(c) < len(palette) && palette[c] != "" {
		st = st.Foreground(lipgloss.Color(palette[c]))
	}
	if ss.bg != "" {
		st = st.Background(lipgloss.Color(ss.bg))
	}
	ss.styles[c] = st
	return st
}

// RenderScreen turns a screen into styled terminal text, one style per run
// of same-colored cells. A non-empty bg ("#rrggbb") paints every cell's
// background.
func RenderScreen(s *core.Screen, bg string) string {
	styles := newStyleSet(bg)
	lines := make([]string, s.Height())

	for y := range lines {
		var line, run strings.Builder
		runColor := s.GetCell(0, y).Color
		for x := range s.Width() {
			c := s.GetCell(x, y)
			if c.Color != runColor {
				line.WriteString(styles.get(runColor).Render(run.String()))
				run.Reset()
				runColor = c.Color
			}
			run.WriteRune(c.Rune)
		}
		if run.Len() > 0 {
			line.WriteString(styles.get(runColor).Render(run.String()))
		}
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}
