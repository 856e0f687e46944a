package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 60

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// banner prints the framed headers around a run. Styling is applied
// only when color is set; otherwise the text is written plain.
type banner struct {
	w     io.Writer
	color bool
}

func newBanner(w io.Writer, color bool) banner {
	return banner{w: w, color: color}
}

func (b banner) styled(s lipgloss.Style, text string) string {
	if !b.color {
		return text
	}
	return s.Render(text)
}

func (b banner) rule() {
	fmt.Fprintln(b.w, b.styled(ruleStyle, strings.Repeat("=", ruleWidth)))
}

func (b banner) title(text string) {
	fmt.Fprintln(b.w, b.styled(titleStyle, text))
}

func (b banner) success(text string) {
	fmt.Fprintln(b.w, b.styled(successStyle, text))
}

func (b banner) warn(text string) {
	fmt.Fprintln(b.w, b.styled(warnStyle, text))
}
