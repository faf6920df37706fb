package ui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fuelflow/meal-analyzer/common"
)

const (
	WindowTitle  = "Meal Analysis"
	WindowWidth  = 600
	WindowHeight = 400
	ButtonLabel  = "Analyze Meal"
)

// TerminalSurface draws the meal analysis window as a framed block of text.
type TerminalSurface struct {
	out       io.Writer
	wrapWidth int

	text    string
	visible bool
	status  string

	dialogOpen    bool
	dialogTitle   string
	dialogMessage string
}

// NewTerminalSurface creates the window with the placeholder text. The result
// area starts visible, matching the window layout at startup.
func NewTerminalSurface(out io.Writer, wrapWidth int) *TerminalSurface {
	if wrapWidth <= 0 {
		wrapWidth = common.WithDefaultSettings().WrapWidth
	}
	return &TerminalSurface{
		out:       out,
		wrapWidth: wrapWidth,
		text:      PlaceholderText,
		visible:   true,
	}
}

func (s *TerminalSurface) Update(text string) {
	s.text = text
	s.visible = true
}

func (s *TerminalSurface) ShowError(title, message string) {
	s.dialogOpen = true
	s.dialogTitle = title
	s.dialogMessage = message
}

// DismissDialog closes the error dialog, if any.
func (s *TerminalSurface) DismissDialog() {
	s.dialogOpen = false
	s.dialogTitle = ""
	s.dialogMessage = ""
}

// SetStatus shows a one-line hint under the button; empty clears it.
func (s *TerminalSurface) SetStatus(status string) {
	s.status = status
}

func (s *TerminalSurface) Text() string {
	return s.text
}

func (s *TerminalSurface) Visible() bool {
	return s.visible
}

func (s *TerminalSurface) DialogOpen() bool {
	return s.dialogOpen
}

func (s *TerminalSurface) DialogMessage() string {
	return s.dialogMessage
}

func (s *TerminalSurface) Render() {
	inner := s.wrapWidth + 4

	var b strings.Builder
	border := "+" + strings.Repeat("-", inner) + "+\n"

	b.WriteString(border)
	geometry := fmt.Sprintf("%dx%d", WindowWidth, WindowHeight)
	writeRow(&b, " "+WindowTitle+strings.Repeat(" ", max(1, inner-2-len(WindowTitle)-len(geometry)))+geometry, inner)
	b.WriteString(border)
	writeRow(&b, "", inner)
	writeRow(&b, center("[ "+ButtonLabel+" ]", inner), inner)
	if s.status != "" {
		writeRow(&b, center(s.status, inner), inner)
	}
	writeRow(&b, "", inner)

	if s.visible {
		for _, line := range strings.Split(common.WrapString(s.text, s.wrapWidth), "\n") {
			writeRow(&b, "  "+line, inner)
		}
		writeRow(&b, "", inner)
	}
	b.WriteString(border)

	if s.dialogOpen {
		b.WriteString(s.renderDialog())
	}

	fmt.Fprint(s.out, b.String())
}

func (s *TerminalSurface) renderDialog() string {
	inner := s.wrapWidth

	var b strings.Builder
	border := "  #" + strings.Repeat("=", inner) + "#\n"

	b.WriteString("\n")
	b.WriteString(border)
	writeDialogRow(&b, " "+s.dialogTitle, inner)
	b.WriteString(border)
	for _, line := range strings.Split(common.WrapString(s.dialogMessage, inner-2), "\n") {
		writeDialogRow(&b, " "+line, inner)
	}
	writeDialogRow(&b, "", inner)
	writeDialogRow(&b, center("[ OK ] press Enter", inner), inner)
	b.WriteString(border)
	return b.String()
}

func writeRow(b *strings.Builder, content string, width int) {
	b.WriteString("|" + pad(content, width) + "|\n")
}

func writeDialogRow(b *strings.Builder, content string, width int) {
	b.WriteString("  #" + pad(content, width) + "#\n")
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
