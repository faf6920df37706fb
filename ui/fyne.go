package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	// resultWidth is where the result label wraps
	resultWidth  = 500
	resultHeight = 280
	dialogWidth  = 420
)

// FyneSurface is the desktop meal analysis window: an Analyze Meal button
// above a word-wrapped result label. Methods must run on the fyne UI goroutine.
type FyneSurface struct {
	window fyne.Window
	button *widget.Button
	label  *widget.Label
	result *fyne.Container

	dialogMessage string
}

// NewFyneSurface builds the window. onAnalyze runs when the button is tapped.
// The result area is laid out at startup with the placeholder text.
func NewFyneSurface(fyneApp fyne.App, onAnalyze func()) *FyneSurface {
	s := &FyneSurface{}

	s.label = widget.NewLabel(PlaceholderText)
	s.label.Wrapping = fyne.TextWrapWord
	s.label.Alignment = fyne.TextAlignLeading

	s.button = widget.NewButton(ButtonLabel, onAnalyze)
	s.button.Importance = widget.HighImportance

	s.result = container.NewCenter(
		container.NewGridWrap(fyne.NewSize(resultWidth, resultHeight), container.NewVScroll(s.label)),
	)

	s.window = fyneApp.NewWindow(WindowTitle)
	s.window.SetContent(container.NewBorder(
		container.NewPadded(container.NewCenter(s.button)),
		nil, nil, nil,
		s.result,
	))
	s.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	s.window.SetFixedSize(true)

	return s
}

func (s *FyneSurface) Update(text string) {
	s.label.SetText(text)
	s.result.Show()
}

// ShowError opens a modal dialog over the window; the window stays inert until it is dismissed.
func (s *FyneSurface) ShowError(title, message string) {
	s.dialogMessage = message

	content := widget.NewLabel(message)
	content.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustom(title, "OK", content, s.window)
	d.Resize(fyne.NewSize(dialogWidth, 0))
	d.Show()
}

func (s *FyneSurface) Render() {
	s.window.Content().Refresh()
}

// SetBusy disables the button while an analysis is running.
func (s *FyneSurface) SetBusy(busy bool) {
	if busy {
		s.button.Disable()
	} else {
		s.button.Enable()
	}
}

func (s *FyneSurface) Text() string {
	return s.label.Text
}

func (s *FyneSurface) Visible() bool {
	return s.result.Visible()
}

// DialogMessage returns the text of the last error dialog shown.
func (s *FyneSurface) DialogMessage() string {
	return s.dialogMessage
}
