package ui

import (
	"context"
	"strings"

	"github.com/fuelflow/meal-analyzer/llm"
	"github.com/fuelflow/meal-analyzer/logger"
)

// LineReader is the input side of the window. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Window is the event loop: it turns input lines into button presses and
// applies background results to the surface on its own goroutine.
type Window struct {
	app     *App
	surface *TerminalSurface
	input   LineReader
}

func NewWindow(app *App, surface *TerminalSurface, input LineReader) *Window {
	return &Window{app: app, surface: surface, input: input}
}

// Run draws the window and processes input until the user quits, input ends
// or ctx is cancelled. An analysis still running when input ends is awaited.
func (w *Window) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	go func() {
		defer close(lines)
		for {
			line, err := w.input.Readline()
			if err != nil {
				logger.Debugf("Input closed: %v", err)
				return
			}
			select {
			case lines <- line:
			case <-done:
				return
			}
		}
	}()

	w.surface.Render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case result := <-w.app.Results():
			w.apply(result)

		case line, ok := <-lines:
			if !ok {
				return w.drain(ctx)
			}
			if quit := w.handle(ctx, line); quit {
				return nil
			}
		}
	}
}

func (w *Window) handle(ctx context.Context, line string) bool {
	if w.surface.DialogOpen() {
		w.surface.DismissDialog()
		w.surface.Render()
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "a", "analyze", "analyze meal":
		if w.app.TriggerAsync(ctx) {
			w.surface.SetStatus("Analyzing meal...")
		} else {
			w.surface.SetStatus("Analysis already running...")
		}
	case "q", "quit", "exit":
		return true
	default:
		w.surface.SetStatus("Press Enter to analyze, q to quit")
	}
	w.surface.Render()
	return false
}

func (w *Window) apply(result llm.Result) {
	w.app.Apply(result)
	w.surface.SetStatus("")
	w.surface.Render()
}

func (w *Window) drain(ctx context.Context) error {
	if !w.app.Busy() {
		return nil
	}
	select {
	case result := <-w.app.Results():
		w.apply(result)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
