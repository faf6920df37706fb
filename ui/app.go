package ui

import (
	"context"
	"fmt"

	"github.com/fuelflow/meal-analyzer/llm"
	"github.com/fuelflow/meal-analyzer/logger"
	"github.com/fuelflow/meal-analyzer/model"
)

const (
	ErrorDialogTitle = "Error"
	PlaceholderText  = "Analysis will be shown here..."
)

// Surface is the part of the window the application writes results to.
type Surface interface {
	// Update replaces the displayed text and makes the result area visible
	Update(text string)
	// ShowError raises a modal error dialog
	ShowError(title, message string)
	// Render draws the current state
	Render()
}

// Analyzer runs one meal analysis
type Analyzer interface {
	Analyze(ctx context.Context) llm.Result
}

// App connects the analyze button to the result area. Surface updates happen
// only through Apply, which must be called from the goroutine that owns the surface.
type App struct {
	surface  Surface
	analyzer Analyzer
	state    model.State
	busy     bool
	results  chan llm.Result
}

func NewApp(surface Surface, analyzer Analyzer) *App {
	return &App{
		surface:  surface,
		analyzer: analyzer,
		state:    model.StateIdle,
		results:  make(chan llm.Result, 1),
	}
}

func (a *App) State() model.State {
	return a.state
}

// Busy reports whether a background analysis has not been applied yet
func (a *App) Busy() bool {
	return a.busy
}

// Results delivers the outcome of TriggerAsync; pass each one to Apply.
func (a *App) Results() <-chan llm.Result {
	return a.results
}

// Trigger runs the analysis on the calling goroutine and applies the result.
// It does not touch the in-flight state of TriggerAsync.
func (a *App) Trigger(ctx context.Context) {
	a.show(a.analyzer.Analyze(ctx))
}

// TriggerAsync starts the analysis in the background. The result arrives on
// Results. It returns false and does nothing while another analysis is running.
func (a *App) TriggerAsync(ctx context.Context) bool {
	if a.busy {
		logger.Debug("Analysis already running, ignoring trigger")
		return false
	}
	a.busy = true

	analyzer := a.analyzer
	go func() {
		a.results <- analyzer.Analyze(ctx)
	}()
	return true
}

// Apply takes a result from Results, ends the in-flight analysis and shows it.
func (a *App) Apply(result llm.Result) {
	a.busy = false
	a.show(result)
}

// show routes a result to the surface: text on success, an error dialog on failure.
func (a *App) show(result llm.Result) {
	if !result.OK() {
		a.surface.ShowError(ErrorDialogTitle, fmt.Sprintf("Error while analyzing image: %s", result.Err))
		return
	}

	a.surface.Update(result.Text)
	a.state = model.StateShowingResult
}
