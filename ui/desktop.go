package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"github.com/fuelflow/meal-analyzer/logger"
)

// Desktop runs the meal analysis window on a fyne app. Analyses run in the
// background and their results are handed back to the UI goroutine.
type Desktop struct {
	app     *App
	surface *FyneSurface
	ctx     context.Context
	// deliver runs fn on the UI goroutine
	deliver func(fn func())
}

func NewDesktop(fyneApp fyne.App, analyzer Analyzer) *Desktop {
	d := &Desktop{
		ctx:     context.Background(),
		deliver: fyne.Do,
	}
	d.surface = NewFyneSurface(fyneApp, d.analyze)
	d.app = NewApp(d.surface, analyzer)
	return d
}

// Run shows the window and blocks until it is closed or ctx is cancelled.
func (d *Desktop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d.ctx = ctx
	go d.pump(ctx)

	d.surface.window.ShowAndRun()
	return nil
}

// analyze is the button handler; it runs on the UI goroutine.
func (d *Desktop) analyze() {
	if d.app.TriggerAsync(d.ctx) {
		d.surface.SetBusy(true)
	}
}

// pump forwards background results to the UI goroutine until ctx ends,
// then closes the window.
func (d *Desktop) pump(ctx context.Context) {
	for {
		select {
		case result := <-d.app.Results():
			d.deliver(func() {
				d.app.Apply(result)
				d.surface.SetBusy(false)
				d.surface.Render()
			})
		case <-ctx.Done():
			logger.Debug("Closing meal analysis window")
			d.deliver(d.surface.window.Close)
			return
		}
	}
}
