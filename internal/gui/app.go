// Package gui is the desktop front end: pick a saved match-list page, pick
// where to save the spreadsheet, and run the export in the background.
package gui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/mrjoshuak/matchexport/internal/runner"
	"github.com/rs/zerolog"
)

type state int

const (
	stateIdle    state = iota // no input selected
	stateReady                // input selected, Start enabled
	stateRunning              // export in progress
)

// App holds the window's widgets and the selected input. All fields are
// owned by the UI goroutine; results from the worker arrive through dispatch.
type App struct {
	window   fyne.Window
	runner   *runner.Runner
	logger   zerolog.Logger
	dispatch func(func())
	notify   func(runner.Result)

	state     state
	inputPath string

	selectedLabel *widget.Label
	statusLabel   *widget.Label
	openButton    *widget.Button
	startButton   *widget.Button
	content       fyne.CanvasObject
}

// New builds the UI for window and starts listening for results of task.
func New(window fyne.Window, task runner.Task, logger zerolog.Logger) *App {
	return newApp(window, task, logger, fyne.Do)
}

func newApp(window fyne.Window, task runner.Task, logger zerolog.Logger, dispatch func(func())) *App {
	a := &App{
		window:   window,
		runner:   runner.New(task, logger),
		logger:   logger,
		dispatch: dispatch,
	}
	a.notify = a.showResult

	a.openButton = widget.NewButton("Open HTML File", a.openInput)
	a.startButton = widget.NewButton("Start", a.start)
	a.selectedLabel = widget.NewLabel("Selected HTML file:")
	a.selectedLabel.Wrapping = fyne.TextWrapBreak
	a.statusLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	a.content = container.NewVBox(a.openButton, a.selectedLabel, a.startButton, a.statusLabel)
	a.setState(stateIdle)

	go a.listen()
	return a
}

// Content returns the root widget for the window.
func (a *App) Content() fyne.CanvasObject {
	return a.content
}

func (a *App) listen() {
	for res := range a.runner.Results() {
		a.dispatch(func() { a.finish(res) })
	}
}

func (a *App) setState(s state) {
	a.state = s
	switch s {
	case stateIdle:
		a.openButton.Enable()
		a.startButton.Disable()
	case stateReady:
		a.openButton.Enable()
		a.startButton.Enable()
	case stateRunning:
		a.openButton.Disable()
		a.startButton.Disable()
	}
}

func (a *App) openInput() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.selectInput(path)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".html", ".htm"}))
	d.Show()
}

func (a *App) selectInput(path string) {
	if a.state == stateRunning {
		return
	}
	a.inputPath = path
	a.selectedLabel.SetText("Selected file: " + path)
	a.statusLabel.SetText("")
	a.setState(stateReady)
}

func (a *App) start() {
	if a.state != stateReady {
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			a.statusLabel.SetText("Data export canceled.")
			dialog.ShowInformation("Information", "Data export canceled.", a.window)
			return
		}
		path := writer.URI().Path()
		writer.Close()
		a.startJob(path)
	}, a.window)
	d.SetFileName(suggestedOutput(a.inputPath))
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".tsv"}))
	d.Show()
}

func (a *App) startJob(outputPath string) {
	job := runner.Job{InputPath: a.inputPath, OutputPath: outputPath}
	if err := a.runner.Start(context.Background(), job); err != nil {
		if errors.Is(err, runner.ErrBusy) {
			a.logger.Debug().Msg("start ignored, export already running")
			return
		}
		a.statusLabel.SetText(err.Error())
		return
	}
	a.statusLabel.SetText("Processing...")
	a.setState(stateRunning)
}

func (a *App) finish(res runner.Result) {
	if res.Status == runner.Success {
		a.statusLabel.SetText("Completed!")
	} else {
		discardPlaceholder(res.Job.OutputPath)
		a.statusLabel.SetText("Failed")
	}
	a.setState(stateReady)
	a.notify(res)
}

func (a *App) showResult(res runner.Result) {
	if res.Status == runner.Success {
		dialog.ShowInformation("Information", res.Message, a.window)
		return
	}
	dialog.ShowError(errors.New(res.Message), a.window)
}

// discardPlaceholder removes the empty file the save dialog leaves behind
// when the export then fails. The dialog creates or truncates the chosen file
// when it opens it, so an earlier export at that path is already gone.
func discardPlaceholder(path string) {
	if path == "" {
		return
	}
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() && info.Size() == 0 {
		os.Remove(path)
	}
}

func suggestedOutput(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".csv"
}
