// Package main starts the matchexport desktop application.
package main

import (
	"flag"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/mrjoshuak/matchexport"
	"github.com/mrjoshuak/matchexport/internal/config"
	"github.com/mrjoshuak/matchexport/internal/gui"
	"github.com/mrjoshuak/matchexport/internal/runner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	AppID   = "io.github.mrjoshuak.matchexport"
	AppName = "Ancestry HTML Parser"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	configFile := flag.String("config", "", "Optional YAML or JSON settings file")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	opts := matchexport.DefaultOptions()
	level := zerolog.InfoLevel
	if *configFile != "" {
		fc, err := config.LoadFile(*configFile)
		if err == nil {
			err = fc.Apply(&opts)
		}
		if err == nil {
			level, err = fc.Level(level)
		}
		if err != nil {
			log.Fatal().Err(err).Str("config", *configFile).Msg("invalid config")
		}
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	task := runner.ConvertTask(
		matchexport.WithSelectors(opts.Selectors),
		matchexport.WithTimeout(opts.Timeout),
		matchexport.WithDelimiter(opts.Delimiter),
		matchexport.WithLogger(log.Logger),
	)

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(600, 400))

	ui := gui.New(window, task, log.Logger)
	window.SetContent(ui.Content())
	window.ShowAndRun()
}
