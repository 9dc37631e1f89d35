// Package main provides the command-line interface for matchexport.
// It reads a saved DNA match-list page and writes its matches to a
// delimited text file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrjoshuak/matchexport"
	"github.com/mrjoshuak/matchexport/internal/config"
	"github.com/mrjoshuak/matchexport/internal/exporters"
	"github.com/mrjoshuak/matchexport/internal/runner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	inputFile := flag.String("input", "", "Saved match-list HTML file (or pass it as the first argument)")
	outputFile := flag.String("output", "", "Output file path (default: input name with .csv or .tsv)")
	configFile := flag.String("config", "", "Optional YAML or JSON settings file")
	delimiter := flag.String("delimiter", "", "Field delimiter: comma, tab, semicolon, pipe or a single character")
	timeout := flag.Duration("timeout", 0, "Timeout for extraction (default 30s)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "matchexport - Export DNA matches from a saved match-list page\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [input.html]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -input matches.html -output matches.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -delimiter tab matches.html\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config selectors.yaml -verbose matches.html\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		info := matchexport.GetBuildInfo()
		fmt.Printf("%s version %s (%s)\n", info.Name, info.Version, info.GoVersion)
		os.Exit(0)
	}

	input := *inputFile
	if input == "" && flag.NArg() > 0 {
		input = flag.Arg(0)
	}
	if input == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := matchexport.DefaultOptions()
	level := zerolog.InfoLevel
	output := *outputFile

	if *configFile != "" {
		fc, err := config.LoadFile(*configFile)
		if err != nil {
			log.Error().Err(err).Str("config", *configFile).Msg("load config failed")
			os.Exit(2)
		}
		if err := fc.Apply(&opts); err != nil {
			log.Error().Err(err).Str("config", *configFile).Msg("invalid config")
			os.Exit(2)
		}
		if level, err = fc.Level(level); err != nil {
			log.Error().Err(err).Str("config", *configFile).Msg("invalid config")
			os.Exit(2)
		}
		if output == "" {
			output = fc.Output
		}
	}

	// Flags override the settings file
	if *delimiter != "" {
		d, err := exporters.ParseDelimiter(*delimiter)
		if err != nil {
			log.Error().Err(err).Msg("invalid -delimiter")
			os.Exit(2)
		}
		opts.Delimiter = d
	}
	if *timeout > 0 {
		opts.Timeout = *timeout
	}
	if *verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if output == "" {
		output = defaultOutput(input, opts.Delimiter)
	}

	os.Exit(run(input, output, opts))
}

func run(input, output string, opts matchexport.ExtractionOptions) int {
	r := runner.New(runner.ConvertTask(
		matchexport.WithSelectors(opts.Selectors),
		matchexport.WithTimeout(opts.Timeout),
		matchexport.WithDelimiter(opts.Delimiter),
		matchexport.WithLogger(log.Logger),
	), log.Logger)

	if err := r.Start(context.Background(), runner.Job{InputPath: input, OutputPath: output}); err != nil {
		log.Error().Err(err).Msg("start failed")
		return 1
	}

	res := <-r.Results()
	if res.Status != runner.Success {
		fmt.Fprintln(os.Stderr, res.Message)
		return 1
	}
	fmt.Printf("Processed %s -> %s (%d matches)\n", input, output, res.Records)
	return 0
}

// defaultOutput replaces the input's extension with .csv, or .tsv for tab
// separated output.
func defaultOutput(input string, delimiter rune) string {
	ext := ".csv"
	if delimiter == '\t' {
		ext = ".tsv"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}
