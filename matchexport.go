package matchexport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mrjoshuak/matchexport/internal/exporters"
	"github.com/mrjoshuak/matchexport/internal/extractors"
	"github.com/rs/zerolog"
)

// Extractor defines the interface for match-list extraction.
type Extractor interface {
	// ExtractFromHTML extracts match records from an HTML string
	ExtractFromHTML(html string, options *ExtractionOptions) (*MatchList, error)

	// ExtractFromReader extracts match records from an io.Reader
	ExtractFromReader(r io.Reader, options *ExtractionOptions) (*MatchList, error)

	// ExtractFromFile extracts match records from a saved page on disk
	ExtractFromFile(ctx context.Context, path string, options *ExtractionOptions) (*MatchList, error)
}

// Option represents a function that modifies ExtractionOptions.
// This follows the functional options pattern for configuring the extractor.
type Option func(*ExtractionOptions)

// WithSelectors overrides where fields are looked up. Empty selectors keep
// their defaults, so a page layout change can be patched one field at a time.
func WithSelectors(selectors Selectors) Option {
	return func(o *ExtractionOptions) {
		o.Selectors = selectors.Merge(o.Selectors)
	}
}

// WithTimeout sets the timeout duration for extraction.
// This prevents extraction from hanging indefinitely on very large documents.
func WithTimeout(timeout time.Duration) Option {
	return func(o *ExtractionOptions) {
		o.Timeout = timeout
	}
}

// WithDelimiter sets the output field separator used by Export and Convert.
func WithDelimiter(delimiter rune) Option {
	return func(o *ExtractionOptions) {
		o.Delimiter = delimiter
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *ExtractionOptions) {
		o.Logger = logger
	}
}

// matchExtractor is the concrete implementation of the Extractor interface.
type matchExtractor struct {
	options ExtractionOptions
}

// New creates a new Extractor instance with the provided options.
//
// Example:
//
//	ext := matchexport.New(
//	    matchexport.WithTimeout(time.Minute),
//	    matchexport.WithSelectors(matchexport.Selectors{Entry: "div.match"}),
//	)
func New(opts ...Option) Extractor {
	return &matchExtractor{options: buildOptions(opts)}
}

func buildOptions(opts []Option) ExtractionOptions {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// ExtractFromHTML extracts match records from an HTML string.
func (e *matchExtractor) ExtractFromHTML(html string, options *ExtractionOptions) (*MatchList, error) {
	return e.extract(context.Background(), []byte(html), e.resolve(options))
}

// ExtractFromReader reads the entire content from r and extracts match
// records from it. Read failures are returned as *IOError.
func (e *matchExtractor) ExtractFromReader(r io.Reader, options *ExtractionOptions) (*MatchList, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, NewIOError("read", "input", err)
	}
	return e.extract(context.Background(), raw, e.resolve(options))
}

// ExtractFromFile reads the page at path and extracts match records from it.
// Read failures are returned as *IOError carrying the operating system error.
func (e *matchExtractor) ExtractFromFile(ctx context.Context, path string, options *ExtractionOptions) (*MatchList, error) {
	if path == "" {
		return nil, ErrNoInput
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, NewIOError("read", path, err)
	}
	return e.extract(ctx, raw, e.resolve(options))
}

func (e *matchExtractor) resolve(options *ExtractionOptions) *ExtractionOptions {
	if options == nil {
		return &e.options
	}
	return options
}

// extract runs the extraction in a goroutine and waits for it or the timeout.
func (e *matchExtractor) extract(ctx context.Context, raw []byte, options *ExtractionOptions) (*MatchList, error) {
	ext, err := extractors.NewMatchExtractor(options.Selectors, options.Logger)
	if err != nil {
		return nil, err
	}

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	if ctx.Err() != nil {
		return nil, contextError(ctx, options.Timeout)
	}

	type result struct {
		list *MatchList
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		doc, err := extractors.ParseDocument(raw)
		if err != nil {
			resultCh <- result{nil, err}
			return
		}
		list, err := ext.Extract(doc)
		resultCh <- result{list, err}
	}()

	select {
	case res := <-resultCh:
		return res.list, res.err
	case <-ctx.Done():
		return nil, contextError(ctx, options.Timeout)
	}
}

func contextError(ctx context.Context, timeout time.Duration) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w after %v", ErrTimeout, timeout)
	}
	return ctx.Err()
}

// Export writes a header row and one row per record to outputPath, replacing
// any existing file. The Test_Name column of every row is testName. Write
// failures are returned as *IOError and leave outputPath untouched.
func Export(testName string, records []MatchRecord, outputPath string, options *ExtractionOptions) error {
	if options == nil {
		defaults := DefaultOptions()
		options = &defaults
	}
	delimiter := options.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}
	err := exporters.WriteFile(outputPath, testName, records, delimiter)
	if err != nil {
		return err
	}
	options.Logger.Debug().
		Str("output", outputPath).
		Int("records", len(records)).
		Msg("wrote match list")
	return nil
}

// Convert extracts the page at inputPath and exports it to outputPath. The
// output file is only created once extraction has succeeded, so a page
// without an owner name never produces a file.
func Convert(ctx context.Context, inputPath, outputPath string, opts ...Option) (*MatchList, error) {
	options := buildOptions(opts)
	ext := &matchExtractor{options: options}

	list, err := ext.ExtractFromFile(ctx, inputPath, nil)
	if err != nil {
		return nil, err
	}
	if err := Export(list.TestName, list.Records, outputPath, &options); err != nil {
		return nil, err
	}
	return list, nil
}
