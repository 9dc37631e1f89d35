// Package runner executes one extract-and-export job at a time in the
// background and hands each outcome back to the caller over a channel.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mrjoshuak/matchexport/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrBusy is returned by Start while a job is still running.
var ErrBusy = errors.New("an export is already running")

// Job names the input page and the output file of one run.
type Job struct {
	InputPath  string
	OutputPath string
}

// Status is the outcome of a job.
type Status int

const (
	Success Status = iota
	Failure
)

func (s Status) String() string {
	if s == Success {
		return "success"
	}
	return "failure"
}

// Result reports a finished job.
type Result struct {
	Job      Job
	Status   Status
	Message  string
	Err      error
	Records  int
	Duration time.Duration
}

// Task does the actual work for a job and returns the number of records
// written.
type Task func(ctx context.Context, job Job) (int, error)

// Runner runs at most one Task at a time.
type Runner struct {
	task    Task
	busy    atomic.Bool
	results chan Result
	logger  zerolog.Logger

	// published is closed once the latest accepted job has sent its result.
	// Only Start writes it, and only while holding busy.
	published chan struct{}
}

// New returns a Runner for task. Results are delivered on Results; the
// caller must receive each one before the next job's result can be sent.
func New(task Task, logger zerolog.Logger) *Runner {
	published := make(chan struct{})
	close(published)
	return &Runner{
		task:      task,
		results:   make(chan Result, 1),
		logger:    logger,
		published: published,
	}
}

// Results returns the channel that receives one Result per started job.
func (r *Runner) Results() <-chan Result {
	return r.results
}

// Start runs job in the background. It returns ErrBusy without starting
// anything if another job is still running, and types.ErrNoInput if the job
// has no input path. ctx is passed to the task and is not used to abort it
// once started.
func (r *Runner) Start(ctx context.Context, job Job) error {
	if job.InputPath == "" {
		return types.ErrNoInput
	}
	if !r.busy.CompareAndSwap(false, true) {
		r.logger.Debug().Str("input", job.InputPath).Msg("start rejected, job running")
		return ErrBusy
	}

	prev, done := r.published, make(chan struct{})
	r.published = done

	var res Result
	var g errgroup.Group
	g.Go(func() error {
		res = r.run(ctx, job)
		return nil
	})

	go func() {
		_ = g.Wait()
		// Free the slot first so a caller reacting to the result can start
		// the next job; results still go out in start order.
		r.busy.Store(false)
		<-prev
		r.results <- res
		close(done)
	}()
	return nil
}

func (r *Runner) run(ctx context.Context, job Job) Result {
	start := time.Now()
	log := r.logger.With().Str("input", job.InputPath).Str("output", job.OutputPath).Logger()
	log.Info().Msg("export started")

	n, err := r.task(ctx, job)
	res := Result{Job: job, Records: n, Err: err, Duration: time.Since(start)}
	if err != nil {
		res.Status = Failure
		res.Message = fmt.Sprintf("An error occurred: %v", err)
		log.Error().Err(err).Dur("elapsed", res.Duration).Msg("export failed")
		return res
	}

	res.Status = Success
	res.Message = fmt.Sprintf("Data has been successfully saved to %s", job.OutputPath)
	log.Info().Int("records", n).Dur("elapsed", res.Duration).Msg("export finished")
	return res
}
