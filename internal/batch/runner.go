package batch

import "io"
import "os"
import "context"
import "strconv"
import "path/filepath"

import "github.com/oklog/ulid/v2"
import "github.com/sirupsen/logrus"
import "golang.org/x/sync/errgroup"

import "github.com/tinne26/memetxt"
import "github.com/tinne26/memetxt/codec"

var discardLogger = newDiscardLogger()
func newDiscardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// The outcome of a rendered job.
type Outcome struct {
	Job      int // index in the manifest
	Output   string
	Warnings []error
}

// Renders manifests. Runners are stateless besides their configuration
// and can run several manifests at the same time.
type Runner struct {
	Renderer *memetxt.Renderer
	Workers  int // max concurrent jobs, non-positive means 1
	Logger   logrus.FieldLogger // nil for no logging
}

// Error for a job that failed, wrapping the cause.
type JobError struct {
	Job   int
	Input string
	Err   error
}

func (self *JobError) Error() string {
	return "batch: job #" + strconv.Itoa(self.Job) + " (" + self.Input + "): " + self.Err.Error()
}

func (self *JobError) Unwrap() error { return self.Err }

// Renders all the jobs of the manifest. The first failing job cancels
// the jobs not started yet, and its error is returned as a [*JobError].
// Outcomes are returned in manifest order; entries for jobs that
// didn't complete are left zero.
func (self *Runner) Run(ctx context.Context, manifest *Manifest) ([]Outcome, error) {
	outDir := manifest.outputDir()
	err := os.MkdirAll(outDir, 0755)
	if err != nil { return nil, err }

	logger := self.Logger
	if logger == nil { logger = discardLogger }

	outcomes := make([]Outcome, len(manifest.Jobs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(self.Workers, 1))
	for i := range manifest.Jobs {
		if ctx.Err() != nil { break }
		index := i
		group.Go(func() error {
			if ctx.Err() != nil { return ctx.Err() }
			outcome, err := self.runJob(ctx, manifest, index, outDir)
			if err != nil {
				return &JobError{ Job: index, Input: manifest.Jobs[index].Input, Err: err }
			}
			outcomes[index] = outcome
			logger.WithFields(logrus.Fields{
				"job": index, "output": outcome.Output, "warnings": len(outcome.Warnings),
			}).Info("meme rendered")
			return nil
		})
	}
	err = group.Wait()
	return outcomes, err
}

func (self *Runner) runJob(ctx context.Context, manifest *Manifest, index int, outDir string) (Outcome, error) {
	job := &manifest.Jobs[index]
	img, err := codec.DecodeFile(manifest.resolve(job.Input))
	if err != nil { return Outcome{}, err }
	request, err := job.Meme.Request(img)
	if err != nil { return Outcome{}, err }
	result, err := self.Renderer.RenderContext(ctx, request)
	if err != nil { return Outcome{}, err }

	var output string
	var format codec.Format
	if job.Output != "" {
		output = manifest.resolve(job.Output)
		format, err = codec.FormatFromPath(output)
	} else {
		format, err = codec.ParseFormat(manifest.Format)
		output = filepath.Join(outDir, ulid.Make().String() + format.Extension())
	}
	if err != nil { return Outcome{}, err }

	err = writeImage(output, result, format, manifest.Quality)
	if err != nil { return Outcome{}, err }
	return Outcome{ Job: index, Output: output, Warnings: result.Warnings }, nil
}

func writeImage(path string, result *memetxt.Result, format codec.Format, quality int) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil { return err }
	file, err := os.Create(path)
	if err != nil { return err }
	err = codec.Encode(file, result.Image, format, quality)
	if err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
