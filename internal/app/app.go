// Package app implements the application layer for cachekey.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/cachekey/internal/adapters/telemetry"
	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports"
	"go.trai.ch/cachekey/internal/engine/transform"
	"go.trai.ch/zerr"
)

// App computes cache descriptors for a job file.
type App struct {
	jobLoader   ports.JobLoader
	paramLoader ports.ParameterLoader
	hashers     ports.HasherFactory
	writer      ports.JobWriter
	builder     *transform.Builder
	metrics     *telemetry.Metrics
	logger      ports.Logger
	stdout      io.Writer
}

// New creates a new App instance.
func New(
	jobLoader ports.JobLoader,
	paramLoader ports.ParameterLoader,
	hashers ports.HasherFactory,
	writer ports.JobWriter,
	builder *transform.Builder,
	metrics *telemetry.Metrics,
	log ports.Logger,
) *App {
	return &App{
		jobLoader:   jobLoader,
		paramLoader: paramLoader,
		hashers:     hashers,
		writer:      writer,
		builder:     builder,
		metrics:     metrics,
		logger:      log,
		stdout:      os.Stdout,
	}
}

// WithStdout sets the writer used when no output file is given.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configures a digest run.
type RunOptions struct {
	// JobsFile is the job file to read.
	JobsFile string
	// ParamsFile is the parameters file. When empty, parameters.yml in the
	// working directory is used if it exists, otherwise only the environment.
	ParamsFile string
	// Root is the directory relative resources resolve against.
	Root string
	// Algorithm selects the resource hash.
	Algorithm domain.HashAlgorithm
	// Format selects the output encoding.
	Format domain.OutputFormat
	// OutputFile receives the transformed jobs; stdout when empty.
	OutputFile string
	// Workers bounds concurrent descriptor builds.
	Workers int
	// MetricsFile receives a Prometheus textfile when set.
	MetricsFile string
	// Verbose logs a line for every descriptor built.
	Verbose bool
	// LogJSON switches the logger to JSON.
	LogJSON bool
}

func (o *RunOptions) applyDefaults() {
	if o.JobsFile == "" {
		o.JobsFile = domain.JobsFileName
	}
	if o.ParamsFile == "" {
		if _, err := os.Stat(domain.ParametersFileName); err == nil {
			o.ParamsFile = domain.ParametersFileName
		}
	}
	if o.Root == "" {
		o.Root = "."
	}
	if o.Algorithm == "" {
		o.Algorithm = domain.HashSHA256
	}
	if o.Format == "" {
		o.Format = domain.FormatJSON
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
}

// Run loads the jobs and parameters, attaches a cache descriptor to every job
// and writes the result.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if j, ok := a.logger.(interface{ SetJSON(enable bool) }); ok {
		j.SetJSON(opts.LogJSON)
	}

	opts.applyDefaults()
	if !opts.Format.Valid() {
		return errors.Join(domain.ErrDigestFailed, domain.ErrUnknownOutputFormat, zerr.With(domain.ErrUnknownOutputFormat, "format", string(opts.Format)))
	}

	if opts.Verbose {
		shutdown := telemetry.Install(a.logger)
		defer func() {
			_ = shutdown(context.WithoutCancel(ctx))
		}()
	}

	if err := a.digest(ctx, opts); err != nil {
		return errors.Join(domain.ErrDigestFailed, err)
	}
	return nil
}

func (a *App) digest(ctx context.Context, opts RunOptions) error {
	params, err := a.paramLoader.Load(opts.ParamsFile)
	if err != nil {
		return err
	}

	jobs, err := a.jobLoader.Load(opts.JobsFile)
	if err != nil {
		return err
	}

	hasher, err := a.hashers.NewPathHasher(opts.Root, opts.Algorithm)
	if err != nil {
		return err
	}

	seq := transform.NewSequence(a.builder.AddCache)
	out, err := seq.Apply(ctx, transform.Config{
		Params:  params,
		Hasher:  hasher,
		Workers: opts.Workers,
	}, jobs)
	if err != nil {
		return err
	}

	if err := a.write(out, opts); err != nil {
		return err
	}

	if opts.MetricsFile != "" {
		if err := a.metrics.WriteTextfile(opts.MetricsFile); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) write(jobs []domain.Job, opts RunOptions) error {
	if opts.OutputFile == "" {
		return a.writer.Write(a.stdout, jobs, opts.Format)
	}

	var buf bytes.Buffer
	if err := a.writer.Write(&buf, jobs, opts.Format); err != nil {
		return err
	}
	if err := os.WriteFile(opts.OutputFile, buf.Bytes(), domain.FilePerm); err != nil {
		return errors.Join(domain.ErrOutputWriteFailed, zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", opts.OutputFile))
	}
	a.logger.Info(fmt.Sprintf("wrote %d jobs to %s", len(jobs), opts.OutputFile))
	return nil
}
