package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cachekey/internal/app"
	"go.trai.ch/cachekey/internal/core/domain"
)

func (c *CLI) newDigestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Compute cache descriptors for every job in a job file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			jobs, _ := flags.GetString("jobs")
			params, _ := flags.GetString("params")
			root, _ := flags.GetString("root")
			hash, _ := flags.GetString("hash")
			format, _ := flags.GetString("format")
			out, _ := flags.GetString("output")
			workers, _ := flags.GetInt("workers")
			metrics, _ := flags.GetString("metrics-file")
			verbose, _ := flags.GetBool("verbose")
			logJSON, _ := flags.GetBool("log-json")

			return c.app.Run(cmd.Context(), app.RunOptions{
				JobsFile:    jobs,
				ParamsFile:  params,
				Root:        root,
				Algorithm:   domain.HashAlgorithm(hash),
				Format:      domain.OutputFormat(format),
				OutputFile:  out,
				Workers:     workers,
				MetricsFile: metrics,
				Verbose:     verbose,
				LogJSON:     logJSON,
			})
		},
	}

	f := cmd.Flags()
	f.StringP("jobs", "j", domain.JobsFileName, "Job file to read")
	f.StringP("params", "p", "", fmt.Sprintf("Build parameters file (default %q if present)", domain.ParametersFileName))
	f.StringP("root", "r", ".", "Directory that relative cache resources resolve against")
	f.String("hash", string(domain.HashSHA256), "Resource hash: "+joinValues(domain.HashAlgorithms()))
	f.StringP("format", "f", string(domain.FormatJSON), "Output format: "+joinValues(domain.OutputFormats()))
	f.StringP("output", "o", "", "Write jobs to this file instead of stdout")
	f.IntP("workers", "w", 1, "Number of jobs processed concurrently")
	f.String("metrics-file", "", "Write Prometheus metrics in textfile format to this path")
	f.BoolP("verbose", "v", false, "Log every cache descriptor as it is built")
	f.Bool("log-json", false, "Write logs as JSON")
	return cmd
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
