package cli

import (
	"fmt"

	"resumelens/internal/catalog"
	"resumelens/internal/common"
	"resumelens/internal/errors"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the available target jobs",
	Long: `List the target jobs available for the 'compare' command, ordered by
popularity. Use --format json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runJobs,
}

var jobsFormat string

func init() {
	jobsCmd.Flags().StringVarP(&jobsFormat, "format", "f", "", "Output format: json for machine-readable output")
}

func runJobs(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	jobs := catalog.AvailableJobs()

	if jobsFormat == "json" {
		outputHandler := common.NewOutputHandler(logger)
		return outputHandler.HandleOutput(jobs, common.CommandConfig{OutputFormat: "json"})
	}
	if jobsFormat != "" && jobsFormat != "text" {
		return errors.NewValidationError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("Unsupported format for jobs: %s", jobsFormat), nil)
	}

	fmt.Printf("Available target jobs (%d):\n", len(jobs))
	for _, job := range jobs {
		fmt.Printf("  %-35s %s (popularity %d)\n", job.Title, job.Category, job.Popularity)
	}
	return nil
}
