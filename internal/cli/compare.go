package cli

import (
	"context"
	"fmt"

	"resumelens/internal/analysis"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [resume-file]",
	Short: "Compare a resume against a target job",
	Long: `Compare a resume's skill profile against one of the built-in target
jobs. The comparison reports a match percentage, matching and missing skills,
an inferred experience level and a per-skill checklist with learning
resources for the gaps.

Use the 'jobs' command to list available target job titles.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if compareConfig.OutputFormat == "" {
			compareConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(compareConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runCompare,
}

var compareConfig common.CommandConfig
var compareJobTitle string

func init() {
	compareCmd.Flags().StringVarP(&compareConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	compareCmd.Flags().StringVarP(&compareConfig.OutputFormat, "format", "f", "", "Output format: json, text, or markdown")
	compareCmd.Flags().StringVarP(&compareJobTitle, "job", "j", "", "Target job title (see 'resumelens jobs')")
	_ = compareCmd.MarkFlagRequired("job")

	_ = compareCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runCompare(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(resumeText string, cfg common.CommandConfig) {
		logger.Info("Starting target job comparison",
			"job_title", compareJobTitle,
			"resume_chars", len(resumeText),
			"output_format", cfg.OutputFormat)
	}

	compareOperation := func(ctx context.Context, resumeText string) (types.TargetJobComparison, error) {
		skills, err := analysis.ExtractSkills(resumeText)
		if err != nil {
			return types.TargetJobComparison{}, err
		}
		return analysis.CompareWithTargetJob(compareJobTitle, skills)
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		compareConfig,
		args,
		createInput,
		compareOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to compare against target job: %w", err)
	}
	logger.Info("Target job comparison completed successfully")
	return nil
}
