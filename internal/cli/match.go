package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/analysis"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-description-file]",
	Short: "Score a resume against a job description like an ATS would",
	Long: `Run a deterministic ATS-style analysis of a resume against a job
description. The report includes an overall score with a per-dimension
breakdown, keyword and skill overlap, title alignment, format checks and
concrete recommendations.

With --external the report is augmented by an independent score from the
configured text-generation service. External failures are recorded inside
the report and never abort the deterministic analysis.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig
var matchExternal bool

// matchInput carries the two documents of an ATS match
type matchInput struct {
	ResumeText     string
	JobDescription string
}

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVarP(&matchConfig.OutputFormat, "format", "f", "", "Output format: json, text, or markdown")
	matchCmd.Flags().BoolVar(&matchExternal, "external", false, "Augment the report with an independent external score")

	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// The AI service is only needed when an external score was requested
	var aiService *ai.Service
	if matchExternal {
		atsAIConfig := cfg.GetATSReviewConfig()
		var err error
		aiService, err = ai.NewService(&atsAIConfig, "atsreview", logger)
		if err != nil {
			return fmt.Errorf("failed to create AI service: %w", err)
		}
	}

	createInput := func(contents []string) (matchInput, error) {
		if len(contents) != 2 {
			return matchInput{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return matchInput{
			ResumeText:     contents[0],
			JobDescription: contents[1],
		}, nil
	}

	logDetails := func(input matchInput, cfg common.CommandConfig) {
		logger.Info("Starting ATS match analysis",
			"resume_chars", len(input.ResumeText),
			"job_chars", len(input.JobDescription),
			"external", matchExternal,
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input matchInput) (types.ATSMatchResult, error) {
		result := analysis.AnalyzeMatch(input.ResumeText, input.JobDescription)
		if aiService != nil {
			result.ExternalAnalysis = aiService.ExternalAnalysis(ctx, input.ResumeText, input.JobDescription)
		}
		return result, nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to run ATS match analysis: %w", err)
	}
	logger.Info("ATS match analysis completed successfully")
	return nil
}
