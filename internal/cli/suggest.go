package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"resumelens/internal/analysis"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [resume-file]",
	Short: "Suggest job roles matching a resume's skill profile",
	Long: `Suggest job roles for a resume. Skills are extracted from the resume
text and ranked against the role catalog; the top matches are returned with
match percentages, missing skills and market insights.

Company names, locations and market trends in the output are synthesized
for display.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if suggestConfig.OutputFormat == "" {
			suggestConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(suggestConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSuggest,
}

var suggestConfig common.CommandConfig

func init() {
	suggestCmd.Flags().StringVarP(&suggestConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	suggestCmd.Flags().StringVarP(&suggestConfig.OutputFormat, "format", "f", "", "Output format: json, text, or markdown")

	_ = suggestCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSuggest(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(resumeText string, cfg common.CommandConfig) {
		logger.Info("Starting job role suggestion",
			"resume_chars", len(resumeText),
			"output_format", cfg.OutputFormat)
	}

	suggester := analysis.NewSuggester(rand.New(rand.NewSource(time.Now().UnixNano())))

	suggestOperation := func(ctx context.Context, resumeText string) (types.JobSuggestionResult, error) {
		skills, err := analysis.ExtractSkills(resumeText)
		if err != nil {
			return types.JobSuggestionResult{}, err
		}
		return suggester.SuggestJobRoles(skills), nil
	}

	err := common.RunCommand(
		cmd.Context(),
		logger,
		suggestConfig,
		args,
		createInput,
		suggestOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to suggest job roles: %w", err)
	}
	logger.Info("Job role suggestion completed successfully")
	return nil
}
