package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var coachCmd = &cobra.Command{
	Use:   "coach [resume-file]",
	Short: "Get structured career coaching for a resume",
	Long: `Analyze a resume with the configured text-generation service and
produce structured career guidance:
- Suitable job titles for the current profile
- Per-title skill gaps, split into required and preferred
- Concrete resume improvements
- An overall assessment

Without an API key the analysis falls back to the built-in deterministic
provider.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if coachConfig.OutputFormat == "" {
			coachConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(coachConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runCoach,
}

var coachConfig common.CommandConfig

func init() {
	coachCmd.Flags().StringVarP(&coachConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	coachCmd.Flags().StringVarP(&coachConfig.OutputFormat, "format", "f", "", "Output format: json, text, or markdown")

	_ = coachCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runCoach(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Create AI service for coach operation
	coachAIConfig := cfg.GetCoachConfig()
	aiService, err := ai.NewService(&coachAIConfig, "coach", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(resumeText string, cfg common.CommandConfig) {
		logger.Info("Starting career coach analysis",
			"resume_chars", len(resumeText),
			"output_format", cfg.OutputFormat)
	}

	coachOperation := func(ctx context.Context, resumeText string) (types.CareerCoachAnalysis, *ai.TokenUsage, error) {
		return aiService.GenerateCareerCoachAnalysis(ctx, resumeText)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		coachConfig,
		args,
		createInput,
		coachOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to run career coach analysis: %w", err)
	}
	logger.Info("Career coach analysis completed successfully")
	return nil
}
