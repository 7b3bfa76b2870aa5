package cli

import (
	"context"
	"fmt"

	"resumelens/internal/ai"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var tipsCmd = &cobra.Command{
	Use:   "tips [resume-file]",
	Short: "Get improvement tips for a resume",
	Long: `Generate improvement tips for a resume using the configured
text-generation service. Without an API key the tips fall back to the
built-in deterministic provider, which derives guidance from keyword
probes against the resume text.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if tipsConfig.OutputFormat == "" {
			tipsConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(tipsConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runTips,
}

var tipsConfig common.CommandConfig

func init() {
	tipsCmd.Flags().StringVarP(&tipsConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	tipsCmd.Flags().StringVarP(&tipsConfig.OutputFormat, "format", "f", "", "Output format: json, text, or markdown")

	_ = tipsCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runTips(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	// Create AI service for tips operation
	tipsAIConfig := cfg.GetTipsConfig()
	aiService, err := ai.NewService(&tipsAIConfig, "tips", logger)
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
		logger.Info("Starting resume tips generation",
			"resume_chars", len(resumeText),
			"output_format", cfg.OutputFormat)
	}

	tipsOperation := func(ctx context.Context, resumeText string) (types.ResumeTipsOutput, *ai.TokenUsage, error) {
		return aiService.GenerateResumeTips(ctx, resumeText)
	}

	err = common.RunAICommand(
		cmd.Context(),
		logger,
		tipsConfig,
		args,
		createInput,
		tipsOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to generate resume tips: %w", err)
	}
	logger.Info("Resume tips generation completed successfully")
	return nil
}
