package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/windfall/pitch_service/internal/client"
	"github.com/windfall/pitch_service/internal/config"
	"github.com/windfall/pitch_service/internal/logger"
	"github.com/windfall/pitch_service/internal/service"
)

func analyzeCmd() *cobra.Command {
	var (
		transcript string
		audioRef   string
		baseURL    string
		model      string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a pitch transcript (use --transcript - to read stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.OpenAIBaseURL = baseURL
			}
			if model != "" {
				cfg.FeedbackModel = model
			}

			if transcript == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read transcript from stdin: %w", err)
				}
				transcript = string(data)
			}

			// Logs go to stderr so stdout stays machine-readable.
			log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

			chat := client.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, nil).WithModel(cfg.FeedbackModel)
			svc := service.NewFeedbackService(chat, service.FeedbackConfig{
				Temperature: cfg.FeedbackTemperature,
				Timeout:     cfg.FeedbackTimeout,
			}, log)

			analysis := svc.AnalyzePitch(cmd.Context(), audioRef, transcript)
			return writeJSON(cmd.OutOrStdout(), analysis, pretty)
		},
	}

	cmd.Flags().StringVarP(&transcript, "transcript", "t", "", "pitch transcript text; empty uses the placeholder transcript")
	cmd.Flags().StringVarP(&audioRef, "audio", "a", "", "reference to the recorded audio (logged only)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "override OPENAI_BASE_URL")
	cmd.Flags().StringVar(&model, "model", "", "override FEEDBACK_MODEL")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")

	return cmd
}

func fallbackCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "fallback",
		Short: "Print the canonical fallback feedback record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeJSON(cmd.OutOrStdout(), service.FallbackFeedback(), pretty)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")

	return cmd
}
