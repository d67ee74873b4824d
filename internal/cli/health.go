package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/vocify/internal/model"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newHighScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "highscore",
		Short: "Show the server's high score",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HighScore

			if err := client.Get("/api/v1/highscore", &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show how to play",
		RunE: func(cmd *cobra.Command, args []string) error {
			newOutput(cmd).Print(Rules{Text: model.Instructions})
			return nil
		},
	}
}
