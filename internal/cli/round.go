package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoSession = errors.New("no active session: run 'vocify round start' first")

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Play a round on the server",
	}

	cmd.AddCommand(newRoundStartCmd())
	cmd.AddCommand(newRoundShowCmd())
	cmd.AddCommand(newRoundRestartCmd())
	cmd.AddCommand(newRoundSubmitCmd())
	cmd.AddCommand(newRoundHintCmd())
	cmd.AddCommand(newRoundEndCmd())

	return cmd
}

func sessionPath(suffix string) (string, error) {
	if cfg.SessionID == "" {
		return "", errNoSession
	}
	return fmt.Sprintf("/api/v1/sessions/%s%s", cfg.SessionID, suffix), nil
}

func newRoundStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new session and round",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post("/api/v1/sessions", nil, &result); err != nil {
				return err
			}

			if err := cfg.SaveSession(result.SessionID); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newRoundShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current round",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("")
			if err != nil {
				return err
			}

			var result Session
			if err := client.Get(path, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newRoundRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Start over with a new root word",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/restart")
			if err != nil {
				return err
			}

			var result Round
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newRoundSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <word>",
		Short: "Submit a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/words")
			if err != nil {
				return err
			}

			var result SubmitResult
			body := map[string]string{"word": args[0]}
			if err := client.Post(path, body, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newRoundHintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hint",
		Short: "Get a hint for the current round",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("/hint")
			if err != nil {
				return err
			}

			var result Hint
			if err := client.Get(path, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result)
			return nil
		},
	}
}

func newRoundEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := sessionPath("")
			if err != nil {
				return err
			}

			if err := client.Delete(path); err != nil {
				var apiErr *APIError
				if !errors.As(err, &apiErr) || apiErr.Code != "SESSION_NOT_FOUND" {
					return err
				}
			}

			if err := cfg.ClearSession(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}

			newOutput(cmd).PrintMessage("Session ended")
			return nil
		},
	}
}
