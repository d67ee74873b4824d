package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/mcoot/vocify/internal/factory"
	"github.com/mcoot/vocify/internal/model"
	"github.com/mcoot/vocify/internal/services/round"
)

// Commands understood at the play prompt
const (
	cmdRestart = ":restart"
	cmdHint    = ":hint"
	cmdMissed  = ":missed"
	cmdRules   = ":rules"
	cmdQuit    = ":quit"
)

func newPlayCmd() *cobra.Command {
	var (
		dictionaryPath string
		wordPoolPath   string
		noColor        bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a local game in the terminal",
		Long: `Play a round against the built-in word lists.

Type words formed from the root word's letters. Prompt commands:
  :hint     show a hint
  :missed   list the words that were not accepted
  :restart  start a new round with a new root word
  :rules    show the rules
  :quit     leave the game`,
		RunE: func(cmd *cobra.Command, args []string) error {
			factoryCfg := factory.Config{
				DictionaryPath: dictionaryPath,
				WordPoolPath:   wordPoolPath,
				Logger:         cliLogger(cmd.ErrOrStderr()),
				StorageType:    factory.StorageTypeSQLite,
				SQLitePath:     cfg.DBPath,
			}
			if cfg.Ephemeral {
				factoryCfg.StorageType = factory.StorageTypeMemory
			}

			app, err := factory.New(factoryCfg)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			if err := app.Load(cmd.Context(), factoryCfg); err != nil {
				return err
			}

			game := NewGame(app.NewEngine(), cmd.OutOrStdout(), !noColor)
			return game.Run(cmd.Context(), cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "Local database for the high score (env: VOCIFY_DB)")
	cmd.Flags().BoolVar(&cfg.Ephemeral, "ephemeral", false, "Keep the high score in memory only")
	cmd.Flags().StringVar(&dictionaryPath, "dictionary", "", "Dictionary word list file")
	cmd.Flags().StringVar(&wordPoolPath, "roots", "", "Root word list file")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func cliLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Game is an interactive round played over a reader and writer
type Game struct {
	engine *round.Engine
	out    io.Writer
	colors bool
}

// NewGame creates a game around an idle engine
func NewGame(engine *round.Engine, out io.Writer, colors bool) *Game {
	return &Game{engine: engine, out: out, colors: colors}
}

// Run starts a round and reads words until :quit or end of input
func (g *Game) Run(ctx context.Context, in io.Reader) error {
	if err := g.start(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(g.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		quit, err := g.handle(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	g.summary()
	return nil
}

// handle processes one line of input and reports whether to stop
func (g *Game) handle(ctx context.Context, line string) (bool, error) {
	switch strings.ToLower(line) {
	case cmdQuit, ":q":
		return true, nil
	case cmdRestart:
		return false, g.start(ctx)
	case cmdHint:
		hint, err := g.engine.Hint()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(g.out, g.paint(color.Cyan, hint.Text))
		if hint.Remaining > 0 {
			fmt.Fprintf(g.out, "There are at least %d more words to find.\n", hint.Remaining)
		}
		return false, nil
	case cmdMissed:
		g.missed()
		return false, nil
	case cmdRules:
		fmt.Fprintln(g.out, model.Instructions)
		return false, nil
	}

	result, err := g.engine.Submit(ctx, line)
	var rejection *model.RejectionError
	switch {
	case errors.As(err, &rejection):
		fmt.Fprintf(g.out, "%s %s\n", g.paint(color.Red, rejection.Title()+"."), rejection.Message())
		return false, nil
	case err != nil:
		return false, err
	case result.Outcome == model.OutcomeNoOp:
		return false, nil
	}

	fmt.Fprintf(g.out, "%s +%d  score %d\n",
		g.paint(color.Green, result.Word), len([]rune(result.Word)), result.Score)
	if result.NewHighScore {
		fmt.Fprintln(g.out, g.paint(color.Yellow, fmt.Sprintf("New high score: %d!", result.HighScore)))
	}
	return false, nil
}

func (g *Game) start(ctx context.Context) error {
	r, err := g.engine.StartRound(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(g.out, "Root word: %s\n", g.paint(color.Bold, strings.ToUpper(string(r.Root))))
	fmt.Fprintf(g.out, "High score: %d\n", g.engine.HighScore())
	return nil
}

func (g *Game) missed() {
	r, ok := g.engine.Round()
	if !ok || len(r.Rejected) == 0 {
		fmt.Fprintln(g.out, "No missed words yet.")
		return
	}
	fmt.Fprintf(g.out, "Missed words: %s\n", strings.Join(r.Rejected, ", "))
}

func (g *Game) summary() {
	r, ok := g.engine.Round()
	if !ok {
		return
	}
	fmt.Fprintf(g.out, "\nFinal score: %d (%d words)\n", r.Score, len(r.Accepted))
	fmt.Fprintf(g.out, "High score: %d\n", g.engine.HighScore())
}

func (g *Game) paint(c color.Color, s string) string {
	if !g.colors {
		return s
	}
	return c.Render(s)
}
