package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/services/games"
)

// memoryIcons are shown for icon numbers 1..6
var memoryIcons = []string{"🎯", "🌟", "💎", "🔥", "⚡", "🎨"}

// tapPoll is how often a tap round checks whether time is up
const tapPoll = 50 * time.Millisecond

var errGameAbandoned = errors.New("game abandoned before it finished")

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the available games",
		RunE: func(cmd *cobra.Command, args []string) error {
			output(cmd).Print(app.Portal.Games())
			return nil
		},
	}
}

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game and record the result",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// cobra only runs the nearest pre-run hook
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return requireSession()
		},
	}

	cmd.AddCommand(newPlayTapCounterCmd())
	cmd.AddCommand(newPlayMemoryClickerCmd())
	cmd.AddCommand(newPlayLuckyBoxCmd())

	return cmd
}

func newPlayTapCounterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   string(model.GameTapCounter),
		Short: "Press Enter as many times as you can in 10 seconds",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output(cmd)
			p := NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

			out.Textf("Press Enter as many times as you can in %s. Go!\n", games.TapRoundDuration)

			counter := games.NewTapCounter(app.Clock)
			counter.Start()

			done := make(chan struct{})
			defer close(done)
			taps := p.Lines(done)
			ticker := time.NewTicker(tapPoll)
			defer ticker.Stop()

			for !counter.Done() {
				select {
				case _, ok := <-taps:
					if !ok {
						taps = nil
						continue
					}
					_, _ = counter.Tap()
				case <-ticker.C:
				case <-cmd.Context().Done():
					return errGameAbandoned
				}
			}

			outcome, err := counter.Outcome()
			if err != nil {
				return err
			}
			return finish(cmd, outcome, games.TapRating(outcome.Score))
		},
	}
}

func newPlayMemoryClickerCmd() *cobra.Command {
	var show time.Duration

	cmd := &cobra.Command{
		Use:   string(model.GameMemoryClicker),
		Short: "Remember and repeat a growing sequence of icons",
		Long: `Remember and repeat a growing sequence of icons.

Each level shows a sequence; type it back as icon numbers separated by
spaces. Level L has L+2 icons and completing it scores L*10 points. The game
ends at the first wrong icon.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output(cmd)
			p := NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			hide := isTerminal(cmd.OutOrStdout()) && !out.JSON()

			game := games.NewMemoryClicker(app.Random)
			sequence := game.Start()

			out.Textf("Icons: %s\n", iconLegend())
			for {
				out.Textf("Level %d. Memorize: %s\n", game.Level(), renderSequence(sequence))
				if hide {
					time.Sleep(show * time.Duration(len(sequence)))
					// Erase the sequence line
					fmt.Fprint(cmd.OutOrStdout(), "\033[1A\033[2K")
				}

				over, err := repeatSequence(p, game, len(sequence))
				if err != nil {
					return err
				}
				if over {
					break
				}

				sequence = game.Sequence()
				out.Textf("Level complete! Score: %d\n", game.Score())
			}

			outcome, err := game.Outcome()
			if err != nil {
				return err
			}
			return finish(cmd, outcome, "")
		},
	}

	cmd.Flags().DurationVar(&show, "show", 800*time.Millisecond, "How long each icon stays visible on a terminal")

	return cmd
}

// repeatSequence reads presses until the level is complete or the game ends
func repeatSequence(p *Prompter, game *games.MemoryClicker, length int) (bool, error) {
	pressed := 0
	for pressed < length {
		line, err := p.Line(fmt.Sprintf("Repeat (%d/%d): ", pressed, length))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, errGameAbandoned
			}
			return false, err
		}

		for _, field := range strings.Fields(line) {
			icon, err := strconv.Atoi(field)
			if err != nil {
				icon = 0
			}
			res, err := game.Press(icon)
			if errors.Is(err, model.ErrInvalidChoice) {
				return false, fmt.Errorf("%q is not an icon number between 1 and %d", field, games.MemoryIcons)
			}
			if err != nil {
				return false, err
			}
			if res.GameOver {
				return true, nil
			}
			pressed++
			if res.LevelComplete {
				return false, nil
			}
		}
	}
	return false, nil
}

func newPlayLuckyBoxCmd() *cobra.Command {
	var box int

	cmd := &cobra.Command{
		Use:   string(model.GameLuckyBox),
		Short: "Pick one of three boxes and discover your prize",
		RunE: func(cmd *cobra.Command, args []string) error {
			if box == 0 {
				p := NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
				answer, err := p.Line(fmt.Sprintf("Pick a box (1-%d): ", games.LuckyBoxCount))
				if err != nil {
					return err
				}
				if box, err = strconv.Atoi(answer); err != nil {
					return fmt.Errorf("%q is not a box number", answer)
				}
			}

			prize, outcome, err := games.NewLuckyBox(app.Random).Open(box - 1)
			if err != nil {
				return fmt.Errorf("box must be between 1 and %d: %w", games.LuckyBoxCount, err)
			}
			return finish(cmd, outcome, fmt.Sprintf("You found a %s! +%d points", prize.Name, prize.Points))
		},
	}

	cmd.Flags().IntVar(&box, "box", 0, "Box to open (1-3); prompted if omitted")

	return cmd
}

// finish records the outcome and prints it
func finish(cmd *cobra.Command, outcome model.GameOutcome, detail string) error {
	saved, err := app.Portal.RecordResult(cmd.Context(), outcome)
	output(cmd).Print(PlayResult{Outcome: outcome, Saved: saved, Detail: detail})
	if err != nil {
		logger.Error("game result not saved", slog.Any("error", err))
		return fmt.Errorf("saving result: %w", err)
	}
	return nil
}

func iconLegend() string {
	parts := make([]string, len(memoryIcons))
	for i, icon := range memoryIcons {
		parts[i] = fmt.Sprintf("%d=%s", i+1, icon)
	}
	return strings.Join(parts, " ")
}

func renderSequence(seq []int) string {
	parts := make([]string, len(seq))
	for i, n := range seq {
		parts[i] = fmt.Sprintf("%s(%d)", memoryIcons[n-1], n)
	}
	return strings.Join(parts, " ")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
