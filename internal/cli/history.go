package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/gameportal/internal/model"
)

// historyPageSize is how many results the history command shows by default
const historyPageSize = 20

func newHistoryCmd() *cobra.Command {
	var game string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your game history, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			slug, err := parseGame(game)
			if err != nil {
				return err
			}

			results := app.Portal.GetHistory(slug)
			total := len(app.Portal.GetFullHistory())
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			output(cmd).Print(HistoryView{
				Game:    slug,
				Total:   total,
				Counts:  app.Portal.GameCounts(),
				Results: results,
				Now:     app.Clock.Now(),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Only show one game (tap-counter, memory-clicker, lucky-box)")
	cmd.Flags().IntVar(&limit, "limit", historyPageSize, "Maximum results to show; 0 shows all")

	return cmd
}

func newStatsCmd() *cobra.Command {
	var game string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show games played, best score and recent games",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			slug, err := parseGame(game)
			if err != nil {
				return err
			}

			output(cmd).Print(StatsView{
				Game:  slug,
				Stats: app.Portal.GetStats(slug),
				Now:   app.Clock.Now(),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Only count one game")

	return cmd
}

func newClearHistoryCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-history",
		Short: "Delete all of your game results",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}

			if !yes {
				p := NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
				ok, err := p.Confirm("Delete all of your game results?")
				if err != nil {
					return err
				}
				if !ok {
					output(cmd).PrintMessage("History kept")
					return nil
				}
			}

			if err := app.Portal.ClearResults(cmd.Context()); err != nil {
				return err
			}
			output(cmd).PrintMessage("History cleared")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func parseGame(game string) (model.GameSlug, error) {
	slug := model.GameSlug(game)
	if slug != "" && !slug.Valid() {
		return "", fmt.Errorf("unknown game %q", game)
	}
	return slug, nil
}
