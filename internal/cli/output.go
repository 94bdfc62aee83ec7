package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/services/games"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// JSON reports whether machine-readable output was requested
func (o *Output) JSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.JSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.JSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// Textf writes progress text that only makes sense interactively
func (o *Output) Textf(format string, args ...any) {
	if !o.JSON() {
		fmt.Fprintf(o.w, format, args...)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case IdentityView:
		o.printIdentity(v)
	case []games.Game:
		o.printGames(v)
	case PlayResult:
		o.printPlayResult(v)
	case HistoryView:
		o.printHistory(v)
	case StatsView:
		o.printStats(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// IdentityView is the signed-in state shown by whoami, login and register
type IdentityView struct {
	Authenticated bool           `json:"authenticated"`
	User          *model.Session `json:"user"`
}

// PlayResult is a finished round and whether it was recorded
type PlayResult struct {
	Outcome model.GameOutcome `json:"outcome"`
	Saved   *model.GameResult `json:"saved,omitempty"`
	Detail  string            `json:"detail,omitempty"`
}

// HistoryView is a filtered page of results with per-game counts
type HistoryView struct {
	Game    model.GameSlug         `json:"game,omitempty"`
	Total   int                    `json:"total"`
	Counts  map[model.GameSlug]int `json:"counts"`
	Results []model.GameResult     `json:"results"`
	Now     time.Time              `json:"-"`
}

// StatsView is the stats summary for one game or all of them
type StatsView struct {
	Game  model.GameSlug `json:"game,omitempty"`
	Stats model.Stats    `json:"stats"`
	Now   time.Time      `json:"-"`
}

func (o *Output) printIdentity(v IdentityView) {
	if !v.Authenticated || v.User == nil {
		fmt.Fprintln(o.w, "Not signed in")
		return
	}
	fmt.Fprintf(o.w, "Signed in as %s <%s>\n", v.User.Username, v.User.Email)
}

func (o *Output) printGames(gs []games.Game) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, g := range gs {
		fmt.Fprintf(tw, "%s\t%s\t[%s]\t%s\n", g.Slug, g.Name, g.Tag, g.Description)
	}
	_ = tw.Flush()
}

func (o *Output) printPlayResult(r PlayResult) {
	fmt.Fprintf(o.w, "%s: %s (%d points)\n", r.Outcome.GameName, r.Outcome.Result, r.Outcome.Score)
	if r.Detail != "" {
		fmt.Fprintln(o.w, r.Detail)
	}
	if r.Saved == nil {
		fmt.Fprintln(o.w, "Result not saved")
	}
}

func (o *Output) printHistory(v HistoryView) {
	fmt.Fprintf(o.w, "All (%d)", v.Total)
	for _, g := range games.Catalog() {
		fmt.Fprintf(o.w, "  %s (%d)", g.Name, v.Counts[g.Slug])
	}
	fmt.Fprintln(o.w)
	fmt.Fprintln(o.w)

	if len(v.Results) == 0 {
		fmt.Fprintln(o.w, "No games played yet")
		return
	}

	o.printResults(v.Results, v.Now)
}

func (o *Output) printStats(v StatsView) {
	title := "All games"
	if g, ok := games.Lookup(v.Game); ok {
		title = g.Name
	}
	fmt.Fprintln(o.w, title)
	fmt.Fprintf(o.w, "Games played: %d\n", v.Stats.TotalGames)
	fmt.Fprintf(o.w, "Best score:   %d\n", v.Stats.BestScore)
	if len(v.Stats.RecentGames) > 0 {
		fmt.Fprintln(o.w, "\nRecent games:")
		o.printResults(v.Stats.RecentGames, v.Now)
	}
}

func (o *Output) printResults(results []model.GameResult, now time.Time) {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.GameName, r.Score, r.Result, relativeTime(now, time.UnixMilli(r.Timestamp)))
	}
	_ = tw.Flush()
}

// relativeTime describes then as seen from now: today and yesterday with the
// time of day, days ago within a week, otherwise the date
func relativeTime(now, then time.Time) string {
	then = then.In(now.Location())
	days := int(math.Floor(math.Abs(now.Sub(then).Hours()) / 24))

	switch {
	case days == 0:
		return "Today, " + then.Format("15:04")
	case days == 1:
		return "Yesterday, " + then.Format("15:04")
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return then.Format("2006-01-02")
	}
}
