package history

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mcoot/gameportal/internal/dependencies/clock"
	"github.com/mcoot/gameportal/internal/dependencies/ids"
	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/storage"
)

// Ledger is the per-user game result log.
//
// Every user's results live in one stored sequence. The ledger keeps a view of
// the current identity's results, most recent first, which all reads are
// served from. Each write rewrites the owner's partition and leaves every
// other user's entries exactly as they were.
type Ledger struct {
	store  storage.Store
	clock  clock.Clock
	ids    ids.Generator
	logger *slog.Logger

	mu    sync.RWMutex
	owner model.UserID
	view  []model.GameResult
}

// New creates an empty Ledger. Call Refresh to load an identity's results.
func New(store storage.Store, clk clock.Clock, idGen ids.Generator, logger *slog.Logger) *Ledger {
	return &Ledger{
		store:  store,
		clock:  clk,
		ids:    idGen,
		logger: logger.With(slog.String("component", "history")),
	}
}

// Refresh reloads the view for identity. A nil identity clears it.
func (l *Ledger) Refresh(ctx context.Context, identity *model.Session) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if identity == nil {
		l.owner = ""
		l.view = nil
		return nil
	}

	all, err := l.loadAll(ctx)
	if err != nil {
		l.owner = ""
		l.view = nil
		return err
	}

	l.owner = identity.ID
	l.view = partition(all, identity.ID)
	return nil
}

// Save stamps an outcome with a fresh id, the current time and the identity,
// and records it as the identity's most recent result
func (l *Ledger) Save(ctx context.Context, outcome model.GameOutcome, identity *model.Session) (*model.GameResult, error) {
	if identity == nil {
		return nil, model.ErrNoActiveSession
	}
	if !outcome.GameSlug.Valid() {
		return nil, model.ErrUnknownGame
	}
	if outcome.Score < 0 {
		return nil, model.ErrInvalidScore
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	all, err := l.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	// The view may belong to a previous identity if no refresh happened
	view := l.view
	if l.owner != identity.ID {
		view = partition(all, identity.ID)
	}

	result := model.GameResult{
		ID:        model.GameResultID(l.ids.NewID()),
		GameSlug:  outcome.GameSlug,
		GameName:  outcome.GameName,
		Score:     outcome.Score,
		Result:    outcome.Result,
		Timestamp: clock.Millis(l.clock),
		UserID:    identity.ID,
	}

	updated := make([]model.GameResult, 0, len(view)+1)
	updated = append(updated, result)
	updated = append(updated, view...)

	next := append(others(all, identity.ID), updated...)
	if err := storage.WriteJSON(ctx, l.store, storage.KeyHistory, next); err != nil {
		return nil, err
	}

	l.owner = identity.ID
	l.view = updated

	l.logger.Info("game result saved",
		slog.String("user_id", string(identity.ID)),
		slog.String("game", string(result.GameSlug)),
		slog.Int("score", result.Score))
	return &result, nil
}

// Clear erases every result of identity, leaving other users untouched
func (l *Ledger) Clear(ctx context.Context, identity *model.Session) error {
	if identity == nil {
		return model.ErrNoActiveSession
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	all, err := l.loadAll(ctx)
	if err != nil {
		return err
	}

	if err := storage.WriteJSON(ctx, l.store, storage.KeyHistory, others(all, identity.ID)); err != nil {
		return err
	}

	l.owner = identity.ID
	l.view = nil

	l.logger.Info("history cleared", slog.String("user_id", string(identity.ID)))
	return nil
}

// History returns the view, optionally restricted to one game.
// An empty slug means every game.
func (l *Ledger) History(slug model.GameSlug) []model.GameResult {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return filter(l.view, slug)
}

// Stats aggregates the view, optionally restricted to one game
func (l *Ledger) Stats(slug model.GameSlug) model.Stats {
	results := l.History(slug)

	stats := model.Stats{
		TotalGames:  len(results),
		RecentGames: []model.GameResult{},
	}
	for i, r := range results {
		if i == 0 || r.Score > stats.BestScore {
			stats.BestScore = r.Score
		}
	}

	n := min(len(results), model.RecentGamesLimit)
	stats.RecentGames = append(stats.RecentGames, results[:n]...)
	return stats
}

// Counts returns how many results the view holds for each game
func (l *Ledger) Counts() map[model.GameSlug]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	counts := make(map[model.GameSlug]int, len(model.AllGames))
	for _, g := range model.AllGames {
		counts[g] = 0
	}
	for _, r := range l.view {
		counts[r.GameSlug]++
	}
	return counts
}

// loadAll reads the global sequence. A corrupt record reads as empty.
func (l *Ledger) loadAll(ctx context.Context) ([]model.GameResult, error) {
	all, err := storage.ReadJSON[[]model.GameResult](ctx, l.store, storage.KeyHistory)
	if err != nil {
		if errors.Is(err, storage.ErrCorrupt) {
			l.logger.Warn("history unreadable, treating as empty", slog.Any("error", err))
			return nil, nil
		}
		return nil, err
	}
	return all, nil
}

// partition returns the entries of user in stored order
func partition(all []model.GameResult, user model.UserID) []model.GameResult {
	var out []model.GameResult
	for _, r := range all {
		if r.UserID == user {
			out = append(out, r)
		}
	}
	return out
}

// others returns every entry not belonging to user, in stored order
func others(all []model.GameResult, user model.UserID) []model.GameResult {
	out := make([]model.GameResult, 0, len(all))
	for _, r := range all {
		if r.UserID != user {
			out = append(out, r)
		}
	}
	return out
}

func filter(results []model.GameResult, slug model.GameSlug) []model.GameResult {
	out := make([]model.GameResult, 0, len(results))
	for _, r := range results {
		if slug == "" || r.GameSlug == slug {
			out = append(out, r)
		}
	}
	return out
}
