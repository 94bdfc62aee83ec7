package portal

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/services/games"
	"github.com/mcoot/gameportal/internal/services/history"
	"github.com/mcoot/gameportal/internal/services/session"
)

// Portal is the surface presentation code talks to. It ties the ledger view to
// the session's current identity and collapses failures into the simple
// results the UI needs. The error-returning variants exist for adapters such
// as the HTTP API that report why something failed.
type Portal struct {
	session *session.Manager
	ledger  *history.Ledger
	logger  *slog.Logger
}

// New wires the ledger to follow session identity changes and loads the view
// for a session restored at startup
func New(ctx context.Context, sessions *session.Manager, ledger *history.Ledger, logger *slog.Logger) *Portal {
	p := &Portal{
		session: sessions,
		ledger:  ledger,
		logger:  logger.With(slog.String("component", "portal")),
	}

	sessions.Subscribe(p.onIdentityChange)

	if current := sessions.Current(); current != nil {
		if err := ledger.Refresh(ctx, current); err != nil {
			p.logger.Error("failed to load history for restored session", slog.Any("error", err))
		}
	}

	return p
}

func (p *Portal) onIdentityChange(ctx context.Context, change model.IdentityChange) {
	if err := p.ledger.Refresh(ctx, change.Current); err != nil {
		p.logger.Error("failed to refresh history", slog.Any("error", err))
	}
}

// Login signs in and reports whether it succeeded
func (p *Portal) Login(ctx context.Context, email, password string) bool {
	_, err := p.SignIn(ctx, email, password)
	return err == nil
}

// SignIn is Login with the failure reason
func (p *Portal) SignIn(ctx context.Context, email, password string) (*model.Session, error) {
	sess, err := p.session.Login(ctx, email, password)
	if err != nil && !session.IsCredentialFailure(err) {
		p.logger.Error("login failed", slog.Any("error", err))
	}
	return sess, err
}

// Register creates an account, signs in as it and reports whether both worked
func (p *Portal) Register(ctx context.Context, username, email, password string) bool {
	_, err := p.SignUp(ctx, username, email, password)
	return err == nil
}

// SignUp is Register with the failure reason
func (p *Portal) SignUp(ctx context.Context, username, email, password string) (*model.Session, error) {
	sess, err := p.session.Register(ctx, username, email, password)
	if err != nil && !session.IsCredentialFailure(err) {
		p.logger.Error("registration failed", slog.Any("error", err))
	}
	return sess, err
}

// Logout always ends the session. A failure to remove the stored record is
// only logged.
func (p *Portal) Logout(ctx context.Context) {
	if err := p.session.Logout(ctx); err != nil {
		p.logger.Error("failed to remove session record", slog.Any("error", err))
	}
}

// CurrentIdentity returns the signed-in user, or nil
func (p *Portal) CurrentIdentity() *model.Session {
	return p.session.Current()
}

// IsAuthenticated reports whether a user is signed in
func (p *Portal) IsAuthenticated() bool {
	return p.session.IsAuthenticated()
}

// SaveGameResult records an outcome for the current user. Without a session it
// does nothing.
func (p *Portal) SaveGameResult(ctx context.Context, outcome model.GameOutcome) {
	if _, err := p.RecordResult(ctx, outcome); err != nil && !errors.Is(err, model.ErrNoActiveSession) {
		p.logger.Warn("game result not saved", slog.Any("error", err))
	}
}

// RecordResult is SaveGameResult with the stored result or failure reason
func (p *Portal) RecordResult(ctx context.Context, outcome model.GameOutcome) (*model.GameResult, error) {
	if outcome.GameName == "" {
		if g, ok := games.Lookup(outcome.GameSlug); ok {
			outcome.GameName = g.Name
		}
	}
	return p.ledger.Save(ctx, outcome, p.session.Current())
}

// GetStats aggregates the current user's results. An empty slug covers all
// games.
func (p *Portal) GetStats(slug model.GameSlug) model.Stats {
	return p.ledger.Stats(slug)
}

// GetFullHistory returns every result of the current user, most recent first
func (p *Portal) GetFullHistory() []model.GameResult {
	return p.ledger.History("")
}

// GetHistory returns the current user's results for one game
func (p *Portal) GetHistory(slug model.GameSlug) []model.GameResult {
	return p.ledger.History(slug)
}

// GameCounts returns the number of results per game for the current user
func (p *Portal) GameCounts() map[model.GameSlug]int {
	return p.ledger.Counts()
}

// Games returns the catalog
func (p *Portal) Games() []games.Game {
	return games.Catalog()
}

// ClearHistory erases the current user's results. Without a session it does
// nothing.
func (p *Portal) ClearHistory(ctx context.Context) {
	if err := p.ClearResults(ctx); err != nil && !errors.Is(err, model.ErrNoActiveSession) {
		p.logger.Error("failed to clear history", slog.Any("error", err))
	}
}

// ClearResults is ClearHistory with the failure reason
func (p *Portal) ClearResults(ctx context.Context) error {
	return p.ledger.Clear(ctx, p.session.Current())
}
