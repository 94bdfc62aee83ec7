package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/services/games"
	redisstorage "github.com/mcoot/gameportal/internal/storage/redis"
	sqlitestorage "github.com/mcoot/gameportal/internal/storage/sqlite"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: two users share one store without seeing each other's results
func (s *IntegrationSuite) TestTwoUsersFlow() {
	p := s.app.Portal

	// Alice registers and plays two games
	s.Require().True(p.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	s.app.MockRandom.QueueIntn(20)
	_, outcome, err := games.NewLuckyBox(s.app.MockRandom).Open(0)
	s.Require().NoError(err)
	p.SaveGameResult(s.ctx, outcome)

	s.app.MockClock.Advance(time.Minute)
	p.SaveGameResult(s.ctx, games.TapOutcome(33))

	stats := p.GetStats("")
	s.Equal(2, stats.TotalGames)
	s.Equal(60, stats.BestScore)
	s.Equal("33 taps in 10 seconds", stats.RecentGames[0].Result)

	// Bob signs up after Alice leaves
	p.Logout(s.ctx)
	s.Require().True(p.Register(s.ctx, "bob", "bob@example.com", "secret2"))
	s.Empty(p.GetFullHistory())
	p.SaveGameResult(s.ctx, games.TapOutcome(5))
	p.ClearHistory(s.ctx)
	s.Empty(p.GetFullHistory())

	// Alice's results survive Bob clearing his
	p.Logout(s.ctx)
	s.Require().True(p.Login(s.ctx, "alice@example.com", "secret1"))
	s.Len(p.GetFullHistory(), 2)
}

// Test: the signed-in user and their history survive a restart
func (s *IntegrationSuite) TestRestartRestoresSession() {
	s.Require().True(s.app.Portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	s.app.Portal.SaveGameResult(s.ctx, games.TapOutcome(12))

	restarted := NewTestAppWithStore(s.app.Store)

	s.Require().True(restarted.Portal.IsAuthenticated())
	s.Equal("alice", restarted.Portal.CurrentIdentity().Username)
	s.Len(restarted.Portal.GetHistory(model.GameTapCounter), 1)
}

func (s *IntegrationSuite) TestNewWithSQLite() {
	path := filepath.Join(s.T().TempDir(), "portal.db")
	cfg := Config{
		StorageType:    "sqlite",
		SQLiteConfig:   &sqlitestorage.Config{Path: path},
		PasswordScheme: "plaintext",
	}

	app, err := New(s.ctx, cfg)
	s.Require().NoError(err)
	s.Require().True(app.Portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	app.Portal.SaveGameResult(s.ctx, games.TapOutcome(7))
	s.Require().NoError(app.Close())

	reopened, err := New(s.ctx, cfg)
	s.Require().NoError(err)
	defer reopened.Close()
	s.True(reopened.Portal.IsAuthenticated())
	s.Equal(7, reopened.Portal.GetStats("").BestScore)
}

func (s *IntegrationSuite) TestNewWithRedis() {
	mr := miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()

	app, err := New(s.ctx, Config{StorageType: "redis", RedisConfig: &redisCfg, PasswordScheme: "plaintext"})
	s.Require().NoError(err)
	defer app.Close()

	s.Require().True(app.Portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	s.True(mr.Exists("gameportal:default:gamePortalUsers"))
}

func (s *IntegrationSuite) TestNewDefaultsToMemory() {
	app, err := New(s.ctx, Config{PasswordScheme: "plaintext"})
	s.Require().NoError(err)
	s.NoError(app.Close())
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorage() {
	_, err := New(s.ctx, Config{StorageType: "localstorage"})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewRejectsMissingBackendConfig() {
	_, err := New(s.ctx, Config{StorageType: "sqlite"})
	s.Error(err)
	_, err = New(s.ctx, Config{StorageType: "redis"})
	s.Error(err)
}

func (s *IntegrationSuite) TestNewRejectsUnknownPasswordScheme() {
	_, err := New(s.ctx, Config{PasswordScheme: "rot13"})
	s.Error(err)
}
