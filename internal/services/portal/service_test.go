package portal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/gameportal/internal/dependencies/mocks"
	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/services/directory"
	"github.com/mcoot/gameportal/internal/services/history"
	"github.com/mcoot/gameportal/internal/services/session"
	"github.com/mcoot/gameportal/internal/storage"
	"github.com/mcoot/gameportal/internal/storage/memory"
	"github.com/mcoot/gameportal/internal/testutil"
)

type PortalSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	ids     *mocks.MockIDs
	portal  *Portal
	ctx     context.Context
}

func TestPortalSuite(t *testing.T) {
	suite.Run(t, new(PortalSuite))
}

func (s *PortalSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ids = mocks.NewMockIDs("id")
	s.portal = s.open()
}

// open builds a portal over the shared store, like a fresh page load
func (s *PortalSuite) open() *Portal {
	logger := testutil.NopLogger()
	dir := directory.New(s.storage, s.ids, directory.Plaintext{}, logger)
	sessions := session.New(s.ctx, s.storage, dir, logger)
	ledger := history.New(s.storage, s.clock, s.ids, logger)
	return New(s.ctx, sessions, ledger, logger)
}

func outcome(slug model.GameSlug, score int) model.GameOutcome {
	return model.GameOutcome{GameSlug: slug, Score: score, Result: "done"}
}

func (s *PortalSuite) TestRegisterSignsIn() {
	s.Require().True(s.portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))

	id := s.portal.CurrentIdentity()
	s.Require().NotNil(id)
	s.Equal("alice", id.Username)
	s.True(s.portal.IsAuthenticated())
}

func (s *PortalSuite) TestDuplicateRegisterFails() {
	s.Require().True(s.portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	s.portal.Logout(s.ctx)

	s.False(s.portal.Register(s.ctx, "other", "alice@example.com", "different"))
	s.False(s.portal.IsAuthenticated())
}

func (s *PortalSuite) TestLoginWithWrongPasswordFails() {
	s.Require().True(s.portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	s.portal.Logout(s.ctx)

	s.False(s.portal.Login(s.ctx, "alice@example.com", "nope"))
	s.Nil(s.portal.CurrentIdentity())

	s.True(s.portal.Login(s.ctx, "alice@example.com", "secret1"))
}

func (s *PortalSuite) TestSignUpOverlongPasswordUnderBcrypt() {
	logger := testutil.NopLogger()
	dir := directory.New(s.storage, s.ids, directory.Bcrypt{Cost: bcrypt.MinCost}, logger)
	p := New(s.ctx, session.New(s.ctx, s.storage, dir, logger), history.New(s.storage, s.clock, s.ids, logger), logger)

	_, err := p.SignUp(s.ctx, "alice", "alice@example.com", strings.Repeat("a", 73))
	s.ErrorIs(err, model.ErrInvalidInput)
	s.False(p.IsAuthenticated())

	s.True(p.Register(s.ctx, "alice", "alice@example.com", strings.Repeat("a", 72)))
}

func (s *PortalSuite) TestSignInReportsReason() {
	_, err := s.portal.SignIn(s.ctx, "nobody@example.com", "x")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *PortalSuite) TestSaveWithoutSessionIsNoOp() {
	s.portal.SaveGameResult(s.ctx, outcome(model.GameTapCounter, 10))

	_, err := s.storage.Get(s.ctx, storage.KeyHistory)
	s.ErrorIs(err, storage.ErrNotFound)
	s.Empty(s.portal.GetFullHistory())
}

func (s *PortalSuite) TestRecordResultWithoutSession() {
	_, err := s.portal.RecordResult(s.ctx, outcome(model.GameTapCounter, 10))
	s.ErrorIs(err, model.ErrNoActiveSession)
}

func (s *PortalSuite) TestSaveFillsGameName() {
	s.Require().True(s.portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))

	r, err := s.portal.RecordResult(s.ctx, outcome(model.GameMemoryClicker, 30))
	s.Require().NoError(err)
	s.Equal("Memory Clicker", r.GameName)
}

func (s *PortalSuite) TestHistoryFollowsIdentity() {
	s.Require().True(s.portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	s.portal.SaveGameResult(s.ctx, outcome(model.GameTapCounter, 10))
	s.portal.SaveGameResult(s.ctx, outcome(model.GameLuckyBox, 40))
	s.Len(s.portal.GetFullHistory(), 2)

	s.portal.Logout(s.ctx)
	s.Empty(s.portal.GetFullHistory())
	s.Equal(0, s.portal.GetStats("").TotalGames)

	s.Require().True(s.portal.Register(s.ctx, "bob", "bob@example.com", "secret2"))
	s.Empty(s.portal.GetFullHistory())
	s.portal.SaveGameResult(s.ctx, outcome(model.GameTapCounter, 3))

	s.portal.Logout(s.ctx)
	s.Require().True(s.portal.Login(s.ctx, "alice@example.com", "secret1"))
	h := s.portal.GetFullHistory()
	s.Require().Len(h, 2)
	s.Equal(40, h[0].Score)
	s.Equal(10, h[1].Score)
}

func (s *PortalSuite) TestRestoredSessionLoadsHistory() {
	s.Require().True(s.portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	s.portal.SaveGameResult(s.ctx, outcome(model.GameTapCounter, 42))

	reopened := s.open()
	s.True(reopened.IsAuthenticated())
	stats := reopened.GetStats(model.GameTapCounter)
	s.Equal(1, stats.TotalGames)
	s.Equal(42, stats.BestScore)
}

func (s *PortalSuite) TestGetHistoryAndCounts() {
	s.Require().True(s.portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	s.portal.SaveGameResult(s.ctx, outcome(model.GameTapCounter, 1))
	s.portal.SaveGameResult(s.ctx, outcome(model.GameTapCounter, 2))
	s.portal.SaveGameResult(s.ctx, outcome(model.GameLuckyBox, 10))

	s.Len(s.portal.GetHistory(model.GameTapCounter), 2)
	counts := s.portal.GameCounts()
	s.Equal(2, counts[model.GameTapCounter])
	s.Equal(1, counts[model.GameLuckyBox])
}

func (s *PortalSuite) TestClearHistory() {
	s.Require().True(s.portal.Register(s.ctx, "alice", "alice@example.com", "secret1"))
	s.portal.SaveGameResult(s.ctx, outcome(model.GameTapCounter, 1))

	s.portal.ClearHistory(s.ctx)
	s.Empty(s.portal.GetFullHistory())

	reopened := s.open()
	s.Empty(reopened.GetFullHistory())
}

func (s *PortalSuite) TestClearWithoutSessionIsNoOp() {
	s.portal.ClearHistory(s.ctx)
	s.ErrorIs(s.portal.ClearResults(s.ctx), model.ErrNoActiveSession)
}

func (s *PortalSuite) TestGamesCatalog() {
	s.Len(s.portal.Games(), 3)
}
