package directory

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/gameportal/internal/dependencies/mocks"
	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/storage"
	"github.com/mcoot/gameportal/internal/storage/memory"
	"github.com/mcoot/gameportal/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, mocks.NewMockIDs("u"), Plaintext{}, testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	account, err := s.service.Register(s.ctx, "alice", "alice@example.com", "secret1")
	s.Require().NoError(err)

	s.Equal(model.UserID("u-1"), account.ID)
	s.Equal("alice", account.Username)
	s.Equal("alice@example.com", account.Email)
}

func (s *ServiceSuite) TestRegisterPersistsAccount() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "secret1")

	accounts, err := storage.ReadJSON[[]model.Account](s.ctx, s.storage, storage.KeyAccounts)
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal("alice@example.com", accounts[0].Email)
	s.Equal("secret1", accounts[0].Password)
}

func (s *ServiceSuite) TestRegisterAppendsInOrder() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "secret1")
	_, _ = s.service.Register(s.ctx, "bob", "bob@example.com", "secret2")

	accounts, err := s.service.Accounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)
	s.Equal("alice", accounts[0].Username)
	s.Equal("bob", accounts[1].Username)
	s.NotEqual(accounts[0].ID, accounts[1].ID)
}

func (s *ServiceSuite) TestRegisterFailsIfEmailExists() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "secret1")

	_, err := s.service.Register(s.ctx, "alice2", "alice@example.com", "different")
	s.ErrorIs(err, model.ErrAlreadyExists)

	accounts, _ := s.service.Accounts(s.ctx)
	s.Len(accounts, 1, "failed registration must not change the directory")
}

func (s *ServiceSuite) TestRegisterEmailMatchIsCaseSensitive() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "secret1")

	_, err := s.service.Register(s.ctx, "alice", "Alice@example.com", "secret1")
	s.NoError(err)
}

func (s *ServiceSuite) TestRegisterOverCorruptDirectoryStartsFresh() {
	_ = s.storage.Set(s.ctx, storage.KeyAccounts, "not json")

	_, err := s.service.Register(s.ctx, "alice", "alice@example.com", "secret1")
	s.Require().NoError(err)

	accounts, _ := s.service.Accounts(s.ctx)
	s.Len(accounts, 1)
}

// Authenticate tests

func (s *ServiceSuite) TestAuthenticateSucceeds() {
	registered, _ := s.service.Register(s.ctx, "alice", "alice@example.com", "secret1")

	account, err := s.service.Authenticate(s.ctx, "alice@example.com", "secret1")
	s.Require().NoError(err)
	s.Equal(registered.ID, account.ID)
}

func (s *ServiceSuite) TestAuthenticateFailuresAreIndistinguishable() {
	_, _ = s.service.Register(s.ctx, "alice", "alice@example.com", "secret1")

	_, wrongPassword := s.service.Authenticate(s.ctx, "alice@example.com", "nope")
	_, unknownEmail := s.service.Authenticate(s.ctx, "nobody@example.com", "secret1")

	s.ErrorIs(wrongPassword, model.ErrInvalidCredentials)
	s.ErrorIs(unknownEmail, model.ErrInvalidCredentials)
	s.Equal(wrongPassword.Error(), unknownEmail.Error())
}

func (s *ServiceSuite) TestAuthenticateEmptyDirectory() {
	_, err := s.service.Authenticate(s.ctx, "alice@example.com", "secret1")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestAuthenticateReturnsFirstMatch() {
	// Duplicates can only come from externally written records
	records := []model.Account{
		{ID: "first", Username: "a", Email: "dup@example.com", Password: "pw"},
		{ID: "second", Username: "b", Email: "dup@example.com", Password: "pw"},
	}
	s.Require().NoError(storage.WriteJSON(s.ctx, s.storage, storage.KeyAccounts, records))

	account, err := s.service.Authenticate(s.ctx, "dup@example.com", "pw")
	s.Require().NoError(err)
	s.Equal(model.UserID("first"), account.ID)
}

// Bcrypt scheme tests

func (s *ServiceSuite) TestBcryptSchemeStoresHash() {
	svc := New(s.storage, mocks.NewMockIDs("u"), Bcrypt{Cost: bcrypt.MinCost}, testutil.NopLogger())

	_, err := svc.Register(s.ctx, "alice", "alice@example.com", "secret1")
	s.Require().NoError(err)

	accounts, _ := svc.Accounts(s.ctx)
	s.Require().Len(accounts, 1)
	s.NotEqual("secret1", accounts[0].Password)

	_, err = svc.Authenticate(s.ctx, "alice@example.com", "secret1")
	s.NoError(err)
	_, err = svc.Authenticate(s.ctx, "alice@example.com", "wrong")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestBcryptSchemeRejectsPlaintextRecords() {
	_ = storage.WriteJSON(s.ctx, s.storage, storage.KeyAccounts, []model.Account{
		{ID: "u-1", Username: "alice", Email: "alice@example.com", Password: "secret1"},
	})
	svc := New(s.storage, mocks.NewMockIDs("u"), Bcrypt{Cost: bcrypt.MinCost}, testutil.NopLogger())

	_, err := svc.Authenticate(s.ctx, "alice@example.com", "secret1")
	s.ErrorIs(err, model.ErrInvalidCredentials)
}

func (s *ServiceSuite) TestBcryptSchemeRejectsOverlongPassword() {
	svc := New(s.storage, mocks.NewMockIDs("u"), Bcrypt{Cost: bcrypt.MinCost}, testutil.NopLogger())

	_, err := svc.Register(s.ctx, "alice", "alice@example.com", strings.Repeat("a", 73))
	s.ErrorIs(err, model.ErrInvalidInput)

	accounts, err := svc.Accounts(s.ctx)
	s.Require().NoError(err)
	s.Empty(accounts)

	_, err = svc.Register(s.ctx, "alice", "alice@example.com", strings.Repeat("a", 72))
	s.NoError(err)
}

func (s *ServiceSuite) TestSchemeByName() {
	scheme, err := SchemeByName(SchemePlaintext, 0)
	s.Require().NoError(err)
	s.IsType(Plaintext{}, scheme)

	scheme, err = SchemeByName("", 4)
	s.Require().NoError(err)
	s.Equal(Bcrypt{Cost: 4}, scheme)

	_, err = SchemeByName("rot13", 0)
	s.Error(err)
}
