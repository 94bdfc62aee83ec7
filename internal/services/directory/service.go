package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/gameportal/internal/dependencies/ids"
	"github.com/mcoot/gameportal/internal/model"
	"github.com/mcoot/gameportal/internal/storage"
)

// Service manages the set of registered accounts
type Service struct {
	store     storage.Store
	ids       ids.Generator
	passwords PasswordScheme
	logger    *slog.Logger
}

// New creates a new directory Service
func New(store storage.Store, idGen ids.Generator, passwords PasswordScheme, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		ids:       idGen,
		passwords: passwords,
		logger:    logger.With(slog.String("component", "directory")),
	}
}

// Accounts returns every registered account in registration order.
// A corrupt directory record reads as empty.
func (s *Service) Accounts(ctx context.Context) ([]model.Account, error) {
	accounts, err := storage.ReadJSON[[]model.Account](ctx, s.store, storage.KeyAccounts)
	if err != nil {
		if errors.Is(err, storage.ErrCorrupt) {
			s.logger.Warn("account directory unreadable, treating as empty", slog.Any("error", err))
			return nil, nil
		}
		return nil, err
	}
	return accounts, nil
}

// Register adds a new account unless one with the same email already exists
func (s *Service) Register(ctx context.Context, username, email, password string) (*model.Account, error) {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	for _, a := range accounts {
		if a.Email == email {
			return nil, model.ErrAlreadyExists
		}
	}

	stored, err := s.passwords.Encode(password)
	if err != nil {
		return nil, fmt.Errorf("encoding password: %w", err)
	}

	account := model.Account{
		ID:       model.UserID(s.ids.NewID()),
		Username: username,
		Email:    email,
		Password: stored,
	}

	accounts = append(accounts, account)
	if err := storage.WriteJSON(ctx, s.store, storage.KeyAccounts, accounts); err != nil {
		return nil, err
	}

	s.logger.Info("account registered", slog.String("user_id", string(account.ID)))
	return &account, nil
}

// Authenticate returns the first account whose email and password both match.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*model.Account, error) {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accounts {
		if accounts[i].Email == email && s.passwords.Matches(accounts[i].Password, password) {
			return &accounts[i], nil
		}
	}
	return nil, model.ErrInvalidCredentials
}
