package services

import (
	"context"
	"fmt"

	"github.com/prudhvinik1/accountsvc/internal/models"
	"github.com/prudhvinik1/accountsvc/internal/repositories"
)

// AccountService drives the account lifecycle: it validates incoming
// payloads and performs the matching store operation. Each method maps to a
// single store call; errors surface unchanged so the handler can translate
// them (repositories.ErrNotFound, *models.ValidationError, anything else is
// a storage failure).
type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) Create(ctx context.Context, payload []byte) (*models.Account, error) {
	account := &models.Account{}
	if err := account.Deserialize(payload); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

func (s *AccountService) Get(ctx context.Context, id int64) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

// Update replaces the mutable fields of an existing account. The account
// must exist before the payload is applied; optional fields omitted from the
// payload keep their stored values.
func (s *AccountService) Update(ctx context.Context, id int64, payload []byte) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := account.Deserialize(payload); err != nil {
		return nil, err
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	return s.accountRepo.Delete(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]*models.Account, error) {
	return s.accountRepo.List(ctx)
}
