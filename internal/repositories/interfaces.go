package repositories

import (
	"context"

	"github.com/prudhvinik1/accountsvc/internal/models"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Account, error)
}
