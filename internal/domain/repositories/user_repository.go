package repositories

import (
	"context"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários locais
type UserRepository interface {
	// Create falha com ErrDuplicate se já existir usuário com o mesmo external id
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByExternalID(ctx context.Context, externalID string) (*entities.User, error)
	FindByStripeCustomerID(ctx context.Context, customerID string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
}
