package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
	"github.com/rafabene/recruit-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	model := r.toModel(user)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translate(err)
	}

	user.CreatedAt = fromMillis(model.CreatedAt)
	user.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByExternalID(ctx context.Context, externalID string) (*entities.User, error) {
	return r.findOne(ctx, "external_id = ?", externalID)
}

func (r *UserRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*entities.User, error) {
	return r.findOne(ctx, "stripe_customer_id = ?", customerID)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var model UserModel

	db := r.getDB(ctx)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := updateAll(r.getDB(ctx), model); err != nil {
		return err
	}

	user.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

// Delete remove o usuário definitivamente (usuários não têm soft delete)
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := r.getDB(ctx)
	return db.Where("id = ?", id).Delete(&UserModel{}).Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:                     user.ID,
		ExternalID:             user.ExternalID,
		Email:                  user.Email.String(),
		FirstName:              user.FirstName,
		LastName:               user.LastName,
		PasswordHash:           user.PasswordHash,
		Role:                   string(user.Role),
		StripeCustomerID:       user.StripeCustomerID,
		StripeSubscriptionID:   user.StripeSubscriptionID,
		StripeCurrentPeriodEnd: toMillisPtr(user.StripeCurrentPeriodEnd),
		CreatedAt:              toMillis(user.CreatedAt),
		UpdatedAt:              toMillis(user.UpdatedAt),
	}
}

func (r *UserRepository) toEntity(model *UserModel) *entities.User {
	return &entities.User{
		ID:                     model.ID,
		ExternalID:             model.ExternalID,
		Email:                  valueobjects.MustEmail(model.Email),
		FirstName:              model.FirstName,
		LastName:               model.LastName,
		PasswordHash:           model.PasswordHash,
		Role:                   entities.Role(model.Role),
		StripeCustomerID:       model.StripeCustomerID,
		StripeSubscriptionID:   model.StripeSubscriptionID,
		StripeCurrentPeriodEnd: fromMillisPtr(model.StripeCurrentPeriodEnd),
		CreatedAt:              fromMillis(model.CreatedAt),
		UpdatedAt:              fromMillis(model.UpdatedAt),
	}
}
