package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// CoachRepository implementa repositories.CoachRepository
type CoachRepository struct {
	db *gorm.DB
}

// NewCoachRepository cria um novo CoachRepository
func NewCoachRepository(db *gorm.DB) repositories.CoachRepository {
	return &CoachRepository{db: db}
}

func (r *CoachRepository) Create(ctx context.Context, coach *entities.CoachProfile) error {
	if coach.ID == "" {
		coach.ID = uuid.NewString()
	}
	model := r.toModel(coach)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translate(err)
	}

	coach.CreatedAt = fromMillis(model.CreatedAt)
	coach.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *CoachRepository) FindByID(ctx context.Context, id string) (*entities.CoachProfile, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findOne(ctx, "id = ?", id)
}

func (r *CoachRepository) FindByUserID(ctx context.Context, userID string) (*entities.CoachProfile, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *CoachRepository) findOne(ctx context.Context, query string, args ...any) (*entities.CoachProfile, error) {
	var model CoachProfileModel

	db := r.getDB(ctx)
	if err := db.Where(query, args...).First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CoachRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.CoachProfile, error) {
	var models []*CoachProfileModel

	db := r.getDB(ctx)
	if err := db.Where("user_id = ?", userID).Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.CoachProfile, 0, len(models))
	for _, m := range models {
		result = append(result, r.toEntity(m))
	}
	return result, nil
}

func (r *CoachRepository) CountByProgramID(ctx context.Context, programID string) (int64, error) {
	var count int64
	db := r.getDB(ctx)
	err := db.Model(&CoachProfileModel{}).Where("program_id = ?", programID).Count(&count).Error
	return count, err
}

func (r *CoachRepository) Update(ctx context.Context, coach *entities.CoachProfile) error {
	model := r.toModel(coach)

	if err := updateAll(r.getDB(ctx), model); err != nil {
		return err
	}

	coach.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *CoachRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	db := r.getDB(ctx)
	result := db.Where("user_id = ?", userID).Delete(&CoachProfileModel{})
	return result.RowsAffected, result.Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *CoachRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *CoachRepository) toModel(c *entities.CoachProfile) *CoachProfileModel {
	return &CoachProfileModel{
		ID:           c.ID,
		UserID:       c.UserID,
		ProgramID:    c.ProgramID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Title:        c.Title,
		Phone:        c.Phone,
		ContactEmail: c.ContactEmail,
		Bio:          c.Bio,
		PhotoURL:     c.PhotoURL,
		CreatedAt:    toMillis(c.CreatedAt),
		UpdatedAt:    toMillis(c.UpdatedAt),
	}
}

func (r *CoachRepository) toEntity(m *CoachProfileModel) *entities.CoachProfile {
	return &entities.CoachProfile{
		ID:           m.ID,
		UserID:       m.UserID,
		ProgramID:    m.ProgramID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Title:        m.Title,
		Phone:        m.Phone,
		ContactEmail: m.ContactEmail,
		Bio:          m.Bio,
		PhotoURL:     m.PhotoURL,
		CreatedAt:    fromMillis(m.CreatedAt),
		UpdatedAt:    fromMillis(m.UpdatedAt),
	}
}
