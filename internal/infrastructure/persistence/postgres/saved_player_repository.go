package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// SavedPlayerRepository implementa repositories.SavedPlayerRepository
type SavedPlayerRepository struct {
	db      *gorm.DB
	players *PlayerRepository
}

// NewSavedPlayerRepository cria um novo SavedPlayerRepository
func NewSavedPlayerRepository(db *gorm.DB) repositories.SavedPlayerRepository {
	return &SavedPlayerRepository{db: db, players: &PlayerRepository{db: db}}
}

func (r *SavedPlayerRepository) Create(ctx context.Context, saved *entities.SavedPlayer) error {
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}
	model := &SavedPlayerModel{
		ID:       saved.ID,
		CoachID:  saved.CoachID,
		PlayerID: saved.PlayerID,
	}

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translate(err)
	}

	saved.CreatedAt = fromMillis(model.CreatedAt)
	return nil
}

func (r *SavedPlayerRepository) Delete(ctx context.Context, coachID, playerID string) (bool, error) {
	if !validID(coachID) || !validID(playerID) {
		return false, nil
	}
	db := r.getDB(ctx)
	result := db.Where("coach_id = ? AND player_id = ?", coachID, playerID).Delete(&SavedPlayerModel{})
	return result.RowsAffected > 0, result.Error
}

func (r *SavedPlayerRepository) ListByCoach(ctx context.Context, coachID string, p repositories.Pagination) (repositories.Page[*entities.SavedPlayer], error) {
	p = p.Normalize()
	db := r.getDB(ctx)

	// Atletas com soft delete saem da lista sem apagar o vínculo
	base := func() *gorm.DB {
		return db.Model(&SavedPlayerModel{}).
			Joins("JOIN player_profiles ON player_profiles.id = saved_players.player_id AND player_profiles.deleted_at IS NULL").
			Where("saved_players.coach_id = ?", coachID)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return repositories.Page[*entities.SavedPlayer]{}, err
	}

	var models []*SavedPlayerModel
	err := base().
		Select("saved_players.*").
		Order("saved_players.created_at DESC").
		Order("saved_players.id DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&models).Error
	if err != nil {
		return repositories.Page[*entities.SavedPlayer]{}, err
	}

	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.PlayerID)
	}

	players := make(map[string]*entities.PlayerProfile, len(ids))
	if len(ids) > 0 {
		var playerModels []*PlayerProfileModel
		if err := db.Where("id IN ?", ids).Find(&playerModels).Error; err != nil {
			return repositories.Page[*entities.SavedPlayer]{}, err
		}
		for _, pm := range playerModels {
			players[pm.ID] = r.players.toEntity(pm)
		}
	}

	docs := make([]*entities.SavedPlayer, 0, len(models))
	for _, m := range models {
		docs = append(docs, &entities.SavedPlayer{
			ID:        m.ID,
			CoachID:   m.CoachID,
			PlayerID:  m.PlayerID,
			CreatedAt: fromMillis(m.CreatedAt),
			Player:    players[m.PlayerID],
		})
	}

	return repositories.NewPage(docs, total, p), nil
}

func (r *SavedPlayerRepository) DeleteByCoachIDs(ctx context.Context, coachIDs []string) (int64, error) {
	if len(coachIDs) == 0 {
		return 0, nil
	}
	db := r.getDB(ctx)
	result := db.Where("coach_id IN ?", coachIDs).Delete(&SavedPlayerModel{})
	return result.RowsAffected, result.Error
}

func (r *SavedPlayerRepository) DeleteByPlayerIDs(ctx context.Context, playerIDs []string) (int64, error) {
	if len(playerIDs) == 0 {
		return 0, nil
	}
	db := r.getDB(ctx)
	result := db.Where("player_id IN ?", playerIDs).Delete(&SavedPlayerModel{})
	return result.RowsAffected, result.Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *SavedPlayerRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}
