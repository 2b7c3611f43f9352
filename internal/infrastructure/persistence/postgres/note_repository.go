package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// NoteRepository implementa repositories.NoteRepository
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository cria um novo NoteRepository
func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *entities.PlayerNote) error {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	model := r.toModel(note)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translate(err)
	}

	note.CreatedAt = fromMillis(model.CreatedAt)
	note.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id string) (*entities.PlayerNote, error) {
	if !validID(id) {
		return nil, nil
	}
	var model PlayerNoteModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *NoteRepository) ListByAuthorAndPlayer(ctx context.Context, authorUserID, playerID string) ([]*entities.PlayerNote, error) {
	var models []*PlayerNoteModel

	db := r.getDB(ctx)
	err := db.Where("author_user_id = ? AND player_id = ?", authorUserID, playerID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	result := make([]*entities.PlayerNote, 0, len(models))
	for _, m := range models {
		result = append(result, r.toEntity(m))
	}
	return result, nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entities.PlayerNote) error {
	model := r.toModel(note)

	if err := updateAll(r.getDB(ctx), model); err != nil {
		return err
	}

	note.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	db := r.getDB(ctx)
	return db.Where("id = ?", id).Delete(&PlayerNoteModel{}).Error
}

func (r *NoteRepository) DeleteByAuthor(ctx context.Context, authorUserID string) (int64, error) {
	db := r.getDB(ctx)
	result := db.Where("author_user_id = ?", authorUserID).Delete(&PlayerNoteModel{})
	return result.RowsAffected, result.Error
}

func (r *NoteRepository) DeleteByPlayerIDs(ctx context.Context, playerIDs []string) (int64, error) {
	if len(playerIDs) == 0 {
		return 0, nil
	}
	db := r.getDB(ctx)
	result := db.Where("player_id IN ?", playerIDs).Delete(&PlayerNoteModel{})
	return result.RowsAffected, result.Error
}

// getDB extrai DB do contexto (para suportar transações)
func (r *NoteRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *NoteRepository) toModel(n *entities.PlayerNote) *PlayerNoteModel {
	return &PlayerNoteModel{
		ID:           n.ID,
		AuthorUserID: n.AuthorUserID,
		PlayerID:     n.PlayerID,
		Body:         n.Body,
		CreatedAt:    toMillis(n.CreatedAt),
		UpdatedAt:    toMillis(n.UpdatedAt),
	}
}

func (r *NoteRepository) toEntity(m *PlayerNoteModel) *entities.PlayerNote {
	return &entities.PlayerNote{
		ID:           m.ID,
		AuthorUserID: m.AuthorUserID,
		PlayerID:     m.PlayerID,
		Body:         m.Body,
		CreatedAt:    fromMillis(m.CreatedAt),
		UpdatedAt:    fromMillis(m.UpdatedAt),
	}
}
