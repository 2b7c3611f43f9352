package repositories

import (
	"context"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
)

// CoachRepository define a interface para persistência de perfis de técnico
type CoachRepository interface {
	// Create falha com ErrDuplicate se o usuário já tiver perfil
	Create(ctx context.Context, coach *entities.CoachProfile) error
	FindByID(ctx context.Context, id string) (*entities.CoachProfile, error)
	FindByUserID(ctx context.Context, userID string) (*entities.CoachProfile, error)
	ListByUserID(ctx context.Context, userID string) ([]*entities.CoachProfile, error)
	CountByProgramID(ctx context.Context, programID string) (int64, error)
	Update(ctx context.Context, coach *entities.CoachProfile) error
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

// SavedPlayerRepository define a interface para a lista de favoritos dos técnicos
type SavedPlayerRepository interface {
	// Create falha com ErrDuplicate se o par já existir
	Create(ctx context.Context, saved *entities.SavedPlayer) error
	Delete(ctx context.Context, coachID, playerID string) (bool, error)
	// ListByCoach retorna apenas atletas ativos, mais recentes primeiro
	ListByCoach(ctx context.Context, coachID string, p Pagination) (Page[*entities.SavedPlayer], error)
	DeleteByCoachIDs(ctx context.Context, coachIDs []string) (int64, error)
	DeleteByPlayerIDs(ctx context.Context, playerIDs []string) (int64, error)
}

// NoteRepository define a interface para anotações de técnicos sobre atletas
type NoteRepository interface {
	Create(ctx context.Context, note *entities.PlayerNote) error
	FindByID(ctx context.Context, id string) (*entities.PlayerNote, error)
	ListByAuthorAndPlayer(ctx context.Context, authorUserID, playerID string) ([]*entities.PlayerNote, error)
	Update(ctx context.Context, note *entities.PlayerNote) error
	Delete(ctx context.Context, id string) error
	DeleteByAuthor(ctx context.Context, authorUserID string) (int64, error)
	DeleteByPlayerIDs(ctx context.Context, playerIDs []string) (int64, error)
}
