package services

import (
	"context"
	"strings"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// NoteService contém as anotações privadas dos técnicos sobre atletas
type NoteService struct {
	noteRepo   repositories.NoteRepository
	playerRepo repositories.PlayerRepository
	logger     ports.Logger
}

// NewNoteService cria um novo NoteService
func NewNoteService(noteRepo repositories.NoteRepository, playerRepo repositories.PlayerRepository, logger ports.Logger) *NoteService {
	return &NoteService{
		noteRepo:   noteRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// ListForPlayer lista as anotações do próprio autor sobre o atleta
func (s *NoteService) ListForPlayer(ctx context.Context, auth *AuthContext, playerID string) ([]*entities.PlayerNote, error) {
	if err := s.ensurePlayer(ctx, playerID); err != nil {
		return nil, err
	}
	return s.noteRepo.ListByAuthorAndPlayer(ctx, auth.User.ID, playerID)
}

// Create cria uma anotação sobre um atleta ativo
func (s *NoteService) Create(ctx context.Context, auth *AuthContext, playerID, body string) (*entities.PlayerNote, error) {
	if err := s.ensurePlayer(ctx, playerID); err != nil {
		return nil, err
	}

	note := &entities.PlayerNote{
		AuthorUserID: auth.User.ID,
		PlayerID:     playerID,
		Body:         strings.TrimSpace(body),
	}
	if err := note.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("body", err.Error())
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	ports.ForOperation(s.logger, "note", note.ID, "create").Info("note created", "player_id", playerID)
	return note, nil
}

// Update altera o texto de uma anotação do próprio autor
func (s *NoteService) Update(ctx context.Context, auth *AuthContext, id, body string) (*entities.PlayerNote, error) {
	note, err := s.findAuthored(ctx, auth, id)
	if err != nil {
		return nil, err
	}

	note.Body = strings.TrimSpace(body)
	if err := note.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("body", err.Error())
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	ports.ForOperation(s.logger, "note", note.ID, "update").Info("note updated")
	return note, nil
}

// Delete remove uma anotação do próprio autor
func (s *NoteService) Delete(ctx context.Context, auth *AuthContext, id string) error {
	if _, err := s.findAuthored(ctx, auth, id); err != nil {
		return err
	}

	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return err
	}

	ports.ForOperation(s.logger, "note", id, "delete").Info("note deleted")
	return nil
}

func (s *NoteService) ensurePlayer(ctx context.Context, playerID string) error {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return err
	}
	if player == nil {
		return domainerrors.NewNotFoundError("Player")
	}
	return nil
}

func (s *NoteService) findAuthored(ctx context.Context, auth *AuthContext, id string) (*entities.PlayerNote, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domainerrors.NewNotFoundError("Note")
	}

	if err := EnsureOwner(auth, note.AuthorUserID); err != nil {
		ports.ForOperation(s.logger, "note", id, "ownership").Warn("ownership check failed", "user_id", auth.User.ID)
		return nil, err
	}
	return note, nil
}
