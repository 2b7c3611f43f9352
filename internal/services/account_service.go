package services

import (
	"context"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// AccountService remove a conta local e todos os dados derivados dela
type AccountService struct {
	uow        ports.UnitOfWork
	userRepo   repositories.UserRepository
	playerRepo repositories.PlayerRepository
	coachRepo  repositories.CoachRepository
	savedRepo  repositories.SavedPlayerRepository
	noteRepo   repositories.NoteRepository
	storage    ports.BlobStorage
	logger     ports.Logger
}

// NewAccountService cria um novo AccountService
func NewAccountService(
	uow ports.UnitOfWork,
	userRepo repositories.UserRepository,
	playerRepo repositories.PlayerRepository,
	coachRepo repositories.CoachRepository,
	savedRepo repositories.SavedPlayerRepository,
	noteRepo repositories.NoteRepository,
	storage ports.BlobStorage,
	logger ports.Logger,
) *AccountService {
	return &AccountService{
		uow:        uow,
		userRepo:   userRepo,
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		savedRepo:  savedRepo,
		noteRepo:   noteRepo,
		storage:    storage,
		logger:     logger,
	}
}

// DeleteByExternalID executa a exclusão em cascata da conta.
// Usuário desconhecido não é erro, então a reentrega do evento é inofensiva.
// Arquivos são removidos antes das linhas; as linhas caem numa única transação.
func (s *AccountService) DeleteByExternalID(ctx context.Context, externalID string) error {
	user, err := s.userRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if user == nil {
		s.logger.Info("account deletion ignored, user not found", "external_id", externalID)
		return nil
	}

	log := ports.ForOperation(s.logger, "user", user.ID, "delete_account")

	players, err := s.playerRepo.FindAnyByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	coaches, err := s.coachRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		return err
	}

	// Fotos saem antes da transação; se ela falhar, a reentrega do webhook remove as linhas restantes
	if err := s.deletePhotos(ctx, players, coaches); err != nil {
		log.Error("failed to delete profile photos", "error", err)
		return err
	}

	playerIDs := make([]string, 0, len(players))
	for _, p := range players {
		playerIDs = append(playerIDs, p.ID)
	}
	coachIDs := make([]string, 0, len(coaches))
	for _, c := range coaches {
		coachIDs = append(coachIDs, c.ID)
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.savedRepo.DeleteByPlayerIDs(txCtx, playerIDs); err != nil {
			return err
		}
		if _, err := s.noteRepo.DeleteByPlayerIDs(txCtx, playerIDs); err != nil {
			return err
		}
		if _, err := s.playerRepo.DeleteByUserID(txCtx, user.ID); err != nil {
			return err
		}
		if _, err := s.savedRepo.DeleteByCoachIDs(txCtx, coachIDs); err != nil {
			return err
		}
		if _, err := s.coachRepo.DeleteByUserID(txCtx, user.ID); err != nil {
			return err
		}
		if _, err := s.noteRepo.DeleteByAuthor(txCtx, user.ID); err != nil {
			return err
		}
		return s.userRepo.Delete(txCtx, user.ID)
	})
	if err != nil {
		log.Error("account deletion failed", "error", err)
		return err
	}

	log.Info("account deleted",
		"external_id", externalID,
		"players", len(playerIDs),
		"coaches", len(coachIDs),
	)
	return nil
}

func (s *AccountService) deletePhotos(ctx context.Context, players []*entities.PlayerProfile, coaches []*entities.CoachProfile) error {
	var urls []string
	for _, p := range players {
		if p.PhotoURL != nil && *p.PhotoURL != "" {
			urls = append(urls, *p.PhotoURL)
		}
	}
	for _, c := range coaches {
		if c.PhotoURL != nil && *c.PhotoURL != "" {
			urls = append(urls, *c.PhotoURL)
		}
	}

	for _, url := range urls {
		if err := s.storage.Delete(ctx, url); err != nil {
			return domainerrors.NewUpstreamError("storage", err)
		}
	}
	return nil
}
