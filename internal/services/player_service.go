package services

import (
	"context"
	"errors"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// PlayerService contém a lógica de negócio dos perfis de atleta
type PlayerService struct {
	playerRepo repositories.PlayerRepository
	billing    *BillingService
	storage    ports.BlobStorage
	logger     ports.Logger
}

// NewPlayerService cria um novo PlayerService
func NewPlayerService(
	playerRepo repositories.PlayerRepository,
	billing *BillingService,
	storage ports.BlobStorage,
	logger ports.Logger,
) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		billing:    billing,
		storage:    storage,
		logger:     logger,
	}
}

// Create cria o perfil do atleta; um perfil com soft delete do mesmo usuário é restaurado com os novos dados
func (s *PlayerService) Create(ctx context.Context, auth *AuthContext, input entities.PlayerPatch) (*entities.PlayerProfile, error) {
	if !auth.User.IsPlayer() {
		return nil, domainerrors.NewForbiddenError(domainerrors.ErrWrongRole)
	}
	if input.GraduationYear == nil {
		return nil, domainerrors.NewValidationError("graduationYear", "graduation year is required")
	}

	existing, err := s.playerRepo.FindAnyByUserID(ctx, auth.User.ID)
	if err != nil {
		return nil, err
	}

	var restored *entities.PlayerProfile
	for _, p := range existing {
		if !p.IsDeleted() {
			return nil, domainerrors.NewConflictError(domainerrors.ErrProfileExists)
		}
		restored = p
	}

	player := &entities.PlayerProfile{
		UserID:    auth.User.ID,
		FirstName: auth.User.FirstName,
		LastName:  auth.User.LastName,
	}
	if restored != nil {
		player.ID = restored.ID
		player.CreatedAt = restored.CreatedAt
		player.PhotoURL = restored.PhotoURL
	}
	input.Apply(player)

	if err := player.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("player", err.Error())
	}

	if restored != nil {
		if err := s.playerRepo.Update(ctx, player); err != nil {
			return nil, err
		}
		ports.ForOperation(s.logger, "player", player.ID, "restore").Info("player profile restored", "user_id", auth.User.ID)
		return player, nil
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, domainerrors.NewConflictError(domainerrors.ErrProfileExists)
		}
		return nil, err
	}

	ports.ForOperation(s.logger, "player", player.ID, "create").Info("player profile created", "user_id", auth.User.ID)
	return player, nil
}

// Get retorna um perfil ativo; o contato é ocultado para quem não pode vê-lo
func (s *PlayerService) Get(ctx context.Context, viewer *AuthContext, id string) (*entities.PlayerProfile, error) {
	player, err := s.playerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, domainerrors.NewNotFoundError("Player")
	}

	if !s.canSeeContact(ctx, viewer, player) {
		player.RedactContact()
	}
	return player, nil
}

// canSeeContact: o dono, admins e técnicos com assinatura ativa veem o contato
func (s *PlayerService) canSeeContact(ctx context.Context, viewer *AuthContext, player *entities.PlayerProfile) bool {
	if viewer == nil || viewer.User == nil {
		return false
	}

	switch viewer.User.Role {
	case entities.RoleAdmin:
		return true
	case entities.RolePlayer:
		return player.IsOwnedBy(viewer.User.ID)
	case entities.RoleCoach:
		active, err := s.billing.HasActiveSubscription(ctx, viewer.User)
		if err != nil {
			s.logger.Warn("subscription check failed, hiding contact", "user_id", viewer.User.ID, "error", err)
			return false
		}
		return active
	}
	return false
}

// Update aplica o patch ao perfil do próprio atleta
func (s *PlayerService) Update(ctx context.Context, auth *AuthContext, id string, patch entities.PlayerPatch) (*entities.PlayerProfile, error) {
	player, err := s.findOwned(ctx, auth, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(player)
	if err := player.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("player", err.Error())
	}

	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}

	ports.ForOperation(s.logger, "player", player.ID, "update").Info("player profile updated")
	return player, nil
}

// Delete aplica soft delete ao perfil do próprio atleta
func (s *PlayerService) Delete(ctx context.Context, auth *AuthContext, id string) error {
	player, err := s.findOwned(ctx, auth, id)
	if err != nil {
		return err
	}

	if err := s.playerRepo.SoftDelete(ctx, player.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return domainerrors.NewNotFoundError("Player")
		}
		return err
	}

	ports.ForOperation(s.logger, "player", player.ID, "delete").Info("player profile soft deleted")
	return nil
}

// UploadPhoto troca a foto do perfil do próprio atleta
func (s *PlayerService) UploadPhoto(ctx context.Context, auth *AuthContext, id string, upload ImageUpload) (*entities.PlayerProfile, error) {
	if err := upload.Validate(); err != nil {
		return nil, err
	}

	player, err := s.findOwned(ctx, auth, id)
	if err != nil {
		return nil, err
	}

	log := ports.ForOperation(s.logger, "player", player.ID, "upload_photo")
	oldURL := player.PhotoURL

	_, err = replaceImage(ctx, s.storage, log, ports.StoredObject{
		OwnerID:     player.ID,
		Role:        string(entities.RolePlayer),
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Body:        upload.Body,
	}, oldURL, func(ctx context.Context, url string) error {
		player.PhotoURL = &url
		return s.playerRepo.Update(ctx, player)
	})
	if err != nil {
		player.PhotoURL = oldURL
		return nil, err
	}

	log.Info("player photo updated")
	return player, nil
}

// List lista perfis ativos com filtros e paginação
func (s *PlayerService) List(ctx context.Context, filters repositories.PlayerFilters) (repositories.Page[*entities.PlayerProfile], error) {
	page, err := s.playerRepo.List(ctx, filters)
	if err != nil {
		return page, err
	}

	// A listagem pública nunca expõe contato
	for _, p := range page.Docs {
		p.RedactContact()
	}
	return page, nil
}

func (s *PlayerService) findOwned(ctx context.Context, auth *AuthContext, id string) (*entities.PlayerProfile, error) {
	player, err := s.playerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, domainerrors.NewNotFoundError("Player")
	}

	if err := EnsureOwner(auth, player.UserID); err != nil {
		ports.ForOperation(s.logger, "player", id, "ownership").Warn("ownership check failed", "user_id", auth.User.ID)
		return nil, err
	}
	return player, nil
}
