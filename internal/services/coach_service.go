package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// CoachService contém a lógica de negócio dos perfis de técnico e da lista de favoritos
type CoachService struct {
	coachRepo   repositories.CoachRepository
	programRepo repositories.ProgramRepository
	playerRepo  repositories.PlayerRepository
	savedRepo   repositories.SavedPlayerRepository
	storage     ports.BlobStorage
	logger      ports.Logger
}

// NewCoachService cria um novo CoachService
func NewCoachService(
	coachRepo repositories.CoachRepository,
	programRepo repositories.ProgramRepository,
	playerRepo repositories.PlayerRepository,
	savedRepo repositories.SavedPlayerRepository,
	storage ports.BlobStorage,
	logger ports.Logger,
) *CoachService {
	return &CoachService{
		coachRepo:   coachRepo,
		programRepo: programRepo,
		playerRepo:  playerRepo,
		savedRepo:   savedRepo,
		storage:     storage,
		logger:      logger,
	}
}

// Create cria o perfil do técnico vinculado a um programa existente
func (s *CoachService) Create(ctx context.Context, auth *AuthContext, input entities.CoachPatch) (*entities.CoachProfile, error) {
	if !auth.User.IsCoach() {
		return nil, domainerrors.NewForbiddenError(domainerrors.ErrWrongRole)
	}
	if input.ProgramID == nil || strings.TrimSpace(*input.ProgramID) == "" {
		return nil, domainerrors.NewValidationError("programId", "college program is required")
	}

	program, err := s.findProgram(ctx, *input.ProgramID)
	if err != nil {
		return nil, err
	}

	existing, err := s.coachRepo.FindByUserID(ctx, auth.User.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.NewConflictError(domainerrors.ErrProfileExists)
	}

	coach := &entities.CoachProfile{
		UserID:       auth.User.ID,
		FirstName:    auth.User.FirstName,
		LastName:     auth.User.LastName,
		ContactEmail: auth.User.Email.String(),
	}
	input.Apply(coach)

	if err := coach.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("coach", err.Error())
	}

	if err := s.coachRepo.Create(ctx, coach); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, domainerrors.NewConflictError(domainerrors.ErrProfileExists)
		}
		return nil, err
	}

	coach.Program = program
	ports.ForOperation(s.logger, "coach", coach.ID, "create").Info("coach profile created",
		"user_id", auth.User.ID,
		"program_id", program.ID,
	)
	return coach, nil
}

// GetMine retorna o perfil do técnico autenticado com o programa
func (s *CoachService) GetMine(ctx context.Context, auth *AuthContext) (*entities.CoachProfile, error) {
	coach := auth.Coach

	program, err := s.programRepo.FindByID(ctx, coach.ProgramID)
	if err != nil {
		return nil, err
	}
	coach.Program = program
	return coach, nil
}

// Update aplica o patch ao perfil do próprio técnico
func (s *CoachService) Update(ctx context.Context, auth *AuthContext, id string, patch entities.CoachPatch) (*entities.CoachProfile, error) {
	coach, err := s.findOwned(ctx, auth, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(coach)
	if err := coach.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("coach", err.Error())
	}
	program, err := s.findProgram(ctx, coach.ProgramID)
	if err != nil {
		return nil, err
	}

	if err := s.coachRepo.Update(ctx, coach); err != nil {
		return nil, err
	}

	coach.Program = program
	ports.ForOperation(s.logger, "coach", coach.ID, "update").Info("coach profile updated")
	return coach, nil
}

// UploadPhoto troca a foto do perfil do próprio técnico
func (s *CoachService) UploadPhoto(ctx context.Context, auth *AuthContext, id string, upload ImageUpload) (*entities.CoachProfile, error) {
	if err := upload.Validate(); err != nil {
		return nil, err
	}

	coach, err := s.findOwned(ctx, auth, id)
	if err != nil {
		return nil, err
	}

	log := ports.ForOperation(s.logger, "coach", coach.ID, "upload_photo")
	oldURL := coach.PhotoURL

	_, err = replaceImage(ctx, s.storage, log, ports.StoredObject{
		OwnerID:     coach.ID,
		Role:        string(entities.RoleCoach),
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Body:        upload.Body,
	}, oldURL, func(ctx context.Context, url string) error {
		coach.PhotoURL = &url
		return s.coachRepo.Update(ctx, coach)
	})
	if err != nil {
		coach.PhotoURL = oldURL
		return nil, err
	}

	log.Info("coach photo updated")
	return coach, nil
}

// SavePlayer adiciona um atleta ativo aos favoritos do técnico
func (s *CoachService) SavePlayer(ctx context.Context, auth *AuthContext, playerID string) (*entities.SavedPlayer, error) {
	player, err := s.playerRepo.FindByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, domainerrors.NewNotFoundError("Player")
	}

	saved := &entities.SavedPlayer{
		CoachID:  auth.Coach.ID,
		PlayerID: player.ID,
	}
	if err := s.savedRepo.Create(ctx, saved); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, domainerrors.NewConflictError(domainerrors.ErrAlreadySaved)
		}
		return nil, err
	}

	player.RedactContact()
	saved.Player = player
	ports.ForOperation(s.logger, "saved_player", saved.ID, "create").Info("player saved",
		"coach_id", auth.Coach.ID,
		"player_id", player.ID,
	)
	return saved, nil
}

// UnsavePlayer remove um atleta dos favoritos do técnico
func (s *CoachService) UnsavePlayer(ctx context.Context, auth *AuthContext, playerID string) error {
	removed, err := s.savedRepo.Delete(ctx, auth.Coach.ID, playerID)
	if err != nil {
		return err
	}
	if !removed {
		return domainerrors.NewNotFoundError("SavedPlayer")
	}
	return nil
}

// ListSaved lista os favoritos do técnico cujos atletas seguem ativos, sem contato
func (s *CoachService) ListSaved(ctx context.Context, auth *AuthContext, p repositories.Pagination) (repositories.Page[*entities.SavedPlayer], error) {
	page, err := s.savedRepo.ListByCoach(ctx, auth.Coach.ID, p)
	if err != nil {
		return page, err
	}

	for _, saved := range page.Docs {
		if saved.Player != nil {
			saved.Player.RedactContact()
		}
	}
	return page, nil
}

func (s *CoachService) findProgram(ctx context.Context, id string) (*entities.Program, error) {
	program, err := s.programRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, domainerrors.NewNotFoundError("Program")
	}
	return program, nil
}

func (s *CoachService) findOwned(ctx context.Context, auth *AuthContext, id string) (*entities.CoachProfile, error) {
	coach, err := s.coachRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if coach == nil {
		return nil, domainerrors.NewNotFoundError("Coach")
	}

	if err := EnsureOwner(auth, coach.UserID); err != nil {
		ports.ForOperation(s.logger, "coach", id, "ownership").Warn("ownership check failed", "user_id", auth.User.ID)
		return nil, err
	}
	return coach, nil
}
