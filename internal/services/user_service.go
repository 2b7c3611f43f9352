package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
	"github.com/rafabene/recruit-backend/internal/domain/valueobjects"
)

// UserService reconcilia identidades externas com o registro local de usuários
type UserService struct {
	userRepo   repositories.UserRepository
	playerRepo repositories.PlayerRepository
	coachRepo  repositories.CoachRepository
	logger     ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	playerRepo repositories.PlayerRepository,
	coachRepo repositories.CoachRepository,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
		logger:     logger,
	}
}

// Reconcile retorna o usuário local da identidade, criando-o no primeiro contato.
// Um usuário existente é retornado como está: o papel local não é sobrescrito.
func (s *UserService) Reconcile(ctx context.Context, identity *ports.Identity) (*entities.User, error) {
	if identity == nil || identity.ExternalID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	existing, err := s.userRepo.FindByExternalID(ctx, identity.ExternalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	email, err := valueobjects.NewEmail(identity.Email)
	if err != nil {
		return nil, domainerrors.NewValidationError("email", err.Error())
	}

	hash, err := placeholderPassword()
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ExternalID:   identity.ExternalID,
		Email:        email,
		FirstName:    identity.FirstName,
		LastName:     identity.LastName,
		PasswordHash: hash,
		Role:         entities.RoleFromMetadata(identity.Role, identity.UserType),
	}
	if err := user.Validate(); err != nil {
		return nil, domainerrors.NewValidationError("user", err.Error())
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, repositories.ErrDuplicate) {
			return nil, err
		}

		// Primeiro contato concorrente: a outra requisição venceu a inserção
		winner, findErr := s.userRepo.FindByExternalID(ctx, identity.ExternalID)
		if findErr != nil {
			return nil, findErr
		}
		if winner == nil {
			return nil, err
		}
		return winner, nil
	}

	s.logger.Info("user reconciled",
		"user_id", user.ID,
		"external_id", user.ExternalID,
		"role", user.Role,
	)

	return user, nil
}

// ApplyIdentityUpdate sincroniza email e nome vindos do provedor.
// O papel dos metadados só é aplicado enquanto o usuário não tiver perfil de papel.
func (s *UserService) ApplyIdentityUpdate(ctx context.Context, identity ports.Identity) (*entities.User, error) {
	user, err := s.userRepo.FindByExternalID(ctx, identity.ExternalID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return s.Reconcile(ctx, &identity)
	}

	if identity.Email != "" {
		email, err := valueobjects.NewEmail(identity.Email)
		if err != nil {
			return nil, domainerrors.NewValidationError("email", err.Error())
		}
		user.Email = email
	}
	user.FirstName = identity.FirstName
	user.LastName = identity.LastName

	if identity.Role != "" || identity.UserType != "" {
		hasProfile, err := s.hasRoleProfile(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		role := entities.RoleFromMetadata(identity.Role, identity.UserType)
		switch {
		case role == user.Role:
		case hasProfile:
			s.logger.Warn("identity role change ignored, user already has a role profile",
				"user_id", user.ID,
				"current_role", user.Role,
				"requested_role", role,
			)
		default:
			user.Role = role
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID busca um usuário por ID
func (s *UserService) GetByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) hasRoleProfile(ctx context.Context, userID string) (bool, error) {
	players, err := s.playerRepo.FindAnyByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	if len(players) > 0 {
		return true, nil
	}

	coach, err := s.coachRepo.FindByUserID(ctx, userID)
	if err != nil {
		return false, err
	}
	return coach != nil, nil
}

// placeholderPassword gera um hash para uma senha aleatória descartada; login local é impossível
func placeholderPassword() (string, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("failed to generate placeholder password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(secret)), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash placeholder password: %w", err)
	}
	return string(hash), nil
}
