package services

import (
	"context"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/recruit-backend/internal/domain/errors"
	"github.com/rafabene/recruit-backend/internal/domain/ports"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// AuthContext é o resultado de um guard, repassado explicitamente às operações
type AuthContext struct {
	Identity *ports.Identity
	User     *entities.User
	Player   *entities.PlayerProfile
	Coach    *entities.CoachProfile
}

// OnboardingRequired indica que o papel exige um perfil ainda não criado
func (a *AuthContext) OnboardingRequired() bool {
	switch a.User.Role {
	case entities.RolePlayer:
		return a.Player == nil
	case entities.RoleCoach:
		return a.Coach == nil
	}
	return false
}

// AuthGuard resolve a identidade da requisição em usuário local e perfil de papel
type AuthGuard struct {
	users      *UserService
	playerRepo repositories.PlayerRepository
	coachRepo  repositories.CoachRepository
}

// NewAuthGuard cria um novo AuthGuard
func NewAuthGuard(
	users *UserService,
	playerRepo repositories.PlayerRepository,
	coachRepo repositories.CoachRepository,
) *AuthGuard {
	return &AuthGuard{
		users:      users,
		playerRepo: playerRepo,
		coachRepo:  coachRepo,
	}
}

// RequireUser exige uma identidade e a reconcilia com o usuário local
func (g *AuthGuard) RequireUser(ctx context.Context, identity *ports.Identity) (*AuthContext, error) {
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := g.users.Reconcile(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &AuthContext{Identity: identity, User: user}, nil
}

// RequirePlayer exige papel player com perfil ativo; caso contrário ProfileNotFound
func (g *AuthGuard) RequirePlayer(ctx context.Context, identity *ports.Identity) (*AuthContext, error) {
	auth, err := g.RequireUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	if !auth.User.IsPlayer() {
		return nil, domainerrors.NewProfileNotFoundError(string(entities.RolePlayer))
	}

	player, err := g.playerRepo.FindByUserID(ctx, auth.User.ID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, domainerrors.NewProfileNotFoundError(string(entities.RolePlayer))
	}

	auth.Player = player
	return auth, nil
}

// RequireCoach exige papel coach com perfil; caso contrário ProfileNotFound
func (g *AuthGuard) RequireCoach(ctx context.Context, identity *ports.Identity) (*AuthContext, error) {
	auth, err := g.RequireUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	if !auth.User.IsCoach() {
		return nil, domainerrors.NewProfileNotFoundError(string(entities.RoleCoach))
	}

	coach, err := g.coachRepo.FindByUserID(ctx, auth.User.ID)
	if err != nil {
		return nil, err
	}
	if coach == nil {
		return nil, domainerrors.NewProfileNotFoundError(string(entities.RoleCoach))
	}

	auth.Coach = coach
	return auth, nil
}

// RequireAdmin exige papel admin
func (g *AuthGuard) RequireAdmin(ctx context.Context, identity *ports.Identity) (*AuthContext, error) {
	auth, err := g.RequireUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	if !auth.User.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}
	return auth, nil
}

// RequirePermission exige que o papel do usuário conceda a permissão
func (g *AuthGuard) RequirePermission(ctx context.Context, identity *ports.Identity, permission entities.Permission) (*AuthContext, error) {
	auth, err := g.RequireUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	if !auth.User.HasPermission(permission) {
		return nil, domainerrors.ErrForbidden
	}
	return auth, nil
}

// LoadProfile carrega o perfil do papel, se existir, sem exigir (usado por /me)
func (g *AuthGuard) LoadProfile(ctx context.Context, auth *AuthContext) error {
	switch auth.User.Role {
	case entities.RolePlayer:
		player, err := g.playerRepo.FindByUserID(ctx, auth.User.ID)
		if err != nil {
			return err
		}
		auth.Player = player
	case entities.RoleCoach:
		coach, err := g.coachRepo.FindByUserID(ctx, auth.User.ID)
		if err != nil {
			return err
		}
		auth.Coach = coach
	}
	return nil
}

// EnsureOwner verifica se o recurso pertence ao usuário autenticado
func EnsureOwner(auth *AuthContext, ownerUserID string) error {
	if auth == nil || auth.User == nil || auth.User.ID != ownerUserID {
		return domainerrors.NewForbiddenError(domainerrors.ErrNotOwner)
	}
	return nil
}
