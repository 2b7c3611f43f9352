package dto

import (
	"time"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
)

// UserResponse representa o usuário local
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MeResponse é o usuário autenticado com o resumo do perfil do papel
type MeResponse struct {
	User               UserResponse    `json:"user"`
	Player             *PlayerResponse `json:"player,omitempty"`
	Coach              *CoachResponse  `json:"coach,omitempty"`
	OnboardingRequired bool            `json:"onboardingRequired"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email.String(),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Role:        string(user.Role),
		Permissions: user.GetPermissions(),
		CreatedAt:   user.CreatedAt,
	}
}

// ToMeResponse monta a resposta de /me
func ToMeResponse(user *entities.User, player *entities.PlayerProfile, coach *entities.CoachProfile, onboardingRequired bool) MeResponse {
	response := MeResponse{
		User:               ToUserResponse(user),
		OnboardingRequired: onboardingRequired,
	}
	if player != nil {
		p := ToPlayerResponse(player)
		response.Player = &p
	}
	if coach != nil {
		c := ToCoachResponse(coach)
		response.Coach = &c
	}
	return response
}

// BillingStatusResponse representa a situação da assinatura
type BillingStatusResponse struct {
	Active           bool       `json:"active"`
	HasCustomer      bool       `json:"hasCustomer"`
	CurrentPeriodEnd *time.Time `json:"currentPeriodEnd,omitempty"`
}

// RedirectResponse contém a URL para onde o frontend deve redirecionar
type RedirectResponse struct {
	URL string `json:"url"`
}
