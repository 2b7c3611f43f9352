package entities

import (
	"errors"
	"time"

	"github.com/rafabene/recruit-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User é o registro local de uma identidade do provedor externo
type User struct {
	ID           string
	ExternalID   string
	Email        valueobjects.Email
	FirstName    string
	LastName     string
	PasswordHash string // placeholder inutilizável, autenticação é delegada
	Role         Role

	// Vínculo com o provedor de billing
	StripeCustomerID       *string
	StripeSubscriptionID   *string
	StripeCurrentPeriodEnd *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsPlayer verifica se o usuário é atleta
func (u *User) IsPlayer() bool {
	return u.Role == RolePlayer
}

// IsCoach verifica se o usuário é técnico
func (u *User) IsCoach() bool {
	return u.Role == RoleCoach
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// GetPermissions retorna todas as permissões do usuário
func (u *User) GetPermissions() []string {
	perms := u.Role.GetPermissions()
	result := make([]string, len(perms))
	for i, p := range perms {
		result[i] = string(p)
	}
	return result
}

// FullName retorna nome e sobrenome
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// HasBillingCustomer indica se já existe cliente no provedor de billing
func (u *User) HasBillingCustomer() bool {
	return u.StripeCustomerID != nil && *u.StripeCustomerID != ""
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.ExternalID == "" {
		return errors.New("external id is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	return nil
}
