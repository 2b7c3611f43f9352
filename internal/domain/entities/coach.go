package entities

import (
	"errors"
	"time"
)

// CoachProfile é o perfil de um técnico vinculado a um programa universitário.
// Não tem soft delete: só é removido pela exclusão da conta.
type CoachProfile struct {
	ID           string
	UserID       string
	ProgramID    string
	FirstName    string
	LastName     string
	Title        string
	Phone        string
	ContactEmail string
	Bio          string
	PhotoURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Program *Program // carregado sob demanda
}

// IsOwnedBy verifica se o perfil pertence ao usuário
func (c *CoachProfile) IsOwnedBy(userID string) bool {
	return c.UserID == userID
}

// Validate valida regras de negócio do perfil
func (c *CoachProfile) Validate() error {
	if c.UserID == "" {
		return errors.New("user is required")
	}
	if c.ProgramID == "" {
		return errors.New("program is required")
	}
	return nil
}

// CoachPatch contém apenas os campos enviados numa atualização
type CoachPatch struct {
	ProgramID    *string
	FirstName    *string
	LastName     *string
	Title        *string
	Phone        *string
	ContactEmail *string
	Bio          *string
}

// IsEmpty indica se nenhum campo foi enviado
func (cp CoachPatch) IsEmpty() bool {
	return cp == CoachPatch{}
}

// Apply aplica o patch ao perfil
func (cp CoachPatch) Apply(c *CoachProfile) {
	setString(&c.ProgramID, cp.ProgramID)
	setString(&c.FirstName, cp.FirstName)
	setString(&c.LastName, cp.LastName)
	setString(&c.Title, cp.Title)
	setString(&c.Phone, cp.Phone)
	setString(&c.ContactEmail, cp.ContactEmail)
	setString(&c.Bio, cp.Bio)
}

// SavedPlayer é a lista de atletas favoritos de um técnico
type SavedPlayer struct {
	ID        string
	CoachID   string
	PlayerID  string
	CreatedAt time.Time

	Player *PlayerProfile
}

// PlayerNote é uma anotação de um técnico sobre um atleta
type PlayerNote struct {
	ID           string
	AuthorUserID string
	PlayerID     string
	Body         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MaxNoteLength limita o tamanho de uma anotação
const MaxNoteLength = 5000

// IsAuthoredBy verifica a autoria da anotação
func (n *PlayerNote) IsAuthoredBy(userID string) bool {
	return n.AuthorUserID == userID
}

// Validate valida regras de negócio da anotação
func (n *PlayerNote) Validate() error {
	if n.Body == "" {
		return errors.New("body is required")
	}
	if len(n.Body) > MaxNoteLength {
		return errors.New("body is too long")
	}
	return nil
}
