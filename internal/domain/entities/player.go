package entities

import (
	"errors"
	"time"
)

// Limites aceitos para o ano de formatura no ensino médio
const (
	MinGraduationYear = 2000
	MaxGraduationYear = 2100
)

// PlayerProfile é o perfil de recrutamento de um atleta
type PlayerProfile struct {
	ID                string
	UserID            string
	FirstName         string
	LastName          string
	GraduationYear    int
	Position          string
	SecondaryPosition string
	HeightInches      *int
	WeightLbs         *int
	GPA               *float64
	SAT               *int
	ACT               *int
	HighSchool        string
	ClubTeam          string
	City              string
	State             string
	Bio               string

	// Contato (ocultado para quem não pode ver)
	Phone        string
	ContactEmail string
	Twitter      string
	Instagram    string

	VideoURL string
	PhotoURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
}

// IsDeleted verifica se o perfil foi deletado (soft delete)
func (p *PlayerProfile) IsDeleted() bool {
	return p.DeletedAt != nil
}

// SoftDelete marca o perfil como deletado
func (p *PlayerProfile) SoftDelete() {
	now := time.Now()
	p.DeletedAt = &now
}

// Restore restaura um perfil deletado
func (p *PlayerProfile) Restore() {
	p.DeletedAt = nil
}

// IsOwnedBy verifica se o perfil pertence ao usuário
func (p *PlayerProfile) IsOwnedBy(userID string) bool {
	return p.UserID == userID
}

// RedactContact remove os dados de contato do perfil
func (p *PlayerProfile) RedactContact() {
	p.Phone = ""
	p.ContactEmail = ""
	p.Twitter = ""
	p.Instagram = ""
}

// Validate valida regras de negócio do perfil
func (p *PlayerProfile) Validate() error {
	if p.UserID == "" {
		return errors.New("user is required")
	}

	if p.GraduationYear < MinGraduationYear || p.GraduationYear > MaxGraduationYear {
		return errors.New("graduation year out of range")
	}

	if p.GPA != nil && (*p.GPA < 0 || *p.GPA > 5) {
		return errors.New("gpa must be between 0 and 5")
	}

	return nil
}

// PlayerPatch contém apenas os campos enviados numa atualização.
// Campos nil não são alterados.
type PlayerPatch struct {
	FirstName         *string
	LastName          *string
	GraduationYear    *int
	Position          *string
	SecondaryPosition *string
	HeightInches      *int
	WeightLbs         *int
	GPA               *float64
	SAT               *int
	ACT               *int
	HighSchool        *string
	ClubTeam          *string
	City              *string
	State             *string
	Bio               *string
	Phone             *string
	ContactEmail      *string
	Twitter           *string
	Instagram         *string
	VideoURL          *string
}

// IsEmpty indica se nenhum campo foi enviado
func (pp PlayerPatch) IsEmpty() bool {
	return pp == PlayerPatch{}
}

// Apply aplica o patch ao perfil
func (pp PlayerPatch) Apply(p *PlayerProfile) {
	setString(&p.FirstName, pp.FirstName)
	setString(&p.LastName, pp.LastName)
	if pp.GraduationYear != nil {
		p.GraduationYear = *pp.GraduationYear
	}
	setString(&p.Position, pp.Position)
	setString(&p.SecondaryPosition, pp.SecondaryPosition)
	if pp.HeightInches != nil {
		p.HeightInches = pp.HeightInches
	}
	if pp.WeightLbs != nil {
		p.WeightLbs = pp.WeightLbs
	}
	if pp.GPA != nil {
		p.GPA = pp.GPA
	}
	if pp.SAT != nil {
		p.SAT = pp.SAT
	}
	if pp.ACT != nil {
		p.ACT = pp.ACT
	}
	setString(&p.HighSchool, pp.HighSchool)
	setString(&p.ClubTeam, pp.ClubTeam)
	setString(&p.City, pp.City)
	setString(&p.State, pp.State)
	setString(&p.Bio, pp.Bio)
	setString(&p.Phone, pp.Phone)
	setString(&p.ContactEmail, pp.ContactEmail)
	setString(&p.Twitter, pp.Twitter)
	setString(&p.Instagram, pp.Instagram)
	setString(&p.VideoURL, pp.VideoURL)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
