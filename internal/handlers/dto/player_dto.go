package dto

import (
	"strings"
	"time"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	"github.com/rafabene/recruit-backend/internal/domain/valueobjects"
)

// PlayerRequest é o corpo de criação e atualização do perfil de atleta.
// Campos ausentes não são alterados.
type PlayerRequest struct {
	FirstName         *string  `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName          *string  `json:"lastName" binding:"omitempty,min=1,max=100"`
	GraduationYear    *int     `json:"graduationYear" binding:"omitempty,gradyear"`
	Position          *string  `json:"position" binding:"omitempty,max=50"`
	SecondaryPosition *string  `json:"secondaryPosition" binding:"omitempty,max=50"`
	Height            *string  `json:"height" binding:"omitempty,max=10"` // "74", 6'2" ou 6-2
	HeightInches      *int     `json:"heightInches" binding:"omitempty,min=48,max=96"`
	WeightLbs         *int     `json:"weightLbs" binding:"omitempty,min=50,max=400"`
	GPA               *float64 `json:"gpa" binding:"omitempty,min=0,max=5"`
	SAT               *int     `json:"sat" binding:"omitempty,min=400,max=1600"`
	ACT               *int     `json:"act" binding:"omitempty,min=1,max=36"`
	HighSchool        *string  `json:"highSchool" binding:"omitempty,max=150"`
	ClubTeam          *string  `json:"clubTeam" binding:"omitempty,max=150"`
	City              *string  `json:"city" binding:"omitempty,max=100"`
	State             *string  `json:"state" binding:"omitempty,usstate"`
	Bio               *string  `json:"bio" binding:"omitempty,max=2000"`
	Phone             *string  `json:"phone" binding:"omitempty,max=30"`
	ContactEmail      *string  `json:"contactEmail" binding:"omitempty,email"`
	Twitter           *string  `json:"twitter" binding:"omitempty,max=100"`
	Instagram         *string  `json:"instagram" binding:"omitempty,max=100"`
	VideoURL          *string  `json:"videoUrl" binding:"omitempty,url"`
}

// ToPatch converte a requisição em patch; altura textual tem prioridade sobre heightInches
func (r PlayerRequest) ToPatch() (entities.PlayerPatch, error) {
	patch := entities.PlayerPatch{
		FirstName:         trimmed(r.FirstName),
		LastName:          trimmed(r.LastName),
		GraduationYear:    r.GraduationYear,
		Position:          trimmed(r.Position),
		SecondaryPosition: trimmed(r.SecondaryPosition),
		HeightInches:      r.HeightInches,
		WeightLbs:         r.WeightLbs,
		GPA:               r.GPA,
		SAT:               r.SAT,
		ACT:               r.ACT,
		HighSchool:        trimmed(r.HighSchool),
		ClubTeam:          trimmed(r.ClubTeam),
		City:              trimmed(r.City),
		State:             upper(r.State),
		Bio:               r.Bio,
		Phone:             trimmed(r.Phone),
		ContactEmail:      trimmed(r.ContactEmail),
		Twitter:           trimmed(r.Twitter),
		Instagram:         trimmed(r.Instagram),
		VideoURL:          trimmed(r.VideoURL),
	}

	if r.Height != nil {
		inches, err := valueobjects.ParseHeightInches(*r.Height)
		if err != nil {
			return patch, err
		}
		patch.HeightInches = &inches
	}
	return patch, nil
}

// PlayerResponse representa o perfil público do atleta; contatos vazios são omitidos
type PlayerResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	GraduationYear    int       `json:"graduationYear"`
	Position          string    `json:"position,omitempty"`
	SecondaryPosition string    `json:"secondaryPosition,omitempty"`
	HeightInches      *int      `json:"heightInches,omitempty"`
	Height            string    `json:"height,omitempty"`
	WeightLbs         *int      `json:"weightLbs,omitempty"`
	GPA               *float64  `json:"gpa,omitempty"`
	SAT               *int      `json:"sat,omitempty"`
	ACT               *int      `json:"act,omitempty"`
	HighSchool        string    `json:"highSchool,omitempty"`
	ClubTeam          string    `json:"clubTeam,omitempty"`
	City              string    `json:"city,omitempty"`
	State             string    `json:"state,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	ContactEmail      string    `json:"contactEmail,omitempty"`
	Twitter           string    `json:"twitter,omitempty"`
	Instagram         string    `json:"instagram,omitempty"`
	VideoURL          string    `json:"videoUrl,omitempty"`
	PhotoURL          *string   `json:"photoUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ToPlayerResponse converte o perfil para a resposta
func ToPlayerResponse(p *entities.PlayerProfile) PlayerResponse {
	response := PlayerResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		FirstName:         p.FirstName,
		LastName:          p.LastName,
		GraduationYear:    p.GraduationYear,
		Position:          p.Position,
		SecondaryPosition: p.SecondaryPosition,
		HeightInches:      p.HeightInches,
		WeightLbs:         p.WeightLbs,
		GPA:               p.GPA,
		SAT:               p.SAT,
		ACT:               p.ACT,
		HighSchool:        p.HighSchool,
		ClubTeam:          p.ClubTeam,
		City:              p.City,
		State:             p.State,
		Bio:               p.Bio,
		Phone:             p.Phone,
		ContactEmail:      p.ContactEmail,
		Twitter:           p.Twitter,
		Instagram:         p.Instagram,
		VideoURL:          p.VideoURL,
		PhotoURL:          p.PhotoURL,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.HeightInches != nil {
		response.Height = valueobjects.FormatHeight(*p.HeightInches)
	}
	return response
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func upper(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*s))
	return &v
}
