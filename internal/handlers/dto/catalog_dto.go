package dto

import (
	"time"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
)

// DateLayout é o formato das datas de torneio
const DateLayout = "2006-01-02"

// CreateProgramRequest é o corpo de cadastro de programa
type CreateProgramRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	Division   string `json:"division" binding:"required"`
	Conference string `json:"conference" binding:"max=100"`
	City       string `json:"city" binding:"max=100"`
	State      string `json:"state" binding:"omitempty,usstate"`
	Website    string `json:"website" binding:"omitempty,url"`
}

// ToEntity converte a requisição em programa
func (r CreateProgramRequest) ToEntity() *entities.Program {
	return &entities.Program{
		Name:       r.Name,
		Division:   entities.Division(r.Division),
		Conference: r.Conference,
		City:       r.City,
		State:      *upper(&r.State),
		Website:    r.Website,
	}
}

// UpdateProgramRequest é o corpo de atualização de programa
type UpdateProgramRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=200"`
	Division   *string `json:"division"`
	Conference *string `json:"conference" binding:"omitempty,max=100"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	State      *string `json:"state" binding:"omitempty,usstate"`
	Website    *string `json:"website" binding:"omitempty,url"`
}

// ToPatch converte a requisição em patch
func (r UpdateProgramRequest) ToPatch() entities.ProgramPatch {
	patch := entities.ProgramPatch{
		Name:       trimmed(r.Name),
		Conference: trimmed(r.Conference),
		City:       trimmed(r.City),
		State:      upper(r.State),
		Website:    trimmed(r.Website),
	}
	if r.Division != nil {
		d := entities.Division(*r.Division)
		patch.Division = &d
	}
	return patch
}

// ProgramResponse representa um programa universitário
type ProgramResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Division   string    `json:"division"`
	Conference string    `json:"conference,omitempty"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"`
	Website    string    `json:"website,omitempty"`
	LogoURL    *string   `json:"logoUrl,omitempty"`
	HasCoach   bool      `json:"hasCoach"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToProgramResponse converte o programa para a resposta
func ToProgramResponse(p *entities.Program) ProgramResponse {
	return ProgramResponse{
		ID:         p.ID,
		Name:       p.Name,
		Division:   string(p.Division),
		Conference: p.Conference,
		City:       p.City,
		State:      p.State,
		Website:    p.Website,
		LogoURL:    p.LogoURL,
		HasCoach:   p.HasCoach,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// CreateTournamentRequest é o corpo de cadastro de torneio
type CreateTournamentRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	Division  string `json:"division" binding:"max=50"`
	City      string `json:"city" binding:"max=100"`
	State     string `json:"state" binding:"omitempty,usstate"`
	Venue     string `json:"venue" binding:"max=200"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Website   string `json:"website" binding:"omitempty,url"`
}

// ToEntity converte a requisição em torneio; as datas já foram validadas pelo binding
func (r CreateTournamentRequest) ToEntity() *entities.Tournament {
	t := &entities.Tournament{
		Name:     r.Name,
		Division: r.Division,
		City:     r.City,
		State:    *upper(&r.State),
		Venue:    r.Venue,
		Website:  r.Website,
	}
	t.StartDate, _ = time.Parse(DateLayout, r.StartDate)
	if r.EndDate != "" {
		t.EndDate, _ = time.Parse(DateLayout, r.EndDate)
	}
	return t
}

// UpdateTournamentRequest é o corpo de atualização de torneio
type UpdateTournamentRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=200"`
	Division  *string `json:"division" binding:"omitempty,max=50"`
	City      *string `json:"city" binding:"omitempty,max=100"`
	State     *string `json:"state" binding:"omitempty,usstate"`
	Venue     *string `json:"venue" binding:"omitempty,max=200"`
	StartDate *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Website   *string `json:"website" binding:"omitempty,url"`
}

// ToPatch converte a requisição em patch
func (r UpdateTournamentRequest) ToPatch() entities.TournamentPatch {
	return entities.TournamentPatch{
		Name:      trimmed(r.Name),
		Division:  trimmed(r.Division),
		City:      trimmed(r.City),
		State:     upper(r.State),
		Venue:     trimmed(r.Venue),
		StartDate: parseDate(r.StartDate),
		EndDate:   parseDate(r.EndDate),
		Website:   trimmed(r.Website),
	}
}

// TournamentResponse representa um torneio
type TournamentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Division  string    `json:"division,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Venue     string    `json:"venue,omitempty"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate,omitempty"`
	Website   string    `json:"website,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToTournamentResponse converte o torneio para a resposta
func ToTournamentResponse(t *entities.Tournament) TournamentResponse {
	response := TournamentResponse{
		ID:        t.ID,
		Name:      t.Name,
		Division:  t.Division,
		City:      t.City,
		State:     t.State,
		Venue:     t.Venue,
		StartDate: t.StartDate.Format(DateLayout),
		Website:   t.Website,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if !t.EndDate.IsZero() {
		response.EndDate = t.EndDate.Format(DateLayout)
	}
	return response
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
