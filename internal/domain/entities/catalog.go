package entities

import (
	"errors"
	"strings"
	"time"
)

// Division representa a divisão de um programa universitário
type Division string

const (
	DivisionD1   Division = "D1"
	DivisionD2   Division = "D2"
	DivisionD3   Division = "D3"
	DivisionNAIA Division = "NAIA"
	DivisionJUCO Division = "JUCO"
)

// ParseDivision normaliza e valida a divisão
func ParseDivision(value string) (Division, bool) {
	d := Division(strings.ToUpper(strings.TrimSpace(value)))
	switch d {
	case DivisionD1, DivisionD2, DivisionD3, DivisionNAIA, DivisionJUCO:
		return d, true
	}
	return "", false
}

// Program é um programa esportivo universitário
type Program struct {
	ID         string
	Name       string
	Division   Division
	Conference string
	City       string
	State      string
	Website    string
	LogoURL    *string
	HasCoach   bool // derivado: existe técnico vinculado
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate valida regras de negócio do programa
func (p *Program) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if _, ok := ParseDivision(string(p.Division)); !ok {
		return errors.New("invalid division")
	}
	return nil
}

// Tournament é um torneio/showcase onde técnicos avaliam atletas
type Tournament struct {
	ID        string
	Name      string
	Division  string // categoria ou nível
	City      string
	State     string
	Venue     string
	StartDate time.Time
	EndDate   time.Time
	Website   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate valida regras de negócio do torneio
func (t *Tournament) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("name is required")
	}
	if t.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	if !t.EndDate.IsZero() && t.EndDate.Before(t.StartDate) {
		return errors.New("end date must not be before start date")
	}
	return nil
}

// ProgramPatch contém apenas os campos enviados numa atualização
type ProgramPatch struct {
	Name       *string
	Division   *Division
	Conference *string
	City       *string
	State      *string
	Website    *string
}

// Apply aplica o patch ao programa
func (pp ProgramPatch) Apply(p *Program) {
	setString(&p.Name, pp.Name)
	if pp.Division != nil {
		p.Division = *pp.Division
	}
	setString(&p.Conference, pp.Conference)
	setString(&p.City, pp.City)
	setString(&p.State, pp.State)
	setString(&p.Website, pp.Website)
}

// TournamentPatch contém apenas os campos enviados numa atualização
type TournamentPatch struct {
	Name      *string
	Division  *string
	City      *string
	State     *string
	Venue     *string
	StartDate *time.Time
	EndDate   *time.Time
	Website   *string
}

// Apply aplica o patch ao torneio
func (tp TournamentPatch) Apply(t *Tournament) {
	setString(&t.Name, tp.Name)
	setString(&t.Division, tp.Division)
	setString(&t.City, tp.City)
	setString(&t.State, tp.State)
	setString(&t.Venue, tp.Venue)
	if tp.StartDate != nil {
		t.StartDate = *tp.StartDate
	}
	if tp.EndDate != nil {
		t.EndDate = *tp.EndDate
	}
	setString(&t.Website, tp.Website)
}
