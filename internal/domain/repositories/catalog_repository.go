package repositories

import (
	"context"
	"time"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
)

// ProgramSort enumera as ordenações da listagem de programas
type ProgramSort string

const (
	ProgramSortNameAsc  ProgramSort = "name_asc"
	ProgramSortNameDesc ProgramSort = "name_desc"
	ProgramSortNewest   ProgramSort = "newest"

	DefaultProgramSort = ProgramSortNameAsc
)

// ParseProgramSort retorna a ordenação ou o padrão
func ParseProgramSort(value string) ProgramSort {
	switch s := ProgramSort(value); s {
	case ProgramSortNameAsc, ProgramSortNameDesc, ProgramSortNewest:
		return s
	}
	return DefaultProgramSort
}

// ProgramFilters contém filtros opcionais para listagem de programas
type ProgramFilters struct {
	Search   string
	Division *entities.Division
	State    string
	City     string
	HasCoach *bool
	Sort     ProgramSort
	Pagination
}

// ProgramRepository define a interface para persistência de programas
type ProgramRepository interface {
	Create(ctx context.Context, program *entities.Program) error
	FindByID(ctx context.Context, id string) (*entities.Program, error)
	Update(ctx context.Context, program *entities.Program) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters ProgramFilters) (Page[*entities.Program], error)
}

// TournamentSort enumera as ordenações da listagem de torneios
type TournamentSort string

const (
	TournamentSortStartAsc  TournamentSort = "start_date_asc"
	TournamentSortStartDesc TournamentSort = "start_date_desc"
	TournamentSortNewest    TournamentSort = "newest"
	TournamentSortNameAsc   TournamentSort = "name_asc"

	DefaultTournamentSort = TournamentSortStartAsc
)

// ParseTournamentSort retorna a ordenação ou o padrão
func ParseTournamentSort(value string) TournamentSort {
	switch s := TournamentSort(value); s {
	case TournamentSortStartAsc, TournamentSortStartDesc, TournamentSortNewest, TournamentSortNameAsc:
		return s
	}
	return DefaultTournamentSort
}

// TournamentFilters contém filtros opcionais para listagem de torneios
type TournamentFilters struct {
	Search   string
	Division string
	State    string
	City     string
	From     *time.Time // início a partir de
	To       *time.Time // início até
	Sort     TournamentSort
	Pagination
}

// TournamentRepository define a interface para persistência de torneios
type TournamentRepository interface {
	Create(ctx context.Context, tournament *entities.Tournament) error
	FindByID(ctx context.Context, id string) (*entities.Tournament, error)
	Update(ctx context.Context, tournament *entities.Tournament) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters TournamentFilters) (Page[*entities.Tournament], error)
}
