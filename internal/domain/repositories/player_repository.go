package repositories

import (
	"context"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
)

// PlayerSort enumera as ordenações aceitas na listagem de atletas
type PlayerSort string

const (
	PlayerSortNewest       PlayerSort = "newest"
	PlayerSortOldest       PlayerSort = "oldest"
	PlayerSortGPAAsc       PlayerSort = "gpa_asc"
	PlayerSortGPADesc      PlayerSort = "gpa_desc"
	PlayerSortGradYearAsc  PlayerSort = "grad_year_asc"
	PlayerSortGradYearDesc PlayerSort = "grad_year_desc"
	PlayerSortNameAsc      PlayerSort = "name_asc"

	// DefaultPlayerSort vale para chave ausente ou desconhecida
	DefaultPlayerSort = PlayerSortNewest
)

// ParsePlayerSort retorna a ordenação ou o padrão
func ParsePlayerSort(value string) PlayerSort {
	switch s := PlayerSort(value); s {
	case PlayerSortNewest, PlayerSortOldest, PlayerSortGPAAsc, PlayerSortGPADesc,
		PlayerSortGradYearAsc, PlayerSortGradYearDesc, PlayerSortNameAsc:
		return s
	}
	return DefaultPlayerSort
}

// PlayerFilters contém filtros opcionais para listagem de atletas.
// Campos nil ou vazios não geram predicado.
type PlayerFilters struct {
	GraduationYear *int
	Position       string
	MinGPA         *float64
	MaxGPA         *float64
	MinHeight      *int // polegadas
	MaxHeight      *int
	State          string
	City           string // substring, sem diferenciar maiúsculas
	Search         string
	Sort           PlayerSort
	Pagination
}

// PlayerRepository define a interface para persistência de perfis de atleta
type PlayerRepository interface {
	// Create falha com ErrDuplicate se o usuário já tiver perfil
	Create(ctx context.Context, player *entities.PlayerProfile) error
	// FindByID ignora perfis com soft delete
	FindByID(ctx context.Context, id string) (*entities.PlayerProfile, error)
	// FindByUserID ignora perfis com soft delete
	FindByUserID(ctx context.Context, userID string) (*entities.PlayerProfile, error)
	// FindAnyByUserID inclui perfis com soft delete
	FindAnyByUserID(ctx context.Context, userID string) ([]*entities.PlayerProfile, error)
	Update(ctx context.Context, player *entities.PlayerProfile) error
	SoftDelete(ctx context.Context, id string) error
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
	List(ctx context.Context, filters PlayerFilters) (Page[*entities.PlayerProfile], error)
}
