package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

// TournamentRepository implementa repositories.TournamentRepository
type TournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository cria um novo TournamentRepository
func NewTournamentRepository(db *gorm.DB) repositories.TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) Create(ctx context.Context, tournament *entities.Tournament) error {
	if tournament.ID == "" {
		tournament.ID = uuid.NewString()
	}
	model := r.toModel(tournament)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translate(err)
	}

	tournament.CreatedAt = fromMillis(model.CreatedAt)
	tournament.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *TournamentRepository) FindByID(ctx context.Context, id string) (*entities.Tournament, error) {
	if !validID(id) {
		return nil, nil
	}
	var model TournamentModel

	db := r.getDB(ctx)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TournamentRepository) Update(ctx context.Context, tournament *entities.Tournament) error {
	model := r.toModel(tournament)

	if err := updateAll(r.getDB(ctx), model); err != nil {
		return err
	}

	tournament.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *TournamentRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repositories.ErrNotFound
	}
	db := r.getDB(ctx)
	result := db.Where("id = ?", id).Delete(&TournamentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TournamentRepository) List(ctx context.Context, filters repositories.TournamentFilters) (repositories.Page[*entities.Tournament], error) {
	p := filters.Pagination.Normalize()
	db := r.getDB(ctx)

	var total int64
	if err := applyTournamentFilters(db.Model(&TournamentModel{}), filters).Count(&total).Error; err != nil {
		return repositories.Page[*entities.Tournament]{}, err
	}

	var models []*TournamentModel
	query := applyTournamentFilters(db.Model(&TournamentModel{}), filters)
	query = applyOrder(query, tournamentOrder(filters.Sort))
	if err := query.Limit(p.Limit).Offset(p.Offset()).Find(&models).Error; err != nil {
		return repositories.Page[*entities.Tournament]{}, err
	}

	docs := make([]*entities.Tournament, 0, len(models))
	for _, m := range models {
		docs = append(docs, r.toEntity(m))
	}
	return repositories.NewPage(docs, total, p), nil
}

// applyTournamentFilters monta os predicados da listagem; usado pela contagem e pela página
func applyTournamentFilters(query *gorm.DB, f repositories.TournamentFilters) *gorm.DB {
	if strings.TrimSpace(f.Search) != "" {
		s := likePattern(f.Search)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(venue) LIKE ?)", s, s)
	}
	if division := strings.ToLower(strings.TrimSpace(f.Division)); division != "" {
		query = query.Where("LOWER(division) = ?", division)
	}
	if state := strings.ToUpper(strings.TrimSpace(f.State)); state != "" {
		query = query.Where("UPPER(state) = ?", state)
	}
	if strings.TrimSpace(f.City) != "" {
		query = query.Where("LOWER(city) LIKE ?", likePattern(f.City))
	}
	if f.From != nil {
		query = query.Where("start_date >= ?", f.From.UnixMilli())
	}
	if f.To != nil {
		query = query.Where("start_date <= ?", f.To.UnixMilli())
	}
	return query
}

func tournamentOrder(sort repositories.TournamentSort) []string {
	switch sort {
	case repositories.TournamentSortStartDesc:
		return []string{"start_date DESC", "id DESC"}
	case repositories.TournamentSortNewest:
		return []string{"created_at DESC", "id DESC"}
	case repositories.TournamentSortNameAsc:
		return []string{"LOWER(name) ASC", "id ASC"}
	default:
		return []string{"start_date ASC", "id ASC"}
	}
}

// getDB extrai DB do contexto (para suportar transações)
func (r *TournamentRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *TournamentRepository) toModel(t *entities.Tournament) *TournamentModel {
	var endDate *int64
	if !t.EndDate.IsZero() {
		endDate = toMillisPtr(&t.EndDate)
	}

	return &TournamentModel{
		ID:        t.ID,
		Name:      t.Name,
		Division:  t.Division,
		City:      t.City,
		State:     t.State,
		Venue:     t.Venue,
		StartDate: t.StartDate.UnixMilli(),
		EndDate:   endDate,
		Website:   t.Website,
		CreatedAt: toMillis(t.CreatedAt),
		UpdatedAt: toMillis(t.UpdatedAt),
	}
}

func (r *TournamentRepository) toEntity(m *TournamentModel) *entities.Tournament {
	t := &entities.Tournament{
		ID:        m.ID,
		Name:      m.Name,
		Division:  m.Division,
		City:      m.City,
		State:     m.State,
		Venue:     m.Venue,
		StartDate: time.UnixMilli(m.StartDate).UTC(),
		Website:   m.Website,
		CreatedAt: fromMillis(m.CreatedAt),
		UpdatedAt: fromMillis(m.UpdatedAt),
	}
	if end := fromMillisPtr(m.EndDate); end != nil {
		t.EndDate = *end
	}
	return t
}
