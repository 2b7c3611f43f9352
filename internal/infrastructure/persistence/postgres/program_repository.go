package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
)

const (
	programHasCoach = "EXISTS (SELECT 1 FROM coach_profiles WHERE coach_profiles.program_id = programs.id)"
	programColumns  = "programs.*, " + programHasCoach + " AS has_coach"
)

// ProgramRepository implementa repositories.ProgramRepository
type ProgramRepository struct {
	db *gorm.DB
}

// NewProgramRepository cria um novo ProgramRepository
func NewProgramRepository(db *gorm.DB) repositories.ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) Create(ctx context.Context, program *entities.Program) error {
	if program.ID == "" {
		program.ID = uuid.NewString()
	}
	model := r.toModel(program)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translate(err)
	}

	program.CreatedAt = fromMillis(model.CreatedAt)
	program.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *ProgramRepository) FindByID(ctx context.Context, id string) (*entities.Program, error) {
	if !validID(id) {
		return nil, nil
	}
	var model ProgramModel

	db := r.getDB(ctx)
	if err := db.Model(&ProgramModel{}).Select(programColumns).Where("programs.id = ?", id).Take(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ProgramRepository) Update(ctx context.Context, program *entities.Program) error {
	model := r.toModel(program)

	if err := updateAll(r.getDB(ctx), model); err != nil {
		return err
	}

	program.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return repositories.ErrNotFound
	}
	db := r.getDB(ctx)
	result := db.Where("id = ?", id).Delete(&ProgramModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *ProgramRepository) List(ctx context.Context, filters repositories.ProgramFilters) (repositories.Page[*entities.Program], error) {
	p := filters.Pagination.Normalize()
	db := r.getDB(ctx)

	var total int64
	if err := applyProgramFilters(db.Model(&ProgramModel{}), filters).Count(&total).Error; err != nil {
		return repositories.Page[*entities.Program]{}, err
	}

	var models []*ProgramModel
	query := applyProgramFilters(db.Model(&ProgramModel{}).Select(programColumns), filters)
	query = applyOrder(query, programOrder(filters.Sort))
	if err := query.Limit(p.Limit).Offset(p.Offset()).Find(&models).Error; err != nil {
		return repositories.Page[*entities.Program]{}, err
	}

	docs := make([]*entities.Program, 0, len(models))
	for _, m := range models {
		docs = append(docs, r.toEntity(m))
	}
	return repositories.NewPage(docs, total, p), nil
}

// applyProgramFilters monta os predicados da listagem; usado pela contagem e pela página
func applyProgramFilters(query *gorm.DB, f repositories.ProgramFilters) *gorm.DB {
	if strings.TrimSpace(f.Search) != "" {
		s := likePattern(f.Search)
		query = query.Where("(LOWER(programs.name) LIKE ? OR LOWER(programs.conference) LIKE ?)", s, s)
	}
	if f.Division != nil {
		query = query.Where("programs.division = ?", string(*f.Division))
	}
	if state := strings.ToUpper(strings.TrimSpace(f.State)); state != "" {
		query = query.Where("UPPER(programs.state) = ?", state)
	}
	if strings.TrimSpace(f.City) != "" {
		query = query.Where("LOWER(programs.city) LIKE ?", likePattern(f.City))
	}
	if f.HasCoach != nil {
		if *f.HasCoach {
			query = query.Where(programHasCoach)
		} else {
			query = query.Where("NOT " + programHasCoach)
		}
	}
	return query
}

func programOrder(sort repositories.ProgramSort) []string {
	switch sort {
	case repositories.ProgramSortNameDesc:
		return []string{"LOWER(programs.name) DESC", "programs.id DESC"}
	case repositories.ProgramSortNewest:
		return []string{"programs.created_at DESC", "programs.id DESC"}
	default:
		return []string{"LOWER(programs.name) ASC", "programs.id ASC"}
	}
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ProgramRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *ProgramRepository) toModel(p *entities.Program) *ProgramModel {
	return &ProgramModel{
		ID:         p.ID,
		Name:       p.Name,
		Division:   string(p.Division),
		Conference: p.Conference,
		City:       p.City,
		State:      p.State,
		Website:    p.Website,
		LogoURL:    p.LogoURL,
		CreatedAt:  toMillis(p.CreatedAt),
		UpdatedAt:  toMillis(p.UpdatedAt),
	}
}

func (r *ProgramRepository) toEntity(m *ProgramModel) *entities.Program {
	return &entities.Program{
		ID:         m.ID,
		Name:       m.Name,
		Division:   entities.Division(m.Division),
		Conference: m.Conference,
		City:       m.City,
		State:      m.State,
		Website:    m.Website,
		LogoURL:    m.LogoURL,
		HasCoach:   m.HasCoach,
		CreatedAt:  fromMillis(m.CreatedAt),
		UpdatedAt:  fromMillis(m.UpdatedAt),
	}
}
