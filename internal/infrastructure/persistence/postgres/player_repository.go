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

// PlayerRepository implementa repositories.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository cria um novo PlayerRepository
func NewPlayerRepository(db *gorm.DB) repositories.PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, player *entities.PlayerProfile) error {
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	model := r.toModel(player)

	db := r.getDB(ctx)
	if err := db.Create(model).Error; err != nil {
		return translate(err)
	}

	player.CreatedAt = fromMillis(model.CreatedAt)
	player.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *PlayerRepository) FindByID(ctx context.Context, id string) (*entities.PlayerProfile, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.findLive(ctx, "id = ?", id)
}

func (r *PlayerRepository) FindByUserID(ctx context.Context, userID string) (*entities.PlayerProfile, error) {
	return r.findLive(ctx, "user_id = ?", userID)
}

func (r *PlayerRepository) findLive(ctx context.Context, query string, args ...any) (*entities.PlayerProfile, error) {
	var model PlayerProfileModel

	db := r.getDB(ctx)
	// Soft delete: ignorar registros deletados
	if err := db.Where(query, args...).Where("deleted_at IS NULL").First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *PlayerRepository) FindAnyByUserID(ctx context.Context, userID string) ([]*entities.PlayerProfile, error) {
	var models []*PlayerProfileModel

	db := r.getDB(ctx)
	if err := db.Where("user_id = ?", userID).Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *PlayerRepository) Update(ctx context.Context, player *entities.PlayerProfile) error {
	model := r.toModel(player)

	if err := updateAll(r.getDB(ctx), model); err != nil {
		return err
	}

	player.UpdatedAt = fromMillis(model.UpdatedAt)
	return nil
}

func (r *PlayerRepository) SoftDelete(ctx context.Context, id string) error {
	if !validID(id) {
		return repositories.ErrNotFound
	}
	db := r.getDB(ctx)
	now := time.Now().UnixMilli()
	result := db.Model(&PlayerProfileModel{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteByUserID remove definitivamente todos os perfis do usuário, inclusive os com soft delete
func (r *PlayerRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	db := r.getDB(ctx)
	result := db.Where("user_id = ?", userID).Delete(&PlayerProfileModel{})
	return result.RowsAffected, result.Error
}

func (r *PlayerRepository) List(ctx context.Context, filters repositories.PlayerFilters) (repositories.Page[*entities.PlayerProfile], error) {
	p := filters.Pagination.Normalize()
	db := r.getDB(ctx)

	var total int64
	if err := applyPlayerFilters(db.Model(&PlayerProfileModel{}), filters).Count(&total).Error; err != nil {
		return repositories.Page[*entities.PlayerProfile]{}, err
	}

	var models []*PlayerProfileModel
	query := applyPlayerFilters(db.Model(&PlayerProfileModel{}), filters)
	query = applyOrder(query, playerOrder(filters.Sort))
	if err := query.Limit(p.Limit).Offset(p.Offset()).Find(&models).Error; err != nil {
		return repositories.Page[*entities.PlayerProfile]{}, err
	}

	return repositories.NewPage(r.toEntities(models), total, p), nil
}

// applyPlayerFilters monta os predicados da listagem; usado pela contagem e pela página
func applyPlayerFilters(query *gorm.DB, f repositories.PlayerFilters) *gorm.DB {
	query = query.Where("deleted_at IS NULL")

	if f.GraduationYear != nil {
		query = query.Where("graduation_year = ?", *f.GraduationYear)
	}
	if pos := strings.ToLower(strings.TrimSpace(f.Position)); pos != "" {
		query = query.Where("(LOWER(position) = ? OR LOWER(secondary_position) = ?)", pos, pos)
	}
	if f.MinGPA != nil {
		query = query.Where("gpa >= ?", *f.MinGPA)
	}
	if f.MaxGPA != nil {
		query = query.Where("gpa <= ?", *f.MaxGPA)
	}
	if f.MinHeight != nil {
		query = query.Where("height_inches >= ?", *f.MinHeight)
	}
	if f.MaxHeight != nil {
		query = query.Where("height_inches <= ?", *f.MaxHeight)
	}
	if state := strings.ToUpper(strings.TrimSpace(f.State)); state != "" {
		query = query.Where("UPPER(state) = ?", state)
	}
	if strings.TrimSpace(f.City) != "" {
		query = query.Where("LOWER(city) LIKE ?", likePattern(f.City))
	}
	if strings.TrimSpace(f.Search) != "" {
		s := likePattern(f.Search)
		query = query.Where(
			"(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(first_name || ' ' || last_name) LIKE ? "+
				"OR LOWER(high_school) LIKE ? OR LOWER(club_team) LIKE ?)",
			s, s, s, s, s,
		)
	}

	return query
}

// playerOrder traduz a ordenação; id sempre desempata para paginação estável
func playerOrder(sort repositories.PlayerSort) []string {
	switch sort {
	case repositories.PlayerSortOldest:
		return []string{"created_at ASC", "id ASC"}
	case repositories.PlayerSortGPAAsc:
		return []string{"gpa IS NULL", "gpa ASC", "created_at DESC", "id DESC"}
	case repositories.PlayerSortGPADesc:
		return []string{"gpa IS NULL", "gpa DESC", "created_at DESC", "id DESC"}
	case repositories.PlayerSortGradYearAsc:
		return []string{"graduation_year ASC", "created_at DESC", "id DESC"}
	case repositories.PlayerSortGradYearDesc:
		return []string{"graduation_year DESC", "created_at DESC", "id DESC"}
	case repositories.PlayerSortNameAsc:
		return []string{"LOWER(last_name) ASC", "LOWER(first_name) ASC", "id ASC"}
	default:
		return []string{"created_at DESC", "id DESC"}
	}
}

func applyOrder(query *gorm.DB, clauses []string) *gorm.DB {
	for _, c := range clauses {
		query = query.Order(c)
	}
	return query
}

// getDB extrai DB do contexto (para suportar transações)
func (r *PlayerRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func (r *PlayerRepository) toModel(p *entities.PlayerProfile) *PlayerProfileModel {
	return &PlayerProfileModel{
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
		CreatedAt:         toMillis(p.CreatedAt),
		UpdatedAt:         toMillis(p.UpdatedAt),
		DeletedAt:         toMillisPtr(p.DeletedAt),
	}
}

func (r *PlayerRepository) toEntity(m *PlayerProfileModel) *entities.PlayerProfile {
	return &entities.PlayerProfile{
		ID:                m.ID,
		UserID:            m.UserID,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		GraduationYear:    m.GraduationYear,
		Position:          m.Position,
		SecondaryPosition: m.SecondaryPosition,
		HeightInches:      m.HeightInches,
		WeightLbs:         m.WeightLbs,
		GPA:               m.GPA,
		SAT:               m.SAT,
		ACT:               m.ACT,
		HighSchool:        m.HighSchool,
		ClubTeam:          m.ClubTeam,
		City:              m.City,
		State:             m.State,
		Bio:               m.Bio,
		Phone:             m.Phone,
		ContactEmail:      m.ContactEmail,
		Twitter:           m.Twitter,
		Instagram:         m.Instagram,
		VideoURL:          m.VideoURL,
		PhotoURL:          m.PhotoURL,
		CreatedAt:         fromMillis(m.CreatedAt),
		UpdatedAt:         fromMillis(m.UpdatedAt),
		DeletedAt:         fromMillisPtr(m.DeletedAt),
	}
}

func (r *PlayerRepository) toEntities(models []*PlayerProfileModel) []*entities.PlayerProfile {
	result := make([]*entities.PlayerProfile, 0, len(models))
	for _, m := range models {
		result = append(result, r.toEntity(m))
	}
	return result
}
