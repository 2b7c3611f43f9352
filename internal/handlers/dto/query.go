package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/recruit-backend/internal/domain/entities"
	"github.com/rafabene/recruit-backend/internal/domain/repositories"
	"github.com/rafabene/recruit-backend/internal/domain/valueobjects"
)

// PageResponse é a página de resultados no formato consumido pelo frontend
type PageResponse[T any] struct {
	Docs        []T   `json:"docs"`
	TotalDocs   int64 `json:"totalDocs"`
	Limit       int   `json:"limit"`
	Page        int   `json:"page"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	NextPage    *int  `json:"nextPage"`
	PrevPage    *int  `json:"prevPage"`
}

// ToPageResponse converte a página do repository aplicando fn a cada documento
func ToPageResponse[T, R any](page repositories.Page[T], fn func(T) R) PageResponse[R] {
	mapped := repositories.Map(page, fn)

	response := PageResponse[R]{
		Docs:        mapped.Docs,
		TotalDocs:   mapped.TotalDocs,
		Limit:       mapped.Limit,
		Page:        mapped.Page,
		TotalPages:  mapped.TotalPages,
		HasNextPage: mapped.HasNextPage,
		HasPrevPage: mapped.HasPrevPage,
	}
	if mapped.HasNextPage {
		next := mapped.Page + 1
		response.NextPage = &next
	}
	if mapped.HasPrevPage {
		prev := mapped.Page - 1
		response.PrevPage = &prev
	}
	return response
}

// ParsePagination lê page e limit; valores inválidos usam o padrão e nunca viram 400
func ParsePagination(c *gin.Context) repositories.Pagination {
	p := repositories.Pagination{}
	if v, ok := queryInt(c, "page"); ok {
		p.Page = v
	}
	if v, ok := queryInt(c, "limit"); ok {
		p.Limit = v
	}
	return p.Normalize()
}

// ParsePlayerFilters lê os filtros da listagem de atletas
func ParsePlayerFilters(c *gin.Context) repositories.PlayerFilters {
	f := repositories.PlayerFilters{
		Position:   strings.TrimSpace(c.Query("position")),
		State:      strings.ToUpper(strings.TrimSpace(c.Query("state"))),
		City:       strings.TrimSpace(c.Query("city")),
		Search:     strings.TrimSpace(c.Query("search")),
		Sort:       repositories.ParsePlayerSort(c.Query("sort")),
		Pagination: ParsePagination(c),
	}

	if v, ok := queryInt(c, "graduationYear"); ok && v >= entities.MinGraduationYear && v <= entities.MaxGraduationYear {
		f.GraduationYear = &v
	}
	f.MinGPA = queryGPA(c, "minGpa")
	f.MaxGPA = queryGPA(c, "maxGpa")
	f.MinHeight = queryHeight(c, "minHeight")
	f.MaxHeight = queryHeight(c, "maxHeight")
	return f
}

// ParseProgramFilters lê os filtros da listagem de programas
func ParseProgramFilters(c *gin.Context) repositories.ProgramFilters {
	f := repositories.ProgramFilters{
		Search:     strings.TrimSpace(c.Query("search")),
		State:      strings.ToUpper(strings.TrimSpace(c.Query("state"))),
		City:       strings.TrimSpace(c.Query("city")),
		Sort:       repositories.ParseProgramSort(c.Query("sort")),
		Pagination: ParsePagination(c),
	}

	if d, ok := entities.ParseDivision(c.Query("division")); ok {
		f.Division = &d
	}
	if v, err := strconv.ParseBool(c.Query("hasCoach")); err == nil {
		f.HasCoach = &v
	}
	return f
}

// ParseTournamentFilters lê os filtros da listagem de torneios
func ParseTournamentFilters(c *gin.Context) repositories.TournamentFilters {
	f := repositories.TournamentFilters{
		Search:     strings.TrimSpace(c.Query("search")),
		Division:   strings.TrimSpace(c.Query("division")),
		State:      strings.ToUpper(strings.TrimSpace(c.Query("state"))),
		City:       strings.TrimSpace(c.Query("city")),
		Sort:       repositories.ParseTournamentSort(c.Query("sort")),
		Pagination: ParsePagination(c),
	}

	if t, err := time.Parse(DateLayout, c.Query("from")); err == nil {
		f.From = &t
	}
	if t, err := time.Parse(DateLayout, c.Query("to")); err == nil {
		// "to" inclui o dia inteiro
		end := t.Add(24*time.Hour - time.Millisecond)
		f.To = &end
	}
	return f
}

func queryInt(c *gin.Context, key string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0, false
	}
	return v, true
}

func queryGPA(c *gin.Context, key string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Query(key)), 64)
	if err != nil || v < 0 || v > 5 {
		return nil
	}
	return &v
}

func queryHeight(c *gin.Context, key string) *int {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	inches, err := valueobjects.ParseHeightInches(raw)
	if err != nil {
		return nil
	}
	return &inches
}
