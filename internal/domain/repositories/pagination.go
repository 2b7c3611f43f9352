package repositories

import "math"

// Limites de paginação das listagens
const (
	DefaultPage  = 1
	DefaultLimit = 24
	MaxLimit     = 100

	// MaxPage mantém (Page-1)*Limit dentro de int
	MaxPage = math.MaxInt / MaxLimit
)

// Pagination contém os parâmetros de paginação (página começa em 1)
type Pagination struct {
	Page  int
	Limit int
}

// Normalize aplica os valores padrão e o limite máximo
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset retorna quantos registros pular
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page é uma página de resultados com os metadados de navegação
type Page[T any] struct {
	Docs        []T
	TotalDocs   int64
	Limit       int
	Page        int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// NewPage monta a página a partir dos registros e do total contado separadamente
func NewPage[T any](docs []T, total int64, p Pagination) Page[T] {
	p = p.Normalize()

	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if docs == nil {
		docs = []T{}
	}

	return Page[T]{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       p.Limit,
		Page:        p.Page,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}

// Map converte os documentos de uma página mantendo os metadados
func Map[T, R any](page Page[T], fn func(T) R) Page[R] {
	docs := make([]R, len(page.Docs))
	for i, d := range page.Docs {
		docs[i] = fn(d)
	}
	return Page[R]{
		Docs:        docs,
		TotalDocs:   page.TotalDocs,
		Limit:       page.Limit,
		Page:        page.Page,
		TotalPages:  page.TotalPages,
		HasNextPage: page.HasNextPage,
		HasPrevPage: page.HasPrevPage,
	}
}
