package pkg

import (
	"strconv"

	"gorm.io/gorm"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationFromQuery aceita os valores crus de ?page= e ?limit=; valores inválidos caem nos padrões.
func NewPaginationFromQuery(page, limit string) *PaginationParams {
	p := &PaginationParams{Page: 1, Limit: DefaultPageLimit}
	if n, err := strconv.Atoi(page); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil {
		p.Limit = n
	}
	p.Normalize()
	return p
}

func (p *PaginationParams) Normalize() {
	if p == nil {
		return
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
}

func (p *PaginationParams) Offset() int {
	if p == nil {
		return 0
	}
	p.Normalize()
	return (p.Page - 1) * p.Limit
}

func NormalizePagination(p *PaginationParams) *PaginationParams {
	if p == nil {
		return &PaginationParams{Page: 1, Limit: DefaultPageLimit}
	}
	p.Normalize()
	return p
}

type PaginatedResponse[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginatedResponse[T any](data []T, p *PaginationParams, total int64) *PaginatedResponse[T] {
	p = NormalizePagination(p)
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if totalPages == 0 {
		totalPages = 1
	}
	if data == nil {
		data = make([]T, 0)
	}
	return &PaginatedResponse[T]{
		Data:       data,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Paginate conta e busca uma página de linhas D, convertendo cada uma para o tipo de domínio T.
func Paginate[T any, D any](
	query *gorm.DB,
	pagination *PaginationParams,
	orderBy string,
	converter func(*D) (*T, error),
) ([]*T, int64, error) {
	pagination = NormalizePagination(pagination)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []D
	err := query.Order(orderBy).
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	items, err := ConvertAll(rows, converter)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func ConvertAll[T any, D any](rows []D, converter func(*D) (*T, error)) ([]*T, error) {
	out := make([]*T, 0, len(rows))
	for i := range rows {
		item, err := converter(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}
