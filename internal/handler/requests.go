package handler

import (
	"github.com/wrenchworks/autoservice/internal/domain"
	"github.com/wrenchworks/autoservice/internal/validation"
)

// IDParam binds the numeric :id path parameter shared by the single-entity
// routes.
type IDParam struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (r *IDParam) Validate() error {
	return validation.Struct(r)
}

// ListQuery carries the pagination and ordering parameters shared by the
// plain listing routes. Sorting defaults to ascending id; any direction
// token other than "asc" sorts descending.
type ListQuery struct {
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset  int    `query:"offset" validate:"omitempty,min=0"`
	SortBy  string `query:"sort_by"`
	SortDir string `query:"sort_dir"`
}

func (q *ListQuery) applyDefaults() {
	if q.Limit == 0 {
		q.Limit = 50
	}
	if q.SortBy == "" {
		q.SortBy = "id"
	}
	if q.SortDir == "" {
		q.SortDir = domain.SortDirAsc
	}
}

func (q *ListQuery) Validate() error {
	q.applyDefaults()
	return validation.Struct(q)
}

// Page converts the query window into the domain form.
func (q ListQuery) Page() domain.Page {
	return domain.Page{Limit: q.Limit, Offset: q.Offset}
}
