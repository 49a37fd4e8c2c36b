package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/you-humble/partsyard/internal/model"
)

func normalizeQuery(q model.PartsQuery) (model.PartsQuery, error) {
	q.Status = model.StockStatus(strings.TrimSpace(string(q.Status)))
	q.Category = model.Category(strings.TrimSpace(string(q.Category)))
	q.Condition = model.Condition(strings.TrimSpace(string(q.Condition)))
	q.Make = strings.TrimSpace(q.Make)

	q.MakeContains = strings.ToLower(strings.TrimSpace(q.MakeContains))
	q.ModelContains = strings.ToLower(strings.TrimSpace(q.ModelContains))
	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	q.Cursor = strings.TrimSpace(q.Cursor)

	if q.Sort.Field == "" {
		q.Sort.Field = model.SortCreatedAt
	}
	if q.Sort.Direction == "" {
		q.Sort.Direction = model.SortDesc
	}
	if !q.Sort.Field.Valid() {
		return q, errors.Join(model.ErrInvalidArgument, fmt.Errorf("unknown sort field %q", q.Sort.Field))
	}
	if !q.Sort.Direction.Valid() {
		return q, errors.Join(model.ErrInvalidArgument, fmt.Errorf("unknown sort direction %q", q.Sort.Direction))
	}

	if q.Paging == "" {
		q.Paging = model.PagingOffset
		if q.Cursor != "" {
			q.Paging = model.PagingCursor
		}
	}
	if q.Paging != model.PagingOffset && q.Paging != model.PagingCursor {
		return q, errors.Join(model.ErrInvalidArgument, fmt.Errorf("unknown paging mode %q", q.Paging))
	}

	switch {
	case q.PageSize == 0:
		q.PageSize = model.DefaultPageSize
	case q.PageSize < 0 || q.PageSize > model.MaxPageSize:
		return q, errors.Join(model.ErrInvalidArgument,
			fmt.Errorf("page size must be between 1 and %d", model.MaxPageSize))
	}

	if q.Offset < 0 {
		return q, errors.Join(model.ErrInvalidArgument, errors.New("offset must be non-negative"))
	}
	if q.Paging == model.PagingCursor {
		q.Offset = 0
	}
	if q.Year < 0 {
		return q, errors.Join(model.ErrInvalidArgument, errors.New("year must be non-negative"))
	}

	return q, nil
}

// matchesNothing reports a filter on a value outside its enumeration.
func matchesNothing(q model.PartsQuery) bool {
	return (q.Status != "" && !q.Status.Valid()) ||
		(q.Category != "" && !q.Category.Valid()) ||
		(q.Condition != "" && !q.Condition.Valid())
}
