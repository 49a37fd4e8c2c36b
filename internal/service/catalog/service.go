package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/platform/logger"
)

type PartRepository interface {
	PartByID(ctx context.Context, id string) (*model.Part, error)
	Find(ctx context.Context, filter model.PartsFilter, opts model.FindOptions) ([]*model.Part, error)
	Count(ctx context.Context, filter model.PartsFilter) (int, error)
	Scan(ctx context.Context, fn func(p *model.Part) error) error
	IDs(ctx context.Context, filter model.PartsFilter) ([]string, error)
}

const addedThisWeekWindow = 7 * 24 * time.Hour

type service struct {
	repo          PartRepository
	readDBTimeout time.Duration
	now           func() time.Time
}

func NewCatalogService(
	repo PartRepository,
	readDBTimeout time.Duration,
	now func() time.Time,
) *service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, readDBTimeout: readDBTimeout, now: now}
}

func (s *service) List(ctx context.Context, query model.PartsQuery) (*model.PartsPage, error) {
	const op = "catalog.service.List"

	q, err := normalizeQuery(query)
	if err != nil {
		logger.Warn(ctx, "invalid parts query", logger.String("op", op), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log := logger.With(
		logger.String("paging", string(q.Paging)),
		logger.String("sort", string(q.Sort.Field)+" "+string(q.Sort.Direction)),
		logger.Int("page_size", q.PageSize),
	)

	if matchesNothing(q) {
		log.Debug(ctx, "filter outside enumeration, empty page")
		return model.EmptyPage(), nil
	}

	var after *model.Keyset
	if q.Paging == model.PagingCursor && q.Cursor != "" {
		after, err = decodeCursor(q.Cursor, q.Sort)
		if err != nil {
			log.Warn(ctx, "decode cursor", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	ctx, cancel := s.withReadTimeout(ctx)
	defer cancel()

	var page *model.PartsPage
	if q.HasSubstringFilter() {
		page, err = s.listFiltered(ctx, q, after)
	} else {
		page, err = s.listStored(ctx, q, after)
	}
	if err != nil {
		log.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrDataUnavailable, err))
	}

	return page, nil
}

// listStored pages entirely at the store level.
func (s *service) listStored(ctx context.Context, q model.PartsQuery, after *model.Keyset) (*model.PartsPage, error) {
	filter := q.Filter()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := model.FindOptions{Sort: q.Sort}
	if q.Paging == model.PagingCursor {
		opts.After = after
		opts.Limit = q.PageSize + 1
	} else {
		opts.Skip = q.Offset
		opts.Limit = q.PageSize
	}

	parts, err := s.repo.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	if q.Paging == model.PagingCursor {
		return cursorPage(parts, total, q), nil
	}

	return &model.PartsPage{
		Parts:   parts,
		Total:   total,
		HasMore: q.Offset+len(parts) < total,
	}, nil
}

// listFiltered fetches every equality match and applies substring filters in memory.
// Total is the post-filter count.
func (s *service) listFiltered(ctx context.Context, q model.PartsQuery, after *model.Keyset) (*model.PartsPage, error) {
	all, err := s.repo.Find(ctx, q.Filter(), model.FindOptions{Sort: q.Sort})
	if err != nil {
		return nil, err
	}

	matched := make([]*model.Part, 0, len(all))
	for _, p := range all {
		if q.Matches(p) {
			matched = append(matched, p)
		}
	}
	total := len(matched)

	if q.Paging == model.PagingCursor {
		start := 0
		if after != nil {
			for start < len(matched) && !isAfter(matched[start], after, q.Sort) {
				start++
			}
		}
		end := min(start+q.PageSize+1, len(matched))
		return cursorPage(matched[start:end], total, q), nil
	}

	start := min(q.Offset, total)
	end := min(start+q.PageSize, total)

	return &model.PartsPage{
		Parts:   matched[start:end],
		Total:   total,
		HasMore: end < total,
	}, nil
}

// cursorPage trims a page fetched with one extra record.
func cursorPage(parts []*model.Part, total int, q model.PartsQuery) *model.PartsPage {
	page := &model.PartsPage{Parts: parts, Total: total}
	if len(parts) > q.PageSize {
		page.Parts = parts[:q.PageSize]
		page.HasMore = true
		page.NextCursor = encodeCursor(q.Sort, page.Parts[len(page.Parts)-1])
	}
	return page
}

func (s *service) PartByID(ctx context.Context, partID string) (*model.Part, error) {
	const op = "catalog.service.PartByID"
	log := logger.With(
		logger.String("part_id", partID),
	)

	partID = strings.TrimSpace(partID)
	if partID == "" {
		log.Warn(ctx, "validation: empty part id")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := s.withReadTimeout(ctx)
	defer cancel()

	p, err := s.repo.PartByID(ctx, partID)
	if err != nil {
		if errors.Is(err, model.ErrPartNotFound) || errors.Is(err, model.ErrMalformedDocument) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrDataUnavailable, err))
	}

	return p, nil
}

func (s *service) Aggregate(ctx context.Context) (*model.PartStats, error) {
	const op = "catalog.service.Aggregate"

	ctx, cancel := s.withReadTimeout(ctx)
	defer cancel()

	weekAgo := s.now().Add(-addedThisWeekWindow)

	var stats model.PartStats
	err := s.repo.Scan(ctx, func(p *model.Part) error {
		stats.Total++
		switch p.StockStatus {
		case model.StatusAvailable:
			stats.Available++
		case model.StatusSold:
			stats.Sold++
		case model.StatusOnHold:
			stats.OnHold++
		}
		if !p.CreatedAt.Before(weekAgo) {
			stats.AddedThisWeek++
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "repository scan parts", logger.String("op", op), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrDataUnavailable, err))
	}

	return &stats, nil
}

// Recent returns the newest available parts. Non-positive n means the default.
func (s *service) Recent(ctx context.Context, n int) ([]*model.Part, error) {
	const op = "catalog.service.Recent"

	if n <= 0 {
		n = model.DefaultRecent
	}
	n = min(n, model.MaxRecent)

	ctx, cancel := s.withReadTimeout(ctx)
	defer cancel()

	parts, err := s.repo.Find(ctx,
		model.PartsFilter{Status: model.StatusAvailable},
		model.FindOptions{
			Sort:  model.Sort{Field: model.SortCreatedAt, Direction: model.SortDesc},
			Limit: n,
		},
	)
	if err != nil {
		logger.Error(ctx, "repository recent parts", logger.String("op", op), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrDataUnavailable, err))
	}

	return parts, nil
}

func (s *service) AvailableIDs(ctx context.Context) ([]string, error) {
	const op = "catalog.service.AvailableIDs"

	ctx, cancel := s.withReadTimeout(ctx)
	defer cancel()

	ids, err := s.repo.IDs(ctx, model.PartsFilter{Status: model.StatusAvailable})
	if err != nil {
		logger.Error(ctx, "repository available ids", logger.String("op", op), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, errors.Join(model.ErrDataUnavailable, err))
	}

	return ids, nil
}

func (s *service) withReadTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.readDBTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.readDBTimeout)
}
