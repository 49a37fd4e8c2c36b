package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/platform/logger"
)

// Tag groups every storefront entry; admin writes drop it as a whole.
const Tag = "catalog"

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsyard_cache_hits_total",
		Help: "Storefront reads served from the cache.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsyard_cache_misses_total",
		Help: "Storefront reads that went to the catalog.",
	})
	cacheErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partsyard_cache_errors_total",
		Help: "Cache backend or codec failures on the storefront read path.",
	})
)

type Catalog interface {
	List(ctx context.Context, q model.PartsQuery) (*model.PartsPage, error)
	PartByID(ctx context.Context, id string) (*model.Part, error)
	Recent(ctx context.Context, n int) ([]*model.Part, error)
	AvailableIDs(ctx context.Context) ([]string, error)
}

type Cache interface {
	Get(ctx context.Context, tag, key string) ([]byte, bool, error)
	Set(ctx context.Context, tag, key string, value []byte, ttl time.Duration) error
	InvalidateTag(ctx context.Context, tag string) error
}

type service struct {
	catalog Catalog
	cache   Cache
	ttl     time.Duration
}

func NewStorefrontService(catalog Catalog, cache Cache, ttl time.Duration) *service {
	return &service{catalog: catalog, cache: cache, ttl: ttl}
}

// ListAvailable lists parts visible to the public: available only, offset paged.
func (s *service) ListAvailable(ctx context.Context, q model.PartsQuery) (*model.PartsPage, error) {
	const op = "storefront.service.ListAvailable"

	q = publicQuery(q)

	page, err := cached(ctx, s, "list?"+listKey(q), func(ctx context.Context) (*model.PartsPage, error) {
		return s.catalog.List(ctx, q)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return page, nil
}

// PartByID hides parts that are not available.
func (s *service) PartByID(ctx context.Context, id string) (*model.Part, error) {
	const op = "storefront.service.PartByID"

	id = strings.TrimSpace(id)
	key := "part?" + url.Values{"id": {id}}.Encode()

	p, err := cached(ctx, s, key, func(ctx context.Context) (*model.Part, error) {
		return s.catalog.PartByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, model.ErrMalformedDocument) {
			err = errors.Join(model.ErrPartNotFound, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if p.StockStatus != model.StatusAvailable {
		return nil, fmt.Errorf("%s: %w", op, model.ErrPartNotFound)
	}

	return p, nil
}

func (s *service) Recent(ctx context.Context, n int) ([]*model.Part, error) {
	const op = "storefront.service.Recent"

	if n <= 0 {
		n = model.DefaultRecent
	}
	n = min(n, model.MaxRecent)

	parts, err := cached(ctx, s, "recent?n="+strconv.Itoa(n), func(ctx context.Context) ([]*model.Part, error) {
		return s.catalog.Recent(ctx, n)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return parts, nil
}

func (s *service) AvailableIDs(ctx context.Context) ([]string, error) {
	const op = "storefront.service.AvailableIDs"

	ids, err := cached(ctx, s, "ids", s.catalog.AvailableIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ids, nil
}

// Invalidate drops every storefront entry.
func (s *service) Invalidate(ctx context.Context) error {
	if err := s.cache.InvalidateTag(ctx, Tag); err != nil {
		cacheErrorsTotal.Inc()
		return fmt.Errorf("storefront.service.Invalidate: %w", err)
	}
	return nil
}

// cached reads key through the cache. Cache failures fall back to load and
// are never returned. Errors from load are not cached.
func cached[T any](
	ctx context.Context,
	s *service,
	key string,
	load func(ctx context.Context) (T, error),
) (T, error) {
	log := logger.With(logger.String("cache_key", key))

	raw, ok, err := s.cache.Get(ctx, Tag, key)
	switch {
	case err != nil:
		cacheErrorsTotal.Inc()
		log.Warn(ctx, "cache get", logger.ErrorF(err))
	case ok:
		var v T
		err := json.Unmarshal(raw, &v)
		if err == nil {
			cacheHitsTotal.Inc()
			return v, nil
		}
		cacheErrorsTotal.Inc()
		log.Warn(ctx, "cache decode", logger.ErrorF(err))
	}
	cacheMissesTotal.Inc()

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	raw, err = json.Marshal(v)
	if err != nil {
		cacheErrorsTotal.Inc()
		log.Warn(ctx, "cache encode", logger.ErrorF(err))
		return v, nil
	}
	if err := s.cache.Set(ctx, Tag, key, raw, s.ttl); err != nil {
		cacheErrorsTotal.Inc()
		log.Warn(ctx, "cache set", logger.ErrorF(err))
	}

	return v, nil
}

func publicQuery(q model.PartsQuery) model.PartsQuery {
	q.Status = model.StatusAvailable
	q.Condition = ""
	q.Paging = model.PagingOffset
	q.Cursor = ""
	if q.PageSize == 0 {
		q.PageSize = model.PublicPageSize
	}
	if q.Sort.Field == "" {
		q.Sort.Field = model.SortCreatedAt
	}
	if q.Sort.Direction == "" {
		q.Sort.Direction = model.SortDesc
	}

	q.Category = model.Category(strings.TrimSpace(string(q.Category)))
	q.Make = strings.TrimSpace(q.Make)
	q.MakeContains = strings.ToLower(strings.TrimSpace(q.MakeContains))
	q.ModelContains = strings.ToLower(strings.TrimSpace(q.ModelContains))
	q.Search = strings.ToLower(strings.TrimSpace(q.Search))
	return q
}

// listKey is a canonical encoding of q; equal queries give equal keys.
func listKey(q model.PartsQuery) string {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}

	set("status", string(q.Status))
	set("category", string(q.Category))
	set("make", q.Make)
	if q.Year != 0 {
		v.Set("year", strconv.Itoa(q.Year))
	}
	set("makeContains", q.MakeContains)
	set("modelContains", q.ModelContains)
	set("search", q.Search)
	v.Set("offset", strconv.Itoa(q.Offset))
	v.Set("pageSize", strconv.Itoa(q.PageSize))
	set("sort", string(q.Sort.Field))
	set("dir", string(q.Sort.Direction))

	return v.Encode()
}
