package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/platform/logger"
)

var bulkFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "partsyard_bulk_failures_total",
		Help: "Per-record failures inside bulk mutations.",
	},
	[]string{"op"},
)

// BulkSetStatus sets status on every id independently. Writes that succeed
// stay applied even when others fail.
func (s *service) BulkSetStatus(
	ctx context.Context,
	actor model.Identity,
	ids []string,
	status model.StockStatus,
) (*model.BulkResult, error) {
	const op = "admin.service.BulkSetStatus"

	if actor.Empty() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}
	if !status.Valid() {
		return nil, errors.Join(model.ErrInvalidArgument, fmt.Errorf("unknown stock status %q", status))
	}

	return s.bulk(ctx, op, actor, ids, func(ctx context.Context, id string) error {
		return s.setStatus(ctx, id, status)
	})
}

func (s *service) BulkDelete(
	ctx context.Context,
	actor model.Identity,
	ids []string,
) (*model.BulkResult, error) {
	const op = "admin.service.BulkDelete"

	if actor.Empty() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	return s.bulk(ctx, op, actor, ids, s.deletePart)
}

func (s *service) bulk(
	ctx context.Context,
	op string,
	actor model.Identity,
	ids []string,
	write func(ctx context.Context, id string) error,
) (*model.BulkResult, error) {
	ids = lo.Uniq(lo.FilterMap(ids, func(id string, _ int) (string, bool) {
		id = strings.TrimSpace(id)
		return id, id != ""
	}))
	if len(ids) == 0 {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("ids must be non-empty"))
	}

	log := logger.With(
		logger.String("op", op),
		logger.String("actor", actor.Email),
		logger.Int("requested", len(ids)),
	)

	var (
		mu     sync.Mutex
		failed []string
		g      errgroup.Group
	)
	g.SetLimit(s.bulkConcurrency)

	for _, id := range ids {
		g.Go(func() error {
			if err := write(ctx, id); err != nil {
				bulkFailuresTotal.WithLabelValues(op).Inc()
				log.Warn(ctx, "bulk item failed", logger.String("part_id", id), logger.ErrorF(err))

				mu.Lock()
				failed = append(failed, id)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	res := &model.BulkResult{
		Requested: len(ids),
		Failed:    len(failed),
		Succeeded: len(ids) - len(failed),
	}

	if res.Succeeded > 0 {
		s.invalidate(ctx)
	}

	if res.Failed > 0 {
		log.Error(ctx, "bulk mutation partially failed",
			logger.Int("failed", res.Failed),
			logger.Strings("failed_ids", failed),
		)
		return res, fmt.Errorf("%s: %w", op, &model.BulkError{Result: *res})
	}

	log.Info(ctx, "bulk mutation done")
	return res, nil
}
