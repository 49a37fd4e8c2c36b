package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/platform/logger"
)

type PartRepository interface {
	PartByID(ctx context.Context, id string) (*model.Part, error)
	Create(ctx context.Context, p *model.Part) error
	Update(ctx context.Context, id string, upd model.PartUpdate) error
	Delete(ctx context.Context, id string) error
}

type BlobStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

const (
	defaultBulkConcurrency = 8
	defaultDBTimeout       = 5 * time.Second
)

type Config struct {
	Staff           []string
	BulkConcurrency int
	MaxPhotoBytes   int64
	ReadDBTimeout   time.Duration
	WriteDBTimeout  time.Duration
	Now             func() time.Time
}

type service struct {
	repo      PartRepository
	blobs     BlobStore
	cache     CacheInvalidator
	validator *partValidator

	bulkConcurrency int
	maxPhotoBytes   int64
	readDBTimeout   time.Duration
	writeDBTimeout  time.Duration
	now             func() time.Time
}

func NewAdminService(
	repo PartRepository,
	blobs BlobStore,
	cache CacheInvalidator,
	cfg Config,
) *service {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.BulkConcurrency <= 0 {
		cfg.BulkConcurrency = defaultBulkConcurrency
	}
	if cfg.ReadDBTimeout <= 0 {
		cfg.ReadDBTimeout = defaultDBTimeout
	}
	if cfg.WriteDBTimeout <= 0 {
		cfg.WriteDBTimeout = defaultDBTimeout
	}

	return &service{
		repo:            repo,
		blobs:           blobs,
		cache:           cache,
		validator:       newPartValidator(cfg.Staff, cfg.Now),
		bulkConcurrency: cfg.BulkConcurrency,
		maxPhotoBytes:   cfg.MaxPhotoBytes,
		readDBTimeout:   cfg.ReadDBTimeout,
		writeDBTimeout:  cfg.WriteDBTimeout,
		now:             cfg.Now,
	}
}

// NewPartID mints an id ahead of creation so photos can be uploaded first.
func (s *service) NewPartID() string { return uuid.NewString() }

func (s *service) Create(
	ctx context.Context,
	actor model.Identity,
	in model.PartInput,
	id string,
) (*model.Part, error) {
	const op = "admin.service.Create"
	log := logger.With(
		logger.String("actor", actor.Email),
	)

	if actor.Empty() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	id = strings.TrimSpace(id)
	if id == "" {
		id = s.NewPartID()
	} else if _, err := uuid.Parse(id); err != nil {
		log.Warn(ctx, "validation: malformed part id", logger.String("part_id", id))
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be a uuid"))
	}

	if in.StockStatus == "" {
		in.StockStatus = model.StatusAvailable
	}
	if in.Photos == nil {
		in.Photos = []string{}
	}

	if err := s.validator.Validate(in); err != nil {
		log.Warn(ctx, "validation failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	p := partFromInput(id, in)
	p.CreatedAt = now
	p.UpdatedAt = now
	p.SearchableText = model.BuildSearchableText(in)

	wctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	if err := s.repo.Create(wctx, p); err != nil {
		log.Error(ctx, "repository create part", logger.String("part_id", id), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "part created", logger.String("part_id", id))
	s.invalidate(ctx)

	return p, nil
}

func (s *service) Update(
	ctx context.Context,
	actor model.Identity,
	id string,
	patch model.PartPatch,
) (*model.Part, error) {
	const op = "admin.service.Update"
	log := logger.With(
		logger.String("actor", actor.Email),
		logger.String("part_id", id),
	)

	if actor.Empty() {
		return nil, fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}
	if patch.Empty() {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("nothing to update"))
	}

	rctx, rcancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rcancel()

	current, err := s.repo.PartByID(rctx, id)
	if err != nil {
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	merged := patch.Apply(current.Input())
	if err := s.validator.Validate(merged); err != nil {
		log.Warn(ctx, "validation failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	text := model.BuildSearchableText(merged)

	wctx, wcancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wcancel()

	err = s.repo.Update(wctx, id, model.PartUpdate{
		Patch:          patch,
		SearchableText: &text,
		UpdatedAt:      now,
	})
	if err != nil {
		log.Error(ctx, "repository update part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "part updated")
	s.invalidate(ctx)

	dropped, _ := lo.Difference(current.Photos, merged.Photos)
	s.deletePhotos(ctx, dropped)

	out := partFromInput(id, merged)
	out.CreatedAt = current.CreatedAt
	out.UpdatedAt = now
	out.SearchableText = text

	return out, nil
}

func (s *service) SetStatus(
	ctx context.Context,
	actor model.Identity,
	id string,
	status model.StockStatus,
) error {
	const op = "admin.service.SetStatus"

	if actor.Empty() {
		return fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}
	if !status.Valid() {
		return errors.Join(model.ErrInvalidArgument, fmt.Errorf("unknown stock status %q", status))
	}

	if err := s.setStatus(ctx, id, status); err != nil {
		logger.Error(ctx, "set part status",
			logger.String("actor", actor.Email),
			logger.String("part_id", id),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) Delete(ctx context.Context, actor model.Identity, id string) error {
	const op = "admin.service.Delete"

	if actor.Empty() {
		return fmt.Errorf("%s: %w", op, model.ErrUnauthorized)
	}

	if err := s.deletePart(ctx, id); err != nil {
		logger.Error(ctx, "delete part",
			logger.String("actor", actor.Email),
			logger.String("part_id", id),
			logger.ErrorF(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	logger.Info(ctx, "part deleted", logger.String("actor", actor.Email), logger.String("part_id", id))
	s.invalidate(ctx)
	return nil
}

func (s *service) setStatus(ctx context.Context, id string, status model.StockStatus) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer cancel()

	return s.repo.Update(ctx, id, model.PartUpdate{
		Patch:     model.PartPatch{StockStatus: &status},
		UpdatedAt: s.now().UTC(),
	})
}

// deletePart removes the record, then its photos on a best effort basis.
func (s *service) deletePart(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	rctx, rcancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer rcancel()

	var photos []string
	p, err := s.repo.PartByID(rctx, id)
	switch {
	case err == nil:
		photos = p.Photos
	case errors.Is(err, model.ErrMalformedDocument):
		// still removable
	default:
		return err
	}

	wctx, wcancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wcancel()

	if err := s.repo.Delete(wctx, id); err != nil {
		return err
	}

	s.deletePhotos(ctx, photos)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Warn(ctx, "invalidate storefront cache", logger.ErrorF(err))
	}
}

func partFromInput(id string, in model.PartInput) *model.Part {
	return &model.Part{
		ID:           id,
		Name:         in.Name,
		Category:     in.Category,
		VIN:          in.VIN,
		VehicleYear:  in.VehicleYear,
		VehicleMake:  in.VehicleMake,
		VehicleModel: in.VehicleModel,
		VehicleTrim:  in.VehicleTrim,
		Condition:    in.Condition,
		PriceCents:   in.PriceCents,
		Mileage:      in.Mileage,
		YardLocation: in.YardLocation,
		Photos:       in.Photos,
		StockStatus:  in.StockStatus,
		Notes:        in.Notes,
		AddedBy:      in.AddedBy,
	}
}
