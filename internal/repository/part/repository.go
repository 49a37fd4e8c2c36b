package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/platform/logger"
)

var malformedDocumentsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "partsyard_malformed_documents_total",
	Help: "Part documents that failed to decode into the domain model.",
})

type repository struct {
	coll *mongo.Collection
}

func NewPartRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) PartByID(ctx context.Context, id string) (*model.Part, error) {
	const op = "repository.PartByID"

	raw, err := r.coll.FindOne(ctx, bson.M{fieldID: id}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrPartNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ent PartEntity
	if err := bson.Unmarshal(raw, &ent); err != nil {
		malformed(ctx, op, id, err)
		return nil, fmt.Errorf("%s: %w: %v", op, model.ErrMalformedDocument, err)
	}

	p, err := EntityToModel(&ent)
	if err != nil {
		malformed(ctx, op, id, err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

// Find returns the parts matching filter in the order of opts.Sort.
// Documents that do not decode are skipped.
func (r *repository) Find(
	ctx context.Context,
	filter model.PartsFilter,
	opts model.FindOptions,
) ([]*model.Part, error) {
	const op = "repository.Find"

	q := withKeyset(BuildMongoFilter(filter), opts.Sort, opts.After)

	findOpts := options.Find().SetSort(buildSort(opts.Sort))
	if opts.Skip > 0 {
		findOpts.SetSkip(int64(opts.Skip))
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(int64(opts.Limit))
	}

	out := make([]*model.Part, 0, max(opts.Limit, 0))
	err := r.iterate(ctx, op, q, findOpts, func(p *model.Part) error {
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *repository) Count(ctx context.Context, filter model.PartsFilter) (int, error) {
	const op = "repository.Count"

	n, err := r.coll.CountDocuments(ctx, BuildMongoFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return int(n), nil
}

// Scan calls fn for every well-formed part in the collection.
func (r *repository) Scan(ctx context.Context, fn func(p *model.Part) error) error {
	const op = "repository.Scan"

	return r.iterate(ctx, op, bson.M{}, options.Find(), fn)
}

func (r *repository) IDs(ctx context.Context, filter model.PartsFilter) ([]string, error) {
	const op = "repository.IDs"

	cur, err := r.coll.Find(ctx, BuildMongoFilter(filter),
		options.Find().
			SetProjection(bson.M{fieldID: 1}).
			SetSort(bson.D{{Key: fieldID, Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer closeCursor(ctx, op, cur)

	out := make([]string, 0)
	for cur.Next(ctx) {
		var row struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&row); err != nil {
			malformed(ctx, op, "", err)
			continue
		}
		out = append(out, row.ID)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) Create(ctx context.Context, p *model.Part) error {
	const op = "repository.Create"

	if p.ID == "" {
		return fmt.Errorf("%s: %w: part ID is empty", op, model.ErrInvalidArgument)
	}

	_, err := r.coll.InsertOne(ctx, EntityFromModel(p))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, model.ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, id string, upd model.PartUpdate) error {
	const op = "repository.Update"

	res, err := r.coll.UpdateOne(ctx, bson.M{fieldID: id}, BuildUpdate(upd))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	const op = "repository.Delete"

	res, err := r.coll.DeleteOne(ctx, bson.M{fieldID: id})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.DeletedCount == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) CreateBatch(ctx context.Context, parts []*model.Part) error {
	const op = "repository.CreateBatch"

	now := time.Now().UTC()
	docs := make([]any, 0, len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		if p.ID == "" {
			return fmt.Errorf("%s: part ID is empty", op)
		}
		p.CreatedAt = defaultTime(p.CreatedAt, now)
		p.UpdatedAt = defaultTime(p.UpdatedAt, p.CreatedAt)
		if p.SearchableText == "" {
			p.SearchableText = model.BuildSearchableText(p.Input())
		}

		docs = append(docs, EntityFromModel(p))
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) Empty(ctx context.Context) (bool, error) {
	const op = "repository.Empty"

	n, err := r.coll.CountDocuments(ctx, bson.M{}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n == 0, nil
}

func (r *repository) iterate(
	ctx context.Context,
	op string,
	q bson.M,
	opts *options.FindOptionsBuilder,
	fn func(p *model.Part) error,
) error {
	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer closeCursor(ctx, op, cur)

	for cur.Next(ctx) {
		var ent PartEntity
		if err := cur.Decode(&ent); err != nil {
			malformed(ctx, op, rawID(cur.Current), err)
			continue
		}

		p, err := EntityToModel(&ent)
		if err != nil {
			malformed(ctx, op, ent.ID, err)
			continue
		}

		if err := fn(p); err != nil {
			return err
		}
	}
	if err := cur.Err(); err != nil {
		return fmt.Errorf("%s cursor: %w", op, err)
	}

	return nil
}

func closeCursor(ctx context.Context, op string, cur *mongo.Cursor) {
	if err := cur.Close(ctx); err != nil {
		logger.Warn(ctx, "failed to close cursor", logger.String("op", op), logger.ErrorF(err))
	}
}

func malformed(ctx context.Context, op, id string, err error) {
	malformedDocumentsTotal.Inc()
	logger.Warn(ctx, "malformed part document",
		logger.String("op", op),
		logger.String("part_id", id),
		logger.ErrorF(err),
	)
}

func rawID(doc bson.Raw) string {
	v, err := doc.LookupErr(fieldID)
	if err != nil {
		return ""
	}
	s, _ := v.StringValueOK()
	return s
}
