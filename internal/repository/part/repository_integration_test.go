//go:build integration

package repository_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/partsyard/internal/model"
	repository "github.com/you-humble/partsyard/internal/repository/part"
)

var _ = Describe("PartRepository", func() {
	var (
		repo  func() partStore
		base  = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		parts []*model.Part
	)

	BeforeEach(func() {
		cleanParts()

		store := repository.NewPartRepository(coll)
		repo = func() partStore { return store }

		parts = []*model.Part{
			newFakePart("Ford", 2010, base.Add(1*time.Hour)),
			newFakePart("Ford", 2012, base.Add(2*time.Hour)),
			newFakePart("Honda", 2012, base.Add(3*time.Hour)),
			newFakePart("Toyota", 2015, base.Add(3*time.Hour)),
		}
		parts[3].StockStatus = model.StatusSold

		Expect(repo().CreateBatch(suiteCtx, parts)).To(Succeed())
	})

	It("reads a part back by id", func() {
		got, err := repo().PartByID(suiteCtx, parts[0].ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name).To(Equal(parts[0].Name))
		Expect(got.Mileage).To(Equal(parts[0].Mileage))
		Expect(got.CreatedAt.Equal(parts[0].CreatedAt)).To(BeTrue())
	})

	It("reports a missing part", func() {
		_, err := repo().PartByID(suiteCtx, "00000000-0000-0000-0000-000000000000")
		Expect(err).To(MatchError(model.ErrPartNotFound))
	})

	It("rejects a duplicate id", func() {
		err := repo().Create(suiteCtx, parts[0])
		Expect(err).To(MatchError(model.ErrConflict))
	})

	It("filters by equality predicates and counts", func() {
		f := model.PartsFilter{Make: "Ford", Status: model.StatusAvailable}

		got, err := repo().Find(suiteCtx, f, model.FindOptions{
			Sort: model.Sort{Field: model.SortCreatedAt, Direction: model.SortDesc},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(lo.Map(got, func(p *model.Part, _ int) string { return p.ID })).
			To(Equal([]string{parts[1].ID, parts[0].ID}))

		n, err := repo().Count(suiteCtx, f)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(2))
	})

	It("walks keyset pages without gaps or repeats on tied sort keys", func() {
		s := model.Sort{Field: model.SortCreatedAt, Direction: model.SortDesc}

		var (
			seen  []string
			after *model.Keyset
		)
		for range 4 {
			page, err := repo().Find(suiteCtx, model.PartsFilter{}, model.FindOptions{
				Sort: s, After: after, Limit: 1,
			})
			Expect(err).NotTo(HaveOccurred())
			if len(page) == 0 {
				break
			}
			last := page[0]
			seen = append(seen, last.ID)
			after = &model.Keyset{Value: s.Field.ValueOf(last), ID: last.ID}
		}

		Expect(seen).To(HaveLen(4))
		Expect(lo.Uniq(seen)).To(HaveLen(4))
	})

	It("updates fields and clears mileage", func() {
		upd := model.PartUpdate{
			Patch: model.PartPatch{
				Name:         lo.ToPtr("Rebuilt alternator"),
				ClearMileage: true,
			},
			SearchableText: lo.ToPtr("rebuilt alternator"),
			UpdatedAt:      base.Add(48 * time.Hour),
		}
		Expect(repo().Update(suiteCtx, parts[2].ID, upd)).To(Succeed())

		got, err := repo().PartByID(suiteCtx, parts[2].ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Name).To(Equal("Rebuilt alternator"))
		Expect(got.Mileage).To(BeNil())
		Expect(got.SearchableText).To(Equal("rebuilt alternator"))
	})

	It("skips malformed documents while scanning", func() {
		_, err := coll.InsertOne(suiteCtx, bson.M{"_id": "broken", "price_cents": "free"})
		Expect(err).NotTo(HaveOccurred())

		var n int
		Expect(repo().Scan(suiteCtx, func(*model.Part) error {
			n++
			return nil
		})).To(Succeed())
		Expect(n).To(Equal(len(parts)))
	})

	It("deletes a part once", func() {
		Expect(repo().Delete(suiteCtx, parts[0].ID)).To(Succeed())
		Expect(repo().Delete(suiteCtx, parts[0].ID)).To(MatchError(model.ErrPartNotFound))
	})

	It("lists available ids", func() {
		ids, err := repo().IDs(suiteCtx, model.PartsFilter{Status: model.StatusAvailable})
		Expect(err).NotTo(HaveOccurred())
		Expect(ids).To(ConsistOf(parts[0].ID, parts[1].ID, parts[2].ID))
	})

	It("seeds only an empty collection", func() {
		Expect(repository.PartsBootstrap(suiteCtx, repo(), "Greg")).To(Succeed())

		n, err := repo().Count(suiteCtx, model.PartsFilter{})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(len(parts)))
	})
})

type partStore interface {
	repository.BatchCreator
	PartByID(ctx context.Context, id string) (*model.Part, error)
	Find(ctx context.Context, filter model.PartsFilter, opts model.FindOptions) ([]*model.Part, error)
	Count(ctx context.Context, filter model.PartsFilter) (int, error)
	Scan(ctx context.Context, fn func(p *model.Part) error) error
	IDs(ctx context.Context, filter model.PartsFilter) ([]string, error)
	Create(ctx context.Context, p *model.Part) error
	Update(ctx context.Context, id string, upd model.PartUpdate) error
	Delete(ctx context.Context, id string) error
}
