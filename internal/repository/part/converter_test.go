package repository

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/partsyard/internal/model"
)

func validEntity() *PartEntity {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &PartEntity{
		ID:           gofakeit.UUID(),
		Name:         gofakeit.ProductName(),
		Category:     string(model.CategoryBrakes),
		VehicleYear:  2012,
		VehicleMake:  "Honda",
		VehicleModel: "Civic",
		Condition:    string(model.ConditionGood),
		PriceCents:   4500,
		YardLocation: "Row B",
		StockStatus:  string(model.StatusAvailable),
		AddedBy:      "Greg",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestEntityToModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(e *PartEntity)
		wantErr bool
	}{
		{name: "valid document", mutate: func(*PartEntity) {}},
		{name: "unknown category", mutate: func(e *PartEntity) { e.Category = "spaceship" }, wantErr: true},
		{name: "unknown condition", mutate: func(e *PartEntity) { e.Condition = "Mint" }, wantErr: true},
		{name: "unknown stock status", mutate: func(e *PartEntity) { e.StockStatus = "Reserved" }, wantErr: true},
		{name: "missing id", mutate: func(e *PartEntity) { e.ID = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := validEntity()
			tt.mutate(e)

			p, err := EntityToModel(e)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrMalformedDocument)
				assert.Nil(t, p)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, e.ID, p.ID)
			assert.Equal(t, model.CategoryBrakes, p.Category)
			assert.NotNil(t, p.Photos, "missing photos decode as an empty list")
		})
	}
}

func TestEntityRoundTrip(t *testing.T) {
	t.Parallel()

	e := validEntity()
	e.Mileage = lo.ToPtr(int64(98000))
	e.Photos = []string{"https://cdn.example.com/parts/a/1_door.jpg"}

	p, err := EntityToModel(e)
	require.NoError(t, err)

	assert.Equal(t, e, EntityFromModel(p))
}

func TestBuildMongoFilter(t *testing.T) {
	t.Parallel()

	assert.Empty(t, BuildMongoFilter(model.PartsFilter{}))

	got := BuildMongoFilter(model.PartsFilter{
		Status:    model.StatusAvailable,
		Category:  model.CategoryEngine,
		Condition: model.ConditionFair,
		Make:      "Ford",
		Year:      2016,
	})

	assert.Equal(t, bson.M{
		"stock_status": "Available",
		"category":     "engine",
		"condition":    "Fair",
		"vehicle_make": "Ford",
		"vehicle_year": 2016,
	}, got)
}

func TestBuildSort(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
		buildSort(model.Sort{Field: model.SortCreatedAt, Direction: model.SortDesc}),
	)
	assert.Equal(t,
		bson.D{{Key: "price_cents", Value: 1}, {Key: "_id", Value: 1}},
		buildSort(model.Sort{Field: model.SortPrice, Direction: model.SortAsc}),
	)
}

func TestWithKeyset(t *testing.T) {
	t.Parallel()

	t.Run("no keyset keeps filter", func(t *testing.T) {
		t.Parallel()

		q := bson.M{"category": "engine"}
		assert.Equal(t, q, withKeyset(q, model.Sort{}, nil))
	})

	t.Run("descending price", func(t *testing.T) {
		t.Parallel()

		got := withKeyset(bson.M{}, model.Sort{Field: model.SortPrice, Direction: model.SortDesc},
			&model.Keyset{Value: 500, ID: "b"})

		assert.Equal(t, bson.M{"$or": bson.A{
			bson.M{"price_cents": bson.M{"$lt": int64(500)}},
			bson.M{"price_cents": int64(500), "_id": bson.M{"$lt": "b"}},
		}}, got)
	})

	t.Run("ascending created_at combines with filter", func(t *testing.T) {
		t.Parallel()

		ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		q := bson.M{"stock_status": "Available"}
		got := withKeyset(q, model.Sort{Field: model.SortCreatedAt, Direction: model.SortAsc},
			&model.Keyset{Value: ts.UnixMilli(), ID: "a"})

		assert.Equal(t, bson.M{"$and": bson.A{
			q,
			bson.M{"$or": bson.A{
				bson.M{"created_at": bson.M{"$gt": ts}},
				bson.M{"created_at": ts, "_id": bson.M{"$gt": "a"}},
			}},
		}}, got)
	})
}

func TestBuildUpdate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	text := "door ford"

	got := BuildUpdate(model.PartUpdate{
		Patch: model.PartPatch{
			Name:         lo.ToPtr("Door"),
			StockStatus:  lo.ToPtr(model.StatusSold),
			ClearMileage: true,
		},
		SearchableText: &text,
		UpdatedAt:      now,
	})

	assert.Equal(t, bson.M{
		"$set": bson.M{
			"name":            "Door",
			"stock_status":    "Sold",
			"searchable_text": text,
			"updated_at":      now,
		},
		"$unset": bson.M{"mileage": ""},
	}, got)
}
