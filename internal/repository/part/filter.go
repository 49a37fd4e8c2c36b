package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/partsyard/internal/model"
)

func BuildMongoFilter(f model.PartsFilter) bson.M {
	q := bson.M{}

	if f.Status != "" {
		q[fieldStockStatus] = string(f.Status)
	}
	if f.Category != "" {
		q[fieldCategory] = string(f.Category)
	}
	if f.Condition != "" {
		q[fieldCondition] = string(f.Condition)
	}
	if f.Make != "" {
		q[fieldVehicleMake] = f.Make
	}
	if f.Year != 0 {
		q[fieldVehicleYear] = f.Year
	}

	return q
}

func sortKey(f model.SortField) string {
	switch f {
	case model.SortPrice:
		return fieldPriceCents
	case model.SortVehicleYear:
		return fieldVehicleYear
	default:
		return fieldCreatedAt
	}
}

// buildSort orders by the sort field and breaks ties by id in the same direction.
func buildSort(s model.Sort) bson.D {
	dir := -1
	if s.Direction == model.SortAsc {
		dir = 1
	}
	return bson.D{
		{Key: sortKey(s.Field), Value: dir},
		{Key: fieldID, Value: dir},
	}
}

func keysetValue(f model.SortField, v int64) any {
	if f == model.SortCreatedAt || f == "" {
		return time.UnixMilli(v).UTC()
	}
	return v
}

// withKeyset narrows q to records strictly after k in the given order.
func withKeyset(q bson.M, s model.Sort, k *model.Keyset) bson.M {
	if k == nil {
		return q
	}

	cmp := "$lt"
	if s.Direction == model.SortAsc {
		cmp = "$gt"
	}

	key := sortKey(s.Field)
	val := keysetValue(s.Field, k.Value)
	after := bson.M{"$or": bson.A{
		bson.M{key: bson.M{cmp: val}},
		bson.M{key: val, fieldID: bson.M{cmp: k.ID}},
	}}

	if len(q) == 0 {
		return after
	}
	return bson.M{"$and": bson.A{q, after}}
}
