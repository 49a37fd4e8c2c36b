package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/partsyard/internal/model"
)

type BatchCreator interface {
	CreateBatch(ctx context.Context, parts []*model.Part) error
	Empty(ctx context.Context) (bool, error)
}

// PartsBootstrap seeds an empty collection with a few demo parts.
func PartsBootstrap(ctx context.Context, c BatchCreator, addedBy string) error {
	empty, err := c.Empty(ctx)
	if err != nil || !empty {
		return err
	}

	now := time.Now().UTC()

	parts := []*model.Part{
		{
			ID:           uuid.NewString(),
			Name:         "5.3L V8 Engine Assembly",
			Category:     model.CategoryEngine,
			VIN:          "1GCVKREC0EZ123456",
			VehicleYear:  2014,
			VehicleMake:  "Chevrolet",
			VehicleModel: "Silverado 1500",
			VehicleTrim:  "LT",
			Condition:    model.ConditionGood,
			PriceCents:   185000,
			Mileage:      lo.ToPtr(int64(112000)),
			YardLocation: "Row A, Bay 3",
			Photos:       []string{},
			StockStatus:  model.StatusAvailable,
			Notes:        "Pulled running. Compression tested.",
			AddedBy:      addedBy,
			CreatedAt:    now.Add(-72 * time.Hour),
		},
		{
			ID:           uuid.NewString(),
			Name:         "Driver Side Headlight",
			Category:     model.CategoryLighting,
			VehicleYear:  2016,
			VehicleMake:  "Ford",
			VehicleModel: "F-150",
			VehicleTrim:  "XLT",
			Condition:    model.ConditionExcellent,
			PriceCents:   12500,
			YardLocation: "Shelf 12",
			Photos:       []string{},
			StockStatus:  model.StatusAvailable,
			Notes:        "Halogen, clear lens, tabs intact.",
			AddedBy:      addedBy,
			CreatedAt:    now.Add(-24 * time.Hour),
		},
		{
			ID:           uuid.NewString(),
			Name:         "4-Speed Automatic Transmission",
			Category:     model.CategoryTransmission,
			VehicleYear:  2009,
			VehicleMake:  "Toyota",
			VehicleModel: "Camry",
			Condition:    model.ConditionFair,
			PriceCents:   60000,
			Mileage:      lo.ToPtr(int64(164500)),
			YardLocation: "Row C, Bay 1",
			Photos:       []string{},
			StockStatus:  model.StatusOnHold,
			AddedBy:      addedBy,
			CreatedAt:    now,
		},
	}

	return c.CreateBatch(ctx, parts)
}
