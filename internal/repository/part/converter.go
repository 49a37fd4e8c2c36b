package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/partsyard/internal/model"
)

// EntityToModel converts a stored document, rejecting documents whose enum
// fields or identity do not match the domain.
func EntityToModel(e *PartEntity) (*model.Part, error) {
	if e == nil {
		return nil, nil
	}

	switch {
	case e.ID == "":
		return nil, fmt.Errorf("%w: empty id", model.ErrMalformedDocument)
	case !model.Category(e.Category).Valid():
		return nil, fmt.Errorf("%w: part %s: category %q", model.ErrMalformedDocument, e.ID, e.Category)
	case !model.Condition(e.Condition).Valid():
		return nil, fmt.Errorf("%w: part %s: condition %q", model.ErrMalformedDocument, e.ID, e.Condition)
	case !model.StockStatus(e.StockStatus).Valid():
		return nil, fmt.Errorf("%w: part %s: stock status %q", model.ErrMalformedDocument, e.ID, e.StockStatus)
	}

	photos := e.Photos
	if photos == nil {
		photos = []string{}
	}

	return &model.Part{
		ID:             e.ID,
		Name:           e.Name,
		Category:       model.Category(e.Category),
		VIN:            e.VIN,
		VehicleYear:    e.VehicleYear,
		VehicleMake:    e.VehicleMake,
		VehicleModel:   e.VehicleModel,
		VehicleTrim:    e.VehicleTrim,
		Condition:      model.Condition(e.Condition),
		PriceCents:     e.PriceCents,
		Mileage:        e.Mileage,
		YardLocation:   e.YardLocation,
		Photos:         photos,
		StockStatus:    model.StockStatus(e.StockStatus),
		Notes:          e.Notes,
		AddedBy:        e.AddedBy,
		CreatedAt:      e.CreatedAt.UTC(),
		UpdatedAt:      e.UpdatedAt.UTC(),
		SearchableText: e.SearchableText,
	}, nil
}

func EntityFromModel(p *model.Part) *PartEntity {
	if p == nil {
		return nil
	}

	photos := p.Photos
	if photos == nil {
		photos = []string{}
	}

	return &PartEntity{
		ID:             p.ID,
		Name:           p.Name,
		Category:       string(p.Category),
		VIN:            p.VIN,
		VehicleYear:    p.VehicleYear,
		VehicleMake:    p.VehicleMake,
		VehicleModel:   p.VehicleModel,
		VehicleTrim:    p.VehicleTrim,
		Condition:      string(p.Condition),
		PriceCents:     p.PriceCents,
		Mileage:        p.Mileage,
		YardLocation:   p.YardLocation,
		Photos:         photos,
		StockStatus:    string(p.StockStatus),
		Notes:          p.Notes,
		AddedBy:        p.AddedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		SearchableText: p.SearchableText,
	}
}

// BuildUpdate turns a partial update into a $set/$unset document.
func BuildUpdate(u model.PartUpdate) bson.M {
	set := bson.M{fieldUpdatedAt: u.UpdatedAt}
	p := u.Patch

	if p.Name != nil {
		set[fieldName] = *p.Name
	}
	if p.Category != nil {
		set[fieldCategory] = string(*p.Category)
	}
	if p.VIN != nil {
		set[fieldVIN] = *p.VIN
	}
	if p.VehicleYear != nil {
		set[fieldVehicleYear] = *p.VehicleYear
	}
	if p.VehicleMake != nil {
		set[fieldVehicleMake] = *p.VehicleMake
	}
	if p.VehicleModel != nil {
		set[fieldVehicleModel] = *p.VehicleModel
	}
	if p.VehicleTrim != nil {
		set[fieldVehicleTrim] = *p.VehicleTrim
	}
	if p.Condition != nil {
		set[fieldCondition] = string(*p.Condition)
	}
	if p.PriceCents != nil {
		set[fieldPriceCents] = *p.PriceCents
	}
	if p.Mileage != nil && !p.ClearMileage {
		set[fieldMileage] = *p.Mileage
	}
	if p.YardLocation != nil {
		set[fieldYardLocation] = *p.YardLocation
	}
	if p.Photos != nil {
		photos := *p.Photos
		if photos == nil {
			photos = []string{}
		}
		set[fieldPhotos] = photos
	}
	if p.StockStatus != nil {
		set[fieldStockStatus] = string(*p.StockStatus)
	}
	if p.Notes != nil {
		set[fieldNotes] = *p.Notes
	}
	if p.AddedBy != nil {
		set[fieldAddedBy] = *p.AddedBy
	}
	if u.SearchableText != nil {
		set[fieldSearchableText] = *u.SearchableText
	}

	upd := bson.M{"$set": set}
	if p.ClearMileage {
		upd["$unset"] = bson.M{fieldMileage: ""}
	}
	return upd
}

func defaultTime(t time.Time, fallback time.Time) time.Time {
	if t.IsZero() {
		return fallback
	}
	return t
}
