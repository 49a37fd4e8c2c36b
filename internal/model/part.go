package model

import (
	"strconv"
	"strings"
	"time"
)

type Category string

const (
	CategoryEngine       Category = "engine"
	CategoryTransmission Category = "transmission"
	CategoryBody         Category = "body"
	CategoryElectrical   Category = "electrical"
	CategoryInterior     Category = "interior"
	CategorySuspension   Category = "suspension"
	CategoryBrakes       Category = "brakes"
	CategoryCooling      Category = "cooling"
	CategoryExhaust      Category = "exhaust"
	CategoryFuel         Category = "fuel"
	CategorySteering     Category = "steering"
	CategoryWheelsTires  Category = "wheels-tires"
	CategoryGlass        Category = "glass"
	CategoryLighting     Category = "lighting"
	CategoryOther        Category = "other"
)

var categories = []Category{
	CategoryEngine, CategoryTransmission, CategoryBody, CategoryElectrical,
	CategoryInterior, CategorySuspension, CategoryBrakes, CategoryCooling,
	CategoryExhaust, CategoryFuel, CategorySteering, CategoryWheelsTires,
	CategoryGlass, CategoryLighting, CategoryOther,
}

func Categories() []Category { return append([]Category(nil), categories...) }

func (c Category) Valid() bool {
	for _, v := range categories {
		if v == c {
			return true
		}
	}
	return false
}

type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return true
	}
	return false
}

type StockStatus string

const (
	StatusAvailable StockStatus = "Available"
	StatusSold      StockStatus = "Sold"
	StatusOnHold    StockStatus = "On Hold"
)

func (s StockStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusOnHold:
		return true
	}
	return false
}

const MaxPhotos = 6

type Part struct {
	// Opaque identifier, immutable after creation.
	ID       string
	Name     string
	Category Category
	// Empty or a 17 character VIN.
	VIN          string
	VehicleYear  int
	VehicleMake  string
	VehicleModel string
	VehicleTrim  string
	Condition    Condition
	// Price in cents.
	PriceCents   int64
	Mileage      *int64
	YardLocation string
	// Absolute URLs of up to MaxPhotos images.
	Photos      []string
	StockStatus StockStatus
	Notes       string
	// Staff member who entered the record.
	AddedBy   string
	CreatedAt time.Time
	UpdatedAt time.Time
	// Lowercased join of the textual fields, rebuilt on every write.
	SearchableText string
}

// PartInput carries the staff-authored fields of a part.
type PartInput struct {
	Name         string
	Category     Category
	VIN          string
	VehicleYear  int
	VehicleMake  string
	VehicleModel string
	VehicleTrim  string
	Condition    Condition
	PriceCents   int64
	Mileage      *int64
	YardLocation string
	Photos       []string
	StockStatus  StockStatus
	Notes        string
	AddedBy      string
}

// PartPatch holds the fields of a partial update. Nil fields are left untouched.
type PartPatch struct {
	Name         *string
	Category     *Category
	VIN          *string
	VehicleYear  *int
	VehicleMake  *string
	VehicleModel *string
	VehicleTrim  *string
	Condition    *Condition
	PriceCents   *int64
	Mileage      *int64
	ClearMileage bool
	YardLocation *string
	Photos       *[]string
	StockStatus  *StockStatus
	Notes        *string
	AddedBy      *string
}

func (p PartPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.VIN == nil &&
		p.VehicleYear == nil && p.VehicleMake == nil && p.VehicleModel == nil &&
		p.VehicleTrim == nil && p.Condition == nil && p.PriceCents == nil &&
		p.Mileage == nil && !p.ClearMileage && p.YardLocation == nil &&
		p.Photos == nil && p.StockStatus == nil && p.Notes == nil && p.AddedBy == nil
}

// Input returns the authored fields of the part.
func (p *Part) Input() PartInput {
	return PartInput{
		Name:         p.Name,
		Category:     p.Category,
		VIN:          p.VIN,
		VehicleYear:  p.VehicleYear,
		VehicleMake:  p.VehicleMake,
		VehicleModel: p.VehicleModel,
		VehicleTrim:  p.VehicleTrim,
		Condition:    p.Condition,
		PriceCents:   p.PriceCents,
		Mileage:      p.Mileage,
		YardLocation: p.YardLocation,
		Photos:       append([]string(nil), p.Photos...),
		StockStatus:  p.StockStatus,
		Notes:        p.Notes,
		AddedBy:      p.AddedBy,
	}
}

// Apply merges the non-nil fields of the patch into a copy of in.
func (p PartPatch) Apply(in PartInput) PartInput {
	out := in
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.VIN != nil {
		out.VIN = *p.VIN
	}
	if p.VehicleYear != nil {
		out.VehicleYear = *p.VehicleYear
	}
	if p.VehicleMake != nil {
		out.VehicleMake = *p.VehicleMake
	}
	if p.VehicleModel != nil {
		out.VehicleModel = *p.VehicleModel
	}
	if p.VehicleTrim != nil {
		out.VehicleTrim = *p.VehicleTrim
	}
	if p.Condition != nil {
		out.Condition = *p.Condition
	}
	if p.PriceCents != nil {
		out.PriceCents = *p.PriceCents
	}
	if p.ClearMileage {
		out.Mileage = nil
	} else if p.Mileage != nil {
		out.Mileage = p.Mileage
	}
	if p.YardLocation != nil {
		out.YardLocation = *p.YardLocation
	}
	if p.Photos != nil {
		out.Photos = append([]string(nil), (*p.Photos)...)
	}
	if p.StockStatus != nil {
		out.StockStatus = *p.StockStatus
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.AddedBy != nil {
		out.AddedBy = *p.AddedBy
	}
	return out
}

// PartUpdate is what the store persists for a partial update.
type PartUpdate struct {
	Patch          PartPatch
	SearchableText *string
	UpdatedAt      time.Time
}

// BuildSearchableText derives the search haystack of a part.
func BuildSearchableText(in PartInput) string {
	fields := []string{
		in.Name,
		string(in.Category),
		in.VIN,
		strconv.Itoa(in.VehicleYear),
		in.VehicleMake,
		in.VehicleModel,
		in.VehicleTrim,
		in.Notes,
		in.YardLocation,
	}

	nonEmpty := fields[:0]
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}

	return strings.ToLower(strings.Join(nonEmpty, " "))
}
