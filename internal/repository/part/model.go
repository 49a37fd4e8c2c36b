package repository

import "time"

// PartEntity mirrors a part document. Enum fields stay plain strings so that
// documents written by other tools can be checked before they reach the model.
type PartEntity struct {
	ID             string    `bson:"_id"`
	Name           string    `bson:"name"`
	Category       string    `bson:"category"`
	VIN            string    `bson:"vin"`
	VehicleYear    int       `bson:"vehicle_year"`
	VehicleMake    string    `bson:"vehicle_make"`
	VehicleModel   string    `bson:"vehicle_model"`
	VehicleTrim    string    `bson:"vehicle_trim,omitempty"`
	Condition      string    `bson:"condition"`
	PriceCents     int64     `bson:"price_cents"`
	Mileage        *int64    `bson:"mileage,omitempty"`
	YardLocation   string    `bson:"yard_location"`
	Photos         []string  `bson:"photos"`
	StockStatus    string    `bson:"stock_status"`
	Notes          string    `bson:"notes"`
	AddedBy        string    `bson:"added_by"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
	SearchableText string    `bson:"searchable_text"`
}

const (
	fieldID             = "_id"
	fieldName           = "name"
	fieldCategory       = "category"
	fieldVIN            = "vin"
	fieldVehicleYear    = "vehicle_year"
	fieldVehicleMake    = "vehicle_make"
	fieldVehicleModel   = "vehicle_model"
	fieldVehicleTrim    = "vehicle_trim"
	fieldCondition      = "condition"
	fieldPriceCents     = "price_cents"
	fieldMileage        = "mileage"
	fieldYardLocation   = "yard_location"
	fieldPhotos         = "photos"
	fieldStockStatus    = "stock_status"
	fieldNotes          = "notes"
	fieldAddedBy        = "added_by"
	fieldCreatedAt      = "created_at"
	fieldUpdatedAt      = "updated_at"
	fieldSearchableText = "searchable_text"
)
