package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

type Part struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	VIN          string    `json:"vin,omitempty"`
	VehicleYear  int       `json:"vehicleYear"`
	VehicleMake  string    `json:"vehicleMake"`
	VehicleModel string    `json:"vehicleModel"`
	VehicleTrim  string    `json:"vehicleTrim,omitempty"`
	Condition    string    `json:"condition"`
	Price        int64     `json:"price"`
	Mileage      *int64    `json:"mileage,omitempty"`
	YardLocation string    `json:"yardLocation"`
	Photos       []string  `json:"photos"`
	StockStatus  string    `json:"stockStatus"`
	Notes        string    `json:"notes,omitempty"`
	AddedBy      string    `json:"addedBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// PublicPart is the storefront view. Staff-only fields are left out.
type PublicPart struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	VehicleYear  int       `json:"vehicleYear"`
	VehicleMake  string    `json:"vehicleMake"`
	VehicleModel string    `json:"vehicleModel"`
	VehicleTrim  string    `json:"vehicleTrim,omitempty"`
	Condition    string    `json:"condition"`
	Price        int64     `json:"price"`
	Mileage      *int64    `json:"mileage,omitempty"`
	Photos       []string  `json:"photos"`
	StockStatus  string    `json:"stockStatus"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreatePartRequest struct {
	ID           string   `json:"id,omitempty"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	VIN          string   `json:"vin"`
	VehicleYear  int      `json:"vehicleYear"`
	VehicleMake  string   `json:"vehicleMake"`
	VehicleModel string   `json:"vehicleModel"`
	VehicleTrim  string   `json:"vehicleTrim"`
	Condition    string   `json:"condition"`
	Price        int64    `json:"price"`
	Mileage      *int64   `json:"mileage"`
	YardLocation string   `json:"yardLocation"`
	Photos       []string `json:"photos"`
	StockStatus  string   `json:"stockStatus"`
	Notes        string   `json:"notes"`
	AddedBy      string   `json:"addedBy"`
}

// UpdatePartRequest carries only the fields to change.
// Mileage distinguishes "absent" from an explicit null that clears it.
type UpdatePartRequest struct {
	Name         *string       `json:"name"`
	Category     *string       `json:"category"`
	VIN          *string       `json:"vin"`
	VehicleYear  *int          `json:"vehicleYear"`
	VehicleMake  *string       `json:"vehicleMake"`
	VehicleModel *string       `json:"vehicleModel"`
	VehicleTrim  *string       `json:"vehicleTrim"`
	Condition    *string       `json:"condition"`
	Price        *int64        `json:"price"`
	Mileage      OptionalInt64 `json:"mileage"`
	YardLocation *string       `json:"yardLocation"`
	Photos       *[]string     `json:"photos"`
	StockStatus  *string       `json:"stockStatus"`
	Notes        *string       `json:"notes"`
	AddedBy      *string       `json:"addedBy"`
}

type OptionalInt64 struct {
	Set   bool
	Value *int64
}

func (o *OptionalInt64) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}

	var v int64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type StatusRequest struct {
	Status string `json:"status"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

type BulkResponse struct {
	Status    string `json:"status"`
	Requested int    `json:"requested"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

type PhotoRequest struct {
	URL string `json:"url"`
}

type PhotoResponse struct {
	URL string `json:"url"`
}

type IDResponse struct {
	ID string `json:"id"`
}
