package service

import (
	"errors"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/you-humble/partsyard/internal/model"
)

const minVehicleYear = 1900

var vinPattern = regexp.MustCompile(`(?i)^[A-HJ-NPR-Z0-9]{17}$`)

// partForm is the validated shape of a part. Field names in errors come from the json tags.
type partForm struct {
	Name         string   `json:"name" validate:"notblank,max=200"`
	Category     string   `json:"category" validate:"category"`
	VIN          string   `json:"vin" validate:"omitempty,vin"`
	VehicleYear  int      `json:"vehicleYear" validate:"vehicle_year"`
	VehicleMake  string   `json:"vehicleMake" validate:"notblank,max=50"`
	VehicleModel string   `json:"vehicleModel" validate:"notblank,max=50"`
	VehicleTrim  string   `json:"vehicleTrim" validate:"max=50"`
	Condition    string   `json:"condition" validate:"condition"`
	PriceCents   int64    `json:"price" validate:"min=0"`
	Mileage      *int64   `json:"mileage" validate:"omitempty,min=0"`
	YardLocation string   `json:"yardLocation" validate:"notblank,max=100"`
	Photos       []string `json:"photos" validate:"max=6,dive,photo_url"`
	StockStatus  string   `json:"stockStatus" validate:"stock_status"`
	Notes        string   `json:"notes" validate:"max=2000"`
	AddedBy      string   `json:"addedBy" validate:"notblank,staff"`
}

var messages = map[string]map[string]string{
	"name":         {"notblank": "Part name is required", "max": "Part name must be at most 200 characters"},
	"category":     {"category": "Category is required"},
	"vin":          {"vin": "VIN must be exactly 17 characters (no I, O, or Q)"},
	"vehicleYear":  {"vehicle_year": "Year must be between 1900 and next year"},
	"vehicleMake":  {"notblank": "Make is required", "max": "Make must be at most 50 characters"},
	"vehicleModel": {"notblank": "Model is required", "max": "Model must be at most 50 characters"},
	"vehicleTrim":  {"max": "Trim must be at most 50 characters"},
	"condition":    {"condition": "Condition is required"},
	"price":        {"min": "Price cannot be negative"},
	"mileage":      {"min": "Mileage cannot be negative"},
	"yardLocation": {"notblank": "Yard location is required", "max": "Yard location must be at most 100 characters"},
	"photos":       {"max": "Maximum 6 photos allowed", "photo_url": "Photo must be an http(s) URL"},
	"stockStatus":  {"stock_status": "Unknown stock status"},
	"notes":        {"max": "Notes must be at most 2000 characters"},
	"addedBy":      {"notblank": "Staff member is required", "staff": "Staff member is not on the roster"},
}

type partValidator struct {
	v     *validator.Validate
	staff map[string]struct{}
	now   func() time.Time
}

func newPartValidator(staff []string, now func() time.Time) *partValidator {
	pv := &partValidator{
		v:     validator.New(validator.WithRequiredStructEnabled()),
		staff: make(map[string]struct{}, len(staff)),
		now:   now,
	}
	for _, s := range staff {
		if s = strings.TrimSpace(s); s != "" {
			pv.staff[s] = struct{}{}
		}
	}

	pv.v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	must := func(tag string, fn validator.Func) {
		if err := pv.v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	must("vin", func(fl validator.FieldLevel) bool {
		return vinPattern.MatchString(fl.Field().String())
	})
	must("vehicle_year", func(fl validator.FieldLevel) bool {
		y := fl.Field().Int()
		return y >= minVehicleYear && y <= int64(pv.now().Year()+1)
	})
	must("category", func(fl validator.FieldLevel) bool {
		return model.Category(fl.Field().String()).Valid()
	})
	must("condition", func(fl validator.FieldLevel) bool {
		return model.Condition(fl.Field().String()).Valid()
	})
	must("stock_status", func(fl validator.FieldLevel) bool {
		return model.StockStatus(fl.Field().String()).Valid()
	})
	must("photo_url", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
	must("staff", func(fl validator.FieldLevel) bool {
		_, ok := pv.staff[fl.Field().String()]
		return ok
	})

	return pv
}

// Validate returns a *model.ValidationError describing every failing field.
func (pv *partValidator) Validate(in model.PartInput) error {
	err := pv.v.Struct(partForm{
		Name:         in.Name,
		Category:     string(in.Category),
		VIN:          in.VIN,
		VehicleYear:  in.VehicleYear,
		VehicleMake:  in.VehicleMake,
		VehicleModel: in.VehicleModel,
		VehicleTrim:  in.VehicleTrim,
		Condition:    string(in.Condition),
		PriceCents:   in.PriceCents,
		Mileage:      in.Mileage,
		YardLocation: in.YardLocation,
		Photos:       in.Photos,
		StockStatus:  string(in.StockStatus),
		Notes:        in.Notes,
		AddedBy:      in.AddedBy,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		field, _, _ := strings.Cut(name, "[")
		if _, seen := fields[name]; seen {
			continue
		}
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		fields[name] = msg
	}

	return &model.ValidationError{Fields: fields}
}
