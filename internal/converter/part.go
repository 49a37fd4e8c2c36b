package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/partsyard/internal/model"
	"github.com/you-humble/partsyard/internal/transport/http/dto"
)

func PartToDTO(p *model.Part) dto.Part {
	return dto.Part{
		ID:           p.ID,
		Name:         p.Name,
		Category:     string(p.Category),
		VIN:          p.VIN,
		VehicleYear:  p.VehicleYear,
		VehicleMake:  p.VehicleMake,
		VehicleModel: p.VehicleModel,
		VehicleTrim:  p.VehicleTrim,
		Condition:    string(p.Condition),
		Price:        p.PriceCents,
		Mileage:      p.Mileage,
		YardLocation: p.YardLocation,
		Photos:       photosOrEmpty(p.Photos),
		StockStatus:  string(p.StockStatus),
		Notes:        p.Notes,
		AddedBy:      p.AddedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func PartToPublicDTO(p *model.Part) dto.PublicPart {
	return dto.PublicPart{
		ID:           p.ID,
		Name:         p.Name,
		Category:     string(p.Category),
		VehicleYear:  p.VehicleYear,
		VehicleMake:  p.VehicleMake,
		VehicleModel: p.VehicleModel,
		VehicleTrim:  p.VehicleTrim,
		Condition:    string(p.Condition),
		Price:        p.PriceCents,
		Mileage:      p.Mileage,
		Photos:       photosOrEmpty(p.Photos),
		StockStatus:  string(p.StockStatus),
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
	}
}

func PartsToDTO(parts []*model.Part) []dto.Part {
	return lo.Map(parts, func(p *model.Part, _ int) dto.Part { return PartToDTO(p) })
}

func PartsToPublicDTO(parts []*model.Part) []dto.PublicPart {
	return lo.Map(parts, func(p *model.Part, _ int) dto.PublicPart { return PartToPublicDTO(p) })
}

func CreateRequestToInput(req dto.CreatePartRequest) model.PartInput {
	return model.PartInput{
		Name:         req.Name,
		Category:     model.Category(req.Category),
		VIN:          req.VIN,
		VehicleYear:  req.VehicleYear,
		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		VehicleTrim:  req.VehicleTrim,
		Condition:    model.Condition(req.Condition),
		PriceCents:   req.Price,
		Mileage:      req.Mileage,
		YardLocation: req.YardLocation,
		Photos:       req.Photos,
		StockStatus:  model.StockStatus(req.StockStatus),
		Notes:        req.Notes,
		AddedBy:      req.AddedBy,
	}
}

func UpdateRequestToPatch(req dto.UpdatePartRequest) model.PartPatch {
	patch := model.PartPatch{
		Name:         req.Name,
		VIN:          req.VIN,
		VehicleYear:  req.VehicleYear,
		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		VehicleTrim:  req.VehicleTrim,
		PriceCents:   req.Price,
		YardLocation: req.YardLocation,
		Photos:       req.Photos,
		Notes:        req.Notes,
		AddedBy:      req.AddedBy,
	}
	if req.Category != nil {
		patch.Category = lo.ToPtr(model.Category(*req.Category))
	}
	if req.Condition != nil {
		patch.Condition = lo.ToPtr(model.Condition(*req.Condition))
	}
	if req.StockStatus != nil {
		patch.StockStatus = lo.ToPtr(model.StockStatus(*req.StockStatus))
	}
	if req.Mileage.Set {
		patch.Mileage = req.Mileage.Value
		patch.ClearMileage = req.Mileage.Value == nil
	}
	return patch
}

func StatsToDTO(s *model.PartStats) dto.Stats {
	return dto.Stats{
		Total:         s.Total,
		Available:     s.Available,
		Sold:          s.Sold,
		OnHold:        s.OnHold,
		AddedThisWeek: s.AddedThisWeek,
	}
}

func BulkResultToDTO(r *model.BulkResult, status string) dto.BulkResponse {
	return dto.BulkResponse{
		Status:    status,
		Requested: r.Requested,
		Succeeded: r.Succeeded,
		Failed:    r.Failed,
	}
}

func photosOrEmpty(photos []string) []string {
	if photos == nil {
		return []string{}
	}
	return photos
}
