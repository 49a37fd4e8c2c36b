package model

import (
	"strconv"
	"strings"
)

// Matches reports whether the part satisfies every substring filter of q.
// Needles are expected lowercased.
func (q PartsQuery) Matches(p *Part) bool {
	if q.MakeContains != "" && !containsFold(p.VehicleMake, q.MakeContains) {
		return false
	}
	if q.ModelContains != "" && !containsFold(p.VehicleModel, q.ModelContains) {
		return false
	}
	if q.Search != "" {
		haystack := []string{
			p.Name,
			p.VehicleMake,
			p.VehicleModel,
			strconv.Itoa(p.VehicleYear),
			p.Notes,
		}
		for _, h := range haystack {
			if containsFold(h, q.Search) {
				return true
			}
		}
		return false
	}
	return true
}

func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
