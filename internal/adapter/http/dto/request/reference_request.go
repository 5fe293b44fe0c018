package request

import "construction_estimator/internal/domain/entities"

// CityRequest is the body of the admin city endpoints. On update, omitted
// fields keep their stored value.
type CityRequest struct {
	Name             *string  `json:"name"`
	Code             *string  `json:"code"`
	LaborRatePerArea *float64 `json:"labor_rate_per_sqft"`
	MaterialBaseRate *float64 `json:"material_base_rate"`
	EquipmentRate    *float64 `json:"equipment_rate"`
}

func (r CityRequest) ToUpdate() entities.CityUpdate {
	return entities.CityUpdate{
		Name:             r.Name,
		Code:             r.Code,
		LaborRatePerArea: r.LaborRatePerArea,
		MaterialBaseRate: r.MaterialBaseRate,
		EquipmentRate:    r.EquipmentRate,
	}
}

// MaterialRequest is the body of the admin material endpoints.
type MaterialRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Unit         *string  `json:"unit"`
	StandardRate *float64 `json:"standard_rate"`
	PremiumRate  *float64 `json:"premium_rate"`
	LuxuryRate   *float64 `json:"luxury_rate"`
}

func (r MaterialRequest) ToUpdate() entities.MaterialUpdate {
	return entities.MaterialUpdate{
		Name:         r.Name,
		Category:     r.Category,
		Unit:         r.Unit,
		StandardRate: r.StandardRate,
		PremiumRate:  r.PremiumRate,
		LuxuryRate:   r.LuxuryRate,
	}
}
