package entities

// CityRate holds the per-city reference rates.
//
// MaterialBaseRate and EquipmentRate are stored and editable but are not read
// by the costing engine: equipment cost is derived from labor cost.
type CityRate struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Code             string  `json:"code"`
	LaborRatePerArea float64 `json:"labor_rate_per_sqft"`
	MaterialBaseRate float64 `json:"material_base_rate"`
	EquipmentRate    float64 `json:"equipment_rate"`
}

// MaterialRate holds the unit rates of a material at each quality tier.
type MaterialRate struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	StandardRate float64 `json:"standard_rate"`
	PremiumRate  float64 `json:"premium_rate"`
	LuxuryRate   float64 `json:"luxury_rate"`
}

// RateFor returns the rate of the given tier, or 0 for an unknown tier.
func (m MaterialRate) RateFor(tier QualityTier) float64 {
	switch tier {
	case QualityStandard:
		return m.StandardRate
	case QualityPremium:
		return m.PremiumRate
	case QualityLuxury:
		return m.LuxuryRate
	}
	return 0
}

// CityUpdate carries a partial update; nil fields are left untouched.
type CityUpdate struct {
	Name             *string
	Code             *string
	LaborRatePerArea *float64
	MaterialBaseRate *float64
	EquipmentRate    *float64
}

// Apply returns c with the non-nil fields of u applied.
func (u CityUpdate) Apply(c CityRate) CityRate {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Code != nil {
		c.Code = *u.Code
	}
	if u.LaborRatePerArea != nil {
		c.LaborRatePerArea = *u.LaborRatePerArea
	}
	if u.MaterialBaseRate != nil {
		c.MaterialBaseRate = *u.MaterialBaseRate
	}
	if u.EquipmentRate != nil {
		c.EquipmentRate = *u.EquipmentRate
	}
	return c
}

// MaterialUpdate carries a partial update; nil fields are left untouched.
type MaterialUpdate struct {
	Name         *string
	Category     *string
	Unit         *string
	StandardRate *float64
	PremiumRate  *float64
	LuxuryRate   *float64
}

// Apply returns m with the non-nil fields of u applied.
func (u MaterialUpdate) Apply(m MaterialRate) MaterialRate {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Category != nil {
		m.Category = *u.Category
	}
	if u.Unit != nil {
		m.Unit = *u.Unit
	}
	if u.StandardRate != nil {
		m.StandardRate = *u.StandardRate
	}
	if u.PremiumRate != nil {
		m.PremiumRate = *u.PremiumRate
	}
	if u.LuxuryRate != nil {
		m.LuxuryRate = *u.LuxuryRate
	}
	return m
}
