package costing

import "construction_estimator/internal/domain/entities"

// Lookup returns table[key], or fallback when key is absent.
func Lookup[K comparable, V any](table map[K]V, key K, fallback V) V {
	if v, ok := table[key]; ok {
		return v
	}
	return fallback
}

const (
	defaultQualityFactor     = 1.00
	defaultFinishesRate      = 450.0
	defaultCeilingMultiplier = 1.00
)

// Applied to cement and steel quantities only.
var qualityFactors = map[entities.QualityTier]float64{
	entities.QualityStandard: 1.00,
	entities.QualityPremium:  1.10,
	entities.QualityLuxury:   1.20,
}

// Finishes rate per unit area.
var finishesRates = map[entities.QualityTier]float64{
	entities.QualityStandard: 450,
	entities.QualityPremium:  750,
	entities.QualityLuxury:   1300,
}

var ceilingMultipliers = map[entities.CeilingHeightBand]float64{
	entities.CeilingHeight10: 1.00,
	entities.CeilingHeight12: 1.12,
	entities.CeilingHeight14: 1.25,
}

// QualityFactor is the quantity multiplier for cement and steel.
func QualityFactor(tier entities.QualityTier) float64 {
	return Lookup(qualityFactors, tier, defaultQualityFactor)
}

// FinishesRate is the finishes cost per unit area for tier.
func FinishesRate(tier entities.QualityTier) float64 {
	return Lookup(finishesRates, tier, defaultFinishesRate)
}

// CeilingMultiplier is the cost scaling factor for a ceiling height band.
func CeilingMultiplier(band entities.CeilingHeightBand) float64 {
	return Lookup(ceilingMultipliers, band, defaultCeilingMultiplier)
}
