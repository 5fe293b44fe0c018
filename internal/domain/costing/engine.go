// Package costing turns a project spec and the current reference rates into a
// material take-off and a cost breakdown.
//
// Compute is pure: it performs no I/O, holds no state and returns the same
// breakdown for the same inputs, so it is safe to call concurrently.
package costing

import (
	"math"
	"strings"

	"construction_estimator/internal/domain/entities"
)

const (
	equipmentShareOfLabor = 0.18
	overheadRate          = 0.12
	roomAllowance         = 60000.0

	minDurationDays     = 45
	durationDaysPerUnit = 45.0
	durationAreaUnit    = 1000.0

	// Bricks are quoted per 1000 pieces, sand and crush per truck (~1000 cft).
	bulkRateDivisor = 1000.0
)

// takeoffItem describes one material of the quantity take-off.
type takeoffItem struct {
	label   string
	key     string // lowercased reference material name
	unit    string
	perArea float64
	scaled  bool // quality factor applies
	bulk    bool // rate quoted per 1000 units
}

// Fixed order of the bill of quantities.
var takeoff = []takeoffItem{
	{label: "Cement", key: "cement", unit: "bag", perArea: 0.40, scaled: true},
	{label: "Steel", key: "steel bars", unit: "kg", perArea: 3.50, scaled: true},
	{label: "Bricks", key: "bricks", unit: "pcs", perArea: 8, bulk: true},
	{label: "Sand", key: "sand", unit: "cft", perArea: 1.20, bulk: true},
	{label: "Crush", key: "crush", unit: "cft", perArea: 0.90, bulk: true},
}

// MaterialIndex maps lowercased material names to their rates.
type MaterialIndex map[string]entities.MaterialRate

// IndexMaterials indexes materials by lowercased name. When two materials share
// a name the later one wins.
func IndexMaterials(materials []entities.MaterialRate) MaterialIndex {
	idx := make(MaterialIndex, len(materials))
	for _, m := range materials {
		idx[strings.ToLower(m.Name)] = m
	}
	return idx
}

// Rate returns the tier rate of the named material, or 0 if it is missing.
func (idx MaterialIndex) Rate(name string, tier entities.QualityTier) float64 {
	m, ok := idx[strings.ToLower(name)]
	if !ok {
		return 0
	}
	return m.RateFor(tier)
}

// Compute runs the costing algorithm. Intermediate values are kept unrounded;
// rounding (half to even) happens only on the reported figures.
func Compute(spec entities.ProjectSpec, city entities.CityRate, materials MaterialIndex) entities.CostBreakdown {
	floors := float64(spec.Floors)

	laborCost := spec.Area * city.LaborRatePerArea * floors
	effectiveArea := spec.Area * floors
	qf := QualityFactor(spec.QualityTier)

	boq := make([]entities.BOQLine, 0, len(takeoff))
	materialCost := 0.0
	for _, item := range takeoff {
		factor := 1.0
		if item.scaled {
			factor = qf
		}
		qty := effectiveArea * item.perArea * factor
		rate := materials.Rate(item.key, spec.QualityTier)

		var cost, displayRate float64
		if item.bulk {
			cost = (qty / bulkRateDivisor) * rate
			displayRate = rate / bulkRateDivisor
		} else {
			cost = qty * rate
			displayRate = rate
		}
		materialCost += cost

		boq = append(boq, entities.BOQLine{
			Material: item.label,
			Unit:     item.unit,
			Quantity: round(qty),
			Rate:     round(displayRate),
			Total:    round(cost),
		})
	}

	equipmentCost := laborCost * equipmentShareOfLabor

	finishesCost := 0.0
	if spec.IncludesFinishes {
		finishesCost = spec.Area * FinishesRate(spec.FinishesQuality) * floors
	}

	subtotal := materialCost + laborCost + equipmentCost + finishesCost
	otherCosts := subtotal * overheadRate
	roomCost := float64(spec.Rooms) * roomAllowance
	total := (subtotal+otherCosts)*CeilingMultiplier(spec.CeilingHeight) + roomCost

	return entities.CostBreakdown{
		MaterialCost:          round(materialCost),
		LaborCost:             round(laborCost),
		EquipmentCost:         round(equipmentCost),
		FinishesCost:          round(finishesCost),
		OtherCosts:            round(otherCosts),
		TotalCost:             round(total),
		EstimatedDurationDays: EstimatedDurationDays(spec.Area, spec.Floors),
		BillOfQuantities:      boq,
		AccuracyLabel:         entities.AccuracyLabel,
	}
}

// EstimatedDurationDays is 45 days per 1000 units of floor area per floor,
// never less than 45 days.
func EstimatedDurationDays(area float64, floors int) int64 {
	days := round((area / durationAreaUnit) * durationDaysPerUnit * float64(floors))
	if days < minDurationDays {
		return minDurationDays
	}
	return days
}

func round(v float64) int64 {
	return int64(math.RoundToEven(v))
}
