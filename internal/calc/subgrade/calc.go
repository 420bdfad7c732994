package subgrade

import (
	"Soilworks/internal/model"
)

// Result is the modulus of subgrade reaction.
type Result struct {
	Coefficient float64 `json:"subgrade_coefficient"` // t/m³
}

// CalcBySettlement derives the coefficient from an observed settlement under
// the working pressure. Non-positive settlements map to a practically rigid
// value instead of dividing by zero.
func CalcBySettlement(settlement, foundationPressure float64) float64 {
	if settlement <= 0.0 {
		return 999999.0
	}
	return 100.0 * foundationPressure / settlement
}

// CalcByBearingCapacity is the empirical 400·q_allow correlation.
func CalcByBearingCapacity(bearingCapacity float64) float64 {
	return 400.0 * bearingCapacity
}

// CalculateBySettlement validates and evaluates the settlement form.
func CalculateBySettlement(settlement, foundationPressure float64) (Result, error) {
	if err := model.RequireMin("foundation_pressure", foundationPressure, 0.0); err != nil {
		return Result{}, err
	}
	return Result{Coefficient: CalcBySettlement(settlement, foundationPressure)}, nil
}

// CalculateByBearingCapacity validates and evaluates the bearing capacity
// correlation.
func CalculateByBearingCapacity(bearingCapacity float64) (Result, error) {
	if err := model.RequireMin("allowable_bearing_capacity", bearingCapacity, 0.0); err != nil {
		return Result{}, err
	}
	return Result{Coefficient: CalcByBearingCapacity(bearingCapacity)}, nil
}
