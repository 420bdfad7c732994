package tezcan

import (
	"Soilworks/internal/model"
)

// Input is the Tezcan & Ozdemir (2007) shear wave velocity bearing capacity
// request.
type Input struct {
	SoilProfile model.SoilProfile `json:"soil_profile"`
	MASW        model.MASW        `json:"masw"`
	Foundation  model.Foundation  `json:"foundation"`

	FoundationPressure float64 `json:"foundation_pressure"` // t/m²
}

// Result is the allowable bearing capacity derived from Vs.
type Result struct {
	Vs                       float64 `json:"vs"`          // m/s
	UnitWeight               float64 `json:"unit_weight"` // t/m³
	Qmax                     float64 `json:"qmax"`        // t/m²
	AllowableBearingCapacity float64 `json:"allowable_bearing_capacity"`
	SafetyFactor             float64 `json:"safety_factor"`
	IsSafe                   bool    `json:"is_safe"`
}

func validateInput(in *Input) error {
	if err := in.MASW.Validate("thickness", "vs"); err != nil {
		return err
	}
	if err := in.SoilProfile.Validate("thickness", "dry_unit_weight", "saturated_unit_weight"); err != nil {
		return err
	}
	return in.Foundation.Validate("foundation_depth")
}

// unitWeight picks the unit weight of the layer at the founding depth, dry
// above the water table and saturated at or below it.
func unitWeight(df float64, profile *model.SoilProfile) float64 {
	layer := profile.LayerAt(df)
	if profile.GroundWaterLevel <= df {
		return layer.SaturatedUnitWeight
	}
	return layer.DryUnitWeight
}

// Calculate evaluates the Tezcan & Ozdemir empirical bearing capacity from
// the idealized MASW profile. The empirical safety factor depends on the Vs
// band: 4.0 for soft soils, linearly decreasing for stiff soils and rock,
// 1.4 for hard rock above 4000 m/s.
func Calculate(in Input) (Result, error) {
	if err := in.SoilProfile.CalcLayerDepths(); err != nil {
		return Result{}, err
	}
	if err := in.MASW.CalcDepths(); err != nil {
		return Result{}, err
	}
	if err := validateInput(&in); err != nil {
		return Result{}, err
	}

	df := in.Foundation.Depth
	exp := in.MASW.IdealizedExp("idealized")
	vs := exp.LayerAt(df).Vs
	gamma := unitWeight(df, &in.SoilProfile)

	var safetyFactor, qAllow float64
	switch {
	case vs < 750.0:
		safetyFactor = 4.0
		qAllow = 0.025 * gamma * vs
	case vs < 4000.0:
		safetyFactor = 4.6 - vs*8.0e-4
		qAllow = 0.1 * gamma * vs / safetyFactor
	default:
		safetyFactor = 1.4
		qAllow = 0.071 * gamma * vs
	}

	return Result{
		Vs:                       vs,
		UnitWeight:               gamma,
		Qmax:                     in.FoundationPressure,
		AllowableBearingCapacity: qAllow,
		SafetyFactor:             safetyFactor,
		IsSafe:                   qAllow >= in.FoundationPressure,
	}, nil
}
