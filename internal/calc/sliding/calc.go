package sliding

import (
	"math"

	"Soilworks/internal/model"
)

// Input is the horizontal sliding stability request.
type Input struct {
	SoilProfile model.SoilProfile `json:"soil_profile"`
	Foundation  model.Foundation  `json:"foundation"`
	Loads       model.Loads       `json:"loads"`

	FoundationPressure float64 `json:"foundation_pressure"` // t/m²
}

// Result carries the sliding resistances and the safety checks per direction.
type Result struct {
	Rth  float64 `json:"rth"`   // base friction or adhesion resistance, t
	Ptv  float64 `json:"ptv"`   // total vertical force, t
	RpkX float64 `json:"rpk_x"` // characteristic passive resistance, x
	RpkY float64 `json:"rpk_y"` // characteristic passive resistance, y
	RptX float64 `json:"rpt_x"` // design passive resistance, x
	RptY float64 `json:"rpt_y"` // design passive resistance, y
	SumX float64 `json:"sum_x"` // total sliding resistance, x
	SumY float64 `json:"sum_y"` // total sliding resistance, y

	IsSafeX bool `json:"is_safe_x"`
	IsSafeY bool `json:"is_safe_y"`

	Ac   float64 `json:"ac"` // foundation area, m²
	VthX float64 `json:"vth_x"`
	VthY float64 `json:"vth_y"`
}

func validateInput(in *Input) error {
	if err := in.SoilProfile.Validate("thickness", "dry_unit_weight", "saturated_unit_weight",
		"c_prime", "cu", "phi_prime", "phi_u"); err != nil {
		return err
	}
	if err := in.Foundation.Validate("foundation_depth", "foundation_width", "foundation_length",
		"surface_friction_coefficient"); err != nil {
		return err
	}
	if err := in.Loads.Validate("horizontal_load_x", "horizontal_load_y"); err != nil {
		return err
	}
	return model.RequireMin("foundation_pressure", in.FoundationPressure, 0.0)
}

// soilParams picks cohesion, friction angle and unit weight at the founding
// depth. Below the water table it switches to undrained strength and the
// submerged unit weight.
func soilParams(profile *model.SoilProfile, df float64) (cohesion, phi, unitWeight float64) {
	layer := profile.LayerAt(df)
	if profile.GroundWaterLevel <= df {
		return layer.Cu, layer.PhiU, layer.SaturatedUnitWeight - 1.0
	}
	return layer.CPrime, layer.PhiPrime, layer.DryUnitWeight
}

// Calculate checks sliding stability in both plan directions: base resistance
// divided by 1.1, plus 30% of the passive wedge resistance divided by 1.4.
func Calculate(in Input) (Result, error) {
	if err := in.SoilProfile.CalcLayerDepths(); err != nil {
		return Result{}, err
	}
	if err := validateInput(&in); err != nil {
		return Result{}, err
	}

	df := in.Foundation.Depth
	width := in.Foundation.Width
	length := in.Foundation.Length
	vx := in.Loads.HorizontalX
	vy := in.Loads.HorizontalY

	ptv := in.FoundationPressure * width * length

	cohesion, phi, unitWeight := soilParams(&in.SoilProfile, df)
	kp := math.Pow(math.Tan((45.0+phi/2.0)*math.Pi/180.0), 2)

	var rth float64
	if in.SoilProfile.GroundWaterLevel > df {
		rth = ptv * in.Foundation.SurfaceFrictionCoefficient / 1.1
	} else {
		rth = length * width * cohesion / 1.1
	}

	rpkX := width * 0.5 * df * df * unitWeight * kp
	rpkY := length * 0.5 * df * df * unitWeight * kp
	rptX := rpkX / 1.4
	rptY := rpkY / 1.4

	sumX := rth + 0.3*rptX
	sumY := rth + 0.3*rptY

	return Result{
		Rth:     rth,
		Ptv:     ptv,
		RpkX:    rpkX,
		RpkY:    rpkY,
		RptX:    rptX,
		RptY:    rptY,
		SumX:    sumX,
		SumY:    sumY,
		IsSafeX: vx <= sumX,
		IsSafeY: vy <= sumY,
		Ac:      width * length,
		VthX:    vx,
		VthY:    vy,
	}, nil
}
