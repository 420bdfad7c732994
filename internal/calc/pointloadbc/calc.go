package pointloadbc

import (
	"Soilworks/internal/model"
)

// MPa to t/m² conversion factor.
const mpaToTon = 101.97162

// Input is the point load test bearing capacity request.
type Input struct {
	PointLoadTest model.PointLoadTest `json:"point_load_test"`
	Foundation    model.Foundation    `json:"foundation"`

	FoundationPressure float64 `json:"foundation_pressure"` // t/m²
	SafetyFactor       float64 `json:"safety_factor"`
}

// Result is the rock bearing capacity derived from the point load index.
type Result struct {
	Is50 float64 `json:"is50"` // MPa
	UCS  float64 `json:"ucs"`  // MPa·101.97162 = t/m²
	C    float64 `json:"c"`    // generalized size factor
	D    float64 `json:"d"`    // mm
	Df   float64 `json:"df"`   // m

	AllowableBearingCapacity float64 `json:"allowable_bearing_capacity"` // t/m²
	Qmax                     float64 `json:"qmax"`                       // t/m²
	SafetyFactor             float64 `json:"safety_factor"`
	IsSafe                   bool    `json:"is_safe"`
}

func validateInput(in *Input) error {
	if err := in.PointLoadTest.Validate("is50", "d"); err != nil {
		return err
	}
	if err := in.Foundation.Validate("foundation_depth"); err != nil {
		return err
	}
	if err := model.RequireMin("foundation_pressure", in.FoundationPressure, 0.0); err != nil {
		return err
	}
	return model.RequireMin("safety_factor", in.SafetyFactor, 1.0)
}

// GeneralizedCValue interpolates the size correction factor C from the
// equivalent core diameter in mm, per the ASTM / ISRM chart, clamped at the
// chart ends.
func GeneralizedCValue(d float64) float64 {
	diameters := []float64{20.0, 30.0, 40.0, 50.0, 54.0, 60.0}
	cValues := []float64{17.5, 19.0, 21.0, 23.0, 24.0, 24.5}
	return model.Interp1D(diameters, cValues, d)
}

// Calculate derives the allowable bearing capacity of rock at the founding
// depth from the idealized point load profile: UCS = Is50 · C, converted to
// t/m² and reduced by the safety factor.
func Calculate(in Input) (Result, error) {
	if err := validateInput(&in); err != nil {
		return Result{}, err
	}

	df := in.Foundation.Depth
	exp := in.PointLoadTest.IdealizedExp("idealized")
	sample := exp.SampleAt(df)

	c := GeneralizedCValue(sample.D)
	ucs := sample.Is50 * c * mpaToTon
	qAllow := ucs / in.SafetyFactor

	return Result{
		Is50: sample.Is50,
		UCS:  ucs,
		C:    c,
		D:    sample.D,
		Df:   df,

		AllowableBearingCapacity: qAllow,
		Qmax:                     in.FoundationPressure,
		SafetyFactor:             in.SafetyFactor,
		IsSafe:                   qAllow >= in.FoundationPressure,
	}, nil
}
