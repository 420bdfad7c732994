package effdepth

import (
	"math"

	"Soilworks/internal/model"
)

// Input is the effective depth request: the depth below which the stress
// increment from the footing drops under 10% of the effective overburden.
type Input struct {
	SoilProfile model.SoilProfile `json:"soil_profile"`
	Foundation  model.Foundation  `json:"foundation"`

	FoundationPressure float64 `json:"foundation_pressure"` // t/m²
}

// Result holds the effective depth measured from the ground surface.
type Result struct {
	EffectiveDepth float64 `json:"effective_depth"` // m
}

func validateInput(in *Input) error {
	if err := in.SoilProfile.Validate("thickness", "dry_unit_weight", "saturated_unit_weight"); err != nil {
		return err
	}
	if err := in.Foundation.Validate("foundation_depth", "foundation_width", "foundation_length"); err != nil {
		return err
	}
	return model.RequireMin("foundation_pressure", in.FoundationPressure, 0.0)
}

// difference is Δσ at depth z under a 2:1 stress spread minus 10% of the
// effective overburden there. Its root is the effective depth. The profile
// was probed during validation, so the stress error is already ruled out.
func difference(z, force, width, df, length float64, profile *model.SoilProfile) float64 {
	deltaSigma := force / ((width + z - df) * (length + z - df))
	effective, _ := profile.CalcEffectiveStress(z)
	return deltaSigma - 0.1*effective
}

// findEffectiveDepth locates the root of difference by bisection, starting
// between the footing base and 1.5 widths below it. When both ends share a
// sign the lower bound is pushed to 100 widths.
func findEffectiveDepth(force, width, df, length float64, profile *model.SoilProfile) float64 {
	lower := df
	upper := df + 1.5*width
	middle := (lower + upper) / 2.0

	if difference(lower, force, width, df, length, profile)*difference(upper, force, width, df, length, profile) > 0.0 {
		upper = 100.0 * width
	}

	for n := 0; math.Abs(difference(middle, force, width, df, length, profile)) > 0.01 && n < 100; n++ {
		if lower == upper && upper == middle && n > 10 {
			return 0.0
		}
		if difference(middle, force, width, df, length, profile) > 0.0 {
			lower = middle
		} else {
			upper = middle
		}
		middle = (lower + upper) / 2.0
	}

	return middle
}

// Calculate finds the depth where the net foundation stress increment equals
// 10% of the effective overburden stress.
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

	last := &in.SoilProfile.Layers[len(in.SoilProfile.Layers)-1]
	if _, err := in.SoilProfile.CalcEffectiveStress(last.Depth); err != nil {
		return Result{}, err
	}

	sigma, err := in.SoilProfile.CalcNormalStress(df)
	if err != nil {
		return Result{}, err
	}
	qNet := in.FoundationPressure - sigma
	force := qNet * width * length

	return Result{
		EffectiveDepth: findEffectiveDepth(force, width, df, length, &in.SoilProfile),
	}, nil
}
