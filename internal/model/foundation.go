package model

// Foundation is the footing geometry. By convention Length >= Width; the
// effective dimensions account for load eccentricity and are filled in by
// CalcEffectiveLengths before any inclined-load check.
type Foundation struct {
	Depth  float64 `json:"foundation_depth"`          // m
	Length float64 `json:"foundation_length"`         // m
	Width  float64 `json:"foundation_width"`          // m
	Area   float64 `json:"foundation_area,omitempty"` // m²

	BaseTiltAngle float64 `json:"base_tilt_angle,omitempty"` // deg
	SlopeAngle    float64 `json:"slope_angle,omitempty"`     // deg

	EffectiveWidth  float64 `json:"effective_width,omitempty"`  // m
	EffectiveLength float64 `json:"effective_length,omitempty"` // m

	SurfaceFrictionCoefficient float64 `json:"surface_friction_coefficient,omitempty"`
}

// CalcEffectiveLengths reduces the footing dimensions for the load
// eccentricities ex, ey. The smaller reduced dimension becomes the effective
// width, clamped at zero for fully eccentric loads.
func (f *Foundation) CalcEffectiveLengths(ex, ey float64) {
	b := f.Width - 2.0*ex
	l := f.Length - 2.0*ey

	f.EffectiveWidth = max(min(b, l), 0.0)
	f.EffectiveLength = max(max(b, l), 0.0)
}

// Validate checks the named fields against their bounds.
func (f *Foundation) Validate(fields ...string) error {
	for _, field := range fields {
		var err error
		switch field {
		case "foundation_depth":
			err = RequireMin("foundation_depth", f.Depth, 0.0)
		case "foundation_length":
			err = RequireMin("foundation_length", f.Length, 0.0001)
		case "foundation_width":
			err = RequireRange("foundation_width", f.Width, 0.001, f.Length)
		case "foundation_area":
			err = RequireMin("foundation_area", f.Area, 0.001)
		case "base_tilt_angle":
			err = RequireRange("base_tilt_angle", f.BaseTiltAngle, 0.0, 45.0)
		case "slope_angle":
			err = RequireRange("slope_angle", f.SlopeAngle, 0.0, 90.0)
		case "effective_width":
			err = RequireMin("effective_width", f.EffectiveWidth, 0.0)
		case "effective_length":
			err = RequireMin("effective_length", f.EffectiveLength, 0.0)
		case "surface_friction_coefficient":
			err = RequireRange("surface_friction_coefficient", f.SurfaceFrictionCoefficient, 0.0, 1.0)
		default:
			err = Invalidf("unknown foundation field %q", field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
