package model

// Stress holds min/avg/max foundation pressures for one load case, t/m².
type Stress struct {
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

func (s *Stress) pick(severity SelectionMethod) float64 {
	if s == nil {
		return 0.0
	}
	switch severity {
	case SelectionMin:
		return s.Min
	case SelectionAvg:
		return s.Avg
	default:
		return s.Max
	}
}

// Loads groups the load effects acting on a foundation. Loads are in tonnes,
// moments in t·m, pressures in t/m².
type Loads struct {
	Service  *Stress `json:"service_load,omitempty"`
	Ultimate *Stress `json:"ultimate_load,omitempty"`
	Seismic  *Stress `json:"seismic_load,omitempty"`

	HorizontalX  float64 `json:"horizontal_load_x,omitempty"`
	HorizontalY  float64 `json:"horizontal_load_y,omitempty"`
	MomentX      float64 `json:"moment_x,omitempty"`
	MomentY      float64 `json:"moment_y,omitempty"`
	VerticalLoad float64 `json:"vertical_load,omitempty"`
}

// VerticalStress returns the foundation pressure in t/m² for the given load
// case and severity; zero when the case is not set.
func (ld *Loads) VerticalStress(loadCase LoadCase, severity SelectionMethod) float64 {
	switch loadCase {
	case ServiceLoad:
		return ld.Service.pick(severity)
	case UltimateLoad:
		return ld.Ultimate.pick(severity)
	default:
		return ld.Seismic.pick(severity)
	}
}

// CalcEccentricity derives the load eccentricities ex = Mx/V, ey = My/V.
// A zero vertical load yields (0, 0) instead of dividing by zero.
func (ld *Loads) CalcEccentricity() (ex, ey float64) {
	if ld.VerticalLoad == 0.0 {
		return 0.0, 0.0
	}
	return ld.MomentX / ld.VerticalLoad, ld.MomentY / ld.VerticalLoad
}

// Validate checks the named fields.
func (ld *Loads) Validate(fields ...string) error {
	for _, field := range fields {
		var err error
		switch field {
		case "horizontal_load_x":
			err = RequireMin("horizontal_load_x", ld.HorizontalX, 0.0)
		case "horizontal_load_y":
			err = RequireMin("horizontal_load_y", ld.HorizontalY, 0.0)
		case "moment_x":
			err = RequireMin("moment_x", ld.MomentX, 0.0)
		case "moment_y":
			err = RequireMin("moment_y", ld.MomentY, 0.0)
		case "vertical_load":
			err = RequireMin("vertical_load", ld.VerticalLoad, 0.0)
		case "service_load":
			if ld.Service == nil {
				err = Missingf("service load is not set")
			}
		case "ultimate_load":
			if ld.Ultimate == nil {
				err = Missingf("ultimate load is not set")
			}
		case "seismic_load":
			if ld.Seismic == nil {
				err = Missingf("seismic load is not set")
			}
		default:
			err = Invalidf("unknown loads field %q", field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
