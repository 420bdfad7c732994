package soilclass

import (
	"Soilworks/internal/model"
)

// LayerData is one layer's contribution to a harmonic 30 m average.
type LayerData struct {
	Thickness float64 `json:"thickness"` // m
	Value     float64 `json:"value"`     // Cu, N60 or Vs
	HOverV    float64 `json:"h_over_value"`
}

// Result is a local soil class assessment: the harmonic average of a
// measurement over the top 30 m and the class it maps to.
type Result struct {
	Layers    []LayerData `json:"layers"`
	SumHOverV float64     `json:"sum_h_over_value"`
	Average30 float64     `json:"average_30"`
	SoilClass string      `json:"soil_class"`
}

// harmonic30 accumulates thickness/value pairs over the top 30 m, skipping
// non-positive measurements.
func harmonic30(thicknesses, values []float64) []LayerData {
	remaining := 30.0
	layers := make([]LayerData, 0, len(values))
	for i := range values {
		if remaining <= 0.0 {
			break
		}
		thickness := min(thicknesses[i], remaining)
		if thickness <= 0.0 || values[i] <= 0.0 {
			continue
		}
		layers = append(layers, LayerData{
			Thickness: thickness,
			Value:     values[i],
			HOverV:    thickness / values[i],
		})
		remaining -= thickness
	}
	return layers
}

func buildResult(layers []LayerData, profileDepth float64, classify func(avg float64) string) Result {
	sum := 0.0
	for _, l := range layers {
		sum += l.HOverV
	}

	avg := 0.0
	if sum > 0.0 {
		avg = min(profileDepth, 30.0) / sum
	}

	return Result{
		Layers:    layers,
		SumHOverV: sum,
		Average30: avg,
		SoilClass: classify(avg),
	}
}

// CalculateByCu classifies the site from the harmonic (Cu)_30 of the
// profile: ZC above 25 t/m², ZD down to 7, ZE below.
func CalculateByCu(profile model.SoilProfile) (Result, error) {
	if err := profile.Validate("thickness", "cu"); err != nil {
		return Result{}, err
	}
	if err := profile.CalcLayerDepths(); err != nil {
		return Result{}, err
	}

	thicknesses := make([]float64, len(profile.Layers))
	values := make([]float64, len(profile.Layers))
	for i := range profile.Layers {
		thicknesses[i] = profile.Layers[i].Thickness
		values[i] = profile.Layers[i].Cu
	}

	layers := harmonic30(thicknesses, values)
	depth := profile.Layers[len(profile.Layers)-1].Depth
	return buildResult(layers, depth, func(avg float64) string {
		switch {
		case avg > 25.0:
			return "ZC"
		case avg >= 7.0:
			return "ZD"
		default:
			return "ZE"
		}
	}), nil
}

// CalculateBySPT classifies the site from the harmonic (N60)_30 of the
// idealized SPT profile: ZC above 50 blows, ZD down to 15, ZE below.
func CalculateBySPT(spt model.SPT) (Result, error) {
	if err := spt.Validate("n", "depth"); err != nil {
		return Result{}, err
	}

	exp := spt.IdealizedExp("idealized")
	exp.ApplyEnergyCorrection(spt.EnergyCorrectionFactor)

	thicknesses := make([]float64, len(exp.Blows))
	values := make([]float64, len(exp.Blows))
	prev := 0.0
	for i := range exp.Blows {
		thicknesses[i] = exp.Blows[i].Depth - prev
		values[i] = float64(exp.Blows[i].N60.Int())
		prev = exp.Blows[i].Depth
	}

	layers := harmonic30(thicknesses, values)
	depth := exp.Blows[len(exp.Blows)-1].Depth
	return buildResult(layers, depth, func(avg float64) string {
		switch {
		case avg > 50.0:
			return "ZC"
		case avg >= 15.0:
			return "ZD"
		default:
			return "ZE"
		}
	}), nil
}

// CalculateByVs classifies the site from the harmonic (Vs)_30 of the
// idealized MASW profile, over the full ZA–ZE range.
func CalculateByVs(masw model.MASW) (Result, error) {
	if err := masw.Validate("thickness", "vs"); err != nil {
		return Result{}, err
	}
	if err := masw.CalcDepths(); err != nil {
		return Result{}, err
	}

	exp := masw.IdealizedExp("idealized")
	if err := exp.CalcDepths(); err != nil {
		return Result{}, err
	}
	if len(exp.Layers) == 0 {
		return Result{}, model.Missingf("masw idealization produced no layers")
	}

	thicknesses := make([]float64, len(exp.Layers))
	values := make([]float64, len(exp.Layers))
	for i := range exp.Layers {
		thicknesses[i] = exp.Layers[i].Thickness
		values[i] = exp.Layers[i].Vs
	}

	layers := harmonic30(thicknesses, values)
	depth := exp.Layers[len(exp.Layers)-1].Depth
	return buildResult(layers, depth, func(avg float64) string {
		switch {
		case avg > 1500.0:
			return "ZA"
		case avg >= 760.0:
			return "ZB"
		case avg >= 360.0:
			return "ZC"
		case avg >= 180.0:
			return "ZD"
		default:
			return "ZE"
		}
	}), nil
}
