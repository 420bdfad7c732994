package swelling

import (
	"Soilworks/internal/model"
)

// Input is the swelling potential request, evaluated per layer with the
// Kayabalı & Yaldız (2014) correlation.
type Input struct {
	SoilProfile model.SoilProfile `json:"soil_profile"`
	Foundation  model.Foundation  `json:"foundation"`

	FoundationPressure float64 `json:"foundation_pressure"` // t/m²
}

// LayerResult compares a layer's swelling pressure against the confining
// stresses at its center.
type LayerResult struct {
	LayerCenter      float64 `json:"layer_center"`      // m
	EffectiveStress  float64 `json:"effective_stress"`  // t/m²
	DeltaStress      float64 `json:"delta_stress"`      // t/m²
	SwellingPressure float64 `json:"swelling_pressure"` // t/m²
	IsSafe           bool    `json:"is_safe"`
}

// Result holds the per-layer checks and the net foundation pressure.
type Result struct {
	Layers                []LayerResult `json:"layers"`
	NetFoundationPressure float64       `json:"net_foundation_pressure"` // t/m²
}

func validateInput(in *Input) error {
	if err := in.SoilProfile.Validate("thickness", "dry_unit_weight", "saturated_unit_weight",
		"water_content", "liquid_limit", "plastic_limit"); err != nil {
		return err
	}
	if err := in.Foundation.Validate("foundation_depth", "foundation_width", "foundation_length"); err != nil {
		return err
	}
	return model.RequireMin("foundation_pressure", in.FoundationPressure, 0.0)
}

// SwellingPressure is the Kayabalı & Yaldız correlation from index
// properties, in t/m².
func SwellingPressure(waterContent, dryUnitWeight, liquidLimit, plasticLimit float64) float64 {
	return -3.08*waterContent + 102.5*dryUnitWeight + 0.635*liquidLimit + 4.24*plasticLimit - 220.8
}

// Calculate checks every layer: the swelling pressure must not exceed the
// effective overburden plus the stress increment from the footing. Layers
// whose center lies above the founding depth carry no confining stress from
// the footing and are checked against zero.
func Calculate(in Input) (Result, error) {
	if err := validateInput(&in); err != nil {
		return Result{}, err
	}
	if err := in.SoilProfile.CalcLayerDepths(); err != nil {
		return Result{}, err
	}

	df := in.Foundation.Depth
	width := in.Foundation.Width
	length := in.Foundation.Length

	sigma, err := in.SoilProfile.CalcNormalStress(df)
	if err != nil {
		return Result{}, err
	}
	qNet := in.FoundationPressure - sigma
	verticalLoad := qNet * width * length

	layers := make([]LayerResult, 0, len(in.SoilProfile.Layers))
	for i := range in.SoilProfile.Layers {
		layer := &in.SoilProfile.Layers[i]
		z := layer.Center

		effective := 0.0
		delta := 0.0
		if z >= df {
			effective, err = in.SoilProfile.CalcEffectiveStress(z)
			if err != nil {
				return Result{}, err
			}
			delta = verticalLoad / ((width + z - df) * (length + z - df))
		}

		pressure := SwellingPressure(layer.WaterContent, layer.DryUnitWeight, layer.LiquidLimit, layer.PlasticLimit)

		layers = append(layers, LayerResult{
			LayerCenter:      z,
			EffectiveStress:  effective,
			DeltaStress:      delta,
			SwellingPressure: pressure,
			IsSafe:           pressure <= effective+delta,
		})
	}

	return Result{Layers: layers, NetFoundationPressure: qNet}, nil
}
