package consolidation

import (
	"math"

	"Soilworks/internal/model"
)

// Input is a consolidation settlement request, shared by the compression
// index and the Mv methods.
type Input struct {
	SoilProfile model.SoilProfile `json:"soil_profile"`
	Foundation  model.Foundation  `json:"foundation"`

	FoundationPressure float64 `json:"foundation_pressure"` // t/m²
}

// Result lists the consolidation settlement contribution of every layer in cm.
type Result struct {
	SettlementPerLayer []float64 `json:"settlement_per_layer"` // cm
	TotalSettlement    float64   `json:"total_settlement"`     // cm
	QNet               float64   `json:"qnet"`                 // t/m²
}

// SingleLayerByCompressionIndex computes one layer's consolidation settlement
// in cm by logarithmic compression, branching on the overconsolidation state:
// recompression below the preconsolidation pressure, virgin compression above
// it, both when the stress increase crosses it.
func SingleLayerByCompressionIndex(h, cc, cr, e0, gp, g0, deltaStress float64) float64 {
	var settlement float64
	switch {
	case g0 >= gp:
		settlement = cc * (h / (1.0 + e0)) * math.Log10((deltaStress+g0)/g0)
	case deltaStress+g0 <= gp:
		settlement = cr * (h / (1.0 + e0)) * math.Log10((deltaStress+g0)/g0)
	default:
		settlement = cr*(h/(1.0+e0))*math.Log10(gp/g0) +
			cc*(h/(1.0+e0))*math.Log10((deltaStress+g0)/gp)
	}
	return max(settlement, 0.0) * 100.0
}

// SingleLayerByMv computes one layer's consolidation settlement in cm from
// the coefficient of volume compressibility.
func SingleLayerByMv(mv, h, deltaStress float64) float64 {
	return mv * h * deltaStress * 100.0
}

// CalculateByCompressionIndex computes the consolidation settlement per layer
// with the Cc/Cr method. Layers above the water table or above the founding
// depth do not consolidate.
func CalculateByCompressionIndex(in Input) (Result, error) {
	if err := in.SoilProfile.Validate(
		"thickness", "compression_index", "recompression_index",
		"void_ratio", "preconsolidation_pressure",
	); err != nil {
		return Result{}, err
	}
	return calcSettlement(&in, func(layer *model.SoilLayer, thickness, g0, deltaStress float64) float64 {
		return SingleLayerByCompressionIndex(
			thickness, layer.CompressionIndex, layer.RecompressionIndex,
			layer.VoidRatio, layer.PreconsolidationPressure, g0, deltaStress,
		)
	})
}

// CalculateByMv computes the consolidation settlement per layer with the Mv
// method.
func CalculateByMv(in Input) (Result, error) {
	if err := in.SoilProfile.Validate("thickness", "mv"); err != nil {
		return Result{}, err
	}
	return calcSettlement(&in, func(layer *model.SoilLayer, thickness, _, deltaStress float64) float64 {
		return SingleLayerByMv(layer.Mv, thickness, deltaStress)
	})
}

func calcSettlement(in *Input, layerSettlement func(layer *model.SoilLayer, thickness, g0, deltaStress float64) float64) (Result, error) {
	if err := in.Foundation.Validate("foundation_depth"); err != nil {
		return Result{}, err
	}
	if err := model.RequireMin("foundation_pressure", in.FoundationPressure, 0.0); err != nil {
		return Result{}, err
	}
	if err := in.SoilProfile.CalcLayerDepths(); err != nil {
		return Result{}, err
	}

	df := in.Foundation.Depth
	width := in.Foundation.Width
	length := in.Foundation.Length
	gwt := in.SoilProfile.GroundWaterLevel

	sigma, err := in.SoilProfile.CalcNormalStress(df)
	if err != nil {
		return Result{}, err
	}
	qNet := in.FoundationPressure - sigma

	settlements := make([]float64, 0, len(in.SoilProfile.Layers))
	total := 0.0
	for i := range in.SoilProfile.Layers {
		if in.SoilProfile.LayerIndex(gwt) > i || in.SoilProfile.LayerIndex(df) > i {
			settlements = append(settlements, 0.0)
			continue
		}

		layer := &in.SoilProfile.Layers[i]
		center, thickness := centerAndThickness(&in.SoilProfile, df, i)
		deltaStress := calcDeltaStress(qNet, width, length, center)
		g0, err := in.SoilProfile.CalcEffectiveStress(center)
		if err != nil {
			return Result{}, err
		}

		s := layerSettlement(layer, thickness, g0, deltaStress)
		settlements = append(settlements, s)
		total += s
	}

	return Result{
		SettlementPerLayer: settlements,
		TotalSettlement:    total,
		QNet:               qNet,
	}, nil
}

// centerAndThickness trims the consolidating part of a layer to below both
// the founding depth and the water table and returns its mid-depth and
// height.
func centerAndThickness(profile *model.SoilProfile, df float64, layerIndex int) (center, thickness float64) {
	gwt := profile.GroundWaterLevel
	layer := &profile.Layers[layerIndex]

	if profile.LayerIndex(gwt) < layerIndex {
		if layerIndex == profile.LayerIndex(df) {
			thickness = layer.Thickness - df
			return df + thickness/2.0, thickness
		}
		return layer.Center, layer.Thickness
	}

	maxDepth := max(df, gwt)
	thickness = layer.Thickness - maxDepth
	return maxDepth + thickness/2.0, thickness
}

// calcDeltaStress spreads the net pressure by the 2:1 approximation down to
// the layer center.
func calcDeltaStress(q, width, length, center float64) float64 {
	return q * width * length / ((width + center) * (length + center))
}
