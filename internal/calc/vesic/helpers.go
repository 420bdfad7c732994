package vesic

import (
	"math"

	"Soilworks/internal/model"
)

// equivalentUnitWeights averages the dry and saturated unit weights over the
// profile down to depthLimit, thickness-weighted and rounded to 3 decimals.
func equivalentUnitWeights(profile *model.SoilProfile, depthLimit float64) (gammaDry, gammaSaturated float64) {
	prevDepth := 0.0
	drySum := 0.0
	saturatedSum := 0.0

	idx := profile.LayerIndex(depthLimit)
	for i := 0; i <= idx; i++ {
		layer := &profile.Layers[i]
		thickness := layer.Thickness
		if layer.Depth >= depthLimit {
			thickness = depthLimit - prevDepth
		}
		drySum += layer.DryUnitWeight * thickness
		saturatedSum += layer.SaturatedUnitWeight * thickness
		prevDepth = layer.Depth
	}

	totalDepth := min(depthLimit, profile.Layers[len(profile.Layers)-1].Depth)
	gammaDry = math.Round(drySum/totalDepth*1000.0) / 1000.0
	gammaSaturated = math.Round(saturatedSum/totalDepth*1000.0) / 1000.0
	return gammaDry, gammaSaturated
}

// effectiveSurcharge computes the effective overburden pressure at founding
// depth in t/m². Long-term analyses assume the water table drops below the
// influence zone.
func effectiveSurcharge(profile *model.SoilProfile, f *model.Foundation, term model.AnalysisTerm) (float64, error) {
	df := f.Depth
	width := f.EffectiveWidth

	gammaDry, gammaSaturated := equivalentUnitWeights(profile, df)
	gammaEffective := gammaSaturated - model.GammaWater

	gwt := profile.GroundWaterLevel
	if term != model.TermShort {
		gwt = df + width
	}

	if gwt <= df {
		return gammaDry*gwt + gammaEffective*(df-gwt), nil
	}
	return gammaDry * df, nil
}

// effectiveUnitWeight computes the effective unit weight over the failure
// zone between Df and Df + B, interpolating when the water table sits inside
// it.
func effectiveUnitWeight(profile *model.SoilProfile, f *model.Foundation, term model.AnalysisTerm) float64 {
	df := f.Depth
	width := f.EffectiveWidth

	gammaDry, gammaSaturated := equivalentUnitWeights(profile, df)
	gammaEffective := gammaSaturated - model.GammaWater

	gwt := profile.GroundWaterLevel
	if term != model.TermShort {
		gwt = df + width
	}

	switch {
	case gwt <= df:
		return gammaEffective
	case gwt < df+width:
		d := df + width - gwt
		return gammaEffective + d*(gammaDry-gammaEffective)/width
	default:
		return gammaDry
	}
}

// soilParams picks the strength parameters of the layer at the founding
// depth for the analysis term, plus the effective unit weight of the failure
// zone.
func soilParams(profile *model.SoilProfile, f *model.Foundation, term model.AnalysisTerm) (SoilParams, error) {
	layer := profile.LayerAt(f.Depth)

	var phi, cohesion float64
	if term == model.TermShort {
		phi, cohesion = layer.PhiU, layer.Cu
	} else {
		phi, cohesion = layer.PhiPrime, layer.CPrime
	}

	return SoilParams{
		FrictionAngle: phi,
		Cohesion:      cohesion,
		UnitWeight:    effectiveUnitWeight(profile, f, term),
	}, nil
}
