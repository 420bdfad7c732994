package vesic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Soilworks/internal/model"
)

func TestCalcFactors(t *testing.T) {
	tests := []struct {
		name       string
		phi        float64
		nc, nq, ng float64
	}{
		{"pure cohesive", 0.0, 5.14, 1.0, 0.0},
		{"soft granular", 10.0, 8.345, 2.471, 0.519},
		{"dense sand", 30.0, 30.14, 18.401, 20.093},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcFactors(tt.phi)
			assert.InDelta(t, tt.nc, got.Nc, 1e-3)
			assert.InDelta(t, tt.nq, got.Nq, 1e-3)
			assert.InDelta(t, tt.ng, got.Ng, 1e-3)
		})
	}
}

func TestCalcShapeFactors(t *testing.T) {
	f := model.Foundation{Depth: 1.0, Width: 1.0, Length: 1.5}

	got := CalcShapeFactors(&f, Factors{Nc: 5.14, Nq: 1.0}, 0.0)
	assert.InDelta(t, 0.133, got.Sc, 1e-3)
	assert.InDelta(t, 1.0, got.Sq, 1e-3)
	assert.InDelta(t, 0.733, got.Sg, 1e-3)

	got = CalcShapeFactors(&f, Factors{Nc: 30.140, Nq: 18.401, Ng: 20.093}, 30.0)
	assert.InDelta(t, 1.407, got.Sc, 1e-3)
	assert.InDelta(t, 1.333, got.Sq, 1e-3)
	assert.InDelta(t, 0.733, got.Sg, 1e-3)
}

func TestCalcInclinationFactors(t *testing.T) {
	f := model.Foundation{
		Depth: 1.0, Width: 1.0, Length: 1.5,
		EffectiveWidth: 1.0, EffectiveLength: 1.5,
	}
	factors := Factors{Nc: 1.0, Nq: 18.401, Ng: 1.0}

	tests := []struct {
		name       string
		phi, c     float64
		hx, hy     float64
		ic, iq, ig float64
	}{
		{"vertical only cohesive", 0.0, 10.0, 0.0, 0.0, 1.0, 1.0, 1.0},
		{"vertical only frictional", 30.0, 0.0, 0.0, 0.0, 1.0, 1.0, 1.0},
		{"horizontal along width", 30.0, 10.0, 10.0, 0.0, 0.924, 0.928, 0.886},
		{"horizontal along length", 30.0, 10.0, 0.0, 10.0, 0.933, 0.937, 0.894},
		{"horizontal both ways", 30.0, 10.0, 10.0, 10.0, 0.805, 0.817, 0.742},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loads := model.Loads{VerticalLoad: 200.0, HorizontalX: tt.hx, HorizontalY: tt.hy}
			got := CalcInclinationFactors(tt.phi, tt.c, factors, &f, &loads)
			assert.InDelta(t, tt.ic, got.Ic, 1e-3)
			assert.InDelta(t, tt.iq, got.Iq, 1e-3)
			assert.InDelta(t, tt.ig, got.Ig, 1e-3)
		})
	}
}

func TestCalcDepthFactors(t *testing.T) {
	tests := []struct {
		name       string
		depth, phi float64
		dc, dq     float64
	}{
		{"shallow cohesive", 1.0, 0.0, 0.4, 1.0},
		{"shallow frictional", 1.0, 30.0, 1.4, 1.289},
		{"deep cohesive", 2.0, 0.0, 0.013957, 1.0},
		{"deep frictional", 2.0, 30.0, 1.013957, 1.010073},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := model.Foundation{Depth: tt.depth, Width: 1.0}
			got := CalcDepthFactors(&f, tt.phi)
			assert.InDelta(t, tt.dc, got.Dc, 1e-3)
			assert.InDelta(t, tt.dq, got.Dq, 1e-3)
			assert.InDelta(t, 1.0, got.Dg, 1e-3)
		})
	}
}

func TestCalcBaseFactors(t *testing.T) {
	tests := []struct {
		name        string
		phi         float64
		slope, tilt float64
		bc, bq      float64
	}{
		{"level", 0.0, 0.0, 0.0, 0.0, 1.0},
		{"level frictional", 30.0, 0.0, 0.0, 1.0, 1.0},
		{"slope only", 0.0, 10.0, 0.0, 0.034, 1.0},
		{"tilt only cohesive", 0.0, 0.0, 10.0, 0.0, 1.0},
		{"slope and tilt cohesive", 0.0, 10.0, 10.0, 0.034, 1.0},
		{"slope and tilt frictional", 30.0, 10.0, 10.0, 0.882, 0.809},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := model.Foundation{
				Depth: 1.0, Width: 2.0, Length: 2.0,
				SlopeAngle: tt.slope, BaseTiltAngle: tt.tilt,
			}
			got := CalcBaseFactors(tt.phi, &f)
			assert.InDelta(t, tt.bc, got.Bc, 1e-3)
			assert.InDelta(t, tt.bq, got.Bq, 1e-3)
			assert.InDelta(t, tt.bq, got.Bg, 1e-3)
		})
	}
}

func TestCalcGroundFactors(t *testing.T) {
	tests := []struct {
		name       string
		phi, slope float64
		iq         float64
		gc, gq     float64
	}{
		{"level cohesive", 0.0, 0.0, 1.0, 0.0, 1.0},
		{"level frictional", 30.0, 0.0, 0.861, 0.814, 1.0},
		{"sloped cohesive", 0.0, 5.0, 1.0, 0.017, 0.833},
		{"sloped frictional", 30.0, 5.0, 0.861, 0.814, 0.833},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcGroundFactors(tt.iq, tt.slope, tt.phi)
			assert.InDelta(t, tt.gc, got.Gc, 1e-3)
			assert.InDelta(t, tt.gq, got.Gq, 1e-3)
			assert.InDelta(t, tt.gq, got.Gg, 1e-3)
		})
	}
}

func TestEquivalentUnitWeights(t *testing.T) {
	profile, err := model.NewSoilProfile([]model.SoilLayer{
		{Thickness: 2.0, DryUnitWeight: 1.6, SaturatedUnitWeight: 1.9},
		{Thickness: 3.0, DryUnitWeight: 1.8, SaturatedUnitWeight: 2.0},
	}, 1.0)
	require.NoError(t, err)

	dry, saturated := equivalentUnitWeights(profile, 4.0)
	// (1.6*2 + 1.8*2) / 4 and (1.9*2 + 2.0*2) / 4
	assert.InDelta(t, 1.7, dry, 1e-6)
	assert.InDelta(t, 1.95, saturated, 1e-6)

	dry, saturated = equivalentUnitWeights(profile, 1.0)
	assert.InDelta(t, 1.6, dry, 1e-6)
	assert.InDelta(t, 1.9, saturated, 1e-6)
}

func TestEffectiveSurcharge(t *testing.T) {
	profile, err := model.NewSoilProfile([]model.SoilLayer{
		{Thickness: 5.0, DryUnitWeight: 1.8, SaturatedUnitWeight: 2.0},
	}, 1.0)
	require.NoError(t, err)
	f := model.Foundation{Depth: 2.0, Width: 1.5, Length: 1.5, EffectiveWidth: 1.5, EffectiveLength: 1.5}

	// Short term: gwt = 1.0 above founding depth 2.0.
	q, err := effectiveSurcharge(profile, &f, model.TermShort)
	require.NoError(t, err)
	assert.InDelta(t, 1.8*1.0+(2.0-0.981)*1.0, q, 1e-6)

	// Long term assumes the water table below Df + B.
	q, err = effectiveSurcharge(profile, &f, model.TermLong)
	require.NoError(t, err)
	assert.InDelta(t, 1.8*2.0, q, 1e-6)
}

func TestEffectiveUnitWeight(t *testing.T) {
	profile, err := model.NewSoilProfile([]model.SoilLayer{
		{Thickness: 10.0, DryUnitWeight: 1.8, SaturatedUnitWeight: 2.0},
	}, 0.0)
	require.NoError(t, err)
	f := model.Foundation{Depth: 2.0, Width: 1.5, Length: 1.5, EffectiveWidth: 1.5, EffectiveLength: 1.5}

	// Water at the surface: fully submerged failure zone.
	got := effectiveUnitWeight(profile, &f, model.TermShort)
	assert.InDelta(t, 2.0-0.981, got, 1e-6)

	// Water inside the failure zone.
	profile.GroundWaterLevel = 3.0
	got = effectiveUnitWeight(profile, &f, model.TermShort)
	gammaEff := 2.0 - 0.981
	d := 2.0 + 1.5 - 3.0
	assert.InDelta(t, gammaEff+d*(1.8-gammaEff)/1.5, got, 1e-6)

	// Water below the failure zone.
	profile.GroundWaterLevel = 6.0
	got = effectiveUnitWeight(profile, &f, model.TermShort)
	assert.InDelta(t, 1.8, got, 1e-6)
}

func TestCalculate(t *testing.T) {
	newInput := func() Input {
		profile, err := model.NewSoilProfile([]model.SoilLayer{
			{
				Thickness:           10.0,
				DryUnitWeight:       1.8,
				SaturatedUnitWeight: 2.0,
				Cu:                  5.0,
				PhiU:                0.0,
				CPrime:              0.5,
				PhiPrime:            30.0,
			},
		}, 5.0)
		require.NoError(t, err)
		return Input{
			SoilProfile:        *profile,
			Foundation:         model.Foundation{Depth: 1.5, Width: 2.0, Length: 3.0},
			Loads:              model.Loads{VerticalLoad: 100.0},
			FoundationPressure: 20.0,
			FactorOfSafety:     3.0,
			Term:               model.TermLong,
		}
	}

	t.Run("long term frictional", func(t *testing.T) {
		res, err := Calculate(newInput())
		require.NoError(t, err)

		assert.InDelta(t, 30.14, res.Factors.Nc, 1e-3)
		assert.InDelta(t, 18.401, res.Factors.Nq, 1e-3)
		assert.Greater(t, res.UltimateBearingCapacity, 0.0)
		assert.InDelta(t, res.UltimateBearingCapacity/3.0, res.AllowableBearingCapacity, 1e-9)
		assert.Equal(t, 20.0, res.Qmax)
	})

	t.Run("short term cohesive", func(t *testing.T) {
		in := newInput()
		in.Term = model.TermShort
		res, err := Calculate(in)
		require.NoError(t, err)

		assert.InDelta(t, 5.14, res.Factors.Nc, 1e-3)
		assert.Zero(t, res.SoilParams.FrictionAngle)
		assert.InDelta(t, 5.0, res.SoilParams.Cohesion, 1e-9)
		assert.Greater(t, res.UltimateBearingCapacity, 0.0)
	})

	t.Run("capacity grows with friction angle", func(t *testing.T) {
		in := newInput()
		lo, err := Calculate(in)
		require.NoError(t, err)

		in = newInput()
		in.SoilProfile.Layers[0].PhiPrime = 35.0
		hi, err := Calculate(in)
		require.NoError(t, err)

		assert.Greater(t, hi.UltimateBearingCapacity, lo.UltimateBearingCapacity)
	})

	t.Run("rejects zero strength", func(t *testing.T) {
		in := newInput()
		in.SoilProfile.Layers[0].CPrime = 0.0
		in.SoilProfile.Layers[0].PhiPrime = 0.0
		_, err := Calculate(in)
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("rejects profile shallower than footing", func(t *testing.T) {
		in := newInput()
		in.Foundation.Depth = 25.0
		_, err := Calculate(in)
		require.ErrorIs(t, err, model.ErrMissingData)
	})

	t.Run("rejects low factor of safety", func(t *testing.T) {
		in := newInput()
		in.FactorOfSafety = 0.5
		_, err := Calculate(in)
		require.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
