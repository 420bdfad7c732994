package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcFrictionRatio(t *testing.T) {
	layer := CPTLayer{Depth: 1.0, ConeResistance: 10.0, SleeveFriction: 0.5}
	layer.CalcFrictionRatio()
	assert.InDelta(t, 5.0, layer.FrictionRatio, 1e-6)
}

func TestCalcFrictionRatioZeroConeResistance(t *testing.T) {
	layer := CPTLayer{Depth: 1.0, SleeveFriction: 0.5}
	layer.CalcFrictionRatio()
	assert.Zero(t, layer.FrictionRatio)
}

func newCPTExp() CPTExp {
	return CPTExp{Name: "test", Layers: []CPTLayer{
		{Depth: 1.0, ConeResistance: 10.0, SleeveFriction: 0.5},
		{Depth: 2.0, ConeResistance: 11.0, SleeveFriction: 0.6},
		{Depth: 3.0, ConeResistance: 12.0, SleeveFriction: 0.7},
	}}
}

func TestCPTLayerAt(t *testing.T) {
	exp := newCPTExp()

	assert.Equal(t, 2.0, exp.LayerAt(2.0).Depth)
	assert.Equal(t, 3.0, exp.LayerAt(2.5).Depth)
	assert.Equal(t, 3.0, exp.LayerAt(5.0).Depth)
}

func TestCPTIdealizedExp(t *testing.T) {
	cpt := CPT{
		Exps: []CPTExp{
			{Name: "exp1", Layers: []CPTLayer{
				{Depth: 1.5, ConeResistance: 160.0, SleeveFriction: 390.0},
				{Depth: 2.0, ConeResistance: 170.0, SleeveFriction: 395.0},
				{Depth: 3.0, ConeResistance: 180.0, SleeveFriction: 400.0},
			}},
			{Name: "exp2", Layers: []CPTLayer{
				{Depth: 1.5, ConeResistance: 150.0, SleeveFriction: 380.0},
				{Depth: 3.0, ConeResistance: 160.0, SleeveFriction: 390.0},
				{Depth: 5.5, ConeResistance: 170.0, SleeveFriction: 395.0},
				{Depth: 6.5, ConeResistance: 180.0, SleeveFriction: 400.0},
			}},
		},
		IdealizationMethod: SelectionMin,
	}

	// Union of depths: 1.5, 2.0, 3.0, 5.5, 6.5.
	cases := []struct {
		method SelectionMethod
		qc, fs float64
	}{
		{SelectionMin, 150.0, 380.0},
		{SelectionAvg, 155.0, 385.0},
		{SelectionMax, 160.0, 390.0},
	}
	for _, tc := range cases {
		cpt.IdealizationMethod = tc.method
		ideal := cpt.IdealizedExp("ideal")

		require.Len(t, ideal.Layers, 5, "method %s", tc.method)
		assert.InDelta(t, 1.5, ideal.Layers[0].Depth, 1e-6)
		assert.InDelta(t, tc.qc, ideal.Layers[0].ConeResistance, 1e-6, "method %s", tc.method)
		assert.InDelta(t, tc.fs, ideal.Layers[0].SleeveFriction, 1e-6, "method %s", tc.method)
		assert.InDelta(t, 6.5, ideal.Layers[4].Depth, 1e-6)
	}
}

func TestCPTValidateRequiresExperiments(t *testing.T) {
	var cpt CPT
	assert.ErrorIs(t, cpt.Validate("depth"), ErrMissingData)
}
