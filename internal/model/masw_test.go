package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMASWCalcDepths(t *testing.T) {
	exp, err := NewMASWExp("test", []MASWLayer{
		{Thickness: 1.5, Vs: 1.0, Vp: 1.0},
		{Thickness: 2.5, Vs: 1.0, Vp: 1.0},
		{Thickness: 4.0, Vs: 1.0, Vp: 1.0},
	})
	require.NoError(t, err)

	assert.Equal(t, 1.5, exp.Layers[0].Depth)
	assert.Equal(t, 4.0, exp.Layers[1].Depth)
	assert.Equal(t, 8.0, exp.Layers[2].Depth)
}

func TestMASWCalcDepthsRejectsZeroThickness(t *testing.T) {
	_, err := NewMASWExp("test", []MASWLayer{
		{Thickness: 3.0, Vs: 1.0, Vp: 1.0},
		{Thickness: 0.0, Vs: 1.0, Vp: 1.0},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMASWLayerAt(t *testing.T) {
	exp, err := NewMASWExp("test", []MASWLayer{
		{Thickness: 2.0, Vs: 1.0, Vp: 1.0},
		{Thickness: 3.0, Vs: 2.0, Vp: 2.0},
		{Thickness: 5.0, Vs: 3.0, Vp: 3.0},
	})
	require.NoError(t, err)

	assert.Equal(t, 2.0, exp.LayerAt(4.0).Vs)

	// Depths below the sounding fall back to the deepest layer.
	assert.Equal(t, 3.0, exp.LayerAt(15.0).Vs)

	// A sounding without layers has nothing to return.
	empty := MASWExp{Name: "empty"}
	assert.Nil(t, empty.LayerAt(1.0))
}

func newMASW(t *testing.T) *MASW {
	t.Helper()

	exp1, err := NewMASWExp("exp1", []MASWLayer{
		{Thickness: 2.0, Vs: 180.0, Vp: 400.0},
		{Thickness: 3.0, Vs: 200.0, Vp: 450.0},
	})
	require.NoError(t, err)
	exp2, err := NewMASWExp("exp2", []MASWLayer{
		{Thickness: 1.5, Vs: 170.0, Vp: 390.0},
		{Thickness: 4.0, Vs: 190.0, Vp: 430.0},
	})
	require.NoError(t, err)
	exp3, err := NewMASWExp("exp3", []MASWLayer{
		{Thickness: 3.0, Vs: 160.0, Vp: 395.0},
		{Thickness: 3.0, Vs: 180.0, Vp: 420.0},
	})
	require.NoError(t, err)

	masw, err := NewMASW([]MASWExp{*exp1, *exp2, *exp3}, SelectionMin)
	require.NoError(t, err)
	return masw
}

func TestMASWIdealizedExp(t *testing.T) {
	masw := newMASW(t)

	// Union of layer boundaries: 1.5, 2.0, 3.0, 5.0, 5.5, 6.0.
	cases := []struct {
		method SelectionMethod
		vs, vp float64
	}{
		{SelectionMin, 160.0, 390.0},
		{SelectionAvg, 170.0, 395.0},
		{SelectionMax, 180.0, 400.0},
	}
	for _, tc := range cases {
		masw.IdealizationMethod = tc.method
		ideal := masw.IdealizedExp("ideal")

		require.Len(t, ideal.Layers, 6, "method %s", tc.method)
		assert.Equal(t, 1.5, ideal.Layers[0].Thickness)
		assert.Equal(t, tc.vs, ideal.Layers[0].Vs, "method %s", tc.method)
		assert.Equal(t, tc.vp, ideal.Layers[0].Vp, "method %s", tc.method)
		assert.Equal(t, 6.0, ideal.Layers[5].Depth)
	}
}
