package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPointLoadTest() PointLoadTest {
	return PointLoadTest{
		Exps: []PointLoadExp{
			{BoreholeID: "bh-1", Samples: []PointLoadSample{
				{Depth: 1.5, Is50: 2.67, D: 50.0},
				{Depth: 3.0, Is50: 2.38, D: 50.0},
			}},
			{BoreholeID: "bh-2", Samples: []PointLoadSample{
				{Depth: 1.5, Is50: 2.66, D: 50.0},
				{Depth: 3.0, Is50: 2.96, D: 50.0},
			}},
			{BoreholeID: "bh-3", Samples: []PointLoadSample{
				{Depth: 3.0, Is50: 2.53, D: 50.0},
				{Depth: 4.5, Is50: 2.84, D: 50.0},
			}},
		},
		IdealizationMethod: SelectionMin,
	}
}

func TestSampleAt(t *testing.T) {
	exp := newPointLoadTest().Exps[0]

	s := exp.SampleAt(1.5)
	assert.Equal(t, 1.5, s.Depth)
	assert.Equal(t, 2.67, s.Is50)

	// Between samples the next deeper one governs.
	s = exp.SampleAt(2.0)
	assert.Equal(t, 3.0, s.Depth)
	assert.Equal(t, 2.38, s.Is50)

	// Below the borehole the deepest sample is used.
	s = exp.SampleAt(4.0)
	assert.Equal(t, 3.0, s.Depth)
	assert.Equal(t, 2.38, s.Is50)
}

func TestPointLoadIdealizedExpMin(t *testing.T) {
	plt := newPointLoadTest()
	ideal := plt.IdealizedExp("ideal_min")

	// Union of depths: 1.5, 3.0, 4.5.
	require.Len(t, ideal.Samples, 3)

	assert.InDelta(t, 1.5, ideal.Samples[0].Depth, 1e-6)
	assert.InDelta(t, 2.66, ideal.Samples[0].Is50, 1e-6)
	assert.InDelta(t, 50.0, ideal.Samples[0].D, 1e-6)

	assert.InDelta(t, 3.0, ideal.Samples[1].Depth, 1e-6)
	assert.InDelta(t, 2.38, ideal.Samples[1].Is50, 1e-6)

	assert.InDelta(t, 4.5, ideal.Samples[2].Depth, 1e-6)
	assert.InDelta(t, 2.84, ideal.Samples[2].Is50, 1e-6)
}

func TestPointLoadIdealizedExpAvg(t *testing.T) {
	plt := newPointLoadTest()
	plt.IdealizationMethod = SelectionAvg
	ideal := plt.IdealizedExp("ideal_avg")

	require.Len(t, ideal.Samples, 3)
	assert.InDelta(t, (2.67+2.66)/2.0, ideal.Samples[0].Is50, 1e-6)
	assert.InDelta(t, (2.38+2.96+2.53)/3.0, ideal.Samples[1].Is50, 1e-6)
}

func TestPointLoadValidate(t *testing.T) {
	var plt PointLoadTest
	assert.ErrorIs(t, plt.Validate("is50"), ErrMissingData)

	plt = newPointLoadTest()
	assert.NoError(t, plt.Validate("depth", "is50", "d"))
}
