package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNValueArithmetic(t *testing.T) {
	assert.Equal(t, 10, MustNValue(10).Int())
	assert.Equal(t, 50, Refusal().Int())

	// Products and sums round up; refusals are absorbing.
	assert.Equal(t, 20, MustNValue(10).MulF64(2.0).Int())
	assert.Equal(t, 13, MustNValue(5).MulF64(2.5).Int())
	assert.True(t, Refusal().MulF64(3.0).IsRefusal())

	assert.Equal(t, 15, MustNValue(10).Sum(MustNValue(5)).Int())
	assert.True(t, MustNValue(10).Sum(Refusal()).IsRefusal())
	assert.True(t, Refusal().Sum(Refusal()).IsRefusal())

	assert.Equal(t, 16, MustNValue(10).AddF64(5.5).Int())
	assert.Equal(t, 5, MustNValue(3).AddF64(1.9).Int())
	assert.True(t, Refusal().AddF64(5.0).IsRefusal())
}

func TestNValueOrdering(t *testing.T) {
	assert.True(t, MustNValue(1000).Less(Refusal()))
	assert.False(t, Refusal().Less(MustNValue(1000)))
	assert.True(t, MustNValue(5).Less(MustNValue(10)))
	assert.False(t, MustNValue(10).Less(MustNValue(5)))
}

func TestNValueString(t *testing.T) {
	assert.Equal(t, "42", MustNValue(42).String())
	assert.Equal(t, "R", Refusal().String())
}

func TestNewNValueRejectsNonPositive(t *testing.T) {
	_, err := NewNValue(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApplyEnergyCorrection(t *testing.T) {
	blow := SPTBlow{Depth: 10.0, N: MustNValue(25)}
	blow.ApplyEnergyCorrection(1.2)

	assert.Equal(t, 30, blow.N60.Int())
	assert.Equal(t, 45, blow.N90.Int())
}

func TestApplyCorrections(t *testing.T) {
	profile, err := NewSoilProfile([]SoilLayer{
		{Thickness: 10.0, DryUnitWeight: 1.8, SaturatedUnitWeight: 2.0, FineContent: 10.0},
	}, 10.0)
	require.NoError(t, err)

	blow := SPTBlow{Depth: 10.0, N: MustNValue(25)}
	require.NoError(t, blow.ApplyCorrections(profile, 0.9, 1.05, 1.2))

	assert.Equal(t, 30, blow.N60.Int())
	assert.Equal(t, 45, blow.N90.Int())
	assert.InDelta(t, 0.735, blow.Cn, 1e-3)
	assert.InDelta(t, 0.95, blow.Cr, 1e-9)
	assert.InDelta(t, 0.869, blow.Alpha, 1e-3)
	assert.InDelta(t, 1.021, blow.Beta, 1e-2)
	assert.Equal(t, 20, blow.N160.Int())
	assert.Equal(t, 22, blow.N160F.Int())
}

func TestAddBlowOrdering(t *testing.T) {
	exp, err := NewSPTExp("bh-1", nil)
	require.NoError(t, err)

	require.NoError(t, exp.AddBlow(1.5, MustNValue(10)))
	require.NoError(t, exp.AddBlow(3.0, MustNValue(12)))
	assert.ErrorIs(t, exp.AddBlow(3.0, MustNValue(14)), ErrOrdering)
	assert.ErrorIs(t, exp.AddBlow(2.0, MustNValue(14)), ErrOrdering)
}

func TestIdealizedExp(t *testing.T) {
	exp1, err := NewSPTExp("exp1", nil)
	require.NoError(t, err)
	require.NoError(t, exp1.AddBlow(1.5, MustNValue(10)))
	require.NoError(t, exp1.AddBlow(2.0, MustNValue(20)))
	require.NoError(t, exp1.AddBlow(3.0, Refusal()))

	exp2, err := NewSPTExp("exp2", nil)
	require.NoError(t, err)
	require.NoError(t, exp2.AddBlow(1.5, MustNValue(15)))
	require.NoError(t, exp2.AddBlow(3.0, MustNValue(14)))

	spt := NewSPT(1.2, 1.05, 0.9, SelectionMin)
	spt.AddExp(*exp1)
	spt.AddExp(*exp2)

	idealMin := spt.IdealizedExp("ideal_min")
	spt.IdealizationMethod = SelectionAvg
	idealAvg := spt.IdealizedExp("ideal_avg")
	spt.IdealizationMethod = SelectionMax
	idealMax := spt.IdealizedExp("ideal_max")

	for _, ideal := range []SPTExp{idealMin, idealAvg, idealMax} {
		require.Len(t, ideal.Blows, 3)
		assert.Equal(t, 1.5, ideal.Blows[0].Depth)
		assert.Equal(t, 2.0, ideal.Blows[1].Depth)
		assert.Equal(t, 3.0, ideal.Blows[2].Depth)
	}

	assert.Equal(t, 10, idealMin.Blows[0].N.Int())
	assert.Equal(t, 20, idealMin.Blows[1].N.Int())
	assert.Equal(t, 14, idealMin.Blows[2].N.Int())

	// Averages round half up; a refusal averages as 50 blows.
	assert.Equal(t, 13, idealAvg.Blows[0].N.Int())
	assert.Equal(t, 20, idealAvg.Blows[1].N.Int())
	assert.Equal(t, 32, idealAvg.Blows[2].N.Int())

	assert.Equal(t, 15, idealMax.Blows[0].N.Int())
	assert.Equal(t, 20, idealMax.Blows[1].N.Int())
	assert.True(t, idealMax.Blows[2].N.IsRefusal())
}

func TestIdealizedExpSingleExperiment(t *testing.T) {
	exp, err := NewSPTExp("only", nil)
	require.NoError(t, err)
	require.NoError(t, exp.AddBlow(1.5, MustNValue(7)))
	require.NoError(t, exp.AddBlow(3.0, MustNValue(11)))

	spt := NewSPT(1.0, 1.0, 1.0, SelectionAvg)
	spt.AddExp(*exp)

	ideal := spt.IdealizedExp("ideal")
	require.Len(t, ideal.Blows, 2)
	assert.Equal(t, exp.Blows[0].Depth, ideal.Blows[0].Depth)
	assert.Equal(t, exp.Blows[0].N.Int(), ideal.Blows[0].N.Int())
	assert.Equal(t, exp.Blows[1].N.Int(), ideal.Blows[1].N.Int())
}

func TestCalcThicknesses(t *testing.T) {
	exp, err := NewSPTExp("bh", nil)
	require.NoError(t, err)
	require.NoError(t, exp.AddBlow(1.5, MustNValue(5)))
	require.NoError(t, exp.AddBlow(4.0, MustNValue(8)))

	exp.CalcThicknesses()
	assert.Equal(t, 1.5, exp.Blows[0].Thickness)
	assert.Equal(t, 2.5, exp.Blows[1].Thickness)
}
