package swelling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Soilworks/internal/model"
)

func newInput() Input {
	return Input{
		SoilProfile: model.SoilProfile{
			GroundWaterLevel: 5.0,
			Layers: []model.SoilLayer{
				{
					Thickness: 3.0, DryUnitWeight: 1.8, SaturatedUnitWeight: 1.9,
					LiquidLimit: 43.9, PlasticLimit: 21.3, WaterContent: 23.7,
				},
				{
					Thickness: 5.0, DryUnitWeight: 1.9, SaturatedUnitWeight: 2.0,
					LiquidLimit: 58.85, PlasticLimit: 37.4, WaterContent: 75.4,
				},
				{
					Thickness: 50.0, DryUnitWeight: 2.0, SaturatedUnitWeight: 2.1,
					LiquidLimit: 2.3, PlasticLimit: 0.0, WaterContent: 22.5,
				},
			},
		},
		Foundation:         model.Foundation{Depth: 2.0, Width: 10.0, Length: 20.0},
		FoundationPressure: 50.0,
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(newInput())
	require.NoError(t, err)
	require.Len(t, res.Layers, 3)

	assert.InDelta(t, 8.89, res.Layers[0].SwellingPressure, 1e-2)

	// The first layer's center sits above the footing base, so it carries no
	// confining stress and an unsafe verdict.
	assert.Zero(t, res.Layers[0].EffectiveStress)
	assert.Zero(t, res.Layers[0].DeltaStress)
	assert.False(t, res.Layers[0].IsSafe)

	assert.InDelta(t, 50.0-1.8*2.0, res.NetFoundationPressure, 1e-9)

	for _, layer := range res.Layers[1:] {
		assert.Greater(t, layer.EffectiveStress, 0.0)
		assert.Greater(t, layer.DeltaStress, 0.0)
	}
}

func TestCalculateRejectsWaterContentOverLimit(t *testing.T) {
	in := newInput()
	in.SoilProfile.Layers[0].WaterContent = 120.0
	_, err := Calculate(in)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
