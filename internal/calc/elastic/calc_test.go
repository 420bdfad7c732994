package elastic

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
					ElasticModulus: 1500.0, PoissonsRatio: 0.4,
				},
				{
					Thickness: 5.0, DryUnitWeight: 1.9, SaturatedUnitWeight: 2.0,
					ElasticModulus: 6000.0, PoissonsRatio: 0.4,
				},
				{
					Thickness: 50.0, DryUnitWeight: 2.0, SaturatedUnitWeight: 2.1,
					ElasticModulus: 7500.0, PoissonsRatio: 0.4,
				},
			},
		},
		Foundation:         model.Foundation{Depth: 2.0, Width: 10.0, Length: 20.0},
		FoundationPressure: 50.0,
	}
}

func TestCalcIp(t *testing.T) {
	got := CalcIp(5.0, 10.0, 20.0, 0.1)
	assert.InDelta(t, 0.222, got, 1e-3)
}

func TestSingleLayerSettlement(t *testing.T) {
	got := SingleLayerSettlement(2.0, 0.4, 6000.0, 20.0, 10.0, 6.0, 88.3)
	assert.InDelta(t, 1.05, got, 1e-3)
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(newInput())
	require.NoError(t, err)

	expected := []float64{1.058, 2.195, 4.613}
	require.Len(t, res.SettlementPerLayer, len(expected))
	for i, want := range expected {
		assert.InDelta(t, want, res.SettlementPerLayer[i], 1e-3, "layer %d", i)
	}

	// Net pressure removes the overburden at the founding depth.
	assert.InDelta(t, 50.0-1.8*2.0, res.QNet, 1e-9)

	// Total is the sum of the per-layer shares.
	sum := 0.0
	for _, s := range res.SettlementPerLayer {
		sum += s
	}
	assert.InDelta(t, sum, res.TotalSettlement, 1e-9)
}

func TestCalculateSkipsLayersAboveFooting(t *testing.T) {
	in := newInput()
	in.Foundation.Depth = 4.0
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.Zero(t, res.SettlementPerLayer[0])
}

func TestCalculateRejectsMissingModulus(t *testing.T) {
	in := newInput()
	in.SoilProfile.Layers[1].ElasticModulus = 0.0
	_, err := Calculate(in)
	require.ErrorIs(t, err, model.ErrInvalidInput)
}
