package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Soilworks/internal/model"
)

func newInput(t *testing.T) Input {
	profile, err := model.NewSoilProfile([]model.SoilLayer{
		{
			Thickness:           10.0,
			DryUnitWeight:       1.8,
			SaturatedUnitWeight: 2.0,
			Cu:                  5.0,
			CPrime:              0.5,
			PhiPrime:            30.0,
			ElasticModulus:      6000.0,
			PoissonsRatio:       0.4,
		},
	}, 5.0)
	require.NoError(t, err)
	return Input{
		Project:            "Warehouse block B",
		Engineer:           "J. Doe",
		SoilProfile:        *profile,
		Foundation:         model.Foundation{Depth: 1.5, Width: 2.0, Length: 3.0},
		Loads:              model.Loads{VerticalLoad: 100.0},
		FoundationPressure: 20.0,
		FactorOfSafety:     3.0,
		Term:               model.TermLong,
	}
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Generate(newInput(t), &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestGenerateRejectsBadInput(t *testing.T) {
	in := newInput(t)
	in.FactorOfSafety = 0.0

	var buf bytes.Buffer
	err := Generate(in, &buf)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
