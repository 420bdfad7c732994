package subgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Soilworks/internal/model"
)

func TestCalcBySettlement(t *testing.T) {
	assert.InDelta(t, 50000.0, CalcBySettlement(2.0, 1000.0), 1e-6)
}

func TestCalcBySettlementZero(t *testing.T) {
	assert.Equal(t, 999999.0, CalcBySettlement(0.0, 1000.0))
}

func TestCalcByBearingCapacity(t *testing.T) {
	assert.InDelta(t, 100000.0, CalcByBearingCapacity(250.0), 1e-6)
}

func TestCalculateBySettlement(t *testing.T) {
	res, err := CalculateBySettlement(2.0, 1000.0)
	require.NoError(t, err)
	assert.InDelta(t, 50000.0, res.Coefficient, 1e-6)

	_, err = CalculateBySettlement(2.0, -1.0)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestCalculateByBearingCapacity(t *testing.T) {
	res, err := CalculateByBearingCapacity(250.0)
	require.NoError(t, err)
	assert.InDelta(t, 100000.0, res.Coefficient, 1e-6)

	_, err = CalculateByBearingCapacity(-5.0)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
