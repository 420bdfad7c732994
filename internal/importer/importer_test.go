package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Soilworks/internal/model"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"borehole", "depth", "n"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	buf := workbook(t, [][]any{
		{"BH-1", 1.5, 4},
		{"BH-1", 3.0, 9},
		{"BH-1", 4.5, "R"},
		{"BH-2", 1.5, 12},
	})

	res, err := ReadXLSX(buf, Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Boreholes["BH-1"])
	assert.Equal(t, 1, res.Boreholes["BH-2"])
	assert.Empty(t, res.SkippedRows)
	require.Len(t, res.SPT.Exps, 2)

	blows := res.SPT.Exps[0].Blows
	require.Len(t, blows, 3)
	assert.Equal(t, 4, blows[0].N.Int())
	assert.True(t, blows[2].N.IsRefusal())
}

func TestReadXLSXSkipsBadRows(t *testing.T) {
	buf := workbook(t, [][]any{
		{"BH-1", 1.5, 4},
		{"BH-1", "not-a-depth", 9},
		{"", 3.0, 5},
	})

	res, err := ReadXLSX(buf, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Boreholes["BH-1"])
	assert.Equal(t, []int{3, 4}, res.SkippedRows)
}

func TestReadXLSXRejectsUnorderedDepths(t *testing.T) {
	buf := workbook(t, [][]any{
		{"BH-1", 3.0, 4},
		{"BH-1", 1.5, 9},
	})

	_, err := ReadXLSX(buf, Options{})
	assert.ErrorIs(t, err, model.ErrOrdering)
}

func TestReadXLSXRejectsEmptySheet(t *testing.T) {
	buf := workbook(t, nil)
	_, err := ReadXLSX(buf, Options{})
	assert.ErrorIs(t, err, model.ErrMissingData)
}
