package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"Soilworks/internal/calc/elastic"
	"Soilworks/internal/calc/vesic"
	"Soilworks/internal/model"
)

// Input describes a full foundation design run to be rendered as a PDF:
// bearing capacity by the Vesic method plus elastic settlement.
type Input struct {
	Project  string `json:"project"`
	Engineer string `json:"engineer"`

	SoilProfile model.SoilProfile `json:"soil_profile"`
	Foundation  model.Foundation  `json:"foundation"`
	Loads       model.Loads       `json:"loads"`

	FoundationPressure float64            `json:"foundation_pressure"` // t/m²
	FactorOfSafety     float64            `json:"factor_of_safety"`
	Term               model.AnalysisTerm `json:"term"`
}

// Generate runs the bearing capacity and settlement calculations and writes
// the report PDF to w.
func Generate(in Input, w io.Writer) error {
	bearing, err := vesic.Calculate(vesic.Input{
		SoilProfile:        in.SoilProfile,
		Foundation:         in.Foundation,
		Loads:              in.Loads,
		FoundationPressure: in.FoundationPressure,
		FactorOfSafety:     in.FactorOfSafety,
		Term:               in.Term,
	})
	if err != nil {
		return err
	}
	settlement, err := elastic.Calculate(elastic.Input{
		SoilProfile:        in.SoilProfile,
		Foundation:         in.Foundation,
		FoundationPressure: in.FoundationPressure,
	})
	if err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Geotechnical Calculation Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Engineer: %s", in.Engineer))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Soil Profile")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Ground water level: %.2f m", in.SoilProfile.GroundWaterLevel))
	pdf.Ln(6)

	writeRow := func(cols []string, widths []float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		for i, col := range cols {
			pdf.CellFormat(widths[i], 5, col, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(5)
	}

	layerWidths := []float64{15, 30, 35, 35}
	writeRow([]string{"Layer", "Thickness [m]", "Dry unit w. [t/m3]", "Sat. unit w. [t/m3]"}, layerWidths, true)
	for i := range in.SoilProfile.Layers {
		layer := &in.SoilProfile.Layers[i]
		writeRow([]string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", layer.Thickness),
			fmt.Sprintf("%.2f", layer.DryUnitWeight),
			fmt.Sprintf("%.2f", layer.SaturatedUnitWeight),
		}, layerWidths, false)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Bearing Capacity (Vesic)")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Ultimate bearing capacity: %.2f t/m2", bearing.UltimateBearingCapacity))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Allowable bearing capacity: %.2f t/m2", bearing.AllowableBearingCapacity))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Foundation pressure: %.2f t/m2", in.FoundationPressure))
	pdf.Ln(5)
	verdict := "UNSAFE"
	if bearing.IsSafe {
		verdict = "SAFE"
	}
	pdf.Cell(0, 5, fmt.Sprintf("Verdict: %s", verdict))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Elastic Settlement")
	pdf.Ln(8)
	settleWidths := []float64{15, 40}
	writeRow([]string{"Layer", "Settlement [cm]"}, settleWidths, true)
	for i, s := range settlement.SettlementPerLayer {
		writeRow([]string{fmt.Sprintf("%d", i+1), fmt.Sprintf("%.3f", s)}, settleWidths, false)
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.Ln(3)
	pdf.Cell(0, 5, fmt.Sprintf("Total settlement: %.3f cm", settlement.TotalSettlement))

	return pdf.Output(w)
}
