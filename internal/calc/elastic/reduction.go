package elastic

import "Soilworks/internal/model"

// Fox (1948) embedment reduction factors If, digitized from the charts in
// Bowles (1996) over Poisson's ratio, embedment ratio D/B and aspect ratio
// L/B. Values outside the grid clamp to the nearest edge.
var (
	ifNu = []float64{0.3, 0.4, 0.5}
	ifLb = []float64{1.0, 2.0, 5.0}
	ifDb = []float64{0.0, 0.2, 0.4, 0.6, 0.8, 1.0, 2.0}

	// ifTable[nu][lb][db]
	ifTable = [3][3][7]float64{
		{ // nu = 0.3
			{1.0, 0.9447, 0.8796, 0.8249, 0.7845, 0.7549, 0.6867},
			{1.0, 0.9582, 0.8986, 0.8475, 0.8090, 0.7801, 0.7153},
			{1.0, 0.9698, 0.9163, 0.8691, 0.8332, 0.8059, 0.7446},
		},
		{ // nu = 0.4
			{1.0, 0.9406, 0.8707, 0.8119, 0.7685, 0.7367, 0.6635},
			{1.0, 0.9551, 0.8911, 0.8362, 0.7955, 0.7655, 0.6963},
			{1.0, 0.9676, 0.9101, 0.8594, 0.8208, 0.7915, 0.7257},
		},
		{ // nu = 0.5
			{1.0, 0.9365, 0.8618, 0.7989, 0.7525, 0.7185, 0.6403},
			{1.0, 0.9520, 0.8839, 0.8251, 0.7819, 0.7508, 0.6775},
			{1.0, 0.9654, 0.9039, 0.8497, 0.8084, 0.7771, 0.7068},
		},
	}
)

// interpolateIf evaluates the Fox reduction factor by trilinear interpolation
// over the chart grid.
func interpolateIf(nu, db, lb float64) float64 {
	byLb := make([]float64, len(ifLb))
	for j := range ifLb {
		byNu := make([]float64, len(ifNu))
		for i := range ifNu {
			byNu[i] = model.Interp1D(ifDb, ifTable[i][j][:], db)
		}
		byLb[j] = model.Interp1D(ifNu, byNu, nu)
	}
	return model.Interp1D(ifLb, byLb, lb)
}
