package liquefaction

import (
	"math"

	"Soilworks/internal/model"
)

// CalcRd computes the stress reduction factor at depth, piecewise linear
// after Liao & Whitman.
func CalcRd(depth float64) float64 {
	switch {
	case depth <= 9.15:
		return 1.0 - 0.00765*depth
	case depth < 23.0:
		return 1.174 - 0.0267*depth
	case depth < 30.0:
		return 0.744 - 0.008*depth
	default:
		return 0.5
	}
}

// CalcCSR computes the cyclic stress demand in t/m² from the peak ground
// acceleration (as a fraction of g) and the total stress.
func CalcCSR(pga, normalStress, rd float64) float64 {
	return 0.65 * pga * normalStress * rd
}

// CalcMSF computes the magnitude scaling factor for a moment magnitude.
func CalcMSF(mw float64) float64 {
	return math.Pow(10.0, 2.24) / math.Pow(mw, 2.56)
}

// Volumetric strain curve coefficients after Ishihara & Yoshimine.
const (
	strainA0 = 0.3773
	strainA1 = -0.0337
	strainA2 = 1.5672
	strainA3 = -0.1833
	strainB0 = 28.45
	strainB1 = -9.3372
	strainB2 = 0.7975
)

// strainSettlement evaluates the post-liquefaction volumetric strain for a
// safety factor and a normalized tip resistance q, scaled by the layer
// thickness. Result in cm.
func strainSettlement(fs, q, thickness float64) float64 {
	logQ := math.Log(q)

	var settlement float64
	switch {
	case fs > 2.0:
		settlement = 0.0
	case fs > 2.0-1.0/(strainA2+strainA3*logQ):
		s1 := (strainA0 + strainA1*logQ) / (1.0/(2.0-fs) - (strainA2 + strainA3*logQ))
		s2 := strainB0 + strainB1*logQ + strainB2*logQ*logQ
		settlement = min(s1, s2)
	default:
		settlement = strainB0 + strainB1*logQ + strainB2*logQ*logQ
	}
	return settlement * thickness
}

// LayerResult is the per-depth outcome shared by both liquefaction methods.
// The demand and resistance fields stay nil for layers excluded from the
// analysis.
type LayerResult struct {
	Depth           float64 `json:"depth"`            // m
	NormalStress    float64 `json:"normal_stress"`    // t/m²
	EffectiveStress float64 `json:"effective_stress"` // t/m²
	Rd              float64 `json:"rd"`

	CSR          *float64 `json:"csr,omitempty"`
	CRR75        *float64 `json:"crr75,omitempty"`
	CRR          *float64 `json:"crr,omitempty"`
	SafetyFactor *float64 `json:"safety_factor,omitempty"`

	// IsSafe is true for every excluded layer: a layer that cannot
	// liquefy is reported safe rather than left undetermined.
	IsSafe     bool    `json:"is_safe"`
	Settlement float64 `json:"settlement"` // cm
}

func commonLayerChecks(profile *model.SoilProfile, depth float64) (normal, effective float64, excluded bool, err error) {
	normal, err = profile.CalcNormalStress(depth)
	if err != nil {
		return 0, 0, false, err
	}
	effective, err = profile.CalcEffectiveStress(depth)
	if err != nil {
		return 0, 0, false, err
	}

	layer := profile.LayerAt(depth)
	excluded = profile.GroundWaterLevel >= depth || layer.PlasticityIndex >= 12.0
	return normal, effective, excluded, nil
}

func f64(v float64) *float64 { return &v }
