package liquefaction

import (
	"math"

	"Soilworks/internal/model"
)

// VSInput is an Andrus & Stokoe liquefaction triggering request based on
// shear wave velocities.
type VSInput struct {
	SoilProfile model.SoilProfile `json:"soil_profile"`
	MASW        model.MASW        `json:"masw"`

	PGA float64 `json:"pga"` // fraction of g
	Mw  float64 `json:"mw"`  // moment magnitude
}

// VSLayerResult carries the velocity terms of an analyzed layer.
type VSLayerResult struct {
	Vs   float64 `json:"vs"`   // m/s
	Vs1  float64 `json:"vs1"`  // overburden-corrected, m/s
	Vs1c float64 `json:"vs1c"` // critical velocity, m/s
	Cn   float64 `json:"cn"`
}

// VSResult is the liquefaction assessment over the soil profile layers.
type VSResult struct {
	Layers          []LayerResult   `json:"layers"`
	VsLayers        []VSLayerResult `json:"vs_layers"`
	TotalSettlement float64         `json:"total_settlement"` // cm
	MSF             float64         `json:"msf"`
}

func validateVSInput(in *VSInput) error {
	if err := in.MASW.Validate("thickness", "vs"); err != nil {
		return err
	}
	if err := in.SoilProfile.Validate(
		"thickness", "dry_unit_weight", "saturated_unit_weight",
		"plasticity_index", "fine_content",
	); err != nil {
		return err
	}
	if err := model.RequireMin("pga", in.PGA, 0.0); err != nil {
		return err
	}
	return model.RequireMin("mw", in.Mw, 0.001)
}

// CalcVs1c computes the critical shear wave velocity from the fine content.
func CalcVs1c(fineContent float64) float64 {
	switch {
	case fineContent <= 5.0:
		return 215.0
	case fineContent <= 35.0:
		return 215.0 - 0.5*(fineContent-5.0)
	default:
		return 200.0
	}
}

// CalcCRR75VS computes the cyclic resistance in t/m² at Mw 7.5 from the
// corrected velocity, per the Andrus & Stokoe base curve.
func CalcCRR75VS(vs1, vs1c, effectiveStress float64) float64 {
	return (0.03*(vs1/100.0)*(vs1/100.0) + 0.09/(vs1c-vs1) - 0.09/vs1c) * effectiveStress
}

// vsCn is the overburden correction for the measured velocity, capped at 1.7.
func vsCn(effectiveStress float64) float64 {
	return min(1.16*math.Sqrt(1.0/effectiveStress), 1.7)
}

// SettlementVS computes the post-liquefaction settlement in cm of one layer,
// mapping the corrected velocity to a relative density and onward to a
// normalized tip resistance.
func SettlementVS(fs, thickness, vs1 float64) float64 {
	dr := 17.974 * math.Pow(vs1/100.0, 1.976)

	drCurve := []float64{30.0, 40.0, 50.0, 60.0, 70.0, 80.0, 90.0}
	qCurve := []float64{33.0, 45.0, 60.0, 80.0, 110.0, 147.0, 200.0}
	q := model.Interp1D(drCurve, qCurve, dr)

	return strainSettlement(fs, q, thickness)
}

// CalculateVS runs the Andrus & Stokoe triggering assessment against the
// idealized MASW profile, one result per soil layer. Layers above the water
// table, in plastic soils (PI ≥ 12) or with Vs1 at or above the critical
// velocity are excluded from triggering.
func CalculateVS(in VSInput) (VSResult, error) {
	if err := validateVSInput(&in); err != nil {
		return VSResult{}, err
	}
	if err := in.SoilProfile.CalcLayerDepths(); err != nil {
		return VSResult{}, err
	}
	if err := in.MASW.CalcDepths(); err != nil {
		return VSResult{}, err
	}

	exp := in.MASW.IdealizedExp("idealized")
	if err := exp.CalcDepths(); err != nil {
		return VSResult{}, err
	}
	if len(exp.Layers) == 0 {
		return VSResult{}, model.Missingf("masw idealization produced no layers")
	}

	msf := CalcMSF(in.Mw)
	layers := make([]LayerResult, 0, len(in.SoilProfile.Layers))
	vsLayers := make([]VSLayerResult, 0, len(in.SoilProfile.Layers))
	total := 0.0

	for i := range in.SoilProfile.Layers {
		layer := &in.SoilProfile.Layers[i]
		depth := layer.Depth
		rd := CalcRd(depth)

		normal, effective, excluded, err := commonLayerChecks(&in.SoilProfile, depth)
		if err != nil {
			return VSResult{}, err
		}

		vs := exp.LayerAt(depth).Vs
		cn := vsCn(effective)
		vs1 := vs * cn
		vs1c := CalcVs1c(layer.FineContent)

		if excluded || vs1 >= vs1c {
			layers = append(layers, LayerResult{
				Depth:           depth,
				NormalStress:    normal,
				EffectiveStress: effective,
				Rd:              rd,
				IsSafe:          true,
			})
			continue
		}

		csr := CalcCSR(in.PGA, normal, rd)
		crr75 := CalcCRR75VS(vs1, vs1c, effective)
		crr := msf * crr75
		fs := crr / csr
		settlement := SettlementVS(fs, layer.Thickness, vs1)

		vsLayers = append(vsLayers, VSLayerResult{Vs: vs, Vs1: vs1, Vs1c: vs1c, Cn: cn})
		layers = append(layers, LayerResult{
			Depth:           depth,
			NormalStress:    normal,
			EffectiveStress: effective,
			Rd:              rd,
			CSR:             f64(csr),
			CRR75:           f64(crr75),
			CRR:             f64(crr),
			SafetyFactor:    f64(fs),
			IsSafe:          fs > 1.1,
			Settlement:      settlement,
		})
		total += settlement
	}

	return VSResult{
		Layers:          layers,
		VsLayers:        vsLayers,
		TotalSettlement: total,
		MSF:             msf,
	}, nil
}
