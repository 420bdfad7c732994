package liquefaction

import (
	"Soilworks/internal/model"
)

// SPTInput is a Seed & Idriss liquefaction triggering request based on SPT
// blow counts.
type SPTInput struct {
	SoilProfile model.SoilProfile `json:"soil_profile"`
	SPT         model.SPT         `json:"spt"`

	PGA float64 `json:"pga"` // fraction of g
	Mw  float64 `json:"mw"`  // moment magnitude
}

// SPTResult is the liquefaction assessment over the idealized SPT profile.
type SPTResult struct {
	Layers          []LayerResult `json:"layers"`
	SPTExp          model.SPTExp  `json:"spt_exp"`
	TotalSettlement float64       `json:"total_settlement"` // cm
	MSF             float64       `json:"msf"`
}

func validateSPTInput(in *SPTInput) error {
	if err := in.SPT.Validate("n", "depth"); err != nil {
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

// CalcCRR75SPT computes the cyclic resistance in t/m² at Mw 7.5 from the
// fully corrected blow count, per the NCEER SPT base curve.
func CalcCRR75SPT(n160f int, effectiveStress float64) float64 {
	n := float64(n160f)
	return (1.0/(34.0-n) + n/135.0 + 50.0/((10.0*n+45.0)*(10.0*n+45.0)) - 1.0/200.0) * effectiveStress
}

// SettlementSPT computes the post-liquefaction settlement in cm of one layer
// from its N60 count, mapped to a normalized tip resistance.
func SettlementSPT(fs, thickness float64, n60 int) float64 {
	n90 := max(3.0, min(30.0, float64(n60)*6.0/9.0))

	n90Curve := []float64{3.0, 6.0, 10.0, 14.0, 25.0, 30.0}
	qCurve := []float64{33.0, 45.0, 60.0, 80.0, 147.0, 200.0}
	q := model.Interp1D(n90Curve, qCurve, n90)

	return strainSettlement(fs, q, thickness)
}

// CalculateSPT runs the Seed & Idriss triggering assessment over the
// idealized, fully corrected SPT profile. Blows above the water table, in
// plastic soils (PI ≥ 12) or with high corrected counts (N1_60 ≥ 30,
// N1_60f ≥ 34) are excluded from triggering.
func CalculateSPT(in SPTInput) (SPTResult, error) {
	if err := validateSPTInput(&in); err != nil {
		return SPTResult{}, err
	}
	if err := in.SoilProfile.CalcLayerDepths(); err != nil {
		return SPTResult{}, err
	}

	exp := in.SPT.IdealizedExp("idealized")
	err := exp.ApplyCorrections(
		&in.SoilProfile,
		in.SPT.SamplerCorrectionFactor,
		in.SPT.DiameterCorrectionFactor,
		in.SPT.EnergyCorrectionFactor,
	)
	if err != nil {
		return SPTResult{}, err
	}
	exp.CalcThicknesses()

	msf := CalcMSF(in.Mw)
	layers := make([]LayerResult, 0, len(exp.Blows))
	total := 0.0

	for i := range exp.Blows {
		blow := &exp.Blows[i]
		rd := CalcRd(blow.Depth)

		normal, effective, excluded, err := commonLayerChecks(&in.SoilProfile, blow.Depth)
		if err != nil {
			return SPTResult{}, err
		}
		if excluded || blow.N160.Int() >= 30 || blow.N160F.Int() >= 34 {
			layers = append(layers, LayerResult{
				Depth:           blow.Depth,
				NormalStress:    normal,
				EffectiveStress: effective,
				Rd:              rd,
				IsSafe:          true,
			})
			continue
		}

		csr := CalcCSR(in.PGA, normal, rd)
		crr75 := CalcCRR75SPT(blow.N160F.Int(), effective)
		crr := msf * crr75
		fs := crr / csr
		settlement := SettlementSPT(fs, blow.Thickness, blow.N60.Int())

		layers = append(layers, LayerResult{
			Depth:           blow.Depth,
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

	return SPTResult{
		Layers:          layers,
		SPTExp:          exp,
		TotalSettlement: total,
		MSF:             msf,
	}, nil
}
