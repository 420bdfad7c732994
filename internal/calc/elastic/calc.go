package elastic

import (
	"math"

	"Soilworks/internal/model"
)

// Input is the Boussinesq elastic settlement request.
type Input struct {
	SoilProfile model.SoilProfile `json:"soil_profile"`
	Foundation  model.Foundation  `json:"foundation"`

	FoundationPressure float64 `json:"foundation_pressure"` // t/m²
}

// Result lists the settlement contribution of every layer in cm.
type Result struct {
	SettlementPerLayer []float64 `json:"settlement_per_layer"` // cm
	TotalSettlement    float64   `json:"total_settlement"`     // cm
	QNet               float64   `json:"qnet"`                 // t/m²
}

func validateInput(in *Input) error {
	if err := in.SoilProfile.Validate(
		"thickness", "dry_unit_weight", "saturated_unit_weight",
		"elastic_modulus", "poissons_ratio",
	); err != nil {
		return err
	}
	if err := in.Foundation.Validate("foundation_depth", "foundation_width", "foundation_length"); err != nil {
		return err
	}
	return model.RequireMin("foundation_pressure", in.FoundationPressure, 0.0)
}

// CalcIp computes the Boussinesq influence factor for a flexible rectangular
// loaded area over a layer of depth h. After Bowles (1996).
func CalcIp(h, b, l, u float64) float64 {
	m := l / b
	n := 2.0 * h / b

	m2 := m * m
	n2 := n * n

	a0 := m * math.Log((1.0+math.Sqrt(1.0+m2))*math.Sqrt(m2+n2)/(m*(1.0+math.Sqrt(1.0+m2+n2))))
	a1 := math.Log((m + math.Sqrt(1.0+m2)) * math.Sqrt(1.0+n2) / (m + math.Sqrt(1.0+m2+n2)))

	a2 := 0.0
	if n != 0.0 {
		a2 = m / (n * math.Sqrt(1.0+m2+n2))
	}

	f1 := (a0 + a1) / math.Pi
	f2 := 0.5 * (n / math.Pi) * math.Atan(a2)

	return f1 + ((1.0-2.0*u)/(1.0-u))*f2
}

// SingleLayerSettlement computes the settlement in cm of the soil column from
// the founding depth down to depth h below it.
//
//	S = 100 · qNet · 4B · If · Ip · (1 − u²) · 0.5 / E
func SingleLayerSettlement(h, u, e, l, b, df, qNet float64) float64 {
	ip := CalcIp(h, b, l, u)
	ifValue := interpolateIf(u, df/b, l/b)
	return 100.0 * qNet * 4.0 * b * ifValue * ip * (1.0 - u*u) * 0.5 / e
}

// Calculate computes the elastic settlement per layer under the net
// foundation pressure. Each layer's share is the settlement of the column
// down to its bottom minus the column down to its top; layers fully above
// the founding depth contribute nothing.
func Calculate(in Input) (Result, error) {
	if err := validateInput(&in); err != nil {
		return Result{}, err
	}
	if err := in.SoilProfile.CalcLayerDepths(); err != nil {
		return Result{}, err
	}

	df := in.Foundation.Depth
	width := in.Foundation.Width
	length := in.Foundation.Length

	sigma, err := in.SoilProfile.CalcNormalStress(df)
	if err != nil {
		return Result{}, err
	}
	qNet := in.FoundationPressure - sigma
	dfIndex := in.SoilProfile.LayerIndex(df)

	settlements := make([]float64, 0, len(in.SoilProfile.Layers))
	total := 0.0
	for i := range in.SoilProfile.Layers {
		layer := &in.SoilProfile.Layers[i]

		if i < dfIndex {
			settlements = append(settlements, 0.0)
			continue
		}

		h := layer.Depth - df
		u := layer.PoissonsRatio
		e := layer.ElasticModulus

		s := SingleLayerSettlement(h, u, e, length, width, df, qNet)
		if i > 0 {
			h0 := in.SoilProfile.Layers[i-1].Depth - df
			s -= SingleLayerSettlement(h0, u, e, length, width, df, qNet)
		}
		s = max(s, 0.0)
		settlements = append(settlements, s)
		total += s
	}

	return Result{
		SettlementPerLayer: settlements,
		TotalSettlement:    total,
		QNet:               qNet,
	}, nil
}
