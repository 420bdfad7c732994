package model

// Unit conventions, used throughout and never converted: lengths in meters,
// unit weights in t/m³, stresses and strength parameters in t/m², angles in
// degrees, velocities in m/s.

// GammaWater is the unit weight of water in t/m³.
const GammaWater = 0.981

// SoilLayer is a single stratum of a soil profile. Only the parameters a
// given calculation needs have to be filled in; each calc module validates
// its own required field set. Depth and Center are derived by the profile.
type SoilLayer struct {
	Classification string `json:"soil_classification,omitempty"` // e.g. "CLAY", "SAND"

	Thickness           float64 `json:"thickness"`                       // m
	Depth               float64 `json:"depth,omitempty"`                 // m, bottom of layer
	Center              float64 `json:"center,omitempty"`                // m, mid-height of layer
	NaturalUnitWeight   float64 `json:"natural_unit_weight,omitempty"`   // t/m³
	DryUnitWeight       float64 `json:"dry_unit_weight,omitempty"`       // t/m³
	SaturatedUnitWeight float64 `json:"saturated_unit_weight,omitempty"` // t/m³

	DampingRatio    float64 `json:"damping_ratio,omitempty"`    // %
	FineContent     float64 `json:"fine_content,omitempty"`     // %
	LiquidLimit     float64 `json:"liquid_limit,omitempty"`     // %
	PlasticLimit    float64 `json:"plastic_limit,omitempty"`    // %
	PlasticityIndex float64 `json:"plasticity_index,omitempty"` // %
	WaterContent    float64 `json:"water_content,omitempty"`    // %

	Cu       float64 `json:"cu,omitempty"`        // undrained shear strength, t/m²
	CPrime   float64 `json:"c_prime,omitempty"`   // effective cohesion, t/m²
	PhiU     float64 `json:"phi_u,omitempty"`     // undrained friction angle, deg
	PhiPrime float64 `json:"phi_prime,omitempty"` // effective friction angle, deg

	PoissonsRatio  float64 `json:"poissons_ratio,omitempty"`
	ElasticModulus float64 `json:"elastic_modulus,omitempty"` // t/m²

	VoidRatio                float64 `json:"void_ratio,omitempty"`
	CompressionIndex         float64 `json:"compression_index,omitempty"`
	RecompressionIndex       float64 `json:"recompression_index,omitempty"`
	PreconsolidationPressure float64 `json:"preconsolidation_pressure,omitempty"` // t/m²
	Mv                       float64 `json:"mv,omitempty"`                        // m²/t

	ShearWaveVelocity float64 `json:"shear_wave_velocity,omitempty"` // m/s
}

// ValidateFields checks the named fields against their physical bounds.
func (l *SoilLayer) ValidateFields(fields ...string) error {
	for _, f := range fields {
		var err error
		switch f {
		case "thickness":
			err = RequireMin("thickness", l.Thickness, 0.0001)
		case "natural_unit_weight":
			err = RequireRange("natural_unit_weight", l.NaturalUnitWeight, 0.1, 10.0)
		case "dry_unit_weight":
			err = RequireRange("dry_unit_weight", l.DryUnitWeight, 0.1, 10.0)
		case "saturated_unit_weight":
			err = RequireRange("saturated_unit_weight", l.SaturatedUnitWeight, 0.1, 10.0)
		case "damping_ratio":
			err = RequireRange("damping_ratio", l.DampingRatio, 0.1, 100.0)
		case "fine_content":
			err = RequireRange("fine_content", l.FineContent, 0.0, 100.0)
		case "liquid_limit":
			err = RequireRange("liquid_limit", l.LiquidLimit, 0.0, 100.0)
		case "plastic_limit":
			err = RequireRange("plastic_limit", l.PlasticLimit, 0.0, 100.0)
		case "plasticity_index":
			err = RequireRange("plasticity_index", l.PlasticityIndex, 0.0, 100.0)
		case "water_content":
			err = RequireRange("water_content", l.WaterContent, 0.0, 100.0)
		case "cu":
			err = RequireMin("cu", l.Cu, 0.0)
		case "c_prime":
			err = RequireMin("c_prime", l.CPrime, 0.0)
		case "phi_u":
			err = RequireRange("phi_u", l.PhiU, 0.0, 90.0)
		case "phi_prime":
			err = RequireRange("phi_prime", l.PhiPrime, 0.0, 90.0)
		case "poissons_ratio":
			err = RequireRange("poissons_ratio", l.PoissonsRatio, 0.0001, 0.5)
		case "elastic_modulus":
			err = RequireMin("elastic_modulus", l.ElasticModulus, 0.0001)
		case "void_ratio":
			err = RequireMin("void_ratio", l.VoidRatio, 0.0)
		case "compression_index":
			err = RequireMin("compression_index", l.CompressionIndex, 0.0)
		case "recompression_index":
			err = RequireMin("recompression_index", l.RecompressionIndex, 0.0)
		case "preconsolidation_pressure":
			err = RequireMin("preconsolidation_pressure", l.PreconsolidationPressure, 0.0)
		case "mv":
			err = RequireMin("mv", l.Mv, 0.0)
		case "shear_wave_velocity":
			err = RequireMin("shear_wave_velocity", l.ShearWaveVelocity, 0.0)
		default:
			err = Invalidf("unknown soil layer field %q", f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SoilProfile is an ordered stack of layers, top to bottom, with the ground
// water table depth. Stresses are computed on demand and never cached.
type SoilProfile struct {
	Layers           []SoilLayer `json:"layers"`
	GroundWaterLevel float64     `json:"ground_water_level"` // m below surface
}

// NewSoilProfile builds a profile and assigns layer depths.
func NewSoilProfile(layers []SoilLayer, groundWaterLevel float64) (*SoilProfile, error) {
	if len(layers) == 0 {
		return nil, Invalidf("soil profile must contain at least one layer")
	}
	if groundWaterLevel < 0 {
		return nil, Invalidf("ground_water_level must be >= 0, got %g", groundWaterLevel)
	}
	p := &SoilProfile{Layers: layers, GroundWaterLevel: groundWaterLevel}
	if err := p.CalcLayerDepths(); err != nil {
		return nil, err
	}
	return p, nil
}

// CalcLayerDepths assigns the bottom depth and mid-height of every layer from
// the cumulative thicknesses.
func (p *SoilProfile) CalcLayerDepths() error {
	bottom := 0.0
	for i := range p.Layers {
		if p.Layers[i].Thickness <= 0 {
			return Invalidf("layer %d thickness must be > 0", i)
		}
		p.Layers[i].Center = bottom + p.Layers[i].Thickness/2.0
		bottom += p.Layers[i].Thickness
		p.Layers[i].Depth = bottom
	}
	return nil
}

// LayerIndex returns the index of the layer containing the given depth. Depths
// below the profile map to the last layer.
func (p *SoilProfile) LayerIndex(depth float64) int {
	for i := range p.Layers {
		if p.Layers[i].Depth >= depth {
			return i
		}
	}
	return len(p.Layers) - 1
}

// LayerAt returns the layer containing the given depth.
func (p *SoilProfile) LayerAt(depth float64) *SoilLayer {
	return &p.Layers[p.LayerIndex(depth)]
}

// CalcNormalStress computes the total vertical stress at depth in t/m².
// Layers above the water table contribute with their dry unit weight, layers
// below with the saturated one; the layer straddling the table contributes
// both parts.
func (p *SoilProfile) CalcNormalStress(depth float64) (float64, error) {
	idx := p.LayerIndex(depth)
	gwt := p.GroundWaterLevel

	total := 0.0
	prevDepth := 0.0
	for i := 0; i <= idx; i++ {
		layer := &p.Layers[i]
		thickness := layer.Thickness
		if i == idx {
			thickness = depth - prevDepth
		}

		if layer.DryUnitWeight <= 1.0 && layer.SaturatedUnitWeight <= 1.0 {
			return 0, Invalidf("layer %d needs a dry or saturated unit weight above 1 t/m³", i)
		}

		switch {
		case gwt >= prevDepth+thickness:
			total += layer.DryUnitWeight * thickness
		case gwt <= prevDepth:
			total += layer.SaturatedUnitWeight * thickness
		default:
			dry := gwt - prevDepth
			total += layer.DryUnitWeight*dry + layer.SaturatedUnitWeight*(thickness-dry)
		}
		prevDepth += thickness
	}
	return total, nil
}

// CalcEffectiveStress computes the effective vertical stress at depth in t/m²,
// subtracting pore pressure below the water table.
func (p *SoilProfile) CalcEffectiveStress(depth float64) (float64, error) {
	normal, err := p.CalcNormalStress(depth)
	if err != nil {
		return 0, err
	}
	if p.GroundWaterLevel >= depth {
		return normal, nil
	}
	return normal - (depth-p.GroundWaterLevel)*GammaWater, nil
}

// Validate checks the profile shape and the named fields of every layer.
func (p *SoilProfile) Validate(fields ...string) error {
	if len(p.Layers) == 0 {
		return Invalidf("soil profile must contain at least one layer")
	}
	for i := range p.Layers {
		if err := p.Layers[i].ValidateFields(fields...); err != nil {
			return err
		}
	}
	return RequireMin("ground_water_level", p.GroundWaterLevel, 0.0)
}
