package vesic

import (
	"math"

	"Soilworks/internal/model"
)

// Input is the Vesic general bearing capacity request.
type Input struct {
	SoilProfile model.SoilProfile `json:"soil_profile"`
	Foundation  model.Foundation  `json:"foundation"`
	Loads       model.Loads       `json:"loads"`

	FoundationPressure float64            `json:"foundation_pressure"` // t/m²
	FactorOfSafety     float64            `json:"factor_of_safety"`
	Term               model.AnalysisTerm `json:"term"`
}

// Factors are the Nc/Nq/Nγ bearing capacity factors.
type Factors struct {
	Nc float64 `json:"nc"`
	Nq float64 `json:"nq"`
	Ng float64 `json:"ng"`
}

// ShapeFactors modify the capacity for footing aspect ratio.
type ShapeFactors struct {
	Sc float64 `json:"sc"`
	Sq float64 `json:"sq"`
	Sg float64 `json:"sg"`
}

// DepthFactors modify the capacity for embedment.
type DepthFactors struct {
	Dc float64 `json:"dc"`
	Dq float64 `json:"dq"`
	Dg float64 `json:"dg"`
}

// InclinationFactors modify the capacity for inclined loading.
type InclinationFactors struct {
	Ic float64 `json:"ic"`
	Iq float64 `json:"iq"`
	Ig float64 `json:"ig"`
}

// BaseFactors modify the capacity for a tilted base.
type BaseFactors struct {
	Bc float64 `json:"bc"`
	Bq float64 `json:"bq"`
	Bg float64 `json:"bg"`
}

// GroundFactors modify the capacity for a sloping ground surface.
type GroundFactors struct {
	Gc float64 `json:"gc"`
	Gq float64 `json:"gq"`
	Gg float64 `json:"gg"`
}

// SoilParams are the strength parameters governing at the founding depth.
type SoilParams struct {
	FrictionAngle float64 `json:"friction_angle"` // deg
	Cohesion      float64 `json:"cohesion"`       // t/m²
	UnitWeight    float64 `json:"unit_weight"`    // t/m³
}

// Result carries the full factor breakdown plus the ultimate and allowable
// bearing capacities in t/m².
type Result struct {
	Factors            Factors            `json:"bearing_capacity_factors"`
	ShapeFactors       ShapeFactors       `json:"shape_factors"`
	DepthFactors       DepthFactors       `json:"depth_factors"`
	InclinationFactors InclinationFactors `json:"load_inclination_factors"`
	GroundFactors      GroundFactors      `json:"ground_factors"`
	BaseFactors        BaseFactors        `json:"base_factors"`
	SoilParams         SoilParams         `json:"soil_params"`

	UltimateBearingCapacity  float64 `json:"ultimate_bearing_capacity"`
	AllowableBearingCapacity float64 `json:"allowable_bearing_capacity"`
	Qmax                     float64 `json:"qmax"`
	IsSafe                   bool    `json:"is_safe"`
}

func validateInput(in *Input) error {
	if err := in.SoilProfile.Validate("thickness", "dry_unit_weight", "saturated_unit_weight"); err != nil {
		return err
	}
	if err := in.Foundation.Validate("foundation_depth", "foundation_width", "foundation_length"); err != nil {
		return err
	}
	if err := in.Loads.Validate("vertical_load"); err != nil {
		return err
	}
	if err := model.RequireMin("factor_of_safety", in.FactorOfSafety, 1.0); err != nil {
		return err
	}

	last := in.SoilProfile.Layers[len(in.SoilProfile.Layers)-1]
	if last.Depth < in.Foundation.Depth {
		return model.Missingf("soil profile ends at %.2f m, above the founding depth %.2f m", last.Depth, in.Foundation.Depth)
	}

	for i := range in.SoilProfile.Layers {
		layer := &in.SoilProfile.Layers[i]
		if in.Term == model.TermShort {
			if err := layer.ValidateFields("cu", "phi_u"); err != nil {
				return err
			}
			if layer.Cu == 0.0 && layer.PhiU == 0.0 {
				return model.Invalidf("layer %d needs cu or phi_u above zero for short term analysis", i)
			}
		} else {
			if err := layer.ValidateFields("c_prime", "phi_prime"); err != nil {
				return err
			}
			if layer.CPrime == 0.0 && layer.PhiPrime == 0.0 {
				return model.Invalidf("layer %d needs c_prime or phi_prime above zero for long term analysis", i)
			}
		}
	}
	return nil
}

// CalcFactors computes Nc, Nq and Nγ from the friction angle in degrees.
func CalcFactors(phi float64) Factors {
	phiRad := phi * math.Pi / 180.0
	tanPhi := math.Tan(phiRad)

	nq := math.Exp(math.Pi*tanPhi) * math.Pow(math.Tan((45.0+phi/2.0)*math.Pi/180.0), 2)

	nc := 5.14
	if phi != 0.0 {
		nc = (nq - 1.0) / tanPhi
	}

	return Factors{Nc: nc, Nq: nq, Ng: 2.0 * (nq - 1.0) * tanPhi}
}

// CalcShapeFactors computes Sc, Sq, Sγ from the footing aspect ratio.
func CalcShapeFactors(f *model.Foundation, factors Factors, phi float64) ShapeFactors {
	wl := f.Width / f.Length

	sc := 0.2 * wl
	if phi != 0.0 {
		sc = 1.0 + wl*(factors.Nq/factors.Nc)
	}
	sq := 1.0 + wl*math.Sin(phi*math.Pi/180.0)
	sg := max(1.0-0.4*wl, 0.6)

	return ShapeFactors{Sc: sc, Sq: sq, Sg: sg}
}

// CalcDepthFactors computes Dc, Dq, Dγ from the embedment ratio.
func CalcDepthFactors(f *model.Foundation, phi float64) DepthFactors {
	db := f.Depth / f.Width
	if db > 1.0 {
		db = math.Atan(db * math.Pi / 180.0)
	}

	phiRad := phi * math.Pi / 180.0
	tanPhi := math.Tan(phiRad)
	sinPhi := math.Sin(phiRad)

	dc := 0.4 * db
	if phi != 0.0 {
		dc = 1.0 + 0.4*db
	}
	dq := 1.0 + 2.0*tanPhi*math.Pow(1.0-sinPhi, 2)*db

	return DepthFactors{Dc: dc, Dq: dq, Dg: 1.0}
}

// CalcInclinationFactors computes Ic, Iq, Iγ for inclined loading.
func CalcInclinationFactors(phi, cohesion float64, factors Factors, f *model.Foundation, loads *model.Loads) InclinationFactors {
	w, l := f.Width, f.Length
	hb, hl := loads.HorizontalX, loads.HorizontalY
	hi := hb + hl

	area := f.EffectiveLength * f.EffectiveWidth
	ca := cohesion * 0.75

	mb := (2.0 + w/l) / (1.0 + w/l)
	ml := (2.0 + l/w) / (1.0 + l/w)
	m := math.Sqrt(mb*mb + ml*ml)
	if hb == 0.0 {
		m = ml
	} else if hl == 0.0 {
		m = mb
	}

	if phi == 0.0 {
		return InclinationFactors{
			Ic: 1.0 - m*hi/(area*ca*factors.Nc),
			Iq: 1.0,
			Ig: 1.0,
		}
	}

	tanPhi := math.Tan(phi * math.Pi / 180.0)
	base := 1.0 - hi/(loads.VerticalLoad+area*ca/tanPhi)
	iq := math.Pow(base, m)

	return InclinationFactors{
		Ic: iq - (1.0-iq)/(factors.Nq-1.0),
		Iq: iq,
		Ig: math.Pow(base, m+1.0),
	}
}

// CalcBaseFactors computes Bc, Bq, Bγ for a tilted base on sloping ground.
func CalcBaseFactors(phi float64, f *model.Foundation) BaseFactors {
	slopeRad := f.SlopeAngle * math.Pi / 180.0
	baseRad := f.BaseTiltAngle * math.Pi / 180.0
	phiRad := phi * math.Pi / 180.0

	bc := slopeRad / 5.14
	if phi != 0.0 {
		bc = 1.0 - 2.0*slopeRad/(5.14*math.Tan(phiRad))
	}
	bq := math.Pow(1.0-baseRad*math.Tan(phiRad), 2)

	return BaseFactors{Bc: bc, Bq: bq, Bg: bq}
}

// CalcGroundFactors computes Gc, Gq, Gγ for a sloping ground surface.
func CalcGroundFactors(iq, slopeAngle, phi float64) GroundFactors {
	slopeRad := slopeAngle * math.Pi / 180.0
	phiRad := phi * math.Pi / 180.0

	gc := slopeRad / 5.14
	if phi != 0.0 {
		gc = iq - (1.0-iq)/(5.14*math.Tan(phiRad))
	}
	tanBeta := math.Tan(slopeRad)
	gq := math.Pow(1.0-tanBeta, 2)

	return GroundFactors{Gc: gc, Gq: gq, Gg: gq}
}

// Calculate evaluates Vesic's general bearing capacity equation for the
// governing layer at the founding depth and checks the applied pressure
// against the allowable capacity.
func Calculate(in Input) (Result, error) {
	if err := in.SoilProfile.CalcLayerDepths(); err != nil {
		return Result{}, err
	}
	if err := validateInput(&in); err != nil {
		return Result{}, err
	}
	ex, ey := in.Loads.CalcEccentricity()
	in.Foundation.CalcEffectiveLengths(ex, ey)

	params, err := soilParams(&in.SoilProfile, &in.Foundation, in.Term)
	if err != nil {
		return Result{}, err
	}
	phi := params.FrictionAngle
	cohesion := params.Cohesion

	surcharge, err := effectiveSurcharge(&in.SoilProfile, &in.Foundation, in.Term)
	if err != nil {
		return Result{}, err
	}

	factors := CalcFactors(phi)
	shape := CalcShapeFactors(&in.Foundation, factors, phi)
	inclination := CalcInclinationFactors(phi, cohesion, factors, &in.Foundation, &in.Loads)
	depth := CalcDepthFactors(&in.Foundation, phi)
	base := CalcBaseFactors(phi, &in.Foundation)
	ground := CalcGroundFactors(inclination.Iq, in.Foundation.SlopeAngle, phi)

	var qUlt float64
	if phi == 0.0 {
		qUlt = 5.14*cohesion*(1.0+shape.Sc+depth.Dc-inclination.Ic-base.Bc-ground.Gc) + surcharge
	} else {
		part1 := cohesion * factors.Nc * shape.Sc * depth.Dc * base.Bc * ground.Gc * inclination.Ic
		part2 := surcharge * factors.Nq * shape.Sq * depth.Dq * base.Bq * ground.Gq * inclination.Iq
		part3 := 0.5 * params.UnitWeight * in.Foundation.EffectiveWidth *
			factors.Ng * shape.Sg * depth.Dg * base.Bg * ground.Gg * inclination.Ig
		qUlt = part1 + part2 + part3
	}

	qAllow := qUlt / in.FactorOfSafety

	return Result{
		Factors:            factors,
		ShapeFactors:       shape,
		DepthFactors:       depth,
		InclinationFactors: inclination,
		GroundFactors:      ground,
		BaseFactors:        base,
		SoilParams:         params,

		UltimateBearingCapacity:  qUlt,
		AllowableBearingCapacity: qAllow,
		Qmax:                     in.FoundationPressure,
		IsSafe:                   in.FoundationPressure <= qAllow,
	}, nil
}
