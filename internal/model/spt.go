package model

import (
	"fmt"
	"math"
	"sort"
)

// SPTBlow is a single standard penetration test reading at a depth, together
// with the corrected counts derived from it. N60 corrects for hammer energy,
// N1_60 additionally for overburden, rod length, sampler and borehole
// diameter, and N1_60f for fine content.
type SPTBlow struct {
	Depth     float64 `json:"depth"`               // m
	Thickness float64 `json:"thickness,omitempty"` // m, derived
	N         NValue  `json:"n"`

	N60   NValue `json:"n60,omitempty"`
	N90   NValue `json:"n90,omitempty"`
	N160  NValue `json:"n1_60,omitempty"`
	N160F NValue `json:"n1_60f,omitempty"`

	Cn    float64 `json:"cn,omitempty"`
	Cr    float64 `json:"cr,omitempty"`
	Alpha float64 `json:"alpha,omitempty"`
	Beta  float64 `json:"beta,omitempty"`
}

// ApplyEnergyCorrection fills N60 (and N90) from the raw count.
func (b *SPTBlow) ApplyEnergyCorrection(ce float64) {
	b.N60 = b.N.MulF64(ce)
	b.N90 = b.N60.MulF64(1.5)
}

// setCn sets the overburden correction factor, capped at 1.7.
func (b *SPTBlow) setCn(sigmaEffective float64) {
	b.Cn = min(math.Sqrt(1.0/(9.81*sigmaEffective))*9.78, 1.7)
}

// setCr sets the rod length correction factor from depth.
func (b *SPTBlow) setCr() {
	switch {
	case b.Depth <= 4.0:
		b.Cr = 0.75
	case b.Depth <= 6.0:
		b.Cr = 0.85
	case b.Depth <= 10.0:
		b.Cr = 0.95
	default:
		b.Cr = 1.0
	}
}

// setAlphaBeta sets the fine content correction pair.
func (b *SPTBlow) setAlphaBeta(fineContent float64) {
	switch {
	case fineContent <= 5.0:
		b.Alpha = 0.0
		b.Beta = 1.0
	case fineContent <= 35.0:
		b.Alpha = math.Exp(1.76 - 190.0/(fineContent*fineContent))
		b.Beta = 0.99 + math.Pow(fineContent, 1.5)/1000.0
	default:
		b.Alpha = 5.0
		b.Beta = 1.2
	}
}

// ApplyCorrections derives all corrected counts for this blow. cs, cb and ce
// are the sampler, borehole diameter and energy correction factors.
func (b *SPTBlow) ApplyCorrections(profile *SoilProfile, cs, cb, ce float64) error {
	b.ApplyEnergyCorrection(ce)

	sigma, err := profile.CalcEffectiveStress(b.Depth)
	if err != nil {
		return err
	}
	b.setCn(sigma)
	b.setCr()
	b.setAlphaBeta(profile.LayerAt(b.Depth).FineContent)

	b.N160 = b.N60.MulF64(b.Cn * b.Cr * cs * cb)
	b.N160F = b.N160.MulF64(b.Beta).AddF64(b.Alpha)
	return nil
}

// Validate checks the named blow fields.
func (b *SPTBlow) Validate(fields ...string) error {
	for _, f := range fields {
		var err error
		switch f {
		case "depth":
			err = RequireMin("depth", b.Depth, 0.0)
		case "thickness":
			err = RequireMin("thickness", b.Thickness, 0.0)
		case "n":
			err = RequireMin("n", float64(b.N.Int()), 1.0)
		case "n60":
			err = RequireMin("n60", float64(b.N60.Int()), 1.0)
		default:
			err = Invalidf("unknown spt field %q", f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SPTExp is one borehole's ordered sequence of SPT blows.
type SPTExp struct {
	Name  string    `json:"name"`
	Blows []SPTBlow `json:"blows"`
}

// NewSPTExp builds an experiment from blows, enforcing strictly increasing
// depths.
func NewSPTExp(name string, blows []SPTBlow) (*SPTExp, error) {
	exp := &SPTExp{Name: name}
	for _, b := range blows {
		if err := exp.AddBlow(b.Depth, b.N); err != nil {
			return nil, err
		}
	}
	return exp, nil
}

// AddBlow appends a reading. Depths must strictly increase down the borehole.
func (e *SPTExp) AddBlow(depth float64, n NValue) error {
	if len(e.Blows) > 0 {
		prev := e.Blows[len(e.Blows)-1].Depth
		if depth <= prev {
			return fmt.Errorf("blow at %.2f m after %.2f m: %w", depth, prev, ErrOrdering)
		}
	}
	e.Blows = append(e.Blows, SPTBlow{Depth: depth, N: n})
	return nil
}

// ApplyEnergyCorrection fills N60/N90 on every blow.
func (e *SPTExp) ApplyEnergyCorrection(ce float64) {
	for i := range e.Blows {
		e.Blows[i].ApplyEnergyCorrection(ce)
	}
}

// CalcThicknesses assigns each blow the interval down from the previous one.
func (e *SPTExp) CalcThicknesses() {
	prev := 0.0
	for i := range e.Blows {
		e.Blows[i].Thickness = e.Blows[i].Depth - prev
		prev = e.Blows[i].Depth
	}
}

// ApplyCorrections derives corrected counts for every blow.
func (e *SPTExp) ApplyCorrections(profile *SoilProfile, cs, cb, ce float64) error {
	for i := range e.Blows {
		if err := e.Blows[i].ApplyCorrections(profile, cs, cb, ce); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every blow's named fields.
func (e *SPTExp) Validate(fields ...string) error {
	if len(e.Blows) == 0 {
		return Missingf("no blows provided for SPT experiment %q", e.Name)
	}
	for i := range e.Blows {
		if err := e.Blows[i].Validate(fields...); err != nil {
			return err
		}
	}
	return nil
}

// SPT is a collection of borehole experiments plus the correction factors and
// the method used to combine them into one idealized profile.
type SPT struct {
	Exps []SPTExp `json:"exps"`

	EnergyCorrectionFactor   float64 `json:"energy_correction_factor"`
	DiameterCorrectionFactor float64 `json:"diameter_correction_factor"`
	SamplerCorrectionFactor  float64 `json:"sampler_correction_factor"`

	IdealizationMethod SelectionMethod `json:"idealization_method"`
}

// NewSPT builds an empty SPT collection.
func NewSPT(ce, cb, cs float64, method SelectionMethod) *SPT {
	return &SPT{
		EnergyCorrectionFactor:   ce,
		DiameterCorrectionFactor: cb,
		SamplerCorrectionFactor:  cs,
		IdealizationMethod:       method,
	}
}

// AddExp appends a borehole experiment.
func (s *SPT) AddExp(exp SPTExp) {
	s.Exps = append(s.Exps, exp)
}

// IdealizedExp combines all experiments into one by grouping blows at equal
// depths and selecting per the idealization method. Averages round half up.
// Depths are emitted in ascending order.
func (s *SPT) IdealizedExp(name string) SPTExp {
	byDepth := make(map[float64][]NValue)
	for i := range s.Exps {
		for _, blow := range s.Exps[i].Blows {
			byDepth[blow.Depth] = append(byDepth[blow.Depth], blow.N)
		}
	}

	depths := make([]float64, 0, len(byDepth))
	for d := range byDepth {
		depths = append(depths, d)
	}
	sort.Float64s(depths)

	blows := make([]SPTBlow, 0, len(depths))
	for _, depth := range depths {
		ns := byDepth[depth]
		var selected NValue
		switch s.IdealizationMethod {
		case SelectionMin:
			selected = ns[0]
			for _, n := range ns[1:] {
				if n.Less(selected) {
					selected = n
				}
			}
		case SelectionMax:
			selected = ns[0]
			for _, n := range ns[1:] {
				if selected.Less(n) {
					selected = n
				}
			}
		default: // average, rounded half up
			sum := 0
			for _, n := range ns {
				sum += n.Int()
			}
			avg := float64(sum) / float64(len(ns))
			selected = NValue{value: int(math.Floor(avg + 0.5))}
		}
		blows = append(blows, SPTBlow{Depth: depth, N: selected})
	}
	return SPTExp{Name: name, Blows: blows}
}

// Validate checks the experiments and correction factors.
func (s *SPT) Validate(fields ...string) error {
	if len(s.Exps) == 0 {
		return Missingf("no experiments provided for SPT")
	}
	for i := range s.Exps {
		if err := s.Exps[i].Validate(fields...); err != nil {
			return err
		}
	}
	if err := RequireMin("energy_correction_factor", s.EnergyCorrectionFactor, 0.001); err != nil {
		return err
	}
	if err := RequireMin("diameter_correction_factor", s.DiameterCorrectionFactor, 0.001); err != nil {
		return err
	}
	return RequireMin("sampler_correction_factor", s.SamplerCorrectionFactor, 0.001)
}
