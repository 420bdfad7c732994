package model

import "sort"

// PointLoadSample is one point load test on a rock core: the size-corrected
// strength index Is50 and the equivalent core diameter.
type PointLoadSample struct {
	Depth    float64 `json:"depth"` // m
	SampleNo int     `json:"sample_no,omitempty"`
	P        float64 `json:"p,omitempty"`  // failure load, kN
	Is       float64 `json:"is,omitempty"` // uncorrected strength index, MPa
	F        float64 `json:"f,omitempty"`  // size correction factor
	Is50     float64 `json:"is50"`         // corrected strength index, MPa
	L        float64 `json:"l,omitempty"`  // platen separation, mm
	D        float64 `json:"d"`            // equivalent core diameter, mm
}

// Validate checks the named sample fields.
func (s *PointLoadSample) Validate(fields ...string) error {
	for _, f := range fields {
		var err error
		switch f {
		case "depth":
			err = RequireMin("depth", s.Depth, 0.0)
		case "sample_no":
			err = RequireMin("sample_no", float64(s.SampleNo), 0.0)
		case "p":
			err = RequireMin("p", s.P, 0.0001)
		case "is":
			err = RequireMin("is", s.Is, 0.00001)
		case "f":
			err = RequireMin("f", s.F, 0.00001)
		case "is50":
			err = RequireMin("is50", s.Is50, 0.00001)
		case "l":
			err = RequireMin("l", s.L, 0.00001)
		case "d":
			err = RequireMin("d", s.D, 0.00001)
		default:
			err = Invalidf("unknown point load field %q", f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// PointLoadExp is one borehole's point load samples.
type PointLoadExp struct {
	BoreholeID string            `json:"borehole_id"`
	Samples    []PointLoadSample `json:"samples"`
}

// AddSample appends a sample.
func (e *PointLoadExp) AddSample(s PointLoadSample) {
	e.Samples = append(e.Samples, s)
}

// SampleAt returns the first sample at or below the given depth, or the
// deepest one.
func (e *PointLoadExp) SampleAt(depth float64) *PointLoadSample {
	for i := range e.Samples {
		if e.Samples[i].Depth >= depth {
			return &e.Samples[i]
		}
	}
	return &e.Samples[len(e.Samples)-1]
}

// Validate checks every sample's named fields.
func (e *PointLoadExp) Validate(fields ...string) error {
	if len(e.Samples) == 0 {
		return Missingf("no samples provided for point load experiment %q", e.BoreholeID)
	}
	for i := range e.Samples {
		if err := e.Samples[i].Validate(fields...); err != nil {
			return err
		}
	}
	return nil
}

// PointLoadTest is the whole campaign across boreholes, combined per the
// idealization method.
type PointLoadTest struct {
	Exps               []PointLoadExp  `json:"exps"`
	IdealizationMethod SelectionMethod `json:"idealization_method"`
}

// AddBorehole appends a borehole's samples.
func (t *PointLoadTest) AddBorehole(exp PointLoadExp) {
	t.Exps = append(t.Exps, exp)
}

// IdealizedExp groups samples at equal depths and selects the (Is50, D) pair
// per the idealization method; averages average both values, min/max pick the
// pair with the extreme Is50.
func (t *PointLoadTest) IdealizedExp(name string) PointLoadExp {
	type pair struct{ is50, d float64 }
	byDepth := make(map[float64][]pair)
	for i := range t.Exps {
		for _, s := range t.Exps[i].Samples {
			byDepth[s.Depth] = append(byDepth[s.Depth], pair{s.Is50, s.D})
		}
	}

	depths := make([]float64, 0, len(byDepth))
	for d := range byDepth {
		depths = append(depths, d)
	}
	sort.Float64s(depths)

	samples := make([]PointLoadSample, 0, len(depths))
	for _, depth := range depths {
		pairs := byDepth[depth]
		selected := pairs[0]
		switch t.IdealizationMethod {
		case SelectionMin:
			for _, p := range pairs[1:] {
				if p.is50 < selected.is50 {
					selected = p
				}
			}
		case SelectionMax:
			for _, p := range pairs[1:] {
				if p.is50 > selected.is50 {
					selected = p
				}
			}
		default:
			sumIs50, sumD := 0.0, 0.0
			for _, p := range pairs {
				sumIs50 += p.is50
				sumD += p.d
			}
			n := float64(len(pairs))
			selected = pair{sumIs50 / n, sumD / n}
		}
		samples = append(samples, PointLoadSample{Depth: depth, Is50: selected.is50, D: selected.d})
	}
	return PointLoadExp{BoreholeID: name, Samples: samples}
}

// Validate checks every borehole's named fields.
func (t *PointLoadTest) Validate(fields ...string) error {
	if len(t.Exps) == 0 {
		return Missingf("no experiments provided for point load test")
	}
	for i := range t.Exps {
		if err := t.Exps[i].Validate(fields...); err != nil {
			return err
		}
	}
	return nil
}
