package model

import "sort"

// CPTLayer is a single cone penetration test data point.
type CPTLayer struct {
	Depth          float64 `json:"depth"`                     // m
	ConeResistance float64 `json:"cone_resistance"`           // qc, MPa
	SleeveFriction float64 `json:"sleeve_friction,omitempty"` // fs, MPa
	PorePressure   float64 `json:"pore_pressure,omitempty"`   // u2, MPa
	FrictionRatio  float64 `json:"friction_ratio,omitempty"`  // Rf, %
}

// CalcFrictionRatio fills Rf = fs/qc in percent; left untouched when qc is
// zero.
func (l *CPTLayer) CalcFrictionRatio() {
	if l.ConeResistance != 0.0 {
		l.FrictionRatio = l.SleeveFriction / l.ConeResistance * 100.0
	}
}

// Validate checks the named fields.
func (l *CPTLayer) Validate(fields ...string) error {
	for _, f := range fields {
		var err error
		switch f {
		case "depth":
			err = RequireMin("depth", l.Depth, 0.0)
		case "cone_resistance":
			err = RequireMin("cone_resistance", l.ConeResistance, 0.0)
		case "sleeve_friction":
			err = RequireMin("sleeve_friction", l.SleeveFriction, 0.0)
		case "pore_pressure":
			err = RequireMin("pore_pressure", l.PorePressure, 0.0)
		case "friction_ratio":
			err = RequireMin("friction_ratio", l.FrictionRatio, 0.0)
		default:
			err = Invalidf("unknown cpt field %q", f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// CPTExp is one sounding's sequence of CPT data points.
type CPTExp struct {
	Name   string     `json:"name"`
	Layers []CPTLayer `json:"layers"`
}

// AddLayer appends a data point.
func (e *CPTExp) AddLayer(layer CPTLayer) {
	e.Layers = append(e.Layers, layer)
}

// LayerAt returns the first data point at or below the given depth, or the
// deepest one.
func (e *CPTExp) LayerAt(depth float64) *CPTLayer {
	for i := range e.Layers {
		if e.Layers[i].Depth >= depth {
			return &e.Layers[i]
		}
	}
	return &e.Layers[len(e.Layers)-1]
}

// Validate checks every data point's named fields.
func (e *CPTExp) Validate(fields ...string) error {
	if len(e.Layers) == 0 {
		return Missingf("no layers provided for CPT experiment %q", e.Name)
	}
	for i := range e.Layers {
		if err := e.Layers[i].Validate(fields...); err != nil {
			return err
		}
	}
	return nil
}

// CPT is a collection of cone penetration soundings with an idealization
// method.
type CPT struct {
	Exps               []CPTExp        `json:"exps"`
	IdealizationMethod SelectionMethod `json:"idealization_method"`
}

// AddExp appends a sounding.
func (c *CPT) AddExp(exp CPTExp) {
	c.Exps = append(c.Exps, exp)
}

// IdealizedExp merges the soundings over the union of recorded depths,
// sampling each sounding at every depth and selecting per the idealization
// method.
func (c *CPT) IdealizedExp(name string) CPTExp {
	depthSet := make(map[float64]struct{})
	for i := range c.Exps {
		for _, layer := range c.Exps[i].Layers {
			depthSet[layer.Depth] = struct{}{}
		}
	}
	depths := make([]float64, 0, len(depthSet))
	for d := range depthSet {
		depths = append(depths, d)
	}
	sort.Float64s(depths)

	var layers []CPTLayer
	for _, depth := range depths {
		var qc, fs, u2 []float64
		for i := range c.Exps {
			layer := c.Exps[i].LayerAt(depth)
			qc = append(qc, layer.ConeResistance)
			fs = append(fs, layer.SleeveFriction)
			u2 = append(u2, layer.PorePressure)
		}
		layers = append(layers, CPTLayer{
			Depth:          depth,
			ConeResistance: selectValue(qc, c.IdealizationMethod),
			SleeveFriction: selectValue(fs, c.IdealizationMethod),
			PorePressure:   selectValue(u2, c.IdealizationMethod),
		})
	}
	return CPTExp{Name: name, Layers: layers}
}

// Validate checks every sounding's named fields.
func (c *CPT) Validate(fields ...string) error {
	if len(c.Exps) == 0 {
		return Missingf("no experiments provided for CPT")
	}
	for i := range c.Exps {
		if err := c.Exps[i].Validate(fields...); err != nil {
			return err
		}
	}
	return nil
}
