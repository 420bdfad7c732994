package model

import "sort"

// MASWLayer is one layer of a surface-wave survey: thickness plus shear and
// compressional wave velocities.
type MASWLayer struct {
	Thickness float64 `json:"thickness"`       // m
	Vs        float64 `json:"vs"`              // m/s
	Vp        float64 `json:"vp,omitempty"`    // m/s
	Depth     float64 `json:"depth,omitempty"` // m, derived
}

// Validate checks the named layer fields.
func (l *MASWLayer) Validate(fields ...string) error {
	for _, f := range fields {
		var err error
		switch f {
		case "depth":
			err = RequireMin("depth", l.Depth, 0.0)
		case "thickness":
			err = RequireMin("thickness", l.Thickness, 0.0001)
		case "vs":
			err = RequireMin("vs", l.Vs, 0.0)
		case "vp":
			err = RequireMin("vp", l.Vp, 0.0)
		default:
			err = Invalidf("unknown masw field %q", f)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// MASWExp is a single surface-wave sounding, layers top to bottom.
type MASWExp struct {
	Name   string      `json:"name"`
	Layers []MASWLayer `json:"layers"`
}

// NewMASWExp builds an experiment and assigns cumulative layer depths.
func NewMASWExp(name string, layers []MASWLayer) (*MASWExp, error) {
	exp := &MASWExp{Name: name, Layers: layers}
	if err := exp.CalcDepths(); err != nil {
		return nil, err
	}
	return exp, nil
}

// CalcDepths assigns each layer its bottom depth from cumulative thicknesses.
func (e *MASWExp) CalcDepths() error {
	bottom := 0.0
	for i := range e.Layers {
		if e.Layers[i].Thickness <= 0.0 {
			return Invalidf("masw layer %d thickness must be greater than zero", i)
		}
		e.Layers[i].Depth = bottom + e.Layers[i].Thickness
		bottom = e.Layers[i].Depth
	}
	return nil
}

// LayerAt returns the layer containing the given depth, or the deepest layer
// for depths below the sounding. Returns nil when the sounding has no layers.
func (e *MASWExp) LayerAt(depth float64) *MASWLayer {
	if len(e.Layers) == 0 {
		return nil
	}
	for i := range e.Layers {
		if e.Layers[i].Depth >= depth {
			return &e.Layers[i]
		}
	}
	return &e.Layers[len(e.Layers)-1]
}

// Validate checks every layer's named fields.
func (e *MASWExp) Validate(fields ...string) error {
	if len(e.Layers) == 0 {
		return Missingf("no layers provided for MASW experiment %q", e.Name)
	}
	for i := range e.Layers {
		if err := e.Layers[i].Validate(fields...); err != nil {
			return err
		}
	}
	return nil
}

// MASW is a collection of surface-wave soundings with an idealization method.
type MASW struct {
	Exps               []MASWExp       `json:"exps"`
	IdealizationMethod SelectionMethod `json:"idealization_method"`
}

// NewMASW builds the collection and assigns depths on every sounding.
func NewMASW(exps []MASWExp, method SelectionMethod) (*MASW, error) {
	m := &MASW{Exps: exps, IdealizationMethod: method}
	if err := m.CalcDepths(); err != nil {
		return nil, err
	}
	return m, nil
}

// AddExp appends a sounding.
func (m *MASW) AddExp(exp MASWExp) {
	m.Exps = append(m.Exps, exp)
}

// CalcDepths assigns depths on every sounding.
func (m *MASW) CalcDepths() error {
	for i := range m.Exps {
		if err := m.Exps[i].CalcDepths(); err != nil {
			return err
		}
	}
	return nil
}

// IdealizedExp merges the soundings into one experiment over the union of all
// layer boundaries, sampling each sounding at the mid-depth of every interval
// and selecting per the idealization method.
func (m *MASW) IdealizedExp(name string) MASWExp {
	depthSet := map[float64]struct{}{0.0: {}}
	for i := range m.Exps {
		for _, layer := range m.Exps[i].Layers {
			depthSet[layer.Depth] = struct{}{}
		}
	}
	depths := make([]float64, 0, len(depthSet))
	for d := range depthSet {
		depths = append(depths, d)
	}
	sort.Float64s(depths)

	var layers []MASWLayer
	for i := 0; i+1 < len(depths); i++ {
		top, bottom := depths[i], depths[i+1]
		mid := (top + bottom) / 2.0

		var vsVals, vpVals []float64
		for j := range m.Exps {
			layer := m.Exps[j].LayerAt(mid)
			if layer == nil {
				continue
			}
			vsVals = append(vsVals, layer.Vs)
			vpVals = append(vpVals, layer.Vp)
		}
		layers = append(layers, MASWLayer{
			Thickness: bottom - top,
			Vs:        selectValue(vsVals, m.IdealizationMethod),
			Vp:        selectValue(vpVals, m.IdealizationMethod),
		})
	}

	exp := MASWExp{Name: name, Layers: layers}
	exp.CalcDepths()
	return exp
}

// Validate checks every sounding's named fields.
func (m *MASW) Validate(fields ...string) error {
	if len(m.Exps) == 0 {
		return Missingf("no experiments provided for MASW")
	}
	for i := range m.Exps {
		if err := m.Exps[i].Validate(fields...); err != nil {
			return err
		}
	}
	return nil
}

// selectValue reduces parallel measurements per the selection method.
func selectValue(values []float64, method SelectionMethod) float64 {
	if len(values) == 0 {
		return 0.0
	}
	switch method {
	case SelectionMin:
		v := values[0]
		for _, x := range values[1:] {
			v = min(v, x)
		}
		return v
	case SelectionMax:
		v := values[0]
		for _, x := range values[1:] {
			v = max(v, x)
		}
		return v
	default:
		sum := 0.0
		for _, x := range values {
			sum += x
		}
		return sum / float64(len(values))
	}
}
