package model

// SelectionMethod picks one value out of several parallel measurements when
// idealizing a set of experiments, and doubles as the load severity selector.
type SelectionMethod string

const (
	SelectionMin SelectionMethod = "min"
	SelectionAvg SelectionMethod = "avg"
	SelectionMax SelectionMethod = "max"
)

// LoadCase selects which load combination drives a check.
//
// G: dead load, Q: live load, E: earthquake load.
type LoadCase string

const (
	ServiceLoad  LoadCase = "service"  // G + Q
	UltimateLoad LoadCase = "ultimate" // 1.4G + 1.6Q
	SeismicLoad  LoadCase = "seismic"  // G + Q + E / 0.9G + E
)

// AnalysisTerm distinguishes undrained (short) from drained (long) soil
// strength parameters.
type AnalysisTerm string

const (
	TermShort AnalysisTerm = "short"
	TermLong  AnalysisTerm = "long"
)
