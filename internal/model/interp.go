package model

// Interp1D linearly interpolates y at x over the sorted xs/ys pairs, clamping
// to the end values outside the range. xs and ys must be the same length.
func Interp1D(xs, ys []float64, x float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	for i := 0; i+1 < len(xs); i++ {
		if x <= xs[i+1] {
			return ys[i] + (ys[i+1]-ys[i])*(x-xs[i])/(xs[i+1]-xs[i])
		}
	}
	return ys[len(ys)-1]
}
