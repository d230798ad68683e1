package engine

// Gradient1D estimates df/dx for samples f taken at uniform spacing h:
// second-order central differences in the interior and first-order
// one-sided differences at both ends. len(f) must be at least 2.
func Gradient1D(f []float64, h float64) []float64 {
	n := len(f)
	g := make([]float64, n)
	g[0] = (f[1] - f[0]) / h
	g[n-1] = (f[n-1] - f[n-2]) / h
	for k := 1; k < n-1; k++ {
		g[k] = (f[k+1] - f[k-1]) / (2 * h)
	}
	return g
}

// GradientAlongU differentiates each row of f (the u direction) with column
// spacing du.
func GradientAlongU(f Field, du float64) Field {
	out := newField(f.rows, f.cols)
	for i := 0; i < f.rows; i++ {
		copy(out.data[i*f.cols:(i+1)*f.cols], Gradient1D(f.data[i*f.cols:(i+1)*f.cols], du))
	}
	return out
}

// GradientAlongV differentiates each column of f (the v direction) with row
// spacing dv.
func GradientAlongV(f Field, dv float64) Field {
	out := newField(f.rows, f.cols)
	for j := 0; j < f.cols; j++ {
		g := Gradient1D(f.Col(j), dv)
		for i, v := range g {
			out.set(i, j, v)
		}
	}
	return out
}
