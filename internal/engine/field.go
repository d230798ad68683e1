package engine

// Field is a dense rows x cols grid of samples stored row-major in a single
// buffer. Row index runs along v, column index along u. A Field is never
// mutated once the engine hands it out; accessors copy.
type Field struct {
	rows, cols int
	data       []float64
}

func newField(rows, cols int) Field {
	return Field{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// Rows returns the number of rows (v samples).
func (f Field) Rows() int { return f.rows }

// Cols returns the number of columns (u samples).
func (f Field) Cols() int { return f.cols }

// At returns the sample at row i, column j.
func (f Field) At(i, j int) float64 {
	return f.data[i*f.cols+j]
}

func (f Field) set(i, j int, v float64) {
	f.data[i*f.cols+j] = v
}

// Row returns a copy of row i.
func (f Field) Row(i int) []float64 {
	out := make([]float64, f.cols)
	copy(out, f.data[i*f.cols:(i+1)*f.cols])
	return out
}

// Col returns a copy of column j.
func (f Field) Col(j int) []float64 {
	out := make([]float64, f.rows)
	for i := 0; i < f.rows; i++ {
		out[i] = f.data[i*f.cols+j]
	}
	return out
}

// Rows2D returns a nested-slice copy, convenient for exporters.
func (f Field) Rows2D() [][]float64 {
	out := make([][]float64, f.rows)
	for i := range out {
		out[i] = f.Row(i)
	}
	return out
}

// Clone returns a deep copy.
func (f Field) Clone() Field {
	data := make([]float64, len(f.data))
	copy(data, f.data)
	return Field{rows: f.rows, cols: f.cols, data: data}
}

// MinMax returns the smallest and largest samples.
func (f Field) MinMax() (min, max float64) {
	if len(f.data) == 0 {
		return 0, 0
	}
	min, max = f.data[0], f.data[0]
	for _, v := range f.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
