package harness

// Pair holds the two phase timings extracted from one trial, in milliseconds.
type Pair struct {
	Generate float64 `json:"generate_ms"`
	Copy     float64 `json:"copy_ms"`
}

// Series is the ordered collection of per-trial timing pairs for one batch.
type Series []Pair

// Generates returns the generate-phase column of the series.
func (s Series) Generates() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Generate
	}
	return out
}

// Copies returns the copy-phase column of the series.
func (s Series) Copies() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Copy
	}
	return out
}
