// Package metrics reduces a run's epoch-by-epoch field states to summary
// values reported alongside the stored run.
package metrics

import "github.com/san-kum/lifelab/internal/life"

// Metric observes the field after every epoch and reduces to one value.
type Metric interface {
	Name() string
	Observe(f *life.Field, epoch int)
	Value() float64
	Reset()
}

// Default returns the standard metric set for a run.
func Default() []Metric {
	return []Metric{
		NewPopulation(),
		NewPeakPopulation(),
		NewDensity(),
		NewActivity(),
	}
}
