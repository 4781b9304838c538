package metrics

import "github.com/san-kum/lifelab/internal/life"

// Population reports the alive-cell count of the last observed epoch.
type Population struct {
	last float64
}

func NewPopulation() *Population { return &Population{} }

func (m *Population) Name() string { return "population" }

func (m *Population) Observe(f *life.Field, epoch int) {
	m.last = float64(f.Population())
}

func (m *Population) Value() float64 { return m.last }
func (m *Population) Reset()         { m.last = 0 }

// PeakPopulation reports the highest alive-cell count seen during a run.
type PeakPopulation struct {
	peak float64
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{} }

func (m *PeakPopulation) Name() string { return "peak_population" }

func (m *PeakPopulation) Observe(f *life.Field, epoch int) {
	if p := float64(f.Population()); p > m.peak {
		m.peak = p
	}
}

func (m *PeakPopulation) Value() float64 { return m.peak }
func (m *PeakPopulation) Reset()         { m.peak = 0 }
