package metrics

import "github.com/san-kum/lifelab/internal/life"

// Density reports the alive fraction of the last observed epoch.
type Density struct {
	last float64
}

func NewDensity() *Density { return &Density{} }

func (m *Density) Name() string { return "density" }

func (m *Density) Observe(f *life.Field, epoch int) {
	cells := f.Width() * f.Height()
	m.last = float64(f.Population()) / float64(cells)
}

func (m *Density) Value() float64 { return m.last }
func (m *Density) Reset()         { m.last = 0 }
