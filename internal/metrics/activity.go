package metrics

import "github.com/san-kum/lifelab/internal/life"

// Activity reports how many cells flipped between the last two observed
// epochs. Zero after a run means the field reached a still life.
type Activity struct {
	prev  *life.Field
	flips float64
}

func NewActivity() *Activity { return &Activity{} }

func (m *Activity) Name() string { return "activity" }

func (m *Activity) Observe(f *life.Field, epoch int) {
	if m.prev != nil && m.prev.Width() == f.Width() && m.prev.Height() == f.Height() {
		flips := 0
		for y := 0; y < f.Height(); y++ {
			for x := 0; x < f.Width(); x++ {
				if f.Get(x, y) != m.prev.Get(x, y) {
					flips++
				}
			}
		}
		m.flips = float64(flips)
	}
	m.prev = f.Clone()
}

func (m *Activity) Value() float64 { return m.flips }

func (m *Activity) Reset() {
	m.prev = nil
	m.flips = 0
}
