package pattern_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifelab/internal/life"
	"github.com/san-kum/lifelab/internal/pattern"
)

func newField(w, h int) *life.Field {
	f, err := life.New(w, h)
	Expect(err).NotTo(HaveOccurred())
	return f
}

var _ = Describe("Registry", func() {
	It("resolves every registered name", func() {
		for _, name := range pattern.Names() {
			mask, err := pattern.Get(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(mask).NotTo(BeEmpty())
		}
	})

	It("rejects unknown names", func() {
		_, err := pattern.Get("r-pentomino")
		Expect(err).To(MatchError(ContainSubstring("unknown pattern")))
	})

	It("reports mask sizes", func() {
		w, h := pattern.Size(pattern.Glider)
		Expect(w).To(Equal(3))
		Expect(h).To(Equal(3))

		w, h = pattern.Size(pattern.Pulsar)
		Expect(w).To(Equal(17))
		Expect(h).To(Equal(17))

		w, h = pattern.Size(pattern.GosperGliderGun)
		Expect(w).To(Equal(38))
		Expect(h).To(Equal(10))
	})
})

var _ = Describe("Block", func() {
	It("is a still life", func() {
		f := newField(6, 6)
		f.SetPattern(pattern.Block, 2, 2)
		want := f.Clone()

		for i := 0; i < 10; i++ {
			f.Update()
		}
		Expect(f.Equal(want)).To(BeTrue())
	})
})

var _ = Describe("Blinker", func() {
	It("oscillates with period 2", func() {
		f := newField(7, 7)
		f.SetPattern(pattern.Blinker, 2, 3)
		want := f.Clone()

		f.Update()
		Expect(f.Equal(want)).To(BeFalse())
		f.Update()
		Expect(f.Equal(want)).To(BeTrue())
	})
})

var _ = Describe("Pulsar", func() {
	It("oscillates with period 3", func() {
		f := newField(20, 20)
		f.SetPattern(pattern.Pulsar, 0, 0)
		want := f.Clone()

		f.Update()
		Expect(f.Equal(want)).To(BeFalse())
		f.Update()
		f.Update()
		Expect(f.Equal(want)).To(BeTrue())
	})
})

var _ = Describe("Glider", func() {
	It("reappears translated by (1,1) after 4 epochs", func() {
		f := newField(8, 8)
		f.SetPattern(pattern.Glider, 0, 0)
		for i := 0; i < 4; i++ {
			f.Update()
		}

		want := newField(8, 8)
		want.SetPattern(pattern.Glider, 1, 1)
		Expect(f.Equal(want)).To(BeTrue())
	})

	It("circumnavigates a torus back to its start", func() {
		// 4 epochs move the glider one cell diagonally; on an 8x8 torus
		// 32 epochs bring it home.
		f := newField(8, 8)
		f.SetPattern(pattern.Glider, 0, 0)
		want := f.Clone()

		for i := 0; i < 32; i++ {
			f.Update()
		}
		Expect(f.Equal(want)).To(BeTrue())
	})
})

var _ = Describe("Gosper glider gun", func() {
	It("grows the population by emitting gliders", func() {
		f := newField(70, 30)
		f.SetPattern(pattern.GosperGliderGun, 0, 0)
		initial := f.Population()

		for i := 0; i < 60; i++ {
			f.Update()
		}
		Expect(f.Population()).To(BeNumerically(">", initial))
	})
})
