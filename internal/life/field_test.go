package life

import (
	"errors"
	"strings"
	"testing"
)

func TestNew_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		substr string
	}{
		{"zero width", 0, 10, "width"},
		{"zero height", 10, 0, "height"},
		{"negative width", -3, 10, "width"},
		{"negative height", 10, -3, "height"},
	}

	for _, tt := range tests {
		_, err := New(tt.w, tt.h)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("%s: expected ErrInvalidDimension, got %v", tt.name, err)
		}
		if err != nil && !strings.Contains(err.Error(), tt.substr) {
			t.Errorf("%s: error should name the %s, got %q", tt.name, tt.substr, err)
		}
	}

	f, err := New(1, 1)
	if err != nil {
		t.Fatalf("1x1 field should be valid, got %v", err)
	}
	if f.Width() != 1 || f.Height() != 1 {
		t.Errorf("expected 1x1, got %dx%d", f.Width(), f.Height())
	}
}

func TestWrapping(t *testing.T) {
	f, _ := New(5, 3)
	f.Set(2, 1, true)

	for k := -3; k <= 3; k++ {
		if !f.Get(2+k*5, 1+k*3) {
			t.Errorf("get(%d, %d) should wrap onto (2, 1)", 2+k*5, 1+k*3)
		}
	}

	f.Set(-1, -1, true)
	if !f.Get(4, 2) {
		t.Error("set(-1, -1) should wrap onto (4, 2)")
	}
}

func TestRandomize_InvalidProbability(t *testing.T) {
	f, _ := New(4, 4)
	for _, p := range []float64{-0.1, 1.1, 2.0} {
		if err := f.Randomize(p, 1); !errors.Is(err, ErrInvalidProbability) {
			t.Errorf("probability %v: expected ErrInvalidProbability, got %v", p, err)
		}
	}
}

func TestRandomize_Boundaries(t *testing.T) {
	f, _ := New(8, 8)

	if err := f.Randomize(1, 7); err != nil {
		t.Fatal(err)
	}
	if f.Population() != 64 {
		t.Errorf("probability 1 should fill the field, population %d", f.Population())
	}

	if err := f.Randomize(0, 7); err != nil {
		t.Fatal(err)
	}
	if f.Population() != 0 {
		t.Errorf("probability 0 should empty the field, population %d", f.Population())
	}
}

func TestRandomize_Deterministic(t *testing.T) {
	a, _ := New(20, 20)
	b, _ := New(20, 20)

	if err := a.Randomize(0.5, 42); err != nil {
		t.Fatal(err)
	}
	if err := b.Randomize(0.5, 42); err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) {
		t.Error("same seed and probability should reproduce identical fields")
	}
}

func TestUpdate_LoneCellDies(t *testing.T) {
	f, _ := New(5, 5)
	f.Set(2, 2, true)
	f.Update()
	if f.Population() != 0 {
		t.Errorf("isolated cell should die, population %d", f.Population())
	}
}

func TestUpdate_BlockIsStable(t *testing.T) {
	f, _ := New(6, 6)
	f.SetPattern([]string{
		"XX",
		"XX",
	}, 2, 2)
	want := f.Clone()

	for i := 0; i < 5; i++ {
		f.Update()
		if !f.Equal(want) {
			t.Fatalf("block changed after %d updates:\n%s", i+1, f)
		}
	}
}

func TestUpdate_BlinkerOscillates(t *testing.T) {
	f, _ := New(5, 5)
	f.SetPattern([]string{"XXX"}, 1, 2)

	f.Update()
	for y := 1; y <= 3; y++ {
		if !f.Get(2, y) {
			t.Fatalf("expected vertical blinker, cell (2,%d) dead:\n%s", y, f)
		}
	}
	if f.Population() != 3 {
		t.Fatalf("blinker population should stay 3, got %d", f.Population())
	}

	f.Update()
	for x := 1; x <= 3; x++ {
		if !f.Get(x, 2) {
			t.Fatalf("expected horizontal blinker, cell (%d,2) dead:\n%s", x, f)
		}
	}
}

func TestUpdate_TwoNeighboursLeaveCellUnchanged(t *testing.T) {
	// Dead cell flanked by exactly two alive neighbours must stay dead;
	// the birth-on-2-or-3 mistake would bring it alive.
	f, _ := New(7, 7)
	f.Set(2, 3, true)
	f.Set(4, 3, true)
	f.Update()
	if f.Get(3, 3) {
		t.Error("dead cell with 2 neighbours must stay dead")
	}

	// Alive cell with exactly two alive neighbours survives.
	f.Clear()
	f.SetPattern([]string{"XXX"}, 2, 3)
	f.Update()
	if !f.Get(3, 3) {
		t.Error("alive cell with 2 neighbours must survive")
	}
}

func TestUpdate_GliderReturnsTranslated(t *testing.T) {
	glider := []string{
		".X.",
		"..X",
		"XXX",
	}

	f, _ := New(8, 8)
	f.SetPattern(glider, 0, 0)

	for i := 0; i < 4; i++ {
		f.Update()
	}

	want, _ := New(8, 8)
	want.SetPattern(glider, 1, 1)
	if !f.Equal(want) {
		t.Errorf("glider should reappear shifted by (1,1) after 4 epochs:\n%s", f)
	}
}

func TestSetPattern_WrapsAtEdge(t *testing.T) {
	f, _ := New(5, 5)
	f.SetPattern([]string{
		"XX",
		"XX",
	}, 4, 4)

	for _, c := range [][2]int{{4, 4}, {0, 4}, {4, 0}, {0, 0}} {
		if !f.Get(c[0], c[1]) {
			t.Errorf("pattern cell should wrap onto (%d,%d)", c[0], c[1])
		}
	}
}

func TestString(t *testing.T) {
	f, _ := New(3, 2)
	f.Set(1, 0, true)

	want := ".X.\n...\n"
	if got := f.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestEqual(t *testing.T) {
	f, _ := New(4, 4)
	if err := f.Randomize(0.5, 99); err != nil {
		t.Fatal(err)
	}

	c := f.Clone()
	if !f.Equal(c) {
		t.Error("field should equal its clone")
	}

	c.Set(0, 0, !c.Get(0, 0))
	if f.Equal(c) {
		t.Error("flipping a cell should break equality")
	}

	other, _ := New(4, 5)
	if f.Equal(other) {
		t.Error("different dimensions should not be equal")
	}
	if f.Equal(nil) {
		t.Error("nil comparison should be unequal")
	}
}
