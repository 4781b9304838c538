package life

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Cell glyphs used by SetPattern masks and String output.
const (
	DeadGlyph  = '.'
	AliveGlyph = 'X'
)

// Field is a fixed-size toroidal Game of Life grid. Both edges wrap, so
// every integer coordinate maps onto a cell. Cells and the neighbour
// scratch buffer are flat row-major slices (index = y*width + x).
type Field struct {
	width      int
	height     int
	cells      []bool
	neighbours []int
}

// New allocates an all-dead field. Both dimensions must be positive.
func New(width, height int) (*Field, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidDimension, width)
	}
	if height <= 0 {
		return nil, fmt.Errorf("%w: height %d", ErrInvalidDimension, height)
	}
	return &Field{
		width:      width,
		height:     height,
		cells:      make([]bool, width*height),
		neighbours: make([]int, width*height),
	}, nil
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// mod is the mathematical modulo: the result is in [0, n) for any a.
func mod(a, n int) int {
	return (a%n + n) % n
}

// index maps arbitrary integer coordinates onto the flat slice, wrapping
// each axis independently. This is the only place that encodes the torus.
func (f *Field) index(x, y int) int {
	return mod(y, f.height)*f.width + mod(x, f.width)
}

// Get reports whether the cell at the wrapped coordinates is alive.
func (f *Field) Get(x, y int) bool {
	return f.cells[f.index(x, y)]
}

// Set writes the cell state at the wrapped coordinates.
func (f *Field) Set(x, y int, alive bool) {
	f.cells[f.index(x, y)] = alive
}

// Clear kills every cell.
func (f *Field) Clear() {
	for i := range f.cells {
		f.cells[i] = false
	}
}

// Randomize assigns each cell independently: alive with probability
// aliveProbability, drawn once per cell in row-major order. A negative
// seed derives one from the clock so separate runs differ; a non-negative
// seed reproduces the same grid bit for bit.
func (f *Field) Randomize(aliveProbability float64, seed int64) error {
	if aliveProbability < 0 || aliveProbability > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, aliveProbability)
	}
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	for i := range f.cells {
		f.cells[i] = rng.Float64() < aliveProbability
	}
	return nil
}

// Displacements of the 8 neighbours around a cell.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Update advances the field by one epoch. Counts are gathered from the
// pre-update state into the scratch buffer before any cell changes, so a
// cell's new state never influences a neighbour's count within the same
// epoch. Every alive cell contributes +1 to each of its 8 wrapped
// neighbours; the rule is then applied per cell:
//
//	n < 2 or n >= 4  -> dead
//	n == 3           -> alive
//	n == 2           -> unchanged
func (f *Field) Update() {
	for i := range f.neighbours {
		f.neighbours[i] = 0
	}

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if !f.cells[y*f.width+x] {
				continue
			}
			for _, d := range neighbourOffsets {
				f.neighbours[f.index(x+d[0], y+d[1])]++
			}
		}
	}

	for i, n := range f.neighbours {
		switch {
		case n < 2 || n >= 4:
			f.cells[i] = false
		case n == 3:
			f.cells[i] = true
		}
		// n == 2 leaves the cell as it was: survival without birth.
	}
}

// SetPattern overlays a rectangular mask at offset (dx, dy). AliveGlyph
// marks an alive cell; any other marker writes a dead cell. Coordinates
// wrap, so a pattern placed across an edge continues on the opposite side.
func (f *Field) SetPattern(mask []string, dx, dy int) {
	for y, row := range mask {
		for x := 0; x < len(row); x++ {
			f.Set(x+dx, y+dy, row[x] == AliveGlyph)
		}
	}
}

// Population counts the alive cells.
func (f *Field) Population() int {
	n := 0
	for _, alive := range f.cells {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{
		width:      f.width,
		height:     f.height,
		cells:      make([]bool, len(f.cells)),
		neighbours: make([]int, len(f.neighbours)),
	}
	copy(c.cells, f.cells)
	return c
}

// Equal reports whether both fields have the same dimensions and cells.
func (f *Field) Equal(other *Field) bool {
	if other == nil || f.width != other.width || f.height != other.height {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid one glyph per cell, one row per line, with a
// trailing newline after the final row.
func (f *Field) String() string {
	var b strings.Builder
	b.Grow((f.width + 1) * f.height)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.cells[y*f.width+x] {
				b.WriteByte(AliveGlyph)
			} else {
				b.WriteByte(DeadGlyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
