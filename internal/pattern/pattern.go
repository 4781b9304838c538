// Package pattern holds the classic seed masks consumed by
// life.SetPattern: rectangular templates of '.'/'X' rows.
package pattern

import (
	"fmt"
	"sort"
)

var Glider = []string{
	".X.",
	"..X",
	"XXX",
}

var Blinker = []string{
	"XXX",
}

var Block = []string{
	"XX",
	"XX",
}

var Pulsar = []string{
	".................",
	".................",
	"....XXX...XXX....",
	".................",
	"..X....X.X....X..",
	"..X....X.X....X..",
	"..X....X.X....X..",
	"....XXX...XXX....",
	".................",
	"....XXX...XXX....",
	"..X....X.X....X..",
	"..X....X.X....X..",
	"..X....X.X....X..",
	".................",
	"....XXX...XXX....",
	".................",
	".................",
}

var GosperGliderGun = []string{
	"......................................",
	".........................X............",
	".......................X.X............",
	".............XX......XX............XX.",
	"............X...X....XX............XX.",
	".XX........X.....X...XX...............",
	".XX........X...X.XX....X.X............",
	"...........X.....X.......X............",
	"............X...X.....................",
	".............XX.......................",
}

var registry = map[string][]string{
	"glider":     Glider,
	"blinker":    Blinker,
	"block":      Block,
	"pulsar":     Pulsar,
	"gosper-gun": GosperGliderGun,
}

// Get looks up a mask by name.
func Get(name string) ([]string, error) {
	mask, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern: %s (available: %v)", name, Names())
	}
	return mask, nil
}

// Names lists the registered pattern names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Size returns the mask dimensions: the widest row and the row count.
func Size(mask []string) (w, h int) {
	for _, row := range mask {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, len(mask)
}
