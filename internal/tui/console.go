// Package tui is the legacy console view: the classic render, update,
// sleep loop drawn in place with ANSI escapes.
package tui

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/san-kum/lifelab/internal/life"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// ConsoleView redraws the field on every epoch. It implements
// sim.Observer; pacing is the runner's job.
type ConsoleView struct {
	aliveCell string
	deadCell  string
}

func NewConsoleView() *ConsoleView {
	return &ConsoleView{
		aliveCell: aurora.Green("█").String(),
		deadCell:  aurora.Colorize("·", aurora.BlackFg|aurora.BrightFg).String(),
	}
}

func (v *ConsoleView) Start() { fmt.Print(hideCursor) }
func (v *ConsoleView) Stop()  { fmt.Print(showCursor) }

func (v *ConsoleView) OnEpoch(f *life.Field, epoch int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  epoch %d  population %d\n", epoch, f.Population()))
	b.WriteString("  " + strings.Repeat("─", f.Width()) + "\n")

	for y := 0; y < f.Height(); y++ {
		b.WriteString("  ")
		for x := 0; x < f.Width(); x++ {
			if f.Get(x, y) {
				b.WriteString(v.aliveCell)
			} else {
				b.WriteString(v.deadCell)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("─", f.Width()) + "\n")
	fmt.Print(b.String())
}
