// Package gui is the graphical front end: an Ebiten window that blits
// the field into a pixel buffer, one pixel per cell, scaled up.
package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/lifelab/internal/life"
)

var (
	aliveColor = color.RGBA{R: 0x3d, G: 0xdb, B: 0x85, A: 0xff}
	deadColor  = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
)

// Game steps the field once per tick and redraws the grid.
type Game struct {
	field  *life.Field
	img    *ebiten.Image
	buf    []byte
	epoch  int
	paused bool
}

func NewGame(f *life.Field) *Game {
	w, h := f.Width(), f.Height()
	return &Game{
		field: f,
		img:   ebiten.NewImage(w, h),
		buf:   make([]byte, 4*w*h),
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}
	g.field.Update()
	g.epoch++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.field.Width(), g.field.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			c := deadColor
			if g.field.Get(x, y) {
				c = aliveColor
			}
			g.buf[base+0] = c.R
			g.buf[base+1] = c.G
			g.buf[base+2] = c.B
			g.buf[base+3] = c.A
		}
	}
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	screen.DrawImage(g.img, op)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("epoch %d  pop %d", g.epoch, g.field.Population()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.field.Width(), g.field.Height()
}

// Run opens a window and animates the field until it is closed.
func Run(f *life.Field, scale, tps int) error {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(f.Width()*scale, f.Height()*scale)
	ebiten.SetWindowTitle("lifelab")
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
	return ebiten.RunGame(NewGame(f))
}
