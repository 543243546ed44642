package client

import (
	"fmt"
	"math"
	"strings"
	"time"

	"musou/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func lerp(v0, v1, t float64) float64 {
	return (1-t)*v0 + t*v1
}

// Renderer draws the latest frame, sliding each sprite from where it was in
// the previous frame so motion stays smooth when draws outpace ticks.
type Renderer struct {
	tickDuration time.Duration
	lastTick     int64
	lastTickTime time.Time
}

func NewRenderer(tickRate int) *Renderer {
	if tickRate <= 0 {
		tickRate = 50
	}
	return &Renderer{
		tickDuration: time.Second / time.Duration(tickRate),
		lastTick:     world.NilTick,
	}
}

// progress is how far we are between the previous and the current frame.
func (r *Renderer) progress(current *world.Frame) float64 {
	if current.Tick != r.lastTick {
		r.lastTick = current.Tick
		r.lastTickTime = time.Now()
	}
	return math.Min(float64(time.Since(r.lastTickTime))/float64(r.tickDuration), 1)
}

func (r *Renderer) Render(screen *ebiten.Image, a *Assets, history *world.StateBuffer) {
	screen.Fill(backgroundColor)
	current := history.Current()
	if current == nil {
		return
	}
	previous := history.At(current.Tick - 1)
	t := r.progress(current)
	if current.GameOver {
		t = 1
	}

	for _, s := range current.Sprites {
		center := s.Center
		if previous != nil {
			if before, ok := previous.Sprite(s.ID); ok {
				center = world.Vector{
					X: lerp(before.Center.X, s.Center.X, t),
					Y: lerp(before.Center.Y, s.Center.Y, t),
				}
			}
		}
		RenderSprite(screen, a.Image(s.Variant), s, center)
	}
	renderHUD(screen, current, history.Len())
}

// RenderSprite scales image to the sprite's size and centers it on center.
// Beams are rotated to their heading.
func RenderSprite(screen *ebiten.Image, image *ebiten.Image, s world.Sprite, center world.Vector) {
	opt := &ebiten.DrawImageOptions{}
	bounds := image.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	opt.GeoM.Translate(-width/2, -height/2)
	opt.GeoM.Scale(s.Size.X/width, s.Size.Y/height)
	if s.Kind == world.KindBeam {
		// Screen Y points down, so a counter-clockwise heading is a negative rotation.
		opt.GeoM.Rotate(-s.Angle * math.Pi / 180)
	}
	opt.GeoM.Translate(center.X, center.Y)
	opt.Filter = ebiten.FilterLinear
	screen.DrawImage(image, opt)
}

func renderHUD(screen *ebiten.Image, f *world.Frame, buffered int) {
	height := screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", f.Score), 50, height-50)
	if f.HyperDisplay != 0 {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Invisible Time: %d", f.HyperDisplay), 300, height-50)
	}
	if f.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", screen.Bounds().Dx()/2-30, height/2)
	}
	ebitenutil.DebugPrint(screen, debugString(f, buffered))
}

func debugString(f *world.Frame, buffered int) string {
	return strings.Join([]string{
		fmt.Sprintf("TPS: %0.02f, FPS: %0.02f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("Tick: %d, Sprites: %d, Buffered: %d", f.Tick, len(f.Sprites), buffered),
	}, "\n")
}
