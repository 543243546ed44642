package client

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"musou/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const spriteSize = 64

var (
	backgroundColor = color.RGBA{164, 178, 191, 255}
	playerColor     = color.RGBA{218, 212, 94, 255}
	joyColor        = color.RGBA{255, 160, 190, 255}
	sadColor        = color.RGBA{90, 110, 200, 255}
	beamColor       = color.RGBA{80, 230, 255, 255}
	fieldColor      = color.RGBA{0, 0, 0, 200}
	explosionColors = []color.RGBA{{255, 200, 40, 255}, {230, 80, 20, 255}}
	alienColors     = []color.RGBA{{208, 70, 72, 255}, {90, 200, 90, 255}, {160, 90, 220, 255}}
	bombColors      = []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 0, 255},
		{255, 0, 255, 255},
		{0, 255, 255, 255},
	}
)

var headings = map[string]world.Vector{
	"right":      {X: +1, Y: 0},
	"up-right":   {X: +1, Y: -1},
	"up":         {X: 0, Y: -1},
	"up-left":    {X: -1, Y: -1},
	"left":       {X: -1, Y: 0},
	"down-left":  {X: -1, Y: +1},
	"down":       {X: 0, Y: +1},
	"down-right": {X: +1, Y: +1},
}

// Assets holds one image per sprite variant. Images are drawn at spriteSize
// and scaled to the sprite's size when rendered.
type Assets struct {
	images map[string]*ebiten.Image
}

func (a *Assets) Image(name string) *ebiten.Image {
	image := a.images[name]
	if image == nil {
		log.Fatalf("invalid image name: %s", name)
	}
	return image
}

func (a *Assets) add(name string, image *ebiten.Image) error {
	if _, ok := a.images[name]; ok {
		return fmt.Errorf("duplicate image: %s", name)
	}
	a.images[name] = image
	return nil
}

func LoadAssets() (*Assets, error) {
	a := &Assets{
		images: make(map[string]*ebiten.Image),
	}

	for name, facing := range headings {
		variants := map[string]*ebiten.Image{
			name:            newPlayerImage(facing, playerColor, false),
			"hyper/" + name: newPlayerImage(facing, playerColor, true),
			"joy/" + name:   newPlayerImage(facing, joyColor, false),
			"sad/" + name:   newPlayerImage(facing, sadColor, false),
		}
		for variant, image := range variants {
			if err := a.add(variant, image); err != nil {
				return nil, err
			}
		}
	}
	for i, c := range alienColors {
		if err := a.add(fmt.Sprintf("alien%d", i+1), newAlienImage(c)); err != nil {
			return nil, err
		}
	}
	for i, c := range bombColors {
		if err := a.add(fmt.Sprintf("bomb%d", i), newCircleImage(c)); err != nil {
			return nil, err
		}
	}
	for i := range explosionColors {
		if err := a.add(fmt.Sprintf("frame%d", i), newExplosionImage(i)); err != nil {
			return nil, err
		}
	}
	if err := a.add("beam", newBeamImage()); err != nil {
		return nil, err
	}
	field := ebiten.NewImage(1, 1)
	field.Fill(fieldColor)
	if err := a.add("field", field); err != nil {
		return nil, err
	}
	return a, nil
}

// newPlayerImage draws a body with a nose pointing along facing. Hyper draws
// only the outline.
func newPlayerImage(facing world.Vector, c color.RGBA, hyper bool) *ebiten.Image {
	image := ebiten.NewImage(spriteSize, spriteSize)
	const half = spriteSize / 2
	if hyper {
		vector.StrokeRect(image, 2, 2, spriteSize-4, spriteSize-4, 3, c, true)
	} else {
		vector.DrawFilledRect(image, 4, 4, spriteSize-8, spriteSize-8, c, true)
	}
	norm := math.Hypot(facing.X, facing.Y)
	tipX := half + float32(facing.X/norm*(half-2))
	tipY := half + float32(facing.Y/norm*(half-2))
	vector.StrokeLine(image, half, half, tipX, tipY, 6, color.Black, true)
	return image
}

func newAlienImage(c color.RGBA) *ebiten.Image {
	image := ebiten.NewImage(spriteSize, spriteSize)
	vector.DrawFilledCircle(image, spriteSize/2, spriteSize/2, spriteSize/2-2, c, true)
	vector.DrawFilledCircle(image, spriteSize/3, spriteSize/2-6, 6, color.White, true)
	vector.DrawFilledCircle(image, 2*spriteSize/3, spriteSize/2-6, 6, color.White, true)
	return image
}

func newCircleImage(c color.RGBA) *ebiten.Image {
	image := ebiten.NewImage(spriteSize, spriteSize)
	vector.DrawFilledCircle(image, spriteSize/2, spriteSize/2, spriteSize/2, c, true)
	return image
}

// newExplosionImage draws frame 1 as frame 0 flipped on both axes.
func newExplosionImage(frame int) *ebiten.Image {
	image := ebiten.NewImage(spriteSize, spriteSize)
	c := explosionColors[frame]
	offset := float32(8)
	if frame == 1 {
		offset = -offset
	}
	vector.DrawFilledCircle(image, spriteSize/2, spriteSize/2, spriteSize/3, c, true)
	vector.DrawFilledCircle(image, spriteSize/2+offset, spriteSize/2+offset, spriteSize/5, color.White, true)
	return image
}

// newBeamImage points along +X.
func newBeamImage() *ebiten.Image {
	image := ebiten.NewImage(spriteSize, spriteSize)
	vector.DrawFilledRect(image, 0, spriteSize/2-6, spriteSize, 12, beamColor, true)
	return image
}
