package client

import (
	"musou/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keys held down for as long as they matter.
var heldBindings = map[ebiten.Key]world.Intent{
	ebiten.KeyArrowUp:    world.IntentUp,
	ebiten.KeyArrowDown:  world.IntentDown,
	ebiten.KeyArrowLeft:  world.IntentLeft,
	ebiten.KeyArrowRight: world.IntentRight,
	ebiten.KeyShiftLeft:  world.IntentBoost,
}

// Keys that trigger a command once per press.
var pressBindings = map[ebiten.Key]world.Intent{
	ebiten.KeySpace:      world.IntentFire,
	ebiten.KeyShiftRight: world.IntentHyper,
	ebiten.KeyEnter:      world.IntentGravity,
}

// LocalPlayer turns the keyboard into simulation input.
type LocalPlayer struct {
	held    []ebiten.Key
	pressed []ebiten.Key
}

func NewLocalPlayer() *LocalPlayer {
	return &LocalPlayer{}
}

func intentsFromKeys(keys []ebiten.Key, bindings map[ebiten.Key]world.Intent) world.Intents {
	intents := make(world.Intents)
	for _, key := range keys {
		if intent, ok := bindings[key]; ok {
			intents[intent] = struct{}{}
		}
	}
	return intents
}

// Input samples the keyboard once. Call it once per tick.
func (p *LocalPlayer) Input() world.Input {
	p.held = inpututil.AppendPressedKeys(p.held[:0])
	p.pressed = inpututil.AppendJustPressedKeys(p.pressed[:0])
	return world.Input{
		Held:    intentsFromKeys(p.held, heldBindings),
		Pressed: intentsFromKeys(p.pressed, pressBindings),
	}
}

// Quit reports whether the player asked to leave.
func (p *LocalPlayer) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
