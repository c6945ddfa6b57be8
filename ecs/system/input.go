package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/arcade/ecs"
	"github.com/milk9111/arcade/ecs/component"
)

// InputSource reports which movement keys are held right now.
type InputSource func() component.Input

type InputSystem struct {
	source InputSource
}

// NewInputSystem samples source each tick; nil means the keyboard and the
// first gamepad.
func NewInputSystem(source InputSource) *InputSystem {
	if source == nil {
		source = KeyboardInput
	}
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	in := i.source()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, dst *component.Input) {
		*dst = in
	})
}

func KeyboardInput() component.Input {
	const stickDeadzone = 0.2

	in := component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump: ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
			ebiten.IsKeyPressed(ebiten.KeyW),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(x) > stickDeadzone {
			in.Left = in.Left || x < 0
			in.Right = in.Right || x > 0
		}
		in.Left = in.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return in
}
