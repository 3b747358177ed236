package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.2

type Input struct {
	MoveX       float64
	Jump        bool
	JumpPressed bool

	Pause   bool
	Confirm bool
	Restart bool
	Shake   bool
	Copy    bool
	Debug   bool
}

func ReadInput() Input {
	var in Input

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Shake = inpututil.IsKeyJustPressed(ebiten.KeyK)
	in.Copy = inpututil.IsKeyJustPressed(ebiten.KeyC)
	in.Debug = inpututil.IsKeyJustPressed(ebiten.KeyF1)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); math.Abs(x) > stickDeadzone {
			in.MoveX = x
		}
		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Pause = in.Pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		in.Confirm = in.Confirm || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	return in
}
