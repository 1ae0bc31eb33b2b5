package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/tilemaze/session"
)

// Input holds the input state for one frame. Movement is edge-triggered so
// holding a key moves the player a single cell.
type Input struct {
	// Move is the direction pressed this frame, valid when MovePressed is set.
	Move        session.Direction
	MovePressed bool
	// PausePressed is true on the frame Escape is pressed.
	PausePressed bool
	// RestartPressed is true on the frame R is pressed.
	RestartPressed bool
	// NextPressed and PrevPressed cycle through levels.
	NextPressed bool
	PrevPressed bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	i.Move, i.MovePressed = pressedDirection()
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.NextPressed = inpututil.IsKeyJustPressed(ebiten.KeyPageDown)
	i.PrevPressed = inpututil.IsKeyJustPressed(ebiten.KeyPageUp)
}

func pressedDirection() (session.Direction, bool) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW):
		return session.DirUp, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS):
		return session.DirDown, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA):
		return session.DirLeft, true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD):
		return session.DirRight, true
	}
	return 0, false
}
