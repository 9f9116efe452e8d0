package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/tilewalk/ecs"
	"github.com/milk9111/tilewalk/ecs/component"
)

// InputSystem polls the keyboard once per tick and writes the result onto
// every input-bearing entity. Movement keys are edge-triggered so holding a
// key moves one cell, not one cell per frame.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	up := inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	down := inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)
	left := inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft)
	right := inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight)
	zoomIn := ebiten.IsKeyPressed(ebiten.KeyEqual)
	zoomOut := ebiten.IsKeyPressed(ebiten.KeyMinus)

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		input.Up = up
		input.Down = down
		input.Left = left
		input.Right = right
		input.ZoomIn = zoomIn
		input.ZoomOut = zoomOut
	})
}
