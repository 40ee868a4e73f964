package ui

import (
	"fmt"

	"snake-classic/game"
	"snake-classic/game/manager"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	statusHeight  = 30 // Space below the grid for the status line
)

var snakeColor = rl.Color{R: 70, G: 200, B: 120, A: 255}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// layout calcola la dimensione delle celle e centra la griglia nella finestra.
func (r *Renderer) layout(width, height int) {
	availableWidth := r.screenWidth - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2) - statusHeight

	cellW := availableWidth / int32(width)
	cellH := availableHeight / int32(height)
	r.cellSize = max(min(cellW, cellH), 1)

	r.totalGridWidth = r.cellSize * int32(width)
	r.totalGridHeight = r.cellSize * int32(height)

	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = borderPadding
}

// Draw paints one frame from a snapshot; it never touches the game itself.
func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	r.layout(s.Width, s.Height)
	fontSize := max(r.screenHeight/45, 10)

	// Draw grid background
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	// Food goes first so that a snake lying on it stays visible.
	r.drawCell(s.Food.X, s.Food.Y, rl.Red)

	for j, p := range s.Snake {
		color := snakeColor
		if j == 0 && len(s.Snake) > 1 { // Tail
			color = rl.White
		}
		if j == len(s.Snake)-1 { // Head
			color = rl.Color{
				R: uint8(min(float32(snakeColor.R)*1.3, 255)),
				G: uint8(min(float32(snakeColor.G)*1.3, 255)),
				B: uint8(min(float32(snakeColor.B)*1.3, 255)),
				A: 255,
			}
		}
		r.drawCell(p.X, p.Y, color)
	}
	r.drawHeading(s)

	status := fmt.Sprintf("Game %.8s  Length: %d", s.ID, len(s.Snake))
	statusColor := rl.White
	if s.LastCollision == manager.WallCollision {
		status += "  blocked by wall"
		statusColor = rl.Orange
	}
	rl.DrawText(status, r.offsetX, r.offsetY+r.totalGridHeight+borderPadding, fontSize, statusColor)

	if !s.Alive {
		r.drawGameOver(fontSize * 2)
	}
}

func (r *Renderer) drawCell(x, y int, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(x)*r.cellSize,
		r.offsetY+int32(y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

// drawHeading draws a triangle on the head pointing where the snake goes.
func (r *Renderer) drawHeading(s game.Snapshot) {
	head := s.Head()
	headX := float32(r.offsetX + int32(head.X)*r.cellSize)
	headY := float32(r.offsetY + int32(head.Y)*r.cellSize)
	cell := float32(r.cellSize)
	half := cell / 2

	// Vertices are listed counter-clockwise, as raylib expects.
	var a, b, c rl.Vector2
	dir := s.Direction.ToPoint()
	switch {
	case dir.X > 0: // Right
		a = rl.Vector2{X: headX + cell, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY}
		c = rl.Vector2{X: headX + half, Y: headY + cell}
	case dir.X < 0: // Left
		a = rl.Vector2{X: headX, Y: headY + half}
		b = rl.Vector2{X: headX + half, Y: headY + cell}
		c = rl.Vector2{X: headX + half, Y: headY}
	case dir.Y > 0: // Down
		a = rl.Vector2{X: headX + half, Y: headY + cell}
		b = rl.Vector2{X: headX + cell, Y: headY + half}
		c = rl.Vector2{X: headX, Y: headY + half}
	default: // Up
		a = rl.Vector2{X: headX + half, Y: headY}
		b = rl.Vector2{X: headX, Y: headY + half}
		c = rl.Vector2{X: headX + cell, Y: headY + half}
	}
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawGameOver(fontSize int32) {
	const text = "Game Over!"
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-textWidth)/2,
		r.offsetY+(r.totalGridHeight-fontSize)/2,
		fontSize, rl.Red)
}
