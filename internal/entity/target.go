package entity

import (
	"github.com/google/uuid"
)

// Rect is an axis-aligned box in logical screen units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the box.
// Edges are half-open: the top-left pixel is inside, Right/Bottom are not.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Target is one clickable spawn point. The sprite is drawn Size x Size at (X, Y).
type Target struct {
	ID   uuid.UUID
	X, Y int
	Size int
}

func NewTarget(x, y, size int) Target {
	return Target{
		ID:   uuid.New(),
		X:    x,
		Y:    y,
		Size: size,
	}
}

// Bounds returns the clickable box.
func (t Target) Bounds() Rect {
	return Rect{X: t.X, Y: t.Y, W: t.Size, H: t.Size}
}

func (t Target) Contains(x, y int) bool {
	return t.Bounds().Contains(x, y)
}
