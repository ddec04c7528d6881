package entities

import "math"

// Cell is a grid coordinate on the board.
type Cell struct {
	X, Y int
}

func (c Cell) Step(d Direction) Cell {
	dx, dy := DirDelta(d)
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) Vec() Vec {
	return Vec{X: float64(c.X), Y: float64(c.Y)}
}

// Vec is a position in tile units. The integer point (x, y) is the
// top-left corner of cell (x, y).
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

func (v Vec) DistSq(o Vec) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

func (v Vec) Dist(o Vec) float64 {
	return math.Sqrt(v.DistSq(o))
}

// Lerp interpolates between a and b, t in [0,1].
func Lerp(a, b Vec, t float64) Vec {
	return Vec{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Rect is an axis-aligned box in tile units.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect returns a size x size box centred inside the tile whose
// top-left corner is at pos.
func CenteredRect(pos Vec, size float64) Rect {
	off := (1 - size) / 2
	return Rect{X: pos.X + off, Y: pos.Y + off, W: size, H: size}
}

// Intersects reports whether the boxes overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
