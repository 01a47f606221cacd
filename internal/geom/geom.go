// Package geom provides the value types shared by the simulation:
// positions, velocities, and axis-aligned bounding boxes.
package geom

// Position is a point in court coordinates. X grows rightward, Y downward.
type Position struct {
	X, Y float64
}

// Velocity is a signed displacement per second, before speed multipliers.
type Velocity struct {
	DX, DY float64
}

// IsZero reports whether both components are exactly zero.
func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// BoundingBox is an axis-aligned box. Left <= Right and Top <= Bottom.
type BoundingBox struct {
	Left, Right float64
	Top, Bottom float64
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.Bottom - b.Top
}

// CenterY returns the vertical center of the box.
func (b BoundingBox) CenterY() float64 {
	return b.Top + (b.Bottom-b.Top)/2
}

// Overlaps reports whether two boxes intersect.
func (b BoundingBox) Overlaps(o BoundingBox) bool {
	if b.Left >= o.Right || o.Left >= b.Right {
		return false
	}
	if b.Top >= o.Bottom || o.Top >= b.Bottom {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside the box.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.Left && x < b.Right && y >= b.Top && y < b.Bottom
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
