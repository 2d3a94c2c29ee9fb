package fract

import "image"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates a rect from a set of four integers.
func IntsToRect(minX, minY, maxX, maxY int) Rect {
	return UnitsToRect(FromInt(minX), FromInt(minY), FromInt(maxX), FromInt(maxY))
}

// Converts the rect coordinates to ints rounding each edge to the
// closest pixel boundary. Adjacent rects that share an edge keep
// sharing it after the conversion.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.ToIntHalfUp(), self.Min.Y.ToIntHalfUp(),
		self.Max.X.ToIntHalfUp(), self.Max.Y.ToIntHalfUp(),
	)
}

// Returns the width of the rect.
func (self Rect) Width() Unit {
	return self.Max.X - self.Min.X
}

// Returns the height of the rect.
func (self Rect) Height() Unit {
	return self.Max.Y - self.Min.Y
}

// Returns the horizontal center of the rect.
func (self Rect) CenterX() Unit {
	return self.Min.X + (self.Width() >> 1)
}

// Returns the vertical center of the rect.
func (self Rect) CenterY() Unit {
	return self.Min.Y + (self.Height() >> 1)
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns whether the rect has Min > Max on any axis. Zero
// sized rects are empty, but not malformed.
func (self Rect) Malformed() bool {
	return self.Min.X > self.Max.X || self.Min.Y > self.Max.Y
}

// Returns the result of translating the rect by the given values.
func (self Rect) AddUnits(x, y Unit) Rect {
	self.Min.X += x
	self.Min.Y += y
	self.Max.X += x
	self.Max.Y += y
	return self
}

// Returns the result of translating the rect by the given point.
func (self Rect) AddPoint(pt Point) Rect {
	return self.AddUnits(pt.X, pt.Y)
}

// Returns the result of multiplying all the rect coordinates by
// the given factor.
func (self Rect) Scale(factor float64) Rect {
	if factor == 1.0 { return self }
	return UnitsToRect(
		self.Min.X.Scale(factor), self.Min.Y.Scale(factor),
		self.Max.X.Scale(factor), self.Max.Y.Scale(factor),
	)
}

// Returns the largest rect contained by both rects. If the rects
// don't overlap, the zero rect is returned.
func (self Rect) Intersect(other Rect) Rect {
	if self.Min.X < other.Min.X { self.Min.X = other.Min.X }
	if self.Min.Y < other.Min.Y { self.Min.Y = other.Min.Y }
	if self.Max.X > other.Max.X { self.Max.X = other.Max.X }
	if self.Max.Y > other.Max.Y { self.Max.Y = other.Max.Y }
	if self.Empty() { return Rect{} }
	return self
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}
