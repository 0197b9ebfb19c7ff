package main

import "fmt"

// Point is a location on the map. Points may be out of range; world methods
// wrap them back onto the toroid.
type Point struct {
	X, Y int
}

func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Distance2 returns the squared euclidean distance to rhs, ignoring wrapping.
// Use World.Distance2 when the edges of the map matter.
func (p Point) Distance2(rhs Point) int {
	dx := p.X - rhs.X
	dy := p.Y - rhs.Y
	return dx*dx + dy*dy
}
