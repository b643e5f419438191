package kdtree

import (
	"cmp"
	"fmt"
	"strings"
)

// Point is a fixed-length tuple of numeric coordinates stored in a KdTree.
// Its dimensionality is set by NewPoint and never changes.
type Point[T Number] struct {
	coords []T
	// Arbitrary data attached to this Point. Not part of equality.
	Data any
}

// NewPoint creates a point from the supplied coordinates. NumDims is the
// number of values given.
func NewPoint[T Number](values ...T) *Point[T] {
	coords := make([]T, len(values))
	copy(coords, values)
	return &Point[T]{coords: coords}
}

// NumDims returns the number of dimensions of p.
func (p *Point[T]) NumDims() int {
	return len(p.coords)
}

// At returns the coordinate of dimension i. It panics if i is out of range.
func (p *Point[T]) At(i int) T {
	return p.coords[i]
}

// Set assigns the coordinate of dimension i. Mutating a point that is stored
// in a tree invalidates the tree's ordering; the tree never does this itself.
func (p *Point[T]) Set(i int, v T) {
	p.coords[i] = v
}

// Coords returns a copy of the coordinates.
func (p *Point[T]) Coords() []T {
	out := make([]T, len(p.coords))
	copy(out, p.coords)
	return out
}

// Equal reports whether p and o have the same dimensionality and equal
// coordinates in every dimension.
func (p *Point[T]) Equal(o *Point[T]) bool {
	if p == nil || o == nil {
		return p == o
	}
	if len(p.coords) != len(o.coords) {
		return false
	}
	for i := range p.coords {
		if cmp.Compare(p.coords[i], o.coords[i]) != 0 {
			return false
		}
	}
	return true
}

// compareAxis orders p against o on dimension axis.
func (p *Point[T]) compareAxis(o *Point[T], axis int) int {
	return cmp.Compare(p.coords[axis], o.coords[axis])
}

// String renders the coordinates separated by single spaces.
func (p *Point[T]) String() string {
	parts := make([]string, len(p.coords))
	for i, c := range p.coords {
		parts[i] = fmt.Sprint(c)
	}
	return strings.Join(parts, " ")
}
