package kdtree

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPoints is returned by New when given no points.
	ErrNoPoints = errors.New("kdtree: no points to build from")

	// ErrZeroDimensions is returned by New when the first point has no
	// coordinates.
	ErrZeroDimensions = errors.New("kdtree: points must have at least one dimension")

	// ErrEmptyTree is returned by NearestNeighbour once every point has been
	// removed.
	ErrEmptyTree = errors.New("kdtree: tree is empty")

	// ErrNilPoint is returned when a nil point is passed to the tree.
	ErrNilPoint = errors.New("kdtree: nil point")
)

// ErrDimensionMismatch indicates a point whose dimensionality differs from
// the tree's.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("kdtree: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
