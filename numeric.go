package kdtree

import "golang.org/x/exp/constraints"

// Number is the set of coordinate types a tree can hold. Every member is
// totally ordered (NaN aside, see cmp.Compare) and converts to float64 for
// distance computation.
type Number interface {
	constraints.Integer | constraints.Float
}

// sum, difference and product coerce both operands to float64 before
// combining them, so integer coordinates never overflow during distance math.
func sum[T Number](a, b T) float64 {
	return float64(a) + float64(b)
}

func difference[T Number](a, b T) float64 {
	return float64(a) - float64(b)
}

func product[T Number](a, b T) float64 {
	return float64(a) * float64(b)
}

// axisDistance returns the squared distance between a and b along one axis.
func axisDistance[T Number](a, b *Point[T], axis int) float64 {
	d := difference(a.coords[axis], b.coords[axis])
	return d * d
}

// SquaredDistance returns the sum of squared per-axis differences between a
// and b. Both points must have the same dimensionality.
func SquaredDistance[T Number](a, b *Point[T]) float64 {
	var dist float64
	for i := range a.coords {
		d := difference(a.coords[i], b.coords[i])
		dist = sum(dist, product(d, d))
	}
	return dist
}
