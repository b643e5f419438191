package kdtree

import (
	"context"
	"log/slog"
	"slices"

	"github.com/cznic/mathutil"
)

// build creates the subtree for points split on axis and hangs it under
// parent. It sorts points in place. The element at index len/2 after sorting
// becomes the node; the remaining points go left when strictly less on axis
// and right when strictly greater. Points equal to the median on axis are
// dropped from the tree (they stay in the flat point list).
func (t *KdTree[T]) build(points []*Point[T], axis int, parent *Node[T]) *Node[T] {
	if len(points) == 0 {
		return nil
	}
	slices.SortStableFunc(points, func(a, b *Point[T]) int {
		return a.compareAxis(b, axis)
	})
	median := points[len(points)/2]
	n := newNode(median, parent, axis)

	var less, greater []*Point[T]
	for _, p := range points {
		switch c := p.compareAxis(median, axis); {
		case c < 0:
			less = append(less, p)
		case c > 0:
			greater = append(greater, p)
		}
	}

	next := (axis + 1) % t.dims
	n.setLeft(t.build(less, next, n))
	n.setRight(t.build(greater, next, n))
	return n
}

// rebuild discards the node graph and builds a fresh one from the flat
// point list, starting again at axis 0.
func (t *KdTree[T]) rebuild(reason string) {
	t.root = t.build(slices.Clone(t.points), 0, nil)

	if !t.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	var nodes int
	t.root.iter(func(*Node[T]) { nodes++ })
	t.logger.Debug("kd-tree rebuilt",
		"reason", reason,
		"points", len(t.points),
		"nodes", nodes,
		"dropped", len(t.points)-nodes,
		"height", t.root.height(),
		"optimal_height", optimalHeight(len(t.points)),
	)
}

// optimalHeight is the height of a median-split build of n points with no
// ties on any split axis.
func optimalHeight(n int) int {
	return mathutil.BitLen(n)
}
