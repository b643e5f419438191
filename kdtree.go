// KdTrees are binary space-partitioning trees over a fixed number of numeric
// dimensions. Each level splits on one axis, cycling through the axes by
// depth. This library builds a balanced tree from a set of points by
// repeated median splits, grows it by single insertions, and answers
// exact-match and nearest-neighbour queries. Removing a point rebuilds the
// whole tree from the remaining points.
//
// A KdTree is not safe for concurrent use.

package kdtree

import (
	"log/slog"
	"slices"
)

// KdTree is a k-d tree over points of type Point[T]. Alongside the node graph
// it keeps a flat list of every point it owns, which is what bulk
// construction and rebuild-on-remove work from.
type KdTree[T Number] struct {
	root *Node[T]
	// Every point added to the tree, in insertion order. Points dropped
	// from the node graph by a median tie remain here.
	points []*Point[T]
	// Fixed by the first point passed to New.
	dims   int
	logger *slog.Logger
}

// New builds a tree from points. The dimensionality of the first point
// becomes the tree's; any point with a different dimensionality yields an
// *ErrDimensionMismatch. The caller's slice is not modified.
//
// Construction sorts at every level and runs in O(n log^2 n).
func New[T Number](points []*Point[T], opts ...Option) (*KdTree[T], error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if points[0] == nil {
		return nil, ErrNilPoint
	}
	if points[0].NumDims() == 0 {
		return nil, ErrZeroDimensions
	}
	o := applyOptions(opts)
	t := &KdTree[T]{
		dims:   points[0].NumDims(),
		logger: o.logger,
	}
	for _, p := range points {
		if err := t.check(p); err != nil {
			return nil, err
		}
	}
	t.points = slices.Clone(points)
	t.rebuild("build")
	return t, nil
}

// NumDims returns the dimensionality of the tree.
func (t *KdTree[T]) NumDims() int {
	return t.dims
}

// Len returns the number of points the tree owns. This counts points that a
// median tie kept out of the node graph.
func (t *KdTree[T]) Len() int {
	return len(t.points)
}

// Root returns the root node, or nil once every point has been removed.
func (t *KdTree[T]) Root() *Node[T] {
	return t.root
}

// Points returns a copy of the flat point list.
func (t *KdTree[T]) Points() []*Point[T] {
	return slices.Clone(t.points)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *KdTree[T]) Height() int {
	return t.root.height()
}

// Iter runs function f on every node in the tree, parents before children.
func (t *KdTree[T]) Iter(f func(n *Node[T])) {
	t.root.iter(f)
}

func (t *KdTree[T]) check(p *Point[T]) error {
	if p == nil {
		return ErrNilPoint
	}
	if p.NumDims() != t.dims {
		return &ErrDimensionMismatch{Expected: t.dims, Actual: p.NumDims()}
	}
	return nil
}

// descent is where a walk from the root for some point ended.
type descent[T Number] struct {
	// Node holding a point equal to the query, if any.
	match *Node[T]
	// Last node visited before stepping onto an empty branch.
	last *Node[T]
	// Whether that empty branch is last's left one.
	left bool
}

// descend walks from the root towards p. At every node it first checks for
// full equality, then steps left or right on the current axis. When p ties
// the node on that axis the walk stays on the node and tries the next axis;
// since p differs from the node somewhere, it moves on within NumDims steps.
func (t *KdTree[T]) descend(p *Point[T]) descent[T] {
	var d descent[T]
	node := t.root
	for axis := 0; node != nil; axis++ {
		if node.point.Equal(p) {
			d.match = node
			return d
		}
		d.last = node
		switch c := p.compareAxis(node.point, axis%t.dims); {
		case c < 0:
			node, d.left = node.left, true
		case c > 0:
			node, d.left = node.right, false
		}
	}
	return d
}

// Add inserts p unless a point with equal coordinates is already reachable
// in the tree. It reports whether p was inserted. There is no rebalancing;
// average cost is O(log n).
func (t *KdTree[T]) Add(p *Point[T]) (bool, error) {
	if err := t.check(p); err != nil {
		return false, err
	}
	if t.root == nil {
		t.root = newNode(p, nil, 0)
		t.points = append(t.points, p)
		return true, nil
	}
	d := t.descend(p)
	if d.match != nil {
		t.logger.Debug("kd-tree add skipped duplicate", "point", p.String())
		return false, nil
	}
	n := newNode(p, d.last, (d.last.axis+1)%t.dims)
	if d.left {
		d.last.setLeft(n)
	} else {
		d.last.setRight(n)
	}
	t.points = append(t.points, p)
	return true, nil
}

// Contains reports whether a point equal to p is reachable in the tree.
func (t *KdTree[T]) Contains(p *Point[T]) (bool, error) {
	n, err := t.Find(p)
	return n != nil, err
}

// Find returns the node holding a point equal to p, or nil if there is none.
func (t *KdTree[T]) Find(p *Point[T]) (*Node[T], error) {
	if err := t.check(p); err != nil {
		return nil, err
	}
	return t.descend(p).match, nil
}

// Remove deletes the first point in the flat list equal to p and rebuilds
// the whole tree from what is left, in O(n log^2 n). It reports whether a
// point was removed; when none was, the tree is left untouched.
func (t *KdTree[T]) Remove(p *Point[T]) (bool, error) {
	if err := t.check(p); err != nil {
		return false, err
	}
	i := slices.IndexFunc(t.points, p.Equal)
	if i < 0 {
		return false, nil
	}
	t.points = slices.Delete(t.points, i, i+1)
	t.rebuild("remove")
	return true, nil
}
