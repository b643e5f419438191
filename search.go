package kdtree

import "math"

// NearestNeighbour returns the point closest to q by Euclidean distance.
// If a point equal to q is in the tree, q itself is returned.
//
// The search walks down as Add would, then scans every node under the last
// node it reached. It then climbs the parent chain. At each ancestor whose
// splitting plane lies closer to q than the best distance so far, it folds
// in the ancestor and scans the whole subtree on the ancestor's other side.
// Entered subtrees are scanned without further pruning, so the work done is
// bounded by the size of the subtrees that fail the plane test rather than
// by the tree height.
//
// When several points are equally close, the first one visited wins.
func (t *KdTree[T]) NearestNeighbour(q *Point[T]) (*Point[T], error) {
	if err := t.check(q); err != nil {
		return nil, err
	}
	if t.root == nil {
		return nil, ErrEmptyTree
	}
	d := t.descend(q)
	if d.match != nil {
		return q, nil
	}

	s := &nearest[T]{query: q, best: math.Inf(1)}
	s.scan(d.last)
	for n := d.last; n.parent != nil; n = n.parent {
		anc := n.parent
		if s.best > axisDistance(q, anc.point, anc.axis) {
			s.visit(anc)
			s.scan(n.sibling())
		}
	}
	return s.resolve(), nil
}

type candidate[T Number] struct {
	point *Point[T]
	dist  float64
}

// nearest accumulates the state of one NearestNeighbour query.
type nearest[T Number] struct {
	query      *Point[T]
	best       float64
	candidates []candidate[T]
}

func (s *nearest[T]) visit(n *Node[T]) {
	dist := SquaredDistance(s.query, n.point)
	s.candidates = append(s.candidates, candidate[T]{point: n.point, dist: dist})
	if dist < s.best {
		s.best = dist
	}
}

// scan visits every node in the subtree rooted at n.
func (s *nearest[T]) scan(n *Node[T]) {
	n.iter(s.visit)
}

// resolve picks the first candidate at the best distance.
func (s *nearest[T]) resolve() *Point[T] {
	for _, c := range s.candidates {
		if c.dist == s.best {
			return c.point
		}
	}
	return nil
}
