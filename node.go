package kdtree

// Node is a vertex of a KdTree. It holds one point and splits its subtree on
// Axis(): points in the left subtree are strictly less than Point() on that
// axis, points in the right subtree strictly greater.
//
// The parent link is a back-reference used for upward traversal only.
type Node[T Number] struct {
	point  *Point[T]
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
	axis   int
	depth  int
}

func newNode[T Number](p *Point[T], parent *Node[T], axis int) *Node[T] {
	n := &Node[T]{point: p, parent: parent, axis: axis}
	if parent != nil {
		n.depth = parent.depth + 1
	}
	return n
}

// Point returns the point stored in n.
func (n *Node[T]) Point() *Point[T] { return n.point }

// Parent returns the parent of n, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.parent }

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Axis returns the dimension n splits its subtree on.
func (n *Node[T]) Axis() int { return n.axis }

// Depth returns the distance from the root; the root has depth 0.
func (n *Node[T]) Depth() int { return n.depth }

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool { return n.left == nil && n.right == nil }

// IsLeftChild reports whether n hangs off its parent's left branch.
func (n *Node[T]) IsLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

// IsRightChild reports whether n hangs off its parent's right branch.
func (n *Node[T]) IsRightChild() bool {
	return n.parent != nil && n.parent.right == n
}

// setLeft and setRight keep the parent link consistent with the child link.
func (n *Node[T]) setLeft(c *Node[T]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *Node[T]) setRight(c *Node[T]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// sibling returns the other child of n's parent.
func (n *Node[T]) sibling() *Node[T] {
	switch {
	case n.IsLeftChild():
		return n.parent.right
	case n.IsRightChild():
		return n.parent.left
	}
	return nil
}

// iter runs f on n and every node below it, parent before children, left
// before right.
func (n *Node[T]) iter(f func(*Node[T])) {
	if n == nil {
		return
	}
	f(n)
	n.left.iter(f)
	n.right.iter(f)
}

// height counts the nodes on the longest path from n down to a leaf.
func (n *Node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
