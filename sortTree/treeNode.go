package sortTree

import "cmp"

// Node is one value of the tree. Every value under Left is smaller than Value,
// every value under Right is larger.
type Node[T cmp.Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

func newTreeNode[T cmp.Ordered](value T) *Node[T] {
	return &Node[T]{
		Value: value,
		Left:  nil,
		Right: nil,
	}
}

func (node *Node[T]) isLeaf() bool {
	return node.Left == nil && node.Right == nil
}
