package sortTree

import "cmp"

// Height is the number of nodes on the longest root-to-leaf path, 0 when empty.
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

func height[T cmp.Ordered](node *Node[T]) int {
	if node == nil {
		return 0
	}
	return 1 + max(height(node.Left), height(node.Right))
}

// IsBalanced reports whether the heights of the two subtrees of every node
// differ by at most one. It only reports, nothing is rebalanced.
func (tree *Tree[T]) IsBalanced() bool {
	return balancedHeight(tree.root) >= 0
}

// balancedHeight returns the height of node, or -1 as soon as any subtree is
// out of balance.
func balancedHeight[T cmp.Ordered](node *Node[T]) int {
	if node == nil {
		return 0
	}
	left := balancedHeight(node.Left)
	if left < 0 {
		return -1
	}
	right := balancedHeight(node.Right)
	if right < 0 {
		return -1
	}
	if left-right > 1 || right-left > 1 {
		return -1
	}
	return 1 + max(left, right)
}

func (tree *Tree[T]) Min() (T, bool) {
	var zero T
	if tree.root == nil {
		return zero, false
	}
	return minNode(tree.root).Value, true
}

func (tree *Tree[T]) Max() (T, bool) {
	var zero T
	if tree.root == nil {
		return zero, false
	}
	return maxNode(tree.root).Value, true
}

func minNode[T cmp.Ordered](node *Node[T]) *Node[T] {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

func maxNode[T cmp.Ordered](node *Node[T]) *Node[T] {
	for node.Right != nil {
		node = node.Right
	}
	return node
}

// FindSecondHighest returns the value just below the maximum. The bool is
// false when the tree holds fewer than two values.
func (tree *Tree[T]) FindSecondHighest() (T, bool) {
	var zero T
	if tree.root == nil {
		return zero, false
	}

	var parent *Node[T]
	current := tree.root
	for current.Right != nil {
		// the maximum is a leaf right below us
		if current.Right.isLeaf() {
			return current.Value, true
		}
		parent = current
		current = current.Right
	}

	// current is the maximum: anything smaller in its own subtree is on the left
	if current.Left != nil {
		return maxNode(current.Left).Value, true
	}
	if parent != nil {
		return parent.Value, true
	}
	return zero, false
}
