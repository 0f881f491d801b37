package sortTree

import (
	"cmp"
	"iter"
)

// DfsPreOrder returns node, left subtree, right subtree.
func (tree *Tree[T]) DfsPreOrder() []T {
	return preOrder(tree.root, make([]T, 0, tree.count))
}

// DfsInOrder returns the values in ascending order.
func (tree *Tree[T]) DfsInOrder() []T {
	return inOrder(tree.root, make([]T, 0, tree.count))
}

// DfsPostOrder returns left subtree, right subtree, node.
func (tree *Tree[T]) DfsPostOrder() []T {
	return postOrder(tree.root, make([]T, 0, tree.count))
}

func preOrder[T cmp.Ordered](node *Node[T], values []T) []T {
	if node == nil {
		return values
	}
	values = append(values, node.Value)
	values = preOrder(node.Left, values)
	return preOrder(node.Right, values)
}

func inOrder[T cmp.Ordered](node *Node[T], values []T) []T {
	if node == nil {
		return values
	}
	values = inOrder(node.Left, values)
	values = append(values, node.Value)
	return inOrder(node.Right, values)
}

func postOrder[T cmp.Ordered](node *Node[T], values []T) []T {
	if node == nil {
		return values
	}
	values = postOrder(node.Left, values)
	values = postOrder(node.Right, values)
	return append(values, node.Value)
}

// Bfs returns the values level by level, left to right.
func (tree *Tree[T]) Bfs() []T {
	values := make([]T, 0, tree.count)
	if tree.root == nil {
		return values
	}

	q := newQueue[*Node[T]](tree.count)
	q.push(tree.root)
	for q.len() > 0 {
		node, _ := q.pop()
		values = append(values, node.Value)
		if node.Left != nil {
			q.push(node.Left)
		}
		if node.Right != nil {
			q.push(node.Right)
		}
	}
	return values
}

// GetValues is DfsInOrder without recursion, for trees too deep for the stack.
func (tree *Tree[T]) GetValues() []T {
	values := make([]T, 0, tree.count)
	for value := range tree.All() {
		values = append(values, value)
	}
	return values
}

// All yields the values in ascending order. Each call starts a new walk.
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		//利用非递归方式
		stack := InitialStack[*Node[T]](tree.count / 2)
		current := tree.root
		for {
			if current != nil {
				stack.Push(current)
				current = current.Left
				continue
			}
			popNode, succ := stack.Pop()
			if !succ {
				return
			}
			if !yield(popNode.Value) {
				return
			}
			current = popNode.Right
		}
	}
}
