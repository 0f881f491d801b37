package sortTree

import "cmp"

// Tree is an unbalanced binary sort tree. Duplicate values are dropped on
// insert. A Tree is not safe for concurrent use, wrap it in a SyncTree for that.
type Tree[T cmp.Ordered] struct {
	root  *Node[T]
	count int
}

func NewSortTree[T cmp.Ordered]() *Tree[T] {
	tree := Tree[T]{}
	tree.Init()
	return &tree
}

// NewSortTreeWithRoot returns a tree seeded with a single root value.
func NewSortTreeWithRoot[T cmp.Ordered](value T) *Tree[T] {
	tree := NewSortTree[T]()
	tree.root = newTreeNode(value)
	tree.count = 1
	return tree
}

func (tree *Tree[T]) Init() {
	tree.root = nil
	tree.count = 0
}

// Clear releases every node.
func (tree *Tree[T]) Clear() {
	tree.Init()
}

func (tree *Tree[T]) GetCount() int {
	return tree.count
}

func (tree *Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

/*
插入
*/

// Insert adds value walking down from the root in a loop. It returns the tree
// so calls can be chained.
func (tree *Tree[T]) Insert(value T) *Tree[T] {
	if tree.root == nil {
		tree.root = newTreeNode(value)
		tree.count++
		return tree
	}

	current := tree.root
	for {
		if value < current.Value {
			if current.Left == nil {
				current.Left = newTreeNode(value)
				tree.count++
				return tree
			}
			current = current.Left
		} else if value > current.Value {
			if current.Right == nil {
				current.Right = newTreeNode(value)
				tree.count++
				return tree
			}
			current = current.Right
		} else {
			return tree
		}
	}
}

// InsertRecursively is Insert descending one level per call.
func (tree *Tree[T]) InsertRecursively(value T) *Tree[T] {
	if tree.root == nil {
		tree.root = newTreeNode(value)
		tree.count++
		return tree
	}
	if tree.insertAt(tree.root, value) {
		tree.count++
	}
	return tree
}

func (tree *Tree[T]) insertAt(node *Node[T], value T) bool {
	switch {
	case value < node.Value:
		if node.Left == nil {
			node.Left = newTreeNode(value)
			return true
		}
		return tree.insertAt(node.Left, value)
	case value > node.Value:
		if node.Right == nil {
			node.Right = newTreeNode(value)
			return true
		}
		return tree.insertAt(node.Right, value)
	default:
		return false
	}
}

/*
查找
*/

// Find returns the node holding value, or nil.
func (tree *Tree[T]) Find(value T) *Node[T] {
	current := tree.root
	for current != nil {
		if value == current.Value {
			return current
		} else if value < current.Value {
			current = current.Left
		} else {
			current = current.Right
		}
	}
	return nil
}

func (tree *Tree[T]) FindRecursively(value T) *Node[T] {
	return findFrom(tree.root, value)
}

func findFrom[T cmp.Ordered](node *Node[T], value T) *Node[T] {
	if node == nil {
		return nil
	}
	if value == node.Value {
		return node
	}
	if value < node.Value {
		return findFrom(node.Left, value)
	}
	return findFrom(node.Right, value)
}

func (tree *Tree[T]) Contains(value T) bool {
	return tree.Find(value) != nil
}

/*
删除
*/

// Remove deletes value if present and returns the root of the tree afterwards,
// nil when the tree became empty. A missing value leaves the tree untouched.
func (tree *Tree[T]) Remove(value T) *Node[T] {
	var removed bool
	tree.root = removeNode(tree.root, value, &removed)
	if removed {
		tree.count--
	}
	return tree.root
}

// Delete is Remove reporting whether value was in the tree.
func (tree *Tree[T]) Delete(value T) bool {
	before := tree.count
	tree.Remove(value)
	return tree.count < before
}

// removeNode returns the subtree that replaces node. A node with two children
// keeps its place and takes the value of its in-order successor, which is then
// removed from the right subtree.
func removeNode[T cmp.Ordered](node *Node[T], value T, removed *bool) *Node[T] {
	if node == nil {
		return nil
	}

	if value < node.Value {
		node.Left = removeNode(node.Left, value, removed)
		return node
	}
	if value > node.Value {
		node.Right = removeNode(node.Right, value, removed)
		return node
	}

	switch {
	case node.isLeaf():
		*removed = true
		return nil
	case node.Left == nil:
		*removed = true
		return node.Right
	case node.Right == nil:
		*removed = true
		return node.Left
	}

	successor := node.Right
	for successor.Left != nil {
		successor = successor.Left
	}
	node.Value = successor.Value
	node.Right = removeNode(node.Right, successor.Value, removed)
	return node
}
