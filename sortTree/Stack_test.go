package sortTree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	stack := InitialStack[*Node[int]](100)
	require.Equal(t, 100, cap(stack.stack), "initial stack's cap should be 100")
	require.Equal(t, -1, stack.top, "stack's member should be zero")

	for i := 0; i < 50; i++ {
		stack.Push(newTreeNode(i))
	}
	require.Equal(t, 49, stack.top)
	require.Equal(t, 50, stack.Len())

	for i := 49; i >= 10; i-- {
		popNode, has := stack.Pop()
		require.Equal(t, true, has, "pop should be successful")
		require.NotNil(t, popNode, "the member that poped should not be nil")
		require.Equal(t, i, popNode.Value, "stack pops in reverse push order")
	}
	require.Equal(t, 9, stack.top)

	for i := 0; i < 10; i++ {
		popNode, has := stack.Pop()
		require.Equal(t, true, has, "pop should be successful")
		require.NotNil(t, popNode, "the member that poped should not be nil")
	}
	require.Equal(t, -1, stack.top, "stack should be nil")

	// grows past the initial size
	for i := 0; i < 200; i++ {
		stack.Push(newTreeNode(i))
	}
	require.Equal(t, 199, stack.top)

	for i := 0; i < 200; i++ {
		_, has := stack.Pop()
		require.Equal(t, true, has, "pop should be successful")
	}
	require.Equal(t, -1, stack.top, "stack should be nil")

	for i := 0; i < 100; i++ {
		popNode, has := stack.Pop()
		require.Equal(t, false, has, "pop should be false")
		require.Nil(t, popNode, "the member that poped should be nil")
	}
	require.Equal(t, -1, stack.top)

	stack.FreeStack()
	require.Equal(t, 0, len(stack.stack))
	require.Equal(t, 0, stack.Len())
}

func TestInitialStackDefaultSize(t *testing.T) {
	stack := InitialStack[int](0)
	require.Equal(t, DEFAULTSTACKSIZE, cap(stack.stack))
}

func TestQueue(t *testing.T) {
	q := newQueue[int](2)
	_, ok := q.pop()
	require.False(t, ok)

	for i := 0; i < 5; i++ {
		q.push(i)
	}
	require.Equal(t, 5, q.len())
	for i := 0; i < 5; i++ {
		v, ok := q.pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.Equal(t, 0, q.len())
	_, ok = q.pop()
	require.False(t, ok)
}
