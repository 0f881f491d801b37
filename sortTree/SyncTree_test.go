package sortTree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyncTree(t *testing.T) {
	tree := NewSyncTree[int]()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if i%2 == 0 {
					tree.Insert(w*100 + i)
				} else {
					tree.InsertRecursively(w*100 + i)
				}
				_ = tree.Contains(i)
				_ = tree.DfsInOrder()
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, 800, tree.GetCount())
	values := tree.DfsInOrder()
	require.Len(t, values, 800)
	for i, v := range values {
		require.Equal(t, i, v)
	}

	for i := 0; i < 800; i += 2 {
		require.True(t, tree.Remove(i))
	}
	require.False(t, tree.Remove(0))
	require.Equal(t, 400, tree.GetCount())

	second, ok := tree.FindSecondHighest()
	require.True(t, ok)
	require.Equal(t, 797, second)

	tree.Clear()
	require.Equal(t, 0, tree.GetCount())
	require.True(t, tree.IsBalanced())
	require.Empty(t, tree.Bfs())
	require.Empty(t, tree.DfsPreOrder())
	require.Empty(t, tree.DfsPostOrder())
}
