package sortTree

import (
	"cmp"
	"sync"
)

// SyncTree guards a Tree with a read-write lock. It hands out values only,
// never nodes.
type SyncTree[T cmp.Ordered] struct {
	tree   *Tree[T]
	rwLock *sync.RWMutex
}

func NewSyncTree[T cmp.Ordered]() *SyncTree[T] {
	return &SyncTree[T]{
		tree:   NewSortTree[T](),
		rwLock: &sync.RWMutex{},
	}
}

func (s *SyncTree[T]) Insert(value T) {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()
	s.tree.Insert(value)
}

func (s *SyncTree[T]) InsertRecursively(value T) {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()
	s.tree.InsertRecursively(value)
}

// Remove reports whether value was present.
func (s *SyncTree[T]) Remove(value T) bool {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()
	return s.tree.Delete(value)
}

func (s *SyncTree[T]) Clear() {
	s.rwLock.Lock()
	defer s.rwLock.Unlock()
	s.tree.Clear()
}

func (s *SyncTree[T]) Contains(value T) bool {
	s.rwLock.RLock() //读锁
	defer s.rwLock.RUnlock()
	return s.tree.Contains(value)
}

func (s *SyncTree[T]) GetCount() int {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()
	return s.tree.GetCount()
}

func (s *SyncTree[T]) DfsPreOrder() []T {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()
	return s.tree.DfsPreOrder()
}

func (s *SyncTree[T]) DfsInOrder() []T {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()
	return s.tree.DfsInOrder()
}

func (s *SyncTree[T]) DfsPostOrder() []T {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()
	return s.tree.DfsPostOrder()
}

func (s *SyncTree[T]) Bfs() []T {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()
	return s.tree.Bfs()
}

func (s *SyncTree[T]) IsBalanced() bool {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()
	return s.tree.IsBalanced()
}

func (s *SyncTree[T]) FindSecondHighest() (T, bool) {
	s.rwLock.RLock()
	defer s.rwLock.RUnlock()
	return s.tree.FindSecondHighest()
}
