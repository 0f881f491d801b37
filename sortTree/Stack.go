package sortTree

const (
	DEFAULTSTACKSIZE = 16
)

// Stack is an unbounded LIFO of nodes used by the non-recursive walks.
type Stack[T any] struct {
	stack []T
	top   int
}

func InitialStack[T any](size int) Stack[T] {
	if size <= 0 {
		size = DEFAULTSTACKSIZE
	}
	return Stack[T]{
		stack: make([]T, 0, size),
		top:   -1,
	}
}

func (s *Stack[T]) Push(item T) {
	s.stack = append(s.stack, item)
	s.top++
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s.top == -1 {
		return zero, false
	}
	item := s.stack[s.top]
	s.stack[s.top] = zero
	s.stack = s.stack[:s.top]
	s.top--
	return item, true
}

func (s *Stack[T]) Len() int {
	return s.top + 1
}

func (s *Stack[T]) FreeStack() {
	s.stack = nil
	s.top = -1
}
