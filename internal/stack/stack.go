package stack

type AnyItem interface{}

// SimpleStack is a plain LIFO over interface values.
type SimpleStack []AnyItem

func (s *SimpleStack) Push(i AnyItem) {
	*s = append(*s, i)
}

// Pop removes and returns the top item, or nil when empty.
func (s *SimpleStack) Pop() AnyItem {
	l := s.Len()
	if l <= 0 {
		return nil
	}
	i := (*s)[l-1]
	*s = (*s)[:l-1]
	return i
}

// Peek returns the top item without removing it, or nil when empty.
func (s SimpleStack) Peek() AnyItem {
	if l := s.Len(); l > 0 {
		return s[l-1]
	}
	return nil
}

func (s *SimpleStack) Reset() {
	*s = (*s)[:0]
}

func (s SimpleStack) Len() int {
	return len(s)
}
