package shuttle

type WalkFunc func(Node) error

// Walk visits n and, for elements, its content depth-first in document
// order. Traversal stops at the first error.
func Walk(n Node, f WalkFunc) error {
	if n == nil {
		return ErrNilNode
	}

	if err := f(n); err != nil {
		return err
	}
	if e, ok := n.(*Element); ok {
		for _, chld := range e.content {
			if err := Walk(chld, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// appendMerged appends cur to content, folding adjacent text nodes
// into one. The parser emits text in chunks (around entity
// references, for example) and expects them to coalesce.
func appendMerged(content []Node, cur Node) []Node {
	if t, ok := cur.(*Text); ok {
		if l := len(content); l > 0 {
			if prev, ok := content[l-1].(*Text); ok {
				prev.AddContent(t.content)
				return content
			}
		}
	}
	return append(content, cur)
}
