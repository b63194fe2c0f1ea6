// Package sax provides the event-driven interface to the shuttle
// parser, in the spirit of SAX for XML: the parser announces document
// structure as it recognizes it, and the handler decides what to build.
// The default handler assembles a document tree, but callers that only
// need a subset of the events can install their own handler and skip
// tree construction entirely.
package sax

// Context is an opaque handle to the parser invocation that produced
// the event.
type Context interface{}

type PropertyKind int

const (
	ValueProperty PropertyKind = iota + 1
	BooleanProperty
	EmptyStringProperty
)

func (k PropertyKind) String() string {
	switch k {
	case ValueProperty:
		return "ValueProperty"
	case BooleanProperty:
		return "BooleanProperty"
	case EmptyStringProperty:
		return "EmptyStringProperty"
	default:
		return "PropertyKind(unknown)"
	}
}

// Property is one parsed element property. Value carries the decoded
// value for ValueProperty, and is empty for the other two kinds.
type Property struct {
	Name  string
	Kind  PropertyKind
	Value string
}

// Handler receives parse events in document order. Element events are
// balanced: every StartElement is matched by an EndElement, including
// elements that were recovered from malformed input. Returning a
// non-nil error aborts the parse.
type Handler interface {
	StartDocument(ctx Context) error
	EndDocument(ctx Context) error
	StartElement(ctx Context, name string) error
	EndElement(ctx Context, name string) error
	Property(ctx Context, prop Property) error
	Characters(ctx Context, content []byte) error
	Comment(ctx Context, content []byte) error
}
