// Package shuttle implements a processor for the Shuttle markup
// notation: an S-expression syntax that maps losslessly to HTML.
// Parsing turns Unicode text into a Document tree, serialization turns
// that tree back into HTML text. Neither direction performs any I/O.
package shuttle

import (
	"errors"

	"github.com/shuttle-markup/shuttle/sax"
)

const Version = "0.1.0"

var (
	ErrNilNode          = errors.New("nil node")
	ErrInvalidOperation = errors.New("operation cannot be performed")
)

type NodeType int

const (
	ElementNode NodeType = iota + 1
	TextNode
)

// Node is either an *Element or a *Text. There are no other
// implementations; consumers may switch exhaustively on the two.
type Node interface {
	Type() NodeType
}

type Property = sax.Property
type PropertyKind = sax.PropertyKind

const (
	ValueProperty       = sax.ValueProperty
	BooleanProperty     = sax.BooleanProperty
	EmptyStringProperty = sax.EmptyStringProperty
)

// Element is a named node with ordered properties and ordered content.
// Both orders are insertion orders and are preserved through
// serialization.
type Element struct {
	name       string
	properties []Property
	content    []Node
}

// Text is a run of decoded characters. Entity references have already
// been resolved by the time a Text node exists.
type Text struct {
	content []byte
}

// Document is the ordered forest of top-level nodes produced by one
// parse call. Shuttle has no mandatory single root.
type Document struct {
	content []Node
}
