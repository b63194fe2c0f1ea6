package shuttle

import (
	"github.com/shuttle-markup/shuttle/internal/debug"
	"github.com/shuttle-markup/shuttle/internal/stack"
	"github.com/shuttle-markup/shuttle/sax"
)

// TreeBuilder is the default sax.Handler: it assembles the events
// back into a Document. Elements rejected by their parent (content
// inside a void element, say) are still pushed onto the open-element
// stack so that their own content has somewhere to go; they simply
// never become reachable from the document.
type TreeBuilder struct {
	doc   *Document
	elems stack.SimpleStack
}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

// Document returns the tree built by the last parse.
func (t *TreeBuilder) Document() *Document {
	return t.doc
}

func (t *TreeBuilder) currentElement() *Element {
	if e, ok := t.elems.Peek().(*Element); ok {
		return e
	}
	return nil
}

func (t *TreeBuilder) StartDocument(ctxif sax.Context) error {
	if debug.Enabled {
		debug.Printf("tree.StartDocument")
	}

	t.doc = NewDocument()
	t.elems.Reset()

	// expose the document immediately so that strict-mode aborts
	// still hand the caller the partial tree
	if pctx, ok := ctxif.(*parserCtx); ok {
		pctx.doc = t.doc
	}
	return nil
}

func (t *TreeBuilder) EndDocument(ctxif sax.Context) error {
	if debug.Enabled {
		debug.Printf("tree.EndDocument")
	}
	t.elems.Reset()
	return nil
}

func (t *TreeBuilder) StartElement(ctxif sax.Context, name string) error {
	if debug.Enabled {
		debug.Printf("tree.StartElement %s", name)
	}

	e, err := t.doc.CreateElement(name)
	if err != nil {
		return err
	}

	var addErr error
	if parent := t.currentElement(); parent != nil {
		addErr = parent.AddChild(e)
	} else {
		addErr = t.doc.AddChild(e)
	}
	t.elems.Push(e)
	return addErr
}

func (t *TreeBuilder) EndElement(ctxif sax.Context, name string) error {
	if debug.Enabled {
		debug.Printf("tree.EndElement %s", name)
	}
	t.elems.Pop()
	return nil
}

func (t *TreeBuilder) Property(ctxif sax.Context, prop sax.Property) error {
	if debug.Enabled {
		debug.Printf("tree.Property %s", prop.Name)
	}

	e := t.currentElement()
	if e == nil {
		return ErrInvalidOperation
	}
	return e.AddProperty(prop)
}

func (t *TreeBuilder) Characters(ctxif sax.Context, content []byte) error {
	if debug.Enabled {
		debug.Printf("tree.Characters '%s'", content)
	}

	if e := t.currentElement(); e != nil {
		return e.AddContent(content)
	}
	// text is legal at the top level; the document is a forest
	return t.doc.AddChild(newText(content))
}

func (t *TreeBuilder) Comment(ctxif sax.Context, content []byte) error {
	if debug.Enabled {
		debug.Printf("tree.Comment '%s'", content)
	}
	// comments contribute nothing to the tree
	return nil
}
