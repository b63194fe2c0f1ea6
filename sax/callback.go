package sax

// CharactersFunc defines the function type for Callback.CharactersHandler
type CharactersFunc func(ctx Context, content []byte) error

// CommentFunc defines the function type for Callback.CommentHandler
type CommentFunc func(ctx Context, content []byte) error

// EndDocumentFunc defines the function type for Callback.EndDocumentHandler
type EndDocumentFunc func(ctx Context) error

// EndElementFunc defines the function type for Callback.EndElementHandler
type EndElementFunc func(ctx Context, name string) error

// PropertyFunc defines the function type for Callback.PropertyHandler
type PropertyFunc func(ctx Context, prop Property) error

// StartDocumentFunc defines the function type for Callback.StartDocumentHandler
type StartDocumentFunc func(ctx Context) error

// StartElementFunc defines the function type for Callback.StartElementHandler
type StartElementFunc func(ctx Context, name string) error

// Callback dispatches each event to the matching handler function.
// Events whose handler is nil are discarded, so the Callback zero
// value is a valid do-nothing Handler.
type Callback struct {
	CharactersHandler    CharactersFunc
	CommentHandler       CommentFunc
	EndDocumentHandler   EndDocumentFunc
	EndElementHandler    EndElementFunc
	PropertyHandler      PropertyFunc
	StartDocumentHandler StartDocumentFunc
	StartElementHandler  StartElementFunc
}

func (c Callback) StartDocument(ctx Context) error {
	if h := c.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (c Callback) EndDocument(ctx Context) error {
	if h := c.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (c Callback) StartElement(ctx Context, name string) error {
	if h := c.StartElementHandler; h != nil {
		return h(ctx, name)
	}
	return nil
}

func (c Callback) EndElement(ctx Context, name string) error {
	if h := c.EndElementHandler; h != nil {
		return h(ctx, name)
	}
	return nil
}

func (c Callback) Property(ctx Context, prop Property) error {
	if h := c.PropertyHandler; h != nil {
		return h(ctx, prop)
	}
	return nil
}

func (c Callback) Characters(ctx Context, content []byte) error {
	if h := c.CharactersHandler; h != nil {
		return h(ctx, content)
	}
	return nil
}

func (c Callback) Comment(ctx Context, content []byte) error {
	if h := c.CommentHandler; h != nil {
		return h(ctx, content)
	}
	return nil
}
