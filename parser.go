package shuttle

import "github.com/shuttle-markup/shuttle/sax"

// Parse consumes b and returns the document tree alongside every
// parse error that was collected.
func Parse(b []byte, options ...ParseOption) (*Document, []ParseError) {
	return NewParser(options...).Parse(b)
}

func NewParser(options ...ParseOption) *Parser {
	p := &Parser{
		sax:      NewTreeBuilder(),
		maxDepth: DefaultMaxDepth,
	}
	for _, o := range options {
		switch o.Ident() {
		case identSAX{}:
			p.sax = o.Value().(sax.Handler)
		case identRecovery{}:
			p.recovery = o.Value().(RecoveryMode)
		case identMaxDepth{}:
			p.maxDepth = o.Value().(int)
		case identEncoding{}:
			p.encoding = o.Value().(string)
		}
	}
	return p
}

// Parse consumes b and returns the resulting document plus all
// collected parse errors. In strict mode (the default) the slice
// holds at most one error and the document may be partial; in lenient
// mode the document is best-effort and the slice holds everything the
// parser recovered from. The caller decides which errors are fatal
// for its purpose.
func (p *Parser) Parse(b []byte) (*Document, []ParseError) {
	ctx := &parserCtx{}
	if err := ctx.init(p, b); err != nil {
		return nil, ctx.errors
	}
	defer ctx.release() //nolint:errcheck

	// grammar violations are already recorded in ctx.errors; the
	// return value only signals early termination
	_ = ctx.parseDocument()

	return ctx.doc, ctx.errors
}
