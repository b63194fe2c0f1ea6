package shuttle

import (
	"errors"

	"github.com/lestrrat-go/strcursor"
	"github.com/shuttle-markup/shuttle/sax"
)

type parserState int

const (
	psEOF parserState = iota - 1
	psStart
	psContent
	psDone
)

const (
	MaxNameLength   = 50000
	DefaultMaxDepth = 256

	maxEntityLength = 48
)

var (
	ErrAmpersandRequired    = errors.New("'&' was required here")
	ErrCommentRequired      = errors.New("'(!' was required here")
	ErrContentInVoid        = errors.New("content not allowed in void element")
	ErrDuplicateProperty    = errors.New("duplicate property name")
	ErrElementNameRequired  = errors.New("element name required")
	ErrEmptyElement         = errors.New("element is empty")
	ErrInvalidEntityRef     = errors.New("invalid entity reference")
	ErrInvalidName          = errors.New("invalid shuttle name")
	ErrNestingTooDeep       = errors.New("maximum nesting depth exceeded")
	ErrOpenParenRequired    = errors.New("'(' was required here")
	ErrPropertyAfterContent = errors.New("property not allowed after content")
	ErrPropertyNameRequired = errors.New("property name required")
	ErrUnmatchedCloseParen  = errors.New("unmatched ')'")
	ErrUnmatchedOpenParen   = errors.New("unmatched '(': input ended inside an element")
	ErrUnterminatedComment  = errors.New("comment not terminated by '!)'")
	ErrUnterminatedValue    = errors.New(`quoted value not terminated by '"'`)
)

// RecoveryMode selects what the parser does when it hits a grammar
// violation. Strict stops at the first error; lenient records it,
// applies a recovery and keeps going so one bad construct does not
// hide diagnostics for the rest of the document.
type RecoveryMode int

const (
	RecoverStrict RecoveryMode = iota
	RecoverLenient
)

type Parser struct {
	sax      sax.Handler
	recovery RecoveryMode
	maxDepth int
	encoding string
}

type parserCtx struct {
	cursor   strcursor.Cursor
	offset   int // bytes consumed; the cursor does not expose this
	instate  parserState
	recovery RecoveryMode
	maxDepth int
	depth    int
	sax      sax.Handler
	userData interface{}
	doc      *Document
	errors   []ParseError
	elemidx  int
}
