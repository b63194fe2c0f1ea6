package shuttle

import "fmt"

// ErrorKind names the grammar violation behind a ParseError. The
// first eight kinds are the grammar proper; the remaining ones are
// produced by the processor's own guards rather than the grammar.
type ErrorKind int

const (
	UnmatchedParenthesis ErrorKind = iota + 1
	EmptyElement
	InvalidTagName
	InvalidPropertyName
	UnterminatedQuotedValue
	ContentInVoidElement
	InvalidEntityReference
	UnterminatedComment
	NestingTooDeep
	InvalidEncoding
	HandlerAborted
)

func (k ErrorKind) String() string {
	switch k {
	case UnmatchedParenthesis:
		return "UnmatchedParenthesis"
	case EmptyElement:
		return "EmptyElement"
	case InvalidTagName:
		return "InvalidTagName"
	case InvalidPropertyName:
		return "InvalidPropertyName"
	case UnterminatedQuotedValue:
		return "UnterminatedQuotedValue"
	case ContentInVoidElement:
		return "ContentInVoidElement"
	case InvalidEntityReference:
		return "InvalidEntityReference"
	case UnterminatedComment:
		return "UnterminatedComment"
	case NestingTooDeep:
		return "NestingTooDeep"
	case InvalidEncoding:
		return "InvalidEncoding"
	case HandlerAborted:
		return "HandlerAborted"
	default:
		return "ErrorKind(unknown)"
	}
}

// ParseError is a single grammar violation, with the position the
// cursor was at when it was detected.
type ParseError struct {
	Kind       ErrorKind
	Err        error
	Location   int
	Line       string
	LineNumber int
	Column     int
}

func (e ParseError) Error() string {
	return fmt.Sprintf(
		"%s at line %d, column %d\n -> '%s' <-- around here",
		e.Err,
		e.LineNumber,
		e.Column,
		e.Line,
	)
}

func (e ParseError) Unwrap() error {
	return e.Err
}
