package shuttle

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/strcursor"
	"github.com/shuttle-markup/shuttle/encoding"
	"github.com/shuttle-markup/shuttle/internal/debug"
)

func (ctx *parserCtx) init(p *Parser, b []byte) error {
	ctx.instate = psStart
	ctx.recovery = p.recovery
	ctx.maxDepth = p.maxDepth
	ctx.sax = p.sax
	ctx.userData = ctx
	ctx.depth = 0
	ctx.offset = 0
	ctx.doc = nil
	ctx.errors = nil

	decoded, err := ctx.decodeInput(b, p.encoding)
	if err != nil {
		ctx.errors = append(ctx.errors, ParseError{
			Kind: InvalidEncoding,
			Err:  err,
		})
		return err
	}
	ctx.cursor = strcursor.NewRuneCursor(bytes.NewReader(decoded))
	return nil
}

func (ctx *parserCtx) release() error {
	ctx.sax = nil
	ctx.userData = nil
	return nil
}

var (
	patUTF8BOM    = []byte{0xEF, 0xBB, 0xBF}
	patUTF16LEBOM = []byte{0xFF, 0xFE}
	patUTF16BEBOM = []byte{0xFE, 0xFF}
)

// decodeInput converts the raw input to UTF-8. The encoding is taken
// from the parser option when one was given, and sniffed from a BOM
// otherwise. Input without a BOM is assumed to already be UTF-8.
func (ctx *parserCtx) decodeInput(b []byte, name string) ([]byte, error) {
	if name == "" {
		switch {
		case bytes.HasPrefix(b, patUTF8BOM):
			return b[3:], nil
		case bytes.HasPrefix(b, patUTF16LEBOM):
			name = "utf16le"
			b = b[2:]
		case bytes.HasPrefix(b, patUTF16BEBOM):
			name = "utf16be"
			b = b[2:]
		default:
			return b, nil
		}
	}

	enc := encoding.Load(name)
	if enc == nil {
		return nil, errors.New("unsupported encoding '" + name + "'")
	}
	return enc.NewDecoder().Bytes(b)
}

// error records err as a ParseError at the current cursor position.
// The returned error is nil when parsing may continue (lenient mode),
// and the recorded ParseError when it must stop.
func (ctx *parserCtx) error(kind ErrorKind, err error) error {
	pe, ok := err.(ParseError)
	if !ok {
		pe = ParseError{
			Kind:       kind,
			Err:        err,
			Column:     ctx.cursor.Column(),
			Line:       strings.TrimLeft(ctx.cursor.Line(), "\n"),
			LineNumber: ctx.cursor.LineNumber(),
			Location:   ctx.offset,
		}
	}
	ctx.errors = append(ctx.errors, pe)
	if ctx.recovery == RecoverStrict {
		ctx.instate = psDone
		return pe
	}
	return nil
}

// saxError classifies an error returned by the handler. Tree
// construction failures map back to grammar error kinds and follow the
// recovery mode; anything else aborts the parse outright.
func (ctx *parserCtx) saxError(err error) error {
	switch {
	case errors.Is(err, ErrContentInVoid):
		return ctx.error(ContentInVoidElement, err)
	case errors.Is(err, ErrDuplicateProperty),
		errors.Is(err, ErrPropertyAfterContent),
		errors.Is(err, ErrInvalidName):
		return ctx.error(InvalidPropertyName, err)
	default:
		_ = ctx.error(HandlerAborted, err)
		ctx.instate = psDone
		return err
	}
}

// The cur* wrappers are the only code that touches the cursor. The
// cursor counts in runes and keeps no byte offset, so consuming always
// goes through curAdvance, which accounts for the consumed bytes.

func (ctx *parserCtx) curHasChars(n int) bool {
	return ctx.cursor.PeekN(n) != utf8.RuneError
}

func (ctx *parserCtx) curDone() bool {
	return ctx.cursor.Done()
}

func (ctx *parserCtx) curAdvance(n int) {
	for i := 0; i < n; i++ {
		r := ctx.cursor.Peek()
		if r == utf8.RuneError {
			return
		}
		ctx.offset += utf8.RuneLen(r)
		_ = ctx.cursor.Advance(1)
	}
}

func (ctx *parserCtx) curPeek(n int) rune {
	return ctx.cursor.PeekN(n)
}

// curPeekString returns up to n runes of lookahead without consuming.
func (ctx *parserCtx) curPeekString(n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		r := ctx.cursor.PeekN(i)
		if r == utf8.RuneError {
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (ctx *parserCtx) curConsume(n int) string {
	runes := make([]rune, 0, n)
	for i := 1; i <= n; i++ {
		r := ctx.cursor.PeekN(i)
		if r == utf8.RuneError {
			break
		}
		runes = append(runes, r)
	}
	ctx.curAdvance(len(runes))
	return string(runes)
}

func (ctx *parserCtx) curConsumePrefix(s string) bool {
	if ctx.cursor.ConsumeString(s) {
		ctx.offset += len(s)
		return true
	}
	return false
}

func (ctx *parserCtx) curHasPrefix(s string) bool {
	return ctx.cursor.HasPrefixString(s)
}

func (ctx *parserCtx) skipBlanks() {
	i := 1
	for ; ctx.curHasChars(i); i++ {
		if !isBlankCh(ctx.curPeek(i)) {
			break
		}
	}
	i--
	if i > 0 {
		ctx.curAdvance(i)
	}
}

// skipBalanced consumes input until depth parens opened so far have
// been closed, or input runs out. Best-effort: it does not interpret
// quoted values, so a paren inside one counts too.
func (ctx *parserCtx) skipBalanced(depth int) {
	for depth > 0 && !ctx.curDone() {
		switch ctx.curPeek(1) {
		case '(':
			depth++
		case ')':
			depth--
		}
		ctx.curAdvance(1)
	}
}

// parseName consumes a name token: [A-Za-z_][A-Za-z0-9_.:-]*. An
// empty return means the cursor was not on a name start character; no
// input is consumed in that case.
func (ctx *parserCtx) parseName() string {
	if !isNameStartChar(ctx.curPeek(1)) {
		return ""
	}
	i := 2
	for ; i <= MaxNameLength && ctx.curHasChars(i); i++ {
		if !isNameChar(ctx.curPeek(i)) {
			break
		}
	}
	return ctx.curConsume(i - 1)
}

// hasPropertyAhead reports whether the cursor sits on a token of the
// form Name'='. This is the lookahead half of the property/content
// disambiguation rule: it keeps `x=5` an attribute of a fresh element
// and `x&equals;5` text, because '&' is not a name character.
func (ctx *parserCtx) hasPropertyAhead() bool {
	if !isNameStartChar(ctx.curPeek(1)) {
		return false
	}
	// same length bound as parseName, so the lookahead never accepts
	// a token parseName would truncate
	i := 2
	for ; i <= MaxNameLength && ctx.curHasChars(i); i++ {
		c := ctx.curPeek(i)
		if isNameChar(c) {
			continue
		}
		return c == '='
	}
	return false
}

func (ctx *parserCtx) parseDocument() error {
	if debug.Enabled {
		debug.Printf("START parseDocument")
		defer debug.Printf("END   parseDocument")
	}

	if s := ctx.sax; s != nil {
		if err := s.StartDocument(ctx.userData); err != nil {
			return ctx.saxError(err)
		}
	}

	ctx.instate = psContent
	for !ctx.curDone() && ctx.instate != psDone {
		ctx.skipBlanks()
		if ctx.curDone() {
			break
		}

		switch {
		case ctx.curHasPrefix("(!"):
			if err := ctx.parseComment(); err != nil {
				return err
			}
		case ctx.curPeek(1) == '(':
			if _, err := ctx.parseElement(); err != nil {
				return err
			}
		case ctx.curPeek(1) == ')':
			ctx.curAdvance(1)
			if err := ctx.error(UnmatchedParenthesis, ErrUnmatchedCloseParen); err != nil {
				return err
			}
		default:
			if err := ctx.parseText(); err != nil {
				return err
			}
		}
	}

	if s := ctx.sax; s != nil {
		if err := s.EndDocument(ctx.userData); err != nil {
			return ctx.saxError(err)
		}
	}
	ctx.instate = psDone
	return nil
}

// parseElement parses one '(' name ... ')' form, recursively. The
// property/content disambiguation is local parser state: contentMode
// flips the moment the first content item lands and never flips back.
// The returned bool reports whether the element was actually announced
// to the handler; recovered forms that contribute nothing (`()`, a bad
// tag name, input past the depth limit) return false so the caller
// does not count them as content.
func (ctx *parserCtx) parseElement() (bool, error) {
	if debug.Enabled {
		ctx.elemidx++
		i := ctx.elemidx
		debug.Printf("START parseElement (%d)", i)
		defer debug.Printf("END   parseElement (%d)", i)
	}

	if ctx.curPeek(1) != '(' {
		return false, ctx.error(UnmatchedParenthesis, ErrOpenParenRequired)
	}
	ctx.curAdvance(1)

	ctx.depth++
	defer func() { ctx.depth-- }()
	if ctx.depth > ctx.maxDepth {
		if err := ctx.error(NestingTooDeep, ErrNestingTooDeep); err != nil {
			return false, err
		}
		ctx.skipBalanced(1)
		return false, nil
	}

	ctx.skipBlanks()
	name := ctx.parseName()
	if name == "" {
		if ctx.curPeek(1) == ')' {
			ctx.curAdvance(1)
			// `()` contributes nothing
			return false, ctx.error(EmptyElement, ErrEmptyElement)
		}
		if err := ctx.error(InvalidTagName, ErrElementNameRequired); err != nil {
			return false, err
		}
		ctx.skipBalanced(1)
		return false, nil
	}

	if s := ctx.sax; s != nil {
		if err := s.StartElement(ctx.userData, name); err != nil {
			if err = ctx.saxError(err); err != nil {
				return false, err
			}
		}
	}

	contentMode := false
	for {
		ctx.skipBlanks()
		if ctx.curDone() {
			if err := ctx.error(UnmatchedParenthesis, ErrUnmatchedOpenParen); err != nil {
				return true, err
			}
			// input exhausted: close the element implicitly
			break
		}

		if ctx.curPeek(1) == ')' {
			ctx.curAdvance(1)
			break
		}

		switch {
		case ctx.curHasPrefix("(!"):
			// comments live where whitespace lives; they do not
			// flip content mode
			if err := ctx.parseComment(); err != nil {
				return true, err
			}
		case ctx.curPeek(1) == '(':
			added, err := ctx.parseElement()
			if err != nil {
				return true, err
			}
			if added {
				contentMode = true
			}
		case !contentMode && ctx.hasPropertyAhead():
			if err := ctx.parseProperty(); err != nil {
				return true, err
			}
		default:
			if err := ctx.parseText(); err != nil {
				return true, err
			}
			contentMode = true
		}
	}

	return true, ctx.endElement(name)
}

func (ctx *parserCtx) endElement(name string) error {
	if s := ctx.sax; s != nil {
		if err := s.EndElement(ctx.userData, name); err != nil {
			return ctx.saxError(err)
		}
	}
	return nil
}

// parseProperty consumes Name'=' and one of the three value forms:
// a quoted value (entities expanded), an unquoted value running to
// whitespace or a paren (entities not expanded), or nothing at all,
// which makes the property boolean. `name=""` is an explicit empty
// string and is distinct from the boolean form.
func (ctx *parserCtx) parseProperty() error {
	if debug.Enabled {
		debug.Printf("START parseProperty")
		defer debug.Printf("END   parseProperty")
	}

	name := ctx.parseName()
	if name == "" {
		return ctx.error(InvalidPropertyName, ErrPropertyNameRequired)
	}
	ctx.curAdvance(1) // '='

	prop := Property{Name: name}
	switch c := ctx.curPeek(1); {
	case c == '"':
		ctx.curAdvance(1)

		// a value cannot contain a literal '"', so the first one closes
		i := 1
		for ; ctx.curHasChars(i); i++ {
			if ctx.curPeek(i) == '"' {
				break
			}
		}

		var raw string
		if ctx.curHasChars(i) {
			raw = ctx.curConsume(i - 1)
			ctx.curAdvance(1) // closing '"'
		} else {
			if err := ctx.error(UnterminatedQuotedValue, ErrUnterminatedValue); err != nil {
				return err
			}
			// close implicitly at the next ')' or end of input
			i = 1
			for ; ctx.curHasChars(i); i++ {
				if ctx.curPeek(i) == ')' {
					break
				}
			}
			raw = ctx.curConsume(i - 1)
		}

		value, err := ctx.expandValue(raw)
		if err != nil {
			return err
		}
		prop.Value = value
		if raw == "" {
			prop.Kind = EmptyStringProperty
		} else {
			prop.Kind = ValueProperty
		}
	case ctx.curDone() || isBlankCh(c) || c == ')' || c == '(':
		prop.Kind = BooleanProperty
	default:
		i := 1
		for ; ctx.curHasChars(i); i++ {
			cc := ctx.curPeek(i)
			if isBlankCh(cc) || cc == '(' || cc == ')' {
				break
			}
		}
		prop.Value = ctx.curConsume(i - 1)
		prop.Kind = ValueProperty
	}

	if debug.Enabled {
		debug.Printf(" ----> property %s (%s) = '%s'", prop.Name, prop.Kind, prop.Value)
	}

	if s := ctx.sax; s != nil {
		if err := s.Property(ctx.userData, prop); err != nil {
			return ctx.saxError(err)
		}
	}
	return nil
}

// expandValue resolves entity references inside a quoted value.
// Unresolvable references pass through literally.
func (ctx *parserCtx) expandValue(raw string) (string, error) {
	if !strings.ContainsRune(raw, '&') {
		return raw, nil
	}

	var buf strings.Builder
	for i := 0; i < len(raw); {
		if raw[i] != '&' {
			buf.WriteByte(raw[i])
			i++
			continue
		}
		rep, n, err := scanEntity(raw[i:])
		if err != nil {
			if err := ctx.error(InvalidEntityReference, err); err != nil {
				return "", err
			}
		}
		buf.WriteString(rep)
		i += n
	}
	return buf.String(), nil
}

// parseText accumulates a text run up to the next '(', ')' or end of
// input, resolving entity references inline. Whitespace inside the run
// is preserved verbatim.
func (ctx *parserCtx) parseText() error {
	if debug.Enabled {
		debug.Printf("START parseText")
		defer debug.Printf("END   parseText")
	}

	buf := []byte(nil)
	for !ctx.curDone() {
		c := ctx.curPeek(1)
		if c == '(' || c == ')' {
			break
		}
		if c == '&' {
			rep, err := ctx.parseReference()
			if err != nil {
				if err := ctx.error(InvalidEntityReference, err); err != nil {
					return err
				}
			}
			buf = append(buf, rep...)
			continue
		}

		buf = utf8.AppendRune(buf, c)
		ctx.curAdvance(1)
	}

	if len(buf) == 0 {
		return nil
	}
	if s := ctx.sax; s != nil {
		if err := s.Characters(ctx.userData, buf); err != nil {
			return ctx.saxError(err)
		}
	}
	return nil
}

// parseReference consumes one entity reference at the cursor. On
// failure the returned text is the literal spelling of whatever was
// consumed, which lenient parsing substitutes as-is.
func (ctx *parserCtx) parseReference() (string, error) {
	if ctx.curPeek(1) != '&' {
		return "", ErrAmpersandRequired
	}

	// scanEntity only ever examines ASCII, so the consumed byte count
	// it reports is also a rune count
	rep, n, err := scanEntity(ctx.curPeekString(maxEntityLength + 2))
	ctx.curAdvance(n)
	return rep, err
}

// parseComment consumes a '(!' ... '!)' comment. Comments never nest:
// the first '!)' closes. The comment body is reported to the handler
// but never enters the tree.
func (ctx *parserCtx) parseComment() error {
	if debug.Enabled {
		debug.Printf("START parseComment")
		defer debug.Printf("END   parseComment")
	}

	if !ctx.curConsumePrefix("(!") {
		return ctx.error(UnterminatedComment, ErrCommentRequired)
	}

	i := 1
	for ; ctx.curHasChars(i); i++ {
		if ctx.curPeek(i) == '!' && ctx.curPeek(i+1) == ')' {
			break
		}
	}

	if !ctx.curHasChars(i) {
		// comment runs to end of input
		content := ctx.curConsume(i - 1)
		if err := ctx.error(UnterminatedComment, ErrUnterminatedComment); err != nil {
			return err
		}
		return ctx.emitComment(content)
	}

	content := ctx.curConsume(i - 1)
	ctx.curAdvance(2) // '!)'
	return ctx.emitComment(content)
}

func (ctx *parserCtx) emitComment(content string) error {
	if s := ctx.sax; s != nil {
		if err := s.Comment(ctx.userData, []byte(content)); err != nil {
			return ctx.saxError(err)
		}
	}
	return nil
}
