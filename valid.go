package shuttle

// The HTML void elements. Instances can never hold content; the tree
// enforces this at construction time.
var voidElements = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// IsVoidElement reports whether name is one of the HTML void elements.
func IsVoidElement(name string) bool {
	_, ok := voidElements[name]
	return ok
}

func isBlankCh(c rune) bool {
	return c == 0x20 || c == 0x9 || c == 0xA || c == 0xD
}

// Name ::= [A-Za-z_] [A-Za-z0-9_.:-]*
func isNameStartChar(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_'
}

func isNameChar(c rune) bool {
	return isNameStartChar(c) ||
		(c >= '0' && c <= '9') ||
		c == '.' || c == ':' || c == '-'
}

func validateName(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	for i, c := range name {
		if i == 0 {
			if !isNameStartChar(c) {
				return ErrInvalidName
			}
			continue
		}
		if !isNameChar(c) {
			return ErrInvalidName
		}
	}
	return nil
}

// isChar matches the XML Char production, which Shuttle borrows for
// the set of scalar values a character reference may produce.
func isChar(c int32) bool {
	if c == 0x9 || c == 0xA || c == 0xD {
		return true
	}
	if c >= 0x20 && c <= 0xD7FF {
		return true
	}
	if c >= 0xE000 && c <= 0xFFFD {
		return true
	}
	if c >= 0x10000 && c <= 0x10FFFF {
		return true
	}
	return false
}
