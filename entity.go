package shuttle

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// resolvePredefinedEntity handles the references that show up in
// nearly every document without a trip through the full HTML table.
// "equals" is included because it is the documented escape for forcing
// a name-like token into content mode.
func resolvePredefinedEntity(name string) (string, bool) {
	switch name {
	case "amp":
		return "&", true
	case "lt":
		return "<", true
	case "gt":
		return ">", true
	case "quot":
		return `"`, true
	case "apos":
		return "'", true
	case "equals":
		return "=", true
	}
	return "", false
}

// resolveNamedEntity consults the HTML named character reference
// table. Only an exact, full-name match counts: html.UnescapeString
// also honors HTML's legacy prefix rules ("&notx;" becomes "¬x;"),
// which would leave the unmatched tail, ';' included, in its output.
// A name never contains ';', so a trailing ';' in the result means the
// match was partial and the reference is invalid.
func resolveNamedEntity(name string) (string, bool) {
	if s, ok := resolvePredefinedEntity(name); ok {
		return s, true
	}
	raw := "&" + name + ";"
	if s := html.UnescapeString(raw); s != raw && !strings.HasSuffix(s, ";") {
		return s, true
	}
	return "", false
}

// ResolveEntity resolves the body of an entity reference (the part
// between '&' and ';') to its replacement text. Numeric references are
// parsed here rather than through the HTML table, because HTML's
// recovery rules accept malformed numbers that Shuttle rejects.
func ResolveEntity(ref string) (string, error) {
	if ref == "" {
		return "", ErrInvalidEntityRef
	}
	if ref[0] == '#' {
		r, err := resolveCharRef(ref[1:])
		if err != nil {
			return "", err
		}
		return string(r), nil
	}
	if s, ok := resolveNamedEntity(ref); ok {
		return s, nil
	}
	return "", ErrInvalidEntityRef
}

// resolveCharRef decodes the digits of a numeric character reference:
// decimal, or hexadecimal when prefixed with 'x'/'X'.
func resolveCharRef(digits string) (rune, error) {
	if digits == "" {
		return utf8.RuneError, ErrInvalidEntityRef
	}

	var val int32
	if digits[0] == 'x' || digits[0] == 'X' {
		if len(digits) == 1 {
			return utf8.RuneError, ErrInvalidEntityRef
		}
		for _, c := range digits[1:] {
			if c >= '0' && c <= '9' {
				val = val*16 + (c - '0')
			} else if c >= 'a' && c <= 'f' {
				val = val*16 + (c - 'a') + 10
			} else if c >= 'A' && c <= 'F' {
				val = val*16 + (c - 'A') + 10
			} else {
				return utf8.RuneError, ErrInvalidEntityRef
			}
			if val > unicode.MaxRune {
				return utf8.RuneError, ErrInvalidEntityRef
			}
		}
	} else {
		for _, c := range digits {
			if c >= '0' && c <= '9' {
				val = val*10 + (c - '0')
			} else {
				return utf8.RuneError, ErrInvalidEntityRef
			}
			if val > unicode.MaxRune {
				return utf8.RuneError, ErrInvalidEntityRef
			}
		}
	}

	if !isChar(val) {
		return utf8.RuneError, ErrInvalidEntityRef
	}
	return rune(val), nil
}

// scanEntity decodes one entity reference at the start of s, which
// must begin with '&'. It returns the replacement text and the number
// of bytes consumed. On failure the replacement is the literal text of
// whatever was scanned, so that callers can substitute it and
// continue; everything scanned is ASCII, so bytes and runes agree.
func scanEntity(s string) (string, int, error) {
	j := 1
	for j < len(s) && j <= maxEntityLength {
		c := s[j]
		if c == ';' {
			rep, err := ResolveEntity(s[1:j])
			if err != nil {
				return s[:j+1], j + 1, ErrInvalidEntityRef
			}
			return rep, j + 1, nil
		}
		if c != '#' && !isNameChar(rune(c)) {
			break
		}
		j++
	}

	// no terminating ';' in sight: the '&' stands alone
	return "&", 1, ErrInvalidEntityRef
}
