package shuttle

import "io"

// Dumper serializes a Document to HTML text. Serialization is
// deterministic: properties and content are emitted in insertion
// order, property values are always double-quoted regardless of how
// the source spelled them, and void elements never receive a closing
// tag. The only failure paths are writer errors and trees not built
// by this package.
type Dumper struct{}

func (d *Dumper) DumpDoc(out io.Writer, doc *Document) error {
	if doc == nil {
		return ErrNilNode
	}
	for _, n := range doc.Content() {
		if err := d.DumpNode(out, n); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dumper) DumpNode(out io.Writer, n Node) error {
	switch n := n.(type) {
	case *Text:
		return d.writeEscaped(out, n.Content(), false)
	case *Element:
		return d.dumpElement(out, n)
	}
	return ErrInvalidOperation
}

func (d *Dumper) dumpElement(out io.Writer, e *Element) error {
	if _, err := io.WriteString(out, "<"+e.Name()); err != nil {
		return err
	}

	for _, prop := range e.Properties() {
		if _, err := io.WriteString(out, " "+prop.Name); err != nil {
			return err
		}
		if prop.Kind == BooleanProperty {
			continue
		}
		if _, err := io.WriteString(out, `="`); err != nil {
			return err
		}
		if err := d.writeEscaped(out, []byte(prop.Value), true); err != nil {
			return err
		}
		if _, err := io.WriteString(out, `"`); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(out, ">"); err != nil {
		return err
	}

	if e.IsVoid() {
		// void elements have no content and no closing tag
		return nil
	}

	for _, child := range e.Content() {
		if err := d.DumpNode(out, child); err != nil {
			return err
		}
	}

	_, err := io.WriteString(out, "</"+e.Name()+">")
	return err
}

// writeEscaped re-encodes the characters HTML reserves: '&', '<' and
// '>' everywhere, plus '"' inside property values.
func (d *Dumper) writeEscaped(out io.Writer, b []byte, quoted bool) error {
	start := 0
	for i := 0; i < len(b); i++ {
		var esc string
		switch b[i] {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			if !quoted {
				continue
			}
			esc = "&quot;"
		default:
			continue
		}
		if _, err := out.Write(b[start:i]); err != nil {
			return err
		}
		if _, err := io.WriteString(out, esc); err != nil {
			return err
		}
		start = i + 1
	}
	_, err := out.Write(b[start:])
	return err
}
