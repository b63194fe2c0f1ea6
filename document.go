package shuttle

import "bytes"

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Content() []Node {
	return d.content
}

// AddChild appends a top-level node. Like elements, the document
// merges adjacent text nodes.
func (d *Document) AddChild(cur Node) error {
	if cur == nil {
		return ErrNilNode
	}
	d.content = appendMerged(d.content, cur)
	return nil
}

func (d *Document) CreateElement(name string) (*Element, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return newElement(name), nil
}

func (d *Document) CreateText(value []byte) (*Text, error) {
	return newText(value), nil
}

// HTMLString serializes the document to HTML text.
func (d *Document) HTMLString() (string, error) {
	out := bytes.Buffer{}
	dumper := Dumper{}
	if err := dumper.DumpDoc(&out, d); err != nil {
		return "", err
	}
	return out.String(), nil
}
