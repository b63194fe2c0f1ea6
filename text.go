package shuttle

func newText(b []byte) *Text {
	t := Text{}
	t.content = append(t.content, b...)
	return &t
}

func (n *Text) Type() NodeType {
	return TextNode
}

func (n *Text) Content() []byte {
	return n.content
}

func (n *Text) AddContent(b []byte) {
	n.content = append(n.content, b...)
}
