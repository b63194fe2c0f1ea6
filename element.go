package shuttle

func newElement(name string) *Element {
	return &Element{name: name}
}

func (n *Element) Type() NodeType {
	return ElementNode
}

func (n *Element) Name() string {
	return n.name
}

func (n *Element) Properties() []Property {
	return n.properties
}

func (n *Element) Content() []Node {
	return n.content
}

func (n *Element) IsVoid() bool {
	return IsVoidElement(n.name)
}

// AddChild appends a content item. Void elements reject all content;
// adjacent text nodes are merged.
func (n *Element) AddChild(cur Node) error {
	if cur == nil {
		return ErrNilNode
	}
	if n.IsVoid() {
		return ErrContentInVoid
	}
	n.content = appendMerged(n.content, cur)
	return nil
}

func (n *Element) AddContent(b []byte) error {
	return n.AddChild(newText(b))
}

// AddProperty appends prop to the property list. Properties only
// exist in the attribute area at the start of an element, so the call
// fails once any content item has been added. Duplicate names are
// rejected; the caller decides whether that is fatal.
func (n *Element) AddProperty(prop Property) error {
	if len(n.content) > 0 {
		return ErrPropertyAfterContent
	}
	if err := validateName(prop.Name); err != nil {
		return err
	}
	for _, p := range n.properties {
		if p.Name == prop.Name {
			return ErrDuplicateProperty
		}
	}
	n.properties = append(n.properties, prop)
	return nil
}

// Property looks up a property by name.
func (n *Element) Property(name string) (Property, bool) {
	for _, p := range n.properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}
