package shuttle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElementAddChild(t *testing.T) {
	doc := NewDocument()
	div, err := doc.CreateElement("div")
	require.NoError(t, err, `CreateElement("div") succeeds`)

	require.NoError(t, div.AddContent([]byte("hello ")))
	require.NoError(t, div.AddContent([]byte("world")))
	require.Len(t, div.Content(), 1, "adjacent text nodes merge")
	require.Equal(t, "hello world", string(div.Content()[0].(*Text).Content()))

	span, err := doc.CreateElement("span")
	require.NoError(t, err)
	require.NoError(t, div.AddChild(span))
	require.Len(t, div.Content(), 2)
}

func TestVoidElementRejectsContent(t *testing.T) {
	doc := NewDocument()
	br, err := doc.CreateElement("br")
	require.NoError(t, err)
	require.True(t, br.IsVoid())

	require.ErrorIs(t, br.AddContent([]byte("x")), ErrContentInVoid)

	p, err := doc.CreateElement("p")
	require.NoError(t, err)
	require.ErrorIs(t, br.AddChild(p), ErrContentInVoid)
	require.Empty(t, br.Content(), "nothing sticks to a void element")
}

func TestPropertyOrderingRules(t *testing.T) {
	doc := NewDocument()
	a, err := doc.CreateElement("a")
	require.NoError(t, err)

	require.NoError(t, a.AddProperty(Property{Name: "href", Kind: ValueProperty, Value: "/"}))
	require.NoError(t, a.AddProperty(Property{Name: "target", Kind: ValueProperty, Value: "_blank"}))

	require.ErrorIs(t,
		a.AddProperty(Property{Name: "href", Kind: ValueProperty, Value: "/other"}),
		ErrDuplicateProperty,
	)

	require.NoError(t, a.AddContent([]byte("link")))
	require.ErrorIs(t,
		a.AddProperty(Property{Name: "rel", Kind: ValueProperty, Value: "nofollow"}),
		ErrPropertyAfterContent,
	)

	prop, ok := a.Property("target")
	require.True(t, ok)
	require.Equal(t, "_blank", prop.Value)

	_, ok = a.Property("rel")
	require.False(t, ok)
}

func TestPropertyNameValidated(t *testing.T) {
	doc := NewDocument()
	e, err := doc.CreateElement("p")
	require.NoError(t, err)

	require.ErrorIs(t, e.AddProperty(Property{Name: "9x"}), ErrInvalidName)
	require.ErrorIs(t, e.AddProperty(Property{Name: ""}), ErrInvalidName)
	require.NoError(t, e.AddProperty(Property{Name: "data-x.y:z", Kind: BooleanProperty}))
}

func TestCreateElementValidatesName(t *testing.T) {
	doc := NewDocument()
	inputs := map[string]bool{
		"div":      true,
		"_tpl":     true,
		"my-tag":   true,
		"ns:tag":   true,
		"a.b":      true,
		"":         false,
		"9lives":   false,
		"-dash":    false,
		"with sp":  false,
		"par(en)":  false,
	}

	for name, valid := range inputs {
		_, err := doc.CreateElement(name)
		if valid {
			require.NoError(t, err, "CreateElement(%q) should succeed", name)
		} else {
			require.ErrorIs(t, err, ErrInvalidName, "CreateElement(%q) should fail", name)
		}
	}
}

func TestWalk(t *testing.T) {
	doc, errs := Parse([]byte(`(div (p one) (p two (b three)))`))
	require.Empty(t, errs)

	var names []string
	var texts []string
	err := Walk(doc.Content()[0], func(n Node) error {
		switch n := n.(type) {
		case *Element:
			names = append(names, n.Name())
		case *Text:
			texts = append(texts, string(n.Content()))
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"div", "p", "p", "b"}, names)
	require.Equal(t, []string{"one", "two ", "three"}, texts)
}

func TestWalkNil(t *testing.T) {
	require.ErrorIs(t, Walk(nil, func(Node) error { return nil }), ErrNilNode)
}
