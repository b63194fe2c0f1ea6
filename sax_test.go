package shuttle_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shuttle-markup/shuttle"
	"github.com/shuttle-markup/shuttle/sax"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	events []string
}

func (r *eventRecorder) add(format string, args ...interface{}) error {
	r.events = append(r.events, fmt.Sprintf(format, args...))
	return nil
}

func (r *eventRecorder) handler() *sax.Callback {
	return &sax.Callback{
		StartDocumentHandler: func(_ sax.Context) error {
			return r.add("start-document")
		},
		EndDocumentHandler: func(_ sax.Context) error {
			return r.add("end-document")
		},
		StartElementHandler: func(_ sax.Context, name string) error {
			return r.add("start-element %s", name)
		},
		EndElementHandler: func(_ sax.Context, name string) error {
			return r.add("end-element %s", name)
		},
		PropertyHandler: func(_ sax.Context, prop sax.Property) error {
			return r.add("property %s=%q (%s)", prop.Name, prop.Value, prop.Kind)
		},
		CharactersHandler: func(_ sax.Context, data []byte) error {
			return r.add("characters %q", data)
		},
		CommentHandler: func(_ sax.Context, data []byte) error {
			return r.add("comment %q", data)
		},
	}
}

func TestSAXEvents(t *testing.T) {
	rec := &eventRecorder{}
	doc, errs := shuttle.Parse([]byte(`(div class=x (span hi))`), shuttle.WithSAX(rec.handler()))
	require.Empty(t, errs, "no parse errors expected")
	require.Nil(t, doc, "no tree is built with a custom handler")

	require.Equal(t, []string{
		"start-document",
		"start-element div",
		`property class="x" (ValueProperty)`,
		"start-element span",
		`characters "hi"`,
		"end-element span",
		"end-element div",
		"end-document",
	}, rec.events)
}

func TestSAXComment(t *testing.T) {
	rec := &eventRecorder{}
	_, errs := shuttle.Parse([]byte(`(! note !)`), shuttle.WithSAX(rec.handler()))
	require.Empty(t, errs)

	require.Equal(t, []string{
		"start-document",
		`comment " note "`,
		"end-document",
	}, rec.events)
}

func TestSAXHandlerAbort(t *testing.T) {
	boom := errors.New("boom")
	h := &sax.Callback{
		CharactersHandler: func(_ sax.Context, _ []byte) error {
			return boom
		},
	}

	_, errs := shuttle.Parse(
		[]byte(`(p one) (p two)`),
		shuttle.WithSAX(h),
		shuttle.WithRecovery(shuttle.RecoverLenient),
	)

	// handler failures abort even in lenient mode
	require.Len(t, errs, 1)
	require.Equal(t, shuttle.HandlerAborted, errs[0].Kind)
	require.ErrorIs(t, errs[0], boom)
}

func TestSAXNilCallbacks(t *testing.T) {
	// unset callbacks are skipped, not called
	_, errs := shuttle.Parse([]byte(`(div (p hi))`), shuttle.WithSAX(&sax.Callback{}))
	require.Empty(t, errs)
}
