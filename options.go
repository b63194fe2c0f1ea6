package shuttle

import (
	"github.com/lestrrat-go/option"
	"github.com/shuttle-markup/shuttle/sax"
)

type Option = option.Interface

type identEncoding struct{}
type identMaxDepth struct{}
type identRecovery struct{}
type identSAX struct{}

type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithEncoding forces the input encoding instead of sniffing a BOM.
// Names are resolved through the encoding package.
func WithEncoding(v string) ParseOption {
	return &parseOption{option.New(identEncoding{}, v)}
}

// WithMaxDepth overrides the maximum element nesting depth. Input
// nested deeper produces a NestingTooDeep parse error instead of
// unbounded recursion.
func WithMaxDepth(v int) ParseOption {
	return &parseOption{option.New(identMaxDepth{}, v)}
}

// WithRecovery selects strict or lenient error handling.
func WithRecovery(v RecoveryMode) ParseOption {
	return &parseOption{option.New(identRecovery{}, v)}
}

// WithSAX replaces the default tree-building handler. When a custom
// handler is installed Parse returns a nil Document; the handler owns
// whatever it built from the events.
func WithSAX(v sax.Handler) ParseOption {
	return &parseOption{option.New(identSAX{}, v)}
}
