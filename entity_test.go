package shuttle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveEntity(t *testing.T) {
	inputs := map[string]string{
		"amp":    "&",
		"lt":     "<",
		"gt":     ">",
		"quot":   `"`,
		"apos":   "'",
		"equals": "=",
		"#65":    "A",
		"#x41":   "A",
		"#X41":   "A",
		"#38":    "&",
		"#x2603": "☃",
		"nbsp":   "\u00a0",
		"hellip": "…",
	}

	for ref, expected := range inputs {
		t.Logf("checking &%s;", ref)
		s, err := ResolveEntity(ref)
		require.NoError(t, err, "ResolveEntity(%q) should succeed", ref)
		require.Equal(t, expected, s, "replacement matches for &%s;", ref)
	}
}

func TestResolveEntityInvalid(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"#x",
		"#12x",
		"#xG1",
		"bogusref",
		"notx", // "not" is a legacy prefix match, not a full name
		"ampx",
		"ltx",
		"#1114112", // one past the last scalar value
		"#x110000",
		"#0", // NUL is not a Char
	}

	for _, ref := range inputs {
		t.Logf("checking &%s;", ref)
		_, err := ResolveEntity(ref)
		require.ErrorIs(t, err, ErrInvalidEntityRef, "ResolveEntity(%q) should fail", ref)
	}
}

func TestScanEntity(t *testing.T) {
	type result struct {
		text string
		n    int
		ok   bool
	}
	inputs := map[string]result{
		"&amp; more":   {"&", 5, true},
		"&#65;BC":      {"A", 5, true},
		"&bogusref;x":  {"&bogusref;", 10, false},
		"&notx; more":  {"&notx;", 6, false},
		"&oops stop":   {"&", 1, false},
		"&;":           {"&;", 2, false},
		"&":            {"&", 1, false},
	}

	for input, expect := range inputs {
		t.Logf("checking '%s'", input)
		text, n, err := scanEntity(input)
		require.Equal(t, expect.text, text, "replacement text for '%s'", input)
		require.Equal(t, expect.n, n, "consumed length for '%s'", input)
		if expect.ok {
			require.NoError(t, err, "scanEntity('%s') should succeed", input)
		} else {
			require.ErrorIs(t, err, ErrInvalidEntityRef, "scanEntity('%s') should fail", input)
		}
	}
}
