package encoding_test

import (
	"testing"

	"github.com/shuttle-markup/shuttle/encoding"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	known := []string{
		"utf8",
		"utf-8",
		"utf16",
		"utf-16le",
		"utf-16be",
		"iso-8859-1",
		"iso-8859-15",
		"euc-jp",
		"shift_jis",
		"cp932",
		"windows1252",
		"koi8r",
		"big5",
	}
	for _, name := range known {
		require.NotNil(t, encoding.Load(name), "Load(%q) should resolve", name)
	}

	require.Nil(t, encoding.Load("klingon"), "unknown names resolve to nil")
	require.Nil(t, encoding.Load(""), "empty name resolves to nil")
}

func TestLoadCaseInsensitive(t *testing.T) {
	require.NotNil(t, encoding.Load("UTF-8"))
	require.NotNil(t, encoding.Load("Shift_JIS"))
	require.NotNil(t, encoding.Load("ISO-8859-1"))
}

func TestLatin1Decode(t *testing.T) {
	enc := encoding.Load("iso-8859-1")
	require.NotNil(t, enc)

	decoded, err := enc.NewDecoder().Bytes([]byte{'h', 0xE9, 'l', 'l', 'o'})
	require.NoError(t, err)
	require.Equal(t, "héllo", string(decoded))
}
