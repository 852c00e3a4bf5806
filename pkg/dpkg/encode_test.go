package dpkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Encode(t *testing.T) {
	doc, err := Parse("Package: foo\nDescription: bar\n\nPackage: baz\nDepends: a, b | c")
	require.NoError(t, err)

	assert.EqualValues(t, "Package: foo\nDescription: bar\n\nPackage: baz\nDepends: a, b | c\n", doc.String())
}

func TestDocument_EncodeRoundTrip(t *testing.T) {
	var cases = []struct {
		name string
		in   string
	}{
		{"status file", statusFile},
		{"libssl", libssl},
		{"blank description line", "Package: a\nDescription: x\n \n y"},
		{"folded depends", "Package: a\nDepends: b,\n c | d"},
		{"multi-line name", "Package: a\n b"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.in)
			require.NoError(t, err)

			again, err := Parse(doc.String())
			require.NoError(t, err)
			assert.EqualValues(t, doc, again)
		})
	}
}

func TestLibrary_String(t *testing.T) {
	var cases = []struct {
		in  Library
		out string
	}{
		{
			Library{Name: "libc6 (>= 2.14)"},
			"libc6 (>= 2.14)",
		},
		{
			Library{Name: "debconf (>= 0.5)", Alternates: []string{"debconf-2.0"}},
			"debconf (>= 0.5) | debconf-2.0",
		},
	}

	for _, tt := range cases {
		t.Run(tt.out, func(t *testing.T) {
			assert.EqualValues(t, tt.out, tt.in.String())
		})
	}
}
