package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/djcass44/dpkg-parser/pkg/dpkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument(t *testing.T) {
	doc, err := dpkg.Parse("Package: baz\nDepends: a, b | c")
	require.NoError(t, err)

	var cases = []struct {
		format string
		out    string
	}{
		{
			outputControl,
			"Package: baz\nDepends: a, b | c\n",
		},
		{
			outputJSON,
			"{\n\t\"packages\": [\n\t\t{\n\t\t\t\"name\": \"baz\",\n\t\t\t\"description\": \"\",\n\t\t\t\"depends\": [\n\t\t\t\t{\n\t\t\t\t\t\"name\": \"a\",\n\t\t\t\t\t\"alternates\": []\n\t\t\t\t},\n\t\t\t\t{\n\t\t\t\t\t\"name\": \"b\",\n\t\t\t\t\t\"alternates\": [\n\t\t\t\t\t\t\"c\"\n\t\t\t\t\t]\n\t\t\t\t}\n\t\t\t]\n\t\t}\n\t]\n}\n",
		},
	}

	for _, tt := range cases {
		t.Run(tt.format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			assert.NoError(t, writeDocument(buf, tt.format, doc))
			assert.EqualValues(t, tt.out, buf.String())
		})
	}

	t.Run("yaml", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.NoError(t, writeDocument(buf, outputYAML, doc))
		assert.Contains(t, buf.String(), "- name: baz\n")
		assert.Contains(t, buf.String(), "alternates:\n")
	})
	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, writeDocument(&bytes.Buffer{}, "xml", doc))
	})
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()

	var cases = []struct {
		name string
		body string
	}{
		{
			"selection.yaml",
			`apiVersion: dpkg.dcas.dev/v1
kind: Selection
metadata:
  name: base
spec:
  source: ./status
  packages:
    - tcpd
    - bash
`,
		},
		{
			"selection.json",
			`{"apiVersion": "dpkg.dcas.dev/v1", "kind": "Selection", "metadata": {"name": "base"}, "spec": {"source": "./status", "packages": ["tcpd", "bash"]}}`,
		},
		{
			"selection.toml",
			`apiVersion = "dpkg.dcas.dev/v1"
kind = "Selection"

[metadata]
name = "base"

[spec]
source = "./status"
packages = ["tcpd", "bash"]
`,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			cfg, err := readConfig(path)
			assert.NoError(t, err)
			assert.EqualValues(t, "base", cfg.Name)
			assert.EqualValues(t, "./status", cfg.Spec.Source)
			assert.EqualValues(t, []string{"tcpd", "bash"}, cfg.Spec.Packages)
		})
	}

	t.Run("wrong kind", func(t *testing.T) {
		path := filepath.Join(dir, "build.yaml")
		require.NoError(t, os.WriteFile(path, []byte("kind: Build\nspec:\n  source: status\n"), 0644))
		_, err := readConfig(path)
		assert.Error(t, err)
	})
}
