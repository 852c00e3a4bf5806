package sourceutil

import (
	"archive/tar"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blakesmith/ar"
	"github.com/djcass44/dpkg-parser/pkg/dpkg"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const status = `
Package: foo
Description: bar

Package: baz
Depends: a, b | c

`

func writeGzip(t *testing.T, path string, data []byte) {
	buf := &bytes.Buffer{}
	gw := gzip.NewWriter(buf)
	_, err := gw.Write(data)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func writeDeb(t *testing.T, path, control string) {
	tarBuf := &bytes.Buffer{}
	tw := tar.NewWriter(tarBuf)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "./control", Mode: 0644, Size: int64(len(control)), Typeflag: tar.TypeReg}))
	_, err := tw.Write([]byte(control))
	require.NoError(t, err)
	require.NoError(t, tw.Close())

	buf := &bytes.Buffer{}
	w := ar.NewWriter(buf)
	require.NoError(t, w.WriteGlobalHeader())
	require.NoError(t, w.WriteHeader(&ar.Header{Name: "control.tar", Size: int64(tarBuf.Len()), Mode: 0644, ModTime: time.Unix(0, 0)}))
	_, err = w.Write(tarBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestRead(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))
	dir := t.TempDir()

	plain := filepath.Join(dir, "status")
	require.NoError(t, os.WriteFile(plain, []byte(status), 0644))

	compressed := filepath.Join(dir, "Packages.gz")
	writeGzip(t, compressed, []byte(status))

	deb := filepath.Join(dir, "hello_2.10-3_amd64.deb")
	writeDeb(t, deb, "Package: hello\nDescription: hi\n")

	var cases = []struct {
		name string
		path string
		out  string
	}{
		{"plain", plain, "Package: foo\nDescription: bar\n\nPackage: baz\nDepends: a, b | c"},
		{"gzip", compressed, "Package: foo\nDescription: bar\n\nPackage: baz\nDepends: a, b | c"},
		{"deb", deb, "Package: hello\nDescription: hi"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Read(ctx, tt.path)
			assert.NoError(t, err)
			assert.EqualValues(t, tt.out, out)
		})
	}
}

func TestRead_Missing(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	_, err := Read(ctx, filepath.Join(t.TempDir(), "does-not-exist"))
	assert.ErrorIs(t, err, ErrPathDoesNotExist)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFile(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "status")
		require.NoError(t, os.WriteFile(path, []byte(status), 0644))

		doc, err := ParseFile(ctx, path)
		require.NoError(t, err)
		require.Len(t, doc.Packages, 2)
		assert.EqualValues(t, "foo", doc.Packages[0].Name)
		assert.EqualValues(t, []string{"c"}, doc.Packages[1].Depends[1].Alternates)
	})
	t.Run("invalid", func(t *testing.T) {
		path := filepath.Join(dir, "broken")
		require.NoError(t, os.WriteFile(path, []byte("Version: 1.0\n"), 0644))

		doc, err := ParseFile(ctx, path)
		assert.Nil(t, doc)
		assert.ErrorIs(t, err, dpkg.ErrPackageNameNotFound)
	})
}
