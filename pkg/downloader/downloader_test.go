package downloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRemote(t *testing.T) {
	var cases = []struct {
		s  string
		ok bool
	}{
		{"https://deb.debian.org/debian/dists/bookworm/main/binary-amd64/Packages.xz", true},
		{"http://example.org/status", true},
		{"git::https://example.org/repo.git//status", true},
		{"/var/lib/dpkg/status", false},
		{"./status", false},
		{"file:///var/lib/dpkg/status", false},
	}

	for _, tt := range cases {
		t.Run(tt.s, func(t *testing.T) {
			assert.EqualValues(t, tt.ok, IsRemote(tt.s))
		})
	}
}

func TestDownloader_DownloadCached(t *testing.T) {
	ctx := logr.NewContext(context.TODO(), testr.NewWithOptions(t, testr.Options{Verbosity: 10}))

	cacheDir := t.TempDir()
	src := "https://example.invalid/debian/Packages.gz"

	// seed the cache so that no request is made
	dst := filepath.Join(cacheDir, HashString(src), "Packages.gz")
	require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0755))
	require.NoError(t, os.WriteFile(dst, []byte("cached"), 0644))

	d, err := NewDownloader(cacheDir, false)
	require.NoError(t, err)

	out, err := d.Download(ctx, src)
	assert.NoError(t, err)
	assert.EqualValues(t, dst, out)
}

func TestHashString(t *testing.T) {
	a := HashString("https://example.org/a")
	b := HashString("https://example.org/b")
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
	assert.EqualValues(t, a, HashString("https://example.org/a"))
}
