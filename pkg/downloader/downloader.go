package downloader

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/hashicorp/go-getter"
)

type Downloader struct {
	cacheDir string
	refresh  bool
}

func NewDownloader(cacheDir string, refresh bool) (*Downloader, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, err
	}
	return &Downloader{cacheDir: cacheDir, refresh: refresh}, nil
}

// IsRemote returns true if the source needs to be
// fetched before it can be read.
func IsRemote(src string) bool {
	// forced getters (e.g. git::https://...)
	if strings.Contains(src, "::") {
		return true
	}
	uri, err := url.Parse(src)
	if err != nil {
		return false
	}
	switch uri.Scheme {
	case "http", "https", "s3", "gcs":
		return true
	default:
		return false
	}
}

// Download fetches src into the cache and returns the
// path of the local copy.
func (d *Downloader) Download(ctx context.Context, src string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("src", src)
	log.Info("downloading file")

	uri, err := url.Parse(src)
	if err != nil {
		log.Error(err, "failed to parse url")
		return "", err
	}

	// download the file to a predictable location so that
	// we can avoid repeated downloads. The base name is kept
	// so that compressed indices can be detected by extension
	dst := filepath.Join(d.cacheDir, HashString(src), filepath.Base(uri.Path))
	log.V(1).Info("preparing to download file", "dst", dst)

	if _, err := os.Stat(dst); err == nil && !d.refresh {
		log.V(1).Info("using cached file", "dst", dst)
		return dst, nil
	}

	client := &getter.Client{
		Ctx:             ctx,
		Src:             src,
		Dst:             dst,
		Mode:            getter.ClientModeFile,
		DisableSymlinks: true,
	}
	if err := client.Get(); err != nil {
		log.Error(err, "failed to download file")
		return "", err
	}
	if err := os.Chmod(dst, 0664); err != nil {
		log.Error(err, "failed to update file permissions", "file", dst)
		return "", err
	}

	return dst, nil
}
