package archiveutil

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

const (
	ExtGzip = ".gz"
	ExtXZ   = ".xz"
	ExtZstd = ".zst"
)

// NewReader wraps r in a decompressor chosen by the
// extension of name. Unknown extensions are returned as-is.
func NewReader(name string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ExtGzip:
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return reader, nil
	case ExtXZ:
		reader, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(reader), nil
	case ExtZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

// IsCompressed reports whether NewReader would decompress
// a file with the given name.
func IsCompressed(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ExtGzip, ExtXZ, ExtZstd:
		return true
	}
	return false
}
