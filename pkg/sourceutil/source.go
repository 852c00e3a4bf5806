package sourceutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/djcass44/dpkg-parser/pkg/archiveutil"
	"github.com/djcass44/dpkg-parser/pkg/dpkg"
	"github.com/go-logr/logr"
)

const extDeb = ".deb"

var (
	ErrPathDoesNotExist = errors.New("path does not exist")
	ErrPermissionDenied = errors.New("permission denied")
)

// Read returns the textual contents of a status file, Packages
// index or .deb archive, ready to be given to dpkg.Parse.
//
// Compressed files are expanded based on their extension and
// surrounding whitespace is removed.
func Read(ctx context.Context, path string) (string, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", mapError(err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), extDeb) {
		log.V(1).Info("reading control file from deb archive")
		control, err := archiveutil.ControlFromDeb(ctx, f)
		if err != nil {
			return "", fmt.Errorf("reading deb %s: %w", path, err)
		}
		return strings.TrimSpace(control), nil
	}

	if archiveutil.IsCompressed(path) {
		log.V(1).Info("decompressing file")
	}
	r, err := archiveutil.NewReader(path, f)
	if err != nil {
		return "", fmt.Errorf("decompressing %s: %w", path, err)
	}
	defer r.Close()

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, r); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	log.V(2).Info("read file", "bytes", buf.Len())
	return strings.TrimSpace(buf.String()), nil
}

// ParseFile reads and parses the file at path.
func ParseFile(ctx context.Context, path string) (*dpkg.Document, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("path", path)

	source, err := Read(ctx, path)
	if err != nil {
		return nil, err
	}
	doc, err := dpkg.Parse(source)
	if err != nil {
		log.V(1).Info("failed to parse file")
		return nil, err
	}
	log.V(1).Info("successfully parsed file", "count", len(doc.Packages))
	return doc, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrPathDoesNotExist, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
