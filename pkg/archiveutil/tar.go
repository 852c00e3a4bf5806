package archiveutil

import (
	"archive/tar"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-logr/logr"
)

var ErrNotFound = errors.New("file not found in archive")

// ExtractFile returns the contents of the regular file called
// name (ignoring any leading directories) in a tar archive.
func ExtractFile(ctx context.Context, r io.Reader, name string) ([]byte, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("name", name)
	tr := tar.NewReader(r)

	for {
		header, err := tr.Next()
		switch {
		case err == io.EOF:
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		case err != nil:
			log.Error(err, "failed to read file from archive")
			return nil, err
		case header == nil:
			continue
		}

		if !header.FileInfo().Mode().IsRegular() || filepath.Base(header.Name) != name {
			continue
		}
		log.V(5).Info("extracting file", "target", header.Name, "size", header.Size)
		data, err := io.ReadAll(tr)
		if err != nil {
			log.Error(err, "failed to extract file", "target", header.Name)
			return nil, err
		}
		return data, nil
	}
}
