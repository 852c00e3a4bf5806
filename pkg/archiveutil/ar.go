package archiveutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/go-logr/logr"
)

const (
	controlArchive = "control.tar"
	controlFile    = "control"
)

var ErrNoControlFile = errors.New("control file not found")

// ControlFromDeb reads a .deb archive and returns the contents
// of the 'control' file inside its control.tar member.
func ControlFromDeb(ctx context.Context, r io.Reader) (string, error) {
	log := logr.FromContextOrDiscard(ctx)
	tr := ar.NewReader(r)

	for {
		header, err := tr.Next()
		switch {
		case err == io.EOF:
			return "", ErrNoControlFile
		case err != nil:
			log.Error(err, "failed to read file from archive")
			return "", err
		case header == nil:
			continue
		}

		// GNU ar terminates names with a '/'
		name := strings.TrimSuffix(strings.TrimSpace(header.Name), "/")
		if !strings.HasPrefix(name, controlArchive) {
			log.V(5).Info("skipping archive member", "name", name)
			continue
		}

		log.V(4).Info("found control archive", "name", name, "size", header.Size)
		dec, err := NewReader(name, tr)
		if err != nil {
			return "", fmt.Errorf("decompressing %s: %w", name, err)
		}
		data, err := ExtractFile(ctx, dec, controlFile)
		_ = dec.Close()
		if errors.Is(err, ErrNotFound) {
			return "", ErrNoControlFile
		}
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
