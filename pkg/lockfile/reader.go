package lockfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
)

var ErrMissingLockfile = errors.New("missing lockfile")

func Read(ctx context.Context, cfgPath string) (*Lock, error) {
	log := logr.FromContextOrDiscard(ctx)
	lock, err := os.Open(Name(cfgPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMissingLockfile
		}
		log.Error(err, "failed to open lockfile")
		return nil, err
	}
	defer lock.Close()
	// read the lockfile
	var lockFile Lock
	if err := json.NewDecoder(lock).Decode(&lockFile); err != nil {
		log.Error(err, "failed to read lockfile")
		return nil, err
	}
	for k, v := range lockFile.Packages {
		v.Name = k
		lockFile.Packages[k] = v
	}
	return &lockFile, nil
}

// Write exports the lock next to the selection file
// at cfgPath.
func Write(ctx context.Context, cfgPath string, l *Lock) error {
	log := logr.FromContextOrDiscard(ctx)
	path := Name(cfgPath)
	log.V(1).Info("exporting lockfile", "path", path)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "\t")
	return enc.Encode(l)
}

func Name(s string) string {
	return strings.TrimSuffix(s, filepath.Ext(s)) + "-lock.json"
}
