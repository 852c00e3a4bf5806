package lockfile

import (
	"context"
	"fmt"
	"slices"
	"sort"

	v1 "github.com/djcass44/dpkg-parser/pkg/api/v1"
	"github.com/djcass44/dpkg-parser/pkg/debian"
	"github.com/go-logr/logr"
)

const Version = 1

// Generate resolves each root against the index and records
// the combined dependency closure.
func Generate(ctx context.Context, name, source, integrity string, idx *debian.Index, roots []string) (*Lock, error) {
	log := logr.FromContextOrDiscard(ctx)

	l := &Lock{
		Name:            name,
		LockfileVersion: Version,
		Source:          source,
		Integrity:       integrity,
		Roots:           append([]string{}, roots...),
		Packages:        map[string]Package{},
	}
	sort.Strings(l.Roots)

	for _, root := range roots {
		packages, err := idx.Resolve(ctx, root)
		if err != nil {
			return nil, err
		}
		for _, p := range packages {
			if _, ok := l.Packages[p.Name]; ok {
				continue
			}
			var depends []string
			for _, lib := range p.Depends {
				selected, ok, err := idx.Select(lib)
				if err != nil {
					return nil, err
				}
				if ok {
					depends = append(depends, selected)
				}
			}
			log.V(2).Info("locking package", "name", p.Name, "deps", len(depends))
			l.Packages[p.Name] = Package{
				Name:        p.Name,
				Description: p.Description,
				Depends:     depends,
			}
		}
	}
	return l, nil
}

// Validate checks that the selection file lines up
// with what we expect from the lockfile and vice versa.
// integrity is the current digest of the source.
func (l *Lock) Validate(cfg v1.SelectionSpec, integrity string) error {
	if l.Source != cfg.Source {
		return fmt.Errorf("source has changed: %s != %s", l.Source, cfg.Source)
	}
	if l.Integrity != integrity {
		return fmt.Errorf("source contents have changed: %s != %s", l.Integrity, integrity)
	}
	// check that the selected packages are all in the lockfile
	for _, n := range cfg.Packages {
		if !slices.Contains(l.Roots, n) {
			return fmt.Errorf("package not found in lock: %s", n)
		}
		if _, ok := l.Packages[n]; !ok {
			return fmt.Errorf("package not found in lock: %s", n)
		}
	}

	// now we do the reverse

	for _, r := range l.Roots {
		if !slices.Contains(cfg.Packages, r) {
			return fmt.Errorf("package found in lock, but not selection: %s", r)
		}
	}

	// every locked dependency must be locked itself
	for _, k := range l.SortedKeys() {
		for _, d := range l.Packages[k].Depends {
			if _, ok := l.Packages[d]; !ok {
				return fmt.Errorf("dependency of %s not found in lock: %s", k, d)
			}
		}
	}

	return nil
}

// SortedKeys returns package names
// sorted alphabetically.
func (l *Lock) SortedKeys() []string {
	pkgKeys := make([]string, 0)
	for k := range l.Packages {
		pkgKeys = append(pkgKeys, k)
	}
	sort.Strings(pkgKeys)
	return pkgKeys
}
