package debian

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/djcass44/dpkg-parser/pkg/dpkg"
	"github.com/go-logr/logr"
	version "github.com/knqyf263/go-deb-version"
)

var ErrNotFound = errors.New("package not found")

// NewIndex indexes the packages in doc by name. When a name
// appears more than once the first occurrence is kept.
func NewIndex(ctx context.Context, source string, doc *dpkg.Document) *Index {
	log := logr.FromContextOrDiscard(ctx).WithValues("source", source)

	packages := make(map[string]*dpkg.Package, len(doc.Packages))
	for i := range doc.Packages {
		p := &doc.Packages[i]
		if _, ok := packages[p.Name]; ok {
			log.V(4).Info("ignoring duplicate package", "name", p.Name)
			continue
		}
		packages[p.Name] = p
	}
	log.V(1).Info("successfully indexed document", "count", len(doc.Packages), "unique", len(packages))
	return &Index{
		doc:      doc,
		packages: packages,
		source:   source,
	}
}

func (idx *Index) Count() int {
	return len(idx.doc.Packages)
}

func (idx *Index) Source() string {
	return idx.source
}

func (idx *Index) Get(name string) (*dpkg.Package, bool) {
	p, ok := idx.packages[name]
	return p, ok
}

// Select returns the name of the first alternative of lib
// that exists in the index.
func (idx *Index) Select(lib dpkg.Library) (string, bool, error) {
	relations, err := Relations(lib)
	if err != nil {
		return "", false, err
	}
	for _, r := range relations {
		for _, name := range r.Names {
			if _, ok := idx.packages[name]; ok {
				return name, true, nil
			}
		}
	}
	return "", false, nil
}

// Resolve returns the named package followed by everything
// it transitively depends on, in breadth-first order.
// Dependencies that cannot be satisfied by the index are
// skipped.
func (idx *Index) Resolve(ctx context.Context, name string) ([]dpkg.Package, error) {
	log := logr.FromContextOrDiscard(ctx).WithValues("root", name)

	root, ok := idx.packages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	seen := map[string]struct{}{name: {}}
	queue := []*dpkg.Package{root}
	var out []dpkg.Package

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		out = append(out, *p)
		log.V(5).Info("visiting package", "name", p.Name, "deps", len(p.Depends))

		for _, lib := range p.Depends {
			selected, ok, err := idx.Select(lib)
			if err != nil {
				return nil, fmt.Errorf("resolving dependencies of %s: %w", p.Name, err)
			}
			if !ok {
				log.V(2).Info("unable to satisfy dependency", "name", p.Name, "dependency", lib.String())
				continue
			}
			if _, ok := seen[selected]; ok {
				continue
			}
			seen[selected] = struct{}{}
			queue = append(queue, idx.packages[selected])
		}
	}
	log.V(1).Info("resolved package", "count", len(out))
	return out, nil
}

// Check looks for dependencies that no package in the index
// can satisfy, and for packages whose version constraints
// contradict each other.
func (idx *Index) Check(ctx context.Context) Report {
	log := logr.FromContextOrDiscard(ctx)

	report := Report{
		Unresolved: []Unresolved{},
		Conflicts:  []Conflict{},
	}
	constraints := map[string][]*PackageVersion{}

	for _, p := range idx.doc.Packages {
		for _, lib := range p.Depends {
			_, ok, err := idx.Select(lib)
			if err != nil || !ok {
				report.Unresolved = append(report.Unresolved, Unresolved{
					Package:    p.Name,
					Dependency: lib.String(),
				})
			}
			// only a clause without alternates is a hard
			// requirement on a single package
			if err != nil || len(lib.Alternates) > 0 {
				continue
			}
			pv, err := ParseVersion(lib.Name)
			if err != nil || pv.Version == "" {
				continue
			}
			for _, name := range pv.Names {
				constraints[name] = append(constraints[name], pv)
			}
		}
	}

	names := make([]string, 0, len(constraints))
	for k := range constraints {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, name := range names {
		if satisfiable(constraints[name]) {
			continue
		}
		log.V(1).Info("found conflicting constraints", "name", name, "count", len(constraints[name]))
		c := Conflict{Name: name}
		for _, pv := range constraints[name] {
			c.Constraints = append(c.Constraints, pv.String())
		}
		report.Conflicts = append(report.Conflicts, c)
	}
	return report
}

func (r *Report) OK() bool {
	return len(r.Unresolved) == 0 && len(r.Conflicts) == 0
}

type bound struct {
	raw       string
	v         version.Version
	inclusive bool
}

// satisfiable reports whether a single version could meet
// every constraint. Constraints with unparsable versions are
// ignored.
func satisfiable(constraints []*PackageVersion) bool {
	var lower, upper *bound
	var valid []*PackageVersion
	for _, pv := range constraints {
		v, err := version.NewVersion(pv.Version)
		if err != nil {
			continue
		}
		valid = append(valid, pv)
		b := &bound{raw: pv.Version, v: v}
		switch pv.normalisedConstraint() {
		case ">=":
			b.inclusive = true
			lower = tighterLower(lower, b)
		case ">>":
			lower = tighterLower(lower, b)
		case "<=":
			b.inclusive = true
			upper = tighterUpper(upper, b)
		case "<<":
			upper = tighterUpper(upper, b)
		case "=":
			b.inclusive = true
			lower = tighterLower(lower, b)
			upper = tighterUpper(upper, &bound{raw: b.raw, v: b.v, inclusive: true})
		}
	}
	if lower == nil || upper == nil {
		return true
	}
	if lower.v.LessThan(upper.v) {
		return true
	}
	if !lower.v.Equal(upper.v) {
		return false
	}
	// the only candidate is the shared bound itself
	for _, pv := range valid {
		if !pv.Matches(lower.raw) {
			return false
		}
	}
	return true
}

func tighterLower(a, b *bound) *bound {
	switch {
	case a == nil:
		return b
	case b.v.GreaterThan(a.v):
		return b
	case b.v.Equal(a.v) && !b.inclusive:
		return b
	default:
		return a
	}
}

func tighterUpper(a, b *bound) *bound {
	switch {
	case a == nil:
		return b
	case b.v.LessThan(a.v):
		return b
	case b.v.Equal(a.v) && !b.inclusive:
		return b
	default:
		return a
	}
}
