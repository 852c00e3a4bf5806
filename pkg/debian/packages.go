package debian

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/djcass44/dpkg-parser/pkg/dpkg"
	version "github.com/knqyf263/go-deb-version"
)

var regexpParseVersion = regexp.MustCompile(`\((?P<constraint>\W{1,2})?(?P<version>.*)\)`)
var regexpName = regexp.MustCompile(`^[^([]+`)

// ParseVersion parses a debian version as used in the "Depends" section.
//
// https://www.debian.org/doc/debian-policy/ch-relationships.html
func ParseVersion(s string) (*PackageVersion, error) {
	matches := regexpName.FindStringSubmatch(s)
	if len(matches) == 0 {
		return nil, errors.New("unable to extract package names")
	}
	// extract the possible names
	names := strings.Split(matches[0], " | ")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
		// drop any multi-arch qualifier (e.g. python3:any)
		names[i], _, _ = strings.Cut(names[i], ":")
	}
	// extract the version and constraint if they're present
	matches = regexpParseVersion.FindStringSubmatch(strings.TrimPrefix(s, matches[0]))
	var version string
	var constraint string
	if len(matches) >= 2 {
		version = strings.TrimSpace(matches[regexpParseVersion.SubexpIndex("version")])
		constraint = strings.TrimSpace(matches[regexpParseVersion.SubexpIndex("constraint")])
	}
	return &PackageVersion{
		Names:      names,
		Version:    version,
		Constraint: constraint,
	}, nil
}

// Relations interprets every alternative of a dependency
// clause, primary first.
func Relations(lib dpkg.Library) ([]*PackageVersion, error) {
	alternatives := append([]string{lib.Name}, lib.Alternates...)
	out := make([]*PackageVersion, len(alternatives))
	for i, s := range alternatives {
		pv, err := ParseVersion(s)
		if err != nil {
			return nil, fmt.Errorf("parsing relation '%s': %w", s, err)
		}
		out[i] = pv
	}
	return out, nil
}

func (pv *PackageVersion) Matches(s1 string) bool {
	// if there's a version missing, match
	// anything
	if s1 == "" || pv.Version == "" {
		return true
	}
	v1, err := version.NewVersion(s1)
	if err != nil {
		return false
	}
	v2, err := version.NewVersion(pv.Version)
	if err != nil {
		return false
	}
	switch pv.normalisedConstraint() {
	case ">>":
		return v1.GreaterThan(v2)
	case "<<":
		return v1.LessThan(v2)
	case "=":
		return v1.Equal(v2)
	case ">=":
		return v1.GreaterThan(v2) || v1.Equal(v2)
	case "<=":
		return v1.LessThan(v2) || v1.Equal(v2)
	default:
		return true
	}
}

// normalisedConstraint maps the deprecated '<' and '>'
// relations to their modern meaning.
func (pv *PackageVersion) normalisedConstraint() string {
	switch pv.Constraint {
	case "<":
		return "<="
	case ">":
		return ">="
	default:
		return pv.Constraint
	}
}

func (pv *PackageVersion) String() string {
	if pv.Version == "" {
		return strings.Join(pv.Names, " | ")
	}
	return fmt.Sprintf("%s (%s %s)", strings.Join(pv.Names, " | "), pv.Constraint, pv.Version)
}
