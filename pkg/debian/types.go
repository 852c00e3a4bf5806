package debian

import "github.com/djcass44/dpkg-parser/pkg/dpkg"

// Index provides lookups over the packages of a
// parsed document.
type Index struct {
	doc      *dpkg.Document
	packages map[string]*dpkg.Package
	source   string
}

// PackageVersion is a single dependency relation,
// e.g. "libc6 (>= 2.14)".
type PackageVersion struct {
	Names      []string
	Version    string
	Constraint string
}

// Unresolved is a dependency clause for which no
// alternative exists in the index.
type Unresolved struct {
	Package    string `json:"package" yaml:"package"`
	Dependency string `json:"dependency" yaml:"dependency"`
}

// Conflict is a package whose combined version
// constraints cannot all be met.
type Conflict struct {
	Name        string   `json:"name" yaml:"name"`
	Constraints []string `json:"constraints" yaml:"constraints"`
}

type Report struct {
	Unresolved []Unresolved `json:"unresolved" yaml:"unresolved"`
	Conflicts  []Conflict   `json:"conflicts" yaml:"conflicts"`
}
