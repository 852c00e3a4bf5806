package dpkg

// Field is a control field understood by the parser.
// Every other field in a stanza is skipped.
type Field string

const (
	FieldPackage     Field = "Package"
	FieldDescription Field = "Description"
	FieldDepends     Field = "Depends"
)

// Document is the result of parsing a status or
// availability file.
type Document struct {
	Packages []Package `json:"packages" yaml:"packages"`
}

type Package struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Depends     []Library `json:"depends" yaml:"depends"`
}

// Library is a single dependency clause. Name is the first
// alternative exactly as written, including any version
// restriction (e.g. "libc6 (>= 2.14)").
type Library struct {
	Name       string   `json:"name" yaml:"name"`
	Alternates []string `json:"alternates" yaml:"alternates"`
}
