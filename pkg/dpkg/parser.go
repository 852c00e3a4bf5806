package dpkg

import (
	"strings"
)

const (
	clauseSeparator    = ", "
	alternateSeparator = " | "
)

// Parse reads every stanza in source and returns the packages
// they describe, in order.
//
// Stanzas are separated by an empty line. Parsing stops at the
// first stanza that cannot be turned into a Package and the error
// is returned in place of a partial Document.
func Parse(source string) (*Document, error) {
	packages := make([]Package, 0)
	var stanza []string

	// the trailing empty line makes sure the last stanza
	// is flushed even when the input doesn't end with one
	lines := append(splitLines(source), "")

	for _, line := range lines {
		if line != "" {
			stanza = append(stanza, line)
			continue
		}
		if len(stanza) == 0 {
			continue
		}
		pkg, err := parsePackage(strings.Join(stanza, "\n"))
		if err != nil {
			return nil, err
		}
		packages = append(packages, *pkg)
		stanza = stanza[:0]
	}

	return &Document{Packages: packages}, nil
}

func parsePackage(stanza string) (*Package, error) {
	name := parseField(FieldPackage, stanza)
	if name == "" {
		return nil, &ParseError{Kind: PackageNameNotFound, Stanza: stanza}
	}
	return &Package{
		Name:        name,
		Description: parseField(FieldDescription, stanza),
		Depends:     parseLibraries(parseField(FieldDepends, stanza)),
	}, nil
}

// parseField returns the value of the first occurrence of field
// in the stanza, unfolding any continuation lines. An absent
// field returns an empty string.
func parseField(field Field, stanza string) string {
	prefix := string(field) + ": "

	var content []string
	capturing := false

	for _, line := range splitLines(stanza) {
		if !capturing {
			if strings.HasPrefix(line, prefix) {
				content = append(content, strings.TrimPrefix(line, prefix))
				capturing = true
			}
			continue
		}
		if !isContinuation(line) {
			break
		}
		content = append(content, strings.TrimSpace(line))
	}

	return strings.TrimSpace(strings.Join(content, "\n"))
}

// isContinuation reports whether line belongs to the field above
// it. An empty line never does.
func isContinuation(line string) bool {
	return len(line) > 0 && line[0] == ' '
}

// parseLibraries splits a Depends value into its clauses. The
// split is purely textual, so a clause that itself contains ", "
// is broken in two.
func parseLibraries(value string) []Library {
	libraries := make([]Library, 0)
	if value == "" {
		return libraries
	}
	for _, clause := range strings.Split(value, clauseSeparator) {
		alternatives := strings.Split(clause, alternateSeparator)
		alternates := make([]string, 0, len(alternatives)-1)
		alternates = append(alternates, alternatives[1:]...)
		libraries = append(libraries, Library{
			Name:       alternatives[0],
			Alternates: alternates,
		})
	}
	return libraries
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
