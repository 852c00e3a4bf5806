package dpkg

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	PackageNameNotFound ErrorKind = iota
)

var ErrPackageNameNotFound = errors.New("package name not found")

// ParseError aborts a parse. Stanza holds the text that
// could not be turned into a Package.
type ParseError struct {
	Kind   ErrorKind
	Stanza string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s\n\n%s", e.reason(), e.Stanza)
}

func (e *ParseError) Is(target error) bool {
	return e.Kind == PackageNameNotFound && target == ErrPackageNameNotFound
}

func (e *ParseError) reason() string {
	switch e.Kind {
	case PackageNameNotFound:
		return ErrPackageNameNotFound.Error()
	default:
		return "unknown parse error"
	}
}
