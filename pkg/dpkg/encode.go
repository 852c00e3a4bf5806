package dpkg

import (
	"bufio"
	"io"
	"strings"
)

// Encode writes the Document back out as control stanzas. The
// output parses back into an identical Document.
func (d *Document) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, pkg := range d.Packages {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(pkg.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (d *Document) String() string {
	sb := strings.Builder{}
	_ = d.Encode(&sb)
	return sb.String()
}

// String renders the package as a single stanza, terminated
// by a newline.
func (p *Package) String() string {
	sb := strings.Builder{}
	writeField(&sb, FieldPackage, p.Name)
	writeField(&sb, FieldDescription, p.Description)
	if len(p.Depends) > 0 {
		clauses := make([]string, len(p.Depends))
		for i := range p.Depends {
			clauses[i] = p.Depends[i].String()
		}
		writeField(&sb, FieldDepends, strings.Join(clauses, clauseSeparator))
	}
	return sb.String()
}

func (l Library) String() string {
	return strings.Join(append([]string{l.Name}, l.Alternates...), alternateSeparator)
}

// writeField folds multi-line values so that every line after
// the first is a continuation line.
func writeField(sb *strings.Builder, field Field, value string) {
	if value == "" {
		return
	}
	lines := strings.Split(value, "\n")
	sb.WriteString(string(field) + ": " + lines[0] + "\n")
	for _, line := range lines[1:] {
		sb.WriteString(" " + line + "\n")
	}
}
