package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/djcass44/dpkg-parser/pkg/dpkg"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file or url]",
	Short: "parse a status file, Packages index or .deb",
	Args:  cobra.ExactArgs(1),
	RunE:  parse,
}

const (
	flagOutput = "output"

	outputJSON    = "json"
	outputYAML    = "yaml"
	outputControl = "control"
)

func init() {
	parseCmd.Flags().StringP(flagOutput, "o", outputJSON, "output format (json, yaml or control)")
}

func parse(cmd *cobra.Command, args []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	format, _ := cmd.Flags().GetString(flagOutput)

	doc, path, err := parseSource(cmd, args[0])
	if err != nil {
		return err
	}
	log.V(1).Info("writing document", "path", path, "format", format, "count", len(doc.Packages))
	return writeDocument(cmd.OutOrStdout(), format, doc)
}

func writeDocument(w io.Writer, format string, doc *dpkg.Document) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(doc)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case outputControl:
		return doc.Encode(w)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
