package cmd

import (
	"encoding/json"
	"errors"

	"github.com/djcass44/dpkg-parser/pkg/debian"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file or url]",
	Short: "report unsatisfiable dependencies",
	Args:  cobra.ExactArgs(1),
	RunE:  check,
}

var errCheckFailed = errors.New("dependency check failed")

func check(cmd *cobra.Command, args []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	doc, path, err := parseSource(cmd, args[0])
	if err != nil {
		return err
	}
	idx := debian.NewIndex(cmd.Context(), path, doc)
	report := idx.Check(cmd.Context())

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "\t")
	if err := enc.Encode(report); err != nil {
		return err
	}
	if !report.OK() {
		log.Info("found problems", "unresolved", len(report.Unresolved), "conflicts", len(report.Conflicts))
		return errCheckFailed
	}
	return nil
}
