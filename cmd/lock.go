package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	dpkgv1 "github.com/djcass44/dpkg-parser/pkg/api/v1"
	"github.com/djcass44/dpkg-parser/pkg/debian"
	"github.com/djcass44/dpkg-parser/pkg/lockfile"
	"github.com/djcass44/dpkg-parser/pkg/sourceutil"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/yaml"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "generate a lockfile",
	RunE:  lock,
}

const (
	flagConfig = "config"
	flagVerify = "verify"
)

func init() {
	lockCmd.Flags().StringP(flagConfig, "c", "", "path to a selection file")
	lockCmd.Flags().Bool(flagVerify, false, "verify the existing lockfile instead of writing a new one")

	_ = lockCmd.MarkFlagRequired(flagConfig)
	_ = lockCmd.MarkFlagFilename(flagConfig, ".yaml", ".yml", ".json", ".toml")
}

func lock(cmd *cobra.Command, _ []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	configPath, _ := cmd.Flags().GetString(flagConfig)
	verify, _ := cmd.Flags().GetBool(flagVerify)

	// read the config file
	cfg, err := readConfig(configPath)
	if err != nil {
		return err
	}

	configPath, err = filepath.Abs(configPath)
	if err != nil {
		return err
	}

	src := cfg.Spec.Source
	path, err := selectionSource(cmd, configPath, src)
	if err != nil {
		return err
	}

	log.Info("generating source checksum", "path", path)
	integrity, err := lockfile.Sha256(path)
	if err != nil {
		return err
	}

	if verify {
		log.Info("verifying lockfile")
		l, err := lockfile.Read(cmd.Context(), configPath)
		if err != nil {
			return err
		}
		return l.Validate(cfg.Spec, integrity)
	}

	doc, err := sourceutil.ParseFile(cmd.Context(), path)
	if err != nil {
		return err
	}
	idx := debian.NewIndex(cmd.Context(), src, doc)

	log.Info("resolving packages", "count", len(cfg.Spec.Packages))
	l, err := lockfile.Generate(cmd.Context(), cfg.Name, src, integrity, idx, cfg.Spec.Packages)
	if err != nil {
		return err
	}
	return lockfile.Write(cmd.Context(), configPath, l)
}

func readConfig(s string) (dpkgv1.Selection, error) {
	f, err := os.Open(s)
	if err != nil {
		return dpkgv1.Selection{}, err
	}
	defer f.Close()

	var config dpkgv1.Selection
	if strings.EqualFold(filepath.Ext(s), ".toml") {
		if _, err := toml.NewDecoder(f).Decode(&config); err != nil {
			return dpkgv1.Selection{}, err
		}
	} else if err := yaml.NewYAMLOrJSONDecoder(f, 4).Decode(&config); err != nil {
		return dpkgv1.Selection{}, err
	}
	if config.Kind != "" && config.Kind != dpkgv1.KindSelection {
		return dpkgv1.Selection{}, fmt.Errorf("unexpected kind: %s", config.Kind)
	}
	return config, nil
}
