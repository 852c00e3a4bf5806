package cmd

import (
	"path/filepath"

	"github.com/djcass44/dpkg-parser/cmd/cache"
	"github.com/djcass44/dpkg-parser/pkg/downloader"
	"github.com/djcass44/dpkg-parser/pkg/dpkg"
	"github.com/djcass44/dpkg-parser/pkg/envutil"
	"github.com/djcass44/dpkg-parser/pkg/sourceutil"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

// localSource expands the given source and downloads it
// if required, returning the path of a local file and whether
// it was downloaded.
func localSource(cmd *cobra.Command, src string) (string, bool, error) {
	log := logr.FromContextOrDiscard(cmd.Context())

	path, err := envutil.Expand(src)
	if err != nil {
		return "", false, err
	}
	if !downloader.IsRemote(path) {
		return path, false, nil
	}

	cacheDir, _ := cmd.Flags().GetString(flagCacheDir)
	refresh, _ := cmd.Flags().GetBool(flagRefresh)

	log.V(1).Info("fetching remote source", "src", path)
	dl, err := downloader.NewDownloader(cache.Dir(cacheDir), refresh)
	if err != nil {
		return "", false, err
	}
	path, err = dl.Download(cmd.Context(), path)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

// selectionSource returns the local path of a selection's
// source. Relative local paths are relative to the directory
// of the selection file.
func selectionSource(cmd *cobra.Command, configPath, src string) (string, error) {
	path, remote, err := localSource(cmd, src)
	if err != nil {
		return "", err
	}
	if !remote && !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(configPath), path)
	}
	return path, nil
}

// parseSource reads and parses a local or remote source.
func parseSource(cmd *cobra.Command, src string) (*dpkg.Document, string, error) {
	path, _, err := localSource(cmd, src)
	if err != nil {
		return nil, "", err
	}
	doc, err := sourceutil.ParseFile(cmd.Context(), path)
	if err != nil {
		return nil, "", err
	}
	return doc, path, nil
}
