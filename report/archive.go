package report

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xyproto/unzip"
)

// ExpandArchive extracts a zip of broker reports into destDir and returns the
// contained CSV paths, sorted for a deterministic import order. Brokers hand
// out month-of-statements bundles this way.
func ExpandArchive(zipPath, destDir string) ([]string, error) {
	if err := unzip.Extract(zipPath, destDir); err != nil {
		return nil, fmt.Errorf("extract %s: %w", zipPath, err)
	}

	var files []string
	err := filepath.WalkDir(destDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".csv") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", destDir, err)
	}

	sort.Strings(files)
	return files, nil
}
