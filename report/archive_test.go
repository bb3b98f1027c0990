package report

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestZip(t *testing.T, files map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reports.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func TestExpandArchive(t *testing.T) {
	t.Parallel()

	zipPath := writeTestZip(t, map[string]string{
		"feb.csv":    "Symbol,Net\nMSFT,-20\n",
		"jan.csv":    "Symbol,Net\nAAPL,103.50\n",
		"readme.txt": "not a report",
	})

	dest := t.TempDir()
	files, err := ExpandArchive(zipPath, dest)
	require.NoError(t, err)
	require.Len(t, files, 2, "non-CSV entries are ignored")
	assert.Equal(t, "feb.csv", filepath.Base(files[0]))
	assert.Equal(t, "jan.csv", filepath.Base(files[1]))

	sheet, err := ReadSheetFile(files[1])
	require.NoError(t, err)
	trades, err := Parse(sheet, "jan.csv", importDay)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, "AAPL", trades[0].Symbol)
}

func TestExpandArchiveMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ExpandArchive("/no/such.zip", t.TempDir())
	assert.Error(t, err)
}
