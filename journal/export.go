package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"tradelog/pkg/id"
)

// Backup is the companion export format for backup files: the trade
// collection plus the moment it was taken.
type Backup struct {
	ExportDate time.Time `json:"exportDate"`
	Trades     []Trade   `json:"trades"`
}

// WriteBackup writes a backup document to w.
func WriteBackup(w io.Writer, trades []Trade, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Backup{ExportDate: now, Trades: trades})
}

// ExportFile writes a backup to path. A path ending in .xz is compressed with
// LZMA2, which matters once screenshots are embedded in the trades.
func ExportFile(path string, trades []Trade, now time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	if strings.HasSuffix(path, ".xz") {
		xw, err := xz.NewWriter(f)
		if err != nil {
			return fmt.Errorf("compress backup: %w", err)
		}
		defer xw.Close()
		w = xw
	}

	if err := WriteBackup(w, trades, now); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ReadBackup decodes a backup or any foreign document that carries a trades
// array. Unknown fields are ignored; a record without an id gets a fresh one.
// A document with no trades array fails with ErrInvalidImportFormat and no
// trades are returned.
func ReadBackup(r io.Reader) ([]Trade, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	raw, ok := probe["trades"]
	if !ok {
		return nil, ErrInvalidImportFormat
	}

	var trades []Trade
	if err := json.Unmarshal(raw, &trades); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImportFormat, err)
	}
	for i := range trades {
		if trades[i].ID == "" {
			trades[i].ID = id.New()
		}
	}
	return trades, nil
}

// ImportFile reads a backup file (xz-compressed when the name ends in .xz)
// and returns its trades. Deduplication against the live journal is the
// caller's job, via AddUnique.
func ImportFile(path string) ([]Trade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("decompress backup: %w", err)
		}
		r = xr
	}
	return ReadBackup(r)
}
