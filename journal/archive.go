package journal

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
)

// ImportFile imports a CSV file, transparently unwrapping compressed broker
// statements: plain .csv, .csv.gz, .csv.xz, or a .zip containing a CSV.
func ImportFile(path string, opts ImportOptions) (ImportResult, error) {
	if strings.HasSuffix(strings.ToLower(path), ".zip") {
		return importZip(path, opts)
	}

	in, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("open import file: %w", err)
	}
	defer in.Close()

	var r io.Reader = in
	switch {
	case strings.HasSuffix(strings.ToLower(path), ".gz"):
		gz, err := gzip.NewReader(in)
		if err != nil {
			return ImportResult{}, fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(strings.ToLower(path), ".xz"):
		xr, err := xz.NewReader(in)
		if err != nil {
			return ImportResult{}, fmt.Errorf("xz: %w", err)
		}
		r = xr
	}

	return ImportCSV(r, opts)
}

// importZip extracts the archive to a temp dir and imports the first CSV
// entry found.
func importZip(path string, opts ImportOptions) (ImportResult, error) {
	dir, err := os.MkdirTemp("", "tradelog-import-")
	if err != nil {
		return ImportResult{}, err
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return ImportResult{}, fmt.Errorf("unzip %s: %w", path, err)
	}

	var csvs []string
	err = filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(p), ".csv") {
			csvs = append(csvs, p)
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	if len(csvs) == 0 {
		return ImportResult{}, fmt.Errorf("no CSV entry in %s", path)
	}
	sort.Strings(csvs)

	in, err := os.Open(csvs[0])
	if err != nil {
		return ImportResult{}, err
	}
	defer in.Close()

	return ImportCSV(in, opts)
}
