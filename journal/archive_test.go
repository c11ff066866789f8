package journal

import (
	"archive/zip"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const archiveCSV = `date,ticker,premium,fees
2026-01-02,SPY,100,-1.30
2026-01-03,QQQ,-40,-0.65
`

func TestImportFilePlain(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, os.WriteFile(path, []byte(archiveCSV), 0644))

	res, err := ImportFile(path, ImportOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Trades, 2)
}

func TestImportFileGzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(archiveCSV))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	res, err := ImportFile(path, ImportOptions{})
	require.NoError(t, err)
	require.Len(t, res.Trades, 2)
	assert.Equal(t, "SPY", res.Trades[0].Ticker)
}

func TestImportFileXZ(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trades.csv.xz")
	f, err := os.Create(path)
	require.NoError(t, err)
	xw, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = xw.Write([]byte(archiveCSV))
	require.NoError(t, err)
	require.NoError(t, xw.Close())
	require.NoError(t, f.Close())

	res, err := ImportFile(path, ImportOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Trades, 2)
}

func TestImportFileZip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "statement.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("statement/trades.csv")
	require.NoError(t, err)
	_, err = w.Write([]byte(archiveCSV))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	res, err := ImportFile(path, ImportOptions{})
	require.NoError(t, err)
	assert.Len(t, res.Trades, 2)
}

func TestImportFileZipNoCSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("nothing here"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = ImportFile(path, ImportOptions{})
	assert.ErrorContains(t, err, "no CSV")
}

func TestImportFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ImportFile(filepath.Join(t.TempDir(), "nope.csv"), ImportOptions{})
	assert.Error(t, err)
}
