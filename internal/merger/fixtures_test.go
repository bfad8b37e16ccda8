package merger

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/excelmerge/excelmerge/internal/logging"
)

// sheetFixture describes one sheet of a generated test workbook.
type sheetFixture struct {
	name string
	rows [][]interface{}
}

// writeFixture builds an .xlsx file at path with the given sheets.
func writeFixture(t *testing.T, path string, sheets []sheetFixture) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for r := range s.rows {
			ref, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			row := s.rows[r]
			require.NoError(t, f.SetSheetRow(s.name, ref, &row))
		}
	}
	// SaveAs rejects non-OOXML extensions (e.g. the disguised .xls fixture),
	// so write the container bytes directly to the target path.
	out, err := os.Create(path)
	require.NoError(t, err)
	defer out.Close()
	require.NoError(t, f.Write(out))
}

// fixturePath returns a path for a generated workbook inside a temp dir.
func fixturePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// writeGarbage creates a file that is not a valid workbook container.
func writeGarbage(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))
}

func newTestLogger() *logging.Logger {
	return logging.NewWithOutput(logging.LevelError, io.Discard, io.Discard)
}

// readSheet reopens a written workbook and returns a sheet's rendered rows.
func readSheet(t *testing.T, path, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}
