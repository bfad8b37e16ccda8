package merger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFileAcceptsWellFormedWorkbook(t *testing.T) {
	path := fixturePath(t, "valid.xlsx")
	writeFixture(t, path, []sheetFixture{
		{name: "Data", rows: [][]interface{}{{"Name"}, {"alice"}}},
	})

	ok, errs := validateFile(path)
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateFileRejectsUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	ok, errs := validateFile(path)
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Invalid file extension: .csv")
	assert.Contains(t, errs[0], ".xlsx, .xls")
}

func TestValidateFileRejectsOversizedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.xlsx")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxFileSize+1))
	require.NoError(t, f.Close())

	ok, errs := validateFile(path)
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "exceeds maximum allowed size (50MB)")
}

func TestValidateFileRejectsCorruptContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a workbook"), 0o644))

	ok, errs := validateFile(path)
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Invalid Excel file or corrupted")
}

func TestFileChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	sum := fileChecksum(path, newTestLogger())
	assert.Equal(t, "5eb63bbbe01eeed093cb22bb8f5acdc3", sum)
}

func TestFileChecksumDegradesToEmpty(t *testing.T) {
	sum := fileChecksum(filepath.Join(t.TempDir(), "missing.xlsx"), newTestLogger())
	assert.Equal(t, "", sum)
}
