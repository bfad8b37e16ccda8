package merger

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/excelmerge/excelmerge/internal/logging"
)

const (
	// MaxFileSize is the per-file size cap in bytes.
	MaxFileSize = 50 * 1024 * 1024
	// MaxFiles is the maximum number of input files per run.
	MaxFiles = 20

	checksumChunkSize = 4096
)

// ValidExtensions lists the accepted spreadsheet extensions, lowercase.
var ValidExtensions = []string{".xlsx", ".xls"}

// validateFile checks one input path, short-circuiting on the first failure:
// extension, size cap, then a read-only probe that the file opens as a
// workbook with at least one sheet. Returns validity plus human-readable
// error strings.
func validateFile(path string) (bool, []string) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isValidExtension(ext) {
		return false, []string{fmt.Sprintf(
			"Invalid file extension: %s. Expected: %s", ext, strings.Join(ValidExtensions, ", "))}
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, []string{fmt.Sprintf("Invalid Excel file or corrupted: %v", err)}
	}
	if info.Size() > MaxFileSize {
		return false, []string{fmt.Sprintf(
			"File size (%.2fMB) exceeds maximum allowed size (%dMB)",
			float64(info.Size())/1024/1024, MaxFileSize/1024/1024)}
	}

	wb, err := openWorkbook(path)
	if err != nil {
		return false, []string{fmt.Sprintf("Invalid Excel file or corrupted: %v", err)}
	}
	defer wb.Close()

	if len(wb.SheetNames()) == 0 {
		return false, []string{"File contains no sheets"}
	}
	return true, nil
}

func isValidExtension(ext string) bool {
	for _, valid := range ValidExtensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// fileChecksum computes the MD5 content hash with fixed-size chunked reads.
// The hash is audit metadata only: failure is logged and degrades to an
// empty string, never aborting the run.
func fileChecksum(path string, log *logging.Logger) string {
	f, err := os.Open(path)
	if err != nil {
		log.Error("Error calculating checksum for %s: %v", path, err)
		return ""
	}
	defer f.Close()

	h := md5.New()
	buf := make([]byte, checksumChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		log.Error("Error calculating checksum for %s: %v", path, err)
		return ""
	}
	return hex.EncodeToString(h.Sum(nil))
}
