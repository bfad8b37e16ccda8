package merger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/excelmerge/excelmerge/internal/cell"
)

// extractSheets opens one validated file and produces a cleaned frame per
// non-empty sheet plus the file's record. Per-sheet failures are recorded
// and skipped; a failure to open the file at all is returned as an error and
// is fatal for this file only.
func (m *Merger) extractSheets(path string) ([]*Frame, FileRecord, error) {
	start := time.Now()
	filename := filepath.Base(path)

	record := FileRecord{Filename: filename}
	if info, err := os.Stat(path); err == nil {
		record.FileSize = info.Size()
	}
	record.Checksum = fileChecksum(path, m.log)

	wb, err := openWorkbook(path)
	if err != nil {
		record.ProcessingTime = time.Since(start).Seconds()
		return nil, record, fmt.Errorf("Error reading file '%s': %v", filename, err)
	}
	defer wb.Close()

	sheetNames := wb.SheetNames()
	record.SheetCount = len(sheetNames)

	var frames []*Frame
	for _, sheetName := range sheetNames {
		grid, err := wb.ReadSheet(sheetName)
		if err != nil {
			msg := fmt.Sprintf("Error processing sheet '%s': %v", sheetName, err)
			record.Errors = append(record.Errors, msg)
			m.log.Error("%s", msg)
			continue
		}

		// Header row only, or nothing at all.
		if len(grid) <= 1 {
			record.Warnings = append(record.Warnings,
				fmt.Sprintf("Sheet '%s' is empty and will be skipped", sheetName))
			continue
		}

		frame, ok := buildFrame(grid)
		if !ok {
			record.Warnings = append(record.Warnings,
				fmt.Sprintf("Sheet '%s' contains no data after cleaning", sheetName))
			continue
		}

		stampProvenance(frame, filename, sheetName, time.Now())
		frames = append(frames, frame)
		record.TotalRows += frame.RowCount()

		m.log.Info("Processed sheet '%s' from '%s': %d rows", sheetName, filename, frame.RowCount())
	}

	record.ProcessingTime = time.Since(start).Seconds()
	return frames, record, nil
}

// buildFrame turns a raw grid (header row first) into a cleaned frame:
// fully-empty body rows are dropped, then fully-empty columns, and headers
// are standardized with collisions resolved. Returns ok=false when no data
// survives cleaning.
func buildFrame(grid [][]cell.Value) (*Frame, bool) {
	header := grid[0]
	body := grid[1:]

	rows := make([][]cell.Value, 0, len(body))
	for _, row := range body {
		if !rowIsEmpty(row) {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, false
	}

	// A column is empty when every remaining body cell is null, regardless
	// of whether it still has a header.
	keep := make([]int, 0, len(header))
	for j := range header {
		for _, row := range rows {
			if j < len(row) && !row[j].IsNull() {
				keep = append(keep, j)
				break
			}
		}
	}
	if len(keep) == 0 {
		return nil, false
	}

	names := make([]string, len(keep))
	for i, j := range keep {
		raw := ""
		if j < len(header) && !header[j].IsNull() {
			raw = header[j].String()
		}
		names[i] = standardizeColumnName(raw)
	}

	frame := &Frame{
		Columns: resolveCollisions(names),
		Rows:    make([][]cell.Value, len(rows)),
	}
	for i, row := range rows {
		out := make([]cell.Value, len(keep))
		for k, j := range keep {
			if j < len(row) {
				out[k] = row[j]
			}
		}
		frame.Rows[i] = out
	}
	return frame, true
}

func rowIsEmpty(row []cell.Value) bool {
	for _, v := range row {
		if !v.IsNull() {
			return false
		}
	}
	return true
}
