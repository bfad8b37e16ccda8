package merger

import (
	"math"
	"strconv"
	"strings"

	"github.com/excelmerge/excelmerge/internal/cell"
)

// reportColumns defines the processing-report header row.
var reportColumns = []string{
	"Source_File",
	"File_Size_MB",
	"Sheet_Count",
	"Rows_Processed",
	"Processing_Time_Seconds",
	"Checksum",
	"Errors",
	"Warnings",
}

// buildReport produces one report row per file record plus a SUMMARY row.
// Numeric summary fields are sums across all records, except Rows_Processed
// which is the merged row count since deduplication may have removed rows.
func buildReport(records []FileRecord, mergedRowCount int) *Frame {
	frame := &Frame{
		Columns: append([]string(nil), reportColumns...),
		Rows:    make([][]cell.Value, 0, len(records)+1),
	}

	var (
		totalBytes    int64
		totalSheets   int
		totalSeconds  float64
		totalErrors   int
		totalWarnings int
	)

	for _, r := range records {
		frame.Rows = append(frame.Rows, []cell.Value{
			cell.NewText(r.Filename),
			cell.NewNumber(r.SizeMB()),
			cell.NewNumber(float64(r.SheetCount)),
			cell.NewNumber(float64(r.TotalRows)),
			cell.NewNumber(round2(r.ProcessingTime)),
			cell.NewText(r.Checksum),
			cell.NewText(joinOrNone(r.Errors)),
			cell.NewText(joinOrNone(r.Warnings)),
		})

		totalBytes += r.FileSize
		totalSheets += r.SheetCount
		totalSeconds += r.ProcessingTime
		totalErrors += len(r.Errors)
		totalWarnings += len(r.Warnings)
	}

	frame.Rows = append(frame.Rows, []cell.Value{
		cell.NewText("SUMMARY"),
		cell.NewNumber(round2(float64(totalBytes) / 1024 / 1024)),
		cell.NewNumber(float64(totalSheets)),
		cell.NewNumber(float64(mergedRowCount)),
		cell.NewNumber(round2(totalSeconds)),
		cell.NewText("N/A"),
		cell.NewText(strconv.Itoa(totalErrors)),
		cell.NewText(strconv.Itoa(totalWarnings)),
	})

	return frame
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, "; ")
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
