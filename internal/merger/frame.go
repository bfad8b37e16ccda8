package merger

import (
	"strings"
	"time"

	"github.com/excelmerge/excelmerge/internal/cell"
)

// Provenance columns record where each merged row came from. They are
// excluded from duplicate detection and from the caller-visible data view.
const (
	SourceFileColumn         = "_source_file"
	SourceSheetColumn        = "_source_sheet"
	ProcessedTimestampColumn = "_processed_timestamp"

	provenancePrefix = "_"
)

// Frame is an in-memory rectangular table: ordered unique column names plus
// rows of typed cell values. It represents a cleaned sheet, the merged table
// and the processing report.
type Frame struct {
	Columns []string
	Rows    [][]cell.Value
}

func (f *Frame) RowCount() int    { return len(f.Rows) }
func (f *Frame) ColumnCount() int { return len(f.Columns) }

// DataColumns returns the column names that participate in duplicate
// detection, i.e. everything except provenance columns.
func (f *Frame) DataColumns() []string {
	out := make([]string, 0, len(f.Columns))
	for _, c := range f.Columns {
		if !isProvenance(c) {
			out = append(out, c)
		}
	}
	return out
}

// columnIndex returns the position of name in the frame, or -1.
func (f *Frame) columnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

func isProvenance(name string) bool {
	return strings.HasPrefix(name, provenancePrefix)
}

// stampProvenance appends the three provenance columns to the frame.
func stampProvenance(f *Frame, sourceFile, sourceSheet string, processedAt time.Time) {
	f.Columns = append(f.Columns, SourceFileColumn, SourceSheetColumn, ProcessedTimestampColumn)
	for i := range f.Rows {
		f.Rows[i] = append(f.Rows[i],
			cell.NewText(sourceFile),
			cell.NewText(sourceSheet),
			cell.NewTime(processedAt),
		)
	}
}
