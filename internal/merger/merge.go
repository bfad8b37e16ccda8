package merger

import (
	"sort"
	"strings"

	"github.com/excelmerge/excelmerge/internal/cell"
)

// mergeFrames concatenates all cleaned frames into one table. Columns are
// unioned in first-appearance order with missing cells left null, duplicate
// rows are removed comparing data columns only (first occurrence wins), and
// the result is stable-sorted by source file then source sheet with nulls
// last. Deterministic for a given input order.
func mergeFrames(frames []*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return nil, newPipelineError(FailureNoData, "No valid data found to merge")
	}

	var columns []string
	position := make(map[string]int)
	for _, f := range frames {
		for _, c := range f.Columns {
			if _, seen := position[c]; !seen {
				position[c] = len(columns)
				columns = append(columns, c)
			}
		}
	}

	merged := &Frame{Columns: columns}
	for _, f := range frames {
		target := make([]int, len(f.Columns))
		for j, c := range f.Columns {
			target[j] = position[c]
		}
		for _, row := range f.Rows {
			out := make([]cell.Value, len(columns))
			for j, v := range row {
				out[target[j]] = v
			}
			merged.Rows = append(merged.Rows, out)
		}
	}

	dedupeRows(merged)

	fileIdx := merged.columnIndex(SourceFileColumn)
	sheetIdx := merged.columnIndex(SourceSheetColumn)
	sort.SliceStable(merged.Rows, func(a, b int) bool {
		if c := cell.Compare(merged.Rows[a][fileIdx], merged.Rows[b][fileIdx]); c != 0 {
			return c < 0
		}
		return cell.Compare(merged.Rows[a][sheetIdx], merged.Rows[b][sheetIdx]) < 0
	})

	return merged, nil
}

// dedupeRows removes rows whose data columns match an earlier row, keeping
// the first occurrence in concatenation order.
func dedupeRows(f *Frame) {
	dataIdx := make([]int, 0, len(f.Columns))
	for j, c := range f.Columns {
		if !isProvenance(c) {
			dataIdx = append(dataIdx, j)
		}
	}

	seen := make(map[string]struct{}, len(f.Rows))
	kept := make([][]cell.Value, 0, len(f.Rows))
	parts := make([]string, len(dataIdx))
	for _, row := range f.Rows {
		for k, j := range dataIdx {
			parts[k] = row[j].Encode()
		}
		key := strings.Join(parts, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	f.Rows = kept
}
