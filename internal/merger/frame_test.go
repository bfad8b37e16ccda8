package merger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/excelmerge/excelmerge/internal/cell"
)

func TestDataColumnsExcludesProvenance(t *testing.T) {
	f := &Frame{Columns: []string{"a", "b"}}
	stampProvenance(f, "src.xlsx", "Data", time.Now())

	assert.Equal(t, []string{"a", "b"}, f.DataColumns())
	assert.Equal(t, 5, f.ColumnCount())
}

func TestStampProvenance(t *testing.T) {
	f := &Frame{
		Columns: []string{"a"},
		Rows:    [][]cell.Value{{cell.NewNumber(1)}, {cell.NewNumber(2)}},
	}
	processed := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	stampProvenance(f, "src.xlsx", "Data", processed)

	assert.Equal(t,
		[]string{"a", SourceFileColumn, SourceSheetColumn, ProcessedTimestampColumn},
		f.Columns)
	for _, row := range f.Rows {
		require.Len(t, row, 4)
		assert.Equal(t, "src.xlsx", row[1].String())
		assert.Equal(t, "Data", row[2].String())
		assert.Equal(t, cell.NewTime(processed), row[3])
	}
}

func TestColumnIndex(t *testing.T) {
	f := &Frame{Columns: []string{"a", "b"}}
	assert.Equal(t, 1, f.columnIndex("b"))
	assert.Equal(t, -1, f.columnIndex("missing"))
}
