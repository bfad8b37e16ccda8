package merger

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/excelmerge/excelmerge/internal/cell"
)

// workbook is a uniform reader over the supported spreadsheet containers.
// ReadSheet returns the sheet as a rectangular grid of typed cells; the
// first row is the header.
type workbook interface {
	SheetNames() []string
	ReadSheet(name string) ([][]cell.Value, error)
	Close() error
}

// openWorkbook opens path with the reader matching its extension.
func openWorkbook(path string) (workbook, error) {
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return openXLSWorkbook(path)
	}
	return openXLSXWorkbook(path)
}

type xlsxWorkbook struct {
	f *excelize.File
}

func openXLSXWorkbook(path string) (*xlsxWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &xlsxWorkbook{f: f}, nil
}

func (w *xlsxWorkbook) SheetNames() []string { return w.f.GetSheetList() }

func (w *xlsxWorkbook) Close() error { return w.f.Close() }

func (w *xlsxWorkbook) ReadSheet(name string) ([][]cell.Value, error) {
	rows, err := w.f.GetRows(name)
	if err != nil {
		return nil, err
	}

	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}

	grid := make([][]cell.Value, len(rows))
	for i, r := range rows {
		out := make([]cell.Value, width)
		for j := 0; j < width; j++ {
			if j >= len(r) || r[j] == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			cellType, _ := w.f.GetCellType(name, ref)
			out[j] = coerceXLSXCell(r[j], cellType)
		}
		grid[i] = out
	}
	return grid, nil
}

// coerceXLSXCell maps a rendered cell string plus its declared type onto the
// closed value variant. Cells without a type attribute are numbers in OOXML
// unless the rendered text does not parse as one.
func coerceXLSXCell(raw string, t excelize.CellType) cell.Value {
	switch t {
	case excelize.CellTypeBool:
		return cell.NewBool(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeNumber:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return cell.NewNumber(n)
		}
		return cell.NewText(raw)
	case excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return cell.NewNumber(n)
		}
		return cell.NewText(raw)
	default:
		// Dates arrive pre-rendered by the number format; keep the text.
		return cell.NewText(raw)
	}
}

type xlsWorkbook struct {
	wb    *xls.WorkBook
	names []string
}

func openXLSWorkbook(path string) (*xlsWorkbook, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if s := wb.GetSheet(i); s != nil {
			names = append(names, s.Name)
		}
	}
	return &xlsWorkbook{wb: wb, names: names}, nil
}

func (w *xlsWorkbook) SheetNames() []string { return w.names }

// Close is a no-op: the BIFF reader materializes the workbook on open.
func (w *xlsWorkbook) Close() error { return nil }

func (w *xlsWorkbook) ReadSheet(name string) ([][]cell.Value, error) {
	var sheet *xls.WorkSheet
	for i := 0; i < w.wb.NumSheets(); i++ {
		if s := w.wb.GetSheet(i); s != nil && s.Name == name {
			sheet = s
			break
		}
	}
	if sheet == nil {
		return nil, fmt.Errorf("sheet %q not found", name)
	}

	rowCount := int(sheet.MaxRow) + 1
	width := 0
	for i := 0; i < rowCount; i++ {
		if r := sheet.Row(i); r != nil && r.LastCol() > width {
			width = r.LastCol()
		}
	}
	if width == 0 {
		return nil, nil
	}

	grid := make([][]cell.Value, rowCount)
	for i := 0; i < rowCount; i++ {
		out := make([]cell.Value, width)
		if r := sheet.Row(i); r != nil {
			for j := r.FirstCol(); j < r.LastCol() && j < width; j++ {
				out[j] = coerceXLSCell(r.Col(j))
			}
		}
		grid[i] = out
	}
	return grid, nil
}

// coerceXLSCell types a BIFF cell. The reader surfaces everything as a
// string, so numeric-looking values become numbers and booleans are matched
// by literal text.
func coerceXLSCell(raw string) cell.Value {
	if raw == "" {
		return cell.Value{}
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return cell.NewNumber(n)
	}
	if strings.EqualFold(raw, "true") {
		return cell.NewBool(true)
	}
	if strings.EqualFold(raw, "false") {
		return cell.NewBool(false)
	}
	return cell.NewText(raw)
}
