package merger

import (
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	// MergedSheetName is the output sheet carrying the merged table.
	MergedSheetName = "Merged_Data"
	// MetadataSheetName is the output sheet carrying the processing report.
	MetadataSheetName = "Processing_Metadata"

	maxColumnWidth  = 50
	headerFillColor = "366092"
)

// writeWorkbook serializes the merged table and the report into one styled
// workbook: bold white-on-dark centered headers with thin borders, column
// widths sized to content, and a frozen header row on both sheets.
func writeWorkbook(merged, report *Frame, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MergedSheetName); err != nil {
		return err
	}
	if _, err := f.NewSheet(MetadataSheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	sheets := []struct {
		name  string
		frame *Frame
	}{
		{MergedSheetName, merged},
		{MetadataSheetName, report},
	}
	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.frame, headerStyle); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeSheet streams one frame into a sheet. Widths and panes must be set
// before the first row goes out.
func writeSheet(f *excelize.File, sheet string, frame *Frame, headerStyle int) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	for i, width := range columnWidths(frame) {
		if err := sw.SetColWidth(i+1, i+1, width); err != nil {
			return err
		}
	}

	if err := sw.SetPanes(&excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	header := make([]interface{}, len(frame.Columns))
	for i, name := range frame.Columns {
		header[i] = excelize.Cell{Value: name, StyleID: headerStyle}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, row := range frame.Rows {
		out := make([]interface{}, len(row))
		for j, v := range row {
			out[j] = v.Native()
		}
		ref, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(ref, out); err != nil {
			return err
		}
	}

	return sw.Flush()
}

// columnWidths sizes each column to its longest rendered value plus padding,
// capped at maxColumnWidth character widths.
func columnWidths(frame *Frame) []float64 {
	widths := make([]float64, len(frame.Columns))
	for i, name := range frame.Columns {
		widths[i] = float64(utf8.RuneCountInString(name))
	}
	for _, row := range frame.Rows {
		for j, v := range row {
			if l := float64(utf8.RuneCountInString(v.String())); l > widths[j] {
				widths[j] = l
			}
		}
	}
	for i := range widths {
		w := widths[i] + 2
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		widths[i] = w
	}
	return widths
}
