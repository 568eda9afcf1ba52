package extract

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// extractXlsx serializes every sheet of a workbook as a named header line
// followed by its cells in CSV, concatenated in workbook order.
func extractXlsx(data []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("%w: sheet %s: %v", ErrExtraction, sheet, err)
		}
		writeSheet(&sb, sheet, rows)
	}

	return sb.String(), nil
}

// extractXls handles the legacy binary spreadsheet format with the same
// per-sheet output shape as extractXlsx.
func extractXls(data []byte) (string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	var sb strings.Builder
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}

		var rows [][]string
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			rows = append(rows, rowCells(row.FirstCol(), row.LastCol(), row.Col))
		}
		writeSheet(&sb, sheet.Name, rows)
	}

	return sb.String(), nil
}

// rowCells collects the cells of a BIFF row. last is exclusive: the row
// record's Lcell field is one past the last defined cell.
func rowCells(first, last int, cell func(int) string) []string {
	var cells []string
	for c := first; c < last; c++ {
		cells = append(cells, cell(c))
	}
	return cells
}

func writeSheet(sb *strings.Builder, name string, rows [][]string) {
	sb.WriteString(fmt.Sprintf("\n--- Planilha: %s ---\n", name))

	w := csv.NewWriter(sb)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
}
