// Package export выгружает журнал посещений в файл Excel.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"visitlog/internal/visit"
)

const sheetName = "Sheet1"

// WriteXLSX записывает заголовок и записи на первый лист книги,
// перезаписывая файл целиком. Порядок записей сохраняется.
func WriteXLSX(path string, records []visit.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range visit.Header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		first, _ := excelize.CoordinatesToCellName(1, 1)
		last, _ := excelize.CoordinatesToCellName(len(visit.Header), 1)
		_ = f.SetCellStyle(sheetName, first, last, style)
	}

	for rowIdx, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return fmt.Errorf("row cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, rec.ID); err != nil {
			return fmt.Errorf("write row %d: %w", rowIdx+2, err)
		}
		for colIdx, value := range []string{rec.FullName, rec.WhenText(), rec.Kind} {
			cell, err := excelize.CoordinatesToCellName(colIdx+2, rowIdx+2)
			if err != nil {
				return fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("write row %d: %w", rowIdx+2, err)
			}
		}
	}

	for i := range visit.Header {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		width := float64(len([]rune(visit.Header[i])) + 4)
		if width < 12 {
			width = 12
		}
		_ = f.SetColWidth(sheetName, colName, colName, width)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
