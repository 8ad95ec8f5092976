package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Writer builds a workbook sheet by sheet, row by row.
type Writer struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

func NewWriter() *Writer {
	return &Writer{
		file: excelize.NewFile(),
	}
}

// AddSheet starts a new sheet. The first call renames the default sheet.
func (w *Writer) AddSheet(name string) error {
	// Excel limit
	if len(name) > 31 {
		name = name[:31]
	}

	if w.currentSheet == "" {
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	w.currentSheet = name
	w.currentRow = 1
	return nil
}

// WriteHeader writes a bold header row to the current sheet.
func (w *Writer) WriteHeader(columns []string) error {
	values := make([]interface{}, len(columns))
	for i, c := range columns {
		values[i] = c
	}
	row := w.currentRow
	if err := w.WriteRow(values); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, row)
		endCell, _ := excelize.CoordinatesToCellName(len(columns), row)
		_ = w.file.SetCellStyle(w.currentSheet, startCell, endCell, style)
	}
	return nil
}

// WriteRow writes one data row to the current sheet.
func (w *Writer) WriteRow(row []interface{}) error {
	if w.currentSheet == "" {
		return fmt.Errorf("no active sheet")
	}

	cell, err := excelize.CoordinatesToCellName(1, w.currentRow)
	if err != nil {
		return err
	}
	if err := w.file.SetSheetRow(w.currentSheet, cell, &row); err != nil {
		return err
	}

	w.currentRow++
	return nil
}

// Bytes serializes the workbook as .xlsx.
func (w *Writer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := w.file.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) Close() error {
	return w.file.Close()
}
