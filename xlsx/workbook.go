// Package xlsx wraps spreadsheet access behind the small surface the
// conversion pipeline needs: open, read cells and rows, write a vocabulary
// back into the template layout.
package xlsx

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook is an open spreadsheet file.
type Workbook struct {
	file *excelize.File
	path string
}

// Open opens an xlsx workbook. Only .xlsx is accepted; the legacy .xls
// format and everything else fail before any I/O.
func Open(path string) (*Workbook, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return nil, fmt.Errorf("file %s is not xlsx", path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return &Workbook{file: f, path: path}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error { return w.file.Close() }

// Path returns the path the workbook was opened from.
func (w *Workbook) Path() string { return w.path }

// HasSheet reports whether the workbook contains the named sheet.
func (w *Workbook) HasSheet(name string) bool {
	idx, err := w.file.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// Cell returns the formatted text of one cell, e.g. Cell("Introduction",
// "J11"). Missing cells read as "".
func (w *Workbook) Cell(sheet, ref string) (string, error) {
	v, err := w.file.GetCellValue(sheet, ref)
	if err != nil {
		return "", fmt.Errorf("read cell %s!%s: %w", sheet, ref, err)
	}
	return strings.TrimSpace(v), nil
}

// SetCell writes text into one cell.
func (w *Workbook) SetCell(sheet, ref, value string) error {
	if err := w.file.SetCellStr(sheet, ref, value); err != nil {
		return fmt.Errorf("write cell %s!%s: %w", sheet, ref, err)
	}
	return nil
}

// SaveAs writes the workbook to path.
func (w *Workbook) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// Rows returns the sheet's rows as formatted text. Trailing empty cells are
// not padded; callers index defensively.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
