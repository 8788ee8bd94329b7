package tracker

import (
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the feeding rows
const SheetName = "Feedings"

// XLSXStore keeps the log as a spreadsheet workbook
type XLSXStore struct{}

// NewXLSXStore creates a new workbook-backed store
func NewXLSXStore() *XLSXStore {
	return &XLSXStore{}
}

// Create writes a fresh workbook with a single header row
func (s *XLSXStore) Create(path string, header []string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return classifyOSError(err)
	}
	return nil
}

// Append adds row below the last used row of the active sheet
func (s *XLSXStore) Append(path string, row []any) error {
	if err := probe(path, true); err != nil {
		return err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return s.classifyOpen(err)
	}
	defer f.Close()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return corrupt(err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &row); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return classifyOSError(err)
	}
	return nil
}

// Rows returns the active sheet's rows as displayed text
func (s *XLSXStore) Rows(path string) ([][]string, error) {
	if err := probe(path, false); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, s.classifyOpen(err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	if err != nil {
		return nil, corrupt(err)
	}
	return rows, nil
}

// classifyOpen treats anything but a filesystem failure as a broken workbook
func (s *XLSXStore) classifyOpen(err error) error {
	if classified := classifyOSError(err); classified != err {
		return classified
	}
	return corrupt(err)
}
