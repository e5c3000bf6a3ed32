package sheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tunde-fashola/bizbooks/internal/importer"
)

const sheetName = "Sheet1"

// ReadWorkbook decodes the first worksheet of an xlsx stream into a cell
// matrix. Cell values arrive as the display strings excelize produces;
// numeric cells keep their raw textual form (serial dates included).
func ReadWorkbook(r io.Reader) (importer.Matrix, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return importer.Matrix(rows), nil
}

// WriteWorkbook encodes a cell matrix as a single-sheet xlsx stream.
func WriteWorkbook(m importer.Matrix, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range m {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
