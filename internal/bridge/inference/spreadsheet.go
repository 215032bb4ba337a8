package inference

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"
)

// TabularSpreadsheet infers a schema from the first row of the first sheet of
// an xlsx workbook. Non-empty cell values become field names in column order.
type TabularSpreadsheet struct{}

func (TabularSpreadsheet) ExtractFields(data []byte) ([]string, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = workbook.Close()
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	fields := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		fields = append(fields, cell)
	}

	return fields, nil
}
