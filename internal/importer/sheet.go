package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrNoData      = errors.New("file Excel tidak berisi data (baris pertama adalah header)")
	ErrTooManyRows = errors.New("jumlah baris melebihi batas impor")
)

// ParseSheet reads the first worksheet of an xlsx file into raw rows.
// The first row is treated as the header; headers are lower-cased and
// trimmed so schema synonyms can match regardless of spelling. Blank
// rows between data rows are returned so callers can count them as
// skipped; only trailing blank rows (sheet formatting noise) are
// trimmed before counting against maxRows.
func ParseSheet(reader io.Reader, maxRows int) ([]RawRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("file Excel tidak dapat dibaca: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	cells, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca worksheet: %w", err)
	}

	if len(cells) < 2 {
		return nil, ErrNoData
	}

	headers := make([]string, len(cells[0]))
	for i, h := range cells[0] {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []RawRow
	for i := 1; i < len(cells); i++ {
		raw := RawRow{Number: i + 1, Cells: make(map[string]string, len(headers))}
		for j, h := range headers {
			if h == "" {
				continue
			}
			if j < len(cells[i]) {
				raw.Cells[h] = cells[i][j]
			}
		}
		rows = append(rows, raw)
	}
	for len(rows) > 0 && rows[len(rows)-1].Empty() {
		rows = rows[:len(rows)-1]
	}

	if len(rows) == 0 {
		return nil, ErrNoData
	}
	if maxRows > 0 && len(rows) > maxRows {
		return nil, ErrTooManyRows
	}

	return rows, nil
}
