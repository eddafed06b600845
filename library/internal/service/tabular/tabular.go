// Package tabular reads bulk book imports from CSV and Excel workbooks.
package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Astemirdum/library-catalog/library/internal/errs"
	"github.com/Astemirdum/library-catalog/library/internal/model"
	"github.com/extrame/xls"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

type Format string

const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	XLS  Format = "xls"
)

// Columns every import table must carry in its header row.
var Columns = []string{"title", "summary", "isbn", "cover_url", "genre"}

// FormatOf picks the reader by file extension.
func FormatOf(filename string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch Format(ext) {
	case CSV, XLSX, XLS:
		return Format(ext), nil
	}
	return "", errors.Wrapf(errs.ErrUnsupportedFormat, "file %q: accepted extensions are csv, xlsx, xls", filename)
}

// Read parses the whole table. Failures come back as *errs.ImportError with
// the csv or spreadsheet stage.
func Read(f Format, r io.Reader) ([]model.ImportRow, error) {
	var (
		records [][]string
		err     error
		stage   = errs.StageSpreadsheet
	)
	switch f {
	case CSV:
		stage = errs.StageCSV
		records, err = readCSV(r)
	case XLSX:
		records, err = readXLSX(r)
	case XLS:
		records, err = readXLS(r)
	default:
		return nil, errors.Wrapf(errs.ErrUnsupportedFormat, "format %q", f)
	}
	if err == nil {
		var rows []model.ImportRow
		rows, err = toRows(records)
		if err == nil {
			return rows, nil
		}
	}
	return nil, &errs.ImportError{Stage: stage, Err: err}
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open xlsx")
	}
	defer f.Close()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readXLS(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, errors.Wrap(err, "open xls")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("workbook has no sheets")
	}
	records := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			records = append(records, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		records = append(records, cells)
	}
	return records, nil
}

// toRows maps records onto ImportRow by header name. Blank lines are skipped.
func toRows(records [][]string) ([]model.ImportRow, error) {
	if len(records) == 0 {
		return nil, errors.New("missing header row")
	}
	idx := make(map[string]int, len(Columns))
	for i, h := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, c := range Columns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header lacks columns %s", strings.Join(missing, ", "))
	}

	rows := make([]model.ImportRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blank(rec) {
			continue
		}
		cell := func(name string) string {
			i := idx[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		rows = append(rows, model.ImportRow{
			Title:    cell("title"),
			Summary:  cell("summary"),
			ISBN:     cell("isbn"),
			CoverURL: cell("cover_url"),
			Genre:    cell("genre"),
		})
	}
	return rows, nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
