package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/inabooth/inabooth-app-sheets/menu"
)

// Workbook is a local .xlsx file implementation of the menu.Store remote document, used for
// dry runs and for reviewing a sync before publishing it. The document ID is ignored and
// all values are stored as text irrespective of the input mode.
type Workbook struct {
	path string
	file *excelize.File
}

var a1range = regexp.MustCompile(`^([A-Za-z]*)([0-9]*)(?::([A-Za-z]*)([0-9]*))?$`)

// OpenWorkbook opens an existing workbook or, if the file does not exist, creates a new
// workbook with a single worksheet and header row.
func OpenWorkbook(path, sheet string, header []string) (*Workbook, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("Unable to open workbook %v (%w)", path, err)
		}

		return &Workbook{path: path, file: f}, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, err
	}

	if len(header) > 0 {
		row := make([]interface{}, len(header))
		for i, v := range header {
			row[i] = v
		}

		if err := f.SetSheetRow(sheet, "A1", &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SaveAs(path); err != nil {
		f.Close()
		return nil, fmt.Errorf("Unable to create workbook %v (%w)", path, err)
	}

	return &Workbook{path: path, file: f}, nil
}

func (w *Workbook) Close() error {
	return w.file.Close()
}

func (w *Workbook) Metadata(ctx context.Context, document string) (*menu.Metadata, error) {
	metadata := menu.Metadata{
		Title:  filepath.Base(w.path),
		Sheets: []menu.Sheet{},
	}

	for i, name := range w.file.GetSheetList() {
		metadata.Sheets = append(metadata.Sheets, menu.Sheet{
			Title: name,
			ID:    int64(i),
		})
	}

	return &metadata, nil
}

func (w *Workbook) Read(ctx context.Context, document, sheet, rng string) ([][]string, error) {
	left, top, right, bottom, err := bounds(rng)
	if err != nil {
		return nil, err
	}

	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read '%v' (%v)", menu.ErrRemoteCall, sheet, err)
	}

	values := [][]string{}
	for r := top; r <= bottom && r <= len(rows); r++ {
		row := rows[r-1]
		record := []string{}

		for c := left; c <= right && c <= len(row); c++ {
			record = append(record, row[c-1])
		}

		values = append(values, trim(record))
	}

	for len(values) > 0 && len(values[len(values)-1]) == 0 {
		values = values[:len(values)-1]
	}

	return values, nil
}

func (w *Workbook) Clear(ctx context.Context, document, sheet, rng string) error {
	left, top, right, bottom, err := bounds(rng)
	if err != nil {
		return err
	}

	rows, err := w.file.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("%w: unable to read '%v' (%v)", menu.ErrRemoteCall, sheet, err)
	}

	for r := top; r <= bottom && r <= len(rows); r++ {
		for c := left; c <= right && c <= len(rows[r-1]); c++ {
			cell, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return err
			}

			if err := w.file.SetCellStr(sheet, cell, ""); err != nil {
				return fmt.Errorf("%w: error clearing '%v' (%v)", menu.ErrRemoteCall, sheet, err)
			}
		}
	}

	return w.save()
}

func (w *Workbook) Write(ctx context.Context, document, sheet, start string, rows [][]string, mode menu.InputMode) error {
	col, row, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return fmt.Errorf("Invalid start cell '%v' (%w)", start, err)
	}

	for i, record := range rows {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return err
		}

		values := make([]interface{}, len(record))
		for j, v := range record {
			values[j] = v
		}

		if err := w.file.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("%w: error writing to '%v' (%v)", menu.ErrRemoteCall, sheet, err)
		}
	}

	return w.save()
}

func (w *Workbook) save() error {
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("%w: error saving workbook %v (%v)", menu.ErrRemoteCall, w.path, err)
	}

	return nil
}

// bounds converts an A1 notation range without sheet name (e.g. A2:K, 1:1, A1:Z100) to
// 1-based inclusive column and row bounds. Omitted bounds are unlimited.
func bounds(rng string) (left, top, right, bottom int, err error) {
	match := a1range.FindStringSubmatch(rng)
	if match == nil || rng == "" {
		err = fmt.Errorf("Invalid range '%v'", rng)
		return
	}

	if match[3] == "" && match[4] == "" && !strings.Contains(rng, ":") {
		match[3] = match[1]
		match[4] = match[2]
	}

	if left, err = columnNumber(match[1], 1); err != nil {
		return
	}

	if top, err = rowNumber(match[2], 1); err != nil {
		return
	}

	if right, err = columnNumber(match[3], excelize.MaxColumns); err != nil {
		return
	}

	if bottom, err = rowNumber(match[4], math.MaxInt32); err != nil {
		return
	}

	if left < 1 || top < 1 || right < left || bottom < top {
		err = fmt.Errorf("Invalid range '%v'", rng)
	}

	return
}

func columnNumber(s string, defval int) (int, error) {
	if s == "" {
		return defval, nil
	}

	return excelize.ColumnNameToNumber(s)
}

func rowNumber(s string, defval int) (int, error) {
	if s == "" {
		return defval, nil
	}

	return strconv.Atoi(s)
}

func trim(record []string) []string {
	for len(record) > 0 && record[len(record)-1] == "" {
		record = record[:len(record)-1]
	}

	return record
}
