package menu

import (
	"context"
	"fmt"
	"io/fs"
)

// Config identifies the sync target and the row layout. It is built once at the process
// boundary and passed in explicitly.
type Config struct {
	Spreadsheet string
	Sheet       string
	Shape       Shape
	Sector      string
	Summarizer  Summarizer
}

// Result is the outcome of summarizing a single page file.
type Result struct {
	File  string
	ID    string
	Title string
	Err   error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Report is the outcome of a sync run. Results and Rows are in file name order.
type Report struct {
	Spreadsheet string
	Sheet       string
	Shape       Shape
	Results     []Result
	Rows        []Row
	Written     bool
}

// Failed returns the results for the pages that were excluded from the sync.
func (r Report) Failed() []Result {
	list := []Result{}
	for _, result := range r.Results {
		if !result.OK() {
			list = append(list, result)
		}
	}

	return list
}

// Sync summarizes the pages in fsys and replaces the data rows of the configured worksheet
// with the result. Pages that cannot be read or decoded are logged and excluded. Nothing is
// written if there are no pages to sync.
func Sync(ctx context.Context, config Config, fsys fs.FS, store Store) (*Report, error) {
	report := Collect(config, fsys)

	if len(report.Rows) == 0 {
		infof("No pages found to sync")
		return report, nil
	}

	if err := Update(ctx, config, store, report.Rows); err != nil {
		return report, err
	}

	report.Written = true

	return report, nil
}

// Collect builds the worksheet rows for all the pages in fsys without touching the remote
// document.
func Collect(config Config, fsys fs.FS) *Report {
	report := Report{
		Spreadsheet: config.Spreadsheet,
		Sheet:       config.Sheet,
		Shape:       config.Shape,
		Results:     []Result{},
		Rows:        []Row{},
	}

	for _, filename := range CollectFiles(fsys) {
		file := Parse(filename)
		result := Result{
			File: filename,
			ID:   file.ID,
		}

		summary, err := summarize(config.Summarizer, fsys, file)
		if err != nil {
			warnf("%v", err)
			result.Err = err
		} else {
			result.Title = summary.Title
			report.Rows = append(report.Rows, Build(file, summary, config.Sector, config.Shape))
		}

		report.Results = append(report.Results, result)
	}

	return &report
}

func summarize(s Summarizer, fsys fs.FS, file SourceFile) (PageSummary, error) {
	bytes, err := fs.ReadFile(fsys, file.Filename)
	if err != nil {
		return PageSummary{}, &ParseError{File: file.Filename, Err: err}
	}

	summary, err := s.Summarize(bytes, file.Name)
	if err != nil {
		return PageSummary{}, &ParseError{File: file.Filename, Err: err}
	}

	return summary, nil
}

// Update clears the existing data rows from the worksheet (the header row is preserved) and
// writes the new rows in a single update. No clear or write is issued if the worksheet does
// not exist.
func Update(ctx context.Context, config Config, store Store, rows []Row) error {
	metadata, err := store.Metadata(ctx, config.Spreadsheet)
	if err != nil {
		return err
	}

	sheet, ok := metadata.Sheet(config.Sheet)
	if !ok {
		return fmt.Errorf("%w: '%v' in '%v'", ErrRemoteTargetNotFound, config.Sheet, metadata.Title)
	}

	checkHeader(ctx, config, store, sheet)

	if err := store.Clear(ctx, config.Spreadsheet, sheet.Title, config.Shape.DataRange()); err != nil {
		return err
	}

	values := make([][]string, len(rows))
	for i, row := range rows {
		values[i] = row
	}

	if err := store.Write(ctx, config.Spreadsheet, sheet.Title, DataStart, values, UserEntered); err != nil {
		return err
	}

	infof("Updated %v rows in '%v'", len(rows), sheet.Title)

	return nil
}

// checkHeader warns if the worksheet header row does not have the same number of columns
// as the configured row shape.
func checkHeader(ctx context.Context, config Config, store Store, sheet Sheet) {
	header, err := store.Read(ctx, config.Spreadsheet, sheet.Title, "1:1")
	if err != nil {
		warnf("Unable to read header row from '%v' (%v)", sheet.Title, err)
		return
	}

	if len(header) == 0 || len(header[0]) == 0 {
		return
	}

	if N := len(header[0]); N != config.Shape.Columns() {
		warnf("'%v' header has %v columns, %v rows have %v", sheet.Title, N, config.Shape, config.Shape.Columns())
	}
}
