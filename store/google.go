package store

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/inabooth/inabooth-app-sheets/menu"
)

// Google is the Google Sheets implementation of the menu.Store remote document.
type Google struct {
	service *sheets.Service
}

// NewGoogle creates a Google Sheets store that uses the (already authorised) HTTP client.
func NewGoogle(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*Google, error) {
	options := append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)

	service, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("Unable to create new Google Sheets client (%w)", err)
	}

	return &Google{
		service: service,
	}, nil
}

func (g *Google) Metadata(ctx context.Context, document string) (*menu.Metadata, error) {
	spreadsheet, err := g.service.Spreadsheets.Get(document).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to fetch spreadsheet (%v)", menu.ErrRemoteCall, err)
	}

	metadata := menu.Metadata{
		Sheets: []menu.Sheet{},
	}

	if spreadsheet.Properties != nil {
		metadata.Title = spreadsheet.Properties.Title
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			metadata.Sheets = append(metadata.Sheets, menu.Sheet{
				Title: sheet.Properties.Title,
				ID:    sheet.Properties.SheetId,
			})
		}
	}

	return &metadata, nil
}

func (g *Google) Read(ctx context.Context, document, sheet, area string) ([][]string, error) {
	response, err := g.service.Spreadsheets.Values.Get(document, a1(sheet, area)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: unable to retrieve data from sheet (%v)", menu.ErrRemoteCall, err)
	}

	rows := make([][]string, len(response.Values))
	for i, row := range response.Values {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			rows[i][j] = fmt.Sprintf("%v", v)
		}
	}

	return rows, nil
}

func (g *Google) Clear(ctx context.Context, document, sheet, area string) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: []string{a1(sheet, area)},
	}

	if _, err := g.service.Spreadsheets.Values.BatchClear(document, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: error clearing '%v' (%v)", menu.ErrRemoteCall, sheet, err)
	}

	return nil
}

func (g *Google) Write(ctx context.Context, document, sheet, start string, rows [][]string, mode menu.InputMode) error {
	values := sheets.ValueRange{
		Values: make([][]interface{}, len(rows)),
	}

	for i, row := range rows {
		values.Values[i] = make([]interface{}, len(row))
		for j, v := range row {
			values.Values[i][j] = v
		}
	}

	if _, err := g.service.Spreadsheets.Values.Update(document, a1(sheet, start), &values).
		ValueInputOption(string(mode)).
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("%w: error writing to '%v' (%v)", menu.ErrRemoteCall, sheet, err)
	}

	return nil
}

// a1 qualifies a range with the quoted sheet name, e.g. 'Menu 1.0'!A2:I
func a1(sheet, area string) string {
	return fmt.Sprintf("'%v'!%v", strings.ReplaceAll(sheet, "'", "''"), area)
}
