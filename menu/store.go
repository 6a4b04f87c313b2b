package menu

import (
	"context"
)

// InputMode determines how the remote document store interprets written values.
type InputMode string

const (
	UserEntered InputMode = "USER_ENTERED"
	Raw         InputMode = "RAW"
)

// Store is the remote document (spreadsheet) the menu structure is synchronized to.
// Ranges are in A1 notation without the sheet name, e.g. "A2:K".
type Store interface {
	Metadata(ctx context.Context, document string) (*Metadata, error)
	Read(ctx context.Context, document, sheet, area string) ([][]string, error)
	Clear(ctx context.Context, document, sheet, area string) error
	Write(ctx context.Context, document, sheet, start string, rows [][]string, mode InputMode) error
}

type Metadata struct {
	Title  string
	Sheets []Sheet
}

type Sheet struct {
	Title string
	ID    int64
}

// Sheet finds a worksheet by its exact title.
func (m Metadata) Sheet(title string) (Sheet, bool) {
	for _, sheet := range m.Sheets {
		if sheet.Title == title {
			return sheet, true
		}
	}

	return Sheet{}, false
}
