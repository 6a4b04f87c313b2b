package menu

import (
	"fmt"
	"strings"
)

// Shape is the column layout of the target worksheet.
type Shape int

const (
	// Compact is the 9 column layout: No, Sector, depth 1-3, storyboard ID, title, content, actions.
	Compact Shape = iota

	// Extended is the 11 column layout that adds depth 4 and a trailing comment holding the file name.
	Extended
)

var headers = map[Shape][]string{
	Compact: {
		"No", "Sector", "1 depth", "2 depth", "3 depth",
		"스토리보드 번호", "설명", "콘텐츠/데이터", "링크/버튼/액션",
	},

	Extended: {
		"No", "Sector", "1 depth", "2 depth", "3 depth", "4 depth",
		"스토리보드 번호", "설명", "콘텐츠/데이터", "링크/버튼/액션", "코멘트",
	},
}

// ParseShape accepts 'compact' (or '9') and 'extended' (or '11').
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact", "9", "":
		return Compact, nil

	case "extended", "11":
		return Extended, nil
	}

	return Compact, fmt.Errorf("Invalid row shape '%v' - expected 'compact' or 'extended'", s)
}

func (s Shape) String() string {
	switch s {
	case Compact:
		return "compact"

	case Extended:
		return "extended"
	}

	return fmt.Sprintf("shape(%d)", int(s))
}

// Columns returns the number of cells in every row of this shape.
func (s Shape) Columns() int {
	return len(headers[s])
}

// Header returns the column titles of the worksheet header row.
func (s Shape) Header() []string {
	return append([]string{}, headers[s]...)
}

// DataRange returns the range (without sheet name) occupied by the data rows, e.g. A2:I.
func (s Shape) DataRange() string {
	return fmt.Sprintf("%s:%s", DataStart, column(s.Columns()))
}

// DataStart is the top left cell of the data rows - row 1 is the header and is preserved.
const DataStart = "A2"

// Row is a single worksheet row, positionally matching the Shape header.
type Row []string

// Build formats the sheet row for a page. The 'No' cell is left empty for the worksheet to
// number and the storyboard ID is always bracketed.
func Build(file SourceFile, summary PageSummary, sector string, shape Shape) Row {
	row := Row{
		"",
		sector,
		file.depth(1),
		file.depth(2),
		file.depth(3),
	}

	if shape == Extended {
		row = append(row, file.depth(4))
	}

	row = append(row,
		fmt.Sprintf("[%v]", file.ID),
		summary.Title,
		summary.Content(),
		summary.Actions())

	if shape == Extended {
		row = append(row, file.Filename)
	}

	return row
}

// column converts a 1-based column index to the A1 notation column letters.
func column(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+n%26)) + s
		n /= 26
	}

	return s
}
