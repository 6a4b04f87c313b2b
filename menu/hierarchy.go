package menu

import (
	"regexp"
	"strings"
)

// Extension is the file extension of the pages that make up the menu structure.
const Extension = ".html"

var numbered = regexp.MustCompile(`^(\d+)(?:-(\d+))?(?:-(\d+))?(?:-(\d+))?\s+(.*)` + regexp.QuoteMeta(Extension) + `$`)

// SourceFile is the menu hierarchy position derived from a page file name, e.g.
// "1-2-3 Order_History.html".
type SourceFile struct {
	Filename string
	Depths   []string // digits as written, present levels only
	ID       string
	Name     string
}

// Parse derives the hierarchy levels, storyboard ID and page name from a file name. File
// names that do not follow the numbering convention (e.g. index.html) fall back to using
// the file name itself as the ID.
func Parse(filename string) SourceFile {
	match := numbered.FindStringSubmatch(filename)
	if match == nil {
		return SourceFile{
			Filename: filename,
			ID:       filename,
			Name:     strings.TrimSuffix(filename, Extension),
		}
	}

	depths := []string{}
	for _, d := range match[1:5] {
		if d != "" {
			depths = append(depths, d)
		}
	}

	return SourceFile{
		Filename: filename,
		Depths:   depths,
		ID:       strings.Join(depths, "-"),
		Name:     strings.ReplaceAll(match[5], "_", " "),
	}
}

// Depth returns the hierarchy level n (1-4) and whether it is present in the file name.
func (f SourceFile) Depth(n int) (string, bool) {
	if n < 1 || n > len(f.Depths) {
		return "", false
	}

	return f.Depths[n-1], true
}

// Matched returns true if the file name follows the numbered page convention.
func (f SourceFile) Matched() bool {
	return len(f.Depths) > 0
}

func (f SourceFile) depth(n int) string {
	d, _ := f.Depth(n)

	return d
}
