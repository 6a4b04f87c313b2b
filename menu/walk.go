package menu

import (
	"io/fs"
	"sort"
	"strings"
)

// CollectFiles returns the page files in the root of fsys, sorted by name. A missing or
// unreadable directory is logged and treated as empty.
func CollectFiles(fsys fs.FS) []string {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		warnf("Unable to read pages directory (%v)", err)
		return []string{}
	}

	files := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), Extension) {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)

	return files
}
