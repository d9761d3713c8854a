package renamer

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// CollectBottomUp walks the subtree rooted at root and returns every entry,
// the root included, ordered contents-first: descendants always precede
// their ancestors. Renaming in this order never invalidates the path of a
// still-unprocessed entry, because an entry's own path only depends on
// ancestors, which are renamed after it.
//
// An ancestor is always a strict prefix (plus separator) of its descendants,
// so reverse lexicographic order of the collected paths yields the required
// ordering. Symbolic links are not followed; they appear as leaf entries.
func CollectBottomUp(root string) ([]string, error) {
	var entries []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		entries = append(entries, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	return entries, nil
}
