package render

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/kylesnowschwartz/truffula/internal/fsys"
)

// VisibleEntries returns entries filtered and sorted for display.
// Hidden entries are dropped unless showHidden is set. The input slice is
// not modified.
func VisibleEntries(entries []fsys.Entry, showHidden bool) []fsys.Entry {
	visible := make([]fsys.Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsHidden && !showHidden {
			continue
		}
		visible = append(visible, e)
	}
	SortEntries(visible)
	return visible
}

// SortEntries orders entries by case-folded name. Directories and files are
// interleaved. Names that fold equal fall back to byte order so output is
// deterministic.
func SortEntries(entries []fsys.Entry) {
	fold := cases.Fold()
	keys := make(map[string]string, len(entries))
	for _, e := range entries {
		keys[e.Name] = fold.String(e.Name)
	}

	slices.SortStableFunc(entries, func(a, b fsys.Entry) int {
		if c := strings.Compare(keys[a.Name], keys[b.Name]); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}
