//go:build !windows

package fsys

// hasHiddenAttr always reports false; only the name prefix marks an
// entry hidden outside Windows.
func hasHiddenAttr(string) bool {
	return false
}
