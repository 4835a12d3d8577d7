//go:build windows

package fsys

import "golang.org/x/sys/windows"

// hasHiddenAttr reports whether the file at p has FILE_ATTRIBUTE_HIDDEN set.
// Attribute lookup failures are treated as not hidden.
func hasHiddenAttr(p string) bool {
	ptr, err := windows.UTF16PtrFromString(p)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
