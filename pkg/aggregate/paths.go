package aggregate

import (
	"path/filepath"
	"strings"
)

// Label computes the display path written into a block's tags: the part of
// path below base when path is lexically a descendant of base, otherwise
// path unchanged. Relative inputs and paths outside base keep whatever form
// they arrived in, so labels within one document can mix relative and
// absolute forms.
func Label(path, base string) string {
	if base == "" {
		return path
	}
	sep := string(filepath.Separator)
	prefix := strings.TrimSuffix(base, sep) + sep
	if strings.HasPrefix(path, prefix) && len(path) > len(prefix) {
		return strings.TrimPrefix(path, prefix)
	}
	return path
}
