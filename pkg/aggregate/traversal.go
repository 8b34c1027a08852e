package aggregate

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Walk traverses root and invokes visit for every regular file that is not
// beneath an excluded directory segment. Entries that cannot be read are
// dropped without aborting the walk, and symlinked directories are not
// followed. Visit order is whatever the walk yields; callers must not
// depend on it.
func Walk(root string, excluded []string, logger *zap.Logger, visit func(path string)) error {
	// The root itself may already sit under an excluded segment (e.g. a
	// path inside the version-control tree passed explicitly).
	for _, seg := range strings.Split(filepath.ToSlash(filepath.Clean(root)), "/") {
		if isExcluded(seg, excluded) {
			logger.Debug("Root is under an excluded segment", zap.String("root", root), zap.String("segment", seg))
			return nil
		}
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Debug("Dropping unreadable entry during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if isExcluded(d.Name(), excluded) {
				logger.Debug("Pruning excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		visit(path)
		return nil
	})
}

func isExcluded(name string, excluded []string) bool {
	for _, e := range excluded {
		if name == e {
			return true
		}
	}
	return false
}
