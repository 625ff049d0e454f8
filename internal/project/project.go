// Package project locates GNU Radio out-of-tree module roots.
//
// The root and module name discovered here are threaded explicitly into
// every block query; nothing below the command layer reads ambient state.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gerrors "github.com/grmod/cli/internal/errors"
)

// Project is a located out-of-tree module.
type Project struct {
	// Root is the absolute path of the module directory.
	Root string

	// ModuleName is the module name without the gr- prefix, used as the
	// filename prefix for definition files.
	ModuleName string
}

// modulePrefix is the conventional directory-name prefix for out-of-tree
// modules (gr-howto, gr-satellites, ...).
const modulePrefix = "gr-"

// Discover walks up from startDir until it finds a module root. The module
// name comes from the directory name; callers with oddly named checkouts
// override it with an explicit flag.
func Discover(startDir string) (*Project, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", startDir, err)
	}

	for {
		if IsModuleRoot(dir) {
			name, _ := ModuleNameFromDir(dir)
			return &Project{Root: dir, ModuleName: name}, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, &gerrors.DetailError{
		Type:     "no module found",
		Message:  fmt.Sprintf("no gr-* module found at or above %s", startDir),
		Location: startDir,
		Hint:     "Run inside an out-of-tree module, or pass --dir.",
		Cause:    gerrors.ErrNoProject,
	}
}

// IsModuleRoot reports whether dir looks like an out-of-tree module root:
// the parallel grc/ and lib/ trees exist, or the directory follows the gr-*
// naming convention and carries a top-level CMakeLists.txt.
func IsModuleRoot(dir string) bool {
	if isDir(filepath.Join(dir, "grc")) && isDir(filepath.Join(dir, "lib")) {
		return true
	}
	if strings.HasPrefix(filepath.Base(dir), modulePrefix) {
		if _, err := os.Stat(filepath.Join(dir, "CMakeLists.txt")); err == nil {
			return true
		}
	}
	return false
}

// ModuleNameFromDir derives the module name from a root directory name,
// stripping the gr- prefix. The second return is false when the directory
// does not follow the convention; the base name is returned as a fallback.
func ModuleNameFromDir(dir string) (string, bool) {
	base := filepath.Base(dir)
	if strings.HasPrefix(base, modulePrefix) {
		return strings.TrimPrefix(base, modulePrefix), true
	}
	return base, false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
