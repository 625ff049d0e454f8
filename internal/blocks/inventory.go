package blocks

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	gerrors "github.com/grmod/cli/internal/errors"
)

// ListAllBlocks returns the sorted identifiers of every block discoverable in
// the project: a block with any single facet counts. The scan is re-done on
// every call; there is no cache to go stale.
func ListAllBlocks(root, moduleName string) ([]string, error) {
	return listBlocks(root, moduleName, func(p pattern) bool {
		return p.inventory
	})
}

// ListBlocksWithHeader returns blocks that have a public header under
// include/gnuradio/<moduleName>.
func ListBlocksWithHeader(root, moduleName string) ([]string, error) {
	return listBlocks(root, moduleName, func(p pattern) bool {
		return p.facet == FacetPublicHeader
	})
}

// ListBlocksWithLegacyDefinition returns blocks that still carry a legacy XML
// definition under grc/.
func ListBlocksWithLegacyDefinition(root, moduleName string) ([]string, error) {
	return listBlocks(root, moduleName, func(p pattern) bool {
		return p.facet == FacetLegacyDefinition
	})
}

// ListBlocksWithImplementation returns blocks that have a C++ implementation
// source under lib/.
func ListBlocksWithImplementation(root, moduleName string) ([]string, error) {
	return listBlocks(root, moduleName, func(p pattern) bool {
		return p.facet == FacetImplSource
	})
}

// listBlocks scans the directories of every selected pattern and projects the
// classified identifiers into a sorted, de-duplicated slice.
func listBlocks(root, moduleName string, want func(pattern) bool) ([]string, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, p := range patternTable {
		if !want(p) {
			continue
		}
		entries, err := listDir(filepath.Join(root, p.dir(moduleName)))
		if err != nil {
			return nil, err
		}
		for _, name := range entries {
			if c, ok := classifyName(p, moduleName, name); ok {
				seen[c.BlockID] = struct{}{}
			}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// checkRoot verifies that the project root itself is present. A missing root
// is a hard error; missing subdirectories are not (a module with no XML
// blocks at all simply has no grc XML files).
func checkRoot(root string) error {
	if _, err := os.Stat(root); err != nil {
		return &gerrors.DetailError{
			Type:     "not found",
			Message:  fmt.Sprintf("project root is not accessible: %s", root),
			Location: root,
			Hint:     "Run inside a gr-* module or pass --dir.",
			Cause:    gerrors.ErrNotFound,
		}
	}
	return nil
}

// listDir returns the plain file names in dir. A directory that does not
// exist yields zero entries; any other listing failure propagates.
func listDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() || e.Type()&fs.ModeSymlink != 0 {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
