package blocks

import (
	"path/filepath"
	"sort"
)

// BlockFile is one concrete file belonging to a block, tagged with its
// human-readable role label.
type BlockFile struct {
	// Role is the display label for the file's facet.
	Role string

	// Path is the file's path, rooted at the project root.
	Path string
}

// CorrelateFiles returns every file belonging to blockID, in the fixed
// presentation order of the pattern table (definitions first, then
// implementations, headers, bindings, tests). Files that match no
// block-bearing pattern in their directory are skipped, not reported.
//
// The correlator walks the same pattern table as the inventory, so an
// identifier returned by ListAllBlocks always correlates to at least one
// file.
func CorrelateFiles(root, moduleName, blockID string) ([]BlockFile, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	var files []BlockFile
	for _, p := range patternTable {
		dir := p.dir(moduleName)
		entries, err := listDir(filepath.Join(root, dir))
		if err != nil {
			return nil, err
		}
		sort.Strings(entries)
		for _, name := range entries {
			c, ok := classifyName(p, moduleName, name)
			if !ok || c.BlockID != blockID {
				continue
			}
			files = append(files, BlockFile{
				Role: p.facet.String(),
				Path: filepath.Join(root, dir, name),
			})
		}
	}
	return files, nil
}
