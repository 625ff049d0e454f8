package blocks

import (
	"path/filepath"
)

// Classification is the result of classifying one file name within a
// directory context.
type Classification struct {
	// Facet is the facet the file represents.
	Facet Facet

	// BlockID is the block identifier extracted from the file name.
	BlockID string
}

// classifyName classifies a bare file name against one pattern. The second
// return is false when the name does not belong to that facet. Classification
// is total: unmatched names are filtered, never an error.
func classifyName(p pattern, moduleName, name string) (Classification, bool) {
	if p.exclude != nil && p.exclude(moduleName, name) {
		return Classification{}, false
	}
	m := p.re(moduleName).FindStringSubmatch(name)
	if m == nil {
		return Classification{}, false
	}
	for _, id := range m[1:] {
		if id != "" {
			return Classification{Facet: p.facet, BlockID: id}, true
		}
	}
	return Classification{}, false
}

// ResolveBlockIdentifier maps a file path under the project root to the block
// identifier that owns it, or "" when the path lies outside every recognized
// directory or matches no facet pattern. This backs "default the picker to
// the block of the active file".
func ResolveBlockIdentifier(path, root, moduleName string) string {
	rel, err := filepath.Rel(root, filepath.Clean(path))
	if err != nil {
		return ""
	}
	dir := filepath.Dir(rel)
	name := filepath.Base(rel)

	for _, p := range patternTable {
		if dir != p.dir(moduleName) {
			continue
		}
		if c, ok := classifyName(p, moduleName, name); ok {
			return c.BlockID
		}
	}
	return ""
}
