// Package blocks implements block discovery, classification, and file
// correlation for GNU Radio out-of-tree modules.
//
// A "block" is identified by the cluster of files that share one block
// identifier across the module's parallel directory trees (grc definitions,
// public headers, python implementations, lib sources, generated bindings).
// All classification flows through a single declarative pattern table so the
// inventory and the correlator can never disagree about what maps to a block.
package blocks

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Facet is one category of file associated with a block.
type Facet int

const (
	// FacetDefinition is a current-format block definition (.block.yml).
	FacetDefinition Facet = iota

	// FacetLegacyDefinition is a legacy XML block definition.
	FacetLegacyDefinition

	// FacetPythonImpl is a python implementation file.
	FacetPythonImpl

	// FacetPublicHeader is a public C++ header under include/.
	FacetPublicHeader

	// FacetImplSource is a C++ implementation source under lib/.
	FacetImplSource

	// FacetImplHeader is a C++ implementation header under lib/.
	FacetImplHeader

	// FacetBinding is a generated python binding source.
	FacetBinding

	// FacetCppTest is a C++ QA/test file.
	FacetCppTest

	// FacetPythonTest is a python QA/test file.
	FacetPythonTest
)

// String returns the facet's role label as shown in file listings.
func (f Facet) String() string {
	switch f {
	case FacetDefinition:
		return "Block definition"
	case FacetLegacyDefinition:
		return "Legacy block definition"
	case FacetPythonImpl:
		return "Python implementation"
	case FacetPublicHeader:
		return "Public header"
	case FacetImplSource:
		return "Implementation source"
	case FacetImplHeader:
		return "Implementation header"
	case FacetBinding:
		return "Python bindings"
	case FacetCppTest:
		return "C++ Tests"
	case FacetPythonTest:
		return "Python Tests"
	default:
		return "Unknown"
	}
}

// testFileRe matches reserved test-file names in either language.
// Test files are excluded from implementation and header inventories but
// reported by the correlator under their test facet; every form reserved
// here must be matched by a test pattern below, or the file vanishes from
// both sides.
var testFileRe = regexp.MustCompile(`^(?:qa|test)_|_test\.`)

// pattern describes how files in one directory context map to a facet.
// The regexp's first non-empty capture group is the block identifier, so
// alternations may each carry their own group.
type pattern struct {
	facet Facet

	// dir yields the directory holding this facet, relative to the
	// project root.
	dir func(moduleName string) string

	// re yields the file-name pattern. Compiled per query; the module
	// name is quoted into the expression where the facet is
	// module-prefixed.
	re func(moduleName string) *regexp.Regexp

	// exclude drops names that match re but are not block-bearing
	// (umbrella headers, package init files, test files in
	// implementation contexts). May be nil.
	exclude func(moduleName, name string) bool

	// inventory marks facets whose identifiers contribute to the
	// all-blocks inventory.
	inventory bool
}

// patternTable is the single source of truth for classification. Table order
// is presentation order for correlated file listings.
var patternTable = []pattern{
	{
		facet:     FacetDefinition,
		dir:       func(string) string { return "grc" },
		re:        prefixed(`_([A-Za-z0-9_]+)\.block\.yml$`),
		inventory: true,
	},
	{
		facet:     FacetLegacyDefinition,
		dir:       func(string) string { return "grc" },
		re:        prefixed(`_([A-Za-z0-9_]+)\.xml$`),
		inventory: true,
	},
	{
		facet: FacetPythonImpl,
		dir:   pythonDir,
		re:    fixed(`^([A-Za-z0-9_]+)\.py$`),
		exclude: func(_, name string) bool {
			return name == "__init__.py" || testFileRe.MatchString(name)
		},
		inventory: true,
	},
	{
		facet: FacetPublicHeader,
		dir:   headerDir,
		re:    fixed(`^([A-Za-z0-9_]+)\.(?:h|hh|hpp)$`),
		exclude: func(moduleName, name string) bool {
			base := strings.TrimSuffix(name, filepath.Ext(name))
			return base == moduleName || base == "api" || testFileRe.MatchString(name)
		},
		inventory: true,
	},
	{
		facet: FacetImplSource,
		dir:   func(string) string { return "lib" },
		re:    fixed(`^([A-Za-z0-9_]+?)(?:_impl)?\.(?:cc|cpp|cxx)$`),
		exclude: func(_, name string) bool {
			return testFileRe.MatchString(name) || strings.Contains(name, "_python.")
		},
		inventory: true,
	},
	{
		facet: FacetImplHeader,
		dir:   func(string) string { return "lib" },
		re:    fixed(`^([A-Za-z0-9_]+?)(?:_impl)?\.(?:h|hh|hpp)$`),
		exclude: func(_, name string) bool {
			return testFileRe.MatchString(name)
		},
	},
	{
		facet: FacetBinding,
		dir:   bindingsDir,
		re:    fixed(`^([A-Za-z0-9_]+)_python\.(?:cc|cpp|cxx)$`),
	},
	{
		facet: FacetCppTest,
		dir:   func(string) string { return "lib" },
		re:    fixed(`^(?:qa|test)_([A-Za-z0-9_]+)\.(?:cc|cpp|cxx|h)$|^([A-Za-z0-9_]+)_test\.(?:cc|cpp|cxx|h)$`),
	},
	{
		facet: FacetPythonTest,
		dir:   pythonDir,
		re:    fixed(`^(?:qa|test)_([A-Za-z0-9_]+)\.py$|^([A-Za-z0-9_]+)_test\.py$`),
	},
}

func pythonDir(moduleName string) string {
	return filepath.Join("python", moduleName)
}

func headerDir(moduleName string) string {
	return filepath.Join("include", "gnuradio", moduleName)
}

func bindingsDir(moduleName string) string {
	return filepath.Join("python", moduleName, "bindings")
}

// prefixed builds a module-prefixed name pattern.
func prefixed(tail string) func(string) *regexp.Regexp {
	return func(moduleName string) *regexp.Regexp {
		return regexp.MustCompile(fmt.Sprintf(`^%s%s`, regexp.QuoteMeta(moduleName), tail))
	}
}

// fixed builds a pattern that does not depend on the module name.
func fixed(expr string) func(string) *regexp.Regexp {
	re := regexp.MustCompile(expr)
	return func(string) *regexp.Regexp { return re }
}

// definitionSuffixRe is the looser "any current-format definition" check. It
// accepts definitions that carry the .block.yml suffix without the module
// prefix; it cannot extract a reliable identifier, so it is only a filter.
var definitionSuffixRe = regexp.MustCompile(`\.block\.yml$`)

// IsDefinitionName reports whether name looks like a current-format block
// definition, regardless of module prefix.
func IsDefinitionName(name string) bool {
	return definitionSuffixRe.MatchString(name)
}
