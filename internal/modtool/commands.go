package modtool

import (
	"context"
	"regexp"
	"strings"
)

// Block types accepted by gr_modtool add.
var BlockTypes = []string{
	"sink", "source", "sync", "decimator", "interpolator",
	"general", "tagged_stream", "hier", "noblock",
}

// Languages accepted by gr_modtool add.
var Languages = []string{"cpp", "python"}

// AddOptions collects the arguments for gr_modtool add.
type AddOptions struct {
	Name      string
	BlockType string
	Language  string
	Arguments []string
	Copyright string
	PythonQA  bool
	CppQA     bool
}

// Add scaffolds a new block.
func (b *Binary) Add(ctx context.Context, root string, opts AddOptions) error {
	args := []string{
		"--block-type", opts.BlockType,
		"--lang", opts.Language,
	}
	if len(opts.Arguments) > 0 {
		args = append(args, "--argument-list", strings.Join(opts.Arguments, ", "))
	}
	if opts.Copyright != "" {
		args = append(args, "--copyright", opts.Copyright)
	}
	if opts.PythonQA {
		args = append(args, "--add-python-qa")
	}
	if opts.CppQA {
		args = append(args, "--add-cpp-qa")
	}
	args = append(args, opts.Name)

	return b.Run(ctx, root, SubAdd, args...)
}

// Rename renames a block and all of its correlated files.
func (b *Binary) Rename(ctx context.Context, root, oldName, newName string) error {
	return b.Run(ctx, root, SubRename, oldName, newName)
}

// Remove removes the blocks matching name (an identifier or a regular
// expression, which gr_modtool applies itself).
func (b *Binary) Remove(ctx context.Context, root, name string) error {
	return b.Run(ctx, root, SubRemove, name)
}

// Disable comments the matching blocks out of the build without deleting
// their files.
func (b *Binary) Disable(ctx context.Context, root, name string) error {
	return b.Run(ctx, root, SubDisable, name)
}

// Bind regenerates the python bindings for a C++ block.
func (b *Binary) Bind(ctx context.Context, root, name string) error {
	return b.Run(ctx, root, SubBind, name)
}

// Update converts a block's legacy XML definition to the current format.
// complete also updates the block's other generated files.
func (b *Binary) Update(ctx context.Context, root, name string, complete bool) error {
	args := []string{name}
	if complete {
		args = append(args, "--complete")
	}
	return b.Run(ctx, root, SubUpdate, args...)
}

// MakeYAML generates current-format definitions for the matching blocks.
func (b *Binary) MakeYAML(ctx context.Context, root, name string) error {
	return b.Run(ctx, root, SubMakeYAML, name)
}

// ModuleInfo is the parsed output of gr_modtool info.
type ModuleInfo struct {
	// Name is the module name without the gr- prefix.
	Name string

	// Raw is the tool's verbatim output, for display.
	Raw string
}

// infoNameRe pulls the module name out of the python-readable info dict,
// e.g. {'modname': 'howto', ...}.
var infoNameRe = regexp.MustCompile(`'modname':\s*'([^']*)'`)

// Info queries gr_modtool for module metadata.
func (b *Binary) Info(ctx context.Context, root string) (*ModuleInfo, error) {
	out, err := b.RunCapture(ctx, root, SubInfo, "--python-readable")
	if err != nil {
		return nil, err
	}
	return parseModuleInfo(out), nil
}

// parseModuleInfo extracts what the CLI needs from the tool's raw output.
func parseModuleInfo(out string) *ModuleInfo {
	info := &ModuleInfo{Raw: strings.TrimSpace(out)}
	if m := infoNameRe.FindStringSubmatch(out); m != nil {
		info.Name = m[1]
	}
	return info
}
