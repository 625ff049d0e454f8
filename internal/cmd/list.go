package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grmod/cli/internal/blocks"
	"github.com/grmod/cli/internal/output"
)

var listFormat string

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the blocks of the module",
		Long: `List every block discoverable in the module, with the facets each
block carries: a current-format definition, a legacy XML definition, a
public header, and a C++ implementation.

Examples:
  # Table of blocks in the enclosing module
  grmod list

  # Machine-readable listing
  grmod list -o json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVarP(&listFormat, "output", "o", "table",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return cmd
}

// blockListing is one row of grmod list.
type blockListing struct {
	Name             string `json:"name" yaml:"name"`
	Definition       bool   `json:"definition" yaml:"definition"`
	LegacyDefinition bool   `json:"legacyDefinition" yaml:"legacyDefinition"`
	Header           bool   `json:"header" yaml:"header"`
	Implementation   bool   `json:"implementation" yaml:"implementation"`
}

func runList(cmd *cobra.Command, _ []string) error {
	proj, err := requireProject()
	if err != nil {
		return err
	}

	all, err := blocks.ListAllBlocks(proj.Root, proj.ModuleName)
	if err != nil {
		return err
	}
	withHeader, err := blocks.ListBlocksWithHeader(proj.Root, proj.ModuleName)
	if err != nil {
		return err
	}
	withLegacy, err := blocks.ListBlocksWithLegacyDefinition(proj.Root, proj.ModuleName)
	if err != nil {
		return err
	}
	withImpl, err := blocks.ListBlocksWithImplementation(proj.Root, proj.ModuleName)
	if err != nil {
		return err
	}

	headerSet := toSet(withHeader)
	legacySet := toSet(withLegacy)
	implSet := toSet(withImpl)

	listings := make([]blockListing, 0, len(all))
	for _, id := range all {
		files, err := blocks.CorrelateFiles(proj.Root, proj.ModuleName, id)
		if err != nil {
			return err
		}
		hasDefinition := false
		for _, f := range files {
			if f.Role == blocks.FacetDefinition.String() {
				hasDefinition = true
				break
			}
		}
		listings = append(listings, blockListing{
			Name:             id,
			Definition:       hasDefinition,
			LegacyDefinition: legacySet[id],
			Header:           headerSet[id],
			Implementation:   implSet[id],
		})
	}

	switch output.ParseFormat(listFormat) {
	case output.FormatJSON:
		data, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding listing: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(listings)
		if err != nil {
			return fmt.Errorf("encoding listing: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		tbl := output.NewTable("Block", "Definition", "Legacy", "Header", "Impl")
		for _, l := range listings {
			tbl.Row(l.Name, mark(l.Definition), mark(l.LegacyDefinition),
				mark(l.Header), mark(l.Implementation))
		}
		fmt.Fprintln(cmd.OutOrStdout(), tbl.String())
		fmt.Fprintln(cmd.OutOrStdout(), output.StyleDim.Render(
			fmt.Sprintf("%d blocks in gr-%s", len(listings), proj.ModuleName)))
	}

	return nil
}

func mark(b bool) string {
	if b {
		return "✔"
	}
	return ""
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
