package main

import (
	"context"
	"strings"

	"github.com/matsen/biolink/internal/biolink"
	"github.com/matsen/biolink/internal/graph"
	"github.com/spf13/cobra"
)

var summaryWithNeighborhood bool

var summaryCmd = &cobra.Command{
	Use:   "summary <node-type> <node-id>",
	Short: "Get an entity with its graph and association counts",
	Long: `Get the summary of one entity: its BioLink record merged with its
local graph (nodes and edges) and the count of every association type
valid for its category.

The bioentity, graph and count queries run concurrently; if any of them
fails the whole command fails.

Examples:
  biolink summary disease MONDO:0007947
  biolink summary gene HGNC:3603 --human
  biolink summary phenotype HP:0001166 --neighborhood`,
	Args: cobra.ExactArgs(2),
	Run:  runSummary,
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryWithNeighborhood, "neighborhood", false, "Include the classified class neighborhood")
	rootCmd.AddCommand(summaryCmd)
}

// SummaryResult is the JSON output of summary --neighborhood.
type SummaryResult struct {
	Summary      *biolink.NodeSummary `json:"summary"`
	Neighborhood graph.Neighborhood   `json:"neighborhood"`
}

func runSummary(cmd *cobra.Command, args []string) {
	nodeType, nodeID := args[0], args[1]

	execute(
		func(ctx context.Context, client *biolink.Client) (any, error) {
			s, err := client.GetNodeSummary(ctx, nodeID, nodeType)
			if err != nil {
				return nil, err
			}
			if summaryWithNeighborhood {
				return SummaryResult{Summary: s, Neighborhood: s.Neighborhood()}, nil
			}
			return s, nil
		},
		func(v any) {
			switch r := v.(type) {
			case SummaryResult:
				printSummaryHuman(nodeType, r.Summary)
			case *biolink.NodeSummary:
				printSummaryHuman(nodeType, r)
			}
		},
	)
}

func printSummaryHuman(nodeType string, s *biolink.NodeSummary) {
	outputHuman("%s  %s\n", s.ID, s.Label)
	if len(s.Category) > 0 {
		outputHuman("Category: %s\n", strings.Join(s.Category, ", "))
	}
	if s.Taxon != nil {
		outputHuman("Taxon:    %s (%s)\n", s.Taxon.Label, s.Taxon.ID)
	}
	if s.Description != "" {
		outputHuman("\n  %s\n", wrapText(s.Description, DescriptionWrapWidth, "  "))
	}

	outputHuman("\nAssociations:\n")
	printCountsHuman(nodeType, s.Counts)

	outputHuman("\nGraph: %d nodes, %d edges\n", len(s.Nodes), len(s.Edges))
	printNeighborhoodHuman(s.Neighborhood())
}

// printCountsHuman prints counts in association-type order.
func printCountsHuman(nodeType string, counts biolink.CountsMap) {
	if counts == nil {
		outputHuman("  (unknown for this category)\n")
		return
	}
	for _, a := range countOrder(nodeType, counts) {
		outputHuman("  %-12s %d\n", a, counts[a].TotalCount)
	}
}

// countOrder returns the association types of counts in the order the
// registry lists them for nodeType.
func countOrder(nodeType string, counts biolink.CountsMap) []biolink.AssociationType {
	category, _ := biolink.ParseCategory(nodeType)
	types, _ := biolink.AssociationTypes(category)

	order := make([]biolink.AssociationType, 0, len(counts))
	for _, a := range types {
		if _, ok := counts[a]; ok {
			order = append(order, a)
		}
	}
	return order
}

func printNeighborhoodHuman(n graph.Neighborhood) {
	sections := []struct {
		title string
		ids   []string
	}{
		{"Superclasses", n.Superclasses},
		{"Subclasses", n.Subclasses},
		{"Equivalent classes", n.EquivalentClasses},
	}
	for _, sec := range sections {
		if len(sec.ids) == 0 {
			continue
		}
		outputHuman("\n%s:\n", sec.title)
		for _, id := range sec.ids {
			outputHuman("  %-20s %s\n", id, truncateString(n.Label(id), LabelMaxLen))
		}
	}
}
