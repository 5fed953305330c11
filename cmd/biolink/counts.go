package main

import (
	"context"
	"fmt"

	"github.com/matsen/biolink/internal/biolink"
	"github.com/spf13/cobra"
)

var countsCmd = &cobra.Command{
	Use:   "counts <node-type> <node-id>",
	Short: "Count associations of an entity by type",
	Long: `Count the associations of one entity for every association type valid
for its category. Outputs null when the category has no known associations.

Examples:
  biolink counts gene HGNC:3603
  biolink counts disease MONDO:0007947 --human`,
	Args: cobra.ExactArgs(2),
	Run:  runCounts,
}

func init() {
	rootCmd.AddCommand(countsCmd)
}

func runCounts(cmd *cobra.Command, args []string) {
	nodeType, nodeID := args[0], args[1]

	execute(
		func(ctx context.Context, client *biolink.Client) (any, error) {
			return client.GetCountsForNode(ctx, nodeID, nodeType)
		},
		func(v any) {
			outputHuman("%s (%s)\n", nodeID, nodeType)
			printCountsHuman(nodeType, v.(biolink.CountsMap))
		},
	)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List entity categories and their association types",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

// CategoryInfo is one row of the categories output.
type CategoryInfo struct {
	Category     biolink.Category          `json:"category"`
	Associations []biolink.AssociationType `json:"associations"`
}

func runCategories(cmd *cobra.Command, args []string) error {
	var rows []CategoryInfo
	for _, c := range biolink.Categories() {
		types, _ := biolink.AssociationTypes(c)
		rows = append(rows, CategoryInfo{Category: c, Associations: types})
	}

	if !humanOutput {
		return outputJSON(rows)
	}
	for _, r := range rows {
		fmt.Printf("%-16s %v\n", r.Category, r.Associations)
	}
	return nil
}
