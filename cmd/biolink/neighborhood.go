package main

import (
	"context"

	"github.com/matsen/biolink/internal/biolink"
	"github.com/matsen/biolink/internal/graph"
	"github.com/spf13/cobra"
)

var neighborhoodCmd = &cobra.Command{
	Use:   "neighborhood <node-id>",
	Short: "Get superclasses, subclasses and equivalent classes of a node",
	Long: `Fetch the local graph of a node and classify its edges relative to it.

subClassOf edges give superclasses (node is the subject) and subclasses
(node is the object); equivalentClass edges give equivalent classes.

Examples:
  biolink neighborhood MONDO:0007947
  biolink neighborhood HP:0001166 --human`,
	Args: cobra.ExactArgs(1),
	Run:  runNeighborhood,
}

func init() {
	rootCmd.AddCommand(neighborhoodCmd)
}

func runNeighborhood(cmd *cobra.Command, args []string) {
	nodeID := args[0]

	execute(
		func(ctx context.Context, client *biolink.Client) (any, error) {
			g, err := client.GetGraph(ctx, nodeID)
			if err != nil {
				return nil, err
			}
			return graph.Classify(*g), nil
		},
		func(v any) {
			n := v.(graph.Neighborhood)
			outputHuman("%s  %s\n", nodeID, n.Label(nodeID))
			printNeighborhoodHuman(n)
		},
	)
}
