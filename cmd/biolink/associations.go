package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matsen/biolink/internal/biolink"
	"github.com/spf13/cobra"
)

var associationsParams []string

var associationsCmd = &cobra.Command{
	Use:   "associations <node-type> <node-id> <card-type>",
	Short: "List associations of one type for an entity",
	Long: `List the associations of one card type for an entity. Query parameters
are passed through unchanged with --param key=value (repeatable).

Card types follow the UI cards: gene, disease, phenotype, model, variant,
genotype, publication, anatomy (expression), function, ...

Examples:
  biolink associations gene HGNC:3603 disease
  biolink associations gene HGNC:3603 anatomy --param rows=50 --param start=50`,
	Args: cobra.ExactArgs(3),
	Run:  runAssociations,
}

var labelCmd = &cobra.Command{
	Use:   "label <curie>",
	Short: "Get the BioLink record of a CURIE",
	Args:  cobra.ExactArgs(1),
	Run:   runLabel,
}

var xrefsCmd = &cobra.Command{
	Use:   "xrefs <curie>",
	Short: "Get database cross-references of a CURIE from SciGraph",
	Args:  cobra.ExactArgs(1),
	Run:   runXrefs,
}

func init() {
	associationsCmd.Flags().StringArrayVar(&associationsParams, "param", nil, "Query parameter as key=value (repeatable)")
	rootCmd.AddCommand(associationsCmd)
	rootCmd.AddCommand(labelCmd)
	rootCmd.AddCommand(xrefsCmd)
}

// parseParams turns key=value pairs into Params; repeated keys accumulate.
func parseParams(pairs []string) (biolink.Params, error) {
	params := biolink.Params{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (want key=value)", pair)
		}
		switch prev := params[key].(type) {
		case nil:
			params[key] = value
		case string:
			params[key] = []string{prev, value}
		case []string:
			params[key] = append(prev, value)
		}
	}
	return params, nil
}

func runAssociations(cmd *cobra.Command, args []string) {
	nodeType, nodeID, cardType := args[0], args[1], args[2]

	params, err := parseParams(associationsParams)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	executeRaw(func(ctx context.Context, client *biolink.Client) (json.RawMessage, error) {
		return client.NodeAssociations(ctx, nodeType, nodeID, cardType, params)
	})
}

func runLabel(cmd *cobra.Command, args []string) {
	curie := args[0]
	executeRaw(func(ctx context.Context, client *biolink.Client) (json.RawMessage, error) {
		return client.NodeLabelByCurie(ctx, curie)
	})
}

func runXrefs(cmd *cobra.Command, args []string) {
	curie := args[0]
	executeRaw(func(ctx context.Context, client *biolink.Client) (json.RawMessage, error) {
		return client.DbXrefs(ctx, curie)
	})
}
