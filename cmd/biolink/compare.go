package main

import (
	"context"
	"encoding/json"

	"github.com/matsen/biolink/internal/biolink"
	"github.com/spf13/cobra"
)

var (
	compareGenes   string
	compareSpecies string
	compareMode    string

	assetsByTerm bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <phenotype-curies>",
	Short: "Compare a phenotype profile against genes or diseases",
	Long: `Score entities against a phenotype profile with the Monarch analyzer.

Examples:
  biolink compare HP:0001166,HP:0000545
  biolink compare HP:0001166,HP:0000545 --genes HGNC:3603 --species 9606`,
	Args: cobra.ExactArgs(1),
	Run:  runCompare,
}

var assetsCmd = &cobra.Command{
	Use:   "assets <curie-or-term>",
	Short: "Search the asset index by class CURIE or label",
	Long: `Search the genotype-phenotype asset index for everything under a class.

Examples:
  biolink assets HP:0000118
  biolink assets "abnormality of the eye" --term`,
	Args: cobra.ExactArgs(1),
	Run:  runAssets,
}

func init() {
	compareCmd.Flags().StringVar(&compareGenes, "genes", "", "Comma-separated gene CURIEs to compare against")
	compareCmd.Flags().StringVar(&compareSpecies, "species", biolink.DefaultTargetSpecies, "Target species")
	compareCmd.Flags().StringVar(&compareMode, "mode", biolink.DefaultCompareMode, "Analyzer mode (search, compare)")
	rootCmd.AddCommand(compareCmd)

	assetsCmd.Flags().BoolVar(&assetsByTerm, "term", false, "Treat the argument as a class label instead of a CURIE")
	rootCmd.AddCommand(assetsCmd)
}

func runCompare(cmd *cobra.Command, args []string) {
	phenotypes := splitList(args[0])
	if len(phenotypes) == 0 {
		exitWithError(ExitError, "at least one phenotype CURIE is required")
	}
	genes := splitList(compareGenes)

	executeRaw(func(ctx context.Context, client *biolink.Client) (json.RawMessage, error) {
		return client.ComparePhenotypes(ctx, phenotypes, genes, compareSpecies, compareMode)
	})
}

func runAssets(cmd *cobra.Command, args []string) {
	arg := args[0]
	executeRaw(func(ctx context.Context, client *biolink.Client) (json.RawMessage, error) {
		if assetsByTerm {
			return client.AssetsByTerm(ctx, arg)
		}
		return client.AssetsByCurie(ctx, arg)
	})
}
