package main

import (
	"context"
	"encoding/json"

	"github.com/matsen/biolink/internal/biolink"
	"github.com/spf13/cobra"
)

var (
	searchStart int
	searchRows  int

	autocompleteCategory string
	autocompleteRows     int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entities by text",
	Long: `Search BioLink entities by free text. Outputs the raw service response.

Examples:
  biolink search "marfan syndrome"
  biolink search fibrillin --start 20 --rows 20`,
	Args: cobra.ExactArgs(1),
	Run:  runSearch,
}

var autocompleteCmd = &cobra.Command{
	Use:   "autocomplete <term>",
	Short: "Suggest entities for a partial term",
	Long: `Suggest entities for a partial term, as a search box would.

--category gene boosts well-connected genes and restricts to NCBIGene;
--category Phenotype restricts to HP, MONDO, EFO, OBA and NCIT.

Examples:
  biolink autocomplete fbn --category gene
  biolink autocomplete "abnormal heart" --category Phenotype --rows 20`,
	Args: cobra.ExactArgs(1),
	Run:  runAutocomplete,
}

func init() {
	searchCmd.Flags().IntVar(&searchStart, "start", 0, "Offset of the first result")
	searchCmd.Flags().IntVar(&searchRows, "rows", 25, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)

	autocompleteCmd.Flags().StringVar(&autocompleteCategory, "category", "all", "Selected category (gene, Phenotype, all)")
	autocompleteCmd.Flags().IntVar(&autocompleteRows, "rows", biolink.DefaultAutocompleteRows, "Maximum number of suggestions")
	rootCmd.AddCommand(autocompleteCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	query := args[0]
	executeRaw(func(ctx context.Context, client *biolink.Client) (json.RawMessage, error) {
		return client.Search(ctx, query, searchStart, searchRows)
	})
}

func runAutocomplete(cmd *cobra.Command, args []string) {
	term := args[0]
	executeRaw(func(ctx context.Context, client *biolink.Client) (json.RawMessage, error) {
		return client.Autocomplete(ctx, term, autocompleteCategory, autocompleteRows)
	})
}
