package biolink

import (
	"context"
	"encoding/json"
	"strings"
)

// Defaults for the passthrough endpoints.
const (
	DefaultAutocompleteRows = 10
	DefaultTargetSpecies    = "all"
	DefaultCompareMode      = "search"
	AssetsCurieRows         = 10000
)

// Search runs a free-text entity search.
func (c *Client) Search(ctx context.Context, query string, start, rows int) (json.RawMessage, error) {
	params := associationQuery(false, true, true, rows)
	params["start"] = start
	return c.fetch(ctx, c.biolinkURL("search", "entity", query), params)
}

// Autocomplete returns term suggestions. selected is the category chosen in
// the search box; "gene" and "Phenotype" narrow the CURIE prefixes.
func (c *Client) Autocomplete(ctx context.Context, term, selected string, rows int) (json.RawMessage, error) {
	if rows <= 0 {
		rows = DefaultAutocompleteRows
	}

	prefixes := []string{}
	params := Params{
		"rows":            rows,
		"start":           0,
		"highlight_class": "hilite",
		"boost_q":         "category:genotype^-10",
	}
	switch selected {
	case "gene":
		params["boost_fx"] = "pow(edges,0.334)"
		prefixes = append(prefixes, "NCBIGene")
	case "Phenotype":
		prefixes = append(prefixes, "HP", "MONDO", "EFO", "OBA", "NCIT")
	}
	params["prefix"] = append(prefixes, "-OMIA")

	return c.fetch(ctx, c.biolinkURL("search", "entity", "autocomplete", term), params)
}

// NodeAssociations lists associations of one card type for an entity.
// params are passed through unchanged.
func (c *Client) NodeAssociations(ctx context.Context, nodeType, id, cardType string, params Params) (json.RawMessage, error) {
	segments := []string{"bioentity", nodeType, id}
	segments = append(segments, strings.Split(annotationPath(cardType), "/")...)
	return c.fetch(ctx, c.biolinkURL(segments...), params)
}

// NodeLabelByCurie fetches an entity record by CURIE alone.
func (c *Client) NodeLabelByCurie(ctx context.Context, curie string) (json.RawMessage, error) {
	params := Params{
		"fetch_objects": true,
		"rows":          DefaultDetailRows,
	}
	return c.fetch(ctx, c.biolinkURL("bioentity", curie), params)
}

// DbXrefs fetches the SciGraph record of a CURIE, which lists its database
// cross-references.
func (c *Client) DbXrefs(ctx context.Context, curie string) (json.RawMessage, error) {
	return c.fetch(ctx, joinURL(c.server.XrefsURL, "graph", curie), nil)
}

// ComparePhenotypes scores genes or diseases against a phenotype profile.
// Empty species and mode fall back to "all" and "search".
func (c *Client) ComparePhenotypes(ctx context.Context, phenotypes, genes []string, species, mode string) (json.RawMessage, error) {
	if species == "" {
		species = DefaultTargetSpecies
	}
	if mode == "" {
		mode = DefaultCompareMode
	}

	params := Params{
		"input_items":    strings.Join(phenotypes, ","),
		"gene_items":     strings.Join(genes, ","),
		"target_species": species,
		"mode":           mode,
	}
	return c.fetch(ctx, joinURL(c.server.AnalyzeURL, "phenotypes.json"), params)
}

// AssetsByCurie searches the asset index for everything under a class.
func (c *Client) AssetsByCurie(ctx context.Context, curie string) (json.RawMessage, error) {
	params := assetsQuery("isa_closure:" + curie)
	params["rows"] = AssetsCurieRows
	return c.fetch(ctx, c.server.AssetsURL, params)
}

// AssetsByTerm searches the asset index by class label.
func (c *Client) AssetsByTerm(ctx context.Context, term string) (json.RawMessage, error) {
	return c.fetch(ctx, c.server.AssetsURL, assetsQuery("isa_closure_label:"+term))
}

func assetsQuery(q string) Params {
	return Params{
		"defType": "edismax",
		"fl":      "*,score",
		"facet":   true,
		"q":       q,
		"wt":      "json",
	}
}
