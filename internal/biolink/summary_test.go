package biolink

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsen/biolink/internal/graph"
)

const marfanGraph = `{
  "nodes": [
    {"id": "MONDO:0007947", "lbl": "Marfan syndrome", "meta": {}},
    {"id": "MONDO:0020066", "lbl": "Ehlers-Danlos syndrome", "meta": {}},
    {"id": "MONDO:0015994", "lbl": "neonatal Marfan syndrome", "meta": {}},
    {"id": "OMIM:154700", "lbl": "MARFAN SYNDROME", "meta": {}}
  ],
  "edges": [
    {"sub": "MONDO:0007947", "pred": "subClassOf", "obj": "MONDO:0020066", "meta": {}},
    {"sub": "MONDO:0015994", "pred": "subClassOf", "obj": "MONDO:0007947", "meta": {}},
    {"sub": "OMIM:154700", "pred": "equivalentClass", "obj": "MONDO:0007947", "meta": {}},
    {"sub": "MONDO:0007947", "pred": "equivalentClass", "obj": "OMIM:154700", "meta": {}}
  ]
}`

// summaryHandler serves a disease detail record (body), its graph, and counts.
func summaryHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		switch {
		case p == "/api/bioentity/disease/MONDO:0007947":
			fmt.Fprint(w, body)
		case p == "/api/graph/node/MONDO:0007947":
			fmt.Fprint(w, marfanGraph)
		case strings.HasPrefix(p, "/api/bioentity/disease/MONDO:0007947/"):
			countsHandler(w, r)
		default:
			http.NotFound(w, r)
		}
	}
}

func TestGetNodeSummary(t *testing.T) {
	body := `{
	  "id": "MONDO:0007947",
	  "label": "Marfan syndrome",
	  "category": ["disease"],
	  "description": "A disorder of connective tissue.",
	  "synonyms": [{"val": "MFS", "pred": "synonym"}],
	  "taxon": {"id": "NCBITaxon:9606", "label": "Homo sapiens"},
	  "xrefs": ["OMIM:154700", {"url": "https://orpha.net/558", "label": "Orphanet:558", "blank": true}],
	  "association_counts": {"gene": 3}
	}`
	client, rec := newTestClient(t, summaryHandler(body))

	s, err := client.GetNodeSummary(context.Background(), "MONDO:0007947", "disease")
	require.NoError(t, err)

	assert.Equal(t, "Marfan syndrome", s.Label)
	assert.Equal(t, &Taxon{ID: "NCBITaxon:9606", Label: "Homo sapiens"}, s.Taxon)
	assert.Equal(t, []Xref{
		{Label: "OMIM:154700"},
		{URL: "https://orpha.net/558", Label: "Orphanet:558", Blank: true},
	}, s.Xrefs)
	assert.Len(t, s.Nodes, 4)
	assert.Len(t, s.Edges, 4)
	require.Len(t, s.Counts, 6)
	assert.Equal(t, CountEntry{FacetCount: 11, TotalCount: 11}, s.Counts[AssociationGene])

	// bioentity + graph + one per association type
	assert.Equal(t, 8, rec.count())

	req := rec.find("/api/bioentity/disease/MONDO:0007947")
	require.NotNil(t, req)
	q := req.URL.Query()
	assert.Equal(t, "true", q.Get("fetch_objects"))
	assert.Equal(t, "false", q.Get("unselect_evidence"))
	assert.Equal(t, "false", q.Get("exclude_automatic_assertions"))
	assert.Equal(t, "false", q.Get("use_compact_associations"))
	assert.Equal(t, "100", q.Get("rows"))
}

func TestGetNodeSummary_MissingXrefsGetsPlaceholder(t *testing.T) {
	client, _ := newTestClient(t, summaryHandler(`{"id": "MONDO:0007947", "label": "Marfan syndrome"}`))

	s, err := client.GetNodeSummary(context.Background(), "MONDO:0007947", "disease")
	require.NoError(t, err)
	require.NotEmpty(t, s.Xrefs)
	assert.Equal(t, []Xref{{URL: "", Label: MissingXrefsLabel, Blank: false}}, s.Xrefs)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []any{map[string]any{"url": "", "label": MissingXrefsLabel, "blank": false}}, decoded["xrefs"])
}

func TestGetNodeSummary_NullXrefsGetsPlaceholder(t *testing.T) {
	client, _ := newTestClient(t, summaryHandler(`{"id": "MONDO:0007947", "xrefs": null}`))

	s, err := client.GetNodeSummary(context.Background(), "MONDO:0007947", "disease")
	require.NoError(t, err)
	assert.Equal(t, MissingXrefsLabel, s.Xrefs[0].Label)
}

func TestGetNodeSummary_JSONShape(t *testing.T) {
	body := `{"id": "MONDO:0007947", "label": "Marfan syndrome", "xrefs": [], "inheritance": [{"id": "HP:0000006"}]}`
	client, _ := newTestClient(t, summaryHandler(body))

	s, err := client.GetNodeSummary(context.Background(), "MONDO:0007947", "disease")
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"id", "label", "xrefs", "nodes", "edges", "counts", "inheritance"} {
		assert.Contains(t, decoded, key)
	}
	assert.JSONEq(t, `[]`, string(decoded["xrefs"]))
	assert.JSONEq(t, `[{"id": "HP:0000006"}]`, string(decoded["inheritance"]))
	assert.JSONEq(t, `{"facetCount": 77, "totalCount": 77}`, extractKey(t, decoded["counts"], "disease"))

	var back NodeSummary
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s.ID, back.ID)
	assert.Equal(t, s.Nodes, back.Nodes)
	assert.Equal(t, s.Counts, back.Counts)
	assert.NotContains(t, back.Fields, "nodes")
	assert.Contains(t, back.Fields, "inheritance")
}

// extractKey returns the raw JSON stored under key in a JSON object.
func extractKey(t *testing.T, raw json.RawMessage, key string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	v, ok := m[key]
	require.True(t, ok, "key %q missing from %s", key, raw)
	return string(v)
}

func TestGetNodeSummary_UnknownCategoryHasNullCounts(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/bioentity/widget/W:1":
			fmt.Fprint(w, `{"id": "W:1"}`)
		case "/api/graph/node/W:1":
			fmt.Fprint(w, `{"nodes": [], "edges": []}`)
		default:
			http.NotFound(w, r)
		}
	})

	s, err := client.GetNodeSummary(context.Background(), "W:1", "widget")
	require.NoError(t, err)
	assert.Nil(t, s.Counts)
	assert.Equal(t, 2, rec.count())

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"counts":null`)
}

func TestGetNodeSummary_FailFast(t *testing.T) {
	tests := []struct {
		name     string
		failPath string
	}{
		{"bioentity fails", "/api/bioentity/disease/MONDO:0007947"},
		{"graph fails", "/api/graph/node/MONDO:0007947"},
		{"one count fails", "/api/bioentity/disease/MONDO:0007947/models"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok := summaryHandler(`{"id": "MONDO:0007947"}`)
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == tt.failPath {
					http.Error(w, "boom", http.StatusInternalServerError)
					return
				}
				ok(w, r)
			})

			s, err := client.GetNodeSummary(context.Background(), "MONDO:0007947", "disease")
			require.Error(t, err)
			assert.Nil(t, s)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		})
	}
}

func TestNodeSummary_Neighborhood(t *testing.T) {
	client, _ := newTestClient(t, summaryHandler(`{"id": "MONDO:0007947"}`))

	s, err := client.GetNodeSummary(context.Background(), "MONDO:0007947", "disease")
	require.NoError(t, err)

	n := s.Neighborhood()
	assert.Equal(t, []string{"MONDO:0020066"}, n.Superclasses)
	assert.Equal(t, []string{"MONDO:0015994"}, n.Subclasses)
	assert.Equal(t, []string{"OMIM:154700"}, n.EquivalentClasses)
	assert.Equal(t, "Marfan syndrome", n.NodeLabelMap["MONDO:0007947"])
}

func TestGetGraph_KeyedToNode(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"nodes": [{"id": "HP:1", "lbl": "one"}]}`)
	})

	g, err := client.GetGraph(context.Background(), "HP:1")
	require.NoError(t, err)
	assert.Equal(t, "HP:1", g.ID)
	assert.Equal(t, []graph.Node{{ID: "HP:1", Label: "one"}}, g.Nodes)
	assert.Nil(t, g.Edges)
}

func TestGetNodeSummary_PassesRecordThrough(t *testing.T) {
	body := `{
	  "id": "MONDO:0007947",
	  "synonyms": [{"val": "MFS", "pred": "synonym", "xrefs": ["OMIM:154700"]}],
	  "xrefs": ["OMIM:154700", "Orphanet:558"],
	  "taxon": {"id": "NCBITaxon:9606", "label": "Homo sapiens", "rank": "species"}
	}`
	client, _ := newTestClient(t, summaryHandler(body))

	s, err := client.GetNodeSummary(context.Background(), "MONDO:0007947", "disease")
	require.NoError(t, err)
	assert.Equal(t, []Synonym{{Value: "MFS", Predicate: "synonym"}}, s.Synonyms)
	assert.Equal(t, "OMIM:154700", s.Xrefs[0].Label)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.JSONEq(t, `[{"val": "MFS", "pred": "synonym", "xrefs": ["OMIM:154700"]}]`, string(decoded["synonyms"]))
	assert.JSONEq(t, `["OMIM:154700", "Orphanet:558"]`, string(decoded["xrefs"]))
	assert.JSONEq(t, `{"id": "NCBITaxon:9606", "label": "Homo sapiens", "rank": "species"}`, string(decoded["taxon"]))
}

func TestGetNodeSummary_MismatchedFieldShapes(t *testing.T) {
	body := `{
	  "id": "MONDO:0007947",
	  "category": "disease",
	  "taxon": "NCBITaxon:9606",
	  "synonyms": "MFS",
	  "xrefs": {"OMIM": "154700"}
	}`
	client, _ := newTestClient(t, summaryHandler(body))

	s, err := client.GetNodeSummary(context.Background(), "MONDO:0007947", "disease")
	require.NoError(t, err)
	assert.Equal(t, "MONDO:0007947", s.ID)
	assert.Equal(t, []string{"disease"}, s.Category)
	assert.Nil(t, s.Taxon)
	assert.Nil(t, s.Synonyms)
	assert.Nil(t, s.Xrefs)
	require.Len(t, s.Counts, 6)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.JSONEq(t, `"disease"`, string(decoded["category"]))
	assert.JSONEq(t, `"NCBITaxon:9606"`, string(decoded["taxon"]))
	assert.JSONEq(t, `"MFS"`, string(decoded["synonyms"]))
	assert.JSONEq(t, `{"OMIM": "154700"}`, string(decoded["xrefs"]))
}

func TestGetBioentity_NonObjectIsDecodeError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id": "MONDO:0007947"}]`)
	})

	_, err := client.GetBioentity(context.Background(), "MONDO:0007947", "disease")
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestBioentity_RoundTripIsExact(t *testing.T) {
	raw := `{"id": "HGNC:3603", "label": "FBN1", "xrefs": ["ENSEMBL:ENSG00000166147"], "clinical_modifiers": null, "number": 7}`

	var b Bioentity
	require.NoError(t, json.Unmarshal([]byte(raw), &b))
	assert.Equal(t, "FBN1", b.Label)
	assert.Equal(t, []Xref{{Label: "ENSEMBL:ENSG00000166147"}}, b.Xrefs)
	assert.True(t, b.Has("xrefs"))
	assert.False(t, b.Has("clinical_modifiers"))

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(data))
}

func TestBioentity_Set(t *testing.T) {
	var b Bioentity
	require.NoError(t, json.Unmarshal([]byte(`{"id": "HP:1", "xrefs": null}`), &b))
	assert.False(t, b.Has("xrefs"))

	require.NoError(t, b.Set("xrefs", placeholderXrefs()))
	assert.Equal(t, placeholderXrefs(), b.Xrefs)
	assert.Equal(t, "HP:1", b.ID)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "HP:1", "xrefs": [{"url": "", "label": "BioLink:FIXME/xrefs", "blank": false}]}`, string(data))
}
