package main

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matsen/biolink/internal/biolink"
	"github.com/matsen/biolink/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown server", fmt.Errorf("%w: nowhere", config.ErrUnknownServer), ExitConfigError},
		{"not found sentinel", biolink.ErrNotFound, ExitNotFound},
		{"not found status", &biolink.APIError{StatusCode: http.StatusNotFound}, ExitNotFound},
		{"server error", fmt.Errorf("counting gene: %w", &biolink.APIError{StatusCode: 500}), ExitAPIError},
		{"network", fmt.Errorf("%w: dial tcp", biolink.ErrNetworkError), ExitAPIError},
		{"decode", fmt.Errorf("%w: html", biolink.ErrInvalidResponse), ExitDecodeError},
		{"other", errors.New("boom"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"rows=50", "start=0", "facet_fields=subject_taxon", "facet_fields=object_closure"})
	require.NoError(t, err)
	assert.Equal(t, "50", params["rows"])
	assert.Equal(t, "0", params["start"])
	assert.Equal(t, []string{"subject_taxon", "object_closure"}, params["facet_fields"])

	v := params.Values()
	assert.Equal(t, []string{"subject_taxon", "object_closure"}, v["facet_fields"])

	params, err = parseParams([]string{"q=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "a=b", params["q"])

	_, err = parseParams([]string{"rows"})
	assert.Error(t, err)
	_, err = parseParams([]string{"=5"})
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"HP:1", "HP:2"}, splitList("HP:1, HP:2,"))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four five", 9, "  ")
	assert.Equal(t, "one two\n  three\n  four five", got)
	assert.Equal(t, "short", wrapText("short", 20, "  "))
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"summary", "counts", "categories", "neighborhood", "search", "autocomplete",
		"associations", "label", "xrefs", "compare", "assets", "server"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestCountOrder(t *testing.T) {
	counts := biolink.CountsMap{
		biolink.AssociationPublication: {FacetCount: 1, TotalCount: 1},
		biolink.AssociationGene:        {FacetCount: 2, TotalCount: 2},
		biolink.AssociationModel:       {FacetCount: 3, TotalCount: 3},
		biolink.AssociationPhenotype:   {FacetCount: 4, TotalCount: 4},
	}

	assert.Equal(t, []biolink.AssociationType{
		biolink.AssociationGene,
		biolink.AssociationPhenotype,
		biolink.AssociationModel,
		biolink.AssociationPublication,
	}, countOrder("Disease", counts))

	assert.Empty(t, countOrder("widget", counts))
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, biolink.DefaultUserAgent+"/"+Version, userAgent())
}
