// Package config handles server profiles and global configuration.
package config

import (
	"fmt"
	"sort"
	"strings"
)

// Server describes one deployment of the Monarch service stack.
// URLs are base addresses and always end with a slash once normalized.
type Server struct {
	// Name is the profile key the server was resolved from.
	Name string `yaml:"-" json:"name"`

	Type            string `yaml:"type" json:"type"`
	AppBase         string `yaml:"app_base" json:"app_base"`
	SciGraphURL     string `yaml:"scigraph_url" json:"scigraph_url"`
	SciGraphDataURL string `yaml:"scigraph_data_url" json:"scigraph_data_url"`
	GolrURL         string `yaml:"golr_url" json:"golr_url"`
	SearchURL       string `yaml:"search_url" json:"search_url"`
	OwlSimURL       string `yaml:"owlsim_services_url" json:"owlsim_services_url"`
	AnalyticsID     string `yaml:"analytics_id,omitempty" json:"analytics_id,omitempty"`
	BiolinkURL      string `yaml:"biolink_url" json:"biolink_url"`

	// Services that are not part of a deployment profile in practice but
	// are still configurable so tests can point them at a mock server.
	XrefsURL   string `yaml:"xrefs_url,omitempty" json:"xrefs_url,omitempty"`
	AnalyzeURL string `yaml:"analyze_url,omitempty" json:"analyze_url,omitempty"`
	AssetsURL  string `yaml:"assets_url,omitempty" json:"assets_url,omitempty"`
}

const (
	// DefaultServerName is the profile used when nothing else is selected.
	DefaultServerName = "cgrb"

	// DefaultXrefsURL is the SciGraph ontology instance used for xref lookups.
	DefaultXrefsURL = "https://scigraph-ontology.monarchinitiative.org/scigraph/"

	// DefaultAnalyzeURL is the phenotype comparison service.
	DefaultAnalyzeURL = "https://beta.monarchinitiative.org/analyze/"

	// DefaultAssetsURL is the Solr core backing the asset search.
	DefaultAssetsURL = "https://deepakunni3.com/solr/genophenosearch-core/select/"
)

// builtinServers are the known deployments.
var builtinServers = map[string]Server{
	"development": {
		Type:            "development",
		AppBase:         "https://beta.monarchinitiative.org",
		SciGraphURL:     "https://scigraph-ontology-dev.monarchinitiative.org/scigraph/",
		SciGraphDataURL: "https://scigraph-data-dev.monarchinitiative.org/scigraph/",
		GolrURL:         "https://solr.monarchinitiative.org/solr/golr/",
		SearchURL:       "https://solr.monarchinitiative.org/solr/search/",
		OwlSimURL:       "https://beta.monarchinitiative.org/owlsim",
		BiolinkURL:      "https://api.monarchinitiative.org/api/",
	},
	"beta": {
		Type:            "beta",
		AppBase:         "https://beta.monarchinitiative.org",
		SciGraphURL:     "https://scigraph-ontology-dev.monarchinitiative.org/scigraph/",
		SciGraphDataURL: "https://scigraph-data-dev.monarchinitiative.org/scigraph/",
		GolrURL:         "https://solr.monarchinitiative.org/solr/golr/",
		SearchURL:       "https://solr.monarchinitiative.org/solr/search/",
		OwlSimURL:       "https://beta.monarchinitiative.org/owlsim",
		BiolinkURL:      "https://api-dev.monarchinitiative.org/api/",
	},
	"cgrb": {
		Type:            "beta",
		AppBase:         "https://monarch-app-beta.cgrb.oregonstate.edu",
		SciGraphURL:     "https://monarch-scigraph-ontology-dev.cgrb.oregonstate.edu/scigraph/",
		SciGraphDataURL: "https://monarch-scigraph-data-dev.cgrb.oregonstate.edu/scigraph/",
		GolrURL:         "https://monarch-solr6-dev.cgrb.oregonstate.edu/solr/golr/",
		SearchURL:       "https://monarch-solr6-dev.cgrb.oregonstate.edu/solr/search/",
		OwlSimURL:       "https://monarch-app-beta.cgrb.oregonstate.edu/owlsim",
		BiolinkURL:      "https://api.monarchinitiative.org/api/",
	},
}

// BuiltinServer returns a copy of a built-in profile.
func BuiltinServer(name string) (Server, bool) {
	s, ok := builtinServers[name]
	if !ok {
		return Server{}, false
	}
	s.Name = name
	return s.Normalized(), true
}

// BuiltinServerNames returns the built-in profile names, sorted.
func BuiltinServerNames() []string {
	names := make([]string, 0, len(builtinServers))
	for name := range builtinServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Normalized fills unset service URLs with their defaults and makes sure
// every base URL ends with a slash so endpoint paths can be appended.
func (s Server) Normalized() Server {
	if s.XrefsURL == "" {
		s.XrefsURL = DefaultXrefsURL
	}
	if s.AnalyzeURL == "" {
		s.AnalyzeURL = DefaultAnalyzeURL
	}
	if s.AssetsURL == "" {
		s.AssetsURL = DefaultAssetsURL
	}

	s.SciGraphURL = withSlash(s.SciGraphURL)
	s.SciGraphDataURL = withSlash(s.SciGraphDataURL)
	s.GolrURL = withSlash(s.GolrURL)
	s.SearchURL = withSlash(s.SearchURL)
	s.BiolinkURL = withSlash(s.BiolinkURL)
	s.XrefsURL = withSlash(s.XrefsURL)
	s.AnalyzeURL = withSlash(s.AnalyzeURL)
	s.AssetsURL = withSlash(s.AssetsURL)
	return s
}

// Validate checks that the fields required by the client are present.
func (s Server) Validate() error {
	if s.BiolinkURL == "" {
		return fmt.Errorf("biolink_url is required")
	}
	if !strings.HasPrefix(s.BiolinkURL, "http://") && !strings.HasPrefix(s.BiolinkURL, "https://") {
		return fmt.Errorf("invalid biolink_url: %s (must be http or https)", s.BiolinkURL)
	}
	return nil
}

func withSlash(u string) string {
	if u == "" || strings.HasSuffix(u, "/") {
		return u
	}
	return u + "/"
}
