package biolink

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/matsen/biolink/internal/graph"
)

// DefaultDetailRows is the row limit of the bioentity detail query.
const DefaultDetailRows = 100

// NodeSummary is a bioentity record merged with its local graph and its
// association counts. The record's own keys pass through unchanged, except
// that an absent or null xrefs gets a placeholder.
type NodeSummary struct {
	Bioentity

	Nodes  []graph.Node
	Edges  []graph.Edge
	Counts CountsMap
}

// summaryFields are the keys NodeSummary adds on top of the bioentity.
var summaryFields = []string{"nodes", "edges", "counts"}

// Graph returns the graph portion keyed to the summarized entity.
func (s *NodeSummary) Graph() graph.Response {
	return graph.Response{ID: s.ID, Nodes: s.Nodes, Edges: s.Edges}
}

// Neighborhood classifies the graph portion around the summarized entity.
func (s *NodeSummary) Neighborhood() graph.Neighborhood {
	return graph.Classify(s.Graph())
}

// MarshalJSON implements json.Marshaler. The summary encodes as one flat
// object: the bioentity fields plus nodes, edges and counts.
func (s NodeSummary) MarshalJSON() ([]byte, error) {
	fields := s.Bioentity.fields()

	add := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}
		fields[key] = raw
		return nil
	}
	if err := add("nodes", s.Nodes); err != nil {
		return nil, err
	}
	if err := add("edges", s.Edges); err != nil {
		return nil, err
	}
	if err := add("counts", s.Counts); err != nil {
		return nil, err
	}

	return json.Marshal(fields)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *NodeSummary) UnmarshalJSON(data []byte) error {
	var b Bioentity
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	for _, k := range summaryFields {
		delete(b.Fields, k)
	}

	var rest struct {
		Nodes  []graph.Node `json:"nodes"`
		Edges  []graph.Edge `json:"edges"`
		Counts CountsMap    `json:"counts"`
	}
	if err := json.Unmarshal(data, &rest); err != nil {
		return err
	}

	*s = NodeSummary{Bioentity: b, Nodes: rest.Nodes, Edges: rest.Edges, Counts: rest.Counts}
	return nil
}

// GetBioentity fetches the detail record of one entity with full object
// expansion and evidence.
func (c *Client) GetBioentity(ctx context.Context, nodeID, nodeType string) (*Bioentity, error) {
	endpoint := c.biolinkURL("bioentity", nodeType, nodeID)

	var b Bioentity
	if err := c.getJSON(ctx, endpoint, associationQuery(true, false, false, DefaultDetailRows), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetGraph fetches the local graph (nodes and edges) around one entity.
// The returned response is keyed to nodeID.
func (c *Client) GetGraph(ctx context.Context, nodeID string) (*graph.Response, error) {
	endpoint := c.biolinkURL("graph", "node", nodeID)

	var g graph.Response
	if err := c.getJSON(ctx, endpoint, nil, &g); err != nil {
		return nil, err
	}
	if g.ID == "" {
		g.ID = nodeID
	}
	return &g, nil
}

// GetNodeSummary fetches the bioentity, its graph and its association
// counts concurrently and merges them. Any failed fetch fails the summary.
func (c *Client) GetNodeSummary(ctx context.Context, nodeID, nodeType string) (*NodeSummary, error) {
	var (
		entity *Bioentity
		local  *graph.Response
		counts CountsMap
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		entity, err = c.GetBioentity(gctx, nodeID, nodeType)
		if err != nil {
			return fmt.Errorf("fetching bioentity %s: %w", nodeID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		local, err = c.GetGraph(gctx, nodeID)
		if err != nil {
			return fmt.Errorf("fetching graph %s: %w", nodeID, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = c.GetCountsForNode(gctx, nodeID, nodeType)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !entity.Has("xrefs") {
		if err := entity.Set("xrefs", placeholderXrefs()); err != nil {
			return nil, err
		}
	}

	summary := &NodeSummary{
		Bioentity: *entity,
		Nodes:     local.Nodes,
		Edges:     local.Edges,
		Counts:    counts,
	}
	if summary.Nodes == nil {
		summary.Nodes = []graph.Node{}
	}
	if summary.Edges == nil {
		summary.Edges = []graph.Edge{}
	}
	return summary, nil
}
