package biolink

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CountEntry holds the number of associations of one type.
// FacetCount and TotalCount both come from the same numFound today.
type CountEntry struct {
	FacetCount int `json:"facetCount"`
	TotalCount int `json:"totalCount"`
}

// CountsMap maps each association type valid for a category to its count.
// A nil map means the associations of the category are unknown.
type CountsMap map[AssociationType]CountEntry

// AssociationsPage is the slice of an association listing needed here.
type AssociationsPage struct {
	NumFound     int               `json:"numFound"`
	Associations []json.RawMessage `json:"associations,omitempty"`
}

// GetCounts queries one association listing for its total match count.
// At most one row is requested since only numFound is used.
func (c *Client) GetCounts(ctx context.Context, nodeID, nodeType string, assoc AssociationType) (*AssociationsPage, error) {
	endpoint := c.biolinkURL("bioentity", nodeType, nodeID, assoc.endpointSegment())

	var page AssociationsPage
	if err := c.getJSON(ctx, endpoint, associationQuery(false, true, true, 1), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetCountsForNode fetches the count of every association type valid for
// nodeType concurrently. It returns nil, nil when the category has no known
// associations. Any failed count fails the whole call.
func (c *Client) GetCountsForNode(ctx context.Context, nodeID, nodeType string) (CountsMap, error) {
	nodeType = strings.ToLower(nodeType)

	category, ok := ParseCategory(nodeType)
	var types []AssociationType
	if ok {
		types, ok = AssociationTypes(category)
	}
	if !ok {
		c.logger.Warn("no associations known", "node_id", nodeID, "node_type", nodeType)
		return nil, nil
	}

	// Each goroutine owns one slot, so completion order does not matter.
	pages := make([]*AssociationsPage, len(types))

	g, gctx := errgroup.WithContext(ctx)
	for i, assoc := range types {
		i, assoc := i, assoc
		g.Go(func() error {
			page, err := c.GetCounts(gctx, nodeID, nodeType, assoc)
			if err != nil {
				return fmt.Errorf("counting %s for %s: %w", assoc, nodeID, err)
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := make(CountsMap, len(types))
	for i, assoc := range types {
		n := pages[i].NumFound
		counts[assoc] = CountEntry{FacetCount: n, TotalCount: n}
	}
	return counts, nil
}
