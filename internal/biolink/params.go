package biolink

import (
	"net/url"
	"sort"

	"github.com/spf13/cast"
)

// Params are query parameters for a Monarch request.
// Values may be strings, numbers, booleans or slices; slices become
// repeated keys.
type Params map[string]any

// Values encodes p as url.Values.
func (p Params) Values() url.Values {
	v := make(url.Values, len(p))
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch val := p[k].(type) {
		case nil:
			continue
		case []string, []any, []int:
			for _, s := range cast.ToStringSlice(val) {
				v.Add(k, s)
			}
		default:
			v.Set(k, cast.ToString(val))
		}
	}
	return v
}

// associationQuery is the parameter set shared by bioentity listing and
// detail queries.
func associationQuery(fetchObjects, unselectEvidence, useCompact bool, rows int) Params {
	return Params{
		"fetch_objects":                fetchObjects,
		"unselect_evidence":            unselectEvidence,
		"exclude_automatic_assertions": false,
		"use_compact_associations":     useCompact,
		"rows":                         rows,
	}
}
