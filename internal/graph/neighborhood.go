package graph

// Neighborhood is the class structure around a focal node.
// All fields are non-nil, even when empty.
type Neighborhood struct {
	NodeLabelMap      map[string]string `json:"nodeLabelMap"`
	EquivalentClasses []string          `json:"equivalentClasses"`
	Superclasses      []string          `json:"superclasses"`
	Subclasses        []string          `json:"subclasses"`
}

// Classify partitions the edges of r relative to the focal node r.ID.
//
// A subClassOf edge whose subject is the focal node contributes its object
// as a superclass; one whose object is the focal node contributes its
// subject as a subclass. An equivalentClass edge contributes its subject,
// unless the subject is the focal node itself. Edges not touching the focal
// node and all other predicates are ignored. Output order follows input order.
func Classify(r Response) Neighborhood {
	n := Neighborhood{
		NodeLabelMap:      make(map[string]string, len(r.Nodes)),
		EquivalentClasses: []string{},
		Superclasses:      []string{},
		Subclasses:        []string{},
	}

	for _, node := range r.Nodes {
		n.NodeLabelMap[node.ID] = node.Label
	}

	focal := r.ID
	for _, e := range r.Edges {
		switch e.Predicate {
		case PredicateSubClassOf:
			if e.Subject == focal {
				n.Superclasses = append(n.Superclasses, e.Object)
			} else if e.Object == focal {
				n.Subclasses = append(n.Subclasses, e.Subject)
			}
		case PredicateEquivalentClass:
			// The focal node's own equivalence statements are implied by symmetry.
			if e.Subject != focal {
				n.EquivalentClasses = append(n.EquivalentClasses, e.Subject)
			}
		}
	}

	return n
}

// Label returns the label of id, or id itself when the graph has none.
func (n Neighborhood) Label(id string) string {
	if lbl, ok := n.NodeLabelMap[id]; ok && lbl != "" {
		return lbl
	}
	return id
}
