// Package graph defines the node/edge model returned by the BioLink graph
// endpoint and derives class relationships around a focal node.
package graph

// Predicates with meaning to the classifier. Anything else passes through.
const (
	PredicateSubClassOf      = "subClassOf"
	PredicateEquivalentClass = "equivalentClass"
)

// Node is a graph node identified by CURIE.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"lbl"`
}

// Edge is a directed (subject, predicate, object) statement.
type Edge struct {
	Subject   string `json:"sub"`
	Predicate string `json:"pred"`
	Object    string `json:"obj"`
}

// Response is the local graph of one focal entity.
type Response struct {
	ID    string `json:"id,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}
