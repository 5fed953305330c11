package biolink

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Bioentity is an entity detail record from /bioentity/{type}/{id}.
//
// Fields holds every key of the record exactly as the service sent it and
// is what gets encoded. The typed fields are read-only views decoded from
// it; a key whose shape does not match its view leaves the view empty and
// is still passed through untouched. Use Set to change a key.
type Bioentity struct {
	ID          string
	Label       string
	IRI         string
	Category    []string
	Description string
	Synonyms    []Synonym
	Taxon       *Taxon
	Xrefs       []Xref
	Deprecated  bool

	Fields map[string]json.RawMessage
}

// Synonym is an alternative name for an entity.
type Synonym struct {
	Value     string `json:"val"`
	Predicate string `json:"pred,omitempty"`
}

// Taxon is the organism an entity belongs to.
type Taxon struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// Xref is a cross-reference to another database.
// The service sends either bare CURIE strings or objects; both decode.
type Xref struct {
	URL   string `json:"url"`
	Label string `json:"label"`
	Blank bool   `json:"blank"`
}

// MissingXrefsLabel marks the placeholder xref used when a record has none.
const MissingXrefsLabel = "BioLink:FIXME/xrefs"

// placeholderXrefs stands in for a missing xrefs field.
func placeholderXrefs() []Xref {
	return []Xref{{URL: "", Label: MissingXrefsLabel, Blank: false}}
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *Xref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var curie string
		if err := json.Unmarshal(data, &curie); err != nil {
			return err
		}
		*x = Xref{Label: curie}
		return nil
	}

	type plain Xref
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*x = Xref(p)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Only a body that is not a
// JSON object fails; mismatched field shapes do not.
func (b *Bioentity) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*b = Bioentity{Fields: fields}
	b.refresh()
	return nil
}

// MarshalJSON implements json.Marshaler.
func (b Bioentity) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.fields())
}

// Has reports whether key is present with a non-null value.
func (b *Bioentity) Has(key string) bool {
	raw, ok := b.Fields[key]
	return ok && !isNull(raw)
}

// Set replaces key with the encoding of v and refreshes the typed views.
func (b *Bioentity) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if b.Fields == nil {
		b.Fields = make(map[string]json.RawMessage)
	}
	b.Fields[key] = raw
	b.refresh()
	return nil
}

// fields returns a copy of Fields, never nil.
func (b Bioentity) fields() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(b.Fields)+3)
	for k, v := range b.Fields {
		out[k] = v
	}
	return out
}

// refresh re-derives the typed views from Fields.
func (b *Bioentity) refresh() {
	b.ID, b.Label, b.IRI, b.Description = "", "", "", ""
	b.Category, b.Synonyms, b.Taxon, b.Xrefs = nil, nil, nil, nil
	b.Deprecated = false

	b.view("id", &b.ID)
	b.view("label", &b.Label)
	b.view("iri", &b.IRI)
	b.view("description", &b.Description)
	b.view("synonyms", &b.Synonyms)
	b.view("taxon", &b.Taxon)
	b.view("xrefs", &b.Xrefs)
	b.view("deprecated", &b.Deprecated)

	// category is a list, but some records send a single string.
	if !b.view("category", &b.Category) {
		var one string
		if b.view("category", &one) && one != "" {
			b.Category = []string{one}
		}
	}
}

// view decodes key into dst, reporting success. On failure dst is left
// at its zero value.
func (b *Bioentity) view(key string, dst any) bool {
	raw, ok := b.Fields[key]
	if !ok || isNull(raw) {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		resetView(dst)
		return false
	}
	return true
}

// resetView zeroes a view that a failed decode may have partly filled.
func resetView(dst any) {
	switch d := dst.(type) {
	case *string:
		*d = ""
	case *bool:
		*d = false
	case *[]string:
		*d = nil
	case *[]Synonym:
		*d = nil
	case *[]Xref:
		*d = nil
	case **Taxon:
		*d = nil
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
