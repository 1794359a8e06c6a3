package dpapi

// FieldSet collects the body fields of a create or update request.
// Only fields that were explicitly set are serialized, so the wire
// body distinguishes an omitted field from one set to null or to the
// empty string. A FieldSet is built once per request and owned
// exclusively by the request that built it.
type FieldSet struct {
	fields map[string]any
}

// NewFieldSet creates an empty field set.
func NewFieldSet() *FieldSet {
	return &FieldSet{fields: make(map[string]any)}
}

// Set records a field value. Setting nil emits an explicit JSON null.
func (f *FieldSet) Set(name string, value any) *FieldSet {
	f.fields[name] = value

	return f
}

// SetLink records a related resource identity under the nested "links"
// sub-object, creating the sub-object on first use. Repeated calls
// update the same sub-object.
func (f *FieldSet) SetLink(relation, identity string) *FieldSet {
	links, ok := f.fields["links"].(map[string]string)
	if !ok {
		links = make(map[string]string)
		f.fields["links"] = links
	}

	links[relation] = identity

	return f
}

// Len returns the number of set top-level fields.
func (f *FieldSet) Len() int {
	return len(f.fields)
}

// Encode returns the explicitly-set fields as a JSON-marshalable map.
// Encoding is idempotent: calling it twice without further mutation
// yields the same result.
func (f *FieldSet) Encode() map[string]any {
	return f.fields
}
