package models

// Fields is an insertion-ordered set of gateway form fields.
//
// The gateway is sensitive to which fields are posted, and validation reports
// the first failing field in the order the request was assembled, so a plain
// map is not enough. The zero value is ready to use.
type Fields struct {
	keys   []string
	values map[string]string
}

// NewFields creates a Fields from alternating key/value pairs.
func NewFields(kv ...string) *Fields {
	f := &Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		f.Set(kv[i], kv[i+1])
	}
	return f
}

// FieldsFromMap copies m into a new Fields. Iteration order of m is not
// preserved, so it is only suitable for lookups (e.g. callback data).
func FieldsFromMap(m map[string]string) *Fields {
	f := &Fields{}
	for k, v := range m {
		f.Set(k, v)
	}
	return f
}

// Set stores value under key. An existing key keeps its position.
func (f *Fields) Set(key, value string) {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// Get returns the value for key, or "" when absent.
func (f *Fields) Get(key string) string {
	if f == nil {
		return ""
	}
	return f.values[key]
}

// Lookup returns the value for key and whether it was present.
func (f *Fields) Lookup(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	v, ok := f.values[key]
	return v, ok
}

// Has reports whether key is present.
func (f *Fields) Has(key string) bool {
	_, ok := f.Lookup(key)
	return ok
}

// Keys returns the field names in insertion order.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Len returns the number of fields.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Each calls fn for every field in insertion order.
func (f *Fields) Each(fn func(key, value string)) {
	if f == nil {
		return
	}
	for _, k := range f.keys {
		fn(k, f.values[k])
	}
}

// Map returns an unordered copy of the fields.
func (f *Fields) Map() map[string]string {
	out := make(map[string]string, f.Len())
	f.Each(func(k, v string) { out[k] = v })
	return out
}

// Clone returns a deep copy.
func (f *Fields) Clone() *Fields {
	c := &Fields{}
	f.Each(c.Set)
	return c
}
