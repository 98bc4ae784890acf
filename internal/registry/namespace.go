package registry

// NamespaceTable is a bidirectional prefix<->URI map. The first registration
// wins on either side; later bindings that would rebind an already-known
// prefix or URI are ignored. Registration order is therefore observable, and
// the loader keeps it deterministic (lexicographic file discovery, depth-first
// reference resolution).
type NamespaceTable struct {
	byPrefix map[string]string
	byURI    map[string]string
}

// NewNamespaceTable creates an empty table.
func NewNamespaceTable() *NamespaceTable {
	return &NamespaceTable{
		byPrefix: make(map[string]string),
		byURI:    make(map[string]string),
	}
}

// Bind registers a prefix->URI binding. The binding is ignored when either
// the prefix or the URI is already bound.
func (t *NamespaceTable) Bind(prefix, uri string) {
	if uri == "" {
		return
	}

	if _, ok := t.byPrefix[prefix]; ok {
		return
	}

	if _, ok := t.byURI[uri]; ok {
		return
	}

	t.byPrefix[prefix] = uri
	t.byURI[uri] = prefix
}

// URI returns the URI bound to prefix, if any.
func (t *NamespaceTable) URI(prefix string) (string, bool) {
	uri, ok := t.byPrefix[prefix]
	return uri, ok
}

// Prefix returns the prefix bound to uri, if any.
func (t *NamespaceTable) Prefix(uri string) (string, bool) {
	prefix, ok := t.byURI[uri]
	return prefix, ok
}

// Len returns the number of bindings.
func (t *NamespaceTable) Len() int {
	return len(t.byPrefix)
}
