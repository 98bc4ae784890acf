// Package registry holds the append-only declaration registries the loader
// populates and the merge/resolve phases consume.
//
// All three registries are keyed by LOCAL name only, not (namespace, name).
// Same-named types declared in different target namespaces therefore land in
// the same bucket and get merged together downstream; for large
// multi-namespace schema sets this is a known collision source.
package registry

import "modelgen/internal/xsd"

// Registry collects every declaration seen across every loaded document, in
// discovery order. No deduplication or validation happens here; the merge
// engine and the resolver decide how multiple definitions per name combine.
//
// A Registry is built once per run by the driver and threaded by pointer
// through the loader, merge, resolve and emit phases.
type Registry struct {
	// StructuralTypes maps local name to every complex type definition seen
	// under that name, in discovery order.
	StructuralTypes map[string][]*xsd.ComplexType

	// ScalarTypes maps local name to every simple type definition seen under
	// that name, in discovery order.
	ScalarTypes map[string][]*xsd.SimpleType

	// GlobalElements maps local name to every top-level element declaration
	// seen under that name, in discovery order.
	GlobalElements map[string][]*xsd.Element

	// Namespaces is the prefix<->URI table, first registration wins.
	Namespaces *NamespaceTable

	// structuralOrder remembers the order in which structural type names were
	// first seen, so emission can walk types deterministically.
	structuralOrder []string

	// scalarOrder is the first-seen order of scalar type names.
	scalarOrder []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		StructuralTypes: make(map[string][]*xsd.ComplexType),
		ScalarTypes:     make(map[string][]*xsd.SimpleType),
		GlobalElements:  make(map[string][]*xsd.Element),
		Namespaces:      NewNamespaceTable(),
	}
}

// AddStructuralType appends a complex type definition under its local name.
func (r *Registry) AddStructuralType(ct *xsd.ComplexType) {
	if ct.Name == "" {
		return
	}

	if _, seen := r.StructuralTypes[ct.Name]; !seen {
		r.structuralOrder = append(r.structuralOrder, ct.Name)
	}

	r.StructuralTypes[ct.Name] = append(r.StructuralTypes[ct.Name], ct)
}

// AddScalarType appends a simple type definition under its local name.
func (r *Registry) AddScalarType(st *xsd.SimpleType) {
	if st.Name == "" {
		return
	}

	if _, seen := r.ScalarTypes[st.Name]; !seen {
		r.scalarOrder = append(r.scalarOrder, st.Name)
	}

	r.ScalarTypes[st.Name] = append(r.ScalarTypes[st.Name], st)
}

// AddGlobalElement appends a top-level element declaration under its name.
func (r *Registry) AddGlobalElement(el *xsd.Element) {
	if el.Name == "" {
		return
	}

	r.GlobalElements[el.Name] = append(r.GlobalElements[el.Name], el)
}

// StructuralNames returns structural type names in first-seen order.
func (r *Registry) StructuralNames() []string {
	return r.structuralOrder
}

// ScalarNames returns scalar type names in first-seen order.
func (r *Registry) ScalarNames() []string {
	return r.scalarOrder
}

// HasScalarType reports whether any simple type was registered under name.
func (r *Registry) HasScalarType(name string) bool {
	return len(r.ScalarTypes[name]) > 0
}

// FirstScalarType returns the first registered simple type for name, or nil.
// Later duplicate scalar definitions for the same name are never consulted.
func (r *Registry) FirstScalarType(name string) *xsd.SimpleType {
	defs := r.ScalarTypes[name]
	if len(defs) == 0 {
		return nil
	}

	return defs[0]
}
