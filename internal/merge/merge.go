// Package merge reduces the ordered list of structural type definitions
// registered under one local name into a single authoritative definition.
//
// Schema content for one conceptual type is sometimes split across files
// (incremental or extension schemas reusing a type name); the merge engine
// folds those pieces back together with a deterministic pairwise rule.
package merge

import (
	"modelgen/internal/diagnostic"
	"modelgen/internal/registry"
	"modelgen/internal/xsd"
)

// MergedType is the fold result for one structural type name.
type MergedType struct {
	Name string
	// Elements are the surviving element particles, base order first,
	// appended particles after.
	Elements []xsd.Element
	// Attributes are the surviving attribute particles, merged independently
	// of the elements under the same first-seen-per-name policy.
	Attributes []xsd.Attribute
	// TargetNamespace is taken from the base definition of the final fold.
	TargetNamespace string
}

// Merger computes and caches merged structural types. Merge results are pure
// functions of the registered definition list, so each name is folded at
// most once.
type Merger struct {
	reg   *registry.Registry
	diags *diagnostic.Diagnostics
	cache map[string]*MergedType
}

// New creates a Merger reading from reg.
func New(reg *registry.Registry, diags *diagnostic.Diagnostics) *Merger {
	return &Merger{
		reg:   reg,
		diags: diags,
		cache: make(map[string]*MergedType),
	}
}

// Merge returns the authoritative definition for name, computing it on first
// use. It returns nil when no structural type was registered under name.
func (m *Merger) Merge(name string) *MergedType {
	if cached, ok := m.cache[name]; ok {
		return cached
	}

	defs := m.reg.StructuralTypes[name]
	if len(defs) == 0 {
		return nil
	}

	result := fromDef(defs[0])
	for _, def := range defs[1:] {
		result = m.foldPair(result, fromDef(def))
	}

	result.Name = name
	m.cache[name] = result

	return result
}

// MergeDef folds an unregistered definition (an inline anonymous type) into
// merged form under the given name. Anonymous types have exactly one
// definition, so no pairwise fold happens, but results are cached under the
// synthesized name the same way.
func (m *Merger) MergeDef(name string, def *xsd.ComplexType) *MergedType {
	if cached, ok := m.cache[name]; ok {
		return cached
	}

	result := fromDef(def)
	result.Name = name
	m.cache[name] = result

	return result
}

func fromDef(def *xsd.ComplexType) *MergedType {
	mt := &MergedType{
		Name:            def.Name,
		TargetNamespace: def.TargetNamespace,
	}

	mt.Elements = append(mt.Elements, def.Sequence...)
	mt.Attributes = append(mt.Attributes, def.Attributes...)

	return mt
}

// foldPair merges two definitions. The denser one (strictly more element
// particles) becomes the base; on a tie the left operand stays base. The
// other operand's particles are appended, in their original order, only when
// the base has no particle of that name (exact, case-sensitive match). A
// later particle that clashes by name but differs in type is dropped.
func (m *Merger) foldPair(left, right *MergedType) *MergedType {
	base, other := left, right
	if len(right.Elements) > len(left.Elements) {
		base, other = right, left
	}

	result := &MergedType{
		Name:            base.Name,
		TargetNamespace: base.TargetNamespace,
	}

	result.Elements = append(result.Elements, base.Elements...)

	seen := make(map[string]xsd.Element, len(base.Elements))
	for _, el := range base.Elements {
		seen[el.Name] = el
	}

	for _, el := range other.Elements {
		existing, dup := seen[el.Name]
		if !dup {
			result.Elements = append(result.Elements, el)
			seen[el.Name] = el
			continue
		}

		if existing.Type != el.Type {
			m.diags.AddInfo("dropped-particle", "conflicting duplicate element particle dropped", "", base.Name+"."+el.Name)
		}
	}

	result.Attributes = append(result.Attributes, base.Attributes...)

	seenAttr := make(map[string]bool, len(base.Attributes))
	for _, at := range base.Attributes {
		seenAttr[at.Name] = true
	}

	for _, at := range other.Attributes {
		if !seenAttr[at.Name] {
			result.Attributes = append(result.Attributes, at)
			seenAttr[at.Name] = true
		}
	}

	return result
}
