// Package resolve classifies declared scalar types into the closed ScalarKind
// set and resolves ad-hoc type references found on particles.
package resolve

import (
	"fmt"

	"modelgen/internal/diagnostic"
	"modelgen/internal/match"
	"modelgen/internal/registry"
	"modelgen/internal/xsd"
)

// Ref is the resolved representation of one particle's type reference:
// either a scalar kind, an enum reference, or a structural type reference.
type Ref struct {
	// Kind is the scalar representation. Meaningless when Struct is set.
	Kind ScalarKind
	// Enum is the enum type's local name when Kind is KindEnum.
	Enum string
	// Struct is the referenced structural type's local name. By elimination:
	// a name that is neither a built-in primitive nor a known scalar type is
	// assumed to be structural, even if nothing was registered under it.
	Struct string
	// Repeated marks a sequence-of wrapper around the representation. Only
	// the literal maxOccurs="unbounded" produces it; numeric bounds greater
	// than one do not.
	Repeated bool
}

// IsStruct reports whether the reference points at a structural type.
func (r Ref) IsStruct() bool {
	return r.Struct != ""
}

// NeedsPresenceFlag reports whether an optional particle of this type gets a
// companion explicit-set boolean: value-kind scalars only, never text, enums
// or structural references, and never repeated particles.
func (r Ref) NeedsPresenceFlag() bool {
	return !r.IsStruct() && !r.Repeated && r.Kind.IsValue()
}

// Resolver builds the scalar classification table and answers per-particle
// reference resolution against it.
type Resolver struct {
	reg   *registry.Registry
	diags *diagnostic.Diagnostics

	// table maps scalar type local name to its resolved kind, decided once
	// from the first registered definition per name.
	table map[string]ScalarKind

	// overrides pins specific type names to a kind ahead of rule evaluation,
	// sourced from the generator config file.
	overrides map[string]ScalarKind
}

// New creates a Resolver over reg. Overrides may be nil.
func New(reg *registry.Registry, diags *diagnostic.Diagnostics, overrides map[string]ScalarKind) *Resolver {
	return &Resolver{
		reg:       reg,
		diags:     diags,
		table:     make(map[string]ScalarKind),
		overrides: overrides,
	}
}

// BuildTable classifies every registered scalar type name. Only the first
// registered definition per name is consulted; later duplicates are ignored
// outright (unlike structural types, which are merged).
func (r *Resolver) BuildTable() {
	for _, name := range r.reg.ScalarNames() {
		if kind, ok := r.overrides[name]; ok {
			r.table[name] = kind
			continue
		}

		r.table[name] = Classify(r.reg.FirstScalarType(name))
	}
}

// Kind returns the resolved kind for a scalar type name, if tabled.
func (r *Resolver) Kind(name string) (ScalarKind, bool) {
	kind, ok := r.table[name]
	return kind, ok
}

// Classify maps one scalar type definition to its kind:
//
//  1. restriction with a non-empty enumeration list -> enum
//  2. else restriction base in the integer family -> integer
//  3. else decimal/floating-point family -> decimal
//  4. else boolean -> boolean
//  5. else date/time family -> timestamp
//  6. else text or unrecognized -> text
//  7. list-of / union-of declarations -> text (structure collapsed)
func Classify(st *xsd.SimpleType) ScalarKind {
	if st == nil {
		return KindText
	}

	if st.Restriction == nil {
		// list and union markers, or a degenerate empty declaration
		return KindText
	}

	if len(st.Restriction.Enumerations) > 0 {
		return KindEnum
	}

	switch xsd.BuiltinFamily(st.Restriction.Base) {
	case xsd.FamilyInteger:
		return KindInteger
	case xsd.FamilyDecimal:
		return KindDecimal
	case xsd.FamilyBoolean:
		return KindBoolean
	case xsd.FamilyTimestamp:
		return KindTimestamp
	default:
		return KindText
	}
}

// ResolveRef resolves a raw type reference from a particle. Built-in
// primitives map to fixed kinds; a tabled scalar name uses its kind; a name
// registered as a scalar but not tabled falls back to text; anything else is
// assumed structural.
func (r *Resolver) ResolveRef(ref string) Ref {
	if family := xsd.BuiltinFamily(ref); family != xsd.FamilyNone {
		return Ref{Kind: kindForFamily(family)}
	}

	local := xsd.LocalName(ref)

	if kind, ok := r.table[local]; ok {
		if kind == KindEnum {
			return Ref{Kind: KindEnum, Enum: local}
		}

		return Ref{Kind: kind}
	}

	if r.reg.HasScalarType(local) {
		return Ref{Kind: KindText}
	}

	if len(r.reg.StructuralTypes[local]) == 0 {
		r.reportUnresolved(local)
	}

	return Ref{Struct: local}
}

// ResolveElement resolves an element particle, applying the repetition rule
// and classifying inline anonymous simple types directly. Inline anonymous
// complex types are the emitter's business and are not handled here.
func (r *Resolver) ResolveElement(el *xsd.Element) Ref {
	var ref Ref

	switch {
	case el.Type != "":
		ref = r.ResolveRef(el.Type)
	case el.SimpleType != nil:
		ref = Ref{Kind: Classify(el.SimpleType)}
		if ref.Kind == KindEnum {
			// Anonymous inline enums have no name to reference; collapse to
			// text rather than inventing an enum type here.
			ref = Ref{Kind: KindText}
		}
	default:
		ref = Ref{Kind: KindText}
	}

	ref.Repeated = el.Unbounded()

	return ref
}

// ResolveAttribute resolves an attribute particle. Attributes are never
// repeated.
func (r *Resolver) ResolveAttribute(at *xsd.Attribute) Ref {
	if at.Type == "" {
		return Ref{Kind: KindText}
	}

	ref := r.ResolveRef(at.Type)
	if ref.IsStruct() {
		// Attributes cannot carry structure; a dangling reference degrades
		// to text instead of producing an unserializable field.
		return Ref{Kind: KindText}
	}

	return ref
}

// reportUnresolved records a dangling type reference, with a did-you-mean
// suggestion when a registered name is close enough.
func (r *Resolver) reportUnresolved(name string) {
	msg := "type reference does not resolve, assuming structural type"

	candidates := append([]string{}, r.reg.StructuralNames()...)
	candidates = append(candidates, r.reg.ScalarNames()...)
	if closest := match.Closest(name, candidates); closest != "" {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, closest)
	}

	r.diags.AddWarning("unresolved-type", msg, "", name)
}

func kindForFamily(family xsd.Family) ScalarKind {
	switch family {
	case xsd.FamilyInteger:
		return KindInteger
	case xsd.FamilyDecimal:
		return KindDecimal
	case xsd.FamilyBoolean:
		return KindBoolean
	case xsd.FamilyTimestamp:
		return KindTimestamp
	default:
		return KindText
	}
}
