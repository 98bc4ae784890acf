// Package model holds the in-memory artifact descriptions produced by the
// emitter and consumed by the renderer. Artifacts carry enough binding
// metadata (original names, namespaces, literal text) to serialize instances
// against the original schema wire shape.
package model

import "modelgen/internal/resolve"

// Artifact is one generated output unit: an enum or a structural type.
type Artifact interface {
	// ArtifactName is the sanitized Go type name, unique per run.
	ArtifactName() string
}

// EnumArtifact describes one generated enumeration type.
type EnumArtifact struct {
	// Name is the sanitized Go type name.
	Name string
	// Original is the schema-level type local name.
	Original string
	// Literals are the enum entries, in declaration order.
	Literals []EnumLiteral
}

// ArtifactName implements Artifact.
func (e *EnumArtifact) ArtifactName() string { return e.Name }

// EnumLiteral is one entry of an enum artifact.
type EnumLiteral struct {
	// Ident is the sanitized constant identifier, namespaced by the owning
	// type's sanitized name to avoid cross-enum collisions.
	Ident string
	// Value is the original literal text, preserved as binding metadata.
	Value string
}

// StructArtifact describes one generated structural type.
type StructArtifact struct {
	// Name is the sanitized Go type name.
	Name string
	// Original is the schema-level type local name (equal to Name's source;
	// synthesized anonymous types carry their synthesized name here too).
	Original string
	// Namespace is the owning target namespace, applied to element bindings.
	Namespace string
	// NoContent marks a type with zero particles and zero attributes. Such
	// types are still emitted, with an explicit marker instead of being
	// skipped.
	NoContent bool
	// Fields are the generated fields: element particles first in particle
	// order, then attribute particles, each optionally followed by its
	// companion presence field.
	Fields []Field
}

// ArtifactName implements Artifact.
func (s *StructArtifact) ArtifactName() string { return s.Name }

// Field is one generated field of a struct artifact.
type Field struct {
	// Ident is the sanitized Go field name.
	Ident string
	// Ref is the resolved type representation.
	Ref resolve.Ref
	// TypeName is the sanitized Go type name of the referenced enum or
	// structural artifact; empty for plain scalars.
	TypeName string
	// XMLName is the original element or attribute local name.
	XMLName string
	// Namespace is the owning target namespace; always empty for attributes.
	Namespace string
	// Attr marks an attribute particle.
	Attr bool
	// Optional marks minOccurs="0" elements and non-required attributes.
	Optional bool
	// Presence is the identifier of the companion explicit-set boolean
	// field, or "" when the field gets none. Only optional value-kind
	// scalars (integer, decimal, boolean, timestamp) carry one.
	Presence string
}
