// Package xsd holds the raw document model for a single parsed schema file
// and the built-in primitive classification tables.
//
// The structs here mirror the subset of the XML Schema vocabulary the
// compiler understands: named complex types with sequence particles and
// attributes, named simple types (restrictions, lists, unions), global
// elements, and import/include directives. Group semantics (choice, all),
// substitution groups and non-enumeration facets are not modeled.
package xsd

import (
	"encoding/xml"
	"strings"
)

// Document is the parsed form of one schema file.
type Document struct {
	XMLName         xml.Name `xml:"schema"`
	TargetNamespace string   `xml:"targetNamespace,attr"`

	// RootAttrs captures every attribute on the schema root, including the
	// xmlns:prefix declarations the namespace table is built from.
	RootAttrs []xml.Attr `xml:",any,attr"`

	ComplexTypes []ComplexType `xml:"complexType"`
	SimpleTypes  []SimpleType  `xml:"simpleType"`
	Elements     []Element     `xml:"element"`
	Imports      []Import      `xml:"import"`
	Includes     []Include     `xml:"include"`

	// Path is the canonical absolute path the document was loaded from.
	// Set by the loader, not by the XML decoder.
	Path string `xml:"-"`
}

// PrefixBinding is one xmlns declaration from a schema root.
type PrefixBinding struct {
	Prefix string // "" for the default xmlns declaration
	URI    string
}

// PrefixBindings returns the prefix->URI bindings declared on the schema
// root, in attribute order. Order matters: the namespace table keeps the
// first binding it sees for a prefix or URI.
func (d *Document) PrefixBindings() []PrefixBinding {
	var bindings []PrefixBinding

	for _, attr := range d.RootAttrs {
		switch {
		case attr.Name.Space == "xmlns":
			bindings = append(bindings, PrefixBinding{Prefix: attr.Name.Local, URI: attr.Value})
		case attr.Name.Space == "" && attr.Name.Local == "xmlns":
			bindings = append(bindings, PrefixBinding{URI: attr.Value})
		}
	}

	return bindings
}

// ComplexType is a named (or inline anonymous) structural type: an ordered
// sequence of element particles plus an unordered attribute set.
type ComplexType struct {
	Name       string      `xml:"name,attr"`
	Sequence   []Element   `xml:"sequence>element"`
	Attributes []Attribute `xml:"attribute"`

	// TargetNamespace is inherited from the owning document by the loader
	// so particles can be bound to their original namespace at emission.
	TargetNamespace string `xml:"-"`
}

// Element is one element particle: either a reference to a named type or an
// inline anonymous type, with occurrence bounds kept as raw strings so the
// literal "unbounded" marker survives.
type Element struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	MinOccurs string `xml:"minOccurs,attr"`
	MaxOccurs string `xml:"maxOccurs,attr"`

	ComplexType *ComplexType `xml:"complexType"`
	SimpleType  *SimpleType  `xml:"simpleType"`
}

// Optional reports whether the particle may be absent (minOccurs="0").
func (e *Element) Optional() bool {
	return e.MinOccurs == "0"
}

// Unbounded reports whether the particle carries the literal "unbounded"
// maximum. A numeric bound greater than one does NOT count; that asymmetry
// is inherited behavior and relied upon by the resolver.
func (e *Element) Unbounded() bool {
	return e.MaxOccurs == "unbounded"
}

// Attribute is one attribute particle.
type Attribute struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	Use  string `xml:"use,attr"`
}

// Required reports whether the attribute is mandatory. Attributes default
// to optional when use is absent.
func (a *Attribute) Required() bool {
	return a.Use == "required"
}

// SimpleType is a named scalar type: a restriction of a base primitive
// (optionally enumerated), or a list/union marker.
type SimpleType struct {
	Name        string       `xml:"name,attr"`
	Restriction *Restriction `xml:"restriction"`
	List        *List        `xml:"list"`
	Union       *Union       `xml:"union"`
}

// Enumerations returns the enumeration literals of the restriction, in
// declaration order, or nil when the type is not enumerated.
func (s *SimpleType) Enumerations() []string {
	if s.Restriction == nil {
		return nil
	}

	values := make([]string, 0, len(s.Restriction.Enumerations))
	for _, e := range s.Restriction.Enumerations {
		values = append(values, e.Value)
	}

	return values
}

// Restriction narrows a base type, optionally to a fixed literal set.
type Restriction struct {
	Base         string        `xml:"base,attr"`
	Enumerations []Enumeration `xml:"enumeration"`
}

// Enumeration is one literal of an enumerated restriction.
type Enumeration struct {
	Value string `xml:"value,attr"`
}

// List marks a list-of simple type. Item structure is not modeled.
type List struct {
	ItemType string `xml:"itemType,attr"`
}

// Union marks a union-of simple type. Member structure is not modeled.
type Union struct {
	MemberTypes string `xml:"memberTypes,attr"`
}

// Import references a schema document in another namespace.
type Import struct {
	Namespace      string `xml:"namespace,attr"`
	SchemaLocation string `xml:"schemaLocation,attr"`
}

// Include references a schema document in the same namespace.
type Include struct {
	SchemaLocation string `xml:"schemaLocation,attr"`
}

// LocalName strips a namespace prefix from a type reference:
// "xs:string" -> "string", "Order" -> "Order".
func LocalName(ref string) string {
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		return ref[i+1:]
	}

	return ref
}

// Prefix returns the namespace prefix of a type reference, or "" when the
// reference is unprefixed.
func Prefix(ref string) string {
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		return ref[:i]
	}

	return ""
}
