package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelgen/internal/xsd"
)

func TestRegistry_PreservesDiscoveryOrder(t *testing.T) {
	r := New()

	a := &xsd.ComplexType{Name: "Order", Sequence: []xsd.Element{{Name: "ID"}}}
	b := &xsd.ComplexType{Name: "Order", Sequence: []xsd.Element{{Name: "ID"}, {Name: "Total"}}}
	c := &xsd.ComplexType{Name: "Customer"}

	r.AddStructuralType(a)
	r.AddStructuralType(b)
	r.AddStructuralType(c)

	require.Len(t, r.StructuralTypes["Order"], 2)
	assert.Same(t, a, r.StructuralTypes["Order"][0])
	assert.Same(t, b, r.StructuralTypes["Order"][1])
	assert.Equal(t, []string{"Order", "Customer"}, r.StructuralNames())
}

func TestRegistry_FirstScalarTypeWins(t *testing.T) {
	r := New()

	first := &xsd.SimpleType{Name: "Status", Restriction: &xsd.Restriction{Base: "xs:string"}}
	second := &xsd.SimpleType{Name: "Status", Restriction: &xsd.Restriction{Base: "xs:int"}}

	r.AddScalarType(first)
	r.AddScalarType(second)

	require.True(t, r.HasScalarType("Status"))
	assert.Same(t, first, r.FirstScalarType("Status"))
	require.Len(t, r.ScalarTypes["Status"], 2)
}

func TestRegistry_IgnoresAnonymousDeclarations(t *testing.T) {
	r := New()

	r.AddStructuralType(&xsd.ComplexType{})
	r.AddScalarType(&xsd.SimpleType{})
	r.AddGlobalElement(&xsd.Element{})

	assert.Empty(t, r.StructuralTypes)
	assert.Empty(t, r.ScalarTypes)
	assert.Empty(t, r.GlobalElements)
}

func TestNamespaceTable_FirstWins(t *testing.T) {
	tbl := NewNamespaceTable()

	tbl.Bind("tns", "urn:example:orders")
	tbl.Bind("tns", "urn:example:other")     // prefix already bound
	tbl.Bind("ord", "urn:example:orders")    // URI already bound
	tbl.Bind("common", "urn:example:common") // fresh on both sides

	uri, ok := tbl.URI("tns")
	require.True(t, ok)
	assert.Equal(t, "urn:example:orders", uri)

	prefix, ok := tbl.Prefix("urn:example:orders")
	require.True(t, ok)
	assert.Equal(t, "tns", prefix)

	_, ok = tbl.URI("ord")
	assert.False(t, ok)

	assert.Equal(t, 2, tbl.Len())
}

func TestNamespaceTable_EmptyURIIgnored(t *testing.T) {
	tbl := NewNamespaceTable()
	tbl.Bind("xs", "")
	assert.Equal(t, 0, tbl.Len())
}
