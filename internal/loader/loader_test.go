package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelgen/internal/diagnostic"
	"modelgen/internal/registry"
	"modelgen/internal/xsd"
)

func writeSchema(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

const schemaHeader = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" `

func TestLoad_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "orders.xsd", schemaHeader+`targetNamespace="urn:orders">
  <xs:complexType name="Order">
    <xs:sequence>
      <xs:element name="ID" type="xs:string"/>
    </xs:sequence>
  </xs:complexType>
  <xs:simpleType name="Status">
    <xs:restriction base="xs:string">
      <xs:enumeration value="OPEN"/>
    </xs:restriction>
  </xs:simpleType>
  <xs:element name="order" type="Order"/>
</xs:schema>`)

	reg := registry.New()
	var diags diagnostic.Diagnostics

	l := New(reg, &diags)
	require.NoError(t, l.Load(path, false))

	require.Len(t, l.Documents(), 1)
	require.Len(t, reg.StructuralTypes["Order"], 1)
	assert.Equal(t, "urn:orders", reg.StructuralTypes["Order"][0].TargetNamespace)
	require.Len(t, reg.ScalarTypes["Status"], 1)
	require.Len(t, reg.GlobalElements["order"], 1)

	uri, ok := reg.Namespaces.URI("xs")
	require.True(t, ok)
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema", uri)
}

func TestLoad_DirectoryLexicographicOrder(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "b.xsd", schemaHeader+`targetNamespace="urn:b">
  <xs:complexType name="Shared"><xs:sequence><xs:element name="B" type="xs:string"/></xs:sequence></xs:complexType>
</xs:schema>`)
	writeSchema(t, dir, "a.xsd", schemaHeader+`targetNamespace="urn:a">
  <xs:complexType name="Shared"><xs:sequence><xs:element name="A" type="xs:string"/></xs:sequence></xs:complexType>
</xs:schema>`)

	reg := registry.New()
	var diags diagnostic.Diagnostics

	require.NoError(t, New(reg, &diags).Load(dir, false))

	defs := reg.StructuralTypes["Shared"]
	require.Len(t, defs, 2)
	assert.Equal(t, "urn:a", defs[0].TargetNamespace)
	assert.Equal(t, "urn:b", defs[1].TargetNamespace)
}

func TestLoad_RecurseFlag(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	writeSchema(t, dir, "top.xsd", schemaHeader+`targetNamespace="urn:top">
  <xs:complexType name="Top"/>
</xs:schema>`)
	writeSchema(t, sub, "deep.xsd", schemaHeader+`targetNamespace="urn:deep">
  <xs:complexType name="Deep"/>
</xs:schema>`)

	reg := registry.New()
	var diags diagnostic.Diagnostics
	require.NoError(t, New(reg, &diags).Load(dir, false))
	assert.Len(t, reg.StructuralTypes, 1)

	reg = registry.New()
	diags = diagnostic.Diagnostics{}
	require.NoError(t, New(reg, &diags).Load(dir, true))
	assert.Len(t, reg.StructuralTypes, 2)
}

func TestLoad_ImportResolvedDepthFirst(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "root.xsd", schemaHeader+`targetNamespace="urn:root">
  <xs:import namespace="urn:common" schemaLocation="common.xsd"/>
  <xs:complexType name="Root"/>
</xs:schema>`)
	writeSchema(t, dir, "common.xsd", schemaHeader+`targetNamespace="urn:common">
  <xs:include schemaLocation="base.xsd"/>
  <xs:complexType name="Common"/>
</xs:schema>`)
	writeSchema(t, dir, "base.xsd", schemaHeader+`targetNamespace="urn:common">
  <xs:complexType name="Base"/>
</xs:schema>`)

	reg := registry.New()
	var diags diagnostic.Diagnostics

	l := New(reg, &diags)
	require.NoError(t, l.Load(filepath.Join(dir, "root.xsd"), false))

	docs := l.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, "root.xsd", filepath.Base(docs[0].Path))
	assert.Equal(t, "common.xsd", filepath.Base(docs[1].Path))
	assert.Equal(t, "base.xsd", filepath.Base(docs[2].Path))
}

func TestLoad_MissingReferenceSkipped(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "root.xsd", schemaHeader+`targetNamespace="urn:root">
  <xs:import namespace="urn:gone" schemaLocation="gone.xsd"/>
  <xs:complexType name="Root"/>
</xs:schema>`)

	reg := registry.New()
	var diags diagnostic.Diagnostics

	l := New(reg, &diags)
	require.NoError(t, l.Load(path, false))

	assert.Len(t, l.Documents(), 1)
	require.True(t, diags.HasWarnings())
	assert.Equal(t, "missing-reference", diags.Warnings[0].Code)
}

func TestLoad_MalformedDocumentFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "broken.xsd", "<xs:schema")

	reg := registry.New()
	var diags diagnostic.Diagnostics

	err := New(reg, &diags).Load(path, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, xsd.ErrParse)
}

func TestLoad_MutualIncludesTerminate(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "a.xsd", schemaHeader+`targetNamespace="urn:cycle">
  <xs:include schemaLocation="b.xsd"/>
  <xs:complexType name="A"/>
</xs:schema>`)
	writeSchema(t, dir, "b.xsd", schemaHeader+`targetNamespace="urn:cycle">
  <xs:include schemaLocation="a.xsd"/>
  <xs:complexType name="B"/>
</xs:schema>`)

	reg := registry.New()
	var diags diagnostic.Diagnostics

	l := New(reg, &diags)
	require.NoError(t, l.Load(filepath.Join(dir, "a.xsd"), false))

	assert.Len(t, l.Documents(), 2)
	require.Len(t, reg.StructuralTypes["A"], 1)
	require.Len(t, reg.StructuralTypes["B"], 1)
}

func TestLoad_ImportWithoutLocationSkipped(t *testing.T) {
	dir := t.TempDir()
	path := writeSchema(t, dir, "root.xsd", schemaHeader+`targetNamespace="urn:root">
  <xs:import namespace="urn:other"/>
  <xs:complexType name="Root"/>
</xs:schema>`)

	reg := registry.New()
	var diags diagnostic.Diagnostics

	require.NoError(t, New(reg, &diags).Load(path, false))
	assert.False(t, diags.HasWarnings())
}
