package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"modelgen/internal/model"
	"modelgen/internal/resolve"
)

func TestRender_Enum(t *testing.T) {
	files, err := Render([]model.Artifact{
		&model.EnumArtifact{
			Name:     "Color",
			Original: "Color",
			Literals: []model.EnumLiteral{
				{Ident: "ColorRED", Value: "RED"},
				{Ident: "ColorGREEN", Value: "GREEN"},
				{Ident: "ColorBLUE", Value: "BLUE"},
			},
		},
	}, "models")
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "color.go", files[0].Filename)

	src := string(files[0].Content)
	assert.Contains(t, src, "package models")
	assert.Contains(t, src, "type Color string")

	// gofmt aligns const blocks, so assert on fragments rather than whole lines
	assert.Contains(t, src, "ColorRED")
	assert.Contains(t, src, `Color = "RED"`)
	assert.Contains(t, src, `ColorGREEN`)
	assert.Contains(t, src, `Color = "GREEN"`)
	assert.Contains(t, src, `Color = "BLUE"`)
}

func TestRender_Struct(t *testing.T) {
	files, err := Render([]model.Artifact{
		&model.StructArtifact{
			Name:      "Order",
			Original:  "Order",
			Namespace: "urn:orders",
			Fields: []model.Field{
				{Ident: "ID", Ref: resolve.Ref{Kind: resolve.KindText}, XMLName: "ID", Namespace: "urn:orders"},
				{Ident: "Count", Ref: resolve.Ref{Kind: resolve.KindInteger}, XMLName: "Count", Namespace: "urn:orders", Optional: true, Presence: "CountSpecified"},
				{Ident: "CountSpecified", Ref: resolve.Ref{Kind: resolve.KindBoolean}},
				{Ident: "When", Ref: resolve.Ref{Kind: resolve.KindTimestamp}, XMLName: "When", Namespace: "urn:orders"},
				{Ident: "Lines", Ref: resolve.Ref{Struct: "LineType", Repeated: true}, TypeName: "LineType", XMLName: "Lines", Namespace: "urn:orders"},
				{Ident: "Version", Ref: resolve.Ref{Kind: resolve.KindInteger}, XMLName: "version", Attr: true},
			},
		},
	}, "urn:example:orders")
	require.NoError(t, err)
	require.Len(t, files, 1)

	src := string(files[0].Content)
	assert.Contains(t, src, "package urn_example_orders")
	assert.Contains(t, src, "type Order struct")

	// gofmt aligns struct fields, so assert on fragments rather than whole lines
	assert.Contains(t, src, "`xml:\"urn:orders ID\"`")
	assert.Contains(t, src, "`xml:\"urn:orders Count\"`")
	assert.Contains(t, src, "`xml:\"-\"`")
	assert.Contains(t, src, "time.Time")
	assert.Contains(t, src, "[]LineType")
	assert.Contains(t, src, "`xml:\"version,attr\"`")
	assert.Contains(t, src, "int64")
	assert.Contains(t, src, `"time"`)
}

func TestRender_NoContentStruct(t *testing.T) {
	files, err := Render([]model.Artifact{
		&model.StructArtifact{Name: "Empty", Original: "Empty", NoContent: true},
	}, "models")
	require.NoError(t, err)
	require.Len(t, files, 1)

	src := string(files[0].Content)
	assert.Contains(t, src, "no element or attribute content")
	assert.Contains(t, src, "type Empty struct")
}

func TestWriteFiles_CleanFlag(t *testing.T) {
	dir := t.TempDir()

	// pre-existing entries: a stale file and a subdirectory with a file
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stale.go"), []byte("old"), 0o644))
	sub := filepath.Join(dir, "keep")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "inner.go"), []byte("kept"), 0o644))

	files := []GeneratedFile{{Filename: "fresh.go", Content: []byte("package models\n")}}
	require.NoError(t, WriteFiles(files, dir, true))

	_, err := os.Stat(filepath.Join(dir, "stale.go"))
	assert.True(t, os.IsNotExist(err))

	// clean is not recursive
	_, err = os.Stat(filepath.Join(sub, "inner.go"))
	assert.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "fresh.go"))
	require.NoError(t, err)
	assert.Equal(t, "package models\n", string(content))
}

func TestWriteFiles_Overwrites(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteFiles([]GeneratedFile{{Filename: "a.go", Content: []byte("v1")}}, dir, false))
	require.NoError(t, WriteFiles([]GeneratedFile{{Filename: "a.go", Content: []byte("v2")}}, dir, false))

	content, err := os.ReadFile(filepath.Join(dir, "a.go"))
	require.NoError(t, err)
	assert.Equal(t, "v2", string(content))
}
