// Package gen renders artifact descriptions into Go source files and writes
// them to the output directory.
package gen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"

	"modelgen/internal/emit"
	"modelgen/internal/model"
	"modelgen/internal/resolve"
)

// GeneratedFile is one rendered artifact, ready to be written.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// Render renders every artifact into its own file. The target namespace
// string becomes the package name of every file, sanitized to a legal
// identifier. Artifact order is preserved; file names derive from the
// sanitized type name.
func Render(artifacts []model.Artifact, targetNS string) ([]GeneratedFile, error) {
	pkg := emit.PackageIdent(targetNS)

	files := make([]GeneratedFile, 0, len(artifacts))
	for _, art := range artifacts {
		f := jen.NewFile(pkg)
		f.HeaderComment("Code generated by modelgen. DO NOT EDIT.")

		switch a := art.(type) {
		case *model.EnumArtifact:
			renderEnum(f, a)
		case *model.StructArtifact:
			renderStruct(f, a)
		default:
			return nil, fmt.Errorf("unknown artifact kind %T for %s", art, art.ArtifactName())
		}

		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return nil, fmt.Errorf("rendering artifact %s: %w", art.ArtifactName(), err)
		}

		files = append(files, GeneratedFile{
			Filename: emit.FileName(art.ArtifactName()),
			Content:  buf.Bytes(),
		})
	}

	return files, nil
}

func renderEnum(f *jen.File, a *model.EnumArtifact) {
	f.Comment(fmt.Sprintf("%s is generated from the %q enumeration.", a.Name, a.Original))
	f.Type().Id(a.Name).String()

	f.Comment(fmt.Sprintf("%s values. The constant text is the original schema literal.", a.Name))
	f.Const().DefsFunc(func(g *jen.Group) {
		for _, lit := range a.Literals {
			g.Id(lit.Ident).Id(a.Name).Op("=").Lit(lit.Value)
		}
	})
}

func renderStruct(f *jen.File, a *model.StructArtifact) {
	if a.NoContent {
		f.Comment(fmt.Sprintf("%s is generated from the %q type. It has no element or attribute content.", a.Name, a.Original))
		f.Type().Id(a.Name).Struct()

		return
	}

	f.Comment(fmt.Sprintf("%s is generated from the %q type.", a.Name, a.Original))
	f.Type().Id(a.Name).StructFunc(func(g *jen.Group) {
		for _, field := range a.Fields {
			g.Id(field.Ident).Add(fieldType(field)).Tag(map[string]string{"xml": xmlTag(field)})
		}
	})
}

// fieldType maps a resolved reference to its Go type expression.
func fieldType(field model.Field) jen.Code {
	var base jen.Code

	switch {
	case field.TypeName != "":
		base = jen.Id(field.TypeName)
	default:
		switch field.Ref.Kind {
		case resolve.KindInteger:
			base = jen.Int64()
		case resolve.KindDecimal:
			base = jen.Float64()
		case resolve.KindBoolean:
			base = jen.Bool()
		case resolve.KindTimestamp:
			base = jen.Qual("time", "Time")
		default:
			base = jen.String()
		}
	}

	if field.Ref.Repeated {
		return jen.Index().Add(base)
	}

	return base
}

// xmlTag builds the binding tag: elements carry "namespace localname",
// attributes carry "localname,attr", companion presence fields are excluded
// from serialization.
func xmlTag(field model.Field) string {
	switch {
	case field.XMLName == "":
		return "-"
	case field.Attr:
		return field.XMLName + ",attr"
	case field.Namespace != "":
		return field.Namespace + " " + field.XMLName
	default:
		return field.XMLName
	}
}
