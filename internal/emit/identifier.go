package emit

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// sanitize replaces every non-identifier rune with '_' and prefixes a
// leading digit, so any schema name becomes a legal Go identifier fragment.
func sanitize(name string) string {
	if name == "" {
		return "_"
	}

	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	out := b.String()
	if unicode.IsDigit(rune(out[0])) {
		out = "_" + out
	}

	return out
}

// TypeIdent derives the exported Go type name for a schema type. Synthesized
// anonymous names keep their underscores so the {owner}_{particle}Type shape
// stays recognizable in the output.
func TypeIdent(name string) string {
	return inflect.Capitalize(sanitize(name))
}

// FieldIdent derives the exported Go field name for a particle.
func FieldIdent(name string) string {
	return inflect.Camelize(sanitize(name))
}

// LiteralIdent derives the constant identifier for one enum literal,
// namespaced by the owning type's sanitized name so literals of different
// enums never collide.
func LiteralIdent(typeName, literal string) string {
	return TypeIdent(typeName) + sanitize(literal)
}

// FileName derives the output file name for an artifact.
func FileName(typeName string) string {
	return inflect.Underscore(sanitize(typeName)) + ".go"
}

// PackageIdent derives a legal Go package identifier from the target
// namespace string given on the command line.
func PackageIdent(ns string) string {
	ident := strings.ToLower(sanitize(ns))
	if ident == "_" || ident == "" {
		return "model"
	}

	return ident
}
