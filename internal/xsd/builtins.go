package xsd

// Family groups the built-in schema primitives by target representation.
type Family int

const (
	FamilyNone Family = iota // not a built-in primitive
	FamilyInteger
	FamilyDecimal
	FamilyBoolean
	FamilyTimestamp
	FamilyText
)

// builtinFamilies maps every recognized built-in primitive local name to its
// family. Unlisted names are not built-ins; the resolver treats them as
// declared type references.
var builtinFamilies = map[string]Family{
	"byte":               FamilyInteger,
	"int":                FamilyInteger,
	"integer":            FamilyInteger,
	"long":               FamilyInteger,
	"short":              FamilyInteger,
	"negativeInteger":    FamilyInteger,
	"nonNegativeInteger": FamilyInteger,
	"nonPositiveInteger": FamilyInteger,
	"positiveInteger":    FamilyInteger,
	"unsignedByte":       FamilyInteger,
	"unsignedInt":        FamilyInteger,
	"unsignedLong":       FamilyInteger,
	"unsignedShort":      FamilyInteger,

	"decimal": FamilyDecimal,
	"double":  FamilyDecimal,
	"float":   FamilyDecimal,

	"boolean": FamilyBoolean,

	"date":       FamilyTimestamp,
	"dateTime":   FamilyTimestamp,
	"time":       FamilyTimestamp,
	"duration":   FamilyTimestamp,
	"gDay":       FamilyTimestamp,
	"gMonth":     FamilyTimestamp,
	"gMonthDay":  FamilyTimestamp,
	"gYear":      FamilyTimestamp,
	"gYearMonth": FamilyTimestamp,

	"string":           FamilyText,
	"normalizedString": FamilyText,
	"token":            FamilyText,
	"language":         FamilyText,
	"Name":             FamilyText,
	"NCName":           FamilyText,
	"NMTOKEN":          FamilyText,
	"NMTOKENS":         FamilyText,
	"ID":               FamilyText,
	"IDREF":            FamilyText,
	"IDREFS":           FamilyText,
	"ENTITY":           FamilyText,
	"ENTITIES":         FamilyText,
	"QName":            FamilyText,
	"NOTATION":         FamilyText,
	"anyURI":           FamilyText,
	"hexBinary":        FamilyText,
	"base64Binary":     FamilyText,
	"anyType":          FamilyText,
	"anySimpleType":    FamilyText,
}

// BuiltinFamily classifies a type reference's local name. FamilyNone means
// the name is not a built-in primitive.
func BuiltinFamily(ref string) Family {
	return builtinFamilies[LocalName(ref)]
}

// IsBuiltin reports whether the reference names a built-in primitive.
func IsBuiltin(ref string) bool {
	return BuiltinFamily(ref) != FamilyNone
}
