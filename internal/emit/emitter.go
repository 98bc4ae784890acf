// Package emit turns merged structural types and resolved scalar types into
// artifact descriptions: one enum artifact per enumeration and one struct
// artifact per structural type, including synthesized types for inline
// anonymous particles.
package emit

import (
	"modelgen/internal/diagnostic"
	"modelgen/internal/merge"
	"modelgen/internal/model"
	"modelgen/internal/registry"
	"modelgen/internal/resolve"
	"modelgen/internal/xsd"
)

// Emitter builds artifacts from the registries via the merge engine and the
// resolver. Each artifact name is emitted at most once; re-entrant requests
// for an already-emitted name are no-ops, which guards against re-processing
// when anonymous nested types are synthesized.
type Emitter struct {
	reg      *registry.Registry
	merger   *merge.Merger
	resolver *resolve.Resolver
	diags    *diagnostic.Diagnostics

	emitted   map[string]bool
	artifacts []model.Artifact
}

// New creates an Emitter.
func New(reg *registry.Registry, merger *merge.Merger, resolver *resolve.Resolver, diags *diagnostic.Diagnostics) *Emitter {
	return &Emitter{
		reg:      reg,
		merger:   merger,
		resolver: resolver,
		diags:    diags,
		emitted:  make(map[string]bool),
	}
}

// EmitAll produces every artifact: one enum per enum-resolved scalar type in
// first-seen order, then one struct per structural type name in first-seen
// order, with synthesized anonymous types interleaved ahead of the types
// that reference them.
func (e *Emitter) EmitAll() []model.Artifact {
	for _, name := range e.reg.ScalarNames() {
		if kind, ok := e.resolver.Kind(name); ok && kind == resolve.KindEnum {
			e.EmitEnum(name)
		}
	}

	for _, name := range e.reg.StructuralNames() {
		e.EmitStruct(name)
	}

	return e.artifacts
}

// Artifacts returns everything emitted so far, in emission order.
func (e *Emitter) Artifacts() []model.Artifact {
	return e.artifacts
}

// EmitEnum emits the enum artifact for a scalar type name, once. Literals
// come from the first registered definition, in declaration order, with the
// original text preserved per entry.
func (e *Emitter) EmitEnum(name string) {
	typeName := TypeIdent(name)
	if e.emitted[typeName] {
		return
	}

	e.emitted[typeName] = true

	st := e.reg.FirstScalarType(name)
	if st == nil {
		return
	}

	art := &model.EnumArtifact{
		Name:     typeName,
		Original: name,
	}

	for _, value := range st.Enumerations() {
		art.Literals = append(art.Literals, model.EnumLiteral{
			Ident: LiteralIdent(name, value),
			Value: value,
		})
	}

	e.artifacts = append(e.artifacts, art)
	e.diags.AddInfo("emitted-enum", "enum artifact emitted", "", name)
}

// EmitStruct emits the struct artifact for a registered structural type
// name, once.
func (e *Emitter) EmitStruct(name string) {
	merged := e.merger.Merge(name)
	if merged == nil {
		return
	}

	e.emitMerged(name, merged)
}

// emitMerged emits one merged definition under the given schema-level name.
func (e *Emitter) emitMerged(name string, merged *merge.MergedType) {
	typeName := TypeIdent(name)
	if e.emitted[typeName] {
		return
	}

	e.emitted[typeName] = true

	art := &model.StructArtifact{
		Name:      typeName,
		Original:  name,
		Namespace: merged.TargetNamespace,
		NoContent: len(merged.Elements) == 0 && len(merged.Attributes) == 0,
	}

	for i := range merged.Elements {
		art.Fields = append(art.Fields, e.elementField(name, merged, &merged.Elements[i])...)
	}

	for i := range merged.Attributes {
		art.Fields = append(art.Fields, e.attributeField(&merged.Attributes[i])...)
	}

	e.artifacts = append(e.artifacts, art)
	e.diags.AddInfo("emitted-type", "struct artifact emitted", "", name)
}

// elementField builds the field for one element particle, plus its companion
// presence field when warranted. Inline anonymous structural types are
// synthesized and emitted first, then referenced by name.
func (e *Emitter) elementField(owner string, merged *merge.MergedType, el *xsd.Element) []model.Field {
	var ref resolve.Ref

	if el.Type == "" && el.ComplexType != nil {
		synth := owner + "_" + el.Name + "Type"
		inline := e.merger.MergeDef(synth, el.ComplexType)
		if inline.TargetNamespace == "" {
			inline.TargetNamespace = merged.TargetNamespace
		}

		e.emitMerged(synth, inline)

		ref = resolve.Ref{Struct: synth, Repeated: el.Unbounded()}
	} else {
		ref = e.resolver.ResolveElement(el)
	}

	field := model.Field{
		Ident:     FieldIdent(el.Name),
		Ref:       ref,
		TypeName:  refTypeName(ref),
		XMLName:   el.Name,
		Namespace: merged.TargetNamespace,
		Optional:  el.Optional(),
	}

	fields := []model.Field{field}
	if field.Optional && ref.NeedsPresenceFlag() {
		fields[0].Presence = field.Ident + "Specified"
		fields = append(fields, presenceField(fields[0].Presence))
	}

	return fields
}

// attributeField builds the field for one attribute particle. Attributes are
// always scalar, never repeated, and carry no namespace in their binding.
func (e *Emitter) attributeField(at *xsd.Attribute) []model.Field {
	ref := e.resolver.ResolveAttribute(at)

	field := model.Field{
		Ident:    FieldIdent(at.Name),
		Ref:      ref,
		TypeName: refTypeName(ref),
		XMLName:  at.Name,
		Attr:     true,
		Optional: !at.Required(),
	}

	fields := []model.Field{field}
	if field.Optional && ref.NeedsPresenceFlag() {
		fields[0].Presence = field.Ident + "Specified"
		fields = append(fields, presenceField(fields[0].Presence))
	}

	return fields
}

// presenceField is the companion explicit-set boolean: defaults false, set
// by callers when a value was actually supplied, so absent optional scalars
// are not serialized with a spurious default.
func presenceField(ident string) model.Field {
	return model.Field{
		Ident: ident,
		Ref:   resolve.Ref{Kind: resolve.KindBoolean},
	}
}

func refTypeName(ref resolve.Ref) string {
	switch {
	case ref.IsStruct():
		return TypeIdent(ref.Struct)
	case ref.Kind == resolve.KindEnum:
		return TypeIdent(ref.Enum)
	default:
		return ""
	}
}
