// Package loader discovers schema documents on disk, resolves their
// import/include references transitively, and populates the registries.
//
// Observable output depends on processing order, so the loader fixes it:
// candidate files are enumerated in lexicographic path order, and every
// document's references are resolved depth-first before the next sibling
// directive. A visited set of canonicalized absolute paths makes re-entering
// a document a no-op, so mutually-including schemas terminate.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"modelgen/internal/diagnostic"
	"modelgen/internal/registry"
	"modelgen/internal/xsd"
)

// Loader walks the schema graph and fills a registry.
type Loader struct {
	reg     *registry.Registry
	diags   *diagnostic.Diagnostics
	visited map[string]bool
	docs    []*xsd.Document
}

// New creates a Loader writing into reg and reporting through diags.
func New(reg *registry.Registry, diags *diagnostic.Diagnostics) *Loader {
	return &Loader{
		reg:     reg,
		diags:   diags,
		visited: make(map[string]bool),
	}
}

// Load processes the schema file or directory at root. For a directory,
// candidate files are every *.xsd entry directly inside it, or the whole
// subtree when recurse is set; either way they are loaded in lexicographic
// path order. A malformed document is fatal; a missing import/include target
// is skipped with a warning.
func (l *Loader) Load(root string, recurse bool) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat schema location %s: %w", root, err)
	}

	if !info.IsDir() {
		return l.loadFile(root)
	}

	files, err := discover(root, recurse)
	if err != nil {
		return err
	}

	for _, file := range files {
		if err := l.loadFile(file); err != nil {
			return err
		}
	}

	return nil
}

// Documents returns every successfully loaded document, in load order.
func (l *Loader) Documents() []*xsd.Document {
	return l.docs
}

// discover enumerates candidate schema files under dir in lexicographic
// path order.
func discover(dir string, recurse bool) ([]string, error) {
	var files []string

	if recurse {
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && isSchemaFile(path) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking schema directory %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("reading schema directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			if !entry.IsDir() && isSchemaFile(entry.Name()) {
				files = append(files, filepath.Join(dir, entry.Name()))
			}
		}
	}

	// WalkDir and ReadDir both visit entries in lexical order already; the
	// explicit sort pins full-path order across the recursive case.
	sort.Strings(files)

	return files, nil
}

func isSchemaFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xsd")
}

// loadFile parses one document, registers its declarations, then resolves
// its references depth-first. Re-entering an already-visited path is a no-op.
func (l *Loader) loadFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving schema path %s: %w", path, err)
	}

	abs = filepath.Clean(abs)
	if l.visited[abs] {
		return nil
	}

	l.visited[abs] = true

	doc, err := xsd.ParseFile(abs)
	if err != nil {
		return err
	}

	l.register(doc)
	l.docs = append(l.docs, doc)
	l.diags.AddInfo("loaded-schema", "schema loaded", abs, "")

	return l.resolveReferences(doc)
}

// register binds the document's namespace declarations and appends its
// declarations to the registries, in document order.
func (l *Loader) register(doc *xsd.Document) {
	for _, b := range doc.PrefixBindings() {
		l.reg.Namespaces.Bind(b.Prefix, b.URI)
	}

	for i := range doc.ComplexTypes {
		ct := &doc.ComplexTypes[i]
		stampNamespace(ct, doc.TargetNamespace)
		l.reg.AddStructuralType(ct)
	}

	for i := range doc.SimpleTypes {
		l.reg.AddScalarType(&doc.SimpleTypes[i])
	}

	for i := range doc.Elements {
		el := &doc.Elements[i]
		if el.ComplexType != nil {
			stampNamespace(el.ComplexType, doc.TargetNamespace)
		}

		l.reg.AddGlobalElement(el)
	}
}

// stampNamespace records the owning target namespace on a complex type and
// every inline complex type nested under its particles, so emission can bind
// fields to their original namespace.
func stampNamespace(ct *xsd.ComplexType, ns string) {
	ct.TargetNamespace = ns

	for i := range ct.Sequence {
		if inline := ct.Sequence[i].ComplexType; inline != nil {
			stampNamespace(inline, ns)
		}
	}
}

// resolveReferences loads each import/include target of doc, depth-first,
// relative to doc's containing directory. A target that does not exist on
// disk is skipped without failing the run.
func (l *Loader) resolveReferences(doc *xsd.Document) error {
	base := filepath.Dir(doc.Path)

	locations := make([]string, 0, len(doc.Imports)+len(doc.Includes))
	for _, imp := range doc.Imports {
		locations = append(locations, imp.SchemaLocation)
	}

	for _, inc := range doc.Includes {
		locations = append(locations, inc.SchemaLocation)
	}

	for _, loc := range locations {
		if loc == "" {
			// import directives may omit schemaLocation entirely
			continue
		}

		target := loc
		if !filepath.IsAbs(target) {
			target = filepath.Join(base, target)
		}

		if _, err := os.Stat(target); err != nil {
			l.diags.AddWarning("missing-reference", fmt.Sprintf("referenced schema %s not found, skipping", loc), doc.Path, "")
			continue
		}

		if err := l.loadFile(target); err != nil {
			return err
		}
	}

	return nil
}
