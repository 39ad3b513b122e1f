// Package gql holds the GraphQL operations this service sends to the API.
//
// Operation sources are embedded .graphql files, one definition per file.
// They are parsed and validated against the API schema once, when the
// registry is loaded; after that the registry is read-only and every lookup
// is a map access.
package gql

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

type Kind string

const (
	Query    Kind = "query"
	Mutation Kind = "mutation"
	Fragment Kind = "fragment"
)

type Variable struct {
	Name     string
	Type     string
	Required bool
}

// Document is one registered operation or fragment.
type Document struct {
	Name string
	Kind Kind
	// Source is the exact text the document was registered with.
	Source string
	// Text is what goes on the wire: Source followed by every fragment it
	// spreads, directly or transitively. Equal to Source for fragments.
	Text      string
	Variables []Variable
	AST       *ast.QueryDocument
	Fragments []string
}

// Variable returns the declared variable with the given name, or nil.
func (d *Document) Variable(name string) *Variable {
	for i := range d.Variables {
		if d.Variables[i].Name == name {
			return &d.Variables[i]
		}
	}
	return nil
}

type Registry struct {
	bySource map[string]*Document
	byName   map[string]*Document
}

// Lookup returns the document registered with exactly this source text.
// Any other input, even one differing only in whitespace, yields nil.
func (r *Registry) Lookup(source string) *Document {
	if r == nil {
		return nil
	}
	return r.bySource[source]
}

// Named returns the document with the given operation or fragment name, or nil.
func (r *Registry) Named(name string) *Document {
	if r == nil {
		return nil
	}
	return r.byName[name]
}

// Documents returns every registered document ordered by name.
func (r *Registry) Documents() []*Document {
	docs := make([]*Document, 0, len(r.byName))
	for _, doc := range r.byName {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs
}

// Load reads every .graphql file under fsys, resolves fragment spreads and
// validates each operation against schema. All problems found are returned
// together.
func Load(schema *ast.Schema, fsys fs.FS) (*Registry, error) {
	r := &Registry{
		bySource: map[string]*Document{},
		byName:   map[string]*Document{},
	}

	var result *multierror.Error
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".graphql" {
			return err
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		doc, err := parseDocument(p, string(content))
		if err != nil {
			result = multierror.Append(result, err)
			return nil
		}
		if prev, ok := r.byName[doc.Name]; ok {
			result = multierror.Append(result, errors.Errorf("%s: %s %s already registered", p, prev.Kind, doc.Name))
			return nil
		}
		if _, ok := r.bySource[doc.Source]; ok {
			result = multierror.Append(result, errors.Errorf("%s: duplicate source", p))
			return nil
		}
		r.byName[doc.Name] = doc
		r.bySource[doc.Source] = doc
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "gql.load")
	}

	for _, doc := range r.Documents() {
		if doc.Kind == Fragment {
			continue
		}
		if err := r.link(schema, doc); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return r, nil
}

func parseDocument(name, source string) (*Document, error) {
	parsed, err := parser.ParseQuery(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	if len(parsed.Operations)+len(parsed.Fragments) != 1 {
		return nil, errors.Errorf("%s: expected exactly one definition", name)
	}

	doc := &Document{Source: source, Text: source, AST: parsed}
	if len(parsed.Fragments) == 1 {
		doc.Name = parsed.Fragments[0].Name
		doc.Kind = Fragment
		return doc, nil
	}

	op := parsed.Operations[0]
	if op.Name == "" {
		return nil, errors.Errorf("%s: anonymous operation", name)
	}
	switch op.Operation {
	case ast.Query:
		doc.Kind = Query
	case ast.Mutation:
		doc.Kind = Mutation
	default:
		return nil, errors.Errorf("%s: unsupported operation type %q", name, op.Operation)
	}
	doc.Name = op.Name
	for _, v := range op.VariableDefinitions {
		doc.Variables = append(doc.Variables, Variable{
			Name:     v.Variable,
			Type:     v.Type.String(),
			Required: v.Type.NonNull && v.DefaultValue == nil,
		})
	}
	return doc, nil
}

// link appends the fragments doc needs and validates the result.
func (r *Registry) link(schema *ast.Schema, doc *Document) error {
	needed := map[string]bool{}
	if err := r.collectSpreads(doc.AST.Operations[0].SelectionSet, needed); err != nil {
		return errors.Wrap(err, doc.Name)
	}

	var text strings.Builder
	text.WriteString(doc.Source)
	for _, name := range sortedKeys(needed) {
		text.WriteString("\n")
		text.WriteString(r.byName[name].Source)
		doc.Fragments = append(doc.Fragments, name)
	}
	doc.Text = text.String()

	linked, err := parser.ParseQuery(&ast.Source{Name: doc.Name, Input: doc.Text})
	if err != nil {
		return errors.Wrap(err, doc.Name)
	}
	if errs := validator.Validate(schema, linked); len(errs) > 0 {
		return errors.Wrap(errs, doc.Name)
	}
	doc.AST = linked
	return nil
}

func (r *Registry) collectSpreads(set ast.SelectionSet, needed map[string]bool) error {
	for _, selection := range set {
		switch sel := selection.(type) {
		case *ast.Field:
			if err := r.collectSpreads(sel.SelectionSet, needed); err != nil {
				return err
			}
		case *ast.InlineFragment:
			if err := r.collectSpreads(sel.SelectionSet, needed); err != nil {
				return err
			}
		case *ast.FragmentSpread:
			if needed[sel.Name] {
				continue
			}
			frag := r.byName[sel.Name]
			if frag == nil || frag.Kind != Fragment {
				return errors.Errorf("unknown fragment %s", sel.Name)
			}
			needed[sel.Name] = true
			if err := r.collectSpreads(frag.AST.Fragments[0].SelectionSet, needed); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
