package gql

import (
	"embed"
	"io/fs"

	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// Schema is the SDL of the part of the survey API this service talks to.
//
//go:embed schema.graphql
var Schema string

// DocumentsFS holds one .graphql file per operation or fragment:
//
//	documents/
//	  fragments/*.graphql
//	  queries/*.graphql
//	  mutations/*.graphql
//
//go:embed documents
var DocumentsFS embed.FS

func LoadSchema(sdl string) (*ast.Schema, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
	if err != nil {
		return nil, errors.Wrap(err, "gql.schema")
	}
	return schema, nil
}

// Default loads the embedded documents, validates them against the embedded
// schema and checks every typed operation of this package against them.
func Default() (*Registry, error) {
	schema, err := LoadSchema(Schema)
	if err != nil {
		return nil, err
	}
	docs, err := fs.Sub(DocumentsFS, "documents")
	if err != nil {
		return nil, errors.Wrap(err, "gql.documents")
	}
	registry, err := Load(schema, docs)
	if err != nil {
		return nil, err
	}
	if err := registry.Check(Operations...); err != nil {
		return nil, err
	}
	return registry, nil
}
