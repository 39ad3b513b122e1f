package gql

import (
	"context"
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Operation ties a registered document to the Go types of its variables (V)
// and of its response data (R).
type Operation[V, R any] struct {
	name string
	kind Kind
}

func NewQuery[V, R any](name string) Operation[V, R] {
	return Operation[V, R]{name: name, kind: Query}
}

func NewMutation[V, R any](name string) Operation[V, R] {
	return Operation[V, R]{name: name, kind: Mutation}
}

func (op Operation[V, R]) OperationName() string { return op.name }
func (op Operation[V, R]) OperationKind() Kind    { return op.kind }

func (op Operation[V, R]) VariablesType() reflect.Type {
	return reflect.TypeOf((*V)(nil)).Elem()
}

// Binding is the untyped view of an Operation used for startup checks.
type Binding interface {
	OperationName() string
	OperationKind() Kind
	VariablesType() reflect.Type
}

// Check verifies that every binding names a registered operation of the
// same kind, and that the JSON fields of its variables type match the
// variables the document declares.
func (r *Registry) Check(bindings ...Binding) error {
	var result *multierror.Error
	for _, b := range bindings {
		name := b.OperationName()
		doc := r.Named(name)
		if doc == nil {
			result = multierror.Append(result, errors.Wrap(ErrUnknownOperation, name))
			continue
		}
		if doc.Kind != b.OperationKind() {
			result = multierror.Append(result, errors.Errorf("%s: registered as %s, bound as %s", name, doc.Kind, b.OperationKind()))
			continue
		}

		fields := jsonFields(b.VariablesType())
		for _, v := range doc.Variables {
			if !fields[v.Name] && v.Required {
				result = multierror.Append(result, errors.Errorf("%s: required variable $%s (%s) has no field", name, v.Name, v.Type))
			}
		}
		for _, field := range sortedKeys(fields) {
			if doc.Variable(field) == nil {
				result = multierror.Append(result, errors.Errorf("%s: field %q is not a declared variable", name, field))
			}
		}
	}
	return result.ErrorOrNil()
}

func jsonFields(t reflect.Type) map[string]bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	fields := map[string]bool{}
	if t.Kind() != reflect.Struct {
		return fields
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		fields[name] = true
	}
	return fields
}

// Executor sends a registered operation, by name, and decodes the response
// data into data.
type Executor interface {
	Do(ctx context.Context, operation string, variables any, data any) error
}

// Execute runs op through exec and returns its typed result.
func Execute[V, R any](ctx context.Context, exec Executor, op Operation[V, R], variables V) (*R, error) {
	var data R
	if err := exec.Do(ctx, op.name, variables, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Names lists the operation names of bindings, sorted.
func Names(bindings ...Binding) []string {
	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, b.OperationName())
	}
	sort.Strings(names)
	return names
}
