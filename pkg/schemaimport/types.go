package schemaimport

import "github.com/vektah/gqlparser/v2/ast"

// DefKind tags the admissible definition kinds (spec §3: "Valid
// definition"). Every other AST definition kind (schema definition,
// operation, fragment, extension) never reaches this package, because
// parser.ParseSchema only ever produces these kinds plus directive
// definitions.
type DefKind int

const (
	KindScalar DefKind = iota
	KindObject
	KindInterface
	KindEnum
	KindUnion
	KindInputObject
	KindDirective
)

// Definition is a tagged variant over the admissible AST node kinds.
// Object, Interface, Enum, Union and InputObject wrap a gqlparser
// *ast.Definition (which already carries Fields, Interfaces, Types and
// Directives); Directive wraps a *ast.DirectiveDefinition, which
// gqlparser keeps in a separate list from ordinary type definitions.
type Definition struct {
	Kind      DefKind
	Name      string
	Object    *ast.Definition
	Directive *ast.DirectiveDefinition
}

var astKindToDefKind = map[ast.DefinitionKind]DefKind{
	ast.Scalar:      KindScalar,
	ast.Object:      KindObject,
	ast.Interface:   KindInterface,
	ast.Enum:        KindEnum,
	ast.Union:       KindUnion,
	ast.InputObject: KindInputObject,
}

// builtinTypes are never resolved as imports (spec §6).
var builtinTypes = map[string]bool{
	"String":  true,
	"Float":   true,
	"Int":     true,
	"Boolean": true,
	"ID":      true,
}

// builtinDirectives are never resolved as imports (spec §6).
var builtinDirectives = map[string]bool{
	"deprecated": true,
	"skip":       true,
	"include":    true,
}

// rootTypeNames are the root operation types merged field-wise across
// files (spec §4.E).
var rootTypeNames = map[string]bool{
	"Query":        true,
	"Mutation":     true,
	"Subscription": true,
}

// cloneDefinition returns a shallow copy of d whose top-level slices
// (Fields, Interfaces, Types) are independent of d's, so later mutation
// (field filtering, root-type field merging) never corrupts the shared
// full-definition pool that the closure engine's schemaMap is built from.
func cloneDefinition(d Definition) Definition {
	if d.Kind == KindDirective {
		nd := *d.Directive
		return Definition{Kind: KindDirective, Name: d.Name, Directive: &nd}
	}
	nd := *d.Object
	nd.Fields = append(ast.FieldList{}, d.Object.Fields...)
	nd.Interfaces = append([]string{}, d.Object.Interfaces...)
	nd.Types = append([]string{}, d.Object.Types...)
	return Definition{Kind: d.Kind, Name: d.Name, Object: &nd}
}

// restrictFields returns a clone of d (which must be Object or Interface)
// whose Fields list is narrowed to keep. keep is built from a dotted
// import's field selectors.
func restrictFields(d Definition, keep map[string]bool) Definition {
	nd := cloneDefinition(d)
	var kept ast.FieldList
	for _, f := range nd.Object.Fields {
		if keep[f.Name] {
			kept = append(kept, f)
		}
	}
	nd.Object.Fields = kept
	return nd
}

// hasFields reports whether d's kind carries a field list that import
// selectors can restrict (spec §3: "Object and Interface additionally
// carry an ordered list of fields").
func hasFields(k DefKind) bool {
	return k == KindObject || k == KindInterface
}
