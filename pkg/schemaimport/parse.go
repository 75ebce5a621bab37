package schemaimport

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// parseAdmissible parses sdl into the file's full list of admissible
// definitions (spec §4.D steps 1-2, §4's "Filter by kind"). An
// effectively empty SDL yields an empty, non-nil-error result (spec
// §4.C.3).
//
// parser.ParseSchema is the syntax-only entry point: unlike
// gqlparser.LoadSchema it performs no cross-reference validation, which
// matters because an individual file is an intentionally incomplete
// fragment of the merged schema. Its SchemaDocument.Definitions can only
// ever contain Scalar/Object/Interface/Union/Enum/InputObject nodes —
// schema definitions, directive definitions, and extensions live in
// separate fields — so "filter by kind" falls out of using this parser
// rather than requiring a second pass.
func parseAdmissible(key, sdl string) ([]Definition, error) {
	if isEffectivelyEmptySDL(sdl) {
		return nil, nil
	}

	doc, err := parser.ParseSchema(&ast.Source{Name: key, Input: sdl})
	if err != nil {
		return nil, newSchemaError(AstParseFailure, "parsing %s: %v", key, err)
	}

	defs := make([]Definition, 0, len(doc.Definitions)+len(doc.Directives))
	for _, d := range doc.Definitions {
		kind, ok := astKindToDefKind[d.Kind]
		if !ok {
			continue
		}
		defs = append(defs, Definition{Kind: kind, Name: d.Name, Object: d})
	}
	for _, d := range doc.Directives {
		defs = append(defs, Definition{Kind: KindDirective, Name: d.Name, Directive: d})
	}

	return defs, nil
}
