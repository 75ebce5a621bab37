package schemaimport

import "strings"

// importGroup accumulates what a single head name (the part before the
// dot, or the whole bare name) requested: keepAll for a bare name or an
// explicit "Head.*" selector, or a set of named fields otherwise.
type importGroup struct {
	keepAll bool
	fields  map[string]bool
}

func splitDotted(name string) (head, selector string, dotted bool) {
	i := strings.IndexByte(name, '.')
	if i < 0 {
		return name, "", false
	}
	return name[:i], name[i+1:], true
}

func groupImports(imports []string) map[string]*importGroup {
	groups := make(map[string]*importGroup)
	for _, imp := range imports {
		head, selector, dotted := splitDotted(imp)
		g := groups[head]
		if g == nil {
			g = &importGroup{fields: map[string]bool{}}
			groups[head] = g
		}
		switch {
		case !dotted:
			g.keepAll = true
		case selector == "*":
			g.keepAll = true
		default:
			g.fields[selector] = true
		}
	}
	return groups
}

// filterByImports implements spec §4.D's "Filter by imports": the
// nested-wildcard re-export rule when isRoot is false and the only
// import is "*", the pass-through rule when isRoot is true and the only
// import is "*", and the head/selector grouping rule otherwise.
func filterByImports(defs []Definition, imports []string, isRoot bool, previouslyKnown map[string]bool) []Definition {
	if len(imports) == 1 && imports[0] == "*" {
		if isRoot {
			out := make([]Definition, len(defs))
			copy(out, defs)
			return out
		}
		var out []Definition
		for _, d := range defs {
			if d.Kind != KindObject || rootTypeNames[d.Name] {
				continue
			}
			if previouslyKnown[d.Name] {
				out = append(out, d)
			}
		}
		return out
	}

	groups := groupImports(imports)
	var out []Definition
	for _, d := range defs {
		g, ok := groups[d.Name]
		if !ok {
			continue
		}
		if g.keepAll || !hasFields(d.Kind) {
			out = append(out, d)
			continue
		}
		out = append(out, restrictFields(d, g.fields))
	}
	return out
}
