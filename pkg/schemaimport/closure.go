package schemaimport

import "github.com/vektah/gqlparser/v2/ast"

// closeSchema runs the fixed-point expansion described in spec §4.F: it
// starts from seed, works through pending (the flattened imported-type
// lists), and pulls in every name a surviving definition references —
// field and argument types, implemented interfaces, union members,
// applied directive definitions and their argument types, plus every
// object implementing a surviving interface — until nothing new is
// found. schemaMap resolves names against the full (unfiltered) pool
// collected from every visited source; it never shrinks because
// allDefinitions is fixed once collection completes.
func closeSchema(allDefinitions [][]Definition, seed []Definition, typeDefinitions [][]Definition) ([]Definition, error) {
	schemaMap := buildSchemaMap(allDefinitions)
	flatAll := flatten(allDefinitions)

	pool := make([]Definition, len(seed))
	copy(pool, seed)
	inPool := make(map[string]bool, len(pool))
	for _, d := range pool {
		inPool[d.Name] = true
	}

	// Root operation types may have been assembled from fragments spread
	// across several files (spec §4.E); pending's raw per-file entries only
	// carry the fragment each file contributed. Substitute the seed's
	// already-merged definition so the pool's declared field set — not
	// just whichever fragment happened to dequeue first — drives closure.
	seedByName := make(map[string]Definition, len(seed))
	for _, d := range seed {
		seedByName[d.Name] = d
	}

	pending := flatten(typeDefinitions)
	visited := make(map[string]bool)

	addIfNew := func(nd Definition, extension *[]Definition) {
		if inPool[nd.Name] {
			return
		}
		inPool[nd.Name] = true
		pool = append(pool, nd)
		*extension = append(*extension, nd)
	}

	enqueueImplementor := func(nd Definition, extension *[]Definition) {
		if !inPool[nd.Name] {
			inPool[nd.Name] = true
			pool = append(pool, nd)
		}
		*extension = append(*extension, nd)
	}

	recurse := func(t *ast.Type, fieldName string, extension *[]Definition) error {
		leaf := t
		for leaf.NamedType == "" && leaf.Elem != nil {
			leaf = leaf.Elem
		}
		name := leaf.NamedType
		if builtinTypes[name] || inPool[name] {
			return nil
		}
		nd, ok := schemaMap[name]
		if !ok {
			return missingFieldTypeErr(fieldName, name)
		}
		addIfNew(nd, extension)
		return nil
	}

	for len(pending) > 0 {
		d := pending[0]
		pending = pending[1:]
		if visited[d.Name] {
			continue
		}
		visited[d.Name] = true
		if merged, ok := seedByName[d.Name]; ok {
			d = merged
		}

		var extension []Definition

		if d.Kind != KindDirective {
			var directives ast.DirectiveList
			if d.Object != nil {
				directives = d.Object.Directives
			}
			for _, app := range directives {
				if builtinDirectives[app.Name] || inPool[app.Name] {
					continue
				}
				nd, ok := schemaMap[app.Name]
				if !ok {
					return nil, missingDirectiveErr(app.Name)
				}
				addIfNew(nd, &extension)
				if nd.Kind == KindDirective {
					for _, arg := range nd.Directive.Arguments {
						if err := recurse(arg.Type, "@"+nd.Name, &extension); err != nil {
							return nil, err
						}
					}
				}
			}
		}

		switch d.Kind {
		case KindInputObject:
			for _, f := range d.Object.Fields {
				if err := recurse(f.Type, f.Name, &extension); err != nil {
					return nil, err
				}
			}

		case KindInterface:
			for _, f := range d.Object.Fields {
				if err := recurse(f.Type, f.Name, &extension); err != nil {
					return nil, err
				}
			}
			for _, cand := range flatAll {
				if cand.Kind != KindObject {
					continue
				}
				for _, iface := range cand.Object.Interfaces {
					if iface == d.Name {
						enqueueImplementor(cand, &extension)
						break
					}
				}
			}

		case KindUnion:
			for _, member := range d.Object.Types {
				if inPool[member] {
					continue
				}
				nd, ok := schemaMap[member]
				if !ok {
					return nil, missingUnionMemberErr(member)
				}
				addIfNew(nd, &extension)
			}

		case KindObject:
			for _, iface := range d.Object.Interfaces {
				if inPool[iface] {
					continue
				}
				nd, ok := schemaMap[iface]
				if !ok {
					return nil, missingInterfaceErr(iface)
				}
				addIfNew(nd, &extension)
			}
			for _, f := range d.Object.Fields {
				if err := recurse(f.Type, f.Name, &extension); err != nil {
					return nil, err
				}
				for _, arg := range f.Arguments {
					if err := recurse(arg.Type, f.Name, &extension); err != nil {
						return nil, err
					}
				}
			}
		}

		pending = append(pending, extension...)
	}

	return pool, nil
}

// buildSchemaMap flattens allDefinitions into name -> definition, later
// definitions overwriting earlier ones for the same name.
func buildSchemaMap(allDefinitions [][]Definition) map[string]Definition {
	m := make(map[string]Definition)
	for _, fileDefs := range allDefinitions {
		for _, d := range fileDefs {
			m[d.Name] = d
		}
	}
	return m
}

func flatten(grouped [][]Definition) []Definition {
	var out []Definition
	for _, g := range grouped {
		out = append(out, g...)
	}
	return out
}
