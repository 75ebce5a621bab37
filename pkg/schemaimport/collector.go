package schemaimport

import "log/slog"

// collector owns the per-invocation accumulators described in spec §3:
// allDefinitions, typeDefinitions and processedEdges. A collector is
// created fresh for each top-level ImportSchema call and discarded on
// return, so two concurrent invocations never share state (spec §5).
type collector struct {
	resolver SourceResolver
	logger   *slog.Logger

	allDefinitions  [][]Definition
	typeDefinitions [][]Definition
	processedEdges  map[string]map[string]bool
}

func newCollector(resolver SourceResolver, logger *slog.Logger) *collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &collector{
		resolver:       resolver,
		logger:         logger,
		processedEdges: make(map[string]map[string]bool),
	}
}

// knownNames flattens the typeDefinitions accumulated so far, excluding
// root operation types, for the nested-wildcard re-export rule in
// filterByImports.
func (c *collector) knownNames() map[string]bool {
	known := make(map[string]bool)
	for _, fileDefs := range c.typeDefinitions {
		for _, d := range fileDefs {
			if !rootTypeNames[d.Name] {
				known[d.Name] = true
			}
		}
	}
	return known
}

// collect recursively visits sourceKey, parsing its SDL, recording its
// admissible and imported definitions, and following its import
// directives (spec §4.D). isRoot is true only for the very first call.
func (c *collector) collect(sourceKey, sdl string, imports []string, isRoot bool) error {
	defs, err := parseAdmissible(sourceKey, sdl)
	if err != nil {
		return err
	}
	c.allDefinitions = append(c.allDefinitions, defs)

	current := filterByImports(defs, imports, isRoot, c.knownNames())
	c.typeDefinitions = append(c.typeDefinitions, current)

	c.logger.Debug("visited schema source", "source", sourceKey, "definitions", len(defs), "kept", len(current))

	directives, err := ScanImportDirectives(sdl)
	if err != nil {
		return err
	}

	seen := c.processedEdges[sourceKey]
	if seen == nil {
		seen = make(map[string]bool)
		c.processedEdges[sourceKey] = seen
	}

	for _, d := range directives {
		edgeKey := d.key()
		if seen[edgeKey] {
			c.logger.Debug("skipping already-followed import", "source", sourceKey, "from", d.From)
			continue
		}
		seen[edgeKey] = true

		target, err := c.resolver.Resolve(sourceKey, d.From)
		if err != nil {
			return err
		}

		if err := c.collect(target.Key, target.Text, d.Imports, false); err != nil {
			return err
		}
	}

	return nil
}
