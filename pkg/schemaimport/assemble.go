package schemaimport

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kr/pretty"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// inlineSourceKey is the canonical key given to a root schema passed as
// literal SDL text rather than a filesystem path. A literal root can
// still import named logical sources (spec §4.C.2), but it cannot
// participate in a cyclic import chain that refers back to it by name,
// since nothing else can address it under this synthetic key.
const inlineSourceKey = "<inline>"

type options struct {
	logical map[string]string
	logger  *slog.Logger
	debug   io.Writer
}

// Option configures ImportSchema.
type Option func(*options)

// WithLogicalSources supplies the named, non-filesystem sources that
// import directives may reference with `from "name"` when name isn't a
// ".graphql" path (spec §4.C.2).
func WithLogicalSources(sources map[string]string) Option {
	return func(o *options) { o.logical = sources }
}

// WithLogger routes the package's structured trace logging (spec
// SPEC_FULL.md ambient logging section) through l instead of
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithDebugDump writes a pretty-printed dump of the traversal
// accumulators (allDefinitions, typeDefinitions, processedEdges) to w
// once collection completes, for CLI --debug output.
func WithDebugDump(w io.Writer) Option {
	return func(o *options) { o.debug = w }
}

// ImportSchema bundles a modular SDL corpus into one merged schema
// document and returns its printed text (spec §6). schema is either a
// path ending in ".graphql" or literal SDL text.
func ImportSchema(schema string, opts ...Option) (string, error) {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	rootKey, rootSDL, err := loadRoot(schema)
	if err != nil {
		return "", err
	}

	resolver := &FilesystemResolver{Logical: cfg.logical}
	c := newCollector(resolver, cfg.logger)

	cfg.logger.Info("importing schema", "root", rootKey)
	if err := c.collect(rootKey, rootSDL, []string{"*"}, true); err != nil {
		return "", err
	}

	if cfg.debug != nil {
		fmt.Fprintf(cfg.debug, "allDefinitions: %# v\n", pretty.Formatter(defNames(c.allDefinitions)))
		fmt.Fprintf(cfg.debug, "typeDefinitions: %# v\n", pretty.Formatter(defNames(c.typeDefinitions)))
		fmt.Fprintf(cfg.debug, "processedEdges: %# v\n", pretty.Formatter(c.processedEdges))
	}

	seed := mergeRoot(c.typeDefinitions)
	pool, err := closeSchema(c.allDefinitions, seed, c.typeDefinitions)
	if err != nil {
		return "", err
	}

	doc := assembleDocument(pool)

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)
	return buf.String(), nil
}

func loadRoot(schema string) (key, sdl string, err error) {
	if !isGraphQLPath(schema) {
		return inlineSourceKey, schema, nil
	}

	abs, err := filepath.Abs(schema)
	if err != nil {
		return "", "", newSchemaError(SourceReadFailure, "resolving %s: %v", schema, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", "", newSchemaError(SourceReadFailure, "resolving %s: %v", schema, err)
	}
	data, err := os.ReadFile(real)
	if err != nil {
		return "", "", newSchemaError(SourceReadFailure, "reading %s: %v", real, err)
	}
	return real, string(data), nil
}

// defNames reduces a traversal accumulator to definition names, which is
// all --debug output needs; dumping the raw *ast.Definition pointers with
// pretty.Formatter would be illegibly deep.
func defNames(grouped [][]Definition) [][]string {
	out := make([][]string, len(grouped))
	for i, fileDefs := range grouped {
		names := make([]string, len(fileDefs))
		for j, d := range fileDefs {
			names[j] = d.Name
		}
		out[i] = names
	}
	return out
}

// assembleDocument replaces the root document's definitions with the
// closed pool (spec §4.G), name-deduplicated and order-preserving by
// construction (closeSchema never appends a name it has already seen).
func assembleDocument(pool []Definition) *ast.SchemaDocument {
	doc := &ast.SchemaDocument{}
	for _, d := range pool {
		if d.Kind == KindDirective {
			doc.Directives = append(doc.Directives, d.Directive)
			continue
		}
		doc.Definitions = append(doc.Definitions, d.Object)
	}
	return doc
}
