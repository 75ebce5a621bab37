package schemaimport

import (
	"os"
	"path/filepath"
	"strings"
)

// Source is a materialized import target: a canonical key for cycle
// detection and the SDL text to parse (spec §4.C).
type Source struct {
	Key  string
	Text string
}

// SourceResolver maps an import target as written in a directive to a
// canonical key and source text (spec §4.C).
type SourceResolver interface {
	Resolve(currentKey, from string) (Source, error)
}

// FilesystemResolver is the default SourceResolver. It resolves
// ".graphql"-to-".graphql" targets relative to the current file's
// directory (falling back to a module-style lookup on ENOENT), and
// treats everything else as a logical named source looked up in Logical.
type FilesystemResolver struct {
	Logical map[string]string
}

func isGraphQLPath(s string) bool {
	return strings.HasSuffix(s, ".graphql")
}

// Resolve implements SourceResolver.
func (r *FilesystemResolver) Resolve(currentKey, from string) (Source, error) {
	if isGraphQLPath(currentKey) && isGraphQLPath(from) {
		dir := filepath.Dir(currentKey)
		candidate := filepath.Join(dir, from)

		real, err := filepath.EvalSymlinks(candidate)
		if err != nil {
			if !os.IsNotExist(err) {
				return Source{}, newSchemaError(SourceReadFailure, "resolving %s from %s: %v", from, currentKey, err)
			}
			real, err = resolveModule(dir, from)
			if err != nil {
				return Source{}, newSchemaError(SourceReadFailure, "%s: not found relative to %s and no module lookup matched: %v", from, currentKey, err)
			}
		}

		data, err := os.ReadFile(real)
		if err != nil {
			return Source{}, newSchemaError(SourceReadFailure, "reading %s: %v", real, err)
		}
		return Source{Key: real, Text: string(data)}, nil
	}

	text, ok := r.Logical[from]
	if !ok {
		return Source{}, newSchemaError(SourceReadFailure, "no schema registered for logical source %q", from)
	}
	return Source{Key: from, Text: text}, nil
}
