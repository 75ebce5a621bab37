package schemaimport

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// moduleLookupDir is the directory name searched for a package-like
// schema when a relative `.graphql` path doesn't exist on disk (spec
// §4.C.1: "fall back to a module-lookup rule that locates a package-like
// resource starting from the current directory"). Spec §4.C deliberately
// treats this rule as an external collaborator and specifies only its
// contract (a canonical path or failure); graphql_modules mirrors the
// node_modules convention of the original ardatan/graphql-import tool
// this package's behavior is modeled on, without importing a Node-style
// resolver.
const moduleLookupDir = "graphql_modules"

// resolveModule walks up from dir looking for graphql_modules/<from> at
// each level, returning the first hit's real path. It fails if no
// ancestor directory has a matching entry.
func resolveModule(dir, from string) (string, error) {
	for {
		candidate := filepath.Join(dir, moduleLookupDir, from)
		if _, err := os.Stat(candidate); err == nil {
			real, err := filepath.EvalSymlinks(candidate)
			if err != nil {
				return "", errors.Wrapf(err, "resolving module path %s", candidate)
			}
			return real, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Errorf("no module named %q found from %s", from, dir)
		}
		dir = parent
	}
}
