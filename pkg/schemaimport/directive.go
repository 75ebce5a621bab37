package schemaimport

import (
	"regexp"
	"strings"
)

// ImportDirective is one parsed `# import ...` line (spec §3, §4.A).
// Imports is either the single sentinel "*" or a non-empty sequence of
// bare (`User`) or dotted (`Query.posts`, `Query.*`) names.
type ImportDirective struct {
	Imports []string
	From    string
}

// IsWildcard reports whether this directive is the bare `import * from
// "..."` form.
func (d ImportDirective) IsWildcard() bool {
	return len(d.Imports) == 1 && d.Imports[0] == "*"
}

// key identifies a directive for re-entry detection (spec §3:
// processedEdges tracks "the set of distinct import directives already
// followed"): same imports, same from string.
func (d ImportDirective) key() string {
	return strings.Join(d.Imports, ",") + "|" + d.From
}

var nameToken = `[A-Za-z_][A-Za-z0-9_]*`

// importLinePattern implements the grammar in spec §6: a wildcard or a
// comma-separated name list, each name either bare or dotted
// (`Ident('.'(Ident|'*'))?`), followed by `from "path"` with an optional
// trailing semicolon. The quotes must pair, enforced by backreference
// \2 rather than a shared character class.
var importLinePattern = regexp.MustCompile(
	`^import\s+(\*|` + nameToken + `(?:\.(?:` + nameToken + `|\*))?(?:\s*,\s*` + nameToken + `(?:\.(?:` + nameToken + `|\*))?)*)\s+from\s+(['"])(.*?)\2;?\s*$`,
)

// ParseImportLine decomposes a single logical import line (already
// stripped of its leading comment marker and surrounding whitespace) into
// an ImportDirective. It fails when the line doesn't match the grammar,
// when the path is empty, or when the explicit name list is empty.
func ParseImportLine(line string) (ImportDirective, error) {
	line = strings.TrimSpace(line)

	m := importLinePattern.FindStringSubmatch(line)
	if m == nil {
		return ImportDirective{}, newSchemaError(MalformedImport, "malformed import directive: %q", line)
	}

	namesPart, path := m[1], m[3]
	if path == "" {
		return ImportDirective{}, newSchemaError(MalformedImport, "malformed import directive: empty source path in %q", line)
	}

	if namesPart == "*" {
		return ImportDirective{Imports: []string{"*"}, From: path}, nil
	}

	var names []string
	for _, raw := range strings.Split(namesPart, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return ImportDirective{}, newSchemaError(MalformedImport, "malformed import directive: empty name list in %q", line)
	}

	return ImportDirective{Imports: names, From: path}, nil
}
