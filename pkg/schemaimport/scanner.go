package schemaimport

import "strings"

// ScanImportDirectives scans raw SDL text for import-directive comment
// lines and returns their parsed forms in source order (spec §4.B). A
// line counts as an import directive when, after trimming whitespace, it
// begins with "# import " or "#import " — the space after the keyword is
// required, and the two spellings are equivalent. Other comment lines are
// ignored. The scanner is line-oriented and never touches the AST.
func ScanImportDirectives(sdl string) ([]ImportDirective, error) {
	var directives []ImportDirective

	for _, rawLine := range strings.Split(sdl, "\n") {
		line := strings.TrimSpace(rawLine)
		if !strings.HasPrefix(line, "#") {
			continue
		}

		rest := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if !strings.HasPrefix(rest, "import ") {
			continue
		}

		d, err := ParseImportLine(rest)
		if err != nil {
			return nil, err
		}
		directives = append(directives, d)
	}

	return directives, nil
}

// isEffectivelyEmptySDL reports whether sdl has no non-comment, non-blank
// lines, in which case the source resolver treats it as legal and
// equivalent to an empty AST (spec §4.C.3).
func isEffectivelyEmptySDL(sdl string) bool {
	for _, rawLine := range strings.Split(sdl, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return false
	}
	return true
}
