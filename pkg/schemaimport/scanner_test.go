package schemaimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanImportDirectives(t *testing.T) {
	sdl := `
# import B from "b"
#import C from "c"
# this is just a comment
# import * from "shared"
type A {
  b: B
}
`
	got, err := ScanImportDirectives(sdl)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ImportDirective{Imports: []string{"B"}, From: "b"}, got[0])
	assert.Equal(t, ImportDirective{Imports: []string{"C"}, From: "c"}, got[1])
	assert.Equal(t, ImportDirective{Imports: []string{"*"}, From: "shared"}, got[2])
}

func TestScanImportDirectivesPropagatesParseErrors(t *testing.T) {
	sdl := `# import from "x"
type A { id: ID }`
	_, err := ScanImportDirectives(sdl)
	require.Error(t, err)
}

func TestIsEffectivelyEmptySDL(t *testing.T) {
	assert.True(t, isEffectivelyEmptySDL(""))
	assert.True(t, isEffectivelyEmptySDL("\n\n  \n"))
	assert.True(t, isEffectivelyEmptySDL("# import A from \"x\"\n# just a comment\n"))
	assert.False(t, isEffectivelyEmptySDL("type A { id: ID }"))
}
