package schemaimport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemResolverRelativePath(t *testing.T) {
	dir := t.TempDir()
	aPath := filepath.Join(dir, "a.graphql")
	bPath := filepath.Join(dir, "b.graphql")
	require.NoError(t, os.WriteFile(bPath, []byte("type B { x: String }"), 0o644))

	r := &FilesystemResolver{}
	src, err := r.Resolve(aPath, "b.graphql")
	require.NoError(t, err)
	assert.Equal(t, bPath, src.Key)
	assert.Equal(t, "type B { x: String }", src.Text)
}

func TestFilesystemResolverModuleLookupFallback(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "pkg", "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	modulesDir := filepath.Join(root, moduleLookupDir)
	require.NoError(t, os.MkdirAll(modulesDir, 0o755))
	sharedPath := filepath.Join(modulesDir, "shared.graphql")
	require.NoError(t, os.WriteFile(sharedPath, []byte("type Shared { id: ID }"), 0o644))

	currentKey := filepath.Join(nested, "current.graphql")

	r := &FilesystemResolver{}
	src, err := r.Resolve(currentKey, "shared.graphql")
	require.NoError(t, err)
	assert.Equal(t, sharedPath, src.Key)
	assert.Equal(t, "type Shared { id: ID }", src.Text)
}

func TestFilesystemResolverMissingPath(t *testing.T) {
	dir := t.TempDir()
	currentKey := filepath.Join(dir, "current.graphql")

	r := &FilesystemResolver{}
	_, err := r.Resolve(currentKey, "missing.graphql")
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, SourceReadFailure, schemaErr.Kind)
}

func TestFilesystemResolverLogicalSource(t *testing.T) {
	r := &FilesystemResolver{Logical: map[string]string{
		"shared": "type Shared { id: ID }",
	}}

	src, err := r.Resolve("<inline>", "shared")
	require.NoError(t, err)
	assert.Equal(t, "shared", src.Key)
	assert.Equal(t, "type Shared { id: ID }", src.Text)

	_, err = r.Resolve("<inline>", "unregistered")
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, SourceReadFailure, schemaErr.Kind)
}
