package schemaimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runScenario drives the collector/merger/closure pipeline directly
// (bypassing ImportSchema's path-vs-literal heuristic) so a test can pick
// the exact canonical key each source is known by — required for S3's
// cyclic back-reference, where the file that imports the root must
// resolve to the same key the root itself was given.
func runScenario(t *testing.T, rootKey, rootSDL string, logical map[string]string) []Definition {
	t.Helper()

	resolver := &FilesystemResolver{Logical: logical}
	c := newCollector(resolver, nil)
	require.NoError(t, c.collect(rootKey, rootSDL, []string{"*"}, true))

	seed := mergeRoot(c.typeDefinitions)
	pool, err := closeSchema(c.allDefinitions, seed, c.typeDefinitions)
	require.NoError(t, err)
	return pool
}

func poolNames(pool []Definition) []string {
	names := make([]string, len(pool))
	for i, d := range pool {
		names[i] = d.Name
	}
	return names
}

func findDef(t *testing.T, pool []Definition, name string) Definition {
	t.Helper()
	for _, d := range pool {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("definition %q not found in pool %v", name, poolNames(pool))
	return Definition{}
}

func fieldNames(d Definition) []string {
	names := make([]string, len(d.Object.Fields))
	for i, f := range d.Object.Fields {
		names[i] = f.Name
	}
	return names
}

func TestScenarioS1TransitiveFieldTypes(t *testing.T) {
	pool := runScenario(t, "a",
		`# import B from "b"
type A { first: String second: Float b: B }`,
		map[string]string{
			"b": `# import C from "c"
type B { c: C hello: String! }`,
			"c": `type C { id: ID! }`,
		},
	)

	assert.Equal(t, []string{"A", "B", "C"}, poolNames(pool))
	assert.Equal(t, []string{"first", "second", "b"}, fieldNames(findDef(t, pool, "A")))
	assert.Equal(t, []string{"c", "hello"}, fieldNames(findDef(t, pool, "B")))
	assert.Equal(t, []string{"id"}, fieldNames(findDef(t, pool, "C")))
}

func TestScenarioS2UnusedLeafPruned(t *testing.T) {
	pool := runScenario(t, "a",
		`# import B from "b"
type A { b: B }`,
		map[string]string{
			"b": `type B { x: String }
type Unrelated { y: Int }`,
		},
	)

	assert.ElementsMatch(t, []string{"A", "B"}, poolNames(pool))
}

func TestScenarioS3Cycle(t *testing.T) {
	aSDL := `# import B from "b"
type A { first: String b: B }`
	bSDL := `# import A from "a"
type B { hello: String! a: A }`

	// The assertions below only run if collect() returns at all; a
	// regression that breaks processedEdges memoization would hang this
	// test rather than fail it cleanly, which is an acceptable tradeoff
	// for keeping the scenario faithful to spec §8's S3.
	pool := runScenario(t, "a", aSDL, map[string]string{"a": aSDL, "b": bSDL})
	assert.ElementsMatch(t, []string{"A", "B"}, poolNames(pool))
	assert.Equal(t, []string{"first", "b"}, fieldNames(findDef(t, pool, "A")))
	assert.Equal(t, []string{"hello", "a"}, fieldNames(findDef(t, pool, "B")))
}

func TestScenarioS4UnionClosure(t *testing.T) {
	pool := runScenario(t, "a",
		`# import B from "b"
type A { b: B }`,
		map[string]string{
			"b": `# import C1, C2 from "c"
union B = C1 | C2`,
			"c": `type C1 { c1: ID }
type C2 { c2: ID }`,
		},
	)

	assert.Equal(t, []string{"A", "B", "C1", "C2"}, poolNames(pool))
}

func TestScenarioS5InterfaceBackfill(t *testing.T) {
	pool := runScenario(t, "a",
		`# import B from "b"
type A implements B { id: ID! }`,
		map[string]string{
			"b": `interface B { id: ID! }
type B1 implements B { id: ID! }`,
		},
	)

	assert.Equal(t, []string{"A", "B", "B1"}, poolNames(pool))
}

func TestScenarioS6RootFieldMerge(t *testing.T) {
	pool := runScenario(t, "a",
		`# import Query.posts from "b"
# import Query.hello from "c"
type Query { helloA: String }`,
		map[string]string{
			"b": `type Query { posts: [Post] hello: String }
type Post { field1: String }`,
			"c": `type Query { posts: [Post] hello: String }`,
		},
	)

	query := findDef(t, pool, "Query")
	assert.Equal(t, []string{"helloA", "posts", "hello"}, fieldNames(query))
	assert.Contains(t, poolNames(pool), "Post")
}

func TestScenarioS7MissingType(t *testing.T) {
	resolver := &FilesystemResolver{}
	c := newCollector(resolver, nil)
	require.NoError(t, c.collect("a", `type A { post: Post }`, []string{"*"}, true))

	seed := mergeRoot(c.typeDefinitions)
	_, err := closeSchema(c.allDefinitions, seed, c.typeDefinitions)
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, MissingFieldType, schemaErr.Kind)
	assert.Equal(t, "Field post: Couldn't find type Post in any of the schemas.", schemaErr.Error())
}
