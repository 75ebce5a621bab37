// Package schemaimport bundles a modular GraphQL SDL corpus into a single
// self-contained schema document.
//
// Authors split a schema across files and declare inter-file dependencies
// with comment-form import directives:
//
//	# import User, Query.posts from "user.graphql"
//	# import * from "shared.graphql"
//
// ImportSchema resolves those imports transitively, merges root operation
// types field-wise, and closes the resulting type graph so that every
// referenced name is itself present and nothing unrelated leaks through.
package schemaimport
