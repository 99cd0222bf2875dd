// Package graphql provides the GraphQL transport layer for the catalog backend.
// It defines the GraphQL schema, resolvers, and error handling for product
// queries that merge catalog records with live inventory data. The executable
// schema is generated via gqlgen from the schema files.
package graphql

//go:generate go run github.com/99designs/gqlgen generate --config ../../../gqlgen.yml
