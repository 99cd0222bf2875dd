// Package generated holds the gqlgen executable schema for the catalog API.
// generated.go is produced by `go generate ./internal/transport/graphql/...`
// from gqlgen.yml and the schema files.
package generated
