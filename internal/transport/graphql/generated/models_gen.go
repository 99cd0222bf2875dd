// Code generated by github.com/99designs/gqlgen, DO NOT EDIT.

package generated

type Mutation struct {
}

type Query struct {
}
