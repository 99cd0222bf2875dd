package dataloader

import "net/http"

// Middleware gives every GraphQL request its own loaders, so Product.category
// and Product.ratings lookups are batched within one operation and cached
// results never leak into the next.
func Middleware(repos *Repos, opts ...Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loaders := NewLoaders(repos, opts...)
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), loaders)))
		})
	}
}
