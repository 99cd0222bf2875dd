package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes the /query stack. The first middleware is the outermost:
// Chain(Metrics, Recovery)(h) runs Metrics, then Recovery, then h.
// Nil entries are skipped so optional layers such as the rate limiter can
// be listed in place and switched off by configuration.
func Chain(mws ...Middleware) Middleware {
	active := make([]Middleware, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			active = append(active, mw)
		}
	}

	return func(final http.Handler) http.Handler {
		for i := len(active) - 1; i >= 0; i-- {
			final = active[i](final)
		}
		return final
	}
}
