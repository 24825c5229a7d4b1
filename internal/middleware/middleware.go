package middleware

import "net/http"

type Middleware func(http.Handler) http.Handler

// Chain composes mws into a single Middleware. The first one listed is the
// outermost: it sees the request first and the response last.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}
}
