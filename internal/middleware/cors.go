package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets browser renderers on any origin drive the game API.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Request-ID"},
	}
	return cors.New(options).Handler
}
