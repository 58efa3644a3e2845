package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that gzips responses for clients that
// accept it. Prometheus scrapes are left alone since the handler negotiates
// its own encoding.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"}))
}
