package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// SecureHeaders applies the standard hardening headers.
func SecureHeaders(development bool) gin.HandlerFunc {
	s := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		IsDevelopment:      development,
	})

	return func(ctx *gin.Context) {
		if err := s.Process(ctx.Writer, ctx.Request); err != nil {
			ctx.Abort()
			return
		}

		// Process may have written a redirect.
		if status := ctx.Writer.Status(); status > 300 && status < 399 {
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
