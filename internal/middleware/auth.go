package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/types"
	"github.com/monocle-dev/trackr/internal/utils"
)

// LegacyTokenHeader is the header older web clients send.
const LegacyTokenHeader = "x-auth-token"

type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// AuthMiddleware resolves the bearer credential into a types.Identity.
func AuthMiddleware(verifier TokenVerifier, store repository.Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := extractToken(ctx)

		if !ok {
			utils.FailMsg(ctx, http.StatusUnauthorized, "No Authorization Token Found")
			return
		}

		userID, err := verifier.Verify(tokenString)

		if err != nil {
			utils.FailMsg(ctx, http.StatusUnauthorized, "Invalid Authorization Token")
			return
		}

		user, err := store.Users().FindByID(ctx.Request.Context(), userID)

		if err != nil {
			utils.FailMsg(ctx, http.StatusUnauthorized, "Authorization Token not valid")
			return
		}

		utils.SetCurrentIdentity(ctx, types.Identity{
			UserID:  user.ID,
			IsAdmin: user.IsAdminUser,
		})
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) (string, bool) {
	if authHeader := ctx.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", false
		}

		return strings.TrimSpace(parts[1]), true
	}

	if token := strings.TrimSpace(ctx.GetHeader(LegacyTokenHeader)); token != "" {
		return token, true
	}

	return "", false
}
