package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/trackr/internal/types"
)

func GetCurrentIdentity(ctx *gin.Context) (types.Identity, error) {
	value, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return types.Identity{}, fmt.Errorf("User not authenticated")
	}

	identity, ok := value.(types.Identity)

	if !ok || identity.Anonymous() {
		return types.Identity{}, fmt.Errorf("Invalid user type in context")
	}

	return identity, nil
}

func SetCurrentIdentity(ctx *gin.Context, identity types.Identity) {
	ctx.Set(types.ContextUserKey, identity)
}
