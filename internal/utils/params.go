package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/monocle-dev/trackr/internal/apperrors"
)

// GetIDParam parses the :id path parameter. An id that cannot exist is
// reported as the entity not being found.
func GetIDParam(ctx *gin.Context, entity string) (uuid.UUID, error) {
	raw := strings.TrimSpace(ctx.Param("id"))

	if raw == "" {
		return uuid.Nil, apperrors.NotFound(entity)
	}

	id, err := uuid.Parse(raw)

	if err != nil {
		return uuid.Nil, apperrors.NotFound(entity)
	}

	return id, nil
}
