package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AdminListUsers(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	users, err := h.services.Accounts.ListUsers(ctx.Request.Context(), identity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (h *Handler) AdminListProjects(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	projects, err := h.services.Projects.ListAll(ctx.Request.Context(), identity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}
