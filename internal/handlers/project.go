package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/trackr/internal/middleware"
	"github.com/monocle-dev/trackr/internal/services"
	"github.com/monocle-dev/trackr/internal/utils"
)

func (h *Handler) CreateProject(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	var body services.CreateProjectInput
	if !h.bind(ctx, &body) {
		return
	}

	project, err := h.services.Projects.Create(ctx.Request.Context(), identity, body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	projects, err := h.services.Projects.ListForOwner(ctx.Request.Context(), identity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

func (h *Handler) GetProject(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	projectID, err := utils.GetIDParam(ctx, "Project")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	project, err := h.services.Projects.Get(ctx.Request.Context(), identity, projectID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	projectID, err := utils.GetIDParam(ctx, "Project")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var body services.UpdateProjectInput
	if !h.bind(ctx, &body) {
		return
	}

	project, err := h.services.Projects.Update(ctx.Request.Context(), identity, projectID, body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	projectID, err := utils.GetIDParam(ctx, "Project")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	result, err := h.services.Projects.Delete(ctx.Request.Context(), identity, projectID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	middleware.RecordCascade(1, result.DeletedIssues, result.DeletedNotes)
	utils.Success(ctx, http.StatusOK, "Project deleted", result)
}
