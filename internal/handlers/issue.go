package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/trackr/internal/services"
	"github.com/monocle-dev/trackr/internal/utils"
)

type SetStatusRequest struct {
	Status *int `json:"status"`
}

// CreateIssue handles POST /issue/:id where :id names the parent project.
func (h *Handler) CreateIssue(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	projectID, err := utils.GetIDParam(ctx, "Project")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var body services.CreateIssueInput
	if !h.bind(ctx, &body) {
		return
	}

	issue, err := h.services.Issues.Create(ctx.Request.Context(), identity, projectID, body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, issue)
}

func (h *Handler) ListIssues(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	projectID, err := utils.GetIDParam(ctx, "Project")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	issues, err := h.services.Issues.ListForProject(ctx.Request.Context(), identity, projectID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, issues)
}

func (h *Handler) UpdateIssue(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	issueID, err := utils.GetIDParam(ctx, "Issue")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var body services.UpdateIssueInput
	if !h.bind(ctx, &body) {
		return
	}

	issue, err := h.services.Issues.Update(ctx.Request.Context(), identity, issueID, body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, issue)
}

func (h *Handler) SetIssueStatus(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	issueID, err := utils.GetIDParam(ctx, "Issue")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var body SetStatusRequest
	if !h.bind(ctx, &body) {
		return
	}

	if body.Status == nil {
		utils.Fail(ctx, http.StatusUnprocessableEntity, utils.ErrorItem{Msg: "Status is required", Param: "status"})
		return
	}

	issue, err := h.services.Issues.SetStatus(ctx.Request.Context(), identity, issueID, *body.Status)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, issue)
}

func (h *Handler) DeleteIssue(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	issueID, err := utils.GetIDParam(ctx, "Issue")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if err := h.services.Issues.Delete(ctx.Request.Context(), identity, issueID); err != nil {
		h.respondError(ctx, err)
		return
	}

	utils.Success(ctx, http.StatusOK, "Issue deleted", nil)
}
