package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/trackr/internal/services"
	"github.com/monocle-dev/trackr/internal/utils"
)

func (h *Handler) CreateNote(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	projectID, err := utils.GetIDParam(ctx, "Project")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var body services.NoteInput
	if !h.bind(ctx, &body) {
		return
	}

	note, err := h.services.Notes.Create(ctx.Request.Context(), identity, projectID, body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, note)
}

func (h *Handler) ListNotes(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	projectID, err := utils.GetIDParam(ctx, "Project")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	notes, err := h.services.Notes.ListForProject(ctx.Request.Context(), identity, projectID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, notes)
}

func (h *Handler) UpdateNote(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	noteID, err := utils.GetIDParam(ctx, "Note")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	var body services.NoteInput
	if !h.bind(ctx, &body) {
		return
	}

	note, err := h.services.Notes.Update(ctx.Request.Context(), identity, noteID, body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, note)
}

func (h *Handler) DeleteNote(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	noteID, err := utils.GetIDParam(ctx, "Note")
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	if err := h.services.Notes.Delete(ctx.Request.Context(), identity, noteID); err != nil {
		h.respondError(ctx, err)
		return
	}

	utils.Success(ctx, http.StatusOK, "Note deleted", nil)
}
