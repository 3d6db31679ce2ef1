package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/trackr/internal/middleware"
	"github.com/monocle-dev/trackr/internal/services"
	"github.com/monocle-dev/trackr/internal/utils"
)

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

func (h *Handler) Signup(ctx *gin.Context) {
	var body services.SignupInput
	if !h.bind(ctx, &body) {
		return
	}

	result, err := h.services.Accounts.Signup(ctx.Request.Context(), body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.logger.Info().Str("user_id", result.User.ID.String()).Msg("account created")
	ctx.JSON(http.StatusOK, result)
}

func (h *Handler) Signin(ctx *gin.Context) {
	var body services.SigninInput
	if !h.bind(ctx, &body) {
		return
	}

	result, err := h.services.Accounts.Signin(ctx.Request.Context(), body)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *Handler) Profile(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	user, err := h.services.Accounts.Profile(ctx.Request.Context(), identity)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteAccount(ctx *gin.Context) {
	identity, ok := h.identity(ctx)
	if !ok {
		return
	}

	var body DeleteAccountRequest
	if !h.bind(ctx, &body) {
		return
	}

	result, err := h.services.Accounts.DeleteAccount(ctx.Request.Context(), identity, body.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	middleware.RecordCascade(result.DeletedProjects, result.DeletedIssues, result.DeletedNotes)
	h.logger.Info().Str("user_id", identity.UserID.String()).Msg("account deleted")
	utils.Success(ctx, http.StatusOK, "Account deleted", result)
}
