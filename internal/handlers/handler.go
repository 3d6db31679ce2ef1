package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/monocle-dev/trackr/internal/apperrors"
	"github.com/monocle-dev/trackr/internal/repository"
	"github.com/monocle-dev/trackr/internal/services"
	"github.com/monocle-dev/trackr/internal/types"
	"github.com/monocle-dev/trackr/internal/utils"
	"github.com/rs/zerolog"
)

type Handler struct {
	services *services.Services
	store    repository.Store
	logger   zerolog.Logger
}

func New(svc *services.Services, store repository.Store, logger zerolog.Logger) *Handler {
	return &Handler{services: svc, store: store, logger: logger}
}

func (h *Handler) identity(ctx *gin.Context) (types.Identity, bool) {
	identity, err := utils.GetCurrentIdentity(ctx)

	if err != nil {
		utils.FailMsg(ctx, http.StatusUnauthorized, apperrors.MsgUnauthorized)
		return types.Identity{}, false
	}

	return identity, true
}

// bind decodes the JSON body. A body that cannot be decoded is a validation
// failure, not a server error.
func (h *Handler) bind(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		h.logger.Debug().Err(err).Str("path", ctx.FullPath()).Msg("invalid request body")
		utils.FailMsg(ctx, http.StatusUnprocessableEntity, "Invalid request body")
		return false
	}

	return true
}

// respondError maps the error taxonomy onto a status code and the failed
// envelope. Causes are logged and never sent to the client.
func (h *Handler) respondError(ctx *gin.Context, err error) {
	var fieldErrs apperrors.ValidationErrors
	if errors.As(err, &fieldErrs) {
		items := make([]utils.ErrorItem, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			items = append(items, utils.ErrorItem{Msg: fe.Msg, Param: fe.Field})
		}
		utils.Fail(ctx, http.StatusUnprocessableEntity, items...)
		return
	}

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		h.logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("unexpected error")
		utils.FailMsg(ctx, http.StatusInternalServerError, apperrors.MsgInternal)
		return
	}

	switch appErr.Kind {
	case apperrors.KindValidation:
		utils.Fail(ctx, http.StatusUnprocessableEntity, utils.ErrorItem{Msg: appErr.Msg, Param: appErr.Field})
	case apperrors.KindNotFound:
		utils.FailMsg(ctx, http.StatusNotFound, appErr.Msg)
	case apperrors.KindUnauthorized:
		utils.FailMsg(ctx, http.StatusUnauthorized, appErr.Msg)
	default:
		h.logger.Error().Err(err).Str("kind", appErr.Kind.String()).Str("path", ctx.FullPath()).Msg("request failed")
		utils.FailMsg(ctx, http.StatusInternalServerError, apperrors.MsgInternal)
	}
}
