package utils

import (
	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type ErrorItem struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

type ErrorResponse struct {
	Status string      `json:"status"`
	Errors []ErrorItem `json:"errors"`
}

type MessageResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Fail aborts the request with the failed envelope.
func Fail(ctx *gin.Context, code int, items ...ErrorItem) {
	ctx.AbortWithStatusJSON(code, ErrorResponse{Status: StatusFailed, Errors: items})
}

func FailMsg(ctx *gin.Context, code int, msg string) {
	Fail(ctx, code, ErrorItem{Msg: msg})
}

func Success(ctx *gin.Context, code int, message string, details interface{}) {
	ctx.JSON(code, MessageResponse{Status: StatusSuccess, Message: message, Details: details})
}
