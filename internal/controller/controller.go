package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/anayon/examhub/internal/apperr"
	"github.com/anayon/examhub/internal/dto"
	"github.com/gin-gonic/gin"
)

// RespondError translates the service error taxonomy into HTTP responses.
// Raw storage errors never reach the client.
func RespondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrExamNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperr.ErrUnknownQuestion):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, apperr.ErrDuplicateAttempt):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "You have already taken this exam"})
	case apperr.IsValidation(err):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
	}
}

// ParseIDParam reads a numeric path parameter, responding 400 on bad input.
func ParseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
