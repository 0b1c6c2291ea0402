// Package controllers handles HTTP request handling
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genius/elearning/internal/app/models/dto"
	"github.com/genius/elearning/internal/middleware"
	"github.com/genius/elearning/internal/pkg/export"
	"github.com/genius/elearning/internal/pkg/helpers"
	"github.com/genius/elearning/internal/pkg/logger"
)

// pathID parses a numeric path parameter and answers 400 when it is malformed
func pathID(ctx *gin.Context, name, label string) (int64, bool) {
	id, ok := helpers.ParseID(ctx, name)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID").
			WithField(name).
			WithDetails("ID must be a positive number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// queryID reads an optional numeric filter and answers 400 when it is malformed
func queryID(ctx *gin.Context, key string) (*int64, bool) {
	id, ok := helpers.OptionalInt64Query(ctx, key)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+key).
			WithField(key).
			WithDetails("Must be a positive number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return id, true
}

// requireUserID returns the caller's ID. The routes using it sit behind JWTAuth.
func requireUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseForStatus(http.StatusUnauthorized, errorDetail))
		return 0, false
	}
	return userID, true
}

// sendWorkbook streams sheet as an .xlsx attachment
func sendWorkbook(ctx *gin.Context, sheet export.Sheet, filename string) {
	ctx.Header("Content-Type", export.ContentType)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Status(http.StatusOK)
	if err := sheet.Write(ctx.Writer); err != nil {
		log := logger.FromContext(ctx.Request.Context())
		log.Error().Err(err).Str("file", filename).Msg("Failed to write workbook")
	}
}
