package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNilFetcher          = errors.New("fetcher cannot be nil")
	ErrInvalidCatalogLimit = errors.New("catalog limit must be positive")
)

type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func errorResponse(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, APIError{Error: message})
}

func errorWithDetails(ctx *gin.Context, status int, message string, details string) {
	ctx.JSON(status, APIError{Error: message, Details: details})
}

func badRequest(ctx *gin.Context, message string) {
	errorResponse(ctx, http.StatusBadRequest, message)
}

func notFound(ctx *gin.Context, message string) {
	errorResponse(ctx, http.StatusNotFound, message)
}

func badGateway(ctx *gin.Context, message string, details string) {
	errorWithDetails(ctx, http.StatusBadGateway, message, details)
}
