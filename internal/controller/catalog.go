package controller

import (
	"net/http"
	"strconv"
	"strings"

	"cryptoquote/pkg/types/quotes"

	"github.com/gin-gonic/gin"
)

type CatalogResponse struct {
	ReferenceCurrency string                `json:"reference_currency"`
	Entries           []quotes.CatalogEntry `json:"entries"`
}

// ListCatalog godoc
// @Summary List top cryptocurrencies
// @Description Top cryptocurrencies by market capitalization, in provider order
// @Tags catalog
// @Produce json
// @Param limit query int false "Number of entries (defaults to the configured limit)"
// @Param tsym query string false "Reference currency (defaults to the configured one)"
// @Success 200 {object} CatalogResponse
// @Failure 400 {object} APIError
// @Failure 502 {object} APIError
// @Router /api/catalog [get]
func (c *Controller) ListCatalog(ctx *gin.Context) {
	limit := c.catalogLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest(ctx, "limit must be a positive integer")
			return
		}
		limit = n
	}

	tsym := c.referenceCurrency
	if raw := strings.TrimSpace(ctx.Query("tsym")); raw != "" {
		tsym = strings.ToUpper(raw)
	}

	entries, err := c.fetcher.FetchCatalog(ctx.Request.Context(), limit, tsym)
	if err != nil {
		c.logger.Error("failed to fetch cryptocurrencies", "error", err)
		badGateway(ctx, "failed to fetch cryptocurrencies", err.Error())
		return
	}
	if entries == nil {
		entries = []quotes.CatalogEntry{}
	}

	ctx.JSON(http.StatusOK, CatalogResponse{ReferenceCurrency: tsym, Entries: entries})
}
