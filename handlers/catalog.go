package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"streamify/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the browse surface. Every endpoint here responds 200
// with real or fallback data; upstream trouble never surfaces as an error to
// the browse screens.
type CatalogHandler struct {
	Service catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// HomeFeedHandler handles GET /catalog/home.
func (h *CatalogHandler) HomeFeedHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.HomeFeed(c.Request.Context()))
}

// FeaturedMovieHandler handles GET /catalog/featured.
func (h *CatalogHandler) FeaturedMovieHandler(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.FeaturedMovie())
}

// MovieDetailHandler handles GET /catalog/movies/:id.
func (h *CatalogHandler) MovieDetailHandler(c *gin.Context) {
	logger := getLogger(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie id"})
		return
	}

	detail, err := h.Service.MovieDetail(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to load movie detail", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load movie"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// SearchMoviesHandler handles GET /catalog/search?q=.
func (h *CatalogHandler) SearchMoviesHandler(c *gin.Context) {
	logger := getLogger(c)

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}

	results, err := h.Service.Search(c.Request.Context(), query)
	if err != nil {
		logger.Error("Search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
