package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/prospera/internal/domain"
)

// ContentHandler handles HTTP requests for the learning catalogue
type ContentHandler struct {
	contentUseCase domain.ContentUseCase
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentUseCase domain.ContentUseCase) *ContentHandler {
	return &ContentHandler{contentUseCase: contentUseCase}
}

// ContentQuery carries the catalogue filters
type ContentQuery struct {
	PageQuery
	ContentType     string `form:"content_type" example:"video"`
	Language        string `form:"language" example:"hi"`
	DifficultyLevel string `form:"difficulty_level" example:"beginner"`
}

// List handles catalogue listing
// @Summary List content
// @Description Active items only, newest first
// @Tags content
// @Produce json
// @Param content_type query string false "Content type"
// @Param language query string false "Language code"
// @Param difficulty_level query string false "Difficulty level"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} domain.FinancialContent
// @Router /api/content [get]
func (h *ContentHandler) List(c *gin.Context) {
	query := ContentQuery{PageQuery: PageQuery{Limit: defaultLimit}}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, bindingError(err))
		return
	}

	items, err := h.contentUseCase.List(c.Request.Context(), domain.ContentFilter{
		ContentType:     query.ContentType,
		Language:        query.Language,
		DifficultyLevel: query.DifficultyLevel,
		Offset:          query.Skip,
		Limit:           query.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, nonNil(items))
}

// Get handles fetching one item
// @Summary Get content
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} domain.FinancialContent
// @Failure 404 {object} domain.ErrorResponse
// @Router /api/content/{id} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.contentUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// Taxonomy handles listing the catalogue taxonomy
// @Summary List content types, languages and difficulty levels
// @Tags content
// @Produce json
// @Success 200 {object} domain.ContentTaxonomy
// @Router /api/content/types/list [get]
func (h *ContentHandler) Taxonomy(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentUseCase.Taxonomy())
}
