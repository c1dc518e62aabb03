package api

import (
	"context"
	"net/http"

	reqdto "villa-booking/internal/handler/dto/request"
	resdto "villa-booking/internal/handler/dto/response"
	"villa-booking/internal/handler/httperr"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	commands commands.GalleryCommands
	queries  queries.GalleryQueries
}

func NewGalleryHandler(galleryCommands commands.GalleryCommands, galleryQueries queries.GalleryQueries) *GalleryHandler {
	return &GalleryHandler{
		commands: galleryCommands,
		queries:  galleryQueries,
	}
}

// @Summary List gallery
// @Tags gallery
// @Produce json
// @Param limit query int false "Maximum number of items"
// @Success 200 {array} resdto.GalleryItemResponse
// @Router /gallery [get]
func (h *GalleryHandler) ListPublic(c *gin.Context) {
	h.list(c, h.queries.ListActive)
}

// @Summary List all gallery items
// @Tags admin-gallery
// @Security CookieAuth
// @Produce json
// @Param limit query int false "Maximum number of items"
// @Success 200 {array} resdto.GalleryItemResponse
// @Router /admin/gallery [get]
func (h *GalleryHandler) ListAdmin(c *gin.Context) {
	h.list(c, h.queries.ListAll)
}

func (h *GalleryHandler) list(c *gin.Context, load func(ctx context.Context, limit int) ([]*queries.GalleryItemView, error)) {
	var q reqdto.LimitQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid query parameters")
		return
	}

	items, err := load(c.Request.Context(), q.Limit)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to list gallery")
		return
	}

	c.JSON(http.StatusOK, resdto.FromGalleryItems(items))
}

// @Summary Create gallery item
// @Tags admin-gallery
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body reqdto.GalleryRequest true "Gallery item"
// @Success 201 {object} resdto.GalleryItemResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/gallery [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	var req reqdto.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to create gallery item")
		return
	}

	item, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get gallery item")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGalleryItem(item))
}

// @Summary Update gallery item
// @Tags admin-gallery
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param id path string true "Gallery item ID"
// @Param request body reqdto.GalleryRequest true "Gallery item"
// @Success 200 {object} resdto.GalleryItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/{id} [put]
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid gallery item ID")
	if !ok {
		return
	}

	var req reqdto.GalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request")
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req); err != nil {
		abortWithUsecaseError(c, err, "Failed to update gallery item")
		return
	}

	item, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to get gallery item")
		return
	}

	c.JSON(http.StatusOK, resdto.FromGalleryItem(item))
}

// @Summary Toggle gallery item visibility
// @Tags admin-gallery
// @Security CookieAuth
// @Produce json
// @Param id path string true "Gallery item ID"
// @Success 200 {object} resdto.GalleryToggleResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/{id}/toggle [patch]
func (h *GalleryHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c, "Invalid gallery item ID")
	if !ok {
		return
	}

	active, err := h.commands.Toggle(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err, "Failed to toggle gallery item")
		return
	}

	c.JSON(http.StatusOK, resdto.GalleryToggleResponse{ID: id, IsActive: active})
}

// @Summary Delete gallery item
// @Tags admin-gallery
// @Security CookieAuth
// @Param id path string true "Gallery item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid gallery item ID")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err, "Failed to delete gallery item")
		return
	}

	c.Status(http.StatusNoContent)
}
