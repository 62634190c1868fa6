package item

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/api"
	"shareit/internal/apperr"
	"shareit/internal/identity"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Add godoc
// @Summary Add an item
// @Description Registers a new shareable item for the calling user
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param item body CreateItemRequest true "Item payload"
// @Success 201 {object} Item
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /items [post]
func (h *Handler) Add(c *gin.Context) {
	userID, _ := identity.UserID(c)

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindingError(err)})
		return
	}

	created, err := h.service.Add(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update an item
// @Description Partially updates an item; only the owner may do this
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param itemId path int true "Item id"
// @Param item body UpdateItemRequest true "Fields to change"
// @Success 200 {object} Item
// @Failure 403 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /items/{itemId} [patch]
func (h *Handler) Update(c *gin.Context) {
	userID, _ := identity.UserID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid item id"})
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindingError(err)})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, itemID, req)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Get godoc
// @Summary Get an item
// @Description Returns an item with comments; booking summaries are included for the owner
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param itemId path int true "Item id"
// @Success 200 {object} View
// @Failure 404 {object} api.ErrorResponse
// @Router /items/{itemId} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, _ := identity.UserID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid item id"})
		return
	}

	view, err := h.service.GetByID(c.Request.Context(), itemID, userID)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, view)
}

// List godoc
// @Summary List own items
// @Description Returns the calling user's items with comments and booking summaries
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} View
// @Failure 400 {object} api.ErrorResponse
// @Router /items [get]
func (h *Handler) List(c *gin.Context) {
	userID, _ := identity.UserID(c)

	from, size, err := pageParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindingError(err)})
		return
	}

	views, err := h.service.ListByOwner(c.Request.Context(), userID, from, size)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, views)
}

// Search godoc
// @Summary Search available items
// @Description Case-insensitive substring search over name and description of available items
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param text query string true "Search text"
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} Item
// @Failure 400 {object} api.ErrorResponse
// @Router /items/search [get]
func (h *Handler) Search(c *gin.Context) {
	from, size, err := pageParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindingError(err)})
		return
	}

	items, err := h.service.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, items)
}

// Delete godoc
// @Summary Delete an item
// @Description Removes an item; only the owner may do this
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param itemId path int true "Item id"
// @Success 200 {object} api.MessageResponse
// @Failure 403 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /items/{itemId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID, _ := identity.UserID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid item id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, itemID); err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "item deleted"})
}

// AddComment godoc
// @Summary Comment on an item
// @Description Adds a comment; the author must have a finished approved booking of the item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param itemId path int true "Item id"
// @Param comment body CreateCommentRequest true "Comment payload"
// @Success 201 {object} CommentView
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /items/{itemId}/comment [post]
func (h *Handler) AddComment(c *gin.Context) {
	userID, _ := identity.UserID(c)

	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid item id"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindingError(err)})
		return
	}

	created, err := h.service.AddComment(c.Request.Context(), userID, itemID, req)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func pageParams(c *gin.Context) (int, int, error) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		return 0, 0, err
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		return 0, 0, err
	}
	return from, size, nil
}
