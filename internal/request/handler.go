package request

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
// @Summary Create an item request
// @Description Posts a request describing an item the user would like to borrow
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param request body CreateRequest true "Request payload"
// @Success 201 {object} View
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /requests [post]
func (h *Handler) Add(c *gin.Context) {
	userID, _ := identity.UserID(c)

	var req CreateRequest
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

// ListOwn godoc
// @Summary List own requests
// @Description Returns the calling user's requests, newest first, with answering items
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Success 200 {array} View
// @Failure 404 {object} api.ErrorResponse
// @Router /requests [get]
func (h *Handler) ListOwn(c *gin.Context) {
	userID, _ := identity.UserID(c)

	views, err := h.service.ListOwn(c.Request.Context(), userID)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, views)
}

// ListOthers godoc
// @Summary Browse other users' requests
// @Description Returns requests posted by other users, newest first
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} View
// @Failure 400 {object} api.ErrorResponse
// @Router /requests/all [get]
func (h *Handler) ListOthers(c *gin.Context) {
	userID, _ := identity.UserID(c)

	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid from parameter"})
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid size parameter"})
		return
	}

	views, err := h.service.ListOthers(c.Request.Context(), userID, from, size)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, views)
}

// Get godoc
// @Summary Get a request
// @Description Returns one request with the items offered in answer to it
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param requestId path int true "Request id"
// @Success 200 {object} View
// @Failure 404 {object} api.ErrorResponse
// @Router /requests/{requestId} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, _ := identity.UserID(c)

	requestID, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request id"})
		return
	}

	view, err := h.service.GetByID(c.Request.Context(), requestID, userID)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, view)
}
