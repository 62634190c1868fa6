package booking

import (
	"context"
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

// Create godoc
// @Summary Request a booking
// @Description Creates a booking of an item; the booking starts in WAITING status
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param booking body CreateBookingRequest true "Booking payload"
// @Success 201 {object} View
// @Failure 400 {object} api.ErrorResponse
// @Failure 403 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /bookings [post]
func (h *Handler) Create(c *gin.Context) {
	userID, _ := identity.UserID(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindingError(err)})
		return
	}

	view, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// Decide godoc
// @Summary Approve or reject a booking
// @Description One-shot decision by the item's owner on a WAITING booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param bookingId path int true "Booking id"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} View
// @Failure 403 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Failure 409 {object} api.ErrorResponse
// @Router /bookings/{bookingId} [patch]
func (h *Handler) Decide(c *gin.Context) {
	userID, _ := identity.UserID(c)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid booking id"})
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "approved query parameter required"})
		return
	}

	view, err := h.service.Decide(c.Request.Context(), bookingID, userID, approved)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Get godoc
// @Summary Get a booking
// @Description Returns a booking; visible only to the booker and the item's owner
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param bookingId path int true "Booking id"
// @Success 200 {object} View
// @Failure 403 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /bookings/{bookingId} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, _ := identity.UserID(c)

	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid booking id"})
		return
	}

	view, err := h.service.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListForBooker godoc
// @Summary List own bookings
// @Description Returns the calling user's bookings filtered by state, newest start first
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} View
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /bookings [get]
func (h *Handler) ListForBooker(c *gin.Context) {
	h.list(c, h.service.ListForBooker)
}

// ListForOwner godoc
// @Summary List bookings of own items
// @Description Returns bookings of the calling user's items filtered by state, newest start first
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Acting user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} View
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /bookings/owner [get]
func (h *Handler) ListForOwner(c *gin.Context) {
	h.list(c, h.service.ListForOwner)
}

func (h *Handler) list(c *gin.Context, fetch func(ctx context.Context, userID int64, state string, from, size int) ([]View, error)) {
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

	views, err := fetch(c.Request.Context(), userID, c.DefaultQuery("state", "ALL"), from, size)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, views)
}
