package user

import (
	"net/http"
	"strconv"

	"shareit/internal/api"
	"shareit/internal/apperr"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary      Register user
// @Description  Creates a new user. Email must be unique.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      CreateUserRequest  true  "User data"
// @Success      201      {object}  User
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /users [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindingError(err)})
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusCreated, u)
}

// Get godoc
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  User
// @Failure      404     {object}  api.ErrorResponse
// @Router       /users/{userId} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, u)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  User
// @Router       /users [get]
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, users)
}

// Update godoc
// @Summary      Update user
// @Description  Partial update: only fields present in the body are changed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userId   path      int                true  "User ID"
// @Param        request  body      UpdateUserRequest  true  "Fields to change"
// @Success      200      {object}  User
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /users/{userId} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.BindingError(err)})
		return
	}

	u, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, u)
}

// Delete godoc
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  api.MessageResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /users/{userId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apperr.Status(err), api.ErrorResponse{Error: apperr.Message(err)})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "user deleted"})
}
