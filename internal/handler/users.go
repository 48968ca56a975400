package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/service"
)

// UserHandler serves the /api/users endpoints.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to fetch users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, errSpec{
			conflict:       "Email already exists",
			conflictStatus: http.StatusBadRequest,
			fallback:       "Failed to create user",
		})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/users.
func (h *UserHandler) Update(c *gin.Context) {
	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	user, err := h.users.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, errSpec{
			notFound:       "User not found",
			conflict:       "Email already exists",
			conflictStatus: http.StatusBadRequest,
			fallback:       "Failed to update user",
		})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users?id=.
func (h *UserHandler) Delete(c *gin.Context) {
	err := h.users.Delete(c.Request.Context(), c.Query("id"))
	if err != nil {
		respondError(c, err, errSpec{
			notFound:       "User not found",
			conflict:       "Failed to delete user. Make sure they have no debts.",
			conflictStatus: http.StatusInternalServerError,
			fallback:       "Failed to delete user",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
