package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/service"
)

// RestaurantHandler serves the /api/restaurants endpoints.
type RestaurantHandler struct {
	restaurants *service.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler.
func NewRestaurantHandler(restaurants *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurants: restaurants}
}

// List handles GET /api/restaurants.
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.restaurants.List(c.Request.Context())
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to fetch restaurants"})
		return
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	c.JSON(http.StatusOK, restaurants)
}

// Create handles POST /api/restaurants.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req service.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	restaurant, err := h.restaurants.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// Update handles PUT /api/restaurants.
func (h *RestaurantHandler) Update(c *gin.Context) {
	var req service.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	restaurant, err := h.restaurants.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, errSpec{
			notFound: "Restaurant not found",
			fallback: "Failed to update restaurant",
		})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Delete handles DELETE /api/restaurants?id=.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	err := h.restaurants.Delete(c.Request.Context(), c.Query("id"))
	if err != nil {
		respondError(c, err, errSpec{
			notFound:       "Restaurant not found",
			conflict:       "Failed to delete restaurant. Make sure it has no menu items.",
			conflictStatus: http.StatusInternalServerError,
			fallback:       "Failed to delete restaurant",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
