package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmynk/lunchledger/internal/models"
	"github.com/mmynk/lunchledger/internal/service"
)

// MenuItemHandler serves the /api/menu-items endpoints.
type MenuItemHandler struct {
	items       *service.MenuItemService
	restaurants *service.RestaurantService
}

// NewMenuItemHandler creates a new MenuItemHandler. The restaurant service
// is needed because the list endpoint also returns the restaurants the
// entry form offers.
func NewMenuItemHandler(items *service.MenuItemService, restaurants *service.RestaurantService) *MenuItemHandler {
	return &MenuItemHandler{items: items, restaurants: restaurants}
}

// List handles GET /api/menu-items. The response carries both the menu
// items and the restaurants so the entry form can populate its selector in
// one round trip.
func (h *MenuItemHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.items.List(ctx)
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to fetch menu items"})
		return
	}
	restaurants, err := h.restaurants.List(ctx)
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to fetch menu items"})
		return
	}

	if items == nil {
		items = []models.MenuItem{}
	}
	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}
	c.JSON(http.StatusOK, gin.H{"menuItems": items, "restaurants": restaurants})
}

// Create handles POST /api/menu-items.
func (h *MenuItemHandler) Create(c *gin.Context) {
	var req service.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	item, err := h.items.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, errSpec{fallback: "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /api/menu-items.
func (h *MenuItemHandler) Update(c *gin.Context) {
	var req service.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	item, err := h.items.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, errSpec{
			notFound: "Menu item not found",
			fallback: "Failed to update menu item",
		})
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/menu-items?id=.
func (h *MenuItemHandler) Delete(c *gin.Context) {
	err := h.items.Delete(c.Request.Context(), c.Query("id"))
	if err != nil {
		respondError(c, err, errSpec{
			notFound:       "Menu item not found",
			conflict:       "Failed to delete menu item. Make sure it has no debts.",
			conflictStatus: http.StatusInternalServerError,
			fallback:       "Failed to delete menu item",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
