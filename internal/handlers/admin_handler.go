package handlers

import (
	"errors"
	"net/http"

	"menu_orders/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type deleteRestaurantRequest struct {
	RestaurantID uint `json:"restaurantId"`
}

type deleteUserRequest struct {
	UserID uint `json:"userId"`
}

type transferOwnershipRequest struct {
	RestaurantID uint `json:"restaurantId"`
	NewOwnerID   uint `json:"newOwnerId"`
}

// DeleteRestaurant collapses every failure class to 400, authorization
// included.
func (h *AdminHandler) DeleteRestaurant(c *gin.Context) {
	var req deleteRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RestaurantID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurantId is required"})
		return
	}

	message, err := h.adminService.DeleteRestaurant(bearerToken(c), req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	var req deleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	message, err := h.adminService.DeleteUser(bearerToken(c), req.UserID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func (h *AdminHandler) TransferOwnership(c *gin.Context) {
	var req transferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RestaurantID == 0 || req.NewOwnerID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "restaurantId and newOwnerId are required"})
		return
	}

	restaurant, message, err := h.adminService.TransferOwnership(bearerToken(c), req.RestaurantID, req.NewOwnerID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "restaurant": restaurant})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
