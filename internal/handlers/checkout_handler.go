package handlers

import (
	"errors"
	"log"
	"net/http"

	"menu_orders/internal/cart"
	"menu_orders/internal/redis"
	"menu_orders/internal/repository"
	"menu_orders/internal/services"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	redis           *redis.Client
	restaurantRepo  repository.RestaurantRepository
	checkoutService services.CheckoutService
}

func NewCheckoutHandler(redisClient *redis.Client, restaurantRepo repository.RestaurantRepository, checkoutService services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		redis:           redisClient,
		restaurantRepo:  restaurantRepo,
		checkoutService: checkoutService,
	}
}

type checkoutRequest struct {
	RestaurantID uint                  `json:"restaurant_id"`
	Form         services.CheckoutForm `json:"form"`
}

// Submit converts the session's cart into a persisted order. The cart
// snapshot is cleared only after the order is stored; internal failures
// surface as one generic message.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	restaurant, err := h.restaurantRepo.GetByID(req.RestaurantID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	snapshot, err := h.redis.GetCart(sessionID)
	if err != nil || len(snapshot.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}
	activeCart := cart.FromSnapshot(snapshot)

	result, err := h.checkoutService.Submit(restaurant, activeCart, req.Form)
	if err != nil {
		var fieldErrors services.FieldErrors
		if errors.As(err, &fieldErrors) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrors})
			return
		}
		log.Printf("checkout failed for restaurant %d: %v", restaurant.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not process the order, please try again"})
		return
	}

	if err := h.redis.DeleteCart(sessionID); err != nil {
		// The order is already stored; a stale snapshot expires on its own
		log.Printf("failed to clear cart %s after checkout: %v", sessionID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"order_number":      result.Order.OrderNumber,
		"order":             result.Order,
		"notification_link": result.NotificationLink,
	})
}
