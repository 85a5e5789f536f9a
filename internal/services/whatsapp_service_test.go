package services

import (
	"testing"
	"time"

	"menu_orders/internal/cart"
	"menu_orders/internal/models"
	"menu_orders/pkg/whatsapp"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrderMessage(t *testing.T) {
	svc := NewWhatsAppService(whatsapp.NewClient("https://wa.me"))

	restaurant := testRestaurant()
	order := &models.Order{
		OrderNumber:     "#RES-1042",
		CustomerName:    "Ana",
		CustomerPhone:   "0170 1234567",
		OrderType:       string(models.OrderDelivery),
		DeliveryAddress: "Main St 1",
		DeliveryCost:    3.50,
		Subtotal:        34.50,
		Total:           38.00,
		CreatedAt:       time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
	}

	activeCart := cartWithOneItem()
	message := svc.BuildOrderMessage(restaurant, order, activeCart.Items())

	assert.Contains(t, message, "La Piazza")
	assert.Contains(t, message, "#RES-1042")
	assert.Contains(t, message, "14 Mar 2026 18:30")
	assert.Contains(t, message, "Ana")
	assert.Contains(t, message, "Delivery to: Main St 1")
	// Line totals are variation price * quantity, without ingredient
	// extras; the extras only show up in subtotal and total
	assert.Contains(t, message, "3x Margherita (Medium) - 30.00 USD")
	assert.Contains(t, message, "Subtotal: 34.50 USD")
	assert.Contains(t, message, "Delivery: 3.50 USD")
	assert.Contains(t, message, "Total: 38.00 USD")
	assert.Contains(t, message, "Estimated time: 30 min")
}

func TestBuildOrderMessage_TableOrder(t *testing.T) {
	svc := NewWhatsAppService(whatsapp.NewClient("https://wa.me"))

	order := &models.Order{
		OrderNumber: "#RES-1001",
		OrderType:   string(models.OrderTable),
		TableNumber: "7",
		Subtotal:    10.00,
		Total:       10.00,
	}

	message := svc.BuildOrderMessage(testRestaurant(), order, nil)

	assert.Contains(t, message, "Table: 7")
	assert.NotContains(t, message, "Delivery:")
}

func TestBuildOrderMessage_ZeroDeliveryCostOmitted(t *testing.T) {
	svc := NewWhatsAppService(whatsapp.NewClient("https://wa.me"))

	order := &models.Order{
		OrderNumber: "#RES-1001",
		OrderType:   string(models.OrderPickup),
		Subtotal:    10.00,
		Total:       10.00,
	}

	message := svc.BuildOrderMessage(testRestaurant(), order, nil)

	assert.Contains(t, message, "Pickup")
	assert.NotContains(t, message, "Delivery:")
}

func TestOrderLink_EmptyWithoutConfiguredNumber(t *testing.T) {
	svc := NewWhatsAppService(whatsapp.NewClient("https://wa.me"))

	restaurant := testRestaurant()
	restaurant.Settings.WhatsAppNumber = ""

	link := svc.OrderLink(restaurant, &models.Order{OrderNumber: "#RES-1001"}, nil)

	assert.Empty(t, link)
}

func TestOrderLink_EncodesMessage(t *testing.T) {
	svc := NewWhatsAppService(whatsapp.NewClient("https://wa.me"))

	link := svc.OrderLink(testRestaurant(), &models.Order{OrderNumber: "#RES-1001"}, []cart.LineItem{})

	assert.Contains(t, link, "https://wa.me/491701234567?text=")
	// Percent-encoded, not form-encoded: spaces become %20
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
}
