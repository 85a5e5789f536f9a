package services

import (
	"fmt"
	"strings"

	"menu_orders/internal/cart"
	"menu_orders/internal/models"
	"menu_orders/pkg/whatsapp"
)

// WhatsAppService turns a submitted order into the restaurant-facing
// notification: a plain-text summary wrapped in a click-to-chat link.
type WhatsAppService interface {
	OrderLink(restaurant *models.Restaurant, order *models.Order, items []cart.LineItem) string
	BuildOrderMessage(restaurant *models.Restaurant, order *models.Order, items []cart.LineItem) string
}

type whatsappService struct {
	client *whatsapp.Client
}

func NewWhatsAppService(client *whatsapp.Client) WhatsAppService {
	return &whatsappService{client: client}
}

// OrderLink returns an empty string when the restaurant has no configured
// WhatsApp number; the order still succeeds, only the notification is
// skipped.
func (s *whatsappService) OrderLink(restaurant *models.Restaurant, order *models.Order, items []cart.LineItem) string {
	if restaurant.Settings.WhatsAppNumber == "" {
		return ""
	}
	message := s.BuildOrderMessage(restaurant, order, items)
	return s.client.DeepLink(restaurant.Settings.WhatsAppNumber, message)
}

// BuildOrderMessage itemizes each line as variation price * quantity.
// Ingredient extras are not broken out per line even though the stored
// total includes them; the subtotal and total lines carry the real
// amounts.
func (s *whatsappService) BuildOrderMessage(restaurant *models.Restaurant, order *models.Order, items []cart.LineItem) string {
	currency := restaurant.Settings.Currency

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", restaurant.Name)
	fmt.Fprintf(&b, "Order %s\n", order.OrderNumber)
	fmt.Fprintf(&b, "%s\n\n", order.CreatedAt.Format("02 Jan 2006 15:04"))

	fmt.Fprintf(&b, "Customer: %s (%s)\n", order.CustomerName, order.CustomerPhone)
	switch order.OrderType {
	case string(models.OrderDelivery):
		fmt.Fprintf(&b, "Delivery to: %s\n", order.DeliveryAddress)
	case string(models.OrderTable):
		fmt.Fprintf(&b, "Table: %s\n", order.TableNumber)
	default:
		b.WriteString("Pickup\n")
	}
	b.WriteString("\n")

	for _, item := range items {
		lineTotal := item.Variation.Price * float64(item.Quantity)
		fmt.Fprintf(&b, "%dx %s (%s) - %.2f %s\n", item.Quantity, item.Product.Name, item.Variation.Name, lineTotal, currency)
		if item.Notes != "" {
			fmt.Fprintf(&b, "   Note: %s\n", item.Notes)
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Subtotal: %.2f %s\n", order.Subtotal, currency)
	if order.DeliveryCost > 0 {
		fmt.Fprintf(&b, "Delivery: %.2f %s\n", order.DeliveryCost, currency)
	}
	fmt.Fprintf(&b, "*Total: %.2f %s*\n", order.Total, currency)
	fmt.Fprintf(&b, "Estimated time: %d min\n", restaurant.Settings.EstimatedMinutes)

	return b.String()
}
