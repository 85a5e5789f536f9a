package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"menu_orders/internal/cart"
	"menu_orders/internal/models"
	"menu_orders/internal/repository"
)

const orderNumberFloor = 1000

var orderNumberPattern = regexp.MustCompile(`^#RES-(\d+)$`)

type CheckoutForm struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	OrderType       string `json:"order_type"`
	DeliveryAddress string `json:"delivery_address"`
	TableNumber     string `json:"table_number"`
}

type CheckoutResult struct {
	Order            models.Order `json:"order"`
	NotificationLink string       `json:"notification_link,omitempty"`
}

type CheckoutService interface {
	Validate(form CheckoutForm) FieldErrors
	NextOrderNumber(restaurantID uint) (string, error)
	Submit(restaurant *models.Restaurant, activeCart *cart.Cart, form CheckoutForm) (*CheckoutResult, error)
}

type checkoutService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	customerRepo  repository.CustomerRepository
	whatsapp      WhatsAppService
}

func NewCheckoutService(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, customerRepo repository.CustomerRepository, whatsappService WhatsAppService) CheckoutService {
	return &checkoutService{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		customerRepo:  customerRepo,
		whatsapp:      whatsappService,
	}
}

// Validate returns a field -> message map; submission proceeds only when
// the map is empty.
func (s *checkoutService) Validate(form CheckoutForm) FieldErrors {
	fieldErrors := FieldErrors{}

	if strings.TrimSpace(form.Name) == "" {
		fieldErrors["name"] = "name is required"
	}

	phone := strings.TrimSpace(form.Phone)
	if phone == "" {
		fieldErrors["phone"] = "phone is required"
	} else if !validPhone(phone) {
		fieldErrors["phone"] = "phone may only contain digits, spaces and + - ( )"
	}

	switch form.OrderType {
	case string(models.OrderDelivery):
		if strings.TrimSpace(form.DeliveryAddress) == "" {
			fieldErrors["delivery_address"] = "delivery address is required"
		}
	case string(models.OrderTable):
		if strings.TrimSpace(form.TableNumber) == "" {
			fieldErrors["table_number"] = "table number is required"
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func validPhone(phone string) bool {
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return true
}

// NextOrderNumber scans the restaurant's stored orders for #RES-<n>
// numbers and returns one past the maximum, with a floor of 1000. The
// read-then-write is unprotected, so concurrent submissions can collide;
// accepted as a low-probability outcome.
func (s *checkoutService) NextOrderNumber(restaurantID uint) (string, error) {
	orders, err := s.orderRepo.GetByRestaurantID(restaurantID)
	if err != nil {
		return "", err
	}

	max := orderNumberFloor
	for _, order := range orders {
		matches := orderNumberPattern.FindStringSubmatch(order.OrderNumber)
		if matches == nil {
			continue
		}
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("#RES-%d", max+1), nil
}

// Submit assembles and persists the order. The cart is left untouched on
// any failure; the caller clears it only after success.
func (s *checkoutService) Submit(restaurant *models.Restaurant, activeCart *cart.Cart, form CheckoutForm) (*CheckoutResult, error) {
	if fieldErrors := s.Validate(form); fieldErrors != nil {
		return nil, fieldErrors
	}

	orderNumber, err := s.NextOrderNumber(restaurant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	deliveryCost := 0.0
	if form.OrderType == string(models.OrderDelivery) && restaurant.Settings.DeliveryEnabled() {
		deliveryCost = restaurant.Settings.DeliveryCost
	}

	// Subtotal is frozen at the moment of submission
	subtotal := activeCart.Total()

	order := models.Order{
		RestaurantID:    restaurant.ID,
		OrderNumber:     orderNumber,
		CustomerName:    strings.TrimSpace(form.Name),
		CustomerPhone:   strings.TrimSpace(form.Phone),
		OrderType:       form.OrderType,
		DeliveryAddress: form.DeliveryAddress,
		TableNumber:     form.TableNumber,
		DeliveryCost:    deliveryCost,
		Subtotal:        subtotal,
		Total:           subtotal + deliveryCost,
		Status:          string(models.OrderPending),
	}

	if err := s.orderRepo.Create(&order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	items := activeCart.Items()
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:             order.ID,
			ProductID:           item.Product.ID,
			VariationID:         item.Variation.ID,
			ProductName:         item.Product.Name,
			VariationName:       item.Variation.Name,
			Quantity:            item.Quantity,
			UnitPrice:           item.Variation.Price,
			ExtrasCost:          item.ExtrasCost(),
			TotalPrice:          item.LineTotal(),
			SelectedIngredients: models.IDList(item.SelectedIngredients),
			Notes:               item.Notes,
		})
	}
	if err := s.orderItemRepo.CreateBatch(orderItems); err != nil {
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if _, err := s.customerRepo.UpsertByPhone(restaurant.ID, order.CustomerName, order.CustomerPhone); err != nil {
		return nil, fmt.Errorf("failed to record customer: %w", err)
	}

	link := s.whatsapp.OrderLink(restaurant, &order, items)

	return &CheckoutResult{Order: order, NotificationLink: link}, nil
}
