package services

import (
	"fmt"
	"log"

	"menu_orders/internal/models"
	"menu_orders/internal/repository"
)

// AdminService holds the privileged cross-tenant operations. Every entry
// point runs the superadmin gate before touching any data.
type AdminService interface {
	DeleteRestaurant(token string, restaurantID uint) (string, error)
	DeleteUser(token string, userID uint) (string, error)
	TransferOwnership(token string, restaurantID, newOwnerID uint) (*models.Restaurant, string, error)
}

type adminService struct {
	auth             AuthService
	restaurantRepo   repository.RestaurantRepository
	userRepo         repository.UserRepository
	productRepo      repository.ProductRepository
	categoryRepo     repository.CategoryRepository
	customerRepo     repository.CustomerRepository
	orderRepo        repository.OrderRepository
	orderItemRepo    repository.OrderItemRepository
	subscriptionRepo repository.SubscriptionRepository
}

func NewAdminService(
	auth AuthService,
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	subscriptionRepo repository.SubscriptionRepository,
) AdminService {
	return &adminService{
		auth:             auth,
		restaurantRepo:   restaurantRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		categoryRepo:     categoryRepo,
		customerRepo:     customerRepo,
		orderRepo:        orderRepo,
		orderItemRepo:    orderItemRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// DeleteRestaurant removes a restaurant and everything depending on it.
// Dependent deletes run in a fixed order, children before parents, and
// are best-effort: a failed step is logged and the workflow continues,
// favoring maximal cleanup over atomicity. Only the final root delete is
// terminal.
func (s *adminService) DeleteRestaurant(token string, restaurantID uint) (string, error) {
	if _, err := s.auth.RequireSuperadmin(token); err != nil {
		return "", err
	}

	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return "", fmt.Errorf("%w: restaurant %d", ErrNotFound, restaurantID)
	}

	// 1. Order items, addressed through the restaurant's order ids
	orderIDs, err := s.orderRepo.GetIDsByRestaurantID(restaurantID)
	if err != nil {
		log.Printf("deprovision restaurant %d: failed to list orders: %v", restaurantID, err)
	} else if err := s.orderItemRepo.DeleteByOrderIDs(orderIDs); err != nil {
		log.Printf("deprovision restaurant %d: failed to delete order items: %v", restaurantID, err)
	}

	// 2. Orders
	if err := s.orderRepo.DeleteByRestaurantID(restaurantID); err != nil {
		log.Printf("deprovision restaurant %d: failed to delete orders: %v", restaurantID, err)
	}

	// 3. Customers
	if err := s.customerRepo.DeleteByRestaurantID(restaurantID); err != nil {
		log.Printf("deprovision restaurant %d: failed to delete customers: %v", restaurantID, err)
	}

	// 4. Product-category links, addressed through the product ids
	productIDs, err := s.productRepo.GetIDsByRestaurantID(restaurantID)
	if err != nil {
		log.Printf("deprovision restaurant %d: failed to list products: %v", restaurantID, err)
	} else if err := s.categoryRepo.DeleteLinksByProductIDs(productIDs); err != nil {
		log.Printf("deprovision restaurant %d: failed to delete product-category links: %v", restaurantID, err)
	}

	// 5. Products
	if err := s.productRepo.DeleteByRestaurantID(restaurantID); err != nil {
		log.Printf("deprovision restaurant %d: failed to delete products: %v", restaurantID, err)
	}

	// 6. Categories
	if err := s.categoryRepo.DeleteByRestaurantID(restaurantID); err != nil {
		log.Printf("deprovision restaurant %d: failed to delete categories: %v", restaurantID, err)
	}

	// 7. Subscriptions
	if err := s.subscriptionRepo.DeleteByRestaurantID(restaurantID); err != nil {
		log.Printf("deprovision restaurant %d: failed to delete subscriptions: %v", restaurantID, err)
	}

	// 8. Users and their identity accounts
	users, err := s.userRepo.GetByRestaurantID(restaurantID)
	if err != nil {
		log.Printf("deprovision restaurant %d: failed to list users: %v", restaurantID, err)
	} else {
		for _, user := range users {
			if err := s.auth.DeleteIdentity(user.IdentityID); err != nil {
				log.Printf("deprovision restaurant %d: failed to delete identity %s: %v", restaurantID, user.IdentityID, err)
			}
		}
		if err := s.userRepo.DeleteByRestaurantID(restaurantID); err != nil {
			log.Printf("deprovision restaurant %d: failed to delete users: %v", restaurantID, err)
		}
	}

	// An orphaned-but-undeleted root is the worst outcome, so this one
	// failure is terminal.
	if err := s.restaurantRepo.Delete(restaurantID); err != nil {
		return "", fmt.Errorf("failed to delete restaurant: %w", err)
	}

	return fmt.Sprintf("Restaurant %q and all related data deleted", restaurant.Name), nil
}

// DeleteUser removes a single user and its identity account. The
// identity account goes first: an app row without an identity can be
// cleaned up by retrying, an identity without an app row cannot be
// found again.
func (s *adminService) DeleteUser(token string, userID uint) (string, error) {
	if _, err := s.auth.RequireSuperadmin(token); err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	if err := s.auth.DeleteIdentity(user.IdentityID); err != nil {
		return "", fmt.Errorf("failed to delete identity account: %w", err)
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return "", fmt.Errorf("failed to delete user: %w", err)
	}

	return fmt.Sprintf("User %q deleted", user.Email), nil
}

// TransferOwnership reassigns a restaurant to another of its users. Each
// guard produces its own rejection and nothing is written until all
// pass.
func (s *adminService) TransferOwnership(token string, restaurantID, newOwnerID uint) (*models.Restaurant, string, error) {
	if _, err := s.auth.RequireSuperadmin(token); err != nil {
		return nil, "", err
	}

	restaurant, err := s.restaurantRepo.GetByID(restaurantID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: restaurant %d", ErrNotFound, restaurantID)
	}

	newOwner, err := s.userRepo.GetByID(newOwnerID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: user %d", ErrNotFound, newOwnerID)
	}

	if newOwner.RestaurantID != restaurantID {
		return nil, "", fmt.Errorf("%w: new owner belongs to a different restaurant", ErrValidation)
	}
	if newOwner.Role != string(models.RestaurantOwner) && newOwner.Role != string(models.SuperAdmin) {
		return nil, "", fmt.Errorf("%w: new owner must have role restaurant_owner or superadmin", ErrValidation)
	}
	if restaurant.OwnerID == newOwner.ID {
		return nil, "", fmt.Errorf("%w: user is already the owner", ErrValidation)
	}

	previousOwner := restaurant.OwnerName
	restaurant.OwnerID = newOwner.ID
	restaurant.OwnerName = newOwner.Name
	if err := s.restaurantRepo.Update(restaurant); err != nil {
		return nil, "", fmt.Errorf("failed to update restaurant owner: %w", err)
	}

	message := fmt.Sprintf("Ownership of %q transferred from %q to %q", restaurant.Name, previousOwner, newOwner.Name)
	return restaurant, message, nil
}
