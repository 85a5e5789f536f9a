package services

import (
	"errors"
	"time"

	"menu_orders/internal/models"
)

var errFakeNotFound = errors.New("record not found")

// Hand-rolled repository fakes with per-call failure knobs and call
// recording, so tests can pin down ordering and no-mutation guarantees.

type fakeOrderRepo struct {
	orders    []models.Order
	nextID    uint
	createErr error
	listErr   error
	deleteErr error
	deleted   bool
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	order.ID = f.nextID
	order.CreatedAt = time.Now()
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) GetByID(id uint) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			return &f.orders[i], nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeOrderRepo) GetByRestaurantID(restaurantID uint) ([]models.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.Order
	for _, o := range f.orders {
		if o.RestaurantID == restaurantID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetIDsByRestaurantID(restaurantID uint) ([]uint, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var ids []uint
	for _, o := range f.orders {
		if o.RestaurantID == restaurantID {
			ids = append(ids, o.ID)
		}
	}
	return ids, nil
}

func (f *fakeOrderRepo) Update(order *models.Order) error { return nil }

func (f *fakeOrderRepo) DeleteByRestaurantID(restaurantID uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

type fakeOrderItemRepo struct {
	items     []models.OrderItem
	createErr error
	deleteErr error
	deleted   bool
}

func (f *fakeOrderItemRepo) CreateBatch(items []models.OrderItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeOrderItemRepo) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var out []models.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeOrderItemRepo) DeleteByOrderIDs(orderIDs []uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

type fakeCustomerRepo struct {
	upserted  []models.Customer
	upsertErr error
	deleteErr error
	deleted   bool
}

func (f *fakeCustomerRepo) UpsertByPhone(restaurantID uint, name, phone string) (*models.Customer, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	customer := models.Customer{RestaurantID: restaurantID, Name: name, Phone: phone}
	f.upserted = append(f.upserted, customer)
	return &customer, nil
}

func (f *fakeCustomerRepo) GetByRestaurantID(restaurantID uint) ([]models.Customer, error) {
	return f.upserted, nil
}

func (f *fakeCustomerRepo) DeleteByRestaurantID(restaurantID uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

type fakeRestaurantRepo struct {
	restaurant *models.Restaurant
	updateErr  error
	deleteErr  error
	updated    bool
	deleted    bool
}

func (f *fakeRestaurantRepo) Create(restaurant *models.Restaurant) error { return nil }

func (f *fakeRestaurantRepo) GetByID(id uint) (*models.Restaurant, error) {
	if f.restaurant == nil || f.restaurant.ID != id {
		return nil, errFakeNotFound
	}
	return f.restaurant, nil
}

func (f *fakeRestaurantRepo) GetBySlug(slug string) (*models.Restaurant, error) {
	if f.restaurant == nil || f.restaurant.Slug != slug {
		return nil, errFakeNotFound
	}
	return f.restaurant, nil
}

func (f *fakeRestaurantRepo) Update(restaurant *models.Restaurant) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = true
	f.restaurant = restaurant
	return nil
}

func (f *fakeRestaurantRepo) Delete(id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

func (f *fakeRestaurantRepo) GetAll() ([]models.Restaurant, error) { return nil, nil }

type fakeUserRepo struct {
	users         []models.User
	deleteErr     error
	deletedIDs    []uint
	deletedByRest bool
}

func (f *fakeUserRepo) Create(user *models.User) error { return nil }

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeUserRepo) GetByIdentityID(identityID string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].IdentityID == identityID {
			return &f.users[i], nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeUserRepo) GetByRestaurantID(restaurantID uint) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.RestaurantID == restaurantID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *models.User) error { return nil }

func (f *fakeUserRepo) Delete(id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeUserRepo) DeleteByRestaurantID(restaurantID uint) error {
	f.deletedByRest = true
	return nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) { return f.users, nil }

type fakeProductRepo struct {
	productIDs []uint
	deleted    bool
}

func (f *fakeProductRepo) Create(product *models.Product) error     { return nil }
func (f *fakeProductRepo) GetByID(id uint) (*models.Product, error) { return nil, errFakeNotFound }

func (f *fakeProductRepo) GetByRestaurantID(id uint) ([]models.Product, error) { return nil, nil }

func (f *fakeProductRepo) GetIDsByRestaurantID(restaurantID uint) ([]uint, error) {
	return f.productIDs, nil
}

func (f *fakeProductRepo) Update(product *models.Product) error { return nil }
func (f *fakeProductRepo) Delete(id uint) error                 { return nil }

func (f *fakeProductRepo) DeleteByRestaurantID(restaurantID uint) error {
	f.deleted = true
	return nil
}

type fakeCategoryRepo struct {
	deleted        bool
	linksDeleted   bool
	linkedProducts []uint
}

func (f *fakeCategoryRepo) Create(category *models.Category) error { return nil }

func (f *fakeCategoryRepo) GetByRestaurantID(restaurantID uint) ([]models.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) DeleteByRestaurantID(restaurantID uint) error {
	f.deleted = true
	return nil
}

func (f *fakeCategoryRepo) LinkProduct(productID, categoryID uint) error { return nil }

func (f *fakeCategoryRepo) GetLinksByCategoryID(categoryID uint) ([]models.ProductCategory, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) DeleteLinksByProductIDs(productIDs []uint) error {
	f.linksDeleted = true
	f.linkedProducts = productIDs
	return nil
}

type fakeSubscriptionRepo struct {
	deleted bool
}

func (f *fakeSubscriptionRepo) Create(subscription *models.Subscription) error { return nil }

func (f *fakeSubscriptionRepo) GetByRestaurantID(restaurantID uint) ([]models.Subscription, error) {
	return nil, nil
}

func (f *fakeSubscriptionRepo) DeleteByRestaurantID(restaurantID uint) error {
	f.deleted = true
	return nil
}

// fakeAuthService stands in for the identity-service collaborator.
type fakeAuthService struct {
	user              *models.User
	resolveErr        error
	deleteIdentityErr error
	deletedIdentities []string
}

func (f *fakeAuthService) Register(email, password string) (*models.Identity, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAuthService) Login(email, password string) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeAuthService) ResolveToken(token string) (*models.User, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.user, nil
}

func (f *fakeAuthService) RequireSuperadmin(token string) (*models.User, error) {
	user, err := f.ResolveToken(token)
	if err != nil {
		return nil, err
	}
	if user.Role != string(models.SuperAdmin) {
		return nil, ErrForbidden
	}
	return user, nil
}

func (f *fakeAuthService) DeleteIdentity(identityID string) error {
	if f.deleteIdentityErr != nil {
		return f.deleteIdentityErr
	}
	f.deletedIdentities = append(f.deletedIdentities, identityID)
	return nil
}
