package handlers

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

// memStore is an in-memory storage.Store used by the handler tests. It
// mirrors the document-store contract: unknown or malformed ids read as
// storage.ErrNotFound, unique-index conflicts as storage.ErrDuplicate, and
// partial updates touch only the named fields.
type memStore struct {
	mu sync.Mutex

	users       map[string]models.User
	categories  map[string]models.Category
	brands      map[string]models.Brand
	products    map[string]models.Product
	heroSliders map[string]models.HeroSlider
	promoAds    map[string]models.PromoAd
	ebooks      map[string]models.Ebook
	orders      map[string]models.Order
	orderItems  map[string]models.OrderItem
	carts       map[string]models.Cart
	cartItems   map[string]models.CartItem
	reviews     map[string]models.Review
	wishlists   map[string]models.Wishlist
	sellers     map[string]models.Seller
	sessions    map[string]models.Session
}

var _ storage.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]models.User{},
		categories:  map[string]models.Category{},
		brands:      map[string]models.Brand{},
		products:    map[string]models.Product{},
		heroSliders: map[string]models.HeroSlider{},
		promoAds:    map[string]models.PromoAd{},
		ebooks:      map[string]models.Ebook{},
		orders:      map[string]models.Order{},
		orderItems:  map[string]models.OrderItem{},
		carts:       map[string]models.Cart{},
		cartItems:   map[string]models.CartItem{},
		reviews:     map[string]models.Review{},
		wishlists:   map[string]models.Wishlist{},
		sellers:     map[string]models.Seller{},
		sessions:    map[string]models.Session{},
	}
}

func ensureID(id *primitive.ObjectID) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
}

// Users

func (s *memStore) GetUser(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *memStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return storage.ErrDuplicate
		}
	}
	ensureID(&user.ID)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID.Hex()] = *user
	return nil
}

func (s *memStore) UpdateUser(_ context.Context, id string, fields storage.Fields) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			u.Name = v.(string)
		case "email":
			u.Email = v.(string)
		case "phone":
			u.Phone = v.(string)
		case "address":
			u.Address = v.(string)
		case "role":
			u.Role = v.(models.Role)
		}
	}
	s.users[id] = u
	return &u, nil
}

func (s *memStore) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *memStore) GetAllUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *memStore) GetUsersByRole(_ context.Context, role models.Role) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.User
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// Categories

func (s *memStore) GetCategory(_ context.Context, id string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (s *memStore) GetCategoryByName(_ context.Context, name string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == name {
			c := c
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) CreateCategory(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == category.Name {
			return storage.ErrDuplicate
		}
	}
	ensureID(&category.ID)
	s.categories[category.ID.Hex()] = *category
	return nil
}

func (s *memStore) UpdateCategory(_ context.Context, id string, fields storage.Fields) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			name := v.(string)
			for otherID, other := range s.categories {
				if otherID != id && other.Name == name {
					return nil, storage.ErrDuplicate
				}
			}
			c.Name = name
		case "image":
			c.Image = v.(string)
		}
	}
	s.categories[id] = c
	return &c, nil
}

func (s *memStore) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.categories[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *memStore) GetAllCategories(_ context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

// Brands

func (s *memStore) GetBrand(_ context.Context, id string) (*models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.brands[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &b, nil
}

func (s *memStore) GetBrandByName(_ context.Context, name string) (*models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.brands {
		if b.Name == name {
			b := b
			return &b, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) CreateBrand(_ context.Context, brand *models.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.brands {
		if b.Name == brand.Name {
			return storage.ErrDuplicate
		}
	}
	ensureID(&brand.ID)
	s.brands[brand.ID.Hex()] = *brand
	return nil
}

func (s *memStore) UpdateBrand(_ context.Context, id string, fields storage.Fields) (*models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.brands[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			b.Name = v.(string)
		case "image":
			b.Image = v.(string)
		}
	}
	s.brands[id] = b
	return &b, nil
}

func (s *memStore) DeleteBrand(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.brands[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.brands, id)
	return nil
}

func (s *memStore) GetAllBrands(_ context.Context) ([]models.Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		out = append(out, b)
	}
	return out, nil
}

// Products

func (s *memStore) GetProduct(_ context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (s *memStore) CreateProduct(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&product.ID)
	s.products[product.ID.Hex()] = *product
	return nil
}

func (s *memStore) UpdateProduct(_ context.Context, id string, fields storage.Fields) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			p.Name = v.(string)
		case "description":
			p.Description = v.(string)
		case "price":
			p.Price = v.(float64)
		case "discountPrice":
			p.DiscountPrice = v.(float64)
		case "image":
			p.Image = v.(string)
		case "stock":
			p.Stock = v.(int)
		case "isOrganic":
			p.IsOrganic = v.(bool)
		}
	}
	s.products[id] = p
	return &p, nil
}

func (s *memStore) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *memStore) GetAllProducts(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *memStore) GetProductsByCategory(_ context.Context, categoryID string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.products {
		if p.CategoryID.Hex() == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) GetProductsByBrand(_ context.Context, brandID string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.products {
		if p.BrandID.Hex() == brandID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) GetProductsBySeller(_ context.Context, sellerID string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Product
	for _, p := range s.products {
		if p.SellerID.Hex() == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) AdjustProductStock(_ context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return storage.ErrNotFound
	}
	p.Stock += delta
	s.products[id] = p
	return nil
}

// Hero sliders

func (s *memStore) GetHeroSlider(_ context.Context, id string) (*models.HeroSlider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.heroSliders[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &h, nil
}

func (s *memStore) CreateHeroSlider(_ context.Context, slider *models.HeroSlider) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&slider.ID)
	s.heroSliders[slider.ID.Hex()] = *slider
	return nil
}

func (s *memStore) UpdateHeroSlider(_ context.Context, id string, fields storage.Fields) (*models.HeroSlider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.heroSliders[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "title":
			h.Title = v.(string)
		case "subtitle":
			h.Subtitle = v.(string)
		case "image":
			h.Image = v.(string)
		case "link":
			h.Link = v.(string)
		case "isActive":
			h.IsActive = v.(bool)
		}
	}
	s.heroSliders[id] = h
	return &h, nil
}

func (s *memStore) DeleteHeroSlider(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.heroSliders[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.heroSliders, id)
	return nil
}

func (s *memStore) GetAllHeroSliders(_ context.Context) ([]models.HeroSlider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.HeroSlider, 0, len(s.heroSliders))
	for _, h := range s.heroSliders {
		out = append(out, h)
	}
	return out, nil
}

func (s *memStore) GetActiveHeroSliders(_ context.Context) ([]models.HeroSlider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.HeroSlider
	for _, h := range s.heroSliders {
		if h.IsActive {
			out = append(out, h)
		}
	}
	return out, nil
}

// Promo ads

func (s *memStore) GetPromoAd(_ context.Context, id string) (*models.PromoAd, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.promoAds[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

func (s *memStore) CreatePromoAd(_ context.Context, ad *models.PromoAd) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&ad.ID)
	s.promoAds[ad.ID.Hex()] = *ad
	return nil
}

func (s *memStore) UpdatePromoAd(_ context.Context, id string, fields storage.Fields) (*models.PromoAd, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.promoAds[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "title":
			a.Title = v.(string)
		case "image":
			a.Image = v.(string)
		case "link":
			a.Link = v.(string)
		case "isActive":
			a.IsActive = v.(bool)
		}
	}
	s.promoAds[id] = a
	return &a, nil
}

func (s *memStore) DeletePromoAd(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.promoAds[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.promoAds, id)
	return nil
}

func (s *memStore) GetAllPromoAds(_ context.Context) ([]models.PromoAd, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.PromoAd, 0, len(s.promoAds))
	for _, a := range s.promoAds {
		out = append(out, a)
	}
	return out, nil
}

func (s *memStore) GetActivePromoAds(_ context.Context) ([]models.PromoAd, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.PromoAd
	for _, a := range s.promoAds {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

// Ebooks

func (s *memStore) GetEbook(_ context.Context, id string) (*models.Ebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.ebooks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &e, nil
}

func (s *memStore) CreateEbook(_ context.Context, ebook *models.Ebook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&ebook.ID)
	s.ebooks[ebook.ID.Hex()] = *ebook
	return nil
}

func (s *memStore) UpdateEbook(_ context.Context, id string, fields storage.Fields) (*models.Ebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.ebooks[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "title":
			e.Title = v.(string)
		case "description":
			e.Description = v.(string)
		case "image":
			e.Image = v.(string)
		case "fileUrl":
			e.FileURL = v.(string)
		case "price":
			e.Price = v.(float64)
		}
	}
	s.ebooks[id] = e
	return &e, nil
}

func (s *memStore) DeleteEbook(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ebooks[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.ebooks, id)
	return nil
}

func (s *memStore) GetAllEbooks(_ context.Context) ([]models.Ebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ebook, 0, len(s.ebooks))
	for _, e := range s.ebooks {
		out = append(out, e)
	}
	return out, nil
}

// Orders

func (s *memStore) GetOrder(_ context.Context, id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &o, nil
}

func (s *memStore) CreateOrder(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&order.ID)
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	s.orders[order.ID.Hex()] = *order
	return nil
}

func (s *memStore) UpdateOrder(_ context.Context, id string, fields storage.Fields) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "status":
			o.Status = v.(models.OrderStatus)
		case "address":
			o.Address = v.(string)
		}
	}
	s.orders[id] = o
	return &o, nil
}

func (s *memStore) DeleteOrder(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.orders, id)
	return nil
}

func (s *memStore) GetAllOrders(_ context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *memStore) GetOrdersByBuyer(_ context.Context, buyerID string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.BuyerID.Hex() == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *memStore) GetOrdersByStatus(_ context.Context, status models.OrderStatus) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// Order items

func (s *memStore) GetOrderItem(_ context.Context, id string) (*models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.orderItems[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &i, nil
}

func (s *memStore) CreateOrderItem(_ context.Context, item *models.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&item.ID)
	s.orderItems[item.ID.Hex()] = *item
	return nil
}

func (s *memStore) UpdateOrderItem(_ context.Context, id string, fields storage.Fields) (*models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.orderItems[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "quantity":
			i.Quantity = v.(int)
		case "price":
			i.Price = v.(float64)
		}
	}
	s.orderItems[id] = i
	return &i, nil
}

func (s *memStore) DeleteOrderItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orderItems[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.orderItems, id)
	return nil
}

func (s *memStore) GetOrderItemsByOrder(_ context.Context, orderID string) ([]models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.OrderItem
	for _, i := range s.orderItems {
		if i.OrderID.Hex() == orderID {
			out = append(out, i)
		}
	}
	return out, nil
}

// Carts

func (s *memStore) GetCart(_ context.Context, id string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (s *memStore) GetCartByUser(_ context.Context, userID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.carts {
		if c.UserID.Hex() == userID {
			c := c
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) CreateCart(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.carts {
		if c.UserID == cart.UserID {
			return storage.ErrDuplicate
		}
	}
	ensureID(&cart.ID)
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = time.Now()
	}
	s.carts[cart.ID.Hex()] = *cart
	return nil
}

func (s *memStore) DeleteCart(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.carts[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.carts, id)
	return nil
}

// Cart items

func (s *memStore) GetCartItem(_ context.Context, id string) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.cartItems[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &i, nil
}

func (s *memStore) CreateCartItem(_ context.Context, item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&item.ID)
	s.cartItems[item.ID.Hex()] = *item
	return nil
}

func (s *memStore) UpdateCartItem(_ context.Context, id string, fields storage.Fields) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.cartItems[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		if k == "quantity" {
			i.Quantity = v.(int)
		}
	}
	s.cartItems[id] = i
	return &i, nil
}

func (s *memStore) DeleteCartItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cartItems[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.cartItems, id)
	return nil
}

func (s *memStore) GetCartItemsByCart(_ context.Context, cartID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.CartItem
	for _, i := range s.cartItems {
		if i.CartID.Hex() == cartID {
			out = append(out, i)
		}
	}
	return out, nil
}

// Reviews

func (s *memStore) GetReview(_ context.Context, id string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &r, nil
}

func (s *memStore) CreateReview(_ context.Context, review *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&review.ID)
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	s.reviews[review.ID.Hex()] = *review
	return nil
}

func (s *memStore) UpdateReview(_ context.Context, id string, fields storage.Fields) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "rating":
			r.Rating = v.(int)
		case "text":
			r.Text = v.(string)
		}
	}
	s.reviews[id] = r
	return &r, nil
}

func (s *memStore) DeleteReview(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.reviews, id)
	return nil
}

func (s *memStore) GetReviewsByProduct(_ context.Context, productID string) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Review
	for _, r := range s.reviews {
		if r.ProductID.Hex() == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memStore) GetReviewsByUser(_ context.Context, userID string) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Review
	for _, r := range s.reviews {
		if r.UserID.Hex() == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Wishlists

func (s *memStore) GetWishlist(_ context.Context, id string) (*models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wishlists[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &w, nil
}

func (s *memStore) CreateWishlist(_ context.Context, wishlist *models.Wishlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.wishlists {
		if w.UserID == wishlist.UserID && w.ProductID == wishlist.ProductID {
			return storage.ErrDuplicate
		}
	}
	ensureID(&wishlist.ID)
	if wishlist.CreatedAt.IsZero() {
		wishlist.CreatedAt = time.Now()
	}
	s.wishlists[wishlist.ID.Hex()] = *wishlist
	return nil
}

func (s *memStore) DeleteWishlist(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.wishlists[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.wishlists, id)
	return nil
}

func (s *memStore) GetWishlistsByUser(_ context.Context, userID string) ([]models.Wishlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Wishlist
	for _, w := range s.wishlists {
		if w.UserID.Hex() == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (s *memStore) DeleteWishlistByUserAndProduct(_ context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, w := range s.wishlists {
		if w.UserID.Hex() == userID && w.ProductID.Hex() == productID {
			delete(s.wishlists, id)
			return nil
		}
	}
	return storage.ErrNotFound
}

// Sellers

func (s *memStore) GetSeller(_ context.Context, id string) (*models.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.sellers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &sel, nil
}

func (s *memStore) GetSellerByUser(_ context.Context, userID string) (*models.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sel := range s.sellers {
		if sel.UserID.Hex() == userID {
			sel := sel
			return &sel, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) CreateSeller(_ context.Context, seller *models.Seller) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sel := range s.sellers {
		if sel.UserID == seller.UserID {
			return storage.ErrDuplicate
		}
	}
	ensureID(&seller.ID)
	if seller.CreatedAt.IsZero() {
		seller.CreatedAt = time.Now()
	}
	s.sellers[seller.ID.Hex()] = *seller
	return nil
}

func (s *memStore) UpdateSeller(_ context.Context, id string, fields storage.Fields) (*models.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.sellers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for k, v := range fields {
		if k == "status" {
			sel.Status = v.(models.SellerStatus)
		}
	}
	sel.UpdatedAt = time.Now()
	s.sellers[id] = sel
	return &sel, nil
}

func (s *memStore) GetAllSellers(_ context.Context) ([]models.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Seller, 0, len(s.sellers))
	for _, sel := range s.sellers {
		out = append(out, sel)
	}
	return out, nil
}

func (s *memStore) GetSellersByStatus(_ context.Context, status models.SellerStatus) ([]models.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Seller
	for _, sel := range s.sellers {
		if sel.Status == status {
			out = append(out, sel)
		}
	}
	return out, nil
}

// Sessions

func (s *memStore) CreateSession(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.Token]; ok {
		return storage.ErrDuplicate
	}
	s.sessions[session.Token] = *session
	return nil
}

func (s *memStore) GetSession(_ context.Context, token string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok || !sess.ExpiresAt.After(time.Now()) {
		return nil, storage.ErrNotFound
	}
	return &sess, nil
}

func (s *memStore) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[token]; !ok {
		return storage.ErrNotFound
	}
	delete(s.sessions, token)
	return nil
}
