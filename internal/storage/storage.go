package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"organic-marketplace/internal/models"
)

// Fields is a partial-field update: keys are document field names, values the
// replacements. An empty Fields leaves the record untouched.
type Fields map[string]any

// Store is the uniform accessor over the document store, one set of CRUD
// methods per entity. Identifiers are ObjectID hex strings; a malformed or
// unknown identifier yields ErrNotFound, a unique-index conflict ErrDuplicate.
// No method validates referential integrity: writes with dangling foreign
// keys succeed silently.
type Store interface {
	// Users
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id string, fields Fields) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)

	// Categories
	GetCategory(ctx context.Context, id string) (*models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	UpdateCategory(ctx context.Context, id string, fields Fields) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	GetAllCategories(ctx context.Context) ([]models.Category, error)

	// Brands
	GetBrand(ctx context.Context, id string) (*models.Brand, error)
	GetBrandByName(ctx context.Context, name string) (*models.Brand, error)
	CreateBrand(ctx context.Context, brand *models.Brand) error
	UpdateBrand(ctx context.Context, id string, fields Fields) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id string) error
	GetAllBrands(ctx context.Context) ([]models.Brand, error)

	// Products
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, id string, fields Fields) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	GetProductsByBrand(ctx context.Context, brandID string) ([]models.Product, error)
	GetProductsBySeller(ctx context.Context, sellerID string) ([]models.Product, error)
	AdjustProductStock(ctx context.Context, id string, delta int) error

	// Hero sliders
	GetHeroSlider(ctx context.Context, id string) (*models.HeroSlider, error)
	CreateHeroSlider(ctx context.Context, slider *models.HeroSlider) error
	UpdateHeroSlider(ctx context.Context, id string, fields Fields) (*models.HeroSlider, error)
	DeleteHeroSlider(ctx context.Context, id string) error
	GetAllHeroSliders(ctx context.Context) ([]models.HeroSlider, error)
	GetActiveHeroSliders(ctx context.Context) ([]models.HeroSlider, error)

	// Promo ads
	GetPromoAd(ctx context.Context, id string) (*models.PromoAd, error)
	CreatePromoAd(ctx context.Context, ad *models.PromoAd) error
	UpdatePromoAd(ctx context.Context, id string, fields Fields) (*models.PromoAd, error)
	DeletePromoAd(ctx context.Context, id string) error
	GetAllPromoAds(ctx context.Context) ([]models.PromoAd, error)
	GetActivePromoAds(ctx context.Context) ([]models.PromoAd, error)

	// Ebooks
	GetEbook(ctx context.Context, id string) (*models.Ebook, error)
	CreateEbook(ctx context.Context, ebook *models.Ebook) error
	UpdateEbook(ctx context.Context, id string, fields Fields) (*models.Ebook, error)
	DeleteEbook(ctx context.Context, id string) error
	GetAllEbooks(ctx context.Context) ([]models.Ebook, error)

	// Orders
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	UpdateOrder(ctx context.Context, id string, fields Fields) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	GetAllOrders(ctx context.Context) ([]models.Order, error)
	GetOrdersByBuyer(ctx context.Context, buyerID string) ([]models.Order, error)
	GetOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)

	// Order items
	GetOrderItem(ctx context.Context, id string) (*models.OrderItem, error)
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
	UpdateOrderItem(ctx context.Context, id string, fields Fields) (*models.OrderItem, error)
	DeleteOrderItem(ctx context.Context, id string) error
	GetOrderItemsByOrder(ctx context.Context, orderID string) ([]models.OrderItem, error)

	// Carts
	GetCart(ctx context.Context, id string) (*models.Cart, error)
	GetCartByUser(ctx context.Context, userID string) (*models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) error
	DeleteCart(ctx context.Context, id string) error

	// Cart items
	GetCartItem(ctx context.Context, id string) (*models.CartItem, error)
	CreateCartItem(ctx context.Context, item *models.CartItem) error
	UpdateCartItem(ctx context.Context, id string, fields Fields) (*models.CartItem, error)
	DeleteCartItem(ctx context.Context, id string) error
	GetCartItemsByCart(ctx context.Context, cartID string) ([]models.CartItem, error)

	// Reviews
	GetReview(ctx context.Context, id string) (*models.Review, error)
	CreateReview(ctx context.Context, review *models.Review) error
	UpdateReview(ctx context.Context, id string, fields Fields) (*models.Review, error)
	DeleteReview(ctx context.Context, id string) error
	GetReviewsByProduct(ctx context.Context, productID string) ([]models.Review, error)
	GetReviewsByUser(ctx context.Context, userID string) ([]models.Review, error)

	// Wishlists
	GetWishlist(ctx context.Context, id string) (*models.Wishlist, error)
	CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error
	DeleteWishlist(ctx context.Context, id string) error
	GetWishlistsByUser(ctx context.Context, userID string) ([]models.Wishlist, error)
	DeleteWishlistByUserAndProduct(ctx context.Context, userID, productID string) error

	// Sellers
	GetSeller(ctx context.Context, id string) (*models.Seller, error)
	GetSellerByUser(ctx context.Context, userID string) (*models.Seller, error)
	CreateSeller(ctx context.Context, seller *models.Seller) error
	UpdateSeller(ctx context.Context, id string, fields Fields) (*models.Seller, error)
	GetAllSellers(ctx context.Context) ([]models.Seller, error)
	GetSellersByStatus(ctx context.Context, status models.SellerStatus) ([]models.Seller, error)

	// Sessions
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

// oid coerces an API identifier into an ObjectID. Anything that does not
// parse cannot name a stored document, so it surfaces as ErrNotFound rather
// than a validation failure.
func oid(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return objID, nil
}
