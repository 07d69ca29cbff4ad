package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"organic-marketplace/internal/auth"
	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestRouter wires the handlers onto the same route table the server uses.
func newTestRouter(store *memStore) *gin.Engine {
	log := testLogger()

	authH := NewAuthHandler(store, log, time.Hour, false)
	userH := NewUserHandler(store, log)
	categoryH := NewCategoryHandler(store, log)
	brandH := NewBrandHandler(store, log)
	productH := NewProductHandler(store, log)
	contentH := NewContentHandler(store, log)
	cartH := NewCartHandler(store, log)
	orderH := NewOrderHandler(store, log)
	wishlistH := NewWishlistHandler(store, log)
	sellerH := NewSellerHandler(store, log)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/register", authH.Register)
	api.POST("/login", authH.Login)
	api.POST("/logout", authH.Logout)

	api.GET("/categories", categoryH.List)
	api.GET("/categories/:id", categoryH.Get)
	api.GET("/categories/:id/products", categoryH.Products)
	api.GET("/brands", brandH.List)
	api.GET("/brands/:id", brandH.Get)
	api.GET("/brands/:id/products", brandH.Products)
	api.GET("/products", productH.List)
	api.GET("/products/:id", productH.Get)
	api.GET("/products/:id/reviews", productH.Reviews)
	api.GET("/hero-sliders", contentH.ListHeroSliders)
	api.GET("/promo-ads", contentH.ListPromoAds)
	api.GET("/ebooks", contentH.ListEbooks)
	api.GET("/ebooks/:id", contentH.GetEbook)

	authed := api.Group("", middleware.Auth(store))
	{
		authed.GET("/user", authH.CurrentUser)
		authed.GET("/users/:id", userH.Get)
		authed.PUT("/users/:id", userH.Update)
		authed.DELETE("/users/:id", userH.Delete)
		authed.POST("/products/:id/reviews", productH.CreateReview)
		authed.GET("/cart", cartH.Get)
		authed.POST("/cart/items", cartH.AddItem)
		authed.PUT("/cart/items/:productId", cartH.UpdateItem)
		authed.DELETE("/cart/items/:productId", cartH.RemoveItem)
		authed.POST("/cart/clear", cartH.Clear)
		authed.GET("/wishlist", wishlistH.List)
		authed.POST("/wishlist", wishlistH.Add)
		authed.DELETE("/wishlist/:productId", wishlistH.Remove)
		authed.GET("/orders", orderH.List)
		authed.POST("/orders", orderH.Place)
		authed.GET("/orders/:id", orderH.Get)
		authed.POST("/seller/register", sellerH.Register)
		authed.GET("/seller/status", sellerH.Status)
	}

	selling := api.Group("", middleware.Auth(store), middleware.RequireRole(models.RoleSeller, models.RoleAdmin))
	{
		selling.POST("/products", productH.Create)
		selling.PUT("/products/:id", productH.Update)
		selling.DELETE("/products/:id", productH.Delete)
	}

	admin := api.Group("", middleware.Auth(store), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/users", userH.List)
		admin.GET("/users/role/:role", userH.ListByRole)
		admin.POST("/categories", categoryH.Create)
		admin.PUT("/categories/:id", categoryH.Update)
		admin.DELETE("/categories/:id", categoryH.Delete)
		admin.POST("/brands", brandH.Create)
		admin.PUT("/brands/:id", brandH.Update)
		admin.DELETE("/brands/:id", brandH.Delete)
		admin.POST("/hero-sliders", contentH.CreateHeroSlider)
		admin.PUT("/hero-sliders/:id", contentH.UpdateHeroSlider)
		admin.DELETE("/hero-sliders/:id", contentH.DeleteHeroSlider)
		admin.POST("/promo-ads", contentH.CreatePromoAd)
		admin.PUT("/promo-ads/:id", contentH.UpdatePromoAd)
		admin.DELETE("/promo-ads/:id", contentH.DeletePromoAd)
		admin.POST("/ebooks", contentH.CreateEbook)
		admin.PUT("/ebooks/:id", contentH.UpdateEbook)
		admin.DELETE("/ebooks/:id", contentH.DeleteEbook)
		admin.PUT("/orders/:id/status", orderH.UpdateStatus)
		admin.GET("/sellers", sellerH.List)
		admin.PUT("/sellers/:id/status", sellerH.UpdateStatus)
	}

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// seedUser inserts a user with the given role plus a live session, and returns
// the session cookie for authenticated requests.
func seedUser(t *testing.T, store *memStore, username string, role models.Role) (*models.User, *http.Cookie) {
	t.Helper()
	hashed, err := auth.HashPassword("password123")
	require.NoError(t, err)
	user := &models.User{
		Name:     "Test " + username,
		Username: username,
		Email:    username + "@example.com",
		Password: hashed,
		Phone:    "5550001111",
		Address:  "1 Test Lane",
		Role:     role,
	}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user, seedSession(t, store, user)
}

func seedSession(t *testing.T, store *memStore, user *models.User) *http.Cookie {
	t.Helper()
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.CreateSession(context.Background(), session))
	return &http.Cookie{Name: auth.SessionCookie, Value: session.Token}
}

func seedProduct(t *testing.T, store *memStore, sellerID, categoryID primitive.ObjectID, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        "Organic Apples",
		Description: "Crisp and fresh",
		Price:       price,
		Image:       "apples.jpg",
		Stock:       stock,
		IsOrganic:   true,
		CategoryID:  categoryID,
		SellerID:    sellerID,
	}
	require.NoError(t, store.CreateProduct(context.Background(), product))
	return product
}
