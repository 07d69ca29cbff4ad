package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"organic-marketplace/internal/config"
	"organic-marketplace/internal/handlers"
	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

// New assembles the HTTP surface. Handlers receive the store handle
// explicitly; nothing reaches for globals.
func New(cfg *config.Config, log *logrus.Logger, store storage.Store, client *mongo.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authH := handlers.NewAuthHandler(store, log, cfg.SessionTTL, cfg.CookieSecure)
	userH := handlers.NewUserHandler(store, log)
	categoryH := handlers.NewCategoryHandler(store, log)
	brandH := handlers.NewBrandHandler(store, log)
	productH := handlers.NewProductHandler(store, log)
	contentH := handlers.NewContentHandler(store, log)
	cartH := handlers.NewCartHandler(store, log)
	orderH := handlers.NewOrderHandler(store, log)
	wishlistH := handlers.NewWishlistHandler(store, log)
	sellerH := handlers.NewSellerHandler(store, log)
	healthH := handlers.NewHealthHandler(client)

	api := r.Group("/api")

	// Public
	api.GET("/health", healthH.Status)
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

	// Authenticated
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

	// Sellers and admins
	selling := api.Group("", middleware.Auth(store), middleware.RequireRole(models.RoleSeller, models.RoleAdmin))
	{
		selling.POST("/products", productH.Create)
		selling.PUT("/products/:id", productH.Update)
		selling.DELETE("/products/:id", productH.Delete)
	}

	// Admin only
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
