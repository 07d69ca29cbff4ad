package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

type ProductHandler struct {
	store storage.Store
	log   *logrus.Logger
}

func NewProductHandler(store storage.Store, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{store: store, log: log}
}

func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		products []models.Product
		err      error
	)
	switch {
	case c.Query("seller") != "":
		products, err = h.store.GetProductsBySeller(ctx, c.Query("seller"))
	case c.Query("category") != "":
		products, err = h.store.GetProductsByCategory(ctx, c.Query("category"))
	default:
		products, err = h.store.GetAllProducts(ctx)
	}
	if err != nil {
		storageError(c, err, "products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storageError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, product)
}

type productRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	DiscountPrice float64 `json:"discountPrice" binding:"omitempty,gt=0"`
	Image         string  `json:"image" binding:"required"`
	Stock         int     `json:"stock" binding:"min=0"`
	IsOrganic     bool    `json:"isOrganic"`
	CategoryID    string  `json:"categoryId" binding:"required"`
	BrandID       string  `json:"brandId"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}
	var brandID primitive.ObjectID
	if req.BrandID != "" {
		brandID, err = primitive.ObjectIDFromHex(req.BrandID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand id"})
			return
		}
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Image:         req.Image,
		Stock:         req.Stock,
		IsOrganic:     req.IsOrganic,
		CategoryID:    categoryID,
		BrandID:       brandID,
		SellerID:      middleware.CurrentUser(c).ID,
	}
	if err := h.store.CreateProduct(c.Request.Context(), product); err != nil {
		storageError(c, err, "product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

type updateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	DiscountPrice *float64 `json:"discountPrice"`
	Image         *string  `json:"image"`
	Stock         *int     `json:"stock"`
	IsOrganic     *bool    `json:"isOrganic"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	product, err := h.store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storageError(c, err, "product")
		return
	}
	if !h.canManage(c, product) {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	fields := storage.Fields{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.DiscountPrice != nil {
		fields["discountPrice"] = *req.DiscountPrice
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.IsOrganic != nil {
		fields["isOrganic"] = *req.IsOrganic
	}

	updated, err := h.store.UpdateProduct(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		storageError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	product, err := h.store.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		storageError(c, err, "product")
		return
	}
	if !h.canManage(c, product) {
		return
	}

	if err := h.store.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		storageError(c, err, "product")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) Reviews(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.GetProduct(c.Request.Context(), id); err != nil {
		storageError(c, err, "product")
		return
	}
	reviews, err := h.store.GetReviewsByProduct(c.Request.Context(), id)
	if err != nil {
		storageError(c, err, "reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

type reviewRequest struct {
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
	Text   string `json:"text" binding:"required"`
}

func (h *ProductHandler) CreateReview(c *gin.Context) {
	id := c.Param("id")
	product, err := h.store.GetProduct(c.Request.Context(), id)
	if err != nil {
		storageError(c, err, "product")
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	review := &models.Review{
		ProductID: product.ID,
		UserID:    middleware.CurrentUser(c).ID,
		Rating:    req.Rating,
		Text:      req.Text,
	}
	if err := h.store.CreateReview(c.Request.Context(), review); err != nil {
		storageError(c, err, "review")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// canManage writes a 403 and returns false unless the requester is an admin
// or the seller who listed the product.
func (h *ProductHandler) canManage(c *gin.Context, product *models.Product) bool {
	user := middleware.CurrentUser(c)
	if user.Role == models.RoleAdmin || product.SellerID == user.ID {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	return false
}
