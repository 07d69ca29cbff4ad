package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

type BrandHandler struct {
	store storage.Store
	log   *logrus.Logger
}

func NewBrandHandler(store storage.Store, log *logrus.Logger) *BrandHandler {
	return &BrandHandler{store: store, log: log}
}

func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.store.GetAllBrands(c.Request.Context())
	if err != nil {
		storageError(c, err, "brands")
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) Get(c *gin.Context) {
	brand, err := h.store.GetBrand(c.Request.Context(), c.Param("id"))
	if err != nil {
		storageError(c, err, "brand")
		return
	}
	c.JSON(http.StatusOK, brand)
}

type brandRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image" binding:"required"`
}

func (h *BrandHandler) Create(c *gin.Context) {
	var req brandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	brand := &models.Brand{Name: req.Name, Image: req.Image}
	if err := h.store.CreateBrand(c.Request.Context(), brand); err != nil {
		storageError(c, err, "brand")
		return
	}
	c.JSON(http.StatusCreated, brand)
}

type updateBrandRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

func (h *BrandHandler) Update(c *gin.Context) {
	var req updateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	fields := storage.Fields{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}

	brand, err := h.store.UpdateBrand(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		storageError(c, err, "brand")
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteBrand(c.Request.Context(), c.Param("id")); err != nil {
		storageError(c, err, "brand")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BrandHandler) Products(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.GetBrand(c.Request.Context(), id); err != nil {
		storageError(c, err, "brand")
		return
	}
	products, err := h.store.GetProductsByBrand(c.Request.Context(), id)
	if err != nil {
		storageError(c, err, "products")
		return
	}
	c.JSON(http.StatusOK, products)
}
