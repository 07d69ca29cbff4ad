package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

type CategoryHandler struct {
	store storage.Store
	log   *logrus.Logger
}

func NewCategoryHandler(store storage.Store, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{store: store, log: log}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.store.GetAllCategories(c.Request.Context())
	if err != nil {
		storageError(c, err, "categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.store.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		storageError(c, err, "category")
		return
	}
	c.JSON(http.StatusOK, category)
}

type categoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image" binding:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	category := &models.Category{
		Name:      req.Name,
		Image:     req.Image,
		CreatedBy: middleware.CurrentUser(c).ID,
	}
	// Name uniqueness is enforced by the index; a conflict surfaces as
	// ErrDuplicate here.
	if err := h.store.CreateCategory(c.Request.Context(), category); err != nil {
		storageError(c, err, "category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

type updateCategoryRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req updateCategoryRequest
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

	category, err := h.store.UpdateCategory(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		storageError(c, err, "category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete removes the category only. Dependent products keep their dangling
// categoryId; there are no cascade rules.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		storageError(c, err, "category")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) Products(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.GetCategory(c.Request.Context(), id); err != nil {
		storageError(c, err, "category")
		return
	}
	products, err := h.store.GetProductsByCategory(c.Request.Context(), id)
	if err != nil {
		storageError(c, err, "products")
		return
	}
	c.JSON(http.StatusOK, products)
}
