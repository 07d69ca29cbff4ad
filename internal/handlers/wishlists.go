package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

type WishlistHandler struct {
	store storage.Store
	log   *logrus.Logger
}

func NewWishlistHandler(store storage.Store, log *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{store: store, log: log}
}

func (h *WishlistHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	entries, err := h.store.GetWishlistsByUser(c.Request.Context(), user.ID.Hex())
	if err != nil {
		storageError(c, err, "wishlist")
		return
	}
	c.JSON(http.StatusOK, entries)
}

type wishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *WishlistHandler) Add(c *gin.Context) {
	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)
	entry := &models.Wishlist{UserID: user.ID, ProductID: productID}
	err = h.store.CreateWishlist(ctx, entry)
	if errors.Is(err, storage.ErrDuplicate) {
		// Already wishlisted; answer with the existing entry.
		entries, err := h.store.GetWishlistsByUser(ctx, user.ID.Hex())
		if err != nil {
			storageError(c, err, "wishlist")
			return
		}
		for _, existing := range entries {
			if existing.ProductID == productID {
				c.JSON(http.StatusOK, existing)
				return
			}
		}
		c.JSON(http.StatusOK, entry)
		return
	}
	if err != nil {
		storageError(c, err, "wishlist entry")
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := h.store.DeleteWishlistByUserAndProduct(c.Request.Context(), user.ID.Hex(), c.Param("productId"))
	if err != nil {
		storageError(c, err, "wishlist entry")
		return
	}
	c.Status(http.StatusNoContent)
}
