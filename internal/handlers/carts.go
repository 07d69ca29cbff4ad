package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

type CartHandler struct {
	store storage.Store
	log   *logrus.Logger
}

func NewCartHandler(store storage.Store, log *logrus.Logger) *CartHandler {
	return &CartHandler{store: store, log: log}
}

type cartResponse struct {
	ID     primitive.ObjectID `json:"id"`
	UserID primitive.ObjectID `json:"userId"`
	Items  []models.CartItem  `json:"items"`
}

func (h *CartHandler) Get(c *gin.Context) {
	cart, items, ok := h.loadCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, cartResponse{ID: cart.ID, UserID: cart.UserID, Items: items})
}

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	cart, items, ok := h.loadCart(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	merged := false
	for _, item := range items {
		if item.ProductID == productID {
			fields := storage.Fields{"quantity": item.Quantity + req.Quantity}
			if _, err := h.store.UpdateCartItem(ctx, item.ID.Hex(), fields); err != nil {
				storageError(c, err, "cart item")
				return
			}
			merged = true
			break
		}
	}
	if !merged {
		item := &models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: req.Quantity}
		if err := h.store.CreateCartItem(ctx, item); err != nil {
			storageError(c, err, "cart item")
			return
		}
	}

	items, err = h.store.GetCartItemsByCart(ctx, cart.ID.Hex())
	if err != nil {
		storageError(c, err, "cart items")
		return
	}
	c.JSON(http.StatusOK, cartResponse{ID: cart.ID, UserID: cart.UserID, Items: items})
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cart, items, ok := h.loadCart(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	target, found := findItem(items, c.Param("productId"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		return
	}

	// Quantity at or below zero removes the line, matching client behavior.
	if req.Quantity <= 0 {
		if err := h.store.DeleteCartItem(ctx, target.ID.Hex()); err != nil {
			storageError(c, err, "cart item")
			return
		}
	} else {
		if _, err := h.store.UpdateCartItem(ctx, target.ID.Hex(), storage.Fields{"quantity": req.Quantity}); err != nil {
			storageError(c, err, "cart item")
			return
		}
	}

	items, err := h.store.GetCartItemsByCart(ctx, cart.ID.Hex())
	if err != nil {
		storageError(c, err, "cart items")
		return
	}
	c.JSON(http.StatusOK, cartResponse{ID: cart.ID, UserID: cart.UserID, Items: items})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, items, ok := h.loadCart(c)
	if !ok {
		return
	}

	target, found := findItem(items, c.Param("productId"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		return
	}

	ctx := c.Request.Context()
	if err := h.store.DeleteCartItem(ctx, target.ID.Hex()); err != nil {
		storageError(c, err, "cart item")
		return
	}

	items, err := h.store.GetCartItemsByCart(ctx, cart.ID.Hex())
	if err != nil {
		storageError(c, err, "cart items")
		return
	}
	c.JSON(http.StatusOK, cartResponse{ID: cart.ID, UserID: cart.UserID, Items: items})
}

func (h *CartHandler) Clear(c *gin.Context) {
	cart, items, ok := h.loadCart(c)
	if !ok {
		return
	}
	if err := h.clearItems(c.Request.Context(), items); err != nil {
		storageError(c, err, "cart items")
		return
	}
	c.JSON(http.StatusOK, cartResponse{ID: cart.ID, UserID: cart.UserID, Items: []models.CartItem{}})
}

// loadCart fetches the requester's cart and its items, creating the cart on
// first use. On failure it writes the error response and returns ok=false.
func (h *CartHandler) loadCart(c *gin.Context) (*models.Cart, []models.CartItem, bool) {
	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)

	cart, err := h.store.GetCartByUser(ctx, user.ID.Hex())
	if errors.Is(err, storage.ErrNotFound) {
		cart = &models.Cart{UserID: user.ID}
		err = h.store.CreateCart(ctx, cart)
		// A concurrent first request may have won the unique userId index.
		if errors.Is(err, storage.ErrDuplicate) {
			cart, err = h.store.GetCartByUser(ctx, user.ID.Hex())
		}
	}
	if err != nil {
		storageError(c, err, "cart")
		return nil, nil, false
	}

	items, err := h.store.GetCartItemsByCart(ctx, cart.ID.Hex())
	if err != nil {
		storageError(c, err, "cart items")
		return nil, nil, false
	}
	return cart, items, true
}

func (h *CartHandler) clearItems(ctx context.Context, items []models.CartItem) error {
	for _, item := range items {
		if err := h.store.DeleteCartItem(ctx, item.ID.Hex()); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
	}
	return nil
}

func findItem(items []models.CartItem, productID string) (models.CartItem, bool) {
	for _, item := range items {
		if item.ProductID.Hex() == productID {
			return item, true
		}
	}
	return models.CartItem{}, false
}
