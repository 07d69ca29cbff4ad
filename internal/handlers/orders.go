package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

type OrderHandler struct {
	store storage.Store
	log   *logrus.Logger
}

func NewOrderHandler(store storage.Store, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{store: store, log: log}
}

type orderResponse struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)

	if user.Role != models.RoleAdmin {
		orders, err := h.store.GetOrdersByBuyer(ctx, user.ID.Hex())
		if err != nil {
			storageError(c, err, "orders")
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	if s := c.Query("status"); s != "" {
		status, ok := models.ParseOrderStatus(s)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
			return
		}
		orders, err := h.store.GetOrdersByStatus(ctx, status)
		if err != nil {
			storageError(c, err, "orders")
			return
		}
		c.JSON(http.StatusOK, orders)
		return
	}

	orders, err := h.store.GetAllOrders(ctx)
	if err != nil {
		storageError(c, err, "orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)

	order, err := h.store.GetOrder(ctx, c.Param("id"))
	if err != nil {
		storageError(c, err, "order")
		return
	}
	if user.Role != models.RoleAdmin && order.BuyerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	items, err := h.store.GetOrderItemsByOrder(ctx, order.ID.Hex())
	if err != nil {
		storageError(c, err, "order items")
		return
	}
	c.JSON(http.StatusOK, orderResponse{Order: *order, Items: items})
}

type placeOrderRequest struct {
	Address string `json:"address" binding:"required"`
}

// Place turns the requester's cart into an order: prices are snapshotted into
// order items, stock decremented, and the cart emptied. The steps are not
// transactional; a failure mid-way leaves earlier writes in place.
func (h *OrderHandler) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	user := middleware.CurrentUser(c)

	cart, err := h.store.GetCartByUser(ctx, user.ID.Hex())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}
		storageError(c, err, "cart")
		return
	}
	cartItems, err := h.store.GetCartItemsByCart(ctx, cart.ID.Hex())
	if err != nil {
		storageError(c, err, "cart items")
		return
	}
	if len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	var total float64
	products := make(map[string]*models.Product, len(cartItems))
	for _, item := range cartItems {
		product, err := h.store.GetProduct(ctx, item.ProductID.Hex())
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "product no longer available: " + item.ProductID.Hex()})
				return
			}
			storageError(c, err, "product")
			return
		}
		if product.Stock < item.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
					product.Name, item.Quantity, product.Stock),
			})
			return
		}
		products[item.ProductID.Hex()] = product
		total += product.Price * float64(item.Quantity)
	}

	order := &models.Order{
		BuyerID: user.ID,
		Status:  models.OrderPending,
		Total:   total,
		Address: req.Address,
	}
	if err := h.store.CreateOrder(ctx, order); err != nil {
		storageError(c, err, "order")
		return
	}

	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		product := products[item.ProductID.Hex()]
		orderItem := models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		}
		if err := h.store.CreateOrderItem(ctx, &orderItem); err != nil {
			storageError(c, err, "order item")
			return
		}
		orderItems = append(orderItems, orderItem)

		if err := h.store.AdjustProductStock(ctx, item.ProductID.Hex(), -item.Quantity); err != nil {
			h.log.WithError(err).WithField("product", item.ProductID.Hex()).Warn("stock adjustment failed")
		}
	}

	for _, item := range cartItems {
		if err := h.store.DeleteCartItem(ctx, item.ID.Hex()); err != nil && !errors.Is(err, storage.ErrNotFound) {
			h.log.WithError(err).Warn("failed to clear cart item after order")
		}
	}

	c.JSON(http.StatusCreated, orderResponse{Order: *order, Items: orderItems})
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	status, ok := models.ParseOrderStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
		return
	}

	order, err := h.store.UpdateOrder(c.Request.Context(), c.Param("id"), storage.Fields{"status": status})
	if err != nil {
		storageError(c, err, "order")
		return
	}
	c.JSON(http.StatusOK, order)
}
