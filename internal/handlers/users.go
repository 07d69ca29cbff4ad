package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

type UserHandler struct {
	store storage.Store
	log   *logrus.Logger
}

func NewUserHandler(store storage.Store, log *logrus.Logger) *UserHandler {
	return &UserHandler{store: store, log: log}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.GetAllUsers(c.Request.Context())
	if err != nil {
		storageError(c, err, "users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) ListByRole(c *gin.Context) {
	role, ok := models.ParseRole(c.Param("role"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}
	users, err := h.store.GetUsersByRole(c.Request.Context(), role)
	if err != nil {
		storageError(c, err, "users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	requester := middleware.CurrentUser(c)
	id := c.Param("id")
	if requester.Role != models.RoleAdmin && requester.ID.Hex() != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		storageError(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Role    *string `json:"role"`
}

func (h *UserHandler) Update(c *gin.Context) {
	requester := middleware.CurrentUser(c)
	id := c.Param("id")
	if requester.Role != models.RoleAdmin && requester.ID.Hex() != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	fields := storage.Fields{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	// Role changes are an admin operation; others silently keep their role.
	if req.Role != nil && requester.Role == models.RoleAdmin {
		role, ok := models.ParseRole(*req.Role)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
			return
		}
		fields["role"] = role
	}

	user, err := h.store.UpdateUser(c.Request.Context(), id, fields)
	if err != nil {
		storageError(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	requester := middleware.CurrentUser(c)
	id := c.Param("id")
	if requester.Role != models.RoleAdmin && requester.ID.Hex() != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		storageError(c, err, "user")
		return
	}
	// Admin accounts are undeletable, even by themselves.
	if user.Role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot delete admin user"})
		return
	}

	if err := h.store.DeleteUser(c.Request.Context(), id); err != nil {
		storageError(c, err, "user")
		return
	}
	c.Status(http.StatusNoContent)
}
