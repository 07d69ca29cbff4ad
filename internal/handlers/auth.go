package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"organic-marketplace/internal/auth"
	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

type AuthHandler struct {
	store        storage.Store
	log          *logrus.Logger
	sessionTTL   time.Duration
	cookieSecure bool
}

func NewAuthHandler(store storage.Store, log *logrus.Logger, sessionTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{store: store, log: log, sessionTTL: sessionTTL, cookieSecure: cookieSecure}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process password"})
		return
	}

	user := &models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Phone:    req.Phone,
		Address:  req.Address,
		Role:     models.RoleBuyer,
	}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username or email already taken"})
			return
		}
		h.log.WithError(err).Error("register failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	if err := h.openSession(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open session"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.store.GetUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := h.openSession(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open session"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(auth.SessionCookie); err == nil && token != "" {
		if err := h.store.DeleteSession(c.Request.Context(), token); err != nil && !errors.Is(err, storage.ErrNotFound) {
			h.log.WithError(err).Warn("failed to delete session")
		}
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (h *AuthHandler) openSession(c *gin.Context, user *models.User) error {
	session := auth.NewSession(user.ID, h.sessionTTL)
	if err := h.store.CreateSession(c.Request.Context(), session); err != nil {
		h.log.WithError(err).Error("failed to persist session")
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.SessionCookie, session.Token, int(h.sessionTTL.Seconds()), "/", "", h.cookieSecure, true)
	return nil
}
