package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"organic-marketplace/internal/middleware"
	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

type SellerHandler struct {
	store storage.Store
	log   *logrus.Logger
}

func NewSellerHandler(store storage.Store, log *logrus.Logger) *SellerHandler {
	return &SellerHandler{store: store, log: log}
}

type sellerRegistrationRequest struct {
	PersonalDetails struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
		Mobile    string `json:"mobile" binding:"required"`
	} `json:"personalDetails" binding:"required"`
	BusinessDetails struct {
		BusinessName string `json:"businessName" binding:"required"`
		Address      string `json:"address" binding:"required"`
		GSTNumber    string `json:"gstNumber"`
	} `json:"businessDetails" binding:"required"`
}

// Register files a seller application for the authenticated user. One
// application per user; the profile starts in pending.
func (h *SellerHandler) Register(c *gin.Context) {
	var req sellerRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	seller := &models.Seller{
		UserID: user.ID,
		PersonalDetails: models.PersonalDetails{
			FirstName: req.PersonalDetails.FirstName,
			LastName:  req.PersonalDetails.LastName,
			Email:     req.PersonalDetails.Email,
			Mobile:    req.PersonalDetails.Mobile,
		},
		BusinessDetails: models.BusinessDetails{
			BusinessName: req.BusinessDetails.BusinessName,
			Address:      req.BusinessDetails.Address,
			GSTNumber:    req.BusinessDetails.GSTNumber,
		},
		Status: models.SellerPending,
	}
	if err := h.store.CreateSeller(c.Request.Context(), seller); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seller profile already exists"})
			return
		}
		storageError(c, err, "seller profile")
		return
	}
	c.JSON(http.StatusCreated, seller)
}

func (h *SellerHandler) Status(c *gin.Context) {
	user := middleware.CurrentUser(c)
	seller, err := h.store.GetSellerByUser(c.Request.Context(), user.ID.Hex())
	if err != nil {
		storageError(c, err, "seller profile")
		return
	}
	c.JSON(http.StatusOK, seller)
}

func (h *SellerHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if s := c.Query("status"); s != "" {
		status, ok := models.ParseSellerStatus(s)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown seller status"})
			return
		}
		sellers, err := h.store.GetSellersByStatus(ctx, status)
		if err != nil {
			storageError(c, err, "sellers")
			return
		}
		c.JSON(http.StatusOK, sellers)
		return
	}

	sellers, err := h.store.GetAllSellers(ctx)
	if err != nil {
		storageError(c, err, "sellers")
		return
	}
	c.JSON(http.StatusOK, sellers)
}

type sellerStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an application through pending/approved/rejected.
// Approval also flips the applicant's account role to seller.
func (h *SellerHandler) UpdateStatus(c *gin.Context) {
	var req sellerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	status, ok := models.ParseSellerStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown seller status"})
		return
	}

	ctx := c.Request.Context()
	seller, err := h.store.UpdateSeller(ctx, c.Param("id"), storage.Fields{"status": status})
	if err != nil {
		storageError(c, err, "seller profile")
		return
	}

	if status == models.SellerApproved {
		if _, err := h.store.UpdateUser(ctx, seller.UserID.Hex(), storage.Fields{"role": models.RoleSeller}); err != nil {
			h.log.WithError(err).WithField("user", seller.UserID.Hex()).Error("failed to promote approved seller")
		}
	}
	c.JSON(http.StatusOK, seller)
}
