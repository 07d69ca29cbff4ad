package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"organic-marketplace/internal/models"
	"organic-marketplace/internal/storage"
)

// ContentHandler serves storefront content: hero sliders, promo ads, ebooks.
type ContentHandler struct {
	store storage.Store
	log   *logrus.Logger
}

func NewContentHandler(store storage.Store, log *logrus.Logger) *ContentHandler {
	return &ContentHandler{store: store, log: log}
}

func (h *ContentHandler) ListHeroSliders(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		sliders []models.HeroSlider
		err     error
	)
	if c.Query("active") == "true" {
		sliders, err = h.store.GetActiveHeroSliders(ctx)
	} else {
		sliders, err = h.store.GetAllHeroSliders(ctx)
	}
	if err != nil {
		storageError(c, err, "hero sliders")
		return
	}
	c.JSON(http.StatusOK, sliders)
}

type heroSliderRequest struct {
	Title    string `json:"title" binding:"required"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image" binding:"required"`
	Link     string `json:"link"`
	IsActive bool   `json:"isActive"`
}

func (h *ContentHandler) CreateHeroSlider(c *gin.Context) {
	var req heroSliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	slider := &models.HeroSlider{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
		Link:     req.Link,
		IsActive: req.IsActive,
	}
	if err := h.store.CreateHeroSlider(c.Request.Context(), slider); err != nil {
		storageError(c, err, "hero slider")
		return
	}
	c.JSON(http.StatusCreated, slider)
}

type updateHeroSliderRequest struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Image    *string `json:"image"`
	Link     *string `json:"link"`
	IsActive *bool   `json:"isActive"`
}

func (h *ContentHandler) UpdateHeroSlider(c *gin.Context) {
	var req updateHeroSliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	fields := storage.Fields{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Subtitle != nil {
		fields["subtitle"] = *req.Subtitle
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Link != nil {
		fields["link"] = *req.Link
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}
	slider, err := h.store.UpdateHeroSlider(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		storageError(c, err, "hero slider")
		return
	}
	c.JSON(http.StatusOK, slider)
}

func (h *ContentHandler) DeleteHeroSlider(c *gin.Context) {
	if err := h.store.DeleteHeroSlider(c.Request.Context(), c.Param("id")); err != nil {
		storageError(c, err, "hero slider")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) ListPromoAds(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		ads []models.PromoAd
		err error
	)
	if c.Query("active") == "true" {
		ads, err = h.store.GetActivePromoAds(ctx)
	} else {
		ads, err = h.store.GetAllPromoAds(ctx)
	}
	if err != nil {
		storageError(c, err, "promo ads")
		return
	}
	c.JSON(http.StatusOK, ads)
}

type promoAdRequest struct {
	Title    string `json:"title" binding:"required"`
	Image    string `json:"image" binding:"required"`
	Link     string `json:"link"`
	IsActive bool   `json:"isActive"`
}

func (h *ContentHandler) CreatePromoAd(c *gin.Context) {
	var req promoAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ad := &models.PromoAd{Title: req.Title, Image: req.Image, Link: req.Link, IsActive: req.IsActive}
	if err := h.store.CreatePromoAd(c.Request.Context(), ad); err != nil {
		storageError(c, err, "promo ad")
		return
	}
	c.JSON(http.StatusCreated, ad)
}

type updatePromoAdRequest struct {
	Title    *string `json:"title"`
	Image    *string `json:"image"`
	Link     *string `json:"link"`
	IsActive *bool   `json:"isActive"`
}

func (h *ContentHandler) UpdatePromoAd(c *gin.Context) {
	var req updatePromoAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	fields := storage.Fields{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Link != nil {
		fields["link"] = *req.Link
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}
	ad, err := h.store.UpdatePromoAd(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		storageError(c, err, "promo ad")
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (h *ContentHandler) DeletePromoAd(c *gin.Context) {
	if err := h.store.DeletePromoAd(c.Request.Context(), c.Param("id")); err != nil {
		storageError(c, err, "promo ad")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContentHandler) ListEbooks(c *gin.Context) {
	ebooks, err := h.store.GetAllEbooks(c.Request.Context())
	if err != nil {
		storageError(c, err, "ebooks")
		return
	}
	c.JSON(http.StatusOK, ebooks)
}

func (h *ContentHandler) GetEbook(c *gin.Context) {
	ebook, err := h.store.GetEbook(c.Request.Context(), c.Param("id"))
	if err != nil {
		storageError(c, err, "ebook")
		return
	}
	c.JSON(http.StatusOK, ebook)
}

type ebookRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	FileURL     string  `json:"fileUrl" binding:"required"`
	Price       float64 `json:"price" binding:"min=0"`
}

func (h *ContentHandler) CreateEbook(c *gin.Context) {
	var req ebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	ebook := &models.Ebook{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		FileURL:     req.FileURL,
		Price:       req.Price,
	}
	if err := h.store.CreateEbook(c.Request.Context(), ebook); err != nil {
		storageError(c, err, "ebook")
		return
	}
	c.JSON(http.StatusCreated, ebook)
}

type updateEbookRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	FileURL     *string  `json:"fileUrl"`
	Price       *float64 `json:"price"`
}

func (h *ContentHandler) UpdateEbook(c *gin.Context) {
	var req updateEbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	fields := storage.Fields{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.FileURL != nil {
		fields["fileUrl"] = *req.FileURL
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	ebook, err := h.store.UpdateEbook(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		storageError(c, err, "ebook")
		return
	}
	c.JSON(http.StatusOK, ebook)
}

func (h *ContentHandler) DeleteEbook(c *gin.Context) {
	if err := h.store.DeleteEbook(c.Request.Context(), c.Param("id")); err != nil {
		storageError(c, err, "ebook")
		return
	}
	c.Status(http.StatusNoContent)
}
