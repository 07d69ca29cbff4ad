package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"organic-marketplace/internal/models"
)

// Storefront content: hero sliders, promo ads, ebooks.

func (m *Mongo) GetHeroSlider(ctx context.Context, id string) (*models.HeroSlider, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var slider models.HeroSlider
	if err := m.db.Collection("herosliders").FindOne(ctx, bson.M{"_id": objID}).Decode(&slider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get hero slider: %w", err)
	}
	return &slider, nil
}

func (m *Mongo) CreateHeroSlider(ctx context.Context, slider *models.HeroSlider) error {
	if slider.ID.IsZero() {
		slider.ID = primitive.NewObjectID()
	}
	return m.insert(ctx, "herosliders", slider)
}

func (m *Mongo) UpdateHeroSlider(ctx context.Context, id string, fields Fields) (*models.HeroSlider, error) {
	if len(fields) == 0 {
		return m.GetHeroSlider(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var slider models.HeroSlider
	err = m.db.Collection("herosliders").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&slider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update hero slider: %w", err)
	}
	return &slider, nil
}

func (m *Mongo) DeleteHeroSlider(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "herosliders", id)
}

func (m *Mongo) GetAllHeroSliders(ctx context.Context) ([]models.HeroSlider, error) {
	return m.findHeroSliders(ctx, bson.M{})
}

func (m *Mongo) GetActiveHeroSliders(ctx context.Context) ([]models.HeroSlider, error) {
	return m.findHeroSliders(ctx, bson.M{"isActive": true})
}

func (m *Mongo) findHeroSliders(ctx context.Context, filter bson.M) ([]models.HeroSlider, error) {
	cur, err := m.db.Collection("herosliders").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list hero sliders: %w", err)
	}
	var sliders []models.HeroSlider
	if err := cur.All(ctx, &sliders); err != nil {
		return nil, fmt.Errorf("decode hero sliders: %w", err)
	}
	return sliders, nil
}

func (m *Mongo) GetPromoAd(ctx context.Context, id string) (*models.PromoAd, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var ad models.PromoAd
	if err := m.db.Collection("promoads").FindOne(ctx, bson.M{"_id": objID}).Decode(&ad); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get promo ad: %w", err)
	}
	return &ad, nil
}

func (m *Mongo) CreatePromoAd(ctx context.Context, ad *models.PromoAd) error {
	if ad.ID.IsZero() {
		ad.ID = primitive.NewObjectID()
	}
	return m.insert(ctx, "promoads", ad)
}

func (m *Mongo) UpdatePromoAd(ctx context.Context, id string, fields Fields) (*models.PromoAd, error) {
	if len(fields) == 0 {
		return m.GetPromoAd(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var ad models.PromoAd
	err = m.db.Collection("promoads").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&ad)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update promo ad: %w", err)
	}
	return &ad, nil
}

func (m *Mongo) DeletePromoAd(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "promoads", id)
}

func (m *Mongo) GetAllPromoAds(ctx context.Context) ([]models.PromoAd, error) {
	return m.findPromoAds(ctx, bson.M{})
}

func (m *Mongo) GetActivePromoAds(ctx context.Context) ([]models.PromoAd, error) {
	return m.findPromoAds(ctx, bson.M{"isActive": true})
}

func (m *Mongo) findPromoAds(ctx context.Context, filter bson.M) ([]models.PromoAd, error) {
	cur, err := m.db.Collection("promoads").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list promo ads: %w", err)
	}
	var ads []models.PromoAd
	if err := cur.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("decode promo ads: %w", err)
	}
	return ads, nil
}

func (m *Mongo) GetEbook(ctx context.Context, id string) (*models.Ebook, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var ebook models.Ebook
	if err := m.db.Collection("ebooks").FindOne(ctx, bson.M{"_id": objID}).Decode(&ebook); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get ebook: %w", err)
	}
	return &ebook, nil
}

func (m *Mongo) CreateEbook(ctx context.Context, ebook *models.Ebook) error {
	if ebook.ID.IsZero() {
		ebook.ID = primitive.NewObjectID()
	}
	return m.insert(ctx, "ebooks", ebook)
}

func (m *Mongo) UpdateEbook(ctx context.Context, id string, fields Fields) (*models.Ebook, error) {
	if len(fields) == 0 {
		return m.GetEbook(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var ebook models.Ebook
	err = m.db.Collection("ebooks").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&ebook)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update ebook: %w", err)
	}
	return &ebook, nil
}

func (m *Mongo) DeleteEbook(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "ebooks", id)
}

func (m *Mongo) GetAllEbooks(ctx context.Context) ([]models.Ebook, error) {
	cur, err := m.db.Collection("ebooks").Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list ebooks: %w", err)
	}
	var ebooks []models.Ebook
	if err := cur.All(ctx, &ebooks); err != nil {
		return nil, fmt.Errorf("decode ebooks: %w", err)
	}
	return ebooks, nil
}
