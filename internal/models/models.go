package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Phone     string             `bson:"phone" json:"phone"`
	Address   string             `bson:"address" json:"address"`
	Role      Role               `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	CreatedBy primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}

type Brand struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image" json:"image"`
}

type Product struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Description   string             `bson:"description" json:"description"`
	Price         float64            `bson:"price" json:"price"`
	DiscountPrice float64            `bson:"discountPrice,omitempty" json:"discountPrice,omitempty"`
	Image         string             `bson:"image" json:"image"`
	Stock         int                `bson:"stock" json:"stock"`
	IsOrganic     bool               `bson:"isOrganic" json:"isOrganic"`
	CategoryID    primitive.ObjectID `bson:"categoryId" json:"categoryId"`
	BrandID       primitive.ObjectID `bson:"brandId,omitempty" json:"brandId,omitempty"`
	SellerID      primitive.ObjectID `bson:"sellerId" json:"sellerId"`
}

type HeroSlider struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Subtitle string             `bson:"subtitle" json:"subtitle"`
	Image    string             `bson:"image" json:"image"`
	Link     string             `bson:"link" json:"link"`
	IsActive bool               `bson:"isActive" json:"isActive"`
}

type PromoAd struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Image    string             `bson:"image" json:"image"`
	Link     string             `bson:"link" json:"link"`
	IsActive bool               `bson:"isActive" json:"isActive"`
}

type Ebook struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	FileURL     string             `bson:"fileUrl" json:"fileUrl"`
	Price       float64            `bson:"price" json:"price"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BuyerID   primitive.ObjectID `bson:"buyerId" json:"buyerId"`
	Status    OrderStatus        `bson:"status" json:"status"`
	Total     float64            `bson:"total" json:"total"`
	Address   string             `bson:"address" json:"address"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type OrderItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   primitive.ObjectID `bson:"orderId" json:"orderId"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Price     float64            `bson:"price" json:"price"`
}

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CartID    primitive.ObjectID `bson:"cartId" json:"cartId"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Rating    int                `bson:"rating" json:"rating"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type Wishlist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type PersonalDetails struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Mobile    string `bson:"mobile" json:"mobile"`
}

type BusinessDetails struct {
	BusinessName string `bson:"businessName" json:"businessName"`
	Address      string `bson:"address" json:"address"`
	GSTNumber    string `bson:"gstNumber,omitempty" json:"gstNumber,omitempty"`
}

type Seller struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	PersonalDetails PersonalDetails    `bson:"personalDetails" json:"personalDetails"`
	BusinessDetails BusinessDetails    `bson:"businessDetails" json:"businessDetails"`
	Status          SellerStatus       `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Session is a server-side login session persisted in the document store.
// Token doubles as the document id; expiry is enforced by a TTL index.
type Session struct {
	Token     string             `bson:"_id" json:"-"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
