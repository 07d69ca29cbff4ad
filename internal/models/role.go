package models

// Role is the account role checked at the authorization boundary.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSeller Role = "seller"
	RoleBuyer  Role = "buyer"
)

// ParseRole returns the typed role for s, or false when s names no known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleSeller, RoleBuyer:
		return Role(s), true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

type SellerStatus string

const (
	SellerPending  SellerStatus = "pending"
	SellerApproved SellerStatus = "approved"
	SellerRejected SellerStatus = "rejected"
)

func ParseSellerStatus(s string) (SellerStatus, bool) {
	switch SellerStatus(s) {
	case SellerPending, SellerApproved, SellerRejected:
		return SellerStatus(s), true
	}
	return "", false
}
