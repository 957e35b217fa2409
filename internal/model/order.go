package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCancelled  = "cancelled"
	OrderStatusDelivered  = "delivered"
)

// Payment statuses share the order status values in the stored data.
const (
	PaymentStatusPending   = OrderStatusPending
	PaymentStatusConfirmed = OrderStatusConfirmed
)

const (
	PaymentMethodCard   = "card"
	PaymentMethodWallet = "wallet"
	PaymentMethodCOD    = "cod"
)

type Order struct {
	ID              string          `json:"id"`
	OrderNumber     string          `json:"order_number"`
	UserID          int             `json:"user_id"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	TrackingNumber  string          `json:"tracking_number,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	ShippedAt       *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	Items           []OrderItem     `json:"order_items,omitempty"`
}

type OrderItem struct {
	ID       int             `json:"id"`
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type Product struct {
	ID         int             `json:"id"`
	MerchantID int             `json:"merchant_id"`
	Title      string          `json:"title"`
	Image      string          `json:"image,omitempty"`
	Price      decimal.Decimal `json:"price"`
}

type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string           `json:"shipping_address" validate:"required,max=500"`
	PaymentMethod   string           `json:"payment_method" validate:"required,oneof=card wallet cod"`
}

type OrderItemInput struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,min=1,max=1000"`
}

type StatusUpdateInput struct {
	Status         string `json:"status" validate:"required"`
	TrackingNumber string `json:"tracking_number" validate:"max=64"`
}

// StatusChange is what the repository persists when an order moves to Status.
// A non-zero MerchantID limits the change to orders holding that merchant's products.
type StatusChange struct {
	Status         string
	TrackingNumber string
	MerchantID     int
	At             time.Time
}

type ProductInput struct {
	Title string          `json:"title" validate:"required,max=255"`
	Image string          `json:"image" validate:"omitempty,url"`
	Price decimal.Decimal `json:"price" validate:"gt=0"`
}

// OrderStatusEvent is published to the broker on every status change.
type OrderStatusEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      int       `json:"user_id"`
	Status      string    `json:"status"`
	ChangedAt   time.Time `json:"changed_at"`
}
