package model

import "time"

type TimelineStage struct {
	Label     string `json:"label"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

type ColorClass string

// PublicOrder is the part of an order anyone holding its number may see.
type PublicOrder struct {
	OrderNumber    string     `json:"order_number"`
	Status         string     `json:"status"`
	PaymentStatus  string     `json:"payment_status"`
	TrackingNumber string     `json:"tracking_number,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ShippedAt      *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

func NewPublicOrder(o Order) PublicOrder {
	return PublicOrder{
		OrderNumber:    o.OrderNumber,
		Status:         o.Status,
		PaymentStatus:  o.PaymentStatus,
		TrackingNumber: o.TrackingNumber,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		ShippedAt:      o.ShippedAt,
		DeliveredAt:    o.DeliveredAt,
	}
}

type PublicTracking struct {
	Order              PublicOrder     `json:"order"`
	Timeline           []TimelineStage `json:"timeline"`
	StatusColor        ColorClass      `json:"status_color"`
	PaymentStatusColor ColorClass      `json:"payment_status_color"`
}

type OrderTracking struct {
	Order              Order           `json:"order"`
	Timeline           []TimelineStage `json:"timeline"`
	StatusColor        ColorClass      `json:"status_color"`
	PaymentStatusColor ColorClass      `json:"payment_status_color"`
}
