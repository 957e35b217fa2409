package model

import "time"

const (
	ShipmentStatusUnknown   = "UNKNOWN"
	ShipmentStatusInTransit = "IN_TRANSIT"
	ShipmentStatusDelivered = "DELIVERED"
)

type Shipment struct {
	TrackingNumber string     `json:"tracking_number"`
	Status         string     `json:"status"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

// ShipmentRequest is a queued poll of the carrier for one order.
type ShipmentRequest struct {
	OrderNumber    string
	TrackingNumber string
	Attempts       int
}
