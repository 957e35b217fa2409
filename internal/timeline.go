package internal

import (
	"time"

	"github.com/DrGermanius/Shopmart/internal/model"
)

// Neither confirmation nor processing has its own timestamp, so both are
// estimated from the nearest recorded one.
const (
	confirmationEstimate = 20 * time.Minute
	processingEstimate   = 20 * time.Minute
)

const isoLayout = "2006-01-02T15:04:05.000Z07:00"

type stage struct {
	status string
	label  string
	date   func(o model.Order) string
}

// Display order, cancelled included, never depends on the order data.
var stages = []stage{
	{model.OrderStatusPending, "Pending", func(o model.Order) string {
		return formatTime(o.CreatedAt)
	}},
	{model.OrderStatusConfirmed, "Confirmed", func(o model.Order) string {
		return formatEstimate(o.CreatedAt, confirmationEstimate)
	}},
	{model.OrderStatusProcessing, "Processing", func(o model.Order) string {
		return formatEstimate(o.UpdatedAt, processingEstimate)
	}},
	{model.OrderStatusShipped, "Shipped", func(o model.Order) string {
		return formatTimePtr(o.ShippedAt)
	}},
	{model.OrderStatusCancelled, "Cancelled", func(o model.Order) string {
		return formatTime(o.UpdatedAt)
	}},
	{model.OrderStatusDelivered, "Delivered", func(o model.Order) string {
		return formatTimePtr(o.DeliveredAt)
	}},
}

// DeriveTimeline paints the order's current status onto the fixed list of
// lifecycle stages. Only the stage matching o.Status is completed and dated;
// an unknown status leaves every stage blank.
func DeriveTimeline(o model.Order) []model.TimelineStage {
	timeline := make([]model.TimelineStage, 0, len(stages))
	for _, s := range stages {
		ts := model.TimelineStage{Label: s.label}
		if o.Status == s.status {
			ts.Completed = true
			ts.Date = s.date(o)
		}
		timeline = append(timeline, ts)
	}
	return timeline
}

func IsKnownStatus(status string) bool {
	for _, s := range stages {
		if s.status == status {
			return true
		}
	}
	return false
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(isoLayout)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatEstimate(t time.Time, d time.Duration) string {
	if t.IsZero() {
		return ""
	}
	return formatTime(t.Add(d))
}
