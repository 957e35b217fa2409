package internal

import "github.com/DrGermanius/Shopmart/internal/model"

const (
	colorYellow model.ColorClass = "bg-yellow-100 text-yellow-800"
	colorBlue   model.ColorClass = "bg-blue-100 text-blue-800"
	colorPurple model.ColorClass = "bg-purple-100 text-purple-800"
	colorIndigo model.ColorClass = "bg-indigo-100 text-indigo-800"
	colorGreen  model.ColorClass = "bg-green-100 text-green-800"
	colorRed    model.ColorClass = "bg-red-100 text-red-800"
	colorGray   model.ColorClass = "bg-gray-100 text-gray-800"
)

func StatusColor(status string) model.ColorClass {
	switch status {
	case model.OrderStatusPending:
		return colorYellow
	case model.OrderStatusConfirmed:
		return colorBlue
	case model.OrderStatusProcessing:
		return colorPurple
	case model.OrderStatusShipped:
		return colorIndigo
	case model.OrderStatusDelivered:
		return colorGreen
	case model.OrderStatusCancelled:
		return colorRed
	default:
		return colorGray
	}
}

// PaymentStatusColor takes the same values as StatusColor because payment
// statuses are stored with the order status enum.
func PaymentStatusColor(status string) model.ColorClass {
	switch status {
	case model.OrderStatusPending, model.OrderStatusProcessing:
		return colorYellow
	case model.OrderStatusConfirmed, model.OrderStatusDelivered:
		return colorGreen
	case model.OrderStatusShipped:
		return colorBlue
	case model.OrderStatusCancelled:
		return colorRed
	default:
		return colorGray
	}
}
