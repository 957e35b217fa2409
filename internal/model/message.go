package model

import "time"

const (
	EventMessage      = "message"
	EventNotification = "notification"
	EventOrderStatus  = "order_status"
	EventMessagesRead = "messages_read"
)

type Message struct {
	ID          string    `json:"id"`
	SenderID    int       `json:"sender_id"`
	RecipientID int       `json:"recipient_id"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

type MessageInput struct {
	RecipientID int    `json:"recipient_id" validate:"required,gt=0"`
	Body        string `json:"body" validate:"required,max=2000"`
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Event is what subscribers of the hub receive.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
