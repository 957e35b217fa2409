package internal

import "errors"

var (
	ErrLoginIsAlreadyTaken = errors.New("login is already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")

	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNumberConflict = errors.New("order number already exists")
	ErrProductNotFound     = errors.New("product not found")
	ErrNoRecords           = errors.New("no records")
	ErrInvalidStatus       = errors.New("invalid order status")

	ErrLuhnInvalid = errors.New("number invalid by luhn")

	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrMessageToSelf        = errors.New("cannot send message to self")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrTooManyRequests = errors.New("too many requests")
)
