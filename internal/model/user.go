package model

import "github.com/shopspring/decimal"

const (
	RoleCustomer = "customer"
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

type User struct {
	ID       int
	Login    string
	Password string
	Role     string
	Balance  decimal.Decimal
}

type LoginInput struct {
	Login    string `json:"login" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

type BalanceWithdrawn struct {
	Balance   decimal.Decimal `json:"current"`
	Withdrawn decimal.Decimal `json:"withdrawn"`
}

type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}
