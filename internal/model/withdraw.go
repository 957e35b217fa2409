package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawInput struct {
	OrderNumber string          `json:"order" validate:"required,numeric"`
	Sum         decimal.Decimal `json:"sum" validate:"gt=0"`
}

type WithdrawOutput struct {
	OrderNumber string          `json:"order"`
	Sum         decimal.Decimal `json:"sum"`
	ProcessedAt time.Time       `json:"processed_at"`
}

type RechargeInput struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

type Recharge struct {
	ID        int             `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type BalanceSummary struct {
	Balance          decimal.Decimal `json:"current"`
	TotalDeposits    decimal.Decimal `json:"total_deposits"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn"`
	Savings          decimal.Decimal `json:"savings"`
	AverageOrder     decimal.Decimal `json:"average_order"`
	RecommendedTopUp decimal.Decimal `json:"recommended_top_up"`
	OrdersCount      int             `json:"orders_count"`
}
