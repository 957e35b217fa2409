package internal

import (
	"github.com/shopspring/decimal"

	"github.com/DrGermanius/Shopmart/internal/model"
)

var topUpStep = decimal.NewFromInt(10)

// SummarizeBalance folds the user's orders, recharges and withdrawals into
// the wallet overview. Cancelled orders are not counted as spent.
func SummarizeBalance(bw model.BalanceWithdrawn, orders []model.Order, recharges []model.Recharge, withdrawals []model.WithdrawOutput) model.BalanceSummary {
	s := model.BalanceSummary{
		Balance:          bw.Balance,
		TotalDeposits:    decimal.Zero,
		TotalSpent:       decimal.Zero,
		TotalWithdrawn:   decimal.Zero,
		Savings:          decimal.Zero,
		AverageOrder:     decimal.Zero,
		RecommendedTopUp: decimal.Zero,
	}

	for _, r := range recharges {
		s.TotalDeposits = s.TotalDeposits.Add(r.Amount)
	}
	for _, w := range withdrawals {
		s.TotalWithdrawn = s.TotalWithdrawn.Add(w.Sum)
	}
	for _, o := range orders {
		if o.Status == model.OrderStatusCancelled {
			continue
		}
		s.TotalSpent = s.TotalSpent.Add(o.TotalAmount)
		s.OrdersCount++
	}

	if savings := s.TotalDeposits.Sub(s.TotalSpent).Sub(s.TotalWithdrawn); savings.IsPositive() {
		s.Savings = savings
	}

	if s.OrdersCount > 0 {
		s.AverageOrder = s.TotalSpent.Div(decimal.NewFromInt(int64(s.OrdersCount))).Round(2)
		target := s.AverageOrder.Div(topUpStep).Ceil().Mul(topUpStep)
		if topUp := target.Sub(bw.Balance); topUp.IsPositive() {
			s.RecommendedTopUp = topUp
		}
	}

	return s
}
