package payments

import "strings"

const (
	// PlanGold is the subscription every registration signs up for.
	PlanGold = "gold"

	// GoldMonthlyCents is the advertised monthly price for one-time
	// billing of the gold plan.
	GoldMonthlyCents = 5000

	DefaultCurrency = "usd"
)

func IsValidPlan(plan string) bool {
	return strings.ToLower(plan) == PlanGold
}
