package statemachine

import (
	"restaurant-orders-api/models"
)

// transition defines one step of the suggested order lifecycle
type transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// lifecycle is the suggested path an order takes. It is informational:
// updates may set any valid status, only the delivered/pending guards
// below are enforced.
var lifecycle = []transition{
	{From: models.StatusPending, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusOutForDelivery},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered},
}

// AllStatuses lists every valid order status in lifecycle order.
var AllStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

// Valid reports whether s is one of the four known statuses.
func Valid(s models.OrderStatus) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether an order in status s is frozen for edits.
func Terminal(s models.OrderStatus) bool {
	return s == models.StatusDelivered
}

// Deletable reports whether an order in status s may be removed.
func Deletable(s models.OrderStatus) bool {
	return s == models.StatusPending
}

// NextStates returns the suggested next statuses from a given status
func NextStates(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range lifecycle {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}
