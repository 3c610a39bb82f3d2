package handlers

import (
	"net/http"

	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Health is the liveness endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant Orders API",
		"version": "1.0.0",
	})
}

// Welcome greets clients at the root with pointers to the useful bits.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Welcome to the Restaurant Orders API",
		"docs":      "/state-machine",
		"health":    "/health",
		"resources": []string{"/dishes", "/orders"},
	})
}

// StateMachineInfo returns the suggested order lifecycle plus the two
// enforced rules, for documentation and Postman collections.
func StateMachineInfo(c *gin.Context) {
	var transitions []gin.H
	for _, s := range statemachine.AllStatuses {
		for _, next := range statemachine.NextStates(s) {
			transitions = append(transitions, gin.H{"from": s, "to": next})
		}
	}
	var terminal []models.OrderStatus
	for _, s := range statemachine.AllStatuses {
		if statemachine.Terminal(s) {
			terminal = append(terminal, s)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses":        statemachine.AllStatuses,
		"suggested_path":  transitions,
		"terminal_states": terminal,
		"rules": []string{
			"a delivered order cannot be changed",
			"an order cannot be deleted unless it is pending",
		},
	})
}
