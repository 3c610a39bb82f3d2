package handlers

import (
	"net/http"

	"restaurant-orders-api/errs"

	"github.com/gin-gonic/gin"
)

// abort stops the chain with the stage's error. No later stage runs.
func abort(c *gin.Context, err *errs.HTTPError) {
	c.AbortWithStatusJSON(err.Status, err)
}

// respond sends a success payload in the {"data": ...} envelope.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// noContent sends the empty 204 used by delete.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
