package handlers

import (
	"net/http"
	"time"

	"retail-ledger/internal/database"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// Health reports liveness plus the state of the database connection so the
// frontend (and the deploy scripts) can tell "up" from "up but storageless".
func Health(environment string, port int) gin.HandlerFunc {
	return func(c *gin.Context) {
		connected := false
		state := "disconnected"
		if database.DB != nil {
			if sqlDB, err := database.DB.DB(); err == nil {
				if err := sqlDB.Ping(); err == nil {
					connected = true
					state = "connected"
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"ok":          true,
			"environment": environment,
			"port":        port,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"database": gin.H{
				"connected": connected,
				"state":     state,
			},
			"uptime": time.Since(startTime).Seconds(),
		})
	}
}
