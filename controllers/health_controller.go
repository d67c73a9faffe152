package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pawscare/vet-clinic-site/config"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vet clinic API is running",
	})
}

// DatabaseStatus checks database connectivity and returns table information
func DatabaseStatus(c *gin.Context) {
	db := config.GetDB()
	if db == nil {
		respondError(c, http.StatusInternalServerError, CodeDatabase, "Database not initialized")
		return
	}

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		respondServerError(c, CodeDatabase, "Failed to get database instance", err)
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("Database ping failed")
		respondError(c, http.StatusInternalServerError, "DATABASE_CONNECTION_ERROR", "Database connection failed")
		return
	}

	tables, err := db.WithContext(c.Request.Context()).Migrator().GetTables()
	if err != nil {
		respondServerError(c, "DATABASE_QUERY_ERROR", "Failed to query tables", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
