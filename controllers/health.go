package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers the front end's boot check.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
