package handlers

import (
	"net/http"

	"xoadvisor/middleware"
	"xoadvisor/services/site"
	"xoadvisor/utils"

	"github.com/gin-gonic/gin"
)

// NavigationHandler handles GET /api/site/navigation.
func NavigationHandler(c *gin.Context) {
	c.JSON(http.StatusOK, site.Navigation(middleware.GetSession(c).Role))
}

// HealthHandler reports the last dependency check.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
