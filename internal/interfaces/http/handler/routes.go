package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/labelprint/backend/internal/domain/printing"
	"github.com/labelprint/backend/internal/interfaces/http/router"
)

// FormRoutes mounts the record entry form at the root. The middleware only
// wraps the form routes, e.g. the request body limit.
func FormRoutes(h *FormHandler, middleware ...gin.HandlerFunc) *router.DomainGroup {
	group := router.NewDomainGroup("").Use(middleware...)
	group.GET("/", h.Show)
	group.POST("/", h.Submit)
	return group
}

// LabelRoutes mounts the label downloads
func LabelRoutes(h *LabelHandler) *router.DomainGroup {
	group := router.NewDomainGroup("")
	group.GET("/labels.html", h.Download(printing.FormatHTML))
	group.GET("/labels.pdf", h.Download(printing.FormatPDF))
	return group
}

// HealthRoutes mounts the liveness probe
func HealthRoutes(h *HealthHandler) *router.DomainGroup {
	group := router.NewDomainGroup("")
	group.GET("/healthz", h.Healthz)
	group.HEAD("/healthz", h.Healthz)
	return group
}

// NoRoute answers unknown paths with a JSON 404
func NoRoute(c *gin.Context) {
	var h BaseHandler
	h.NotFound(c, "Route not found")
}
