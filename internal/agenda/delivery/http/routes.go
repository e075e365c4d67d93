package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/pending", h.Pending)
		tasks.GET("/status-summary", h.StatusSummary)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.GET("/:id/reschedule", h.Reschedule)
	}

	rg.GET("/conflicts", h.Conflicts)
	rg.GET("/suggestions", h.Suggestions)
}
