package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the interpreter endpoint.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/nlu", h.Interpret)
}
