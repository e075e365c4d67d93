package http

import (
	"github.com/gin-gonic/gin"

	"agenda-assistant/internal/agenda"
	"agenda-assistant/pkg/log"
)

// Handler is the public interface for the agenda HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Pending(c *gin.Context)
	StatusSummary(c *gin.Context)
	Conflicts(c *gin.Context)
	Suggestions(c *gin.Context)
	Reschedule(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc agenda.UseCase
}

// New creates a new HTTP handler for the agenda domain.
func New(l log.Logger, uc agenda.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
