package http

import (
	"github.com/gin-gonic/gin"

	"agenda-assistant/internal/interpreter"
	"agenda-assistant/pkg/log"
)

// Handler is the public interface for the interpreter HTTP delivery layer.
type Handler interface {
	Interpret(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc interpreter.UseCase
}

// New creates a new HTTP handler for the command interpreter.
func New(l log.Logger, uc interpreter.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
