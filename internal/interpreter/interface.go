package interpreter

import "context"

// UseCase turns one free-text command into a structured result.
type UseCase interface {
	// Interpret classifies text into exactly one intent and executes it.
	// It never fails: any internal error degrades to an error-intent result.
	Interpret(ctx context.Context, text string) Result
}
