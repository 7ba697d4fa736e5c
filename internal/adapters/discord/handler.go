package discord

import (
	"herald/internal/ports/input"
	"herald/internal/ports/output"
)

// Handler answers prefix commands using the schedule use case.
type Handler struct {
	schedule   input.ScheduleUseCase
	translator output.T
	locale     string
	prefix     string
}

// NewHandler creates a Handler.
func NewHandler(
	schedule input.ScheduleUseCase,
	translator output.T,
	locale string,
	prefix string,
) *Handler {
	return &Handler{
		schedule:   schedule,
		translator: translator,
		locale:     locale,
		prefix:     prefix,
	}
}
