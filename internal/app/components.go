package app

import (
	"go.trai.ch/ripple/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/ripple/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger

	// Console is the concrete logger, used by the CLI to adjust verbosity.
	Console *logger.Logger

	Telemetry ports.Telemetry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, log ports.Logger, console *logger.Logger, telemetry ports.Telemetry) *Components {
	return &Components{
		App:       app,
		Logger:    log,
		Console:   console,
		Telemetry: telemetry,
	}
}
