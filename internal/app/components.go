package app

import "go.trai.ch/cachekey/internal/core/ports"

// Components contains the initialized application components used by the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
