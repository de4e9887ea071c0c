// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cachekey/internal/adapters/config"
	_ "go.trai.ch/cachekey/internal/adapters/fs"
	_ "go.trai.ch/cachekey/internal/adapters/logger"
	_ "go.trai.ch/cachekey/internal/adapters/output"
	_ "go.trai.ch/cachekey/internal/adapters/params"
	_ "go.trai.ch/cachekey/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/cachekey/internal/app"
	_ "go.trai.ch/cachekey/internal/engine/transform"
)
