// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cram/internal/adapters/config"
	_ "go.trai.ch/cram/internal/adapters/legacy"
	_ "go.trai.ch/cram/internal/adapters/logger"
	_ "go.trai.ch/cram/internal/adapters/manifest"
	_ "go.trai.ch/cram/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/cram/internal/app"
	_ "go.trai.ch/cram/internal/engine/compat"
	_ "go.trai.ch/cram/internal/engine/pruner"
)
