// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lfx/internal/adapters/fs"
	_ "go.trai.ch/lfx/internal/adapters/lockfile"
	_ "go.trai.ch/lfx/internal/adapters/logger"
	_ "go.trai.ch/lfx/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/lfx/internal/app"
	_ "go.trai.ch/lfx/internal/engine/resolver"
)
