// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depcheck/internal/adapters/config"
	_ "go.trai.ch/depcheck/internal/adapters/fs/fsnode"
	_ "go.trai.ch/depcheck/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/depcheck/internal/app"
	_ "go.trai.ch/depcheck/internal/engine/checker/checkernode"
)
