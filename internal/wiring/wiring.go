// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/populate/internal/adapters/config"
	_ "go.trai.ch/populate/internal/adapters/console"
	_ "go.trai.ch/populate/internal/adapters/logger"
	_ "go.trai.ch/populate/internal/adapters/pip"
	_ "go.trai.ch/populate/internal/adapters/requirements"
	// Register app nodes.
	_ "go.trai.ch/populate/internal/app"
)
