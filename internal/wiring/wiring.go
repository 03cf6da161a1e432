// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/otpsync/internal/adapters/cache"
	_ "go.trai.ch/otpsync/internal/adapters/feedlist"
	_ "go.trai.ch/otpsync/internal/adapters/fetch"
	_ "go.trai.ch/otpsync/internal/adapters/logger"
	_ "go.trai.ch/otpsync/internal/adapters/shell"
	_ "go.trai.ch/otpsync/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/otpsync/internal/app"
)
