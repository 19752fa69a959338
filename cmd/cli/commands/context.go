package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/nurseshiftly/nurseshiftly/internal/config"
	"github.com/nurseshiftly/nurseshiftly/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Store  *postgres.DB // nil when no postgresDSN is configured
	Logger *zap.Logger
	Ctx    context.Context
}
