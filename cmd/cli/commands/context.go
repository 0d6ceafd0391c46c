package commands

import (
	"bufio"
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/shift-rota/internal/config"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Logger *zap.Logger
	Ctx    context.Context

	// In is shared by the interactive session and the roster prompts so
	// neither loses input the other has buffered
	In  *bufio.Reader
	Out io.Writer
}
