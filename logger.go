package fixmat

import (
	"log/slog"

	"github.com/katalvlaran/fixmat/internal/logx"
)

// SetLogger configures the logger used by fixmat and all of its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Levels in use:
//   - [slog.LevelDebug]: kernel sizes, dropped out-of-grid fixations
//   - [slog.LevelInfo]: store saves and loads
//
// Example:
//
//	fixmat.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) { logx.Set(l) }

// Logger returns the active logger. It never returns nil.
func Logger() *slog.Logger { return logx.L() }
