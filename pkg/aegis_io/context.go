// pkg/aegis_io/context.go

package aegis_io

import (
	"context"
	"time"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_err"
)

// RuntimeContext carries the per-invocation context and logger through a
// command. It is created once per CLI command by aegis_cli.Wrap.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Timestamp  time.Time
	Command    string
	Attributes map[string]string
}

// NewContext builds a RuntimeContext scoped to cmdName.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	logger := zap.L().With(
		zap.String("command", cmdName),
	).Named(cmdName)

	return &RuntimeContext{
		Ctx:        ctx,
		Log:        logger,
		Timestamp:  time.Now(),
		Command:    cmdName,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts to an error.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = cerr.AssertionFailedf("panic: %v", r)
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
	}
}

// End logs the command outcome with its duration. User errors are logged at
// warn; anything else at error.
func (rc *RuntimeContext) End(errPtr *error) {
	duration := time.Since(rc.Timestamp)

	switch {
	case *errPtr == nil:
		rc.Log.Info("Command completed", zap.Duration("duration", duration))
	case aegis_err.IsExpectedUserError(*errPtr):
		rc.Log.Warn("Command completed with user error",
			zap.Duration("duration", duration), zap.Error(*errPtr))
	default:
		rc.Log.Error("Command failed",
			zap.Duration("duration", duration), zap.Error(*errPtr))
	}
}
