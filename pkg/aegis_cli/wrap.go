// pkg/aegis_cli/wrap.go

package aegis_cli

import (
	"context"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_err"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_io"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/logger"
)

// Wrap adapts a RuntimeContext-style handler to a cobra RunE, adding panic
// recovery and outcome logging.
func Wrap(fn func(rc *aegis_io.RuntimeContext, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		logger.InitFallback()

		rc := aegis_io.NewContext(context.Background(), cmd.Name())
		defer rc.End(&err)

		defer func() {
			if r := recover(); r != nil {
				err = cerr.AssertionFailedf("panic: %v", r)
				rc.Log.Error("Panic recovered", zap.Any("panic", r))
			}
		}()

		err = fn(rc, cmd, args)
		if err != nil && !aegis_err.IsExpectedUserError(err) {
			err = cerr.WithStack(err)
		}
		return err
	}
}
