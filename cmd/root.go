/* cmd/root.go */

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	aegis "github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_cli"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_err"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_io"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/logger"
)

// RootCmd is the base command for aegis.
var RootCmd = &cobra.Command{
	Use:   "aegis",
	Short: "Aegis generates strong random passwords and assesses password strength",
	Long: `Aegis is a small command-line tool for generating cryptographically secure
random passwords and for estimating the strength of any password via an
entropy model. Generated secrets are never stored or transmitted.`,
	RunE: aegis.Wrap(func(rc *aegis_io.RuntimeContext, cmd *cobra.Command, args []string) error {
		return cmd.Help()
	}),
}

// RegisterCommands adds all subcommands to the root command.
func RegisterCommands() {
	RootCmd.AddCommand(GenerateCmd)
	RootCmd.AddCommand(AssessCmd)
}

// Execute initializes and runs the root command.
func Execute() {
	defer func() {
		_ = logger.Sync()
	}()

	RegisterCommands()

	if err := RootCmd.Execute(); err != nil {
		if aegis_err.IsExpectedUserError(err) {
			logger.L().Warn("CLI completed with user error", zap.Error(err))
			fmt.Fprintf(os.Stderr, "⚠️  %v\n", err)
			os.Exit(0)
		}
		logger.L().Error("CLI failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}
