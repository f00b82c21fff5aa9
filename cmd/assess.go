// cmd/assess.go

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	aegis "github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_cli"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_err"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_io"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/password"
)

// AssessCmd estimates the strength of a password.
var AssessCmd = &cobra.Command{
	Use:   "assess [password]",
	Short: "Assess the strength of a password",
	Long: `Assess estimates password strength from an entropy model: the password
length times log2 of the combined size of the character classes it uses.
Works on any password, not just ones aegis generated.

With no argument, the password is read from a hidden terminal prompt so it
never appears in shell history or process listings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: aegis.Wrap(runAssess),
}

func init() {
	cli.AddBoolFlag(AssessCmd, "json", "", false, "Output as JSON")
}

func runAssess(rc *aegis_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	var pw string
	if len(args) == 1 {
		pw = args[0]
		logger.Warn("Password passed as a CLI argument; it may be visible in shell history")
	} else {
		var err error
		pw, err = interaction.PromptSecret("Password to assess")
		if err != nil {
			return aegis_err.NewExpectedError(cerr.Wrap(err, "read password"))
		}
	}

	report := password.AssessStrength(pw)
	logger.Debug("Assessed password",
		zap.Float64("entropy_bits", report.EntropyBits),
		zap.Int("classes", report.ClassesPresent))

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Printf("Length:   %d\n", report.Length)
	fmt.Printf("Entropy:  %.1f bits\n", report.EntropyBits)
	fmt.Printf("Classes:  %d/4 (upper=%v lower=%v digit=%v symbol=%v)\n",
		report.ClassesPresent, report.HasUpper, report.HasLower, report.HasDigit, report.HasSymbol)
	fmt.Printf("Strength: %s (%d/100)\n", report.Label, report.Score)
	return nil
}
