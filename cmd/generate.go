// cmd/generate.go

package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	aegis "github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_cli"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_err"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/aegis_io"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/aegis/pkg/password"
)

// GenerateCmd creates one or more random passwords.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate cryptographically secure random passwords",
	Long: `Generate random passwords from configurable character classes. Every
selected class is guaranteed at least one character in the output.

Flag defaults can be overridden with AEGIS_-prefixed environment variables,
e.g. AEGIS_LENGTH=32.

Examples:
  # One 20-character password from all four classes
  aegis generate

  # Five 16-character passwords without symbols or ambiguous characters
  aegis generate -l 16 -n 5 --no-symbols --exclude-ambiguous

  # JSON output with strength reports, copied to the clipboard
  aegis generate --json --show-strength --copy

  # Prompt for every setting
  aegis generate --interactive`,
	RunE: aegis.Wrap(runGenerate),
}

func init() {
	cli.AddIntFlag(GenerateCmd, "length", "l", 20, "Password length (4-128)")
	cli.AddIntFlag(GenerateCmd, "count", "n", 1, "Number of passwords to generate")
	cli.AddBoolFlag(GenerateCmd, "no-upper", "", false, "Exclude uppercase letters")
	cli.AddBoolFlag(GenerateCmd, "no-lower", "", false, "Exclude lowercase letters")
	cli.AddBoolFlag(GenerateCmd, "no-digits", "", false, "Exclude digits")
	cli.AddBoolFlag(GenerateCmd, "no-symbols", "", false, "Exclude symbols")
	cli.AddBoolFlag(GenerateCmd, "exclude-ambiguous", "x", false, "Exclude ambiguous characters (0, O, 1, l, I, |, `)")
	cli.AddBoolFlag(GenerateCmd, "show-strength", "s", false, "Print a strength report for each password")
	cli.AddBoolFlag(GenerateCmd, "json", "", false, "Output as JSON")
	cli.AddStringFlag(GenerateCmd, "output", "o", "", "Write passwords to this file (mode 0600)", false)
	cli.AddBoolFlag(GenerateCmd, "copy", "c", false, "Copy the first password to the clipboard")
	cli.AddBoolFlag(GenerateCmd, "interactive", "i", false, "Prompt for every setting")
}

// generateResult is the JSON rendering of a generation run.
type generateResult struct {
	Passwords []string          `json:"passwords"`
	Config    password.Config   `json:"config"`
	Strength  []password.Report `json:"strength,omitempty"`
}

func runGenerate(rc *aegis_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	v := viper.New()
	cli.SetViperEnvPrefix(v, "AEGIS")
	if err := cli.BindFlagsToViper(cmd, v); err != nil {
		return cerr.Wrap(err, "bind flags")
	}

	cfg := password.Config{
		Length:           v.GetInt("length"),
		Uppercase:        !v.GetBool("no-upper"),
		Lowercase:        !v.GetBool("no-lower"),
		Digits:           !v.GetBool("no-digits"),
		Symbols:          !v.GetBool("no-symbols"),
		ExcludeAmbiguous: v.GetBool("exclude-ambiguous"),
	}
	count := v.GetInt("count")

	if v.GetBool("interactive") {
		var err error
		cfg, count, err = promptConfig(rc, cfg, count)
		if err != nil {
			return cerr.Wrap(err, "interactive configuration")
		}
	}

	logger.Debug("Generating passwords",
		zap.Int("length", cfg.Length),
		zap.Int("count", count),
		zap.Bool("uppercase", cfg.Uppercase),
		zap.Bool("lowercase", cfg.Lowercase),
		zap.Bool("digits", cfg.Digits),
		zap.Bool("symbols", cfg.Symbols),
		zap.Bool("exclude_ambiguous", cfg.ExcludeAmbiguous))

	passwords, err := password.GenerateMultiple(cfg, count)
	if err != nil {
		// Validation failures are the user's to fix, not a tool fault.
		if cerr.Is(err, password.ErrInvalidLength) ||
			cerr.Is(err, password.ErrNoClassSelected) ||
			cerr.Is(err, password.ErrInvalidCount) {
			return aegis_err.NewExpectedError(err)
		}
		return err
	}

	if err := renderPasswords(cfg, passwords, v.GetBool("json"), v.GetBool("show-strength")); err != nil {
		return err
	}

	if out := v.GetString("output"); out != "" {
		if err := savePasswords(rc, out, passwords); err != nil {
			return err
		}
	}

	if v.GetBool("copy") {
		if err := copyFirst(rc, passwords); err != nil {
			return err
		}
	}

	if v.GetBool("interactive") {
		return offerSideEffects(rc, passwords)
	}
	return nil
}

// promptConfig walks the user through every generation setting, using the
// flag values as defaults.
func promptConfig(rc *aegis_io.RuntimeContext, def password.Config, defCount int) (password.Config, int, error) {
	reader := bufio.NewReader(os.Stdin)
	cfg := def

	length, err := interaction.ReadInt(rc.Ctx, reader, "Password length (4-128)", def.Length)
	if err != nil {
		return cfg, defCount, err
	}
	cfg.Length = length

	if cfg.Uppercase, err = interaction.ReadBool(rc.Ctx, reader, "Include uppercase letters?", def.Uppercase); err != nil {
		return cfg, defCount, err
	}
	if cfg.Lowercase, err = interaction.ReadBool(rc.Ctx, reader, "Include lowercase letters?", def.Lowercase); err != nil {
		return cfg, defCount, err
	}
	if cfg.Digits, err = interaction.ReadBool(rc.Ctx, reader, "Include digits?", def.Digits); err != nil {
		return cfg, defCount, err
	}
	if cfg.Symbols, err = interaction.ReadBool(rc.Ctx, reader, "Include symbols?", def.Symbols); err != nil {
		return cfg, defCount, err
	}
	if cfg.ExcludeAmbiguous, err = interaction.ReadBool(rc.Ctx, reader, "Exclude ambiguous characters (0, O, 1, l, ...)?", def.ExcludeAmbiguous); err != nil {
		return cfg, defCount, err
	}

	count, err := interaction.ReadInt(rc.Ctx, reader, "How many passwords", defCount)
	if err != nil {
		return cfg, defCount, err
	}

	return cfg, count, nil
}

func renderPasswords(cfg password.Config, passwords []string, asJSON, showStrength bool) error {
	if asJSON {
		result := generateResult{Passwords: passwords, Config: cfg}
		if showStrength {
			for _, pw := range passwords {
				result.Strength = append(result.Strength, password.AssessStrength(pw))
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	for _, pw := range passwords {
		fmt.Println(pw)
		if showStrength {
			report := password.AssessStrength(pw)
			fmt.Fprintf(os.Stderr, "  entropy: %.1f bits, classes: %d/4, strength: %s (%d/100)\n",
				report.EntropyBits, report.ClassesPresent, report.Label, report.Score)
		}
	}
	return nil
}

// savePasswords writes the passwords to path with owner-only permissions.
func savePasswords(rc *aegis_io.RuntimeContext, path string, passwords []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	data := strings.Join(passwords, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		return cerr.Wrapf(err, "write passwords to %s", path)
	}

	logger.Info("Passwords written to file",
		zap.String("path", path), zap.Int("count", len(passwords)))
	fmt.Fprintf(os.Stderr, "✅ Saved %d password(s) to %s\n", len(passwords), path)
	return nil
}

func copyFirst(rc *aegis_io.RuntimeContext, passwords []string) error {
	logger := otelzap.Ctx(rc.Ctx)

	if err := clipboard.WriteAll(passwords[0]); err != nil {
		logger.Warn("Clipboard unavailable", zap.Error(err))
		return aegis_err.NewExpectedError(cerr.Wrap(err, "copy to clipboard"))
	}
	if len(passwords) > 1 {
		logger.Warn("Multiple passwords generated, copied only the first")
	}
	fmt.Fprintln(os.Stderr, "📋 Copied to clipboard")
	return nil
}

// offerSideEffects asks, after an interactive run, whether to save or copy
// the result.
func offerSideEffects(rc *aegis_io.RuntimeContext, passwords []string) error {
	reader := bufio.NewReader(os.Stdin)

	save, err := interaction.ReadBool(rc.Ctx, reader, "Save to file?", false)
	if err != nil {
		return err
	}
	if save {
		path, err := interaction.ReadLine(rc.Ctx, reader, "File path")
		if err != nil {
			return err
		}
		if path != "" {
			if err := savePasswords(rc, path, passwords); err != nil {
				return err
			}
		}
	}

	copyIt, err := interaction.ReadBool(rc.Ctx, reader, "Copy to clipboard?", false)
	if err != nil {
		return err
	}
	if copyIt {
		return copyFirst(rc, passwords)
	}
	return nil
}
