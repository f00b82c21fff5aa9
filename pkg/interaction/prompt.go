// pkg/interaction/prompt.go

package interaction

import (
	"fmt"
	"os"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// PromptSecret asks the user for a hidden input (no terminal echo).
func PromptSecret(prompt string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		zap.L().Error("Cannot prompt for secret input: not a TTY")
		return "", cerr.New("secret prompt failed: no terminal available")
	}

	fmt.Fprint(os.Stderr, prompt+": ")
	byteSecret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		zap.L().Error("Failed to read secret input", zap.Error(err))
		return "", err
	}

	secret := strings.TrimSpace(string(byteSecret))
	if secret == "" {
		zap.L().Warn("No input received for secret", zap.String("prompt", prompt))
	}
	return secret, nil
}
