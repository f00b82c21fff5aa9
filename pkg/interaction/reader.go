// pkg/interaction/reader.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// ReadLine prompts the user with a label and returns a trimmed line of input.
// Prompts go to stderr so stdout stays clean for automation.
func ReadLine(ctx context.Context, reader *bufio.Reader, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Prompting user for input", zap.String("label", label))

	_, _ = fmt.Fprint(os.Stderr, label+": ")

	text, err := reader.ReadString('\n')
	if err != nil {
		logger.Error("Failed to read user input", zap.Error(err))
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// ReadBool prompts for a yes/no answer, returning def when the user just
// presses enter. Anything starting with y/Y is yes.
func ReadBool(ctx context.Context, reader *bufio.Reader, label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	val, err := ReadLine(ctx, reader, fmt.Sprintf("%s [%s]", label, hint))
	if err != nil {
		return def, err
	}
	if val == "" {
		return def, nil
	}
	return strings.HasPrefix(strings.ToLower(val), "y"), nil
}

// ReadInt prompts for an integer, returning def on empty input.
func ReadInt(ctx context.Context, reader *bufio.Reader, label string, def int) (int, error) {
	val, err := ReadLine(ctx, reader, fmt.Sprintf("%s [%d]", label, def))
	if err != nil {
		return def, err
	}
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		otelzap.Ctx(ctx).Warn("Input is not a number, using default",
			zap.String("input", val), zap.Int("default", def))
		return def, nil
	}
	return n, nil
}
