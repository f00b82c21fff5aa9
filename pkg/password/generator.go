// pkg/password/generator.go

package password

import (
	"crypto/rand"
	"math/big"

	cerr "github.com/cockroachdb/errors"
)

const (
	// MinLength and MaxLength bound every generation request. MinLength is
	// also what makes the required-character step safe: with at most four
	// classes selected, the guaranteed characters can never outnumber the
	// requested length.
	MinLength = 4
	MaxLength = 128
)

var (
	ErrInvalidLength   = cerr.Newf("password length must be between %d and %d characters", MinLength, MaxLength)
	ErrNoClassSelected = cerr.New("at least one character class must be selected")
	ErrInvalidCount    = cerr.New("password count must be greater than zero")
)

// Config describes a single generation request.
type Config struct {
	Length           int  `json:"length" mapstructure:"length"`
	Uppercase        bool `json:"uppercase" mapstructure:"uppercase"`
	Lowercase        bool `json:"lowercase" mapstructure:"lowercase"`
	Digits           bool `json:"digits" mapstructure:"digits"`
	Symbols          bool `json:"symbols" mapstructure:"symbols"`
	ExcludeAmbiguous bool `json:"exclude_ambiguous" mapstructure:"exclude-ambiguous"`
}

// DefaultConfig returns the generation settings used when the caller
// specifies nothing: 20 characters drawn from all four classes.
func DefaultConfig() Config {
	return Config{
		Length:    20,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Symbols:   true,
	}
}

// Validate checks the config without consuming any randomness.
func (c Config) Validate() error {
	if c.Length < MinLength || c.Length > MaxLength {
		return cerr.WithDetailf(ErrInvalidLength, "got length %d", c.Length)
	}
	if !c.Uppercase && !c.Lowercase && !c.Digits && !c.Symbols {
		return ErrNoClassSelected
	}
	return nil
}

// classes returns the selected class sequences in canonical order
// (uppercase, lowercase, digits, symbols), ambiguous-filtered if requested.
func (c Config) classes() []string {
	var out []string
	for _, cl := range []struct {
		enabled bool
		set     string
	}{
		{c.Uppercase, Uppercase},
		{c.Lowercase, Lowercase},
		{c.Digits, Digits},
		{c.Symbols, Symbols},
	} {
		if !cl.enabled {
			continue
		}
		set := cl.set
		if c.ExcludeAmbiguous {
			set = FilterAmbiguous(set)
		}
		out = append(out, set)
	}
	return out
}

// Generate creates a random password satisfying cfg. Every selected class is
// represented at least once, and the result is shuffled so the guaranteed
// characters are not clustered at the front. All character selection and all
// shuffle indices come from crypto/rand.
func Generate(cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	// The effective pool is rebuilt on every call; nothing is cached.
	var pool string
	var pw []byte

	// Guarantee one character from each selected class.
	for _, set := range cfg.classes() {
		pool += set
		ch, err := randomChar(set)
		if err != nil {
			return "", err
		}
		pw = append(pw, ch)
	}

	// Fill the rest from the combined pool, with replacement.
	for i := len(pw); i < cfg.Length; i++ {
		ch, err := randomChar(pool)
		if err != nil {
			return "", err
		}
		pw = append(pw, ch)
	}

	if err := shuffle(pw); err != nil {
		return "", err
	}

	return string(pw), nil
}

// GenerateMultiple produces count independent passwords from the same
// config. No state is shared between draws.
func GenerateMultiple(cfg Config, count int) ([]string, error) {
	if count <= 0 {
		return nil, cerr.WithDetailf(ErrInvalidCount, "got count %d", count)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := Generate(cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, pw)
	}
	return out, nil
}

// randomChar picks one character uniformly from charset. rand.Int performs
// rejection sampling internally, so there is no modulo bias.
func randomChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, cerr.Wrap(err, "read from crypto/rand")
	}
	return charset[n.Int64()], nil
}

// shuffle applies a Fisher–Yates permutation in place, drawing each index
// uniformly from [0, i] via crypto/rand.
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		jBig, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return cerr.Wrap(err, "read from crypto/rand")
		}
		j := int(jBig.Int64())
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
