// pkg/password/generator_test.go

package password

import (
	"strings"
	"sync"
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func containsAny(s, set string) bool {
	return strings.ContainsAny(s, set)
}

func TestGenerateLength(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"minimum length all classes", Config{Length: 4, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}},
		{"default config", DefaultConfig()},
		{"maximum length", Config{Length: 128, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}},
		{"single class", Config{Length: 4, Digits: true}},
		{"ambiguous excluded", Config{Length: 32, Uppercase: true, Lowercase: true, Digits: true, Symbols: true, ExcludeAmbiguous: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := Generate(tt.cfg)
			require.NoError(t, err)
			assert.Len(t, pw, tt.cfg.Length)
		})
	}
}

func TestGenerateClassRepresentation(t *testing.T) {
	cfg := Config{Length: 8, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}

	// Run repeatedly: class representation must hold on every draw, not
	// just on average.
	for i := 0; i < 100; i++ {
		pw, err := Generate(cfg)
		require.NoError(t, err)
		assert.True(t, containsAny(pw, Uppercase), "missing uppercase in %q", pw)
		assert.True(t, containsAny(pw, Lowercase), "missing lowercase in %q", pw)
		assert.True(t, containsAny(pw, Digits), "missing digit in %q", pw)
		assert.True(t, containsAny(pw, Symbols), "missing symbol in %q", pw)
	}
}

func TestGenerateBoundaryLengthEqualsClassCount(t *testing.T) {
	cfg := Config{Length: 4, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}

	for i := 0; i < 100; i++ {
		pw, err := Generate(cfg)
		require.NoError(t, err)
		require.Len(t, pw, 4)

		// With length equal to the class count, the password is exactly one
		// character from each class, in some shuffled order.
		var upper, lower, digit, symbol int
		for _, c := range pw {
			switch {
			case strings.ContainsRune(Uppercase, c):
				upper++
			case strings.ContainsRune(Lowercase, c):
				lower++
			case strings.ContainsRune(Digits, c):
				digit++
			case strings.ContainsRune(Symbols, c):
				symbol++
			}
		}
		assert.Equal(t, 1, upper, "password %q", pw)
		assert.Equal(t, 1, lower, "password %q", pw)
		assert.Equal(t, 1, digit, "password %q", pw)
		assert.Equal(t, 1, symbol, "password %q", pw)
	}
}

func TestGenerateSelectedClassesOnly(t *testing.T) {
	cfg := Config{Length: 24, Lowercase: true, Digits: true}

	for i := 0; i < 50; i++ {
		pw, err := Generate(cfg)
		require.NoError(t, err)
		assert.False(t, containsAny(pw, Uppercase), "unexpected uppercase in %q", pw)
		assert.False(t, containsAny(pw, Symbols), "unexpected symbol in %q", pw)
		assert.True(t, containsAny(pw, Lowercase))
		assert.True(t, containsAny(pw, Digits))
	}
}

func TestGenerateExcludeAmbiguous(t *testing.T) {
	cfg := Config{Length: 64, Uppercase: true, Lowercase: true, Digits: true, Symbols: true, ExcludeAmbiguous: true}

	for i := 0; i < 100; i++ {
		pw, err := Generate(cfg)
		require.NoError(t, err)
		assert.False(t, containsAny(pw, Ambiguous), "ambiguous character in %q", pw)
		// Diversity still holds on the filtered classes.
		assert.True(t, containsAny(pw, Uppercase))
		assert.True(t, containsAny(pw, Lowercase))
		assert.True(t, containsAny(pw, Digits))
		assert.True(t, containsAny(pw, Symbols))
	}
}

func TestGenerateValidation(t *testing.T) {
	allClasses := func(length int) Config {
		return Config{Length: length, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"length 3 below minimum", allClasses(3), ErrInvalidLength},
		{"length 0", allClasses(0), ErrInvalidLength},
		{"negative length", allClasses(-1), ErrInvalidLength},
		{"length 129 above maximum", allClasses(129), ErrInvalidLength},
		{"no class selected", Config{Length: 16}, ErrNoClassSelected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := Generate(tt.cfg)
			require.Error(t, err)
			assert.True(t, cerr.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
			assert.Empty(t, pw)
		})
	}
}

func TestGenerateLengthCheckedBeforeClassCheck(t *testing.T) {
	// Both validations fail; length is reported first.
	_, err := Generate(Config{Length: 2})
	require.Error(t, err)
	assert.True(t, cerr.Is(err, ErrInvalidLength))
}

func TestGenerateNoDuplicates(t *testing.T) {
	cfg := Config{Length: 12, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		pw, err := Generate(cfg)
		require.NoError(t, err)
		_, dup := seen[pw]
		require.False(t, dup, "duplicate password %q after %d draws", pw, i)
		seen[pw] = struct{}{}
	}
}

func TestGenerateMultiple(t *testing.T) {
	cfg := Config{Length: 16, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}

	passwords, err := GenerateMultiple(cfg, 5)
	require.NoError(t, err)
	require.Len(t, passwords, 5)

	for _, pw := range passwords {
		assert.Len(t, pw, 16)
		assert.True(t, containsAny(pw, Uppercase))
		assert.True(t, containsAny(pw, Lowercase))
		assert.True(t, containsAny(pw, Digits))
		assert.True(t, containsAny(pw, Symbols))
	}
}

func TestGenerateMultipleInvalidCount(t *testing.T) {
	cfg := DefaultConfig()

	for _, count := range []int{0, -1, -100} {
		passwords, err := GenerateMultiple(cfg, count)
		require.Error(t, err)
		assert.True(t, cerr.Is(err, ErrInvalidCount))
		assert.Nil(t, passwords)
	}
}

func TestGenerateMultiplePropagatesConfigErrors(t *testing.T) {
	passwords, err := GenerateMultiple(Config{Length: 1, Lowercase: true}, 3)
	require.Error(t, err)
	assert.True(t, cerr.Is(err, ErrInvalidLength))
	assert.Nil(t, passwords)
}

func TestGenerateConcurrent(t *testing.T) {
	cfg := DefaultConfig()

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pw, err := Generate(cfg)
			if err != nil {
				errs <- err
				return
			}
			if len(pw) != cfg.Length {
				errs <- cerr.Newf("unexpected length %d", len(pw))
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
