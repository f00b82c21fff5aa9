// pkg/password/strength_fuzz_test.go

package password

import (
	"testing"
	"unicode/utf8"
)

// Strength assessment is a total function: any input string must yield a
// well-formed report without panicking.
func FuzzAssessStrength(f *testing.F) {
	f.Add("")
	f.Add("aaaa")
	f.Add("P@ssw0rd!")
	f.Add("1234567890")
	f.Add("!@#$%^&*()_+-=[]{}|;:,.<>?")
	f.Add("测试密码🔒")
	f.Add("test\x00password")

	f.Fuzz(func(t *testing.T, pw string) {
		report := AssessStrength(pw)

		if report.EntropyBits < 0 {
			t.Errorf("negative entropy %f for %q", report.EntropyBits, pw)
		}
		if report.ClassesPresent < 0 || report.ClassesPresent > 4 {
			t.Errorf("classes out of range: %d", report.ClassesPresent)
		}
		if report.Score < 20 || report.Score > 100 {
			t.Errorf("score out of range: %d", report.Score)
		}
		if report.Label == "" {
			t.Error("empty label")
		}
		if utf8.ValidString(pw) && report.Length != len([]rune(pw)) {
			t.Errorf("length mismatch: got %d, want %d", report.Length, len([]rune(pw)))
		}
		if report.ClassesPresent == 0 && report.EntropyBits != 0 {
			t.Errorf("entropy %f with no recognized classes", report.EntropyBits)
		}
	})
}
