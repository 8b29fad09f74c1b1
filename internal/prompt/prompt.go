// Package prompt loads the prompt template sent to the generator and fills in
// the sign.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/joestump/horoscope/internal/zodiac"
)

// Placeholder is the token replaced by the sign name.
const Placeholder = "{{signe}}"

var (
	// ErrEmpty is returned when a prompt has no content besides whitespace.
	ErrEmpty = errors.New("prompt is empty")

	// ErrEncoding is returned when a prompt file is not valid UTF-8.
	ErrEncoding = errors.New("prompt is not valid UTF-8")
)

// Load reads the prompt template at path. The file is read on every call.
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read prompt %s: %w", path, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("read prompt %s: %w", path, ErrEncoding)
	}
	return string(b), nil
}

// Build substitutes every Placeholder in tmpl with sign.
func Build(tmpl string, sign zodiac.Sign) (string, error) {
	out := strings.ReplaceAll(tmpl, Placeholder, sign.String())
	if strings.TrimSpace(out) == "" {
		return "", ErrEmpty
	}
	return out, nil
}
