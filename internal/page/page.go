// Package page reads the static HTML document and injects generated text into
// it.
package page

import (
	"errors"
	"fmt"
	"html"
	"os"
	"strings"
	"unicode/utf8"
)

// Marker is the injection point inside the HTML document.
const Marker = "<!-- texte ici-->"

// ErrEncoding is returned when the document is not valid UTF-8.
var ErrEncoding = errors.New("document is not valid UTF-8")

// Load reads the HTML document at path. Nothing is cached between calls.
func Load(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", path, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("read template %s: %w", path, ErrEncoding)
	}
	return string(b), nil
}

// Render replaces the first Marker in doc with text wrapped in <p></p>. When
// escape is set, text is HTML-escaped first. A doc without the marker is
// returned unchanged.
func Render(doc, text string, escape bool) string {
	if escape {
		text = html.EscapeString(text)
	}
	return strings.Replace(doc, Marker, "<p>"+text+"</p>", 1)
}

// HasMarker reports whether doc contains the injection point.
func HasMarker(doc string) bool {
	return strings.Contains(doc, Marker)
}
