// Package forms normalizes and validates untrusted submission input.
package forms

import (
	"encoding/base64"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var allowedImageExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
}

const dataURIPrefix = "data:image"

// Sanitize trims and HTML-escapes a field value.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return html.EscapeString(s)
}

// ValidDate reports whether s is a real calendar date written as YYYY-MM-DD.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// AllowedImageExtension checks the suffix after the last dot against the
// image allow-list, case-insensitively.
func AllowedImageExtension(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	_, ok := allowedImageExtensions[strings.ToLower(filename[idx+1:])]
	return ok
}

// ImageExtension returns the lowercased allowed extension of filename, or "".
func ImageExtension(filename string) string {
	if !AllowedImageExtension(filename) {
		return ""
	}
	return strings.ToLower(filename[strings.LastIndex(filename, ".")+1:])
}

// IsDataURI reports whether s looks like an inline image payload.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}

// DecodeDataURI splits data:image/<type>;base64,<payload> and decodes the
// payload. Only the text after the first comma is decoded.
func DecodeDataURI(s string) (string, []byte, error) {
	if !IsDataURI(s) {
		return "", nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidDataURI, dataURIPrefix)
	}
	meta, payload, ok := strings.Cut(s, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: no comma separator", ErrInvalidDataURI)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	mime := strings.TrimPrefix(meta, "data:")
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return mime, data, nil
}

// ExtensionForMIME maps an image mime type onto an allowed extension. It
// returns "" for types the document renderer cannot embed.
func ExtensionForMIME(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	default:
		return ""
	}
}

// HumanizeField turns a field key into a label: billing_email becomes
// "Billing Email" and websiteUrl becomes "Website Url".
func HumanizeField(field string) string {
	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	for i, r := range field {
		switch {
		case r == '_' || r == ' ':
			flush()
		case unicode.IsUpper(r) && i > 0:
			flush()
			cur = append(cur, r)
		default:
			cur = append(cur, r)
		}
	}
	flush()
	for i, w := range words {
		rs := []rune(strings.ToLower(w))
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}
