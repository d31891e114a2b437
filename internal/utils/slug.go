package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var nonWordRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe token: lowercase, runs of non-word
// characters collapsed to a single hyphen, leading/trailing hyphens trimmed.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = nonWordRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// GenerateSlug builds a slug from a title with a short random suffix to
// reduce collision probability for new posts. Uniqueness is still enforced
// by the store; the suffix only makes collisions unlikely.
func GenerateSlug(title string) (string, error) {
	bytes := make([]byte, 3)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	suffix := hex.EncodeToString(bytes)
	base := Slugify(title)
	if base == "" {
		return suffix, nil
	}
	return fmt.Sprintf("%s-%s", base, suffix), nil
}
