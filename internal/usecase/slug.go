package usecase

import (
	"context"
	"strings"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/text/unicode/norm"
)

const (
	maxSlugLength   = 200
	slugSuffixChars = "abcdefghijklmnopqrstuvwxyz0123456789"
	slugSuffixLen   = 6
	slugAttempts    = 5
)

// Slugify turns a title into a lowercase, hyphen-separated URL segment.
// Accents are folded ("Café" -> "cafe").
func Slugify(title string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range norm.NFKD.String(title) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(unicode.ToLower(r))
		default:
			pendingHyphen = true
		}
	}

	slug := b.String()
	if runes := []rune(slug); len(runes) > maxSlugLength {
		slug = strings.TrimRight(string(runes[:maxSlugLength]), "-")
	}
	if slug == "" {
		slug = "item"
	}
	return slug
}

// uniqueSlug returns Slugify(title), adding a random suffix while exists reports a clash.
func uniqueSlug(ctx context.Context, title string, exists func(context.Context, string) (bool, error)) (string, error) {
	base := Slugify(title)
	slug := base

	for i := 0; i < slugAttempts; i++ {
		taken, err := exists(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}

		suffix, err := gonanoid.Generate(slugSuffixChars, slugSuffixLen)
		if err != nil {
			return "", err
		}
		slug = base + "-" + suffix
	}
	return slug, nil
}
