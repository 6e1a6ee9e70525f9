package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

// slugify converts a title to its URL slug base: lowercased, stripped of
// anything outside [a-z0-9 -], whitespace runs collapsed to hyphens, and
// truncated before the uniqueness suffix is appended.
func slugify(title string, maxLen int) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	slug := strings.Join(strings.Fields(b.String()), "-")
	if len(slug) > maxLen {
		slug = slug[:maxLen]
	}
	return slug
}

// topicSlug derives a unique topic slug by appending the current time in
// milliseconds to the slugified title.
func topicSlug(title string) string {
	ms := time.Now().UnixMilli()
	return slugify(title, model.MaxTopicSlugLength) + "-" + strconv.FormatInt(ms, 10)
}

// blogSlug derives a blog slug from the title. Blog slugs carry no
// uniqueness suffix; collisions are rejected instead.
func blogSlug(title string) string {
	return slugify(title, model.MaxTopicSlugLength)
}
