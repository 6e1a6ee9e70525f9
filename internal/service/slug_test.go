package service

import (
	"strconv"
	"strings"
	"testing"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"mixed case", "SQL Injection 101", "sql-injection-101"},
		{"special characters stripped", "What's new in Go 1.22?", "whats-new-in-go-122"},
		{"whitespace collapsed", "  too   many    spaces  ", "too-many-spaces"},
		{"existing hyphens kept", "zero-day roundup", "zero-day-roundup"},
		{"only special characters", "???!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slugify(tt.title, model.MaxTopicSlugLength)
			if got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	long := strings.Repeat("abcde ", 20)

	got := slugify(long, model.MaxTopicSlugLength)
	if len(got) > model.MaxTopicSlugLength {
		t.Errorf("expected slug capped at %d chars, got %d", model.MaxTopicSlugLength, len(got))
	}
}

func TestTopicSlug_AppendsMillisecondSuffix(t *testing.T) {
	slug := topicSlug("Buffer Overflow Basics")

	idx := strings.LastIndex(slug, "-")
	if idx < 0 {
		t.Fatalf("expected suffixed slug, got %q", slug)
	}
	if !strings.HasPrefix(slug, "buffer-overflow-basics-") {
		t.Errorf("expected title-derived prefix, got %q", slug)
	}

	ms, err := strconv.ParseInt(slug[idx+1:], 10, 64)
	if err != nil {
		t.Fatalf("expected numeric suffix, got %q", slug[idx+1:])
	}
	if ms <= 0 {
		t.Errorf("expected positive millisecond timestamp, got %d", ms)
	}
}

func TestTopicSlug_DiffersAcrossCalls(t *testing.T) {
	// Same title twice: identical base, millisecond suffixes keep them
	// apart. Two calls in the same millisecond collide.
	a := topicSlug("Same Title")
	b := topicSlug("Same Title")

	base := "same-title-"
	if !strings.HasPrefix(a, base) || !strings.HasPrefix(b, base) {
		t.Errorf("expected shared base %q, got %q and %q", base, a, b)
	}
}

func TestBlogSlug_NoSuffix(t *testing.T) {
	got := blogSlug("Threat Hunting With Zeek")
	if got != "threat-hunting-with-zeek" {
		t.Errorf("expected plain slug, got %q", got)
	}
}
