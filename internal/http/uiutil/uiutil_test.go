package uiutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyRelativeTime(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "zero", t: time.Time{}, want: ""},
		{name: "seconds", t: now.Add(-10 * time.Second), want: "just now"},
		{name: "hours ago", t: now.Add(-3 * time.Hour), want: "3 hours ago"},
		{name: "days ahead", t: now.Add(48 * time.Hour), want: "2 days from now"},
		{name: "old", t: now.Add(-30 * 24 * time.Hour), want: "Dec 11, 2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FriendlyRelativeTime(tt.t, now))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1,234,567", Count(1234567))
	assert.Equal(t, "42", Count(42))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "Read the guide carefully", Excerpt("<p>Read the <b>guide</b>\n carefully</p>", 100))
	assert.Equal(t, "plain text", Excerpt("  plain   text ", 100))
	assert.Equal(t, "abcd…", Excerpt("abcdefghij", 5))
	assert.Equal(t, "", Excerpt("   ", 10))
}

func TestRegistrableDomain(t *testing.T) {
	assert.Equal(t, "example.co.uk", RegistrableDomain("https://docs.example.co.uk/a?b=c"))
	assert.Equal(t, "youtube.com", RegistrableDomain("https://www.YouTube.com/watch?v=x"))
	assert.Equal(t, "", RegistrableDomain("not a link"))
	assert.Equal(t, "", RegistrableDomain(""))
}

func TestTruncateWithEllipsis(t *testing.T) {
	assert.Equal(t, "short", TruncateWithEllipsis("short", 10))
	assert.Equal(t, "…", TruncateWithEllipsis("long text", 1))
}
