// Package uiutil holds the text helpers shared by templates and handlers.
package uiutil

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"golang.org/x/net/publicsuffix"
)

const FriendlyDateLayout = "Jan 2, 2006"

// FriendlyRelativeTime describes how long ago t occurred, or how far ahead it is.
// Times more than a week away are shown as a date.
func FriendlyRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = -diff
	}
	if diff < time.Minute {
		return "just now"
	}
	if diff > 7*24*time.Hour {
		return FormatFriendlyDate(t)
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatFriendlyDate returns a short, user-friendly date.
func FormatFriendlyDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(FriendlyDateLayout)
}

// Count formats an integer with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// TruncateWithEllipsis shortens text to the provided rune limit and appends an ellipsis when truncated.
func TruncateWithEllipsis(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	if limit <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}

// Excerpt reduces material content, which may contain markup, to plain text of at most limit runes.
func Excerpt(content string, limit int) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return ""
	}
	text := content
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		text = doc.Text()
	}
	return TruncateWithEllipsis(strings.Join(strings.Fields(text), " "), limit)
}

// RegistrableDomain returns the eTLD+1 of a link ("docs.example.co.uk" → "example.co.uk").
// Links without a parseable host yield "".
func RegistrableDomain(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Hostname() == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
