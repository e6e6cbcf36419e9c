package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTab(t *testing.T) {
	tests := map[string]Tab{
		"":            TabOverview,
		"faqs":        TabFAQs,
		" Community ": TabCommunity,
		"3":           TabDates,
		"0":           TabOverview,
		"7":           TabOverview,
		"-1":          TabOverview,
		"syllabus":    TabOverview,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseTab(in), "input %q", in)
	}
}

func TestTabIndexAndLabel(t *testing.T) {
	for i, tab := range Tabs() {
		assert.Equal(t, i, tab.Index())
		assert.Equal(t, tab, ParseTab(string(tab)))
	}
	assert.Equal(t, "Important Dates", TabDates.Label())
}

func TestOrNotSpecified(t *testing.T) {
	assert.Equal(t, "Not specified", OrNotSpecified("  "))
	assert.Equal(t, "21-30", OrNotSpecified("21-30"))
}

func TestYouTubeEmbedURL(t *testing.T) {
	tests := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":      "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?t=42":                "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":        "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://www.youtube.com/watch?feature=x&v=dQw4w9WgXcQ": "https://www.youtube.com/embed/dQw4w9WgXcQ",
		"https://vimeo.com/12345":                          "https://vimeo.com/12345",
		"":                                                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, YouTubeEmbedURL(in), "input %q", in)
	}
}

func TestKindOfFile(t *testing.T) {
	assert.Equal(t, FileImage, KindOfFile("/media/a.PNG"))
	assert.Equal(t, FileVideo, KindOfFile("https://cdn.test/v.webm?sig=1"))
	assert.Equal(t, FileLink, KindOfFile("/media/notes.pdf"))
	assert.Equal(t, FileNone, KindOfFile(""))
}
