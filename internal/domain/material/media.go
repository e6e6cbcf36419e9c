package material

import (
	"path"
	"regexp"
	"strings"
)

var youTubeID = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// YouTubeEmbedURL converts a YouTube watch or share link into its embed URL.
// Links it cannot recognize are returned unchanged; empty input yields "".
func YouTubeEmbedURL(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	m := youTubeID.FindStringSubmatch(link)
	if len(m) == 3 && len(m[2]) == 11 {
		return "https://www.youtube.com/embed/" + m[2]
	}
	return link
}

// FileKind decides how a stored file is rendered.
type FileKind string

const (
	FileNone  FileKind = ""
	FileImage FileKind = "image"
	FileVideo FileKind = "video"
	FileLink  FileKind = "link"
)

// KindOfFile classifies a file URL by extension.
func KindOfFile(ref string) FileKind {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return FileNone
	}
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	switch strings.ToLower(path.Ext(ref)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return FileImage
	case ".mp4", ".webm", ".ogg":
		return FileVideo
	default:
		return FileLink
	}
}
