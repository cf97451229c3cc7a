package media

import (
	"path/filepath"
	"sort"
	"strings"
)

// Kind classifies a path by its suffix.
type Kind int

const (
	KindUnsupported Kind = iota
	KindImage
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unsupported"
	}
}

var defaultImageExts = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp",
	".heic", ".heif", ".dng", ".cr2", ".cr3", ".nef", ".arw", ".raf",
	".rw2", ".orf",
}

var defaultVideoExts = []string{
	".mp4", ".m4v", ".mov", ".avi", ".mkv", ".webm", ".wmv", ".flv",
	".mts", ".m2ts", ".ts", ".3gp", ".3gpp", ".mxf", ".mpg", ".mpeg",
	".vob",
}

// ExtensionSets holds the recognized image and video suffixes, lowercased and
// dot-prefixed. A custom list replaces both sets at once, so every custom
// suffix classifies as image first.
type ExtensionSets struct {
	image map[string]bool
	video map[string]bool
}

func DefaultExtensionSets() ExtensionSets {
	return ExtensionSets{
		image: toSet(defaultImageExts),
		video: toSet(defaultVideoExts),
	}
}

// CustomExtensionSets builds sets from user-supplied suffixes. Entries may
// omit the leading dot and use any case; empty entries are dropped. An empty
// result falls back to the defaults.
func CustomExtensionSets(raw []string) ExtensionSets {
	set := make(map[string]bool, len(raw))
	for _, e := range raw {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || e == "." {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = true
	}
	if len(set) == 0 {
		return DefaultExtensionSets()
	}
	return ExtensionSets{image: set, video: set}
}

// Classify maps a path to image / video / unsupported by its lowercased
// suffix. Image wins when a suffix is in both sets.
func (s ExtensionSets) Classify(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case s.image[ext]:
		return KindImage
	case s.video[ext]:
		return KindVideo
	default:
		return KindUnsupported
	}
}

// Supported reports whether the path would be audited rather than skipped.
func (s ExtensionSets) Supported(path string) bool {
	return s.Classify(path) != KindUnsupported
}

// List returns the union of both sets, sorted, for display.
func (s ExtensionSets) List() []string {
	union := make(map[string]bool, len(s.image)+len(s.video))
	for e := range s.image {
		union[e] = true
	}
	for e := range s.video {
		union[e] = true
	}
	out := make([]string, 0, len(union))
	for e := range union {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

func toSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		set[e] = true
	}
	return set
}
