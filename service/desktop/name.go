package desktop

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	segmentsSplitter  = regexp.MustCompile("[^A-Za-z0-9]*[A-Z]?[a-z0-9]*")
	nameOnly          = regexp.MustCompile("^[A-Za-z0-9]+$")
	delimitersAtStart = regexp.MustCompile("^[^A-Za-z0-9]+")
	reverseDNSPrefix  = regexp.MustCompile(`^[a-z]{2,4}\.[A-Za-z0-9_-]+\.`)
)

// GenerateNameFromPath generates a human readable application name from the
// file name of a desktop entry, eg. "Text Editor" for "text-editor.desktop".
// Reverse DNS prefixes are removed, so "org.gnome.Maps.desktop" becomes
// "Maps".
func GenerateNameFromPath(path string) string {
	// Get file name from path.
	fileName := strings.TrimSuffix(filepath.Base(path), Extension)

	// Remove reverse DNS prefix, keep the last element only.
	if reverseDNSPrefix.MatchString(fileName) {
		fileName = fileName[strings.LastIndexByte(fileName, '.')+1:]
	}

	// Split up into segments.
	segments := segmentsSplitter.FindAllString(fileName, -1)

	// Go through segments and collect name parts.
	nameParts := make([]string, 0, len(segments))
	var fragments string
	for _, segment := range segments {
		// Group very short segments.
		if len(delimitersAtStart.ReplaceAllString(segment, "")) <= 2 {
			fragments += segment
			continue
		} else if fragments != "" {
			nameParts = append(nameParts, fragments)
			fragments = ""
		}

		nameParts = append(nameParts, segment)
	}
	// Add last fragment.
	if fragments != "" {
		nameParts = append(nameParts, fragments)
	}

	// Post-process name parts.
	cleaned := nameParts[:0]
	for _, part := range nameParts {
		part = delimitersAtStart.ReplaceAllString(part, "")
		if part == "" {
			continue
		}
		if nameOnly.MatchString(part) {
			part = upperFirst(part)
		}
		cleaned = append(cleaned, part)
	}

	return strings.Join(cleaned, " ")
}

func upperFirst(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
