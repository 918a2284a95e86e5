package desktop

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Errors returned by ParseFile.
var (
	ErrOpen     = errors.New("failed to open file")
	ErrReadLine = errors.New("failed to read line")
)

// maxLineLength is the longest line accepted in a desktop entry file.
// A longer line fails the whole parse with ErrReadLine.
const maxLineLength = 1024 * 1024

// Descriptor is a parsed desktop entry.
type Descriptor struct {
	// Path is the file the descriptor was parsed from, as given to ParseFile.
	Path string `json:"path"`

	Name       *string  `json:"name,omitempty"`
	Command    *string  `json:"exec,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Icon       *string  `json:"icon,omitempty"`
}

// ParseFile parses the desktop entry at path.
func ParseFile(path string) (*Descriptor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer file.Close() //nolint:errcheck // Read only.

	d := &Descriptor{
		Path: path,
	}

	// file scanner
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	scanner.Split(bufio.ScanLines)

	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: stream did not contain valid UTF-8", ErrReadLine)
		}
		d.parseLine(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadLine, err)
	}

	return d, nil
}

func (d *Descriptor) parseLine(line string) {
	// Skip empty lines and comments.
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return
	}

	switch key {
	case "Name":
		d.Name = &value
	case "Exec":
		d.Command = &value
	case "Categories":
		d.Categories = splitCategories(value)
	case "Icon":
		d.Icon = &value
	}
}

func splitCategories(value string) []string {
	categories := make([]string, 0, strings.Count(value, ";")+1)
	for _, category := range strings.Split(value, ";") {
		if category != "" {
			categories = append(categories, category)
		}
	}
	return categories
}

// DisplayName returns the name of the entry.
// If it has none, a name is generated from the file name. If that fails too,
// "Unknown" is returned.
func (d *Descriptor) DisplayName() string {
	if d.Name != nil {
		return *d.Name
	}
	if name := GenerateNameFromPath(d.Path); name != "" {
		return name
	}
	return "Unknown"
}

// IconName returns the icon reference of the entry, if set.
func (d *Descriptor) IconName() (icon string, ok bool) {
	if d.Icon == nil {
		return "", false
	}
	return *d.Icon, true
}
