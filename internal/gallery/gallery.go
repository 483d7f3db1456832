package gallery

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/klabast/wb-services/squeezers-site/internal/storage/fs"
)

const (
	// SrcPrefix is the path of the gallery images relative to the site root.
	SrcPrefix       = "gallery-pics/"
	FilePermissions = 0o644
)

// ValidExtensions lists the image types picked up (compared lower case).
var ValidExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
	".avif": true,
	".svg":  true,
}

var ErrImagesDirNotFound = errors.New("images directory not found")

var (
	datePrefix     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)
	sequenceSuffix = regexp.MustCompile(`-\d+$`)
)

// Item is one manifest entry.
type Item struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// Caption derives a display caption from an image file name, e.g.
// "2026-01-31-Fasching-Party-01.jpg" becomes "Fasching Party".
func Caption(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	normalized := strings.ReplaceAll(stem, "_", "-")
	normalized = datePrefix.ReplaceAllString(normalized, "")
	normalized = sequenceSuffix.ReplaceAllString(normalized, "")

	var words []string
	for _, part := range strings.Split(normalized, "-") {
		if part == "" || isDigits(part) {
			continue
		}
		words = append(words, part)
	}
	if len(words) == 0 {
		return titleCase(strings.TrimSpace(strings.ReplaceAll(stem, "-", " ")))
	}
	return titleCase(strings.Join(words, " "))
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// titleCase upper-cases the first letter of every word and lower-cases the
// rest. Any non-letter starts a new word.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if prevLetter {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToTitle(r))
		}
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}

// Collect lists the images in dir in file name order.
func Collect(dir string) ([]Item, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrImagesDirNotFound, dir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrImagesDirNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	items := []Item{}
	for _, entry := range entries {
		name := entry.Name()
		// Stat follows symlinks, so linked images count as files.
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		if !ValidExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		caption := Caption(name)
		items = append(items, Item{
			Src:     SrcPrefix + name,
			Alt:     caption,
			Caption: caption,
		})
	}
	return items, nil
}

// WriteManifest writes items as an indented JSON array to path.
func WriteManifest(path string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return err
	}
	return fs.WriteFileAtomic(path, buf.Bytes(), FilePermissions)
}

// Build collects the images of imagesDir and writes the manifest to output.
func Build(imagesDir, output string) ([]Item, error) {
	items, err := Collect(imagesDir)
	if err != nil {
		return nil, err
	}
	if err := WriteManifest(output, items); err != nil {
		return nil, err
	}
	return items, nil
}
