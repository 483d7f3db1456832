package news

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/klabast/wb-services/squeezers-site/internal/storage/fs"
)

const (
	DefaultFile     = "static/news.json"
	BackupSuffix    = ".bak-"
	BackupTimestamp = "20060102-150405"
	FilePermissions = 0o644
)

var ErrNotAList = errors.New("news.json must be a list")

// Store reads and writes the news list at Path.
type Store struct {
	Path string
	now  func() time.Time
}

// NewStore returns a store for the news file at path.
func NewStore(path string) *Store {
	return &Store{Path: path, now: time.Now}
}

func (s *Store) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Load returns the raw list stored in the news file. A missing file is an
// empty list.
func (s *Store) Load() ([]any, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []any{}, nil
		}
		return nil, err
	}
	return Decode(data)
}

// LoadItems loads and normalizes the news list.
func (s *Store) LoadItems() ([]Item, error) {
	raw, err := s.Load()
	if err != nil {
		return nil, err
	}
	return Normalize(raw), nil
}

// Decode parses data, which must hold a JSON array.
func Decode(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("invalid JSON: trailing data")
	}
	list, ok := v.([]any)
	if !ok {
		return nil, ErrNotAList
	}
	return list, nil
}

// Normalize keeps the object entries of raw, reduced to the whitelisted
// fields with non-empty trimmed values. Other entries are dropped. Order is
// preserved.
func Normalize(raw []any) []Item {
	items := make([]Item, 0, len(raw))
	for _, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		var it Item
		for _, f := range Fields {
			if v, ok := scalarString(obj[f.Key]); ok {
				it.Set(f.Key, v)
			}
		}
		items = append(items, it)
	}
	return items
}

// scalarString renders JSON scalars as text. Objects, arrays and null have no
// text form.
func scalarString(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

// Write replaces the news file with items. An existing file is first copied
// to a timestamped backup next to it.
func (s *Store) Write(items []Item) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}

	if _, err := os.Stat(s.Path); err == nil {
		if err := s.backup(); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	data, err := Encode(items)
	if err != nil {
		return err
	}
	return fs.WriteFileAtomic(s.Path, data, FilePermissions)
}

// backup copies the current file to <path>.bak-<stamp>. Saves within the
// same second get -1, -2, ... appended instead of replacing a backup.
func (s *Store) backup() error {
	base := s.Path + BackupSuffix + s.clock().Format(BackupTimestamp)
	name := base
	for n := 1; ; n++ {
		err := fs.CopyFile(s.Path, name)
		if !errors.Is(err, os.ErrExist) {
			return err
		}
		name = base + "-" + strconv.Itoa(n)
	}
}

// Encode renders items the way they are stored on disk: indented JSON with
// a trailing newline and no HTML escaping.
func Encode(items []Item) ([]byte, error) {
	clean := make([]Item, len(items))
	for i, it := range items {
		clean[i] = it.Trimmed()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(clean); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Backups returns the backup files of the news file, oldest first.
func (s *Store) Backups() ([]string, error) {
	matches, err := filepath.Glob(s.Path + BackupSuffix + "*")
	if err != nil {
		return nil, err
	}

	type backupFile struct {
		path  string
		stamp time.Time
		seq   int
	}
	var found []backupFile
	for _, m := range matches {
		if stamp, seq, ok := parseBackup(strings.TrimPrefix(m, s.Path+BackupSuffix)); ok {
			found = append(found, backupFile{path: m, stamp: stamp, seq: seq})
		}
	}
	sort.SliceStable(found, func(i, j int) bool {
		if !found[i].stamp.Equal(found[j].stamp) {
			return found[i].stamp.Before(found[j].stamp)
		}
		return found[i].seq < found[j].seq
	})

	backups := make([]string, len(found))
	for i, b := range found {
		backups[i] = b.path
	}
	return backups, nil
}

// parseBackup reads "20060102-150405" with an optional "-N" sequence.
func parseBackup(suffix string) (time.Time, int, bool) {
	if len(suffix) < len(BackupTimestamp) {
		return time.Time{}, 0, false
	}
	stamp, err := time.Parse(BackupTimestamp, suffix[:len(BackupTimestamp)])
	if err != nil {
		return time.Time{}, 0, false
	}
	rest := suffix[len(BackupTimestamp):]
	if rest == "" {
		return stamp, 0, true
	}
	if !strings.HasPrefix(rest, "-") {
		return time.Time{}, 0, false
	}
	seq, err := strconv.Atoi(rest[1:])
	if err != nil || seq < 1 {
		return time.Time{}, 0, false
	}
	return stamp, seq, true
}
