package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, e := range Exts {
			if ext == e {
				rel, err := filepath.Rel(dir, path)
				if err != nil {
					return err
				}
				out = append(out, filepath.ToSlash(rel))
				return nil
			}
		}
		return nil
	})
	return out, err
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Find searches dirs for a font whose relative path contains search, ignoring case, spaces,
// dashes and underscores. An empty search matches any font. When several match, one whose
// path contains "Regular" wins. Returns the full path or os.ErrNotExist.
func Find(dirs []string, search string) (string, error) {
	norm := normalizeForMatch(search)
	var candidates []string
	var regular string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if !strings.Contains(normalizeForMatch(rel), norm) {
				continue
			}
			full := filepath.Join(base, filepath.FromSlash(rel))
			candidates = append(candidates, full)
			if regular == "" && strings.Contains(strings.ToLower(rel), "regular") {
				regular = full
			}
		}
	}
	if regular != "" {
		return regular, nil
	}
	if len(candidates) == 0 {
		return "", os.ErrNotExist
	}
	return candidates[0], nil
}
