package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// AssetExts are the entries an asset pack may install.
var AssetExts = []string{".png", ".jpg", ".jpeg", ".webp", ".ttf", ".otf", ".css", ".yaml", ".yml"}

// Unzip extracts the entries of zipPath whose extension is in exts into destDir, flattening
// directories so textures land where the asset library looks. A nil exts extracts everything
// with its directory structure. Entries that would escape destDir are skipped.
func Unzip(zipPath, destDir string, exts []string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	defer r.Close()
	absDir, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}

	var extracted []string
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := f.Name
		if exts != nil {
			if !hasExt(name, exts) {
				continue
			}
			name = filepath.Base(name)
		}
		dest := filepath.Join(absDir, filepath.Clean(name))
		if !strings.HasPrefix(dest, absDir+string(os.PathSeparator)) {
			continue
		}
		if err := extract(f, dest); err != nil {
			return extracted, fmt.Errorf("unzip: %s: %w", f.Name, err)
		}
		extracted = append(extracted, dest)
	}
	return extracted, nil
}

func extract(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
