package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const userAgent = "orrery/1 (+asset fetch)"

// Timeout bounds a whole transfer.
var Timeout = 60 * time.Second

// known maps content-type fragments to extensions, most specific first.
var known = []struct{ frag, ext string }{
	{"zip", ".zip"},
	{"png", ".png"},
	{"jpeg", ".jpg"},
	{"jpg", ".jpg"},
	{"webp", ".webp"},
	{"otf", ".otf"},
	{"ttf", ".ttf"},
	{"font", ".ttf"},
	{"yaml", ".yaml"},
}

// Fetch saves the body at url under destDir and returns the saved path. The name comes from
// Content-Disposition or the URL; the extension from Content-Type or the URL. destDir is
// created if needed and a partial file is removed on failure.
func Fetch(ctx context.Context, url, destDir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, Timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download: %s: HTTP %d", url, resp.StatusCode)
	}

	name := Filename(url, resp.Header.Get("Content-Disposition"), resp.Header.Get("Content-Type"))
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	saved := filepath.Join(destDir, name)
	out, err := os.Create(saved)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		_ = os.Remove(saved)
		return "", fmt.Errorf("download: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(saved)
		return "", fmt.Errorf("download: %w", err)
	}
	return saved, nil
}

// Filename picks a safe local file name for a response.
func Filename(url, disposition, contentType string) string {
	name, ext := fromDisposition(disposition), ""
	if name == "" {
		name = path.Base(stripQuery(url))
	}
	if e := strings.ToLower(filepath.Ext(name)); e != "" {
		ext = e
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if ext == "" || !knownExt(ext) {
		if e := extFromType(contentType); e != "" {
			ext = e
		}
	}
	if ext == "" {
		ext = ".bin"
	}
	if name == "" || name == "." || name == "/" {
		name = "download"
	}
	return sanitize(name) + ext
}

func fromDisposition(cd string) string {
	const star = "filename*=UTF-8''"
	if i := strings.Index(cd, star); i >= 0 {
		return cut(cd[i+len(star):])
	}
	if i := strings.Index(cd, "filename="); i >= 0 {
		return cut(cd[i+len("filename="):])
	}
	return ""
}

func cut(s string) string {
	if j := strings.IndexAny(s, ";\r\n"); j >= 0 {
		s = s[:j]
	}
	return strings.Trim(s, "\" ")
}

func stripQuery(u string) string {
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		return u[:i]
	}
	return u
}

func extFromType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	for _, k := range known {
		if strings.Contains(ct, k.frag) {
			return k.ext
		}
	}
	return ""
}

func knownExt(ext string) bool {
	for _, k := range known {
		if k.ext == ext {
			return true
		}
	}
	return ext == ".jpeg" || ext == ".yml"
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

func sanitize(name string) string {
	name = unsafeName.ReplaceAllString(name, "_")
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
