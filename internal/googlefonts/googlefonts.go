package googlefonts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIBase lists the open-licence families of the google/fonts repository.
var APIBase = "https://api.github.com/repos/google/fonts/contents/ofl"

// AllowedPrefix is the only download location URL will return.
var AllowedPrefix = "https://raw.githubusercontent.com/google/fonts/"

type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Folders converts a display name to the folder names google/fonts may use for it, e.g.
// "Open Sans" -> "opensans", "open-sans".
func Folders(family string) []string {
	lower := strings.ToLower(strings.TrimSpace(family))
	if lower == "" {
		return nil
	}
	joined := strings.ReplaceAll(lower, " ", "")
	hyphen := strings.ReplaceAll(lower, " ", "-")
	if hyphen == joined {
		return []string{joined}
	}
	return []string{joined, hyphen}
}

// URL returns the raw download URL of an upright TTF/OTF for family, trying each folder
// spelling in turn. Italic files are used only when nothing else exists.
func URL(ctx context.Context, family string) (string, error) {
	folders := Folders(family)
	if len(folders) == 0 {
		return "", fmt.Errorf("google fonts: empty family name")
	}
	var lastErr error
	for _, folder := range folders {
		u, err := folderURL(ctx, folder)
		if err == nil {
			return u, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func folderURL(ctx context.Context, folder string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, APIBase+"/"+url.PathEscape(folder), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("google fonts: %q not found", folder)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("google fonts: HTTP %d", resp.StatusCode)
	}
	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}

	var italic string
	for _, f := range files {
		lower := strings.ToLower(f.Name)
		if f.Type != "file" || !strings.HasPrefix(f.DownloadURL, AllowedPrefix) {
			continue
		}
		if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
			continue
		}
		if strings.Contains(lower, "italic") {
			if italic == "" {
				italic = f.DownloadURL
			}
			continue
		}
		return f.DownloadURL, nil
	}
	if italic != "" {
		return italic, nil
	}
	return "", fmt.Errorf("google fonts: no font file in %q", folder)
}
