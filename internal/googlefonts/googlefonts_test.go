package googlefonts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFolders(t *testing.T) {
	got := Folders(" Open Sans ")
	if len(got) != 2 || got[0] != "opensans" || got[1] != "open-sans" {
		t.Errorf("Expected [opensans open-sans], got %v", got)
	}
	if got := Folders("Inter"); len(got) != 1 || got[0] != "inter" {
		t.Errorf("Expected [inter], got %v", got)
	}
	if got := Folders("  "); got != nil {
		t.Errorf("Expected nil, got %v", got)
	}
}

func serve(t *testing.T, listings map[string][]githubFile) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		files, ok := listings[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(files)
	}))
	t.Cleanup(srv.Close)
	oldBase, oldPrefix := APIBase, AllowedPrefix
	APIBase, AllowedPrefix = srv.URL+"/ofl", "https://raw.example/"
	t.Cleanup(func() { APIBase, AllowedPrefix = oldBase, oldPrefix })
}

func TestURLPrefersUpright(t *testing.T) {
	serve(t, map[string][]githubFile{
		"/ofl/open-sans": {
			{Name: "OFL.txt", Type: "file", DownloadURL: "https://raw.example/OFL.txt"},
			{Name: "OpenSans-Italic.ttf", Type: "file", DownloadURL: "https://raw.example/i.ttf"},
			{Name: "OpenSans-Regular.ttf", Type: "file", DownloadURL: "https://evil.example/r.ttf"},
			{Name: "OpenSans[wdth].ttf", Type: "file", DownloadURL: "https://raw.example/r.ttf"},
		},
	})
	got, err := URL(context.Background(), "Open Sans")
	if err != nil {
		t.Fatalf("URL failed: %v", err)
	}
	if got != "https://raw.example/r.ttf" {
		t.Errorf("Expected upright allowed file, got %s", got)
	}
}

func TestURLItalicFallback(t *testing.T) {
	serve(t, map[string][]githubFile{
		"/ofl/lobster": {{Name: "Lobster-Italic.otf", Type: "file", DownloadURL: "https://raw.example/l.otf"}},
	})
	got, err := URL(context.Background(), "Lobster")
	if err != nil || got != "https://raw.example/l.otf" {
		t.Errorf("Expected italic fallback, got %q (%v)", got, err)
	}
}

func TestURLNotFound(t *testing.T) {
	serve(t, nil)
	if _, err := URL(context.Background(), "Nope"); err == nil {
		t.Error("Expected error for unknown family")
	}
	if _, err := URL(context.Background(), ""); err == nil {
		t.Error("Expected error for empty family")
	}
}
