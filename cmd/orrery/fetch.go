package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"orrery/internal/archive"
	"orrery/internal/bodies"
	"orrery/internal/commands"
	"orrery/internal/config"
	"orrery/internal/download"
	"orrery/internal/googlefonts"
)

// runCommand runs one maintenance subcommand: fetch, font, bodies or config.
func runCommand(ctx context.Context, args []string, out io.Writer) error {
	prefs, err := config.Load(config.DefaultPath)
	if err != nil {
		fmt.Fprintln(out, "warning:", err)
	}
	reg := commands.NewRegistry()

	fetch := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fetchURL := fetch.String("url", "", "image or zip of textures to install")
	fetchDest := fetch.String("dest", firstDir(prefs.TextureDirs), "texture directory")
	reg.Register("fetch", fetch, func() error {
		if *fetchURL == "" {
			return fmt.Errorf("fetch: -url is required")
		}
		files, err := fetchAssets(ctx, *fetchURL, *fetchDest)
		for _, f := range files {
			fmt.Fprintln(out, f)
		}
		return err
	})

	font := flag.NewFlagSet("font", flag.ContinueOnError)
	family := font.String("family", "Inter", "Google Fonts family")
	fontDest := font.String("dest", firstDir(prefs.FontDirs), "font directory")
	reg.Register("font", font, func() error {
		path, err := fetchFont(ctx, *family, *fontDest)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, path)
		return nil
	})

	export := flag.NewFlagSet("bodies", flag.ContinueOnError)
	bodiesOut := export.String("out", prefs.BodiesFile, "where to write the built-in registry")
	reg.Register("bodies", export, func() error {
		data, err := bodies.Default().Marshal()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(*bodiesOut), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(*bodiesOut, data, 0644); err != nil {
			return err
		}
		fmt.Fprintln(out, *bodiesOut)
		return nil
	})

	save := flag.NewFlagSet("config", flag.ContinueOnError)
	configOut := save.String("out", config.DefaultPath, "where to write the current preferences")
	reg.Register("config", save, func() error {
		if err := config.Save(*configOut, prefs); err != nil {
			return err
		}
		fmt.Fprintln(out, *configOut)
		return nil
	})

	if err := reg.Execute(args); err != nil {
		return fmt.Errorf("%w (commands: %s)", err, strings.Join(reg.Names(), ", "))
	}
	return nil
}

// fetchAssets downloads url into dir. A zip is unpacked in place and removed.
func fetchAssets(ctx context.Context, url, dir string) ([]string, error) {
	saved, err := download.Fetch(ctx, url, dir)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(filepath.Ext(saved), ".zip") {
		return []string{saved}, nil
	}
	files, err := archive.Unzip(saved, dir, archive.AssetExts)
	if rmErr := os.Remove(saved); rmErr != nil && err == nil {
		err = rmErr
	}
	return files, err
}

// fetchFont installs a Google Fonts family into dir for the window overlay.
func fetchFont(ctx context.Context, family, dir string) (string, error) {
	url, err := googlefonts.URL(ctx, family)
	if err != nil {
		return "", err
	}
	return download.Fetch(ctx, url, dir)
}

func firstDir(dirs []string) string {
	if len(dirs) == 0 {
		return "."
	}
	return dirs[0]
}
