package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix starts every environment override.
const EnvPrefix = "ORRERY_"

// LoadEnvFile reads KEY=VALUE lines from path into the process environment. Blank lines and
// # comments are skipped, surrounding quotes are removed, and variables already set win. A
// missing file is not an error.
func LoadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

// ApplyEnv overrides p from ORRERY_* variables. It returns the first malformed value; the
// remaining variables are still applied.
func ApplyEnv(p *Prefs) error {
	var first error
	note := func(key string, err error) {
		if first == nil {
			first = fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
		}
	}
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				note(key, err)
				return
			}
			*dst = b
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				note(key, err)
				return
			}
			*dst = n
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = strings.Split(v, string(os.PathListSeparator))
		}
	}

	integer("WIDTH", &p.Width)
	integer("HEIGHT", &p.Height)
	boolean("FULLSCREEN", &p.Fullscreen)
	boolean("SHOW_FPS", &p.ShowFPS)
	boolean("SHOW_MEMALLOC", &p.ShowMemAlloc)
	boolean("SHOW_ORBITS", &p.ShowOrbits)
	boolean("START_PAUSED", &p.StartPaused)
	str("BODIES", &p.BodiesFile)
	list("TEXTURES", &p.TextureDirs)
	list("FONTS", &p.FontDirs)
	str("STYLESHEET", &p.StyleSheet)
	str("LOG_FILE", &p.LogFile)
	str("LOCALE", &p.Locale)
	str("METRICS_ADDR", &p.MetricsAddr)
	integer("MAX_TEXTURE", &p.MaxTexture)
	p.fill()
	return first
}
