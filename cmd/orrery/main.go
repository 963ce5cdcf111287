package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"orrery/internal/bodies"
	"orrery/internal/config"
	"orrery/internal/graphics"
	"orrery/internal/logger"
	"orrery/internal/metrics"
	"orrery/internal/tui"
	"orrery/internal/viewer"
)

func main() {
	if len(os.Args) > 1 && !strings.HasPrefix(os.Args[1], "-") {
		if err := runCommand(context.Background(), os.Args[1:], os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "orrery:", err)
			os.Exit(1)
		}
		return
	}

	configPath := flag.String("config", config.DefaultPath, "preferences file")
	bodiesPath := flag.String("bodies", "", "body registry YAML (overrides preferences)")
	terminal := flag.Bool("tui", false, "draw in the terminal instead of a window")
	paused := flag.Bool("paused", false, "start with the animation paused")
	orbits := flag.Bool("orbits", false, "start with orbit rings shown")
	metricsAddr := flag.String("metrics", "", "serve Prometheus metrics on this address")
	flag.Parse()

	_ = config.LoadEnvFile(".env")
	prefs, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "orrery:", err)
	}
	if err := config.ApplyEnv(&prefs); err != nil {
		fmt.Fprintln(os.Stderr, "orrery:", err)
	}
	if *bodiesPath != "" {
		prefs.BodiesFile = *bodiesPath
	}
	if *metricsAddr != "" {
		prefs.MetricsAddr = *metricsAddr
	}
	prefs.StartPaused = prefs.StartPaused || *paused
	prefs.ShowOrbits = prefs.ShowOrbits || *orbits

	log := logger.New(prefs.LogFile)
	reg, err := bodies.Load(prefs.BodiesFile)
	if err != nil {
		log.Error("registry", err)
		fmt.Fprintln(os.Stderr, "orrery:", err)
		os.Exit(1)
	}
	v, err := viewer.New(prefs, reg, log)
	if err != nil {
		log.Error("scene", err)
		fmt.Fprintln(os.Stderr, "orrery:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if prefs.MetricsAddr != "" {
		m := metrics.NewCollector()
		v.Attach(m)
		go func() {
			if err := m.Serve(ctx, prefs.MetricsAddr); err != nil {
				log.Error("metrics", err)
			}
		}()
		log.Logf(logger.Info, "metrics on %s", prefs.MetricsAddr)
	}

	if *terminal {
		if err := runTerminal(ctx, v); err != nil {
			log.Error("terminal", err)
			fmt.Fprintln(os.Stderr, "orrery:", err)
			os.Exit(1)
		}
		return
	}
	graphics.Run(graphics.Options{
		Width:      prefs.Width,
		Height:     prefs.Height,
		Fullscreen: prefs.Fullscreen,
		Title:      "Orrery",
	}, v)
}

func runTerminal(ctx context.Context, v *viewer.Viewer) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return tui.New(screen, v).Run(ctx)
}
