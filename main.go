package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"gridstash/assets"
	"gridstash/internal/catalog"
	"gridstash/internal/config"
	"gridstash/internal/inventory"
	"gridstash/internal/loot"
	"gridstash/internal/session"

	"github.com/gdamore/tcell/v2"
)

func main() {
	logPath := flag.String("log", "", "Append logs to this file (the screen is in use while playing)")
	flag.Parse()

	if err := run(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(logPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, _ := cfg.Level()

	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := loot.New(catalog.New(assets.ItemTemplates), rand.New(rand.NewSource(seed)))

	sess := session.New(session.Options{
		Name: os.Getenv("USER"),
		Grid: inventory.Config{
			Rows:          cfg.Rows,
			Cols:          cfg.Cols,
			ArtifactSlots: cfg.ArtifactSlots,
		},
		Loot:   gen,
		Logger: logger,
	})
	if err := sess.Stock(cfg.StarterLoot); err != nil {
		return fmt.Errorf("starter loot: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	logger.Info("local session started", "seed", seed)
	sess.Run(screen)
	return nil
}
