package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 2222 || cfg.HostKey != "server_host_key" {
		t.Errorf("port/key = %d/%q; want 2222/server_host_key", cfg.Port, cfg.HostKey)
	}
	if cfg.Rows != 5 || cfg.Cols != 12 || cfg.ArtifactSlots != 4 {
		t.Errorf("grid = %dx%d +%d; want 5x12 +4", cfg.Rows, cfg.Cols, cfg.ArtifactSlots)
	}
	if cfg.StarterLoot != 6 || cfg.Seed != 0 {
		t.Errorf("starter/seed = %d/%d; want 6/0", cfg.StarterLoot, cfg.Seed)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GRIDSTASH_ROWS", "3")
	t.Setenv("GRIDSTASH_COLS", "8")
	t.Setenv("GRIDSTASH_SEED", "42")
	t.Setenv("GRIDSTASH_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rows != 3 || cfg.Cols != 8 || cfg.Seed != 42 {
		t.Errorf("cfg = %+v; want rows 3 cols 8 seed 42", cfg)
	}
	if lvl, _ := cfg.Level(); lvl != slog.LevelDebug {
		t.Errorf("level = %v; want debug", lvl)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("GRIDSTASH_PORT", "not-an-int")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := Server{Port: 2222, Rows: 5, Cols: 12, ArtifactSlots: 4, LogLevel: "info"}
	cases := []struct {
		name   string
		mutate func(*Server)
		want   string
	}{
		{"valid", func(*Server) {}, ""},
		{"zero rows", func(s *Server) { s.Rows = 0 }, "grid"},
		{"bad port", func(s *Server) { s.Port = 70000 }, "port"},
		{"no artifacts", func(s *Server) { s.ArtifactSlots = 0 }, "artifact"},
		{"negative loot", func(s *Server) { s.StarterLoot = -1 }, "starter loot"},
		{"bad level", func(s *Server) { s.LogLevel = "loud" }, "log level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base
			tc.mutate(&s)
			err := s.Validate()
			if tc.want == "" {
				if err != nil {
					t.Fatalf("Validate = %v; want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate = %v; want error mentioning %q", err, tc.want)
			}
		})
	}
}
