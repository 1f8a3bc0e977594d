// gridstash-server serves one independent inventory per SSH connection.
// All players stand on the same tile, so items one player drops can be
// picked up by another. Build:
//
//	go build -o gridstash-server ./cmd/server
//
// Usage:
//
//	./gridstash-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	mathrand "math/rand"
	"os"
	"sync/atomic"
	"time"
	"unicode"
	"unicode/utf8"

	"gridstash/assets"
	"gridstash/internal/catalog"
	"gridstash/internal/config"
	"gridstash/internal/inventory"
	"gridstash/internal/loot"
	"gridstash/internal/session"
	internalssh "gridstash/internal/ssh"
	"gridstash/internal/world"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	port := flag.Int("port", cfg.Port, "SSH server port")
	keyFile := flag.String("key", cfg.HostKey, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h := &host{
		cfg:     cfg,
		logger:  logger,
		world:   world.New(),
		catalog: catalog.New(assets.ItemTemplates),
		seed:    seed,
	}

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handle,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Accept any authentication: this is meant for a private server.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("gridstash SSH server listening", "port", *port, "seed", seed)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// host owns what all connections share: the ground and the id counter.
type host struct {
	cfg     config.Server
	logger  *slog.Logger
	world   *world.World
	catalog *catalog.Catalog
	seed    int64
	conns   atomic.Int64
}

// handle is the gliderlabs SSH handler for one connection. It blocks for
// the duration of the connection so the SSH session stays open.
func (h *host) handle(s gossh.Session) {
	id := h.conns.Add(1)
	name := sanitizeName(s.User())
	if name == "" {
		name = fmt.Sprintf("Player %d", id)
	}
	logger := h.logger.With("conn", id, "player", name, "remote", s.RemoteAddr().String())

	screen, err := internalssh.NewScreen(s)
	if err != nil {
		switch {
		case errors.Is(err, internalssh.ErrNoPTY):
			fmt.Fprintf(s, "This inventory requires a PTY. Connect with: ssh -t -p %d <host>\n", h.cfg.Port)
		case errors.Is(err, internalssh.ErrTerm):
			fmt.Fprintln(s, "Unsupported terminal. Try again with TERM=xterm-256color.")
		default:
			fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		}
		logger.Warn("session rejected", "error", err)
		return
	}
	defer screen.Fini()

	// Each connection rolls from its own source; *rand.Rand is not safe
	// for concurrent use.
	rng := mathrand.New(mathrand.NewSource(h.seed + id))
	sess := session.New(session.Options{
		Name: name,
		Grid: inventory.Config{
			Rows:          h.cfg.Rows,
			Cols:          h.cfg.Cols,
			ArtifactSlots: h.cfg.ArtifactSlots,
		},
		World:  h.world,
		Loot:   loot.New(h.catalog, rng),
		Logger: logger,
	})
	if err := sess.Stock(h.cfg.StarterLoot); err != nil {
		logger.Warn("starter loot", "error", err)
	}
	logger.Info("session started")
	sess.Run(screen)
}

const maxNameBytes = 16

// sanitizeName drops control characters from an SSH user name and cuts it
// to at most maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	out := make([]byte, 0, maxNameBytes)
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if len(out)+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		out = utf8.AppendRune(out, r)
	}
	return string(out)
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
		logger.Warn("host key unreadable, generating a new one", "path", path)
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for the next run; failing to is not fatal.
	pemBlock, err := xssh.MarshalPrivateKey(key, "gridstash server")
	if err != nil {
		logger.Warn("marshal host key", "error", err)
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("save host key", "path", path, "error", err)
	}
	return signer, nil
}
