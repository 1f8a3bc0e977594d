// Package ssh adapts gliderlabs/ssh sessions to tcell so each connection
// gets its own screen.
package ssh

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

var (
	// ErrNoPTY is returned for sessions opened without a pseudo-terminal.
	ErrNoPTY = errors.New("ssh: session has no pty")
	// ErrTerm is returned when the client's TERM is not allowed.
	ErrTerm = errors.New("ssh: unsupported terminal")
)

const defaultTerm = "xterm-256color"

// allowedTerms are the terminal types a client may ask for. TERM ends up in
// the process environment, so anything else is refused.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

// AllowedTerm reports whether term may be used for a session screen.
func AllowedTerm(term string) bool { return allowedTerms[term] }

// Tty implements tcell.Tty on top of one SSH session.
type Tty struct {
	session gossh.Session
	term    string

	mu       sync.Mutex
	window   gossh.Window
	onResize func()

	winCh <-chan gossh.Window
	done  chan struct{}
	once  sync.Once
}

// NewTty wraps s. It fails with ErrNoPTY when the client did not request a
// pty and with ErrTerm when its terminal type is not allowed.
func NewTty(s gossh.Session) (*Tty, error) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := pty.Term
	if term == "" {
		term = envTerm(s.Environ())
	}
	if !AllowedTerm(term) {
		return nil, fmt.Errorf("%w: %q", ErrTerm, term)
	}
	return &Tty{
		session: s,
		term:    term,
		window:  pty.Window,
		winCh:   winCh,
		done:    make(chan struct{}),
	}, nil
}

func envTerm(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && v != "" {
			return v
		}
	}
	return defaultTerm
}

// Term is the terminal type the screen is built for.
func (t *Tty) Term() string { return t.term }

func (t *Tty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.session.Write(b) }

// Close stops resize delivery and closes the SSH channel.
func (t *Tty) Close() error {
	t.once.Do(func() { close(t.done) })
	return t.session.Close()
}

// The SSH channel is opened and flushed by the server, so these are no-ops.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the latest dimensions reported by the client.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb and starts forwarding window-change requests
// until the channel closes or the Tty is closed.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	go func() {
		for {
			select {
			case <-t.done:
				return
			case win, ok := <-t.winCh:
				if !ok {
					return
				}
				t.mu.Lock()
				t.window = win
				fn := t.onResize
				t.mu.Unlock()
				if fn != nil {
					fn()
				}
			}
		}
	}()
}

// termMu serialises os.Setenv("TERM") around terminfo lookup, since
// sessions for different terminals are created concurrently.
var termMu sync.Mutex

// NewScreen builds and initialises a tcell screen on the session's pty.
func NewScreen(s gossh.Session) (tcell.Screen, error) {
	tty, err := NewTty(s)
	if err != nil {
		return nil, err
	}
	termMu.Lock()
	_ = os.Setenv("TERM", tty.term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("terminal setup: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}
	return screen, nil
}
