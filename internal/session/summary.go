package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Summary records play statistics for one session (connect → quit).
type Summary struct {
	Timestamp     time.Time `json:"timestamp"`
	Player        string    `json:"player"`
	Swaps         int       `json:"swaps"`
	Equips        int       `json:"equips"`
	EquipChanges  int       `json:"equip_changes"`
	Drops         int       `json:"drops"`
	Pickups       int       `json:"pickups"`
	Rolls         int       `json:"rolls"`
	Rejected      int       `json:"rejected"`
	ItemsAtExit   int       `json:"items_at_exit"`
	DurationMilli int64     `json:"duration_ms"`
}

// saveSummary appends the finished session as a single JSON line to
// sessions.jsonl. Errors are logged but never end the session badly.
func saveSummary(s Summary, logger *slog.Logger) {
	dir, err := summaryDir()
	if err != nil {
		logger.Warn("summary: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("summary: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "sessions.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("summary: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(s)
	if err != nil {
		logger.Warn("summary: cannot marshal JSON", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := f.Write(data); err != nil {
		logger.Warn("summary: write failed", "error", err)
	}
}

// summaryDir follows the XDG base directory layout:
// $XDG_DATA_HOME/gridstash, defaulting to ~/.local/share/gridstash.
func summaryDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gridstash"), nil
}
