package ledger

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"herald/internal/ports/output"
)

// retention is how long a warned key stays in the ledger. Events older than
// this can never re-enter the warning window, so the entry is dead weight.
const retention = 14 * 24 * time.Hour

// Ensure Ledger implements the output.NotificationLedger port.
var _ output.NotificationLedger = (*Ledger)(nil)

// fileState is the on-disk shape: {"notified": {"<key>": true}}. Unknown
// top-level fields in an existing file are ignored on read.
type fileState struct {
	Notified map[string]bool `json:"notified"`
}

// Ledger is the durable record of already-warned event keys, kept as a small
// human-readable JSON file.
type Ledger struct {
	fs   afero.Fs
	path string

	mu       sync.Mutex
	notified map[string]bool
}

// Open loads the ledger file. A missing or corrupt file is not fatal: the
// ledger starts empty and the condition is logged.
func Open(fs afero.Fs, path string) *Ledger {
	l := &Ledger{
		fs:       fs,
		path:     path,
		notified: make(map[string]bool),
	}

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ ledger %s unreadable, starting empty: %v", path, err)
		}
		return l
	}

	var state fileState
	if err := json.Unmarshal(b, &state); err != nil {
		log.Printf("⚠️ ledger %s corrupt, starting empty: %v", path, err)
		return l
	}
	if state.Notified != nil {
		l.notified = state.Notified
	}
	return l
}

func (l *Ledger) IsWarned(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.notified[key]
}

// MarkWarned records the key and persists before returning. Marking an
// already-warned key is a no-op.
func (l *Ledger) MarkWarned(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.notified[key] {
		return nil
	}
	l.notified[key] = true
	return l.persist()
}

// Prune removes entries whose embedded timestamp is more than the retention
// window before now. Keys that do not carry a parseable timestamp are left
// alone rather than guessed at.
func (l *Ledger) Prune(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key := range l.notified {
		ts, ok := keyTime(key)
		if !ok {
			continue
		}
		if now.Sub(ts) > retention {
			delete(l.notified, key)
			removed++
		}
	}
	if removed > 0 {
		if err := l.persist(); err != nil {
			log.Printf("⚠️ ledger prune not persisted: %v", err)
		}
	}
	return removed
}

// keyTime extracts the RFC 3339 timestamp embedded after the category label,
// e.g. "ruins:2024-03-05T14:00:00Z".
func keyTime(key string) (time.Time, bool) {
	_, rest, found := strings.Cut(key, ":")
	if !found {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, rest)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// persist writes the whole ledger; callers hold l.mu.
func (l *Ledger) persist() error {
	b, err := json.MarshalIndent(fileState{Notified: l.notified}, "", "  ")
	if err != nil {
		return err
	}
	return afero.WriteFile(l.fs, l.path, append(b, '\n'), 0o644)
}
