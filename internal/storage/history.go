package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is one accepted input line with its timestamp.
type HistoryEntry struct {
	ID    string    `json:"id"`
	Ts    time.Time `json:"ts"`
	Input string    `json:"input"`
}

// History is an append-only JSONL log of accepted command lines.
type History struct {
	mu   sync.Mutex
	path string
}

// NewHistory creates a History backed by the JSONL file at path.
func NewHistory(path string) *History {
	return &History{path: path}
}

// GenerateEntryID creates a unique history entry identifier.
func GenerateEntryID() string {
	u := uuid.New().String()
	return "cmd_" + strings.ReplaceAll(u[:8], "-", "")
}

// Append records one input line.
func (h *History) Append(input string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(h.path), 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}

	entry := HistoryEntry{ID: GenerateEntryID(), Ts: time.Now(), Input: input}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Tail returns the most recent n entries in chronological order.
// A missing log yields no entries.
func (h *History) Tail(n int) ([]HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	var entries []HistoryEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry HistoryEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue // skip corrupted lines
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan history: %w", err)
	}

	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}
