// Package telemetry records fire-and-forget product events. Recording never
// fails loudly: a sink that cannot write drops the event and moves on.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Sink accepts events. Implementations must tolerate nil props.
type Sink interface {
	Track(event string, props map[string]any)
}

// Noop discards every event. Used when analytics are switched off.
type Noop struct{}

func (Noop) Track(string, map[string]any) {}

// Recorder appends events as JSON lines to a file under the base path.
type Recorder struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// NewRecorder creates a Recorder writing to basePath/telemetry.jsonl.
func NewRecorder(basePath string) (*Recorder, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("telemetry: ensure base path: %w", err)
	}
	return &Recorder{
		path: filepath.Join(basePath, "telemetry.jsonl"),
		now:  time.Now,
	}, nil
}

type record struct {
	At    string         `json:"at"`
	Event string         `json:"event"`
	Props map[string]any `json:"props,omitempty"`
}

func (r *Recorder) Track(event string, props map[string]any) {
	data, err := json.Marshal(record{
		At:    r.now().UTC().Format(time.RFC3339),
		Event: event,
		Props: props,
	})
	if err != nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(append(data, '\n'))
}
