package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mhalvorsen/lsm-workbench/internal/model"
)

// JSONLWriter appends one JSON object per line to a results file,
// creating the results directory on first use. Each run gets its own
// timestamped file so runs never clobber each other.
type JSONLWriter struct {
	mu   sync.Mutex
	path string
	f    *os.File
	enc  *json.Encoder
}

// NewJSONLWriter creates a writer at dir/run_results_<timestamp>.jsonl.
func NewJSONLWriter(dir string, now time.Time) (*JSONLWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create results dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("run_results_%s.jsonl", now.Format("20060102_150405")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	return &JSONLWriter{path: path, f: f, enc: json.NewEncoder(f)}, nil
}

// Path returns the results file location.
func (w *JSONLWriter) Path() string {
	return w.path
}

func (w *JSONLWriter) Write(_ context.Context, rec model.ResultRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func (w *JSONLWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}
