package writer

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mhalvorsen/lsm-workbench/internal/model"
	"github.com/mhalvorsen/lsm-workbench/internal/sysinfo"
)

func TestJSONLWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	w, err := NewJSONLWriter(dir, now)
	if err != nil {
		t.Fatalf("NewJSONLWriter failed: %v", err)
	}

	recs := []model.ResultRecord{
		{
			CaseName:  "baseline",
			Backend:   "scalar",
			Timestamp: now,
			Inputs:    model.Inputs{S0: 100, K: 105, T: 1, R: 0.05, Sigma: 0.2, NumPaths: 20000, NumSteps: 100, Seed: 42},
			Outputs:   model.Outputs{Price: 8.71, TimeMS: 153.2},
			SystemInfo: sysinfo.Info{
				GoVersion: "go1.24.7", OS: "linux", Arch: "amd64", NumCPU: 8, Hostname: "bench-1", Commit: "abc1234",
			},
		},
		{
			CaseName: "baseline",
			Backend:  "parallel",
			Outputs:  model.Outputs{Price: 8.69, TimeMS: 41.8},
		},
	}
	for _, rec := range recs {
		if err := w.Write(context.Background(), rec); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := os.Open(w.Path())
	if err != nil {
		t.Fatalf("open results file: %v", err)
	}
	defer f.Close()

	var got []model.ResultRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec model.ResultRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("line does not parse: %v", err)
		}
		got = append(got, rec)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan results file: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0].Backend != "scalar" || got[0].Outputs.Price != 8.71 {
		t.Errorf("first record = %+v", got[0])
	}
	if got[0].Inputs.Seed != 42 || got[0].SystemInfo.Hostname != "bench-1" {
		t.Errorf("nested fields lost: %+v", got[0])
	}
	if got[1].Backend != "parallel" {
		t.Errorf("second record = %+v", got[1])
	}
}

func TestJSONLWriterFileName(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	w, err := NewJSONLWriter(dir, now)
	if err != nil {
		t.Fatalf("NewJSONLWriter failed: %v", err)
	}
	defer w.Close()

	want := "run_results_20250314_092653.jsonl"
	if got := w.Path(); !strings.HasSuffix(got, want) {
		t.Errorf("Path() = %q, want suffix %q", got, want)
	}
}

func TestMultiStopsOnError(t *testing.T) {
	dir := t.TempDir()
	ok, err := NewJSONLWriter(dir, time.Now())
	if err != nil {
		t.Fatalf("NewJSONLWriter failed: %v", err)
	}
	// Closed writer fails on Write.
	broken, err := NewJSONLWriter(t.TempDir(), time.Now())
	if err != nil {
		t.Fatalf("NewJSONLWriter failed: %v", err)
	}
	broken.Close()

	m := Multi{broken, ok}
	if err := m.Write(context.Background(), model.ResultRecord{CaseName: "x"}); err == nil {
		t.Error("Multi.Write swallowed the sink error")
	}
	ok.Close()
}
