package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestLoadConfigFlagOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "ppodgraph.yaml")
	content := `
workbook:
  dir: "/data/sheets"
output:
  path: "from-file.ttl"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags := flagOverrides{
		configPath: configPath,
		outputPath: "from-flag.nt",
		format:     "ntriples",
	}
	cfg, err := loadConfig(&flags, setupLogging("error"))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.Workbook.Dir != "/data/sheets" {
		t.Errorf("workbook.dir = %s", cfg.Workbook.Dir)
	}
	if cfg.Output.Path != "from-flag.nt" {
		t.Error("flag must override the config file output path")
	}
	if cfg.Output.Format != "ntriples" {
		t.Errorf("output.format = %s", cfg.Output.Format)
	}
}

func TestLoadConfigRejectsBadFormat(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "ppodgraph.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: rdfxml\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags := flagOverrides{configPath: configPath}
	if _, err := loadConfig(&flags, setupLogging("error")); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestRelevantEvent(t *testing.T) {
	tests := []struct {
		name   string
		event  fsnotify.Event
		output string
		want   bool
	}{
		{
			name:  "csv write",
			event: fsnotify.Event{Name: "/data/Organizations.csv", Op: fsnotify.Write},
			want:  true,
		},
		{
			name:  "csv create",
			event: fsnotify.Event{Name: "/data/People.CSV", Op: fsnotify.Create},
			want:  true,
		},
		{
			name:  "chmod only",
			event: fsnotify.Event{Name: "/data/Organizations.csv", Op: fsnotify.Chmod},
			want:  false,
		},
		{
			name:  "non-csv file",
			event: fsnotify.Event{Name: "/data/notes.txt", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:  "hidden file",
			event: fsnotify.Event{Name: "/data/.Organizations.csv.swp", Op: fsnotify.Write},
			want:  false,
		},
		{
			name:   "own output file",
			event:  fsnotify.Event{Name: "/data/PPOD.csv", Op: fsnotify.Write},
			output: "/data/PPOD.csv",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevantEvent(tt.event, tt.output); got != tt.want {
				t.Errorf("relevantEvent() = %v, want %v", got, tt.want)
			}
		})
	}
}
