package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "tokenlens.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	LogStage("load", "reading %s", "data.csv")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "[LOAD] reading data.csv") {
		t.Fatalf("expected LogStage content, got: %s", content)
	}
}

func TestLogStageDefaultsTag(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "tokenlens.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	LogStage("  ", "untagged event")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[STAGE] untagged event") {
		t.Fatalf("expected fallback stage tag, got: %s", data)
	}
}

func TestDebugfGatedBySetDebug(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "tokenlens.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	SetDebug(false)
	Debugf("hidden %d", 1)
	SetDebug(true)
	Debugf("visible %d", 2)
	SetDebug(false)
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "hidden 1") {
		t.Fatalf("expected gated debug line to be absent, got: %s", content)
	}
	if !strings.Contains(content, "[DEBUG] visible 2") {
		t.Fatalf("expected debug line, got: %s", content)
	}
}

func TestCloseRestoresStderr(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "tokenlens.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if err := Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	// Second close is a no-op.
	if err := Close(); err != nil {
		t.Fatalf("repeated Close error: %v", err)
	}
	log.SetOutput(os.Stderr)
}
