package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// useTempLogDir points the logger at a scratch directory for one test
func useTempLogDir(t *testing.T) string {
	t.Helper()
	prevDir, prevSize, prevOut := logDir, maxLogSize, log.Writer()
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() {
		logDir, maxLogSize = prevDir, prevSize
		log.SetOutput(prevOut)
	})
	return logDir
}

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	dir := useTempLogDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Log directory should not be created without debug")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	dir := useTempLogDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file when debug=true")
	}
	defer f.Close()

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("Log output must not reach the terminal")
	}

	log.Printf("[arena] round 1 started")
	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[arena] round 1 started") {
		t.Errorf("Log file missing message: %q", data)
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	dir := useTempLogDir(t)
	maxLogSize = 1024

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "hippos-") {
			rotated++
		}
	}
	if rotated != 1 {
		t.Errorf("Expected one rotated file, found %d", rotated)
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Fresh log should be small, got %d bytes", info.Size())
	}
}
