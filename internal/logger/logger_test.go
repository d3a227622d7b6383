package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewForwardsKeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := New(zap.New(core))

	log.Info("mirror started", "source", "/games/wow", "subdirectories", 2)
	log.Warn("slow disk")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["source"] != "/games/wow" {
		t.Errorf("source field = %v", fields["source"])
	}
	if fields["subdirectories"] != int64(2) {
		t.Errorf("subdirectories field = %v (%T)", fields["subdirectories"], fields["subdirectories"])
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("level = %v, want warn", entries[1].Level)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if _, err := Init(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestInitSetsGlobal(t *testing.T) {
	l, err := Init(Options{Level: "error"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if l == nil || Global() == nil {
		t.Fatal("Init returned or registered a nil logger")
	}
	Cleanup()
}

func TestNopIsSafe(t *testing.T) {
	Nop().Error("ignored", "k", "v")
}
